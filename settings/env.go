package settings

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const Prefix = "PHASE_SCOREKEEPER"

// LoadEnvFiles fills the environment from dotenv files. Variables that are
// already set win, then the most specific file.
func LoadEnvFiles() {
	env := os.Getenv(EnvKey("ENV"))
	if env == "" {
		env = "development"
	}

	godotenv.Load(".env." + env + ".local")
	godotenv.Load(".env." + env)
	godotenv.Load()
}

func EnvKey(str string) string {
	return fmt.Sprintf("%s_%s", Prefix, str)
}
