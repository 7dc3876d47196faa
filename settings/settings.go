package settings

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/template"

	"github.com/caarlos0/env/v11"
	"github.com/deadloct/phase-scorekeeper/data"
	log "github.com/sirupsen/logrus"
)

const (
	// A player on phase DefaultFinalPhase+1 has completed the game.
	DefaultFinalPhase = 10
	MinimumFinalPhase = 1

	DefaultMarker = "+"

	DiscordMaxMessageLength = 2000
	WhiteSpaceChar          = "\u200b"
)

var (
	ErrNoPlayers         = errors.New("at least one player name is required")
	ErrInvalidFinalPhase = fmt.Errorf("final phase must be at least %v", MinimumFinalPhase)
)

var (
	Help   *template.Template
	Winner *template.Template
)

type HelpValues struct {
	Program    string
	FinalPhase int
	Prefix     string
}

type WinnerValues struct {
	Name       string
	Score      int
	Rounds     int
	RoundsWon  int
	FinalPhase int
}

type Config struct {
	FinalPhase       int    `env:"FINAL_PHASE" envDefault:"10"`
	Marker           string `env:"MARKER" envDefault:"+"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`

	Verbose bool
	Players []string
}

// DiscordEnabled reports whether standings should be mirrored to Discord.
func (c Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

func (c Config) Level() (log.Level, error) {
	if c.Verbose {
		return log.DebugLevel, nil
	}

	return log.ParseLevel(c.LogLevel)
}

// ParseConfig reads the environment first and lets flags override it.
// Positional arguments are the player names in seating order.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix + "_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.FinalPhase, "phases", cfg.FinalPhase, "Number of phases to complete")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.FinalPhase < MinimumFinalPhase {
		return Config{}, fmt.Errorf("%w, got %v", ErrInvalidFinalPhase, cfg.FinalPhase)
	}

	for _, name := range fs.Args() {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Players = append(cfg.Players, name)
		}
	}

	if len(cfg.Players) == 0 {
		return Config{}, ErrNoPlayers
	}

	return cfg, nil
}

func ImportData() {
	importHelp()
	importWinner()
}

func importHelp() {
	var err error
	Help, err = template.New("help-template").Parse(data.HelpTemplate)
	if err != nil {
		log.Panicf("unable to parse help template: %v", err)
	}

	log.Debug("imported help template")
}

func importWinner() {
	var err error
	Winner, err = template.New("winner-template").Parse(data.WinnerTemplate)
	if err != nil {
		log.Panicf("unable to parse winner template: %v", err)
	}

	log.Debug("imported winner template")
}
