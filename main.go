package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/deadloct/phase-scorekeeper/cmd"
	"github.com/deadloct/phase-scorekeeper/game"
	"github.com/deadloct/phase-scorekeeper/lib"
	"github.com/deadloct/phase-scorekeeper/settings"
	log "github.com/sirupsen/logrus"
)

func init() {
	// stdout belongs to the prompts and the standings table
	log.SetOutput(os.Stderr)
	settings.LoadEnvFiles()
	settings.ImportData()
}

func printHelp(w io.Writer) {
	err := settings.Help.Execute(w, settings.HelpValues{
		Program:    filepath.Base(os.Args[0]),
		FinalPhase: settings.DefaultFinalPhase,
		Prefix:     settings.Prefix,
	})
	if err != nil {
		log.Errorf("unable to print help: %v", err)
	}
}

func openDiscord(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Only posts messages, no events are needed
	session.Identify.Intents = discordgo.IntentsNone
	if err := session.Open(); err != nil {
		return nil, err
	}

	return session, nil
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Usage = func() { printHelp(fs.Output()) }

	cfg, err := settings.ParseConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		printHelp(os.Stderr)
		os.Exit(2)
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	log.SetLevel(level)

	if err := run(cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cfg settings.Config) error {
	session, err := game.NewSession(game.SessionConfig{
		Names:      cfg.Players,
		FinalPhase: cfg.FinalPhase,
		Marker:     cfg.Marker,
	})
	if err != nil {
		return fmt.Errorf("unable to start session: %w", err)
	}

	senders := []game.Sender{game.NewWriterSender(os.Stdout)}
	if cfg.DiscordEnabled() {
		dg, err := openDiscord(cfg.DiscordToken)
		if err != nil {
			return fmt.Errorf("unable to connect to discord: %w", err)
		}
		defer dg.Close()

		log.Infof("mirroring standings to discord channel %v", cfg.DiscordChannelID)
		senders = append(senders, game.NewDiscordSender(dg, cfg.DiscordChannelID))
	}

	// A blocked terminal read cannot be interrupted, so a signal ends the
	// process directly.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sc
		log.Info("Scorekeeper exiting...")
		os.Exit(130)
	}()

	runner := cmd.NewRunner(cmd.RunnerConfig{
		Session:  session,
		Prompter: lib.NewLinePrompter(os.Stdin, os.Stdout),
		Senders:  senders,
		Out:      os.Stdout,
	})

	if _, err := runner.Run(context.Background()); err != nil {
		fmt.Print(session.Standings())
		return fmt.Errorf("game ended early: %w", err)
	}

	return nil
}
