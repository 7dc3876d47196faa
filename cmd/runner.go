package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/deadloct/phase-scorekeeper/game"
	"github.com/deadloct/phase-scorekeeper/lib"
	"github.com/deadloct/phase-scorekeeper/settings"
	log "github.com/sirupsen/logrus"
)

const (
	PromptRoundFinished = "Press enter when the round has finished"
	PromptPhasedUp      = "Did %v phase up?"
	PromptScore         = "Enter score for %v"
)

var ErrInputClosed = errors.New("input closed before the game finished")

type RunnerConfig struct {
	Session  *game.Session
	Prompter lib.Prompter

	// Senders receive every standings table and the winner announcement.
	Senders []game.Sender

	// Out receives the "please try again" feedback for rejected answers.
	Out io.Writer
}

// Runner drives a session: show standings, stop if someone has won,
// otherwise collect the next round from every player.
type Runner struct {
	RunnerConfig
}

func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}

	return &Runner{RunnerConfig: cfg}
}

func (r *Runner) Run(ctx context.Context) (*game.Player, error) {
	logger := log.WithField("session", r.Session.ID)

	for {
		r.sendTable(r.Session.Standings().String())

		if winner, ok := r.Session.Winner(); ok {
			logger.Infof("%v won with %v points after %v rounds", winner.Name(), winner.TotalScore(), winner.RoundCount())
			r.sendNormal(r.announcement(winner))
			return winner, nil
		}

		if _, err := ask(ctx, r, PromptRoundFinished, lib.ParseAny); err != nil {
			return nil, err
		}

		results, err := r.collectRound(ctx)
		if err != nil {
			return nil, err
		}

		if err := r.Session.RecordRound(results); err != nil {
			return nil, err
		}

		logger.Infof("recorded round %v", r.Session.RoundCount())
	}
}

// collectRound gathers a result for every player before anything is recorded.
func (r *Runner) collectRound(ctx context.Context) ([]game.Result, error) {
	players := r.Session.Players()
	results := make([]game.Result, 0, len(players))

	for _, p := range players {
		phasedUp, err := ask(ctx, r, fmt.Sprintf(PromptPhasedUp, p.Name()), lib.ParseYesNo)
		if err != nil {
			return nil, err
		}

		score, err := ask(ctx, r, fmt.Sprintf(PromptScore, p.Name()), lib.ParseScore)
		if err != nil {
			return nil, err
		}

		results = append(results, game.Result{Score: score, PhasedUp: phasedUp})
	}

	return results, nil
}

func ask[T any](ctx context.Context, r *Runner, text string, parse func(string) (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	v, err := lib.Ask(r.Prompter, text, parse, func(err error) {
		log.Warnf("rejected answer to %q: %v", text, err)
		fmt.Fprintf(r.Out, "%v. Please try again\n", err)
	})

	if errors.Is(err, io.EOF) {
		return v, ErrInputClosed
	}

	return v, err
}

func (r *Runner) announcement(winner *game.Player) string {
	vals := settings.WinnerValues{
		Name:       winner.Name(),
		Score:      winner.TotalScore(),
		Rounds:     winner.RoundCount(),
		RoundsWon:  winner.RoundsWon(),
		FinalPhase: r.Session.FinalPhase(),
	}

	if settings.Winner == nil {
		return fmt.Sprintf("%v wins!", vals.Name)
	}

	var result bytes.Buffer
	if err := settings.Winner.Execute(&result, vals); err != nil {
		log.Errorf("unable to render winner template: %v", err)
		return fmt.Sprintf("%v wins!", vals.Name)
	}

	return result.String()
}

func (r *Runner) sendTable(str string) {
	for _, s := range r.Senders {
		if err := s.SendTable(str); err != nil {
			log.Errorf("unable to send standings: %v", err)
		}
	}
}

func (r *Runner) sendNormal(str string) {
	for _, s := range r.Senders {
		if err := s.SendNormal(str); err != nil {
			log.Errorf("unable to send message: %v", err)
		}
	}
}
