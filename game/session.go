package game

import (
	"errors"
	"fmt"

	"github.com/deadloct/phase-scorekeeper/settings"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoPlayers   = errors.New("a session needs at least one player")
	ErrResultCount = errors.New("round results do not match player count")
	ErrSessionOver = errors.New("session already has a winner")
)

type SessionConfig struct {
	Names []string

	// FinalPhase is the number of phases to complete. A player whose phase
	// passes it is a finisher.
	FinalPhase int

	// Marker is appended to a standings cell when the player phased up.
	Marker string
}

// Result is one player's outcome for a round before it becomes a Round.
type Result struct {
	Score    int
	PhasedUp bool
}

// Session exclusively owns the players of one game, in seating order.
type Session struct {
	ID string

	finalPhase int
	marker     string
	players    []*Player
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if len(cfg.Names) == 0 {
		return nil, ErrNoPlayers
	}

	if cfg.FinalPhase <= 0 {
		cfg.FinalPhase = settings.DefaultFinalPhase
	}

	if cfg.Marker == "" {
		cfg.Marker = settings.DefaultMarker
	}

	s := &Session{
		ID:         uuid.NewString(),
		finalPhase: cfg.FinalPhase,
		marker:     cfg.Marker,
	}

	for i, name := range cfg.Names {
		p, err := NewPlayer(name)
		if err != nil {
			return nil, fmt.Errorf("player %v: %w", i+1, err)
		}

		s.players = append(s.players, p)
	}

	s.logger().Infof("created session with %v players and %v phases", len(s.players), s.finalPhase)
	return s, nil
}

func (s *Session) FinalPhase() int {
	return s.finalPhase
}

// Players returns the players in seating order. The slice is a copy, the
// players are not.
func (s *Session) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)
	return players
}

// RoundCount is the longest history in the session. It matches every
// player's history as long as rounds are only added through RecordRound.
func (s *Session) RoundCount() int {
	var n int
	for _, p := range s.players {
		n = max(n, p.RoundCount())
	}

	return n
}

// RecordRound appends one round to every player. results must be in seating
// order. Nothing is appended unless the whole round is accepted.
func (s *Session) RecordRound(results []Result) error {
	if len(results) != len(s.players) {
		return fmt.Errorf("%w: got %v results for %v players", ErrResultCount, len(results), len(s.players))
	}

	if winner, ok := s.Winner(); ok {
		return fmt.Errorf("%w: %v", ErrSessionOver, winner.Name())
	}

	round := s.RoundCount() + 1
	for i, res := range results {
		p := s.players[i]
		p.AddRound(res.Score, res.PhasedUp)
		s.logger().Debugf("round %v: %v scored %v (phased up: %v), now phase %v with %v",
			round, p.Name(), res.Score, res.PhasedUp, p.Phase(), p.TotalScore())
	}

	return nil
}

// IsFinisher reports whether p has completed every phase.
func (s *Session) IsFinisher(p *Player) bool {
	return p.Phase() > s.finalPhase
}

// Winner is the finisher with the lowest total score. Ties go to the player
// seated first.
func (s *Session) Winner() (*Player, bool) {
	var winner *Player
	for _, p := range s.players {
		if !s.IsFinisher(p) {
			continue
		}

		if winner == nil || p.TotalScore() < winner.TotalScore() {
			winner = p
		}
	}

	return winner, winner != nil
}

func (s *Session) Finished() bool {
	_, ok := s.Winner()
	return ok
}

func (s *Session) logger() *log.Entry {
	return log.WithField("session", s.ID)
}
