package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidName = errors.New("player name must not be empty")
	ErrRoundIndex  = errors.New("round index out of range")
)

type Player struct {
	name   string
	rounds []Round
}

func NewPlayer(name string) (*Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	return &Player{name: name}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) AddRound(score int, phasedUp bool) {
	p.rounds = append(p.rounds, NewRound(score, phasedUp))
}

// Phase is 1-indexed: a player who has never phased up is on phase 1.
func (p *Player) Phase() int {
	phase := 1
	for _, r := range p.rounds {
		if r.PhasedUp() {
			phase++
		}
	}

	return phase
}

func (p *Player) TotalScore() int {
	var total int
	for _, r := range p.rounds {
		total += r.Score()
	}

	return total
}

func (p *Player) RoundsWon() int {
	var won int
	for _, r := range p.rounds {
		if r.Won() {
			won++
		}
	}

	return won
}

func (p *Player) RoundCount() int {
	return len(p.rounds)
}

func (p *Player) Round(i int) (Round, error) {
	if i < 0 || i >= len(p.rounds) {
		return Round{}, fmt.Errorf("%w: %v not in [0, %v) for %v", ErrRoundIndex, i, len(p.rounds), p.name)
	}

	return p.rounds[i], nil
}

// Rounds returns a copy of the history in chronological order.
func (p *Player) Rounds() []Round {
	rounds := make([]Round, len(p.rounds))
	copy(rounds, p.rounds)
	return rounds
}
