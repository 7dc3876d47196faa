package game

// Round is one player's result for one round. It is a value type and never
// changes after it is recorded.
type Round struct {
	score    int
	phasedUp bool
}

// NewRound does no validation; negative scores must be rejected by whoever
// collects the input.
func NewRound(score int, phasedUp bool) Round {
	return Round{score: score, phasedUp: phasedUp}
}

func (r Round) Score() int {
	return r.score
}

func (r Round) PhasedUp() bool {
	return r.phasedUp
}

// Won reports whether the player went out this round.
func (r Round) Won() bool {
	return r.score == 0
}
