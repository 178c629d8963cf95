package game

import "fmt"

// Mark is the player's annotation on a covered cell
type Mark int

const (
	Unmarked Mark = iota
	Flagged
	Questioned
)

func (mark Mark) String() string {
	switch mark {
	case Unmarked:
		return "unmarked"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	}
	return fmt.Sprintf("Mark(%d)", int(mark))
}

// Outcome is what a reveal or chord did to the board
type Outcome int

const (
	NoOp Outcome = iota
	Revealed
	Detonated
)

func (outcome Outcome) String() string {
	switch outcome {
	case NoOp:
		return "noop"
	case Revealed:
		return "revealed"
	case Detonated:
		return "detonated"
	}
	return fmt.Sprintf("Outcome(%d)", int(outcome))
}

type GameState int

const (
	Playing GameState = iota
	Won
	Lost
	Abandoned
)

func (state GameState) String() string {
	switch state {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Abandoned:
		return "abandoned"
	}
	return fmt.Sprintf("GameState(%d)", int(state))
}

// IsTerminal returns whether no further gameplay is accepted in this state
func (state GameState) IsTerminal() bool {
	return state != Playing
}

const (
	mineValue int8 = -1
)
