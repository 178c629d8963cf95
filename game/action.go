package game

import "fmt"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (direction Direction) String() string {
	switch direction {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(direction))
}

// delta returns the column and row offsets of one step in this direction
func (direction Direction) delta() (int, int) {
	switch direction {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

type ActionKind int

const (
	None ActionKind = iota
	MoveCursor
	Clear
	Flag
	QuestionMark
	ClearAdjacent
)

func (kind ActionKind) String() string {
	switch kind {
	case None:
		return "none"
	case MoveCursor:
		return "move"
	case Clear:
		return "clear"
	case Flag:
		return "flag"
	case QuestionMark:
		return "question"
	case ClearAdjacent:
		return "clear-adjacent"
	}
	return fmt.Sprintf("ActionKind(%d)", int(kind))
}

// Action is an already-decoded keyboard command. Direction is only
// meaningful for MoveCursor.
type Action struct {
	Kind      ActionKind
	Direction Direction
}

func (action Action) String() string {
	if action.Kind == MoveCursor {
		return fmt.Sprintf("move %v", action.Direction)
	}
	return action.Kind.String()
}

func Move(direction Direction) Action {
	return Action{Kind: MoveCursor, Direction: direction}
}

func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

type ClickKind int

const (
	Click ClickKind = iota
	RightClick
	MiddleClick
)

func (kind ClickKind) String() string {
	switch kind {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	}
	return fmt.Sprintf("ClickKind(%d)", int(kind))
}

// CellAction is a pointer button pressed over a cell
type CellAction struct {
	Pos
	Kind ClickKind
}

func (action CellAction) String() string {
	return fmt.Sprintf("%v %v", action.Kind, action.Pos)
}
