package game

import (
	"fmt"
)

// Pos addresses a single cell of a board
type Pos struct {
	Col, Row int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Col, pos.Row)
}

type Cell struct {
	value   int8
	mark    Mark
	cleared bool
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%d, %v, cleared=%v)", cell.value, cell.mark, cell.cleared)
}

// Value returns -1 for a mine, otherwise the number of neighboring mines
func (cell Cell) Value() int8 {
	return cell.value
}

func (cell Cell) Mark() Mark {
	return cell.mark
}

func (cell Cell) IsCleared() bool {
	return cell.cleared
}

func (cell Cell) IsMine() bool {
	return cell.value == mineValue
}

func (cell Cell) IsFlagged() bool {
	return cell.mark == Flagged
}

func (cell Cell) IsQuestioned() bool {
	return cell.mark == Questioned
}

func (cell Cell) serialize() byte {
	switch {
	case cell.IsMine():
		switch {
		case cell.cleared:
			return '*'
		case cell.mark == Flagged:
			return 'F'
		case cell.mark == Questioned:
			return 'Q'
		default:
			return 'O'
		}
	case cell.cleared:
		return '.'
	case cell.mark == Flagged:
		return 'f'
	case cell.mark == Questioned:
		return '?'
	default:
		return '#'
	}
}

// deserialize reads the player-visible part of a serialized cell. Mines are
// handled separately, since they must be placed before numbers make sense.
func (cell *Cell) deserialize(c byte) (isMine bool, ok bool) {
	switch c {
	case '*', 'F', 'Q', 'O':
		isMine = true
	case '.', 'f', '?', '#':
	default:
		return false, false
	}

	switch c {
	case '*', '.':
		cell.cleared = true
		cell.mark = Unmarked
	case 'F', 'f':
		cell.cleared = false
		cell.mark = Flagged
	case 'Q', '?':
		cell.cleared = false
		cell.mark = Questioned
	default:
		cell.cleared = false
		cell.mark = Unmarked
	}

	return isMine, true
}
