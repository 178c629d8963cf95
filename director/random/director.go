package random

import (
	"math/rand"

	"github.com/they4kman/sweeper/game"
)

// Director clicks covered cells in a random order fixed at Init
type Director struct {
	board game.BoardView
	order []game.Pos
}

func (director *Director) Init(board game.BoardView, rand *rand.Rand) {
	director.board = board

	director.order = make([]game.Pos, 0, board.Width()*board.Height())
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			director.order = append(director.order, game.Pos{Col: col, Row: row})
		}
	}

	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() []game.CellAction {
	for len(director.order) > 0 {
		pos := director.order[0]
		cell := director.board.CellAt(pos.Col, pos.Row)
		if !cell.IsCleared() && cell.Mark() == game.Unmarked {
			return []game.CellAction{{Pos: pos, Kind: game.Click}}
		}
		director.order = director.order[1:]
	}
	return nil
}
