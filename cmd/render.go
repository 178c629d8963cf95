package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/they4kman/sweeper/game"
)

// render prints the status line and the board, marking the selected cell
// with brackets
func render(out io.Writer, session *game.Session) {
	io.WriteString(out, renderString(session))
}

func renderString(session *game.Session) string {
	board := session.Board()
	var b strings.Builder

	fmt.Fprintf(&b, "Mines: %d  Time: %s  %s\n",
		board.RemainingMines(), session.Elapsed().Truncate(time.Second), statusText(session.State()))

	b.WriteString("    ")
	for col := 0; col < board.Width(); col++ {
		fmt.Fprintf(&b, "%2d ", col)
	}
	b.WriteByte('\n')

	selection, hasSelection := session.Selection()
	detonated, hasDetonated := board.Detonated()

	for row := 0; row < board.Height(); row++ {
		fmt.Fprintf(&b, "%3d ", row)
		for col := 0; col < board.Width(); col++ {
			pos := game.Pos{Col: col, Row: row}
			c := cellChar(board.CellAt(col, row), hasDetonated && pos == detonated)
			if hasSelection && pos == selection {
				fmt.Fprintf(&b, "[%c]", c)
			} else {
				fmt.Fprintf(&b, " %c ", c)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func cellChar(cell game.Cell, detonated bool) byte {
	switch {
	case detonated:
		return 'X'
	case cell.IsCleared() && cell.IsMine():
		return '*'
	case cell.IsCleared() && cell.Value() == 0:
		return '.'
	case cell.IsCleared():
		return '0' + byte(cell.Value())
	case cell.IsFlagged():
		return 'F'
	case cell.IsQuestioned():
		return '?'
	}
	return '#'
}

func statusText(state game.GameState) string {
	switch state {
	case game.Won:
		return "You won!"
	case game.Lost:
		return "You lost."
	case game.Abandoned:
		return "Abandoned."
	}
	return "Playing"
}
