package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// BoardView is the read-only face of a Board, handed to renderers and
// directors
type BoardView interface {
	Width() int
	Height() int
	NumMines() int
	NumCleared() int
	NumFlags() int
	Contains(col, row int) bool
	CellAt(col, row int) Cell
	Neighbors(pos Pos) []Pos
	RemainingMines() int
	IsComplete() bool
	Initialized() bool
	Detonated() (Pos, bool)
}

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         []Cell

	numCleared int
	numFlags   int

	// Mines are laid out on the first reveal. Until then, placer is set.
	placer MinePlacer

	detonated    Pos
	hasDetonated bool
}

var _ BoardView = (*Board)(nil)

// NewBoard creates a board whose mines will be placed by placer on the first
// reveal. A nil placer lays mines out randomly with a time-seeded generator.
func NewBoard(width, height, numMines int, placer MinePlacer) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", width, height))
	}
	if numMines < 0 || numMines > width*height {
		panic(fmt.Sprintf("cannot place %d mines on a %dx%d board", numMines, width, height))
	}
	if placer == nil {
		placer = NewRandomPlacer(0)
	}

	return &Board{
		width:    width,
		height:   height,
		numMines: numMines,
		cells:    make([]Cell, width*height),
		placer:   placer,
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCleared() int {
	return board.numCleared
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// Initialized returns whether the mine layout has been generated
func (board *Board) Initialized() bool {
	return board.placer == nil
}

// Detonated returns the mine whose reveal lost the game, if any
func (board *Board) Detonated() (Pos, bool) {
	return board.detonated, board.hasDetonated
}

func (board *Board) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < board.width && row < board.height
}

// CellAt returns a copy of the cell at (col, row). It panics if the position
// lies outside the board.
func (board *Board) CellAt(col, row int) Cell {
	return board.cells[board.index(col, row)]
}

// RemainingMines is the number of mines minus the number of flags. It goes
// negative when the player over-flags.
func (board *Board) RemainingMines() int {
	return board.numMines - board.numFlags
}

func (board *Board) IsComplete() bool {
	return board.numCleared == board.NumCells()-board.numMines
}

func (board *Board) index(col, row int) int {
	if !board.Contains(col, row) {
		panic(fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", col, row, board.width, board.height))
	}
	return row*board.width + col
}

func (board *Board) pos(idx int) Pos {
	return Pos{Col: idx % board.width, Row: idx / board.width}
}

// neighborIndexes returns the indexes of the in-bounds 8-neighbors of idx
func (board *Board) neighborIndexes(idx int) []int {
	col, row := idx%board.width, idx/board.width

	isAtTopBorder := row < 1
	isAtBottomBorder := row >= board.height-1

	neighbors := make([]int, 0, 8)

	if col >= 1 {
		neighbors = append(neighbors, idx-1)

		if !isAtTopBorder {
			neighbors = append(neighbors, idx-board.width-1)
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, idx+board.width-1)
		}
	}

	if col < board.width-1 {
		neighbors = append(neighbors, idx+1)

		if !isAtTopBorder {
			neighbors = append(neighbors, idx-board.width+1)
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, idx+board.width+1)
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, idx-board.width)
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, idx+board.width)
	}

	return neighbors
}

// Neighbors returns the in-bounds 8-neighbors of pos
func (board *Board) Neighbors(pos Pos) []Pos {
	indexes := board.neighborIndexes(board.index(pos.Col, pos.Row))
	neighbors := make([]Pos, len(indexes))
	for i, idx := range indexes {
		neighbors[i] = board.pos(idx)
	}
	return neighbors
}

// ensureLayout hands the first-revealed position to the placer, once
func (board *Board) ensureLayout(first int) {
	if board.placer == nil {
		return
	}

	placer := board.placer
	board.placer = nil
	placer.PlaceMines(board, board.pos(first))

	Log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
		"first":  board.pos(first),
	}).Debug("laid out mines")
}

// setMine turns the cell at idx into a mine, counting it on its neighbors
func (board *Board) setMine(idx int) {
	if board.cells[idx].IsMine() {
		return
	}
	board.cells[idx].value = mineValue

	for _, neighbor := range board.neighborIndexes(idx) {
		if !board.cells[neighbor].IsMine() {
			board.cells[neighbor].value++
		}
	}
}

// Reveal uncovers the cell at (col, row), laying out mines first if this is
// the first reveal of the board. Uncovering an empty cell floods outward
// through the connected empty region and its numbered border.
func (board *Board) Reveal(col, row int) Outcome {
	idx := board.index(col, row)
	board.ensureLayout(idx)
	return board.reveal(idx)
}

func (board *Board) reveal(idx int) Outcome {
	cell := &board.cells[idx]
	if cell.cleared || cell.mark != Unmarked {
		return NoOp
	}

	cell.cleared = true

	if cell.IsMine() {
		board.detonated = board.pos(idx)
		board.hasDetonated = true
		return Detonated
	}

	board.numCleared++

	if cell.value == 0 {
		board.cascadeEmpty(idx)
	}

	return Revealed
}

func (board *Board) cascadeEmpty(idx int) {
	flood(
		idx,
		func(idx int) bool {
			cell := &board.cells[idx]
			if cell.cleared || cell.mark != Unmarked || cell.IsMine() {
				return false
			}

			cell.cleared = true
			board.numCleared++
			return cell.value == 0
		},
		board.neighborIndexes,
	)
}

// Chord reveals every covered, unflagged neighbor of a cleared number whose
// flagged neighbors account for all of its mines
func (board *Board) Chord(col, row int) Outcome {
	idx := board.index(col, row)

	cell := board.cells[idx]
	if !cell.cleared || cell.value <= 0 {
		return NoOp
	}

	neighbors := board.neighborIndexes(idx)

	numFlaggedNeighbors := 0
	for _, neighbor := range neighbors {
		if board.cells[neighbor].mark == Flagged {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != int(cell.value) {
		return NoOp
	}

	outcome := Revealed
	for _, neighbor := range neighbors {
		neighborCell := board.cells[neighbor]
		if neighborCell.cleared || neighborCell.mark == Flagged {
			continue
		}

		if board.reveal(neighbor) == Detonated && outcome != Detonated {
			outcome = Detonated
		}
	}

	return outcome
}

// ToggleFlag flags an unmarked or questioned cell, or unflags a flagged one
func (board *Board) ToggleFlag(col, row int) {
	cell := &board.cells[board.index(col, row)]
	if cell.cleared {
		return
	}

	if cell.mark == Flagged {
		cell.mark = Unmarked
		board.numFlags--
	} else {
		cell.mark = Flagged
		board.numFlags++
	}
}

// ToggleQuestion question-marks an unmarked or flagged cell, or clears the
// question mark from a questioned one
func (board *Board) ToggleQuestion(col, row int) {
	cell := &board.cells[board.index(col, row)]
	if cell.cleared {
		return
	}

	switch cell.mark {
	case Questioned:
		cell.mark = Unmarked
	case Flagged:
		cell.mark = Questioned
		board.numFlags--
	default:
		cell.mark = Questioned
	}
}

// RevealMines uncovers every covered mine, to show the layout once the game
// is lost. It does not count as clearing cells.
func (board *Board) RevealMines() {
	for idx := range board.cells {
		cell := &board.cells[idx]
		if !cell.IsMine() || cell.cleared {
			continue
		}

		if cell.mark == Flagged {
			board.numFlags--
		}
		cell.mark = Unmarked
		cell.cleared = true
	}
}
