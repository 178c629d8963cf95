package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/util/collections"
)

// MinePlacer lays out a board's mines once the first cell to be revealed is
// known
type MinePlacer interface {
	PlaceMines(board *Board, first Pos)
}

// RandomPlacer scatters mines uniformly, keeping the first-revealed cell and
// its neighbors clear
type RandomPlacer struct {
	Rand *rand.Rand
}

// NewRandomPlacer seeds a RandomPlacer. A zero seed uses the current time.
func NewRandomPlacer(seed int64) *RandomPlacer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPlacer{Rand: rand.New(rand.NewSource(seed))}
}

func (placer *RandomPlacer) PlaceMines(board *Board, first Pos) {
	firstIdx := board.index(first.Col, first.Row)
	numCells := board.NumCells()

	safeZone := collections.NewSet(board.neighborIndexes(firstIdx)...)
	safeZone.Add(firstIdx)

	candidates := make([]int, 0, numCells)
	for idx := 0; idx < numCells; idx++ {
		if !safeZone.Contains(idx) {
			candidates = append(candidates, idx)
		}
	}

	if len(candidates) < board.numMines {
		// Too few cells outside the safe zone: only the first cell stays clear
		Log.WithFields(logrus.Fields{
			"mines":      board.numMines,
			"candidates": len(candidates),
			"first":      first,
		}).Warn("safe zone too large for mine count; only keeping first cell clear")

		candidates = candidates[:0]
		for idx := 0; idx < numCells; idx++ {
			if idx != firstIdx {
				candidates = append(candidates, idx)
			}
		}

		if len(candidates) < board.numMines {
			Log.WithField("mines", board.numMines).Warn("every cell is a mine")
			candidates = append(candidates, firstIdx)
		}
	}

	// Selection sampling: each candidate is picked with probability
	// remaining/left, which places exactly numMines in a single pass
	remaining := board.numMines
	for i, idx := range candidates {
		if remaining == 0 {
			break
		}

		left := len(candidates) - i
		if placer.Rand.Intn(left) < remaining {
			board.setMine(idx)
			remaining--
		}
	}
}

// FixedPlacer lays out mines at predetermined positions, regardless of the
// first-revealed cell
type FixedPlacer struct {
	Mines []Pos
}

func (placer FixedPlacer) PlaceMines(board *Board, first Pos) {
	if len(placer.Mines) != board.numMines {
		panic(fmt.Sprintf("fixed layout has %d mines, board expects %d", len(placer.Mines), board.numMines))
	}

	placed := collections.Set[int]{}
	for _, mine := range placer.Mines {
		idx := board.index(mine.Col, mine.Row)
		if placed.Contains(idx) {
			panic(fmt.Sprintf("fixed layout places mine %v twice", mine))
		}
		placed.Add(idx)

		board.setMine(idx)
	}
}

// NewBoardWithMines creates a board whose mines are already laid out at the
// given positions
func NewBoardWithMines(width, height int, mines []Pos) *Board {
	board := NewBoard(width, height, len(mines), FixedPlacer{Mines: mines})
	board.ensureLayout(0)
	return board
}
