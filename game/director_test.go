package game

import (
	"math/rand"
	"testing"
)

// scriptedDirector replays fixed batches of actions
type scriptedDirector struct {
	batches [][]CellAction
	inits   int
}

func (director *scriptedDirector) Init(BoardView, *rand.Rand) {
	director.inits++
}

func (director *scriptedDirector) Act() []CellAction {
	if len(director.batches) == 0 {
		return nil
	}
	batch := director.batches[0]
	director.batches = director.batches[1:]
	return batch
}

func TestDirectPlaysToWin(t *testing.T) {
	board := NewBoardWithMines(3, 1, []Pos{{0, 0}})
	session, _ := newTestSession(board)
	director := &scriptedDirector{batches: [][]CellAction{
		{{Pos: Pos{0, 0}, Kind: RightClick}},
		{{Pos: Pos{1, 0}, Kind: Click}, {Pos: Pos{2, 0}, Kind: Click}},
	}}

	var steps []CellAction
	state := Direct(session, director, rand.New(rand.NewSource(1)), func(action CellAction) {
		steps = append(steps, action)
	})

	if state != Won {
		t.Fatalf("Direct = %v, want won", state)
	}
	if director.inits != 1 {
		t.Fatalf("Init called %d times", director.inits)
	}
	if len(steps) != 3 {
		t.Fatalf("step called %d times, want 3", len(steps))
	}
}

func TestDirectStopsAtLoss(t *testing.T) {
	board := NewBoardWithMines(3, 1, []Pos{{0, 0}})
	session, _ := newTestSession(board)
	director := &scriptedDirector{batches: [][]CellAction{
		{{Pos: Pos{0, 0}, Kind: Click}, {Pos: Pos{2, 0}, Kind: Click}},
	}}

	if state := Direct(session, director, rand.New(rand.NewSource(1)), nil); state != Lost {
		t.Fatalf("Direct = %v, want lost", state)
	}
	if board.CellAt(2, 0).IsCleared() {
		t.Fatal("actions after the loss were applied")
	}
}

func TestDirectStopsWithoutProgress(t *testing.T) {
	board := NewBoardWithMines(3, 1, []Pos{{0, 0}})
	session, _ := newTestSession(board)
	stuck := []CellAction{{Pos: Pos{1, 0}, Kind: MiddleClick}}
	director := &scriptedDirector{batches: [][]CellAction{stuck, stuck, stuck}}

	if state := Direct(session, director, rand.New(rand.NewSource(1)), nil); state != Playing {
		t.Fatalf("Direct = %v, want playing", state)
	}
	if len(director.batches) != 2 {
		t.Fatalf("Direct kept going after a batch that changed nothing")
	}
}
