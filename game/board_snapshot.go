package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a text rendering of a board's layout and progress: one
// line per row, one character per cell.
//
//	#  covered        O  covered mine
//	.  cleared        *  cleared mine
//	f  flagged        F  flagged mine
//	?  questioned     Q  questioned mine
//
// A snapshot without any mines but a positive MineCount was taken before
// the first reveal; its mines are placed lazily using Seed.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	MineCount       int    `yaml:"mines"`
	SerializedBoard string `yaml:"board"`
}

// Snapshot captures the board's current layout and progress
func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	var rows strings.Builder
	for row := 0; row < board.height; row++ {
		if row > 0 {
			rows.WriteByte('\n')
		}
		for col := 0; col < board.width; col++ {
			rows.WriteByte(board.cells[row*board.width+col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            seed,
		MineCount:       board.numMines,
		SerializedBoard: rows.String(),
	}
}

// Snapshot captures the session's board
func (session *Session) Snapshot(seed int64) *BoardSnapshot {
	return session.board.Snapshot(seed)
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the board the snapshot describes. With fresh set,
// every cell starts covered and unmarked, keeping only the mine layout.
// Otherwise progress is restored, and a cleared mine marks the board as
// detonated.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("snapshot board is empty")
	}

	cells := make([]Cell, width*height)
	var mines []Pos

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("snapshot row %d has %d cells, expected %d", row, len(line), width)
		}

		for col := 0; col < width; col++ {
			isMine, ok := cells[row*width+col].deserialize(line[col])
			if !ok {
				return nil, fmt.Errorf("snapshot cell (%d, %d) has unknown state %q", col, row, line[col])
			}
			if isMine {
				mines = append(mines, Pos{Col: col, Row: row})
			}
		}
	}

	var board *Board
	if len(mines) == 0 && snapshot.MineCount > 0 {
		if snapshot.MineCount > width*height {
			return nil, fmt.Errorf("cannot place %d mines on a %dx%d board", snapshot.MineCount, width, height)
		}
		board = NewBoard(width, height, snapshot.MineCount, NewRandomPlacer(snapshot.Seed))
	} else {
		if len(mines) != snapshot.MineCount {
			return nil, fmt.Errorf("snapshot declares %d mines but its board holds %d", snapshot.MineCount, len(mines))
		}
		board = NewBoardWithMines(width, height, mines)
	}

	if fresh {
		return board, nil
	}

	for idx, cell := range cells {
		if cell.cleared && !board.Initialized() {
			return nil, fmt.Errorf("snapshot has cleared cells but no mines")
		}

		target := &board.cells[idx]
		target.cleared = cell.cleared
		target.mark = cell.mark

		if cell.mark == Flagged {
			board.numFlags++
		}
		if cell.cleared && !target.IsMine() {
			board.numCleared++
		}
		// A cleared mine is what ended a lost game
		if cell.cleared && target.IsMine() && !board.hasDetonated {
			board.detonated = board.pos(idx)
			board.hasDetonated = true
		}
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
