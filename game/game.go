package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Log receives the engine's debug and warning output. Callers may change its
// level, output or formatter.
var Log = logrus.New()

type GameConfig struct {
	Width, Height uint
	NumMines      uint
	// Predefined levels override Width, Height and NumMines
	Level Level

	// Seed for mine placement; zero picks one from the clock
	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	// Source of the current time; defaults to time.Now
	Clock func() time.Time

	// Called once when a session reaches a terminal state
	OnGameEnd func(*Session)
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:             30,
		Height:            16,
		NumMines:          99,
		Level:             Custom,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

// Dimensions returns the board size and mine count the config describes
func (config GameConfig) Dimensions() (width, height, numMines int) {
	if config.Level != Custom {
		info := config.Level.Info()
		return info.Width, info.Height, info.NumMines
	}
	return int(config.Width), int(config.Height), int(config.NumMines)
}

// Validate reports configuration a board could not be built from
func (config GameConfig) Validate() error {
	if config.Snapshot != nil {
		return nil
	}

	width, height, numMines := config.Dimensions()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", width, height)
	}
	if numMines > width*height {
		return fmt.Errorf("cannot place %d mines on a %dx%d board", numMines, width, height)
	}
	return nil
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateBoard(config.LoadSnapshotFresh)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	width, height, numMines := config.Dimensions()
	return NewBoard(width, height, numMines, NewRandomPlacer(config.Seed)), nil
}

// NewSession builds a board from the config and starts a game on it
func (config GameConfig) NewSession() (*Session, error) {
	board, err := config.createBoard()
	if err != nil {
		return nil, err
	}

	level := config.Level
	if config.Snapshot != nil {
		level = Custom
	}

	return NewSession(board, level, config.Clock, config.OnGameEnd), nil
}
