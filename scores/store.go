// Package scores keeps the record of finished games and summarizes it.
//
// A record is written once per game, when the session reaches Won, Lost or
// Abandoned. Records can be kept in a YAML file or a SQLite database.
package scores

import (
	"errors"
	"fmt"
	"time"

	"github.com/they4kman/sweeper/game"
)

var ErrUnknownStore = errors.New("unknown score store")

// Record is one finished game
type Record struct {
	Level    string    `yaml:"level"`
	Outcome  string    `yaml:"outcome"`
	Elapsed  float64   `yaml:"elapsed_seconds"`
	PlayedAt time.Time `yaml:"played_at"`
}

// NewRecord converts a session result into a record played at playedAt
func NewRecord(result game.Result, playedAt time.Time) Record {
	return Record{
		Level:    result.Level,
		Outcome:  result.State.String(),
		Elapsed:  result.Elapsed.Seconds(),
		PlayedAt: playedAt.UTC(),
	}
}

// Store persists records
type Store interface {
	// Add appends a record.
	Add(record Record) error

	// All returns every record, oldest first.
	All() ([]Record, error)

	// Close releases the store's resources.
	Close() error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// Open opens a store of the given kind ("yaml" or "sqlite") at path
func Open(kind, path string) (Store, error) {
	switch kind {
	case "yaml", "yml", "":
		return OpenFile(path)
	case "sqlite":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
}
