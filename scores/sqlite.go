package scores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps records in a SQLite database, so several games may
// report into the same file
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and initializes the
// schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create scores directory: %w", err)
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (store *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		level           TEXT NOT NULL,
		outcome         TEXT NOT NULL,
		elapsed_seconds REAL NOT NULL,
		played_at       TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scores_level ON scores(level, outcome);
	`
	_, err := store.db.Exec(schema)
	return err
}

func (store *SQLiteStore) Add(record Record) error {
	return retryOnContention(func() error {
		_, err := store.db.Exec(
			`INSERT INTO scores (level, outcome, elapsed_seconds, played_at) VALUES (?, ?, ?, ?)`,
			record.Level, record.Outcome, record.Elapsed, record.PlayedAt.UTC().Format(time.RFC3339Nano),
		)
		return err
	})
}

func (store *SQLiteStore) All() ([]Record, error) {
	rows, err := store.db.Query(
		`SELECT level, outcome, elapsed_seconds, played_at FROM scores ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var playedAt string
		if err := rows.Scan(&record.Level, &record.Outcome, &record.Elapsed, &playedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		record.PlayedAt, err = time.Parse(time.RFC3339Nano, playedAt)
		if err != nil {
			return nil, fmt.Errorf("parse played_at %q: %w", playedAt, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (store *SQLiteStore) Close() error { return store.db.Close() }
