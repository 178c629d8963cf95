package scores

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/they4kman/sweeper/game"
)

var storeKinds = []struct {
	kind string
	file string
}{
	{"yaml", "scores.yaml"},
	{"sqlite", "scores.db"},
}

func newTestStore(t *testing.T, kind, file string) Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", file)
	store, err := Open(kind, path)
	if err != nil {
		t.Fatalf("Open(%q, %q): %v", kind, path, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreEmpty(t *testing.T) {
	for _, sk := range storeKinds {
		t.Run(sk.kind, func(t *testing.T) {
			store := newTestStore(t, sk.kind, sk.file)

			records, err := store.All()
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			if len(records) != 0 {
				t.Fatalf("got %d records from an empty store", len(records))
			}
		})
	}
}

func TestStoreAddAll(t *testing.T) {
	playedAt := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	want := []Record{
		{Level: "Easy", Outcome: "won", Elapsed: 31.5, PlayedAt: playedAt},
		{Level: "Hard", Outcome: "lost", Elapsed: 4.25, PlayedAt: playedAt.Add(time.Minute)},
		{Level: "Easy", Outcome: "abandoned", Elapsed: 12, PlayedAt: playedAt.Add(2 * time.Minute)},
	}

	for _, sk := range storeKinds {
		t.Run(sk.kind, func(t *testing.T) {
			store := newTestStore(t, sk.kind, sk.file)

			for _, record := range want {
				if err := store.Add(record); err != nil {
					t.Fatalf("Add(%+v): %v", record, err)
				}
			}

			got, err := store.All()
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d records, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i].Level != want[i].Level || got[i].Outcome != want[i].Outcome || got[i].Elapsed != want[i].Elapsed {
					t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
				}
				if !got[i].PlayedAt.Equal(want[i].PlayedAt) {
					t.Errorf("record %d played at %v, want %v", i, got[i].PlayedAt, want[i].PlayedAt)
				}
			}
		})
	}
}

func TestStoreReopen(t *testing.T) {
	for _, sk := range storeKinds {
		t.Run(sk.kind, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), sk.file)

			store, err := Open(sk.kind, path)
			if err != nil {
				t.Fatal(err)
			}
			if err := store.Add(Record{Level: "Medium", Outcome: "won", Elapsed: 80, PlayedAt: time.Now()}); err != nil {
				t.Fatal(err)
			}
			store.Close()

			store, err = Open(sk.kind, path)
			if err != nil {
				t.Fatal(err)
			}
			defer store.Close()

			records, err := store.All()
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 1 || records[0].Level != "Medium" {
				t.Fatalf("records after reopen = %+v", records)
			}
		})
	}
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open("csv", filepath.Join(t.TempDir(), "scores.csv"))
	if !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("Open(csv) error = %v, want ErrUnknownStore", err)
	}
}

func TestOpenFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenFile(dir); err == nil {
		t.Fatal("expected error opening a directory as a score file")
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("level: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.All(); err == nil {
		t.Fatal("expected parse error")
	}
	if err := store.Add(Record{Level: "Easy"}); err == nil {
		t.Fatal("Add should not overwrite an unreadable file")
	}
}

func TestNewRecord(t *testing.T) {
	playedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	record := NewRecord(game.Result{Level: "Hard", State: game.Lost, Elapsed: 1500 * time.Millisecond}, playedAt)

	if record.Level != "Hard" || record.Outcome != "lost" || record.Elapsed != 1.5 {
		t.Fatalf("NewRecord = %+v", record)
	}
	if record.PlayedAt.Location() != time.UTC || !record.PlayedAt.Equal(playedAt) {
		t.Fatalf("PlayedAt = %v, want %v in UTC", record.PlayedAt, playedAt)
	}
}
