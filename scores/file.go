package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v2"
)

// FileStore keeps all records as a YAML list in a single file
type FileStore struct {
	path string
	mu   sync.Mutex
}

// OpenFile prepares a file store at path, creating its directory if needed.
// The file itself is created on the first Add.
func OpenFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create scores directory: %w", err)
	}

	stat, err := os.Stat(path)
	if err == nil && stat.IsDir() {
		return nil, fmt.Errorf("%s is a directory; cannot store scores in it", path)
	}

	return &FileStore{path: path}, nil
}

func (store *FileStore) Add(record Record) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	records, err := store.read()
	if err != nil {
		return err
	}
	records = append(records, record)

	out, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	// Write beside the target and rename over it
	tmp, err := os.CreateTemp(filepath.Dir(store.path), filepath.Base(store.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp scores file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), store.path); err != nil {
		return fmt.Errorf("replace scores file: %w", err)
	}
	return nil
}

func (store *FileStore) All() ([]Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.read()
}

func (store *FileStore) read() ([]Record, error) {
	in, err := os.ReadFile(store.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	var records []Record
	if err := yaml.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("parse scores %s: %w", store.path, err)
	}
	return records, nil
}

func (store *FileStore) Close() error { return nil }
