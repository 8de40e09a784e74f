package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a record id matches nothing in a collection.
var ErrNotFound = errors.New("record not found")

// Collection persists one entity collection as a single JSON array file.
// Every read parses the whole file and every write rewrites it; callers do a
// load, mutate the slice in memory and save it back. There is no locking, so
// two concurrent writers race and the last save wins.
type Collection[T any] struct {
	path string
}

func NewCollection[T any](dataPath, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dataPath, name+".json")}
}

func (c *Collection[T]) Load() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	return records, nil
}

func (c *Collection[T]) Save(records []T) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}

	if err := os.WriteFile(c.path, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// EnsureFile seeds an empty collection file if none exists yet.
func (c *Collection[T]) EnsureFile() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", c.path, err)
	}
	return os.WriteFile(c.path, []byte("[]\n"), 0644)
}
