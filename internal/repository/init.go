package repository

import (
	"encoding/json"
	"fmt"
	"os"
)

var collectionNames = []string{
	"users",
	"products",
	"gallery",
	"orders",
	"members",
	"travel-posts",
}

// EnsureDataFiles creates the data directory and seeds every collection file
// that does not exist yet with an empty array.
func EnsureDataFiles(dataPath string) error {
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range collectionNames {
		if err := NewCollection[json.RawMessage](dataPath, name).EnsureFile(); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}
