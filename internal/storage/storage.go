// Package storage selects a key/value backend by name.
package storage

import (
	"fmt"
	"os"

	"github.com/LeJamon/goKurdBase/internal/storage/database"
	"github.com/LeJamon/goKurdBase/internal/storage/database/bbolt"
	"github.com/LeJamon/goKurdBase/internal/storage/database/pebble"
)

// NewManager returns a manager for backend rooted at path, creating the
// directory if needed.
func NewManager(backend, path string) (database.Manager, error) {
	b, err := database.ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	switch b {
	case database.BackendBbolt:
		return bbolt.NewManager(path), nil
	default:
		return pebble.NewManager(path), nil
	}
}
