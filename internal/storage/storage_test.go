package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/storage"
	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

func TestNewManager(t *testing.T) {
	for _, backend := range []string{"pebble", "bbolt"} {
		t.Run(backend, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested", "store")
			m, err := storage.NewManager(backend, dir)
			require.NoError(t, err)
			defer m.Close()

			db, err := m.OpenDB("probe")
			require.NoError(t, err)
			require.NoError(t, db.Write(context.Background(), []byte("k"), []byte("v")))
			_, err = os.Stat(filepath.Join(dir, "probe.db"))
			assert.NoError(t, err)
		})
	}

	_, err := storage.NewManager("sqlite", t.TempDir())
	assert.ErrorIs(t, err, database.ErrUnknownBackend)
}
