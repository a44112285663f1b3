// Package dbtest is a conformance suite run against every database
// backend.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

// Run exercises a fresh manager rooted in its own temporary directory.
func Run(t *testing.T, newManager func(path string) database.Manager) {
	ctx := context.Background()

	open := func(t *testing.T, name string) (database.Manager, database.DB) {
		t.Helper()
		m := newManager(t.TempDir())
		t.Cleanup(func() { _ = m.Close() })
		db, err := m.OpenDB(name)
		require.NoError(t, err)
		return m, db
	}

	t.Run("read write delete", func(t *testing.T) {
		_, db := open(t, "rw")

		_, err := db.Read(ctx, []byte("missing"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v1")))
		got, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		got[0] = 'x'
		again, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), again)

		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v2")))
		got, err = db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)

		require.NoError(t, db.Delete(ctx, []byte("k")))
		_, err = db.Read(ctx, []byte("k"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("batch", func(t *testing.T) {
		_, db := open(t, "batch")
		require.NoError(t, db.Write(ctx, []byte("gone"), []byte("x")))

		err := db.Batch(ctx, []database.BatchOperation{
			{Type: database.BatchPut, Key: []byte("a"), Value: []byte("1")},
			{Type: database.BatchPut, Key: []byte("b"), Value: []byte("2")},
			{Type: database.BatchDelete, Key: []byte("gone")},
		})
		require.NoError(t, err)

		for k, v := range map[string]string{"a": "1", "b": "2"} {
			got, err := db.Read(ctx, []byte(k))
			require.NoError(t, err)
			assert.Equal(t, v, string(got))
		}
		_, err = db.Read(ctx, []byte("gone"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		err = db.Batch(ctx, []database.BatchOperation{
			{Type: database.BatchPut, Key: []byte("c"), Value: []byte("3")},
			{Type: database.BatchOpType(9), Key: []byte("d")},
		})
		assert.ErrorIs(t, err, database.ErrUnknownBatchOp)
		_, err = db.Read(ctx, []byte("c"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("iterator bounds", func(t *testing.T) {
		_, db := open(t, "iter")
		for i := 0; i < 5; i++ {
			require.NoError(t, db.Write(ctx, []byte(fmt.Sprintf("p/%d", i)), []byte{byte(i)}))
		}
		require.NoError(t, db.Write(ctx, []byte("q/0"), []byte("other")))

		collect := func(start, end []byte) []string {
			it, err := db.Iterator(ctx, start, end)
			require.NoError(t, err)
			defer it.Close()
			var keys []string
			for it.Next() {
				keys = append(keys, string(it.Key()))
			}
			require.NoError(t, it.Error())
			return keys
		}

		prefix := []byte("p/")
		assert.Equal(t, []string{"p/0", "p/1", "p/2", "p/3", "p/4"}, collect(prefix, database.PrefixEnd(prefix)))
		assert.Equal(t, []string{"p/1", "p/2"}, collect([]byte("p/1"), []byte("p/3")))
		assert.Len(t, collect(nil, nil), 6)
	})

	t.Run("context and close", func(t *testing.T) {
		m, db := open(t, "ctx")

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, db.Write(cancelled, []byte("k"), []byte("v")), context.Canceled)

		require.NoError(t, m.CloseDB("ctx"))
		assert.ErrorIs(t, m.CloseDB("ctx"), database.ErrDBNotOpen)
		_, err := db.Read(ctx, []byte("k"))
		assert.ErrorIs(t, err, database.ErrDBClosed)
	})

	t.Run("reopen persists", func(t *testing.T) {
		dir := t.TempDir()
		m := newManager(dir)
		db, err := m.OpenDB("persist")
		require.NoError(t, err)
		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v")))
		require.NoError(t, m.Close())

		m = newManager(dir)
		defer m.Close()
		db, err = m.OpenDB("persist")
		require.NoError(t, err)
		got, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})
}
