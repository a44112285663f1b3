// Package pebble stores key/value data in a cockroachdb/pebble LSM tree.
package pebble

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

type DB struct {
	db     *pebble.DB
	closed *atomic.Bool
}

var _ database.DB = (*DB)(nil)

func newDB(db *pebble.DB, closed *atomic.Bool) *DB {
	return &DB{db: db, closed: closed}
}

func (p *DB) check(ctx context.Context) error {
	if p.db == nil || p.closed.Load() {
		return database.ErrDBClosed
	}
	return ctx.Err()
}

func (p *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}

	val, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, database.ErrKeyNotFound
		}
		return nil, err
	}
	defer closer.Close()

	return append([]byte(nil), val...), nil
}

func (p *DB) Write(ctx context.Context, key, value []byte) error {
	if err := p.check(ctx); err != nil {
		return err
	}
	return p.db.Set(key, value, pebble.Sync)
}

func (p *DB) Delete(ctx context.Context, key []byte) error {
	if err := p.check(ctx); err != nil {
		return err
	}
	return p.db.Delete(key, pebble.Sync)
}

// Batch applies ops atomically.
func (p *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if err := p.check(ctx); err != nil {
		return err
	}

	batch := p.db.NewBatch()
	defer batch.Close()

	for _, op := range ops {
		switch op.Type {
		case database.BatchPut:
			if err := batch.Set(op.Key, op.Value, nil); err != nil {
				return err
			}
		case database.BatchDelete:
			if err := batch.Delete(op.Key, nil); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %d", database.ErrUnknownBatchOp, op.Type)
		}
	}

	return batch.Commit(pebble.Sync)
}

type Iterator struct {
	iter    *pebble.Iterator
	started bool
	current struct {
		key, value []byte
	}
}

func (p *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}

	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})
	if err != nil {
		return nil, err
	}
	return &Iterator{iter: iter}, nil
}

func (it *Iterator) Next() bool {
	var ok bool
	if !it.started {
		it.started = true
		ok = it.iter.First()
	} else {
		ok = it.iter.Next()
	}
	if !ok {
		it.current.key, it.current.value = nil, nil
		return false
	}

	// Pebble reuses its buffers between steps.
	it.current.key = append([]byte(nil), it.iter.Key()...)
	it.current.value = append([]byte(nil), it.iter.Value()...)
	return true
}

func (it *Iterator) Key() []byte {
	return it.current.key
}

func (it *Iterator) Value() []byte {
	return it.current.value
}

func (it *Iterator) Error() error {
	return it.iter.Error()
}

func (it *Iterator) Close() error {
	return it.iter.Close()
}
