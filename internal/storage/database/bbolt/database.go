// Package bbolt stores key/value data in a single bucket of a bbolt file.
package bbolt

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

type DB struct {
	db     *bbolt.DB
	bucket []byte
}

var _ database.DB = (*DB)(nil)

func NewDB(db *bbolt.DB, bucket []byte) *DB {
	return &DB{
		db:     db,
		bucket: bucket,
	}
}

func (b *DB) check(ctx context.Context) error {
	if b.db == nil {
		return database.ErrDBClosed
	}
	return ctx.Err()
}

// mapErr translates bbolt's closed-file error.
func mapErr(err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return database.ErrDBClosed
	}
	return err
}

func (b *DB) bucketIn(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	bucket := tx.Bucket(b.bucket)
	if bucket == nil {
		return nil, fmt.Errorf("bucket %s not found", string(b.bucket))
	}
	return bucket, nil
}

func (b *DB) Read(ctx context.Context, key []byte) ([]byte, error) {
	if err := b.check(ctx); err != nil {
		return nil, err
	}

	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket, err := b.bucketIn(tx)
		if err != nil {
			return err
		}
		v := bucket.Get(key)
		if v == nil {
			return database.ErrKeyNotFound
		}
		// bbolt values are only valid during the transaction
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return value, nil
}

func (b *DB) Write(ctx context.Context, key []byte, value []byte) error {
	if err := b.check(ctx); err != nil {
		return err
	}
	return mapErr(b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := b.bucketIn(tx)
		if err != nil {
			return err
		}
		return bucket.Put(key, value)
	}))
}

func (b *DB) Delete(ctx context.Context, key []byte) error {
	if err := b.check(ctx); err != nil {
		return err
	}
	return mapErr(b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := b.bucketIn(tx)
		if err != nil {
			return err
		}
		return bucket.Delete(key)
	}))
}

// Batch applies ops in one read-write transaction.
func (b *DB) Batch(ctx context.Context, ops []database.BatchOperation) error {
	if err := b.check(ctx); err != nil {
		return err
	}
	return mapErr(b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := b.bucketIn(tx)
		if err != nil {
			return err
		}
		for _, op := range ops {
			switch op.Type {
			case database.BatchPut:
				err = bucket.Put(op.Key, op.Value)
			case database.BatchDelete:
				err = bucket.Delete(op.Key)
			default:
				return fmt.Errorf("%w: %d", database.ErrUnknownBatchOp, op.Type)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}))
}

// Iterator holds a read-only transaction until Close. Callers must not
// write to the same DB from the iterating goroutine before closing it.
type Iterator struct {
	tx      *bbolt.Tx
	cursor  *bbolt.Cursor
	started bool
	current struct {
		key, value []byte
	}
	start, end []byte
}

func (b *DB) Iterator(ctx context.Context, start, end []byte) (database.Iterator, error) {
	if err := b.check(ctx); err != nil {
		return nil, err
	}

	tx, err := b.db.Begin(false)
	if err != nil {
		return nil, mapErr(err)
	}
	bucket, err := b.bucketIn(tx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	return &Iterator{
		tx:     tx,
		cursor: bucket.Cursor(),
		start:  start,
		end:    end,
	}, nil
}

func (it *Iterator) Next() bool {
	var k, v []byte
	if !it.started {
		it.started = true
		if it.start == nil {
			k, v = it.cursor.First()
		} else {
			k, v = it.cursor.Seek(it.start)
		}
	} else {
		k, v = it.cursor.Next()
	}

	if k == nil || (it.end != nil && bytes.Compare(k, it.end) >= 0) {
		it.current.key = nil
		it.current.value = nil
		return false
	}

	it.current.key = append([]byte(nil), k...)
	it.current.value = append([]byte(nil), v...)
	return true
}

func (it *Iterator) Key() []byte {
	return it.current.key
}

func (it *Iterator) Value() []byte {
	return it.current.value
}

func (it *Iterator) Error() error {
	return nil
}

func (it *Iterator) Close() error {
	return it.tx.Rollback()
}
