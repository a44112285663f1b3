package database

import "errors"

var (
	// ErrDBClosed is returned when trying to operate on a closed database
	ErrDBClosed = errors.New("database is closed")

	// ErrKeyNotFound is returned when a key doesn't exist in the database
	ErrKeyNotFound = errors.New("key not found")

	// ErrDBNotOpen is returned by CloseDB for a name that was never opened
	ErrDBNotOpen = errors.New("database not open")

	// ErrUnknownBackend is returned for an unsupported storage engine name
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrUnknownBatchOp is returned for a batch entry with an invalid type
	ErrUnknownBatchOp = errors.New("unknown batch operation type")
)
