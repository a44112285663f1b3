// Package seqstore persists the next sequence number of each source
// account so that consecutive builds from the command line do not reuse
// one.
package seqstore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/core/account"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

// DBName is the database the book lives in.
const DBName = "sequences"

const defaultCacheSize = 256

var keyPrefix = []byte("seq/")

var (
	ErrUnknownAccount   = errors.New("account is not tracked")
	ErrSequenceConflict = errors.New("sequence number changed concurrently")
	ErrCorruptEntry     = errors.New("corrupt sequence entry")
)

// Entry is one tracked account.
type Entry struct {
	AccountID string
	Sequence  string
}

// Book maps account ids to their current sequence number. Reads go
// through an LRU cache; every read-modify-write holds the book's lock.
type Book struct {
	mu     sync.Mutex
	db     database.DB
	cache  *lru.Cache[string, int64]
	logger *zap.Logger

	cacheSize int
}

type Option func(*Book)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Book) { b.logger = logger }
}

// WithCacheSize sets the number of accounts kept in memory.
func WithCacheSize(n int) Option {
	return func(b *Book) { b.cacheSize = n }
}

// New returns a book stored in db.
func New(db database.DB, opts ...Option) (*Book, error) {
	b := &Book{db: db, logger: zap.NewNop(), cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(b)
	}
	if b.cacheSize <= 0 {
		b.cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, int64](b.cacheSize)
	if err != nil {
		return nil, err
	}
	b.cache = cache
	return b, nil
}

func key(accountID string) []byte {
	return append(append([]byte(nil), keyPrefix...), accountID...)
}

func encode(seq int64) []byte {
	var v [8]byte
	binary.BigEndian.PutUint64(v[:], uint64(seq))
	return v[:]
}

func decode(accountID string, v []byte) (int64, error) {
	if len(v) != 8 {
		return 0, fmt.Errorf("%w: %s has %d bytes", ErrCorruptEntry, accountID, len(v))
	}
	return int64(binary.BigEndian.Uint64(v)), nil
}

func validAccount(accountID string) error {
	if !addresscodec.IsValidAccountID(accountID) {
		return kerrors.Invalid("accountId")
	}
	return nil
}

// load reads the current sequence. Callers hold mu.
func (b *Book) load(ctx context.Context, accountID string) (int64, error) {
	if seq, ok := b.cache.Get(accountID); ok {
		return seq, nil
	}
	v, err := b.db.Read(ctx, key(accountID))
	if errors.Is(err, database.ErrKeyNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
	}
	if err != nil {
		return 0, err
	}
	seq, err := decode(accountID, v)
	if err != nil {
		return 0, err
	}
	b.cache.Add(accountID, seq)
	return seq, nil
}

// store writes seq through to the database. Callers hold mu.
func (b *Book) store(ctx context.Context, accountID string, seq int64) error {
	if err := b.db.Write(ctx, key(accountID), encode(seq)); err != nil {
		b.cache.Remove(accountID)
		return err
	}
	b.cache.Add(accountID, seq)
	return nil
}

// Get returns the current sequence number of accountID.
func (b *Book) Get(ctx context.Context, accountID string) (string, error) {
	if err := validAccount(accountID); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	seq, err := b.load(ctx, accountID)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(seq, 10), nil
}

// Set records sequence as the current sequence number of accountID,
// typically after reading it from the network.
func (b *Book) Set(ctx context.Context, accountID, sequence string) error {
	if err := validAccount(accountID); err != nil {
		return err
	}
	seq, err := account.ParseSequence(sequence)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.store(ctx, accountID, seq); err != nil {
		return err
	}
	b.logger.Debug("sequence set", zap.String("account", accountID), zap.Int64("sequence", seq))
	return nil
}

// Forget stops tracking accountID.
func (b *Book) Forget(ctx context.Context, accountID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Remove(accountID)
	return b.db.Delete(ctx, key(accountID))
}

// List returns every tracked account in key order.
func (b *Book) List(ctx context.Context) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	it, err := b.db.Iterator(ctx, keyPrefix, database.PrefixEnd(keyPrefix))
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []Entry
	for it.Next() {
		id := string(it.Key()[len(keyPrefix):])
		seq, err := decode(id, it.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{AccountID: id, Sequence: strconv.FormatInt(seq, 10)})
	}
	return out, it.Error()
}

// advance moves accountID from expected to expected+1.
func (b *Book) advance(ctx context.Context, accountID string, expected int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.load(ctx, accountID)
	if err != nil {
		return err
	}
	if current != expected {
		return fmt.Errorf("%w: %s is at %d, expected %d", ErrSequenceConflict, accountID, current, expected)
	}
	if current == math.MaxInt64 {
		return kerrors.Validation("sequence", "sequence number overflow")
	}
	if err := b.store(ctx, accountID, current+1); err != nil {
		return err
	}
	b.logger.Debug("sequence advanced", zap.String("account", accountID), zap.Int64("sequence", current+1))
	return nil
}

// Source is a tracked account usable as a transaction builder source.
// Incrementing it advances the stored sequence only if no other Source
// advanced it first.
type Source struct {
	ctx  context.Context
	book *Book
	id   string
	seq  int64
}

var _ account.SequenceSource = (*Source)(nil)

// Source snapshots the current sequence of accountID.
func (b *Book) Source(ctx context.Context, accountID string) (*Source, error) {
	if err := validAccount(accountID); err != nil {
		return nil, err
	}
	b.mu.Lock()
	seq, err := b.load(ctx, accountID)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &Source{ctx: ctx, book: b, id: accountID, seq: seq}, nil
}

func (s *Source) AccountID() string { return s.id }

func (s *Source) SequenceNumber() string {
	return strconv.FormatInt(s.seq, 10)
}

func (s *Source) IncrementSequenceNumber() error {
	if err := s.book.advance(s.ctx, s.id, s.seq); err != nil {
		return err
	}
	s.seq++
	return nil
}
