package tx

import (
	"math"
	"time"

	"go.uber.org/zap"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/account"
	"github.com/LeJamon/goKurdBase/internal/core/memo"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/protocol"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Builder assembles a Transaction for a source account. Build consumes
// one sequence number from the source on success.
type Builder struct {
	source     account.SequenceSource
	operations []operation.Operation
	memo       memo.Memo
	baseFee    uint32
	feeSet     bool
	timeBounds *TimeBounds
	timeoutSet bool
	passphrase string
	logger     *zap.Logger
	now        func() time.Time
	err        error
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithFee sets the per-operation fee in stroops. It is required.
func WithFee(baseFee uint32) BuilderOption {
	return func(b *Builder) {
		b.baseFee = baseFee
		b.feeSet = true
	}
}

func WithMemo(m memo.Memo) BuilderOption {
	return func(b *Builder) { b.memo = m }
}

// WithTimeBounds sets explicit close-time bounds in unix seconds.
func WithTimeBounds(minTime, maxTime uint64) BuilderOption {
	return func(b *Builder) {
		b.timeBounds = &TimeBounds{MinTime: minTime, MaxTime: maxTime}
	}
}

// WithTimeout is SetTimeout as an option.
func WithTimeout(seconds int64) BuilderOption {
	return func(b *Builder) { b.SetTimeout(seconds) }
}

func WithNetworkPassphrase(passphrase string) BuilderOption {
	return func(b *Builder) { b.passphrase = passphrase }
}

func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

// WithClock replaces time.Now for timeout computation.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// NewBuilder returns a builder for source.
func NewBuilder(source account.SequenceSource, opts ...BuilderOption) *Builder {
	b := &Builder{
		source: source,
		memo:   memo.None(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddOperation appends op.
func (b *Builder) AddOperation(op operation.Operation) *Builder {
	b.operations = append(b.operations, op)
	return b
}

// AddMemo replaces the memo.
func (b *Builder) AddMemo(m memo.Memo) *Builder {
	b.memo = m
	return b
}

// SetTimeout bounds the transaction to close within seconds of now.
// protocol.TimeoutInfinite leaves MaxTime unbounded. It fails if a
// MaxTime was already set.
func (b *Builder) SetTimeout(seconds int64) *Builder {
	if b.timeBounds != nil && b.timeBounds.MaxTime > 0 {
		b.fail(kerrors.Validation("timeout",
			"TimeBounds.max_time has been already set - setting timeout would overwrite it."))
		return b
	}
	if seconds < 0 {
		b.fail(kerrors.Validation("timeout", "timeout cannot be negative"))
		return b
	}
	b.timeoutSet = true
	if b.timeBounds == nil {
		b.timeBounds = &TimeBounds{}
	}
	if seconds > protocol.TimeoutInfinite {
		b.timeBounds.MaxTime = uint64(b.now().Unix() + seconds)
	}
	return b
}

// fail records the first builder misuse; Build reports it.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build assembles the transaction and increments the source sequence
// number. The source is left untouched when Build fails.
func (b *Builder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.feeSet {
		return nil, kerrors.Validation("fee", "must specify fee for the transaction (in stroops)")
	}
	if len(b.operations) == 0 {
		return nil, kerrors.Validation("operations", "transaction must contain at least one operation")
	}
	if len(b.operations) > protocol.MaxOperations {
		return nil, kerrors.Validation("operations",
			"transaction cannot contain more than %d operations", protocol.MaxOperations)
	}
	if b.timeBounds == nil {
		return nil, kerrors.Validation("timeBounds",
			"TimeBounds has to be set or you must call setTimeout(TimeoutInfinite).")
	}

	src, err := addresscodec.DecodeMuxedAccount("source", b.source.AccountID(), false)
	if err != nil {
		return nil, err
	}
	current, err := account.ParseSequence(b.source.SequenceNumber())
	if err != nil {
		return nil, err
	}
	if current == math.MaxInt64 {
		return nil, kerrors.Validation("sequence", "sequence number overflow")
	}
	fee := uint64(b.baseFee) * uint64(len(b.operations))
	if fee > math.MaxUint32 {
		return nil, kerrors.Validation("fee", "total fee %d overflows uint32", fee)
	}

	x := xdr.Transaction{
		SourceAccount: src,
		Fee:           uint32(fee),
		SeqNum:        current + 1,
		TimeBounds:    &xdr.TimeBounds{MinTime: b.timeBounds.MinTime, MaxTime: b.timeBounds.MaxTime},
		Memo:          b.memo.ToXDR(),
		Operations:    make([]xdr.Operation, len(b.operations)),
	}
	for i, op := range b.operations {
		if x.Operations[i], err = op.ToXDR(); err != nil {
			return nil, err
		}
	}

	t, err := newTransaction(xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1:   &xdr.TransactionV1Envelope{Tx: x},
	}, b.passphrase)
	if err != nil {
		return nil, err
	}
	if err := b.source.IncrementSequenceNumber(); err != nil {
		return nil, err
	}
	b.logger.Debug("built transaction",
		zap.String("source", t.Source()),
		zap.String("sequence", t.Sequence()),
		zap.Int("operations", len(b.operations)),
		zap.Uint32("fee", t.Fee()),
	)
	return t, nil
}
