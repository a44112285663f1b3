package builders

import (
	"github.com/LeJamon/goKurdBase/internal/core/memo"
	"github.com/LeJamon/goKurdBase/internal/core/network"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/protocol"
	"github.com/LeJamon/goKurdBase/internal/core/tx"
)

// TxBuilder accumulates operations for one source account. Defaults: the
// base fee, no expiry, and the test network.
type TxBuilder struct {
	from       *Account
	bodies     []operation.Body
	sources    []string
	fee        uint32
	memo       memo.Memo
	passphrase string
	timeBounds *tx.TimeBounds
	timeout    int64
	clock      *ManualClock
	signers    []*Account
}

// Tx starts a transaction from account with the given operation bodies.
func Tx(from *Account, bodies ...operation.Body) *TxBuilder {
	b := &TxBuilder{
		from:       from,
		fee:        protocol.BaseFee,
		memo:       memo.None(),
		passphrase: network.TestnetPassphrase,
	}
	for _, body := range bodies {
		b.Op(body)
	}
	return b
}

// Op appends an operation.
func (b *TxBuilder) Op(body operation.Body) *TxBuilder {
	b.bodies = append(b.bodies, body)
	b.sources = append(b.sources, "")
	return b
}

// OpFrom appends an operation with its own source account.
func (b *TxBuilder) OpFrom(source *Account, body operation.Body) *TxBuilder {
	b.bodies = append(b.bodies, body)
	b.sources = append(b.sources, source.Address())
	return b
}

// Fee sets the per-operation fee in stroops.
func (b *TxBuilder) Fee(f uint32) *TxBuilder {
	b.fee = f
	return b
}

// MemoText attaches a text memo. Invalid text panics.
func (b *TxBuilder) MemoText(text string) *TxBuilder {
	m, err := memo.Text(text)
	if err != nil {
		panic(err)
	}
	b.memo = m
	return b
}

// TimeBounds sets explicit bounds instead of no expiry.
func (b *TxBuilder) TimeBounds(minTime, maxTime uint64) *TxBuilder {
	b.timeBounds = &tx.TimeBounds{MinTime: minTime, MaxTime: maxTime}
	return b
}

// Timeout bounds the transaction to close within seconds of clock's
// current time.
func (b *TxBuilder) Timeout(seconds int64, clock *ManualClock) *TxBuilder {
	b.timeout = seconds
	b.clock = clock
	return b
}

// Network selects a passphrase other than the test network's.
func (b *TxBuilder) Network(passphrase string) *TxBuilder {
	b.passphrase = passphrase
	return b
}

// SignedBy signs the built transaction with each account in order.
func (b *TxBuilder) SignedBy(accounts ...*Account) *TxBuilder {
	b.signers = append(b.signers, accounts...)
	return b
}

// Build assembles, signs and returns the transaction, advancing the
// source account's sequence number.
func (b *TxBuilder) Build() (*tx.Transaction, error) {
	opts := []tx.BuilderOption{
		tx.WithFee(b.fee),
		tx.WithMemo(b.memo),
		tx.WithNetworkPassphrase(b.passphrase),
	}
	switch {
	case b.timeBounds != nil:
		opts = append(opts, tx.WithTimeBounds(b.timeBounds.MinTime, b.timeBounds.MaxTime))
	case b.clock != nil:
		opts = append(opts, tx.WithClock(b.clock.Now), tx.WithTimeout(b.timeout))
	default:
		opts = append(opts, tx.WithTimeout(protocol.TimeoutInfinite))
	}

	builder := tx.NewBuilder(b.from, opts...)
	for i, body := range b.bodies {
		var opOpts []operation.Option
		if b.sources[i] != "" {
			opOpts = append(opOpts, operation.WithSource(b.sources[i]))
		}
		op, err := operation.New(body, opOpts...)
		if err != nil {
			return nil, err
		}
		builder.AddOperation(op)
	}
	built, err := builder.Build()
	if err != nil {
		return nil, err
	}
	for _, signer := range b.signers {
		if err := built.Sign(signer.Keypair); err != nil {
			return nil, err
		}
	}
	return built, nil
}

// MustBuild is Build for fixtures known to be valid.
func (b *TxBuilder) MustBuild() *tx.Transaction {
	built, err := b.Build()
	if err != nil {
		panic(err)
	}
	return built
}
