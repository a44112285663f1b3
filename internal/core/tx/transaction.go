// Package tx assembles, signs and parses transaction envelopes.
package tx

import (
	"errors"
	"strconv"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/memo"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/protocol"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

var (
	ErrUnsupportedEnvelope = errors.New("unsupported envelope type")
	ErrNoOperations        = errors.New("transaction has no operations")
)

// TimeBounds is the close-time window of a transaction in unix seconds.
// MaxTime 0 means unbounded.
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

// Transaction is a parsed v0 or v1 transaction with its signatures.
// Everything except the signature list is immutable.
type Transaction struct {
	signable

	envType    xdr.EnvelopeType
	v0         *xdr.TransactionV0
	tx         xdr.Transaction
	source     string
	memo       memo.Memo
}

// newTransaction parses a v0 or v1 envelope. v0 transactions are hashed
// in their v1 form.
func newTransaction(env xdr.TransactionEnvelope, passphrase string) (*Transaction, error) {
	t := &Transaction{envType: env.Type}
	var (
		sigs []xdr.DecoratedSignature
		err  error
	)
	switch {
	case env.Type == xdr.EnvelopeTypeTxV0 && env.V0 != nil:
		v0, err := cloneV0(env.V0.Tx)
		if err != nil {
			return nil, err
		}
		t.v0 = &v0
		if t.tx, err = cloneTx(v0.ToV1()); err != nil {
			return nil, err
		}
		sigs = env.V0.Signatures
	case env.Type == xdr.EnvelopeTypeTx && env.V1 != nil:
		if t.tx, err = cloneTx(env.V1.Tx); err != nil {
			return nil, err
		}
		sigs = env.V1.Signatures
	default:
		return nil, kerrors.Decode(ErrUnsupportedEnvelope, "envelope type %s", env.Type)
	}
	if len(t.tx.Operations) == 0 {
		return nil, kerrors.Decode(ErrNoOperations, "envelope")
	}

	if t.signable, err = newSignable(passphrase, protocol.EnvelopePrefixTx, &t.tx, sigs); err != nil {
		return nil, err
	}
	t.source = addresscodec.EncodeMuxedAccount(t.tx.SourceAccount)
	if t.memo, err = memo.FromXDR(t.tx.Memo); err != nil {
		return nil, err
	}
	if _, err = parseOperations(t.tx.Operations); err != nil {
		return nil, err
	}
	return t, nil
}

// EnvelopeType reports whether the transaction came from a v0 or v1
// envelope.
func (t *Transaction) EnvelopeType() xdr.EnvelopeType { return t.envType }

// Source returns the G address of the source account.
func (t *Transaction) Source() string { return t.source }

// Fee returns the total fee in stroops.
func (t *Transaction) Fee() uint32 { return t.tx.Fee }

// Sequence returns the sequence number as a decimal string.
func (t *Transaction) Sequence() string { return strconv.FormatInt(t.tx.SeqNum, 10) }

func (t *Transaction) Memo() memo.Memo { return t.memo }

// TimeBounds returns nil when the transaction has none.
func (t *Transaction) TimeBounds() *TimeBounds {
	if t.tx.TimeBounds == nil {
		return nil
	}
	return &TimeBounds{MinTime: t.tx.TimeBounds.MinTime, MaxTime: t.tx.TimeBounds.MaxTime}
}

// Operations returns freshly parsed operations; editing them never
// touches the transaction.
func (t *Transaction) Operations() []operation.Operation {
	// Parsing succeeded in newTransaction and t.tx never changes.
	ops, _ := parseOperations(t.tx.Operations)
	return ops
}

func parseOperations(xs []xdr.Operation) ([]operation.Operation, error) {
	ops := make([]operation.Operation, len(xs))
	for i, x := range xs {
		op, err := operation.FromXDR(x)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

// ToEnvelope returns an independent copy of the signed envelope.
func (t *Transaction) ToEnvelope() (xdr.TransactionEnvelope, error) {
	if t.v0 != nil {
		v0, err := cloneV0(*t.v0)
		if err != nil {
			return xdr.TransactionEnvelope{}, err
		}
		return xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTxV0,
			V0:   &xdr.TransactionV0Envelope{Tx: v0, Signatures: t.Signatures()},
		}, nil
	}
	v1, err := t.v1Envelope()
	if err != nil {
		return xdr.TransactionEnvelope{}, err
	}
	return xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeTx, V1: &v1}, nil
}

// ToXDR returns the base64 envelope.
func (t *Transaction) ToXDR() (string, error) {
	env, err := t.ToEnvelope()
	if err != nil {
		return "", err
	}
	return xdr.MarshalBase64(&env)
}

// v1Envelope returns the envelope in v1 form, promoting a v0 source.
func (t *Transaction) v1Envelope() (xdr.TransactionV1Envelope, error) {
	tx, err := cloneTx(t.tx)
	if err != nil {
		return xdr.TransactionV1Envelope{}, err
	}
	return xdr.TransactionV1Envelope{Tx: tx, Signatures: t.Signatures()}, nil
}

func cloneTx(x xdr.Transaction) (xdr.Transaction, error) {
	c, err := xdr.Clone(&x)
	if err != nil {
		return xdr.Transaction{}, err
	}
	return *c, nil
}

func cloneV0(x xdr.TransactionV0) (xdr.TransactionV0, error) {
	c, err := xdr.Clone(&x)
	if err != nil {
		return xdr.TransactionV0{}, err
	}
	return *c, nil
}
