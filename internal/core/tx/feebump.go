package tx

import (
	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/protocol"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// FeeBumpTransaction pays a new fee for a signed inner transaction. It
// signs over the fee source, fee and inner envelope.
type FeeBumpTransaction struct {
	signable

	tx        xdr.FeeBumpTransaction
	feeSource string
	inner     *Transaction
}

func newFeeBumpTransaction(env xdr.FeeBumpTransactionEnvelope, passphrase string) (*FeeBumpTransaction, error) {
	fb, err := xdr.Clone(&env.Tx)
	if err != nil {
		return nil, err
	}
	inner, err := newTransaction(xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeTx, V1: &fb.InnerTx}, passphrase)
	if err != nil {
		return nil, err
	}
	t := &FeeBumpTransaction{
		tx:        *fb,
		feeSource: addresscodec.EncodeMuxedAccount(fb.FeeSource),
		inner:     inner,
	}
	if t.signable, err = newSignable(passphrase, protocol.EnvelopePrefixTxFeeBump, &t.tx, env.Signatures); err != nil {
		return nil, err
	}
	return t, nil
}

// FeeSource returns the G address paying the fee.
func (t *FeeBumpTransaction) FeeSource() string { return t.feeSource }

// Fee returns the total fee in stroops.
func (t *FeeBumpTransaction) Fee() int64 { return t.tx.Fee }

// InnerTransaction returns a copy of the wrapped transaction with its own
// signatures. Signing the copy does not change the fee bump.
func (t *FeeBumpTransaction) InnerTransaction() *Transaction {
	inner := *t.inner
	inner.signatures = copySignatures(t.inner.signatures)
	return &inner
}

// ToEnvelope returns an independent copy of the signed envelope.
func (t *FeeBumpTransaction) ToEnvelope() (xdr.TransactionEnvelope, error) {
	fb, err := xdr.Clone(&t.tx)
	if err != nil {
		return xdr.TransactionEnvelope{}, err
	}
	return xdr.TransactionEnvelope{
		Type:    xdr.EnvelopeTypeTxFeeBump,
		FeeBump: &xdr.FeeBumpTransactionEnvelope{Tx: *fb, Signatures: t.Signatures()},
	}, nil
}

func (t *FeeBumpTransaction) ToXDR() (string, error) {
	env, err := t.ToEnvelope()
	if err != nil {
		return "", err
	}
	return xdr.MarshalBase64(&env)
}

// BuildFeeBump wraps inner in a fee bump paid by feeSource. baseFee is the
// per-operation rate; the bump itself counts as one extra operation. A v0
// inner transaction is promoted to v1 with its signatures kept.
func BuildFeeBump(feeSource string, baseFee uint32, inner *Transaction, passphrase string) (*FeeBumpTransaction, error) {
	if inner == nil {
		return nil, kerrors.Validation("innerTx", "inner transaction is required")
	}
	src, err := addresscodec.DecodeMuxedAccount("feeSource", feeSource, false)
	if err != nil {
		return nil, err
	}
	ops := int64(len(inner.tx.Operations))
	innerFee := int64(inner.Fee())
	minFee := int64(protocol.BaseFee)
	// Compare baseFee*ops with the inner fee so fractional rates are not
	// rounded down.
	if int64(baseFee) < minFee || int64(baseFee)*ops < innerFee {
		minRate := (innerFee + ops - 1) / ops
		if minRate < minFee {
			minRate = minFee
		}
		return nil, kerrors.Validation("baseFee", "Invalid baseFee, it should be at least %d stroops.", minRate)
	}
	innerEnv, err := inner.v1Envelope()
	if err != nil {
		return nil, err
	}
	env := xdr.FeeBumpTransactionEnvelope{
		Tx: xdr.FeeBumpTransaction{
			FeeSource: src,
			Fee:       int64(baseFee) * (ops + 1),
			InnerTx:   innerEnv,
		},
	}
	return newFeeBumpTransaction(env, passphrase)
}
