package tx

import (
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/keypair"
)

// Envelope is the signing surface common to Transaction and
// FeeBumpTransaction.
type Envelope interface {
	NetworkPassphrase() string
	SignatureBase() []byte
	Hash() [32]byte
	Signatures() []xdr.DecoratedSignature
	Sign(signers ...Signer) error
	SignHashX(preimage []byte) error
	AddSignature(publicKey, signature string) error
	AddSignatureRaw(publicKey string, signature []byte) error
	GetKeypairSignature(kp *keypair.Keypair) (string, error)
	ToEnvelope() (xdr.TransactionEnvelope, error)
	ToXDR() (string, error)
}

var (
	_ Envelope = (*Transaction)(nil)
	_ Envelope = (*FeeBumpTransaction)(nil)
)

// FromEnvelope parses env for the network identified by passphrase. The
// result is a *Transaction for v0 and v1 envelopes and a
// *FeeBumpTransaction for fee bumps.
func FromEnvelope(env xdr.TransactionEnvelope, passphrase string) (Envelope, error) {
	if env.Type == xdr.EnvelopeTypeTxFeeBump && env.FeeBump != nil {
		fb, err := newFeeBumpTransaction(*env.FeeBump, passphrase)
		if err != nil {
			return nil, err
		}
		return fb, nil
	}
	t, err := newTransaction(env, passphrase)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FromXDR parses a base64 envelope.
func FromXDR(envelope, passphrase string) (Envelope, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.UnmarshalBase64(envelope, &env); err != nil {
		return nil, err
	}
	return FromEnvelope(env, passphrase)
}
