package tx

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/network"
	"github.com/LeJamon/goKurdBase/internal/core/protocol"
	"github.com/LeJamon/goKurdBase/internal/keypair"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Signer produces decorated signatures over a transaction hash.
// *keypair.Keypair implements it.
type Signer interface {
	PublicKey() string
	SignDecorated(data []byte) (xdr.DecoratedSignature, error)
}

var _ Signer = (*keypair.Keypair)(nil)

// signable is the signing state shared by Transaction and
// FeeBumpTransaction. The signature base is fixed at construction; only
// the signature list changes afterwards.
type signable struct {
	passphrase string
	base       []byte
	hash       [32]byte
	signatures []xdr.DecoratedSignature
}

// newSignable computes the signature base
// networkID || envelope prefix || body.
func newSignable(passphrase string, prefix protocol.EnvelopePrefix, body xdr.Marshaler, sigs []xdr.DecoratedSignature) (signable, error) {
	id, err := network.IDFor(passphrase)
	if err != nil {
		return signable{}, err
	}
	raw, err := xdr.Marshal(body)
	if err != nil {
		return signable{}, kerrors.Decode(err, "encoding transaction")
	}
	base := make([]byte, 0, len(id)+len(prefix)+len(raw))
	base = append(base, id[:]...)
	base = append(base, prefix.Bytes()...)
	base = append(base, raw...)
	return signable{
		passphrase: passphrase,
		base:       base,
		hash:       sha256.Sum256(base),
		signatures: copySignatures(sigs),
	}, nil
}

// NetworkPassphrase returns the passphrase the transaction is bound to.
func (s *signable) NetworkPassphrase() string { return s.passphrase }

// SignatureBase returns the bytes whose SHA-256 is signed.
func (s *signable) SignatureBase() []byte {
	return append([]byte(nil), s.base...)
}

// Hash returns the SHA-256 of the signature base.
func (s *signable) Hash() [32]byte { return s.hash }

// Signatures returns a copy of the signature list.
func (s *signable) Signatures() []xdr.DecoratedSignature {
	return copySignatures(s.signatures)
}

// Sign appends one signature per signer. Nothing is appended if any
// signer fails.
func (s *signable) Sign(signers ...Signer) error {
	added := make([]xdr.DecoratedSignature, 0, len(signers))
	for _, signer := range signers {
		sig, err := signer.SignDecorated(s.hash[:])
		if err != nil {
			return err
		}
		added = append(added, sig)
	}
	s.signatures = append(s.signatures, added...)
	return nil
}

// SignHashX appends a hash-x signature: the preimage itself, hinted by
// the last four bytes of its SHA-256.
func (s *signable) SignHashX(preimage []byte) error {
	if len(preimage) > protocol.MaxPreimageLen {
		return kerrors.Validation("preimage", "preimage cannnot be longer than %d bytes", protocol.MaxPreimageLen)
	}
	h := sha256.Sum256(preimage)
	var hint xdr.SignatureHint
	copy(hint[:], h[len(h)-4:])
	s.signatures = append(s.signatures, xdr.DecoratedSignature{
		Hint:      hint,
		Signature: append([]byte(nil), preimage...),
	})
	return nil
}

// AddSignature verifies a base64 signature by publicKey over Hash and
// appends it. The list is unchanged when verification fails.
func (s *signable) AddSignature(publicKey, signature string) error {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return kerrors.Signature("Invalid signature")
	}
	return s.AddSignatureRaw(publicKey, raw)
}

// AddSignatureRaw is AddSignature for a signature already in bytes. The
// bytes are copied.
func (s *signable) AddSignatureRaw(publicKey string, signature []byte) error {
	kp, err := keypair.FromPublicKey(publicKey)
	if err != nil {
		return err
	}
	if !kp.Verify(s.hash[:], signature) {
		return kerrors.Signature("Invalid signature")
	}
	s.signatures = append(s.signatures, xdr.DecoratedSignature{
		Hint:      kp.Hint(),
		Signature: append([]byte(nil), signature...),
	})
	return nil
}

// GetKeypairSignature returns the base64 signature of kp over Hash
// without adding it.
func (s *signable) GetKeypairSignature(kp *keypair.Keypair) (string, error) {
	sig, err := kp.Sign(s.hash[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

func copySignatures(sigs []xdr.DecoratedSignature) []xdr.DecoratedSignature {
	if sigs == nil {
		return nil
	}
	out := make([]xdr.DecoratedSignature, len(sigs))
	for i, sig := range sigs {
		out[i] = xdr.DecoratedSignature{Hint: sig.Hint, Signature: append([]byte(nil), sig.Signature...)}
	}
	return out
}
