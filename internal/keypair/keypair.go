// Package keypair holds Ed25519 signing identities.
package keypair

import (
	"bytes"

	"github.com/LeJamon/goKurdBase/internal/codec/strkey"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/crypto"
	"github.com/LeJamon/goKurdBase/internal/crypto/algorithms/ed25519"
	"github.com/LeJamon/goKurdBase/internal/crypto/common"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

var signer = crypto.NewCryptoWrapper(ed25519.NewED25519Provider(), crypto.KeyTypeEd25519)

// Keypair is an Ed25519 public key with an optional secret seed. A
// Keypair without a seed can verify but not sign.
type Keypair struct {
	public []byte
	seed   *crypto.SecretKey
	priv   []byte
}

// Random returns a fresh keypair from a random seed.
func Random() (*Keypair, error) {
	seed, err := crypto.RandomSeed()
	if err != nil {
		return nil, err
	}
	defer crypto.SecureErase(seed)
	return FromRawSeed(seed)
}

// FromRawSeed derives a keypair from a 32-byte seed. The seed is copied.
func FromRawSeed(seed []byte) (*Keypair, error) {
	if len(seed) != crypto.SeedSize {
		return nil, kerrors.Validation("secretKey", "secretKey length is invalid")
	}
	pub, priv, err := signer.GenerateKeypair(seed)
	if err != nil {
		return nil, kerrors.WrapValidation("secretKey", err)
	}
	return &Keypair{public: pub, seed: crypto.NewSecretKeyWithCopy(seed), priv: priv}, nil
}

// FromSecret parses an S-address seed.
func FromSecret(secret string) (*Keypair, error) {
	raw, err := strkey.Decode(strkey.Seed, secret)
	if err != nil {
		return nil, &kerrors.ValidationError{Field: "secret", Msg: "invalid secret key", Err: err}
	}
	defer crypto.SecureErase(raw)
	return FromRawSeed(raw)
}

// FromPublicKey parses a G address into a verify-only keypair.
func FromPublicKey(address string) (*Keypair, error) {
	raw, err := strkey.Decode(strkey.AccountID, address)
	if err != nil {
		return nil, &kerrors.ValidationError{Field: "publicKey", Msg: "invalid public key", Err: err}
	}
	return FromRawPublicKey(raw)
}

// FromRawPublicKey wraps a 32-byte public key.
func FromRawPublicKey(pub []byte) (*Keypair, error) {
	if len(pub) != 32 {
		return nil, kerrors.Validation("publicKey", "publicKey length is invalid")
	}
	return &Keypair{public: bytes.Clone(pub)}, nil
}

// Master returns the network root keypair, seeded with the SHA-256 of the
// network passphrase.
func Master(passphrase string) (*Keypair, error) {
	if passphrase == "" {
		return nil, kerrors.Validation("networkPassphrase", "No network selected. Please pass a network argument, e.g. `Keypair.master(Networks.PUBLIC)`.")
	}
	seed := common.Sha256([]byte(passphrase))
	return FromRawSeed(seed[:])
}

// PublicKey returns the G address.
func (kp *Keypair) PublicKey() string {
	return strkey.MustEncode(strkey.AccountID, kp.public)
}

// RawPublicKey returns a copy of the 32 public key bytes.
func (kp *Keypair) RawPublicKey() []byte {
	return bytes.Clone(kp.public)
}

// CanSign reports whether the keypair holds a seed.
func (kp *Keypair) CanSign() bool {
	return !kp.seed.IsClosed()
}

// Secret returns the S-address seed.
func (kp *Keypair) Secret() (string, error) {
	if !kp.CanSign() {
		return "", errNoSecret
	}
	return strkey.MustEncode(strkey.Seed, kp.seed.Data()), nil
}

// RawSecretKey returns a copy of the 32-byte seed.
func (kp *Keypair) RawSecretKey() ([]byte, error) {
	if !kp.CanSign() {
		return nil, errNoSecret
	}
	return kp.seed.Copy(), nil
}

var errNoSecret = kerrors.Validation("secretKey", "no secret key available")

// Sign returns the 64-byte signature of data.
func (kp *Keypair) Sign(data []byte) ([]byte, error) {
	if !kp.CanSign() {
		return nil, kerrors.Validation("secretKey", "cannot sign: no secret key available")
	}
	return signer.Sign(kp.priv, data)
}

// Verify reports whether sig is a valid signature of data.
func (kp *Keypair) Verify(data, sig []byte) bool {
	return signer.Verify(kp.public, data, sig)
}

// Hint returns the last four bytes of the public key.
func (kp *Keypair) Hint() xdr.SignatureHint {
	var h xdr.SignatureHint
	copy(h[:], kp.public[len(kp.public)-4:])
	return h
}

// SignDecorated signs data and attaches the key hint.
func (kp *Keypair) SignDecorated(data []byte) (xdr.DecoratedSignature, error) {
	sig, err := kp.Sign(data)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	return xdr.DecoratedSignature{Hint: kp.Hint(), Signature: sig}, nil
}

// AccountID returns the wire account id.
func (kp *Keypair) AccountID() xdr.AccountID {
	var id xdr.AccountID
	copy(id.Ed25519[:], kp.public)
	return id
}

// MuxedAccount returns the wire muxed account without an id.
func (kp *Keypair) MuxedAccount() xdr.MuxedAccount {
	return xdr.NewMuxedAccount(kp.AccountID().Ed25519)
}

// Close erases the seed. The keypair can still verify afterwards.
func (kp *Keypair) Close() {
	kp.seed.Close()
	crypto.SecureErase(kp.priv)
	kp.priv = nil
}
