package ed25519

import (
	"crypto/ed25519"
	"errors"
)

// ED25519SignatureProvider signs and verifies with Ed25519 over raw key
// bytes.
type ED25519SignatureProvider struct{}

var (
	ErrInvalidSeed       = errors.New("ed25519 seed must be 32 bytes")
	ErrInvalidPrivateKey = errors.New("invalid private key format")
)

func NewED25519Provider() *ED25519SignatureProvider {
	return &ED25519SignatureProvider{}
}

// GenerateKeypair derives the public key and the 64-byte expanded private
// key from a 32-byte seed.
func (p *ED25519SignatureProvider) GenerateKeypair(seed []byte) ([]byte, []byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, nil, ErrInvalidSeed
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[32:])
	return pub, priv, nil
}

// Sign accepts either a 32-byte seed or a 64-byte expanded private key.
func (p *ED25519SignatureProvider) Sign(privateKey, message []byte) ([]byte, error) {
	switch len(privateKey) {
	case ed25519.SeedSize:
		return ed25519.Sign(ed25519.NewKeyFromSeed(privateKey), message), nil
	case ed25519.PrivateKeySize:
		return ed25519.Sign(ed25519.PrivateKey(privateKey), message), nil
	default:
		return nil, ErrInvalidPrivateKey
	}
}

func (p *ED25519SignatureProvider) Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}
