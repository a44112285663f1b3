package crypto

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	// ErrUnsupportedKeyType is returned when an unsupported key type is requested.
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	// ErrRandomGeneration is returned when random number generation fails.
	ErrRandomGeneration = errors.New("failed to generate random bytes")
)

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	b := make([]byte, n)
	_, err := io.ReadFull(rand.Reader, b)
	if err != nil {
		return nil, ErrRandomGeneration
	}
	return b, nil
}

// RandomSecretKey generates a random seed for the given key type. Only
// Ed25519 keys can be generated; the hash-based signer types have no
// secret of their own.
// The returned SecretKey should be closed when no longer needed.
func RandomSecretKey(keyType KeyType) (*SecretKey, error) {
	if keyType != KeyTypeEd25519 {
		return nil, ErrUnsupportedKeyType
	}
	seed, err := RandomSeed()
	if err != nil {
		return nil, err
	}
	return NewSecretKey(seed), nil
}

// RandomSeed generates a random 32-byte Ed25519 seed.
func RandomSeed() ([]byte, error) {
	return RandomBytes(SeedSize)
}
