// Package common holds hash helpers shared by the signing code.
package common

import "crypto/sha256"

// Sha256 returns the SHA-256 digest of msg.
func Sha256(msg []byte) [32]byte {
	return sha256.Sum256(msg)
}

// Sha256Concat hashes the concatenation of parts without allocating the
// joined buffer.
func Sha256Concat(parts ...[]byte) [32]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
