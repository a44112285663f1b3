package crypto

import (
	"runtime"
	"sync/atomic"
)

// SeedSize is the size of an Ed25519 seed in bytes.
const SeedSize = 32

// eraseSink keeps the zeroing loop observable so it is not optimized away.
var eraseSink atomic.Uint64

// SecureErase overwrites b with zeros.
//
// Copies of the data may still remain in registers, caches or swap.
func SecureErase(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)

	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	eraseSink.Add(sum)
}

// SecretKey owns a seed and erases it on Close.
type SecretKey struct {
	data   []byte
	closed bool
}

// NewSecretKey takes ownership of data.
func NewSecretKey(data []byte) *SecretKey {
	return &SecretKey{data: data}
}

// NewSecretKeyWithCopy copies data so the caller's slice is left untouched.
func NewSecretKeyWithCopy(data []byte) *SecretKey {
	copied := make([]byte, len(data))
	copy(copied, data)
	return &SecretKey{data: copied}
}

// Data returns the seed bytes, or nil once closed.
func (sk *SecretKey) Data() []byte {
	if sk.IsClosed() {
		return nil
	}
	return sk.data
}

// Len returns the seed length, or 0 once closed.
func (sk *SecretKey) Len() int {
	if sk.IsClosed() {
		return 0
	}
	return len(sk.data)
}

// Close erases the seed. Safe to call more than once.
func (sk *SecretKey) Close() {
	if sk.IsClosed() {
		return
	}
	SecureErase(sk.data)
	sk.data = nil
	sk.closed = true
}

// IsClosed reports whether Close has been called.
func (sk *SecretKey) IsClosed() bool {
	return sk == nil || sk.closed
}

// Copy returns an independent copy of the seed, or nil once closed.
func (sk *SecretKey) Copy() []byte {
	if sk.IsClosed() {
		return nil
	}
	out := make([]byte, len(sk.data))
	copy(out, sk.data)
	return out
}
