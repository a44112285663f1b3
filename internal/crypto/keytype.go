// Package crypto provides the key material primitives used to sign
// KurdCoin transactions.
package crypto

// KeyType identifies the kind of key or hash that can authorize a
// transaction. The numeric values are the protocol's signer key type codes.
type KeyType int32

const (
	// KeyTypeEd25519 is an Ed25519 public key.
	KeyTypeEd25519 KeyType = 0
	// KeyTypePreAuthTx is the hash of a pre-authorized transaction.
	KeyTypePreAuthTx KeyType = 1
	// KeyTypeHashX is the SHA-256 hash of an arbitrary preimage.
	KeyTypeHashX KeyType = 2
	// KeyTypeMuxedEd25519 is an Ed25519 key multiplexed with a 64-bit id.
	KeyTypeMuxedEd25519 KeyType = 0x100
)

// String returns the string representation of the key type.
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeEd25519:
		return "ed25519"
	case KeyTypePreAuthTx:
		return "preAuthTx"
	case KeyTypeHashX:
		return "sha256Hash"
	case KeyTypeMuxedEd25519:
		return "muxedEd25519"
	default:
		return "unknown"
	}
}

// IsSigner reports whether kt may appear as an account signer.
func (kt KeyType) IsSigner() bool {
	switch kt {
	case KeyTypeEd25519, KeyTypePreAuthTx, KeyTypeHashX:
		return true
	default:
		return false
	}
}
