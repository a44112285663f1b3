// Package protocol holds the protocol constants shared by the transaction
// layer.
package protocol

import (
	"encoding/binary"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
)

const (
	// BaseFee is the minimum per-operation fee in stroops.
	BaseFee uint32 = 100

	// TimeoutInfinite passed as a builder timeout leaves MaxTime unbounded.
	TimeoutInfinite int64 = 0

	MaxOperations = xdr.MaxOperations
	MaxSignatures = xdr.MaxSignatures

	// MaxPreimageLen bounds the preimage of a hash-x signature.
	MaxPreimageLen = 64
)

// EnvelopePrefix is the 4-byte domain separator written between the
// network id and the transaction body of a signature base.
type EnvelopePrefix [4]byte

func makeEnvelopePrefix(t xdr.EnvelopeType) EnvelopePrefix {
	var p EnvelopePrefix
	binary.BigEndian.PutUint32(p[:], uint32(t))
	return p
}

var (
	EnvelopePrefixTx        = makeEnvelopePrefix(xdr.EnvelopeTypeTx)
	EnvelopePrefixTxFeeBump = makeEnvelopePrefix(xdr.EnvelopeTypeTxFeeBump)
)

// Bytes returns the prefix as a byte slice
func (p EnvelopePrefix) Bytes() []byte {
	return p[:]
}

// PrefixFor returns the signature-base prefix for an envelope type. v0
// envelopes sign as plain transactions.
func PrefixFor(t xdr.EnvelopeType) EnvelopePrefix {
	if t == xdr.EnvelopeTypeTxV0 {
		return EnvelopePrefixTx
	}
	return makeEnvelopePrefix(t)
}
