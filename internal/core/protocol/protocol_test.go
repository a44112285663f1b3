package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
)

func TestEnvelopePrefixes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 2}, EnvelopePrefixTx.Bytes())
	assert.Equal(t, []byte{0, 0, 0, 5}, EnvelopePrefixTxFeeBump.Bytes())
	assert.Equal(t, EnvelopePrefixTx, PrefixFor(xdr.EnvelopeTypeTxV0))
	assert.Equal(t, EnvelopePrefixTx, PrefixFor(xdr.EnvelopeTypeTx))
	assert.Equal(t, EnvelopePrefixTxFeeBump, PrefixFor(xdr.EnvelopeTypeTxFeeBump))
}

func TestLimits(t *testing.T) {
	assert.Equal(t, uint32(100), BaseFee)
	assert.Equal(t, int64(0), TimeoutInfinite)
	assert.Equal(t, 100, MaxOperations)
	assert.Equal(t, 20, MaxSignatures)
}
