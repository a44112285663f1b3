package addresscodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/codec/strkey"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

const (
	account = "GDJJRRMBK4IWLEPJGIE6SXD2LP7REGZODU7WDC3I2D6MR37F4XSHBKX2"
	muxed   = "MAAAAAAAAAAAAAB7BQ2L7E5NBWMXDUCMZSIPOBKRDSBYVLMXGSSKF6YNPIB7Y77ITLVL6"
)

func TestAccountID(t *testing.T) {
	id, err := DecodeAccountID("destination", account)
	require.NoError(t, err)
	assert.Equal(t, account, EncodeAccountID(id))
	assert.True(t, IsValidAccountID(account))
}

func TestAccountIDErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", "GCEZW"},
		{"muxed", muxed},
		{"seed", "SD7X7LEHBNMUIKQGKPARG5TDJNBHKC346OUARHGZL5ITC6IJPXHILY36"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAccountID("destination", tt.input)
			require.Error(t, err)
			assert.Equal(t, "destination is invalid", err.Error())
			assert.True(t, kerrors.IsValidation(err))
		})
	}
}

func TestMuxedAccount(t *testing.T) {
	m, err := DecodeMuxedAccount("source", muxed, true)
	require.NoError(t, err)
	assert.Equal(t, xdr.KeyTypeMuxedEd25519, m.Type)
	assert.Equal(t, muxed, EncodeMuxedAccountFull(m))

	g := EncodeMuxedAccount(m)
	assert.True(t, strkey.IsValidEd25519PublicKey(g))
	want, err := strkey.AccountIDFromMuxed(muxed)
	require.NoError(t, err)
	assert.Equal(t, want, g)

	_, err = DecodeMuxedAccount("source", muxed, false)
	assert.EqualError(t, err, "source is invalid")

	plain, err := DecodeMuxedAccount("source", account, false)
	require.NoError(t, err)
	assert.Equal(t, xdr.KeyTypeEd25519, plain.Type)
	assert.Equal(t, account, EncodeMuxedAccountFull(plain))
}
