package strkey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

func TestDecodeKnownAddresses(t *testing.T) {
	tests := []struct {
		name    string
		version VersionByte
		address string
	}{
		{"zero account", AccountID, "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"},
		{"account", AccountID, "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"},
		{"account 2", AccountID, "GDGU5OAPHNPU5UCLE5RDJHG7PXZFQYWKCFOEXSXNMR6KRQRI5T6XXCD7"},
		{"seed", Seed, "SD7X7LEHBNMUIKQGKPARG5TDJNBHKC346OUARHGZL5ITC6IJPXHILY36"},
		{"muxed", MuxedAccount, "MAAAAAAAAAAAAAB7BQ2L7E5NBWMXDUCMZSIPOBKRDSBYVLMXGSSKF6YNPIB7Y77ITLVL6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Decode(tt.version, tt.address)
			require.NoError(t, err)
			assert.Len(t, payload, tt.version.PayloadLen())

			again, err := Encode(tt.version, payload)
			require.NoError(t, err)
			assert.Equal(t, tt.address, again)
			assert.True(t, IsValid(tt.version, tt.address))

			v, anyPayload, err := DecodeAny(tt.address)
			require.NoError(t, err)
			assert.Equal(t, tt.version, v)
			assert.Equal(t, payload, anyPayload)
		})
	}
}

func TestEncodeZeroKey(t *testing.T) {
	got, err := Encode(AccountID, make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF", got)
}

func TestDecodeErrors(t *testing.T) {
	account := "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"
	payload, err := Decode(AccountID, account)
	require.NoError(t, err)

	flipped := func() string {
		raw, err := encoding.DecodeString(account)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01
		return encoding.EncodeToString(raw)
	}()

	tests := []struct {
		name    string
		version VersionByte
		input   string
		want    error
	}{
		{"flipped checksum bit", AccountID, flipped, ErrInvalidChecksum},
		{"wrong version", Seed, account, ErrInvalidVersionByte},
		{"short payload", AccountID, encodeRaw(AccountID, payload[:31]), ErrInvalidLength},
		{"long payload", AccountID, encodeRaw(AccountID, append(bytes.Clone(payload), 0)), ErrInvalidLength},
		{"truncated", AccountID, "GCEZW", nil},
		{"lowercase", AccountID, "gcezwkca5vldnrln3rprjmrzox3z6g5chcgsnfheyvxm3xojmds674jz", ErrInvalidEncoding},
		{"empty", AccountID, "", ErrInvalidLength},
		{"garbage", AccountID, "!!!!", ErrInvalidEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.version, tt.input)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.ErrorIs(t, err, kerrors.ErrDecode)
			assert.False(t, IsValid(tt.version, tt.input))
		})
	}
}

func TestEncodeRejectsBadPayload(t *testing.T) {
	_, err := Encode(AccountID, make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Encode(VersionByte(1), make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidVersionByte)

	assert.Panics(t, func() { MustEncode(MuxedAccount, make([]byte, 32)) })
}

func TestMuxed(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	m := EncodeMuxed(key, 1234)
	assert.True(t, IsValidMuxedAccount(m))
	assert.Equal(t, byte('M'), m[0])

	gotKey, id, err := DecodeMuxed(m)
	require.NoError(t, err)
	assert.Equal(t, key, gotKey)
	assert.Equal(t, uint64(1234), id)

	g, err := AccountIDFromMuxed(m)
	require.NoError(t, err)
	assert.Equal(t, MustEncode(AccountID, key[:]), g)

	_, _, err = DecodeMuxed(g)
	assert.ErrorIs(t, err, ErrInvalidVersionByte)
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidEd25519PublicKey("GDGU5OAPHNPU5UCLE5RDJHG7PXZFQYWKCFOEXSXNMR6KRQRI5T6XXCD7"))
	assert.False(t, IsValidEd25519PublicKey("SD7X7LEHBNMUIKQGKPARG5TDJNBHKC346OUARHGZL5ITC6IJPXHILY36"))
	assert.True(t, IsValidEd25519SecretSeed("SD7X7LEHBNMUIKQGKPARG5TDJNBHKC346OUARHGZL5ITC6IJPXHILY36"))
	assert.False(t, IsValidMuxedAccount("GDGU5OAPHNPU5UCLE5RDJHG7PXZFQYWKCFOEXSXNMR6KRQRI5T6XXCD7"))
}

func TestVersionByteString(t *testing.T) {
	assert.Equal(t, "ed25519PublicKey", AccountID.String())
	assert.Equal(t, "sha256Hash", SHA256Hash.String())
	assert.Equal(t, "VersionByte(1)", VersionByte(1).String())
	assert.Zero(t, VersionByte(1).PayloadLen())
}

func TestCRC16(t *testing.T) {
	// CRC-16/XMODEM check value.
	assert.Equal(t, uint16(0x31C3), crc16([]byte("123456789")))
	assert.Equal(t, uint16(0), crc16(nil))
}
