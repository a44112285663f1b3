package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/crypto"
	"github.com/LeJamon/goKurdBase/internal/crypto/algorithms/ed25519"
)

func seedOf(b byte) []byte {
	return bytes.Repeat([]byte{b}, crypto.SeedSize)
}

func TestSecureEraseZeroesSeed(t *testing.T) {
	seed := seedOf(0xa5)
	crypto.SecureErase(seed)
	assert.Equal(t, make([]byte, crypto.SeedSize), seed)

	// Only the given window is erased.
	buf := seedOf(0x11)
	crypto.SecureErase(buf[8:16])
	assert.Equal(t, seedOf(0x11)[:8], buf[:8])
	assert.Equal(t, make([]byte, 8), buf[8:16])
	assert.Equal(t, seedOf(0x11)[16:], buf[16:])

	assert.NotPanics(t, func() {
		crypto.SecureErase(nil)
		crypto.SecureErase([]byte{})
	})
}

func TestSecretKeyOwnsSeed(t *testing.T) {
	seed := seedOf(7)
	sk := crypto.NewSecretKey(seed)
	require.Equal(t, crypto.SeedSize, sk.Len())

	sk.Close()
	assert.Equal(t, make([]byte, crypto.SeedSize), seed, "closing erases the caller's slice")
	assert.True(t, sk.IsClosed())
	assert.Nil(t, sk.Data())
	assert.Nil(t, sk.Copy())
	assert.Zero(t, sk.Len())
}

func TestSecretKeyWithCopyLeavesCallerSlice(t *testing.T) {
	seed := seedOf(9)
	sk := crypto.NewSecretKeyWithCopy(seed)

	seed[0] = 0
	assert.Equal(t, byte(9), sk.Data()[0])

	sk.Close()
	assert.Equal(t, byte(9), seed[1])
}

func TestSecretKeyCopySurvivesClose(t *testing.T) {
	provider := ed25519.NewED25519Provider()
	sk := crypto.NewSecretKeyWithCopy(seedOf(3))
	wantPub, _, err := provider.GenerateKeypair(sk.Data())
	require.NoError(t, err)

	exported := sk.Copy()
	sk.Close()
	sk.Close()

	pub, _, err := provider.GenerateKeypair(exported)
	require.NoError(t, err)
	assert.Equal(t, wantPub, pub)
}

func TestNilSecretKeyIsClosed(t *testing.T) {
	var sk *crypto.SecretKey
	assert.True(t, sk.IsClosed())
	assert.Nil(t, sk.Data())
	assert.NotPanics(t, sk.Close)
}

func TestRandomSeedErases(t *testing.T) {
	seed, err := crypto.RandomSeed()
	require.NoError(t, err)
	require.Len(t, seed, crypto.SeedSize)

	sk := crypto.NewSecretKey(seed)
	sk.Close()
	assert.Equal(t, make([]byte, crypto.SeedSize), seed)
}
