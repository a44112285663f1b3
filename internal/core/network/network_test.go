package network

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

func TestIDFor(t *testing.T) {
	id, err := IDFor(PublicPassphrase)
	require.NoError(t, err)
	assert.Equal(t, "7ac33997544e3175d266bd022439b22cdb16508c01163f26e5cb2a3e1045a979", hex.EncodeToString(id[:]))

	again, err := IDFor(PublicPassphrase)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.True(t, ids.Contains(PublicPassphrase))

	other, err := IDFor(TestnetPassphrase)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	_, err = IDFor("")
	assert.True(t, kerrors.IsValidation(err))
}

func TestNamed(t *testing.T) {
	assert.Equal(t, PublicPassphrase, Named("public"))
	assert.Equal(t, TestnetPassphrase, Named("testnet"))
	assert.Equal(t, StandalonePassphrase, Named("standalone"))
	assert.Equal(t, "My Net ; 2024", Named("My Net ; 2024"))
}
