package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/core/account"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

const id = "GBBM6BKZPEHWYO3E3YKREDPQXMS4VK35YLNU7NFBRI26RAN7GI5POFBB"

var _ account.SequenceSource = (*account.Account)(nil)

func TestNew(t *testing.T) {
	_, err := account.New("GBBB", "100")
	require.Error(t, err)
	assert.Equal(t, "accountId is invalid", err.Error())

	_, err = account.New(id, "abc")
	require.Error(t, err)
	assert.True(t, kerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "sequence must be of type string")

	a, err := account.New(id, "100")
	require.NoError(t, err)
	assert.Equal(t, id, a.AccountID())
	assert.Equal(t, "100", a.SequenceNumber())
}

func TestIncrementSequenceNumber(t *testing.T) {
	a, err := account.New(id, "100")
	require.NoError(t, err)

	require.NoError(t, a.IncrementSequenceNumber())
	assert.Equal(t, "101", a.SequenceNumber())
	require.NoError(t, a.IncrementSequenceNumber())
	require.NoError(t, a.IncrementSequenceNumber())
	assert.Equal(t, "103", a.SequenceNumber())
}

func TestLargeSequence(t *testing.T) {
	a, err := account.New(id, "9223372036854775806")
	require.NoError(t, err)
	require.NoError(t, a.IncrementSequenceNumber())
	assert.Equal(t, "9223372036854775807", a.SequenceNumber())

	err = a.IncrementSequenceNumber()
	assert.True(t, kerrors.IsValidation(err))
	assert.Equal(t, "9223372036854775807", a.SequenceNumber())

	_, err = account.New(id, "9223372036854775808")
	assert.True(t, kerrors.IsValidation(err))
}
