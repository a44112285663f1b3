package claimant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/claimant"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

const dest = "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"

func mustRel(t *testing.T, s string) claimant.Predicate {
	t.Helper()
	p, err := claimant.BeforeRelativeTime(s)
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	_, err := claimant.New("GCEZWKCA5", nil)
	require.Error(t, err)
	assert.True(t, kerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Destination is invalid")

	muxed := "MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAAACJUQ"
	_, err = claimant.New(muxed, nil)
	assert.True(t, kerrors.IsValidation(err))

	c, err := claimant.New(dest, nil)
	require.NoError(t, err)
	assert.Equal(t, dest, c.Destination())
	assert.Equal(t, claimant.Unconditional(), c.Predicate())

	x, err := c.ToXDR()
	require.NoError(t, err)
	assert.Equal(t, xdr.ClaimPredicateUnconditional, x.Predicate.Type)
}

func TestPredicateWireForms(t *testing.T) {
	abs, err := claimant.BeforeAbsoluteTime("4102444800000")
	require.NoError(t, err)
	x := claimant.PredicateToXDR(abs)
	require.NotNil(t, x.AbsBefore)
	assert.Equal(t, xdr.ClaimPredicateBeforeAbsoluteTime, x.Type)
	assert.Equal(t, int64(4102444800000), *x.AbsBefore)

	x = claimant.PredicateToXDR(mustRel(t, "86400"))
	require.NotNil(t, x.RelBefore)
	assert.Equal(t, int64(86400), *x.RelBefore)

	n, err := claimant.Not(mustRel(t, "86400"))
	require.NoError(t, err)
	x = claimant.PredicateToXDR(n)
	require.NotNil(t, x.NotPredicate)
	assert.Equal(t, int64(86400), *x.NotPredicate.RelBefore)

	o, err := claimant.Or(mustRel(t, "800"), mustRel(t, "1200"))
	require.NoError(t, err)
	x = claimant.PredicateToXDR(o)
	require.Len(t, x.OrPredicates, 2)
	assert.Equal(t, int64(800), *x.OrPredicates[0].RelBefore)
	assert.Equal(t, int64(1200), *x.OrPredicates[1].RelBefore)

	a, err := claimant.And(mustRel(t, "800"), mustRel(t, "1200"))
	require.NoError(t, err)
	x = claimant.PredicateToXDR(a)
	require.Len(t, x.AndPredicates, 2)
	assert.Equal(t, xdr.ClaimPredicateAnd, x.Type)
}

func TestPredicateRejects(t *testing.T) {
	_, err := claimant.BeforeAbsoluteTime("soon")
	assert.True(t, kerrors.IsValidation(err))
	_, err = claimant.BeforeRelativeTime("99999999999999999999")
	assert.True(t, kerrors.IsValidation(err))
	_, err = claimant.Not(nil)
	assert.True(t, kerrors.IsValidation(err))
	_, err = claimant.And(claimant.Unconditional(), nil)
	assert.True(t, kerrors.IsValidation(err))
	_, err = claimant.Or(nil, claimant.Unconditional())
	assert.True(t, kerrors.IsValidation(err))
}

func TestRoundTrip(t *testing.T) {
	abs, err := claimant.BeforeAbsoluteTime("1700000000")
	require.NoError(t, err)
	inner, err := claimant.And(abs, claimant.Unconditional())
	require.NoError(t, err)
	notRel, err := claimant.Not(mustRel(t, "60"))
	require.NoError(t, err)
	tree, err := claimant.Or(inner, notRel)
	require.NoError(t, err)

	c, err := claimant.New(dest, tree)
	require.NoError(t, err)

	x, err := c.ToXDR()
	require.NoError(t, err)
	raw, err := xdr.Marshal(&x)
	require.NoError(t, err)

	var decoded xdr.Claimant
	require.NoError(t, xdr.Unmarshal(raw, &decoded))
	back, err := claimant.FromXDR(decoded)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestFromXDRRejectsBrokenTree(t *testing.T) {
	_, err := claimant.PredicateFromXDR(xdr.ClaimPredicate{
		Type:          xdr.ClaimPredicateAnd,
		AndPredicates: []xdr.ClaimPredicate{{Type: xdr.ClaimPredicateUnconditional}},
	})
	assert.True(t, kerrors.IsDecode(err))

	_, err = claimant.PredicateFromXDR(xdr.ClaimPredicate{Type: xdr.ClaimPredicateBeforeRelativeTime})
	assert.True(t, kerrors.IsDecode(err))
}
