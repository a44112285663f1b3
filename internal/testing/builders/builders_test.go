package builders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/core/network"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/tx"
)

func TestAccountsAreDeterministic(t *testing.T) {
	assert.Equal(t, Alice().Address(), Alice().Address())
	assert.NotEqual(t, Alice().Address(), Bob().Address())
	assert.Equal(t, byte('G'), Alice().Address()[0])

	a := NewAccountWithSeq("dave", 41)
	assert.Equal(t, "41", a.SequenceNumber())
	require.NoError(t, a.IncrementSequenceNumber())
	assert.Equal(t, "42", a.SequenceNumber())
}

func TestPay(t *testing.T) {
	alice, bob := NewAccountWithSeq("alice", 10), Bob()

	built, err := Pay(alice, bob, "12.5").MemoText("rent").SignedBy(alice).Build()
	require.NoError(t, err)

	assert.Equal(t, alice.Address(), built.Source())
	assert.Equal(t, "11", built.Sequence())
	assert.Equal(t, int64(11), alice.Sequence)
	assert.Equal(t, uint32(100), built.Fee())
	assert.Equal(t, "rent", built.Memo().Value())
	assert.Equal(t, network.TestnetPassphrase, built.NetworkPassphrase())
	require.NotNil(t, built.TimeBounds())
	assert.Equal(t, uint64(0), built.TimeBounds().MaxTime)
	require.Len(t, built.Signatures(), 1)
	assert.Equal(t, alice.Keypair.Hint(), built.Signatures()[0].Hint)

	ops := built.Operations()
	require.Len(t, ops, 1)
	pay, ok := ops[0].Body.(operation.Payment)
	require.True(t, ok)
	assert.Equal(t, bob.Address(), pay.Destination)
	assert.Equal(t, "12.5000000", pay.Amount)
	assert.True(t, pay.Asset.IsNative())
}

func TestPayAssetRoundTrips(t *testing.T) {
	alice, bob, gw := Alice(), Bob(), Gateway()

	built := PayAsset(alice, bob, USD(gw), "3").Fee(250).TimeBounds(5, 500).MustBuild()
	env, err := built.ToXDR()
	require.NoError(t, err)

	parsed, err := tx.FromXDR(env, network.TestnetPassphrase)
	require.NoError(t, err)
	back, ok := parsed.(*tx.Transaction)
	require.True(t, ok)
	assert.Equal(t, uint32(250), back.Fee())
	assert.Equal(t, &tx.TimeBounds{MinTime: 5, MaxTime: 500}, back.TimeBounds())

	pay := back.Operations()[0].Body.(operation.Payment)
	assert.Equal(t, "USD:"+gw.Address(), pay.Asset.String())
}

func TestMultipleOperations(t *testing.T) {
	alice, bob, carol := Alice(), Bob(), Carol()

	built := CreateAccount(alice, bob, "1").
		Op(operation.Payment{Destination: carol.Address(), Asset: Native(), Amount: "2"}).
		OpFrom(bob, operation.AccountMerge{Destination: alice.Address()}).
		MustBuild()

	ops := built.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, uint32(300), built.Fee())
	assert.Equal(t, "", ops[0].Source)
	assert.Equal(t, bob.Address(), ops[2].Source)
}

func TestTrustAndOffers(t *testing.T) {
	alice, gw := Alice(), Gateway()

	trust := TrustUSD(alice, gw, "").MustBuild()
	ct := trust.Operations()[0].Body.(operation.ChangeTrust)
	assert.Equal(t, operation.MaxTrustLimit, ct.Limit)

	auth := Authorize(gw, alice, "USD", operation.AuthorizeFlag).MustBuild()
	at := auth.Operations()[0].Body.(operation.AllowTrust)
	assert.Equal(t, alice.Address(), at.Trustor)

	sell := SellOffer(alice, Native(), USD(gw), "100", "0.25").MustBuild()
	offer := sell.Operations()[0].Body.(operation.ManageSellOffer)
	p, err := offer.ResolvedPrice()
	require.NoError(t, err)
	assert.Equal(t, int32(1), p.N)
	assert.Equal(t, int32(4), p.D)

	cancel := CancelOffer(alice, Native(), USD(gw), "42").MustBuild()
	c := cancel.Operations()[0].Body.(operation.ManageSellOffer)
	assert.Equal(t, "0.0000000", c.Amount)
	assert.Equal(t, "42", c.OfferID)

	_, err = BuyOffer(alice, Native(), EUR(gw), "5", "2").Build()
	require.NoError(t, err)
	_, err = PassiveOffer(alice, Native(), EUR(gw), "5", "2").Build()
	require.NoError(t, err)
}

func TestClaimableBalances(t *testing.T) {
	alice, bob, carol := Alice(), Bob(), Carol()

	built := Claimable(alice, Native(), "5", bob, carol).MustBuild()
	ccb := built.Operations()[0].Body.(operation.CreateClaimableBalance)
	require.Len(t, ccb.Claimants, 2)
	assert.Equal(t, carol.Address(), ccb.Claimants[1].Destination())

	deadline := time.Unix(1700000000, 0)
	locked := TimeLocked(alice, bob, Native(), "5", deadline).MustBuild()
	ccb = locked.Operations()[0].Body.(operation.CreateClaimableBalance)
	require.Len(t, ccb.Claimants, 2)
	assert.Equal(t, bob.Address(), ccb.Claimants[0].Destination())
	assert.Equal(t, alice.Address(), ccb.Claimants[1].Destination())
}

func TestBuildErrors(t *testing.T) {
	alice := Alice()

	_, err := Pay(alice, Bob(), "-1").Build()
	require.Error(t, err)
	assert.Equal(t, int64(0), alice.Sequence)

	_, err = Claim(alice, "not-hex").Build()
	assert.ErrorContains(t, err, "claimable balance Id")

	assert.Panics(t, func() { Tx(alice).MustBuild() })
}

func TestTimeoutFollowsClock(t *testing.T) {
	clock := NewManualClockAt(time.Unix(1000, 0))
	first := Pay(Alice(), Bob(), "1").Timeout(30, clock).MustBuild()
	assert.Equal(t, uint64(1030), first.TimeBounds().MaxTime)

	clock.Advance(time.Minute)
	second := Pay(Alice(), Bob(), "1").Timeout(30, clock).MustBuild()
	assert.Equal(t, uint64(1090), second.TimeBounds().MaxTime)
}

func TestAssertions(t *testing.T) {
	alice, bob := Alice(), Bob()

	unsigned := CreateAccount(alice, bob, "1").
		Op(operation.Payment{Destination: bob.Address(), Asset: Native(), Amount: "1"}).
		MustBuild()
	RequireUnsigned(t, unsigned)
	RequireOperationTypes(t, unsigned, operation.TypeCreateAccount, operation.TypePayment)

	signed := Pay(alice, bob, "1").SignedBy(alice, bob).MustBuild()
	RequireSignedBy(t, signed, alice, bob)
	back := RequireRoundTrip(t, signed)
	RequireSignedBy(t, back, alice)
}
