package xdr

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Legacy v0 envelope with one accountMerge operation and a text memo.
const v0Envelope = "AAAAAAW8Dk9idFR5Le+xi0/h/tU47bgC1YWjtPH1vIVO3BklAAAAZACoKlYAAAABAAAAAAAAAAEAAAALdmlhIGtleWJhc2UAAAAAAQAAAAAAAAAIAAAAAN7aGcXNPO36J1I8MR8S4QFhO79T5JGG2ZeS5Ka1m4mJAAAAAAAAAAFO3BklAAAAQP0ccCoeHdm3S7bOhMjXRMn3EbmETJ9glxpKUZjPSPIxpqZ7EkyTgl3FruieqpZd9LYOzdJrNik1GNBLhgTh/AU="

func TestV0EnvelopeRoundTrip(t *testing.T) {
	var env TransactionEnvelope
	require.NoError(t, UnmarshalBase64(v0Envelope, &env))

	require.Equal(t, EnvelopeTypeTxV0, env.Type)
	require.NotNil(t, env.V0)
	tx := env.V0.Tx
	assert.Equal(t, uint32(100), tx.Fee)
	assert.Equal(t, int64(47334344942944257), tx.SeqNum)
	assert.Nil(t, tx.TimeBounds)
	require.Equal(t, MemoTypeText, tx.Memo.Type)
	assert.Equal(t, "via keybase", *tx.Memo.Text)
	require.Len(t, tx.Operations, 1)
	assert.Equal(t, OperationTypeAccountMerge, tx.Operations[0].Body.Type)
	require.Len(t, env.V0.Signatures, 1)
	assert.Len(t, env.V0.Signatures[0].Signature, 64)

	out, err := MarshalBase64(&env)
	require.NoError(t, err)
	assert.Equal(t, v0Envelope, out)
}

func TestV0ToV1KeepsFields(t *testing.T) {
	var env TransactionEnvelope
	require.NoError(t, UnmarshalBase64(v0Envelope, &env))

	v1 := env.V0.Tx.ToV1()
	assert.Equal(t, KeyTypeEd25519, v1.SourceAccount.Type)
	assert.Equal(t, env.V0.Tx.SourceAccountEd25519, v1.SourceAccount.Key())
	assert.Equal(t, env.V0.Tx.Fee, v1.Fee)
	assert.Equal(t, env.V0.Tx.SeqNum, v1.SeqNum)
}

func TestEnvelopeTruncationIsRejected(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(v0Envelope)
	require.NoError(t, err)

	for _, cut := range []int{1, 4, 40, 100, len(raw) - 1} {
		var env TransactionEnvelope
		assert.Error(t, Unmarshal(raw[:cut], &env), "cut at %d", cut)
	}

	var env TransactionEnvelope
	assert.ErrorIs(t, Unmarshal(append(raw, 0, 0, 0, 0), &env), ErrTrailingBytes)
}

func sampleKey(b byte) Uint256 {
	var k Uint256
	for i := range k {
		k[i] = b + byte(i)
	}
	return k
}

func TestOperationBodiesRoundTrip(t *testing.T) {
	issuer := AccountID{Ed25519: sampleKey(1)}
	usd := Asset{Type: AssetTypeCreditAlphanum4, AlphaNum4: &AlphaNum4{AssetCode: AssetCode4{'U', 'S', 'D'}, Issuer: issuer}}
	long := Asset{Type: AssetTypeCreditAlphanum12, AlphaNum12: &AlphaNum12{AssetCode: AssetCode12{'L', 'O', 'N', 'G', 'C', 'O', 'D', 'E'}, Issuer: issuer}}
	native := Asset{Type: AssetTypeNative}
	dest := NewMuxedAccount(sampleKey(2))
	muxed := MuxedAccount{Type: KeyTypeMuxedEd25519, Med25519: &MuxedAccountMed25519{ID: 42, Ed25519: sampleKey(3)}}
	weight := uint32(3)
	domain := ""
	abs := int64(1600000000)
	code4 := AssetCode4{'E', 'U', 'R'}

	bodies := []OperationBody{
		{Type: OperationTypeCreateAccount, CreateAccountOp: &CreateAccountOp{Destination: issuer, StartingBalance: 10_000_000}},
		{Type: OperationTypePayment, PaymentOp: &PaymentOp{Destination: muxed, Asset: usd, Amount: 5}},
		{Type: OperationTypePathPaymentStrictReceive, PathPaymentStrictReceiveOp: &PathPaymentStrictReceiveOp{SendAsset: native, SendMax: 1, Destination: dest, DestAsset: usd, DestAmount: 2, Path: []Asset{long, usd}}},
		{Type: OperationTypeManageSellOffer, ManageSellOfferOp: &ManageSellOfferOp{Selling: native, Buying: usd, Amount: 3, Price: Price{N: 5, D: 4}, OfferID: 7}},
		{Type: OperationTypeCreatePassiveSellOffer, CreatePassiveSellOfferOp: &CreatePassiveSellOfferOp{Selling: usd, Buying: native, Amount: 3, Price: Price{N: 1, D: 2}}},
		{Type: OperationTypeSetOptions, SetOptionsOp: &SetOptionsOp{MasterWeight: &weight, HomeDomain: &domain, Signer: &Signer{Key: SignerKey{Type: SignerKeyTypeHashX, Key: sampleKey(9)}, Weight: 1}}},
		{Type: OperationTypeSetOptions, SetOptionsOp: &SetOptionsOp{}},
		{Type: OperationTypeChangeTrust, ChangeTrustOp: &ChangeTrustOp{Line: long, Limit: 1<<63 - 1}},
		{Type: OperationTypeAllowTrust, AllowTrustOp: &AllowTrustOp{Trustor: issuer, Asset: AssetCode{Type: AssetTypeCreditAlphanum4, AssetCode4: &code4}, Authorize: 1}},
		{Type: OperationTypeAccountMerge, Destination: &dest},
		{Type: OperationTypeInflation},
		{Type: OperationTypeManageData, ManageDataOp: &ManageDataOp{DataName: "name", DataValue: []byte("value")}},
		{Type: OperationTypeManageData, ManageDataOp: &ManageDataOp{DataName: "name"}},
		{Type: OperationTypeBumpSequence, BumpSequenceOp: &BumpSequenceOp{BumpTo: 77833036561510299}},
		{Type: OperationTypeManageBuyOffer, ManageBuyOfferOp: &ManageBuyOfferOp{Selling: native, Buying: usd, BuyAmount: 3, Price: Price{N: 1, D: 1}}},
		{Type: OperationTypePathPaymentStrictSend, PathPaymentStrictSendOp: &PathPaymentStrictSendOp{SendAsset: native, SendAmount: 1, Destination: dest, DestAsset: usd, DestMin: 2}},
		{Type: OperationTypeCreateClaimableBalance, CreateClaimableBalanceOp: &CreateClaimableBalanceOp{Asset: usd, Amount: 9, Claimants: []Claimant{
			{Destination: issuer, Predicate: ClaimPredicate{Type: ClaimPredicateAnd, AndPredicates: []ClaimPredicate{
				{Type: ClaimPredicateBeforeAbsoluteTime, AbsBefore: &abs},
				{Type: ClaimPredicateNot, NotPredicate: &ClaimPredicate{Type: ClaimPredicateUnconditional}},
			}}},
		}}},
		{Type: OperationTypeClaimClaimableBalance, ClaimClaimableBalanceOp: &ClaimClaimableBalanceOp{BalanceID: ClaimableBalanceID{V0: Hash(sampleKey(4))}}},
		{Type: OperationTypeBeginSponsoringFutureReserves, BeginSponsoringFutureReservesOp: &BeginSponsoringFutureReservesOp{SponsoredID: issuer}},
		{Type: OperationTypeEndSponsoringFutureReserves},
		{Type: OperationTypeRevokeSponsorship, RevokeSponsorshipOp: &RevokeSponsorshipOp{Type: RevokeSponsorshipLedgerEntry, LedgerKey: &LedgerKey{Type: LedgerEntryTypeData, Data: &LedgerKeyData{AccountID: issuer, DataName: "d"}}}},
		{Type: OperationTypeRevokeSponsorship, RevokeSponsorshipOp: &RevokeSponsorshipOp{Type: RevokeSponsorshipLedgerEntry, LedgerKey: &LedgerKey{Type: LedgerEntryTypeTrustline, TrustLine: &LedgerKeyTrustLine{AccountID: issuer, Asset: usd}}}},
		{Type: OperationTypeRevokeSponsorship, RevokeSponsorshipOp: &RevokeSponsorshipOp{Type: RevokeSponsorshipSigner, Signer: &RevokeSponsorshipOpSigner{AccountID: issuer, SignerKey: SignerKey{Type: SignerKeyTypeEd25519, Key: sampleKey(5)}}}},
	}

	for _, body := range bodies {
		t.Run(body.Type.String(), func(t *testing.T) {
			op := Operation{SourceAccount: &muxed, Body: body}
			raw, err := Marshal(&op)
			require.NoError(t, err)

			var got Operation
			require.NoError(t, Unmarshal(raw, &got))
			assert.Equal(t, op, got)

			again, err := Marshal(&got)
			require.NoError(t, err)
			assert.Equal(t, raw, again)
		})
	}
}

func TestOperationBodyMissingArm(t *testing.T) {
	_, err := Marshal(&OperationBody{Type: OperationTypePayment})
	assert.ErrorIs(t, err, ErrUnknownDiscriminant)

	_, err = Marshal(&OperationBody{Type: OperationType(99)})
	assert.ErrorIs(t, err, ErrUnknownDiscriminant)
}

func TestFeeBumpEnvelopeRoundTrip(t *testing.T) {
	inner := TransactionV1Envelope{
		Tx: Transaction{
			SourceAccount: NewMuxedAccount(sampleKey(1)),
			Fee:           100,
			SeqNum:        1,
			TimeBounds:    &TimeBounds{MinTime: 0, MaxTime: 0},
			Memo:          Memo{Type: MemoTypeNone},
			Operations:    []Operation{{Body: OperationBody{Type: OperationTypeInflation}}},
		},
		Signatures: []DecoratedSignature{{Hint: SignatureHint{1, 2, 3, 4}, Signature: make([]byte, 64)}},
	}
	env := TransactionEnvelope{
		Type: EnvelopeTypeTxFeeBump,
		FeeBump: &FeeBumpTransactionEnvelope{
			Tx: FeeBumpTransaction{FeeSource: NewMuxedAccount(sampleKey(2)), Fee: 400, InnerTx: inner},
		},
	}
	raw, err := Marshal(&env)
	require.NoError(t, err)

	var got TransactionEnvelope
	require.NoError(t, Unmarshal(raw, &got))
	require.NotNil(t, got.FeeBump)
	assert.Equal(t, int64(400), got.FeeBump.Tx.Fee)
	assert.Equal(t, inner.Signatures, got.FeeBump.Tx.InnerTx.Signatures)
	assert.Empty(t, got.Signatures())
}
