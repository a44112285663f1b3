package xdr

// OperationType is the wire code of an operation body.
type OperationType int32

const (
	OperationTypeCreateAccount                 OperationType = 0
	OperationTypePayment                       OperationType = 1
	OperationTypePathPaymentStrictReceive      OperationType = 2
	OperationTypeManageSellOffer               OperationType = 3
	OperationTypeCreatePassiveSellOffer        OperationType = 4
	OperationTypeSetOptions                    OperationType = 5
	OperationTypeChangeTrust                   OperationType = 6
	OperationTypeAllowTrust                    OperationType = 7
	OperationTypeAccountMerge                  OperationType = 8
	OperationTypeInflation                     OperationType = 9
	OperationTypeManageData                    OperationType = 10
	OperationTypeBumpSequence                  OperationType = 11
	OperationTypeManageBuyOffer                OperationType = 12
	OperationTypePathPaymentStrictSend         OperationType = 13
	OperationTypeCreateClaimableBalance        OperationType = 14
	OperationTypeClaimClaimableBalance         OperationType = 15
	OperationTypeBeginSponsoringFutureReserves OperationType = 16
	OperationTypeEndSponsoringFutureReserves   OperationType = 17
	OperationTypeRevokeSponsorship             OperationType = 18
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeCreateAccount:
		return "OperationTypeCreateAccount"
	case OperationTypePayment:
		return "OperationTypePayment"
	case OperationTypePathPaymentStrictReceive:
		return "OperationTypePathPaymentStrictReceive"
	case OperationTypeManageSellOffer:
		return "OperationTypeManageSellOffer"
	case OperationTypeCreatePassiveSellOffer:
		return "OperationTypeCreatePassiveSellOffer"
	case OperationTypeSetOptions:
		return "OperationTypeSetOptions"
	case OperationTypeChangeTrust:
		return "OperationTypeChangeTrust"
	case OperationTypeAllowTrust:
		return "OperationTypeAllowTrust"
	case OperationTypeAccountMerge:
		return "OperationTypeAccountMerge"
	case OperationTypeInflation:
		return "OperationTypeInflation"
	case OperationTypeManageData:
		return "OperationTypeManageData"
	case OperationTypeBumpSequence:
		return "OperationTypeBumpSequence"
	case OperationTypeManageBuyOffer:
		return "OperationTypeManageBuyOffer"
	case OperationTypePathPaymentStrictSend:
		return "OperationTypePathPaymentStrictSend"
	case OperationTypeCreateClaimableBalance:
		return "OperationTypeCreateClaimableBalance"
	case OperationTypeClaimClaimableBalance:
		return "OperationTypeClaimClaimableBalance"
	case OperationTypeBeginSponsoringFutureReserves:
		return "OperationTypeBeginSponsoringFutureReserves"
	case OperationTypeEndSponsoringFutureReserves:
		return "OperationTypeEndSponsoringFutureReserves"
	case OperationTypeRevokeSponsorship:
		return "OperationTypeRevokeSponsorship"
	default:
		return "OperationTypeUnknown"
	}
}

const (
	MaxPathLen       = 5
	MaxClaimants     = 10
	MaxHomeDomainLen = 32
	MaxDataValueLen  = 64
)

type CreateAccountOp struct {
	Destination     AccountID
	StartingBalance int64
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  int64
	Path        []Asset
}

type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     int64
	Path        []Asset
}

type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
	OfferID int64
}

type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount int64
	Price     Price
	OfferID   int64
}

type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
}

// SetOptionsOp changes account settings; nil fields are left unchanged.
type SetOptionsOp struct {
	InflationDest *AccountID
	ClearFlags    *uint32
	SetFlags      *uint32
	MasterWeight  *uint32
	LowThreshold  *uint32
	MedThreshold  *uint32
	HighThreshold *uint32
	HomeDomain    *string
	Signer        *Signer
}

type ChangeTrustOp struct {
	Line  Asset
	Limit int64
}

type AllowTrustOp struct {
	Trustor   AccountID
	Asset     AssetCode
	Authorize uint32
}

type ManageDataOp struct {
	DataName string
	// DataValue nil deletes the entry.
	DataValue []byte
}

type BumpSequenceOp struct {
	BumpTo int64
}

type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    int64
	Claimants []Claimant
}

type ClaimClaimableBalanceOp struct {
	BalanceID ClaimableBalanceID
}

type BeginSponsoringFutureReservesOp struct {
	SponsoredID AccountID
}

// RevokeSponsorshipType discriminates RevokeSponsorshipOp.
type RevokeSponsorshipType int32

const (
	RevokeSponsorshipLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipSigner      RevokeSponsorshipType = 1
)

type RevokeSponsorshipOpSigner struct {
	AccountID AccountID
	SignerKey SignerKey
}

type RevokeSponsorshipOp struct {
	Type      RevokeSponsorshipType
	LedgerKey *LedgerKey
	Signer    *RevokeSponsorshipOpSigner
}

func (o *RevokeSponsorshipOp) EncodeTo(e *Encoder) error {
	e.Int32(int32(o.Type))
	switch {
	case o.Type == RevokeSponsorshipLedgerEntry && o.LedgerKey != nil:
		return o.LedgerKey.EncodeTo(e)
	case o.Type == RevokeSponsorshipSigner && o.Signer != nil:
		if err := o.Signer.AccountID.EncodeTo(e); err != nil {
			return err
		}
		return o.Signer.SignerKey.EncodeTo(e)
	default:
		return unknown("RevokeSponsorshipType", int32(o.Type))
	}
}

func (o *RevokeSponsorshipOp) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*o = RevokeSponsorshipOp{Type: RevokeSponsorshipType(t)}
	switch o.Type {
	case RevokeSponsorshipLedgerEntry:
		var k LedgerKey
		if err := k.DecodeFrom(d); err != nil {
			return err
		}
		o.LedgerKey = &k
	case RevokeSponsorshipSigner:
		var s RevokeSponsorshipOpSigner
		if err := s.AccountID.DecodeFrom(d); err != nil {
			return err
		}
		if err := s.SignerKey.DecodeFrom(d); err != nil {
			return err
		}
		o.Signer = &s
	default:
		return unknown("RevokeSponsorshipType", t)
	}
	return nil
}

// OperationBody is the union of all operation payloads. Exactly the arm
// selected by Type is set.
type OperationBody struct {
	Type                            OperationType
	CreateAccountOp                 *CreateAccountOp
	PaymentOp                       *PaymentOp
	PathPaymentStrictReceiveOp      *PathPaymentStrictReceiveOp
	ManageSellOfferOp               *ManageSellOfferOp
	CreatePassiveSellOfferOp        *CreatePassiveSellOfferOp
	SetOptionsOp                    *SetOptionsOp
	ChangeTrustOp                   *ChangeTrustOp
	AllowTrustOp                    *AllowTrustOp
	Destination                     *MuxedAccount
	ManageDataOp                    *ManageDataOp
	BumpSequenceOp                  *BumpSequenceOp
	ManageBuyOfferOp                *ManageBuyOfferOp
	PathPaymentStrictSendOp         *PathPaymentStrictSendOp
	CreateClaimableBalanceOp        *CreateClaimableBalanceOp
	ClaimClaimableBalanceOp         *ClaimClaimableBalanceOp
	BeginSponsoringFutureReservesOp *BeginSponsoringFutureReservesOp
	RevokeSponsorshipOp             *RevokeSponsorshipOp
}

// Operation is a body with an optional per-operation source account.
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (o *Operation) EncodeTo(e *Encoder) error {
	e.Optional(o.SourceAccount != nil)
	if o.SourceAccount != nil {
		if err := o.SourceAccount.EncodeTo(e); err != nil {
			return err
		}
	}
	return o.Body.EncodeTo(e)
}

func (o *Operation) DecodeFrom(d *Decoder) error {
	present, err := d.Optional()
	if err != nil {
		return err
	}
	*o = Operation{}
	if present {
		var src MuxedAccount
		if err := src.DecodeFrom(d); err != nil {
			return err
		}
		o.SourceAccount = &src
	}
	return o.Body.DecodeFrom(d)
}

func missingArm(t OperationType) error {
	return unknown("OperationBody arm", int32(t))
}

func encodeAssets(e *Encoder, assets []Asset, max int) error {
	if err := e.ArrayLen(len(assets), max); err != nil {
		return err
	}
	for i := range assets {
		if err := assets[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeAssets(d *Decoder, max int) ([]Asset, error) {
	n, err := d.ArrayLen(max)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]Asset, n)
	for i := range out {
		if err := out[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeOptUint32(e *Encoder, v *uint32) {
	e.Optional(v != nil)
	if v != nil {
		e.Uint32(*v)
	}
}

func decodeOptUint32(d *Decoder) (*uint32, error) {
	present, err := d.Optional()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (b *OperationBody) EncodeTo(e *Encoder) error {
	e.Int32(int32(b.Type))
	switch b.Type {
	case OperationTypeCreateAccount:
		op := b.CreateAccountOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.Destination.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.StartingBalance)
	case OperationTypePayment:
		op := b.PaymentOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.Destination.EncodeTo(e); err != nil {
			return err
		}
		if err := op.Asset.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.Amount)
	case OperationTypePathPaymentStrictReceive:
		op := b.PathPaymentStrictReceiveOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.SendAsset.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.SendMax)
		if err := op.Destination.EncodeTo(e); err != nil {
			return err
		}
		if err := op.DestAsset.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.DestAmount)
		return encodeAssets(e, op.Path, MaxPathLen)
	case OperationTypeManageSellOffer:
		op := b.ManageSellOfferOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := encodeOffer(e, &op.Selling, &op.Buying, op.Amount, &op.Price); err != nil {
			return err
		}
		e.Int64(op.OfferID)
	case OperationTypeCreatePassiveSellOffer:
		op := b.CreatePassiveSellOfferOp
		if op == nil {
			return missingArm(b.Type)
		}
		return encodeOffer(e, &op.Selling, &op.Buying, op.Amount, &op.Price)
	case OperationTypeSetOptions:
		op := b.SetOptionsOp
		if op == nil {
			return missingArm(b.Type)
		}
		e.Optional(op.InflationDest != nil)
		if op.InflationDest != nil {
			if err := op.InflationDest.EncodeTo(e); err != nil {
				return err
			}
		}
		encodeOptUint32(e, op.ClearFlags)
		encodeOptUint32(e, op.SetFlags)
		encodeOptUint32(e, op.MasterWeight)
		encodeOptUint32(e, op.LowThreshold)
		encodeOptUint32(e, op.MedThreshold)
		encodeOptUint32(e, op.HighThreshold)
		e.Optional(op.HomeDomain != nil)
		if op.HomeDomain != nil {
			if err := e.String(*op.HomeDomain, MaxHomeDomainLen); err != nil {
				return err
			}
		}
		e.Optional(op.Signer != nil)
		if op.Signer != nil {
			return op.Signer.EncodeTo(e)
		}
	case OperationTypeChangeTrust:
		op := b.ChangeTrustOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.Line.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.Limit)
	case OperationTypeAllowTrust:
		op := b.AllowTrustOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.Trustor.EncodeTo(e); err != nil {
			return err
		}
		if err := op.Asset.EncodeTo(e); err != nil {
			return err
		}
		e.Uint32(op.Authorize)
	case OperationTypeAccountMerge:
		if b.Destination == nil {
			return missingArm(b.Type)
		}
		return b.Destination.EncodeTo(e)
	case OperationTypeInflation, OperationTypeEndSponsoringFutureReserves:
	case OperationTypeManageData:
		op := b.ManageDataOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := e.String(op.DataName, MaxDataNameLen); err != nil {
			return err
		}
		e.Optional(op.DataValue != nil)
		if op.DataValue != nil {
			return e.Opaque(op.DataValue, MaxDataValueLen)
		}
	case OperationTypeBumpSequence:
		if b.BumpSequenceOp == nil {
			return missingArm(b.Type)
		}
		e.Int64(b.BumpSequenceOp.BumpTo)
	case OperationTypeManageBuyOffer:
		op := b.ManageBuyOfferOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := encodeOffer(e, &op.Selling, &op.Buying, op.BuyAmount, &op.Price); err != nil {
			return err
		}
		e.Int64(op.OfferID)
	case OperationTypePathPaymentStrictSend:
		op := b.PathPaymentStrictSendOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.SendAsset.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.SendAmount)
		if err := op.Destination.EncodeTo(e); err != nil {
			return err
		}
		if err := op.DestAsset.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.DestMin)
		return encodeAssets(e, op.Path, MaxPathLen)
	case OperationTypeCreateClaimableBalance:
		op := b.CreateClaimableBalanceOp
		if op == nil {
			return missingArm(b.Type)
		}
		if err := op.Asset.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(op.Amount)
		if err := e.ArrayLen(len(op.Claimants), MaxClaimants); err != nil {
			return err
		}
		for i := range op.Claimants {
			if err := op.Claimants[i].EncodeTo(e); err != nil {
				return err
			}
		}
	case OperationTypeClaimClaimableBalance:
		if b.ClaimClaimableBalanceOp == nil {
			return missingArm(b.Type)
		}
		return b.ClaimClaimableBalanceOp.BalanceID.EncodeTo(e)
	case OperationTypeBeginSponsoringFutureReserves:
		if b.BeginSponsoringFutureReservesOp == nil {
			return missingArm(b.Type)
		}
		return b.BeginSponsoringFutureReservesOp.SponsoredID.EncodeTo(e)
	case OperationTypeRevokeSponsorship:
		if b.RevokeSponsorshipOp == nil {
			return missingArm(b.Type)
		}
		return b.RevokeSponsorshipOp.EncodeTo(e)
	default:
		return unknown("OperationType", int32(b.Type))
	}
	return nil
}

func encodeOffer(e *Encoder, selling, buying *Asset, amount int64, price *Price) error {
	if err := selling.EncodeTo(e); err != nil {
		return err
	}
	if err := buying.EncodeTo(e); err != nil {
		return err
	}
	e.Int64(amount)
	return price.EncodeTo(e)
}

func decodeOffer(d *Decoder, selling, buying *Asset, amount *int64, price *Price) error {
	if err := selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := buying.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if *amount, err = d.Int64(); err != nil {
		return err
	}
	return price.DecodeFrom(d)
}

func (b *OperationBody) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*b = OperationBody{Type: OperationType(t)}
	switch b.Type {
	case OperationTypeCreateAccount:
		var op CreateAccountOp
		if err := op.Destination.DecodeFrom(d); err != nil {
			return err
		}
		if op.StartingBalance, err = d.Int64(); err != nil {
			return err
		}
		b.CreateAccountOp = &op
	case OperationTypePayment:
		var op PaymentOp
		if err := op.Destination.DecodeFrom(d); err != nil {
			return err
		}
		if err := op.Asset.DecodeFrom(d); err != nil {
			return err
		}
		if op.Amount, err = d.Int64(); err != nil {
			return err
		}
		b.PaymentOp = &op
	case OperationTypePathPaymentStrictReceive:
		var op PathPaymentStrictReceiveOp
		if err := op.SendAsset.DecodeFrom(d); err != nil {
			return err
		}
		if op.SendMax, err = d.Int64(); err != nil {
			return err
		}
		if err := op.Destination.DecodeFrom(d); err != nil {
			return err
		}
		if err := op.DestAsset.DecodeFrom(d); err != nil {
			return err
		}
		if op.DestAmount, err = d.Int64(); err != nil {
			return err
		}
		if op.Path, err = decodeAssets(d, MaxPathLen); err != nil {
			return err
		}
		b.PathPaymentStrictReceiveOp = &op
	case OperationTypeManageSellOffer:
		var op ManageSellOfferOp
		if err := decodeOffer(d, &op.Selling, &op.Buying, &op.Amount, &op.Price); err != nil {
			return err
		}
		if op.OfferID, err = d.Int64(); err != nil {
			return err
		}
		b.ManageSellOfferOp = &op
	case OperationTypeCreatePassiveSellOffer:
		var op CreatePassiveSellOfferOp
		if err := decodeOffer(d, &op.Selling, &op.Buying, &op.Amount, &op.Price); err != nil {
			return err
		}
		b.CreatePassiveSellOfferOp = &op
	case OperationTypeSetOptions:
		var op SetOptionsOp
		present, err := d.Optional()
		if err != nil {
			return err
		}
		if present {
			var id AccountID
			if err := id.DecodeFrom(d); err != nil {
				return err
			}
			op.InflationDest = &id
		}
		for _, dst := range []**uint32{&op.ClearFlags, &op.SetFlags, &op.MasterWeight, &op.LowThreshold, &op.MedThreshold, &op.HighThreshold} {
			if *dst, err = decodeOptUint32(d); err != nil {
				return err
			}
		}
		if present, err = d.Optional(); err != nil {
			return err
		}
		if present {
			s, err := d.String(MaxHomeDomainLen)
			if err != nil {
				return err
			}
			op.HomeDomain = &s
		}
		if present, err = d.Optional(); err != nil {
			return err
		}
		if present {
			var s Signer
			if err := s.DecodeFrom(d); err != nil {
				return err
			}
			op.Signer = &s
		}
		b.SetOptionsOp = &op
	case OperationTypeChangeTrust:
		var op ChangeTrustOp
		if err := op.Line.DecodeFrom(d); err != nil {
			return err
		}
		if op.Limit, err = d.Int64(); err != nil {
			return err
		}
		b.ChangeTrustOp = &op
	case OperationTypeAllowTrust:
		var op AllowTrustOp
		if err := op.Trustor.DecodeFrom(d); err != nil {
			return err
		}
		if err := op.Asset.DecodeFrom(d); err != nil {
			return err
		}
		if op.Authorize, err = d.Uint32(); err != nil {
			return err
		}
		b.AllowTrustOp = &op
	case OperationTypeAccountMerge:
		var dest MuxedAccount
		if err := dest.DecodeFrom(d); err != nil {
			return err
		}
		b.Destination = &dest
	case OperationTypeInflation, OperationTypeEndSponsoringFutureReserves:
	case OperationTypeManageData:
		var op ManageDataOp
		if op.DataName, err = d.String(MaxDataNameLen); err != nil {
			return err
		}
		present, err := d.Optional()
		if err != nil {
			return err
		}
		if present {
			if op.DataValue, err = d.Opaque(MaxDataValueLen); err != nil {
				return err
			}
		}
		b.ManageDataOp = &op
	case OperationTypeBumpSequence:
		var op BumpSequenceOp
		if op.BumpTo, err = d.Int64(); err != nil {
			return err
		}
		b.BumpSequenceOp = &op
	case OperationTypeManageBuyOffer:
		var op ManageBuyOfferOp
		if err := decodeOffer(d, &op.Selling, &op.Buying, &op.BuyAmount, &op.Price); err != nil {
			return err
		}
		if op.OfferID, err = d.Int64(); err != nil {
			return err
		}
		b.ManageBuyOfferOp = &op
	case OperationTypePathPaymentStrictSend:
		var op PathPaymentStrictSendOp
		if err := op.SendAsset.DecodeFrom(d); err != nil {
			return err
		}
		if op.SendAmount, err = d.Int64(); err != nil {
			return err
		}
		if err := op.Destination.DecodeFrom(d); err != nil {
			return err
		}
		if err := op.DestAsset.DecodeFrom(d); err != nil {
			return err
		}
		if op.DestMin, err = d.Int64(); err != nil {
			return err
		}
		if op.Path, err = decodeAssets(d, MaxPathLen); err != nil {
			return err
		}
		b.PathPaymentStrictSendOp = &op
	case OperationTypeCreateClaimableBalance:
		var op CreateClaimableBalanceOp
		if err := op.Asset.DecodeFrom(d); err != nil {
			return err
		}
		if op.Amount, err = d.Int64(); err != nil {
			return err
		}
		n, err := d.ArrayLen(MaxClaimants)
		if err != nil {
			return err
		}
		op.Claimants = make([]Claimant, n)
		for i := range op.Claimants {
			if err := op.Claimants[i].DecodeFrom(d); err != nil {
				return err
			}
		}
		b.CreateClaimableBalanceOp = &op
	case OperationTypeClaimClaimableBalance:
		var op ClaimClaimableBalanceOp
		if err := op.BalanceID.DecodeFrom(d); err != nil {
			return err
		}
		b.ClaimClaimableBalanceOp = &op
	case OperationTypeBeginSponsoringFutureReserves:
		var op BeginSponsoringFutureReservesOp
		if err := op.SponsoredID.DecodeFrom(d); err != nil {
			return err
		}
		b.BeginSponsoringFutureReservesOp = &op
	case OperationTypeRevokeSponsorship:
		var op RevokeSponsorshipOp
		if err := op.DecodeFrom(d); err != nil {
			return err
		}
		b.RevokeSponsorshipOp = &op
	default:
		return unknown("OperationType", t)
	}
	return nil
}
