package xdr

// AssetType discriminates Asset and AssetCode.
type AssetType int32

const (
	AssetTypeNative           AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
)

type AssetCode4 [4]byte

type AssetCode12 [12]byte

type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountID
}

type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountID
}

// Asset is the native asset or an issued credit.
type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

func (a *Asset) EncodeTo(e *Encoder) error {
	e.Int32(int32(a.Type))
	switch a.Type {
	case AssetTypeNative:
	case AssetTypeCreditAlphanum4:
		if a.AlphaNum4 == nil {
			return unknown("Asset arm", int32(a.Type))
		}
		e.FixedOpaque(a.AlphaNum4.AssetCode[:])
		return a.AlphaNum4.Issuer.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		if a.AlphaNum12 == nil {
			return unknown("Asset arm", int32(a.Type))
		}
		e.FixedOpaque(a.AlphaNum12.AssetCode[:])
		return a.AlphaNum12.Issuer.EncodeTo(e)
	default:
		return unknown("AssetType", int32(a.Type))
	}
	return nil
}

func (a *Asset) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*a = Asset{Type: AssetType(t)}
	switch a.Type {
	case AssetTypeNative:
	case AssetTypeCreditAlphanum4:
		var v AlphaNum4
		code, err := d.FixedOpaque(4)
		if err != nil {
			return err
		}
		copy(v.AssetCode[:], code)
		if err := v.Issuer.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum4 = &v
	case AssetTypeCreditAlphanum12:
		var v AlphaNum12
		code, err := d.FixedOpaque(12)
		if err != nil {
			return err
		}
		copy(v.AssetCode[:], code)
		if err := v.Issuer.DecodeFrom(d); err != nil {
			return err
		}
		a.AlphaNum12 = &v
	default:
		return unknown("AssetType", t)
	}
	return nil
}

// AssetCode is the issuer-less asset code used by allowTrust.
type AssetCode struct {
	Type        AssetType
	AssetCode4  *AssetCode4
	AssetCode12 *AssetCode12
}

func (a *AssetCode) EncodeTo(e *Encoder) error {
	e.Int32(int32(a.Type))
	switch {
	case a.Type == AssetTypeCreditAlphanum4 && a.AssetCode4 != nil:
		e.FixedOpaque(a.AssetCode4[:])
	case a.Type == AssetTypeCreditAlphanum12 && a.AssetCode12 != nil:
		e.FixedOpaque(a.AssetCode12[:])
	default:
		return unknown("AssetCode type", int32(a.Type))
	}
	return nil
}

func (a *AssetCode) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*a = AssetCode{Type: AssetType(t)}
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		b, err := d.FixedOpaque(4)
		if err != nil {
			return err
		}
		var c AssetCode4
		copy(c[:], b)
		a.AssetCode4 = &c
	case AssetTypeCreditAlphanum12:
		b, err := d.FixedOpaque(12)
		if err != nil {
			return err
		}
		var c AssetCode12
		copy(c[:], b)
		a.AssetCode12 = &c
	default:
		return unknown("AssetCode type", t)
	}
	return nil
}

// Price is a rational n/d.
type Price struct {
	N int32
	D int32
}

func (p *Price) EncodeTo(e *Encoder) error {
	e.Int32(p.N)
	e.Int32(p.D)
	return nil
}

func (p *Price) DecodeFrom(d *Decoder) error {
	var err error
	if p.N, err = d.Int32(); err != nil {
		return err
	}
	p.D, err = d.Int32()
	return err
}

// ClaimPredicateType discriminates ClaimPredicate.
type ClaimPredicateType int32

const (
	ClaimPredicateUnconditional      ClaimPredicateType = 0
	ClaimPredicateAnd                ClaimPredicateType = 1
	ClaimPredicateOr                 ClaimPredicateType = 2
	ClaimPredicateNot                ClaimPredicateType = 3
	ClaimPredicateBeforeAbsoluteTime ClaimPredicateType = 4
	ClaimPredicateBeforeRelativeTime ClaimPredicateType = 5
)

// ClaimPredicate is a node of a claim condition tree.
type ClaimPredicate struct {
	Type ClaimPredicateType
	// And and Or carry exactly two children.
	AndPredicates []ClaimPredicate
	OrPredicates  []ClaimPredicate
	NotPredicate  *ClaimPredicate
	AbsBefore     *int64
	RelBefore     *int64
}

func (p *ClaimPredicate) EncodeTo(e *Encoder) error {
	e.Int32(int32(p.Type))
	switch p.Type {
	case ClaimPredicateUnconditional:
	case ClaimPredicateAnd:
		return encodePredicates(e, p.AndPredicates)
	case ClaimPredicateOr:
		return encodePredicates(e, p.OrPredicates)
	case ClaimPredicateNot:
		e.Optional(p.NotPredicate != nil)
		if p.NotPredicate != nil {
			return p.NotPredicate.EncodeTo(e)
		}
	case ClaimPredicateBeforeAbsoluteTime:
		if p.AbsBefore == nil {
			return unknown("ClaimPredicate arm", int32(p.Type))
		}
		e.Int64(*p.AbsBefore)
	case ClaimPredicateBeforeRelativeTime:
		if p.RelBefore == nil {
			return unknown("ClaimPredicate arm", int32(p.Type))
		}
		e.Int64(*p.RelBefore)
	default:
		return unknown("ClaimPredicateType", int32(p.Type))
	}
	return nil
}

func encodePredicates(e *Encoder, ps []ClaimPredicate) error {
	if err := e.ArrayLen(len(ps), 2); err != nil {
		return err
	}
	for i := range ps {
		if err := ps[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodePredicates(d *Decoder) ([]ClaimPredicate, error) {
	n, err := d.ArrayLen(2)
	if err != nil {
		return nil, err
	}
	ps := make([]ClaimPredicate, n)
	for i := range ps {
		if err := ps[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func (p *ClaimPredicate) DecodeFrom(d *Decoder) error {
	if err := d.Enter(); err != nil {
		return err
	}
	defer d.Leave()

	t, err := d.Int32()
	if err != nil {
		return err
	}
	*p = ClaimPredicate{Type: ClaimPredicateType(t)}
	switch p.Type {
	case ClaimPredicateUnconditional:
	case ClaimPredicateAnd:
		p.AndPredicates, err = decodePredicates(d)
	case ClaimPredicateOr:
		p.OrPredicates, err = decodePredicates(d)
	case ClaimPredicateNot:
		var present bool
		if present, err = d.Optional(); err != nil || !present {
			return err
		}
		var inner ClaimPredicate
		if err = inner.DecodeFrom(d); err == nil {
			p.NotPredicate = &inner
		}
	case ClaimPredicateBeforeAbsoluteTime:
		var v int64
		if v, err = d.Int64(); err == nil {
			p.AbsBefore = &v
		}
	case ClaimPredicateBeforeRelativeTime:
		var v int64
		if v, err = d.Int64(); err == nil {
			p.RelBefore = &v
		}
	default:
		return unknown("ClaimPredicateType", t)
	}
	return err
}

// ClaimantType discriminates Claimant. Only version 0 exists.
type ClaimantType int32

const ClaimantTypeV0 ClaimantType = 0

// Claimant is a destination allowed to claim a balance under a predicate.
type Claimant struct {
	Destination AccountID
	Predicate   ClaimPredicate
}

func (c *Claimant) EncodeTo(e *Encoder) error {
	e.Int32(int32(ClaimantTypeV0))
	if err := c.Destination.EncodeTo(e); err != nil {
		return err
	}
	return c.Predicate.EncodeTo(e)
}

func (c *Claimant) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	if ClaimantType(t) != ClaimantTypeV0 {
		return unknown("ClaimantType", t)
	}
	if err := c.Destination.DecodeFrom(d); err != nil {
		return err
	}
	return c.Predicate.DecodeFrom(d)
}

// ClaimableBalanceIDType discriminates ClaimableBalanceID.
type ClaimableBalanceIDType int32

const ClaimableBalanceIDTypeV0 ClaimableBalanceIDType = 0

// ClaimableBalanceID identifies a claimable balance by hash.
type ClaimableBalanceID struct {
	Type ClaimableBalanceIDType
	V0   Hash
}

func (c *ClaimableBalanceID) EncodeTo(e *Encoder) error {
	if c.Type != ClaimableBalanceIDTypeV0 {
		return unknown("ClaimableBalanceIDType", int32(c.Type))
	}
	e.Int32(int32(c.Type))
	encodeUint256(e, c.V0)
	return nil
}

func (c *ClaimableBalanceID) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	if ClaimableBalanceIDType(t) != ClaimableBalanceIDTypeV0 {
		return unknown("ClaimableBalanceIDType", t)
	}
	c.Type = ClaimableBalanceIDTypeV0
	c.V0, err = decodeUint256(d)
	return err
}

// LedgerEntryType discriminates LedgerKey.
type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
)

const MaxDataNameLen = 64

type LedgerKeyAccount struct {
	AccountID AccountID
}

type LedgerKeyTrustLine struct {
	AccountID AccountID
	Asset     Asset
}

type LedgerKeyOffer struct {
	SellerID AccountID
	OfferID  int64
}

type LedgerKeyData struct {
	AccountID AccountID
	DataName  string
}

type LedgerKeyClaimableBalance struct {
	BalanceID ClaimableBalanceID
}

// LedgerKey names a single ledger entry.
type LedgerKey struct {
	Type             LedgerEntryType
	Account          *LedgerKeyAccount
	TrustLine        *LedgerKeyTrustLine
	Offer            *LedgerKeyOffer
	Data             *LedgerKeyData
	ClaimableBalance *LedgerKeyClaimableBalance
}

func (k *LedgerKey) EncodeTo(e *Encoder) error {
	e.Int32(int32(k.Type))
	switch {
	case k.Type == LedgerEntryTypeAccount && k.Account != nil:
		return k.Account.AccountID.EncodeTo(e)
	case k.Type == LedgerEntryTypeTrustline && k.TrustLine != nil:
		if err := k.TrustLine.AccountID.EncodeTo(e); err != nil {
			return err
		}
		return k.TrustLine.Asset.EncodeTo(e)
	case k.Type == LedgerEntryTypeOffer && k.Offer != nil:
		if err := k.Offer.SellerID.EncodeTo(e); err != nil {
			return err
		}
		e.Int64(k.Offer.OfferID)
		return nil
	case k.Type == LedgerEntryTypeData && k.Data != nil:
		if err := k.Data.AccountID.EncodeTo(e); err != nil {
			return err
		}
		return e.String(k.Data.DataName, MaxDataNameLen)
	case k.Type == LedgerEntryTypeClaimableBalance && k.ClaimableBalance != nil:
		return k.ClaimableBalance.BalanceID.EncodeTo(e)
	default:
		return unknown("LedgerEntryType", int32(k.Type))
	}
}

func (k *LedgerKey) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*k = LedgerKey{Type: LedgerEntryType(t)}
	switch k.Type {
	case LedgerEntryTypeAccount:
		var v LedgerKeyAccount
		err = v.AccountID.DecodeFrom(d)
		k.Account = &v
	case LedgerEntryTypeTrustline:
		var v LedgerKeyTrustLine
		if err = v.AccountID.DecodeFrom(d); err == nil {
			err = v.Asset.DecodeFrom(d)
		}
		k.TrustLine = &v
	case LedgerEntryTypeOffer:
		var v LedgerKeyOffer
		if err = v.SellerID.DecodeFrom(d); err == nil {
			v.OfferID, err = d.Int64()
		}
		k.Offer = &v
	case LedgerEntryTypeData:
		var v LedgerKeyData
		if err = v.AccountID.DecodeFrom(d); err == nil {
			v.DataName, err = d.String(MaxDataNameLen)
		}
		k.Data = &v
	case LedgerEntryTypeClaimableBalance:
		var v LedgerKeyClaimableBalance
		err = v.BalanceID.DecodeFrom(d)
		k.ClaimableBalance = &v
	default:
		return unknown("LedgerEntryType", t)
	}
	return err
}
