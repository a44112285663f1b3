package operation

import (
	"bytes"
	"strconv"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/strkey"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Account flags for SetOptions.
const (
	AuthRequiredFlag  uint32 = 1
	AuthRevocableFlag uint32 = 2
	AuthImmutableFlag uint32 = 4
)

// Trustline authorization values for AllowTrust.
const (
	Deauthorize                        uint32 = 0
	AuthorizeFlag                      uint32 = 1
	AuthorizeToMaintainLiabilitiesFlag uint32 = 2
)

// MaxTrustLimit is the limit ChangeTrust uses when none is given.
const MaxTrustLimit = "922337203685.4775807"

// SignerKey names exactly one signer. Hashes are 32 raw bytes or 64 hex
// characters.
type SignerKey struct {
	Ed25519PublicKey string
	PreAuthTx        []byte
	Sha256Hash       []byte
}

// Signer is a SetOptions signer change. Weight 0 removes the signer.
type Signer struct {
	Key    SignerKey
	Weight uint32
}

func (k SignerKey) toXDR() (xdr.SignerKey, error) {
	set := 0
	for _, present := range []bool{k.Ed25519PublicKey != "", k.PreAuthTx != nil, k.Sha256Hash != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return xdr.SignerKey{}, kerrors.Validation("signer",
			"Signer object must contain exactly one of signer.ed25519PublicKey, signer.sha256Hash, signer.preAuthTx")
	}
	switch {
	case k.Ed25519PublicKey != "":
		raw, err := strkey.Decode(strkey.AccountID, k.Ed25519PublicKey)
		if err != nil {
			return xdr.SignerKey{}, kerrors.Invalid("signer.ed25519PublicKey")
		}
		out := xdr.SignerKey{Type: xdr.SignerKeyTypeEd25519}
		copy(out.Key[:], raw)
		return out, nil
	case k.PreAuthTx != nil:
		h, err := hashField("signer.preAuthTx", k.PreAuthTx)
		return xdr.SignerKey{Type: xdr.SignerKeyTypePreAuthTx, Key: h}, err
	default:
		h, err := hashField("signer.sha256Hash", k.Sha256Hash)
		return xdr.SignerKey{Type: xdr.SignerKeyTypeHashX, Key: h}, err
	}
}

func signerKeyFromXDR(x xdr.SignerKey) SignerKey {
	switch x.Type {
	case xdr.SignerKeyTypeEd25519:
		return SignerKey{Ed25519PublicKey: strkey.MustEncode(strkey.AccountID, x.Key[:])}
	case xdr.SignerKeyTypePreAuthTx:
		return SignerKey{PreAuthTx: append([]byte(nil), x.Key[:]...)}
	default:
		return SignerKey{Sha256Hash: append([]byte(nil), x.Key[:]...)}
	}
}

// SetOptions changes account settings. Nil fields are left unchanged; a
// HomeDomain pointing at "" clears the domain.
type SetOptions struct {
	InflationDest string
	ClearFlags    *uint32
	SetFlags      *uint32
	MasterWeight  *uint32
	LowThreshold  *uint32
	MedThreshold  *uint32
	HighThreshold *uint32
	HomeDomain    *string
	Signer        *Signer
}

func (SetOptions) OpType() Type { return TypeSetOptions }

func (o SetOptions) threshold() Threshold {
	if o.MasterWeight != nil || o.LowThreshold != nil || o.MedThreshold != nil ||
		o.HighThreshold != nil || o.Signer != nil {
		return ThresholdHigh
	}
	return ThresholdMedium
}

func (o SetOptions) toXDR() (xdr.OperationBody, error) {
	op := xdr.SetOptionsOp{
		ClearFlags: o.ClearFlags,
		SetFlags:   o.SetFlags,
	}
	if o.InflationDest != "" {
		dest, err := accountField("inflationDest", o.InflationDest)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		op.InflationDest = &dest
	}
	weights := []struct {
		name string
		v    *uint32
		dst  **uint32
	}{
		{"masterWeight", o.MasterWeight, &op.MasterWeight},
		{"lowThreshold", o.LowThreshold, &op.LowThreshold},
		{"medThreshold", o.MedThreshold, &op.MedThreshold},
		{"highThreshold", o.HighThreshold, &op.HighThreshold},
	}
	for _, w := range weights {
		if err := weightField(w.name, w.v); err != nil {
			return xdr.OperationBody{}, err
		}
		*w.dst = w.v
	}
	if o.HomeDomain != nil {
		if len(*o.HomeDomain) > xdr.MaxHomeDomainLen {
			return xdr.OperationBody{}, kerrors.Validation("homeDomain",
				"homeDomain cannot exceed %d characters", xdr.MaxHomeDomainLen)
		}
		op.HomeDomain = o.HomeDomain
	}
	if o.Signer != nil {
		if err := weightField("signer.weight", &o.Signer.Weight); err != nil {
			return xdr.OperationBody{}, err
		}
		key, err := o.Signer.Key.toXDR()
		if err != nil {
			return xdr.OperationBody{}, err
		}
		op.Signer = &xdr.Signer{Key: key, Weight: o.Signer.Weight}
	}
	return xdr.OperationBody{Type: xdr.OperationTypeSetOptions, SetOptionsOp: &op}, nil
}

func setOptionsFromXDR(x *xdr.SetOptionsOp) SetOptions {
	out := SetOptions{
		ClearFlags:    clonePtr(x.ClearFlags),
		SetFlags:      clonePtr(x.SetFlags),
		MasterWeight:  clonePtr(x.MasterWeight),
		LowThreshold:  clonePtr(x.LowThreshold),
		MedThreshold:  clonePtr(x.MedThreshold),
		HighThreshold: clonePtr(x.HighThreshold),
		HomeDomain:    clonePtr(x.HomeDomain),
	}
	if x.InflationDest != nil {
		out.InflationDest = addresscodec.EncodeAccountID(*x.InflationDest)
	}
	if x.Signer != nil {
		out.Signer = &Signer{Key: signerKeyFromXDR(x.Signer.Key), Weight: x.Signer.Weight}
	}
	return out
}

// ChangeTrust creates, updates or deletes a trustline. An empty Limit
// means MaxTrustLimit and "0" deletes the line.
type ChangeTrust struct {
	Asset asset.Asset
	Limit string
}

func (ChangeTrust) OpType() Type { return TypeChangeTrust }

func (o ChangeTrust) toXDR() (xdr.OperationBody, error) {
	line, err := assetField("asset", o.Asset)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	limit := o.Limit
	if limit == "" {
		limit = MaxTrustLimit
	}
	l, err := amountField("limit", limit, true)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:          xdr.OperationTypeChangeTrust,
		ChangeTrustOp: &xdr.ChangeTrustOp{Line: line, Limit: l},
	}, nil
}

func changeTrustFromXDR(x *xdr.ChangeTrustOp) (ChangeTrust, error) {
	a, err := assetFromXDR(x.Line)
	if err != nil {
		return ChangeTrust{}, err
	}
	return ChangeTrust{Asset: a, Limit: amountString(x.Limit)}, nil
}

// AllowTrust sets the authorization of a trustline to an asset issued by
// the source account.
type AllowTrust struct {
	Trustor   string
	AssetCode string
	Authorize uint32
}

func (AllowTrust) OpType() Type { return TypeAllowTrust }

func (o AllowTrust) toXDR() (xdr.OperationBody, error) {
	trustor, err := accountField("trustor", o.Trustor)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	code, err := asset.CodeToXDR(o.AssetCode)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if o.Authorize > AuthorizeToMaintainLiabilitiesFlag {
		return xdr.OperationBody{}, kerrors.Invalid("authorize")
	}
	return xdr.OperationBody{
		Type:         xdr.OperationTypeAllowTrust,
		AllowTrustOp: &xdr.AllowTrustOp{Trustor: trustor, Asset: code, Authorize: o.Authorize},
	}, nil
}

func allowTrustFromXDR(x *xdr.AllowTrustOp) AllowTrust {
	return AllowTrust{
		Trustor:   addresscodec.EncodeAccountID(x.Trustor),
		AssetCode: asset.CodeFromXDR(x.Asset),
		Authorize: x.Authorize,
	}
}

// ManageData sets, modifies or deletes a data entry. A nil Value deletes
// the entry.
type ManageData struct {
	Name  string
	Value []byte
}

func (ManageData) OpType() Type { return TypeManageData }

func (o ManageData) toXDR() (xdr.OperationBody, error) {
	if err := dataNameField("name", o.Name); err != nil {
		return xdr.OperationBody{}, err
	}
	if len(o.Value) > xdr.MaxDataValueLen {
		return xdr.OperationBody{}, kerrors.Validation("value",
			"value cannot be longer than %d bytes", xdr.MaxDataValueLen)
	}
	return xdr.OperationBody{
		Type:         xdr.OperationTypeManageData,
		ManageDataOp: &xdr.ManageDataOp{DataName: o.Name, DataValue: o.Value},
	}, nil
}

func manageDataFromXDR(x *xdr.ManageDataOp) ManageData {
	return ManageData{Name: x.DataName, Value: bytes.Clone(x.DataValue)}
}

// BumpSequence raises the source account sequence number to BumpTo.
type BumpSequence struct {
	BumpTo string
}

func (BumpSequence) OpType() Type { return TypeBumpSequence }

func (o BumpSequence) toXDR() (xdr.OperationBody, error) {
	n, err := strconv.ParseInt(o.BumpTo, 10, 64)
	if err != nil || n < 0 {
		return xdr.OperationBody{}, kerrors.Validation("bumpTo", "bumpTo must be a stringified number")
	}
	return xdr.OperationBody{
		Type:           xdr.OperationTypeBumpSequence,
		BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: n},
	}, nil
}

func bumpSequenceFromXDR(x *xdr.BumpSequenceOp) BumpSequence {
	return BumpSequence{BumpTo: strconv.FormatInt(x.BumpTo, 10)}
}
