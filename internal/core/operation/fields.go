package operation

import (
	"encoding/hex"
	"strconv"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/amount"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Ptr returns a pointer to v, for the optional SetOptions fields.
func Ptr[T any](v T) *T { return &v }

// clonePtr keeps nil and copies the pointee otherwise.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func accountField(field, address string) (xdr.AccountID, error) {
	return addresscodec.DecodeAccountID(field, address)
}

// muxedField builds a wire muxed account from a plain G address. M
// addresses are rejected in operation fields.
func muxedField(field, address string) (xdr.MuxedAccount, error) {
	return addresscodec.DecodeMuxedAccount(field, address, false)
}

func amountField(field, s string, allowZero bool) (int64, error) {
	a, err := amount.ParseField(field, s, allowZero)
	if err != nil {
		return 0, err
	}
	return a.Int64(), nil
}

func assetField(field string, a asset.Asset) (xdr.Asset, error) {
	if a.IsZero() {
		return xdr.Asset{}, kerrors.Invalid(field)
	}
	x, err := a.ToXDR()
	if err != nil {
		return xdr.Asset{}, kerrors.WrapValidation(field, err)
	}
	return x, nil
}

func pathField(path []asset.Asset) ([]xdr.Asset, error) {
	if len(path) > xdr.MaxPathLen {
		return nil, kerrors.Validation("path", "path must contain at most %d assets", xdr.MaxPathLen)
	}
	if len(path) == 0 {
		return nil, nil
	}
	out := make([]xdr.Asset, len(path))
	for i, a := range path {
		x, err := assetField("path", a)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// offerIDField parses a decimal offer id. Empty means zero.
func offerIDField(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, kerrors.Invalid("offerId")
	}
	return id, nil
}

func weightField(field string, v *uint32) error {
	if v != nil && *v > 255 {
		return kerrors.Validation(field, "%s value must be between 0 and 255", field)
	}
	return nil
}

// hashField accepts 32 raw bytes or 64 hex characters.
func hashField(field string, b []byte) (xdr.Uint256, error) {
	var out xdr.Uint256
	switch len(b) {
	case 32:
		copy(out[:], b)
		return out, nil
	case 64:
		if _, err := hex.Decode(out[:], b); err == nil {
			return out, nil
		}
	}
	return out, kerrors.Invalid(field)
}

func dataNameField(field, name string) error {
	if name == "" || len(name) > xdr.MaxDataNameLen {
		return kerrors.Validation(field, "%s must be a string, up to %d characters", field, xdr.MaxDataNameLen)
	}
	return nil
}

// balanceIDField parses the hex form of a claimable balance id: the
// four-byte type followed by the 32-byte hash.
func balanceIDField(s string) (xdr.ClaimableBalanceID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 36 {
		return xdr.ClaimableBalanceID{}, kerrors.Invalid("balanceId")
	}
	if raw[0] != 0 || raw[1] != 0 || raw[2] != 0 || raw[3] != byte(xdr.ClaimableBalanceIDTypeV0) {
		return xdr.ClaimableBalanceID{}, kerrors.Invalid("balanceId")
	}
	id := xdr.ClaimableBalanceID{Type: xdr.ClaimableBalanceIDTypeV0}
	copy(id.V0[:], raw[4:])
	return id, nil
}

func encodeBalanceID(id xdr.ClaimableBalanceID) string {
	raw := make([]byte, 36)
	raw[3] = byte(id.Type)
	copy(raw[4:], id.V0[:])
	return hex.EncodeToString(raw)
}

func amountString(stroops int64) string {
	return amount.New(stroops).String()
}

func assetFromXDR(x xdr.Asset) (asset.Asset, error) {
	return asset.FromXDR(x)
}

func pathFromXDR(xs []xdr.Asset) ([]asset.Asset, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	out := make([]asset.Asset, len(xs))
	for i, x := range xs {
		a, err := asset.FromXDR(x)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}
