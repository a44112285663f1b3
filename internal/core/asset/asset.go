// Package asset implements the native asset and issued credit assets.
package asset

import (
	"bytes"
	"regexp"
	"strings"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// NativeCode is the code reported for the native asset.
const NativeCode = "XLM"

// Type is the textual asset type.
type Type string

const (
	TypeNative           Type = "native"
	TypeCreditAlphanum4  Type = "credit_alphanum4"
	TypeCreditAlphanum12 Type = "credit_alphanum12"
)

var codePattern = regexp.MustCompile(`^[a-zA-Z0-9]{1,12}$`)

// Asset is an immutable asset value. The zero value is no asset at all
// and fails every conversion; use Native for the native asset.
type Asset struct {
	typ    Type
	code   string
	issuer string
}

// Native returns the native asset.
func Native() Asset {
	return Asset{typ: TypeNative}
}

// New returns the credit asset code issued by issuer. The alphanum width
// follows from the code length.
func New(code, issuer string) (Asset, error) {
	if !codePattern.MatchString(code) {
		return Asset{}, kerrors.Validation("code", "Asset code is invalid (maximum alphanumeric, 12 characters at max)")
	}
	if issuer == "" {
		return Asset{}, kerrors.Validation("issuer", "Issuer cannot be null")
	}
	if !addresscodec.IsValidAccountID(issuer) {
		return Asset{}, kerrors.Validation("issuer", "Issuer is invalid")
	}
	typ := TypeCreditAlphanum4
	if len(code) > 4 {
		typ = TypeCreditAlphanum12
	}
	return Asset{typ: typ, code: code, issuer: issuer}, nil
}

// Parse reads the String form: "native" or "CODE:ISSUER".
func Parse(s string) (Asset, error) {
	if s == string(TypeNative) {
		return Native(), nil
	}
	code, issuer, ok := strings.Cut(s, ":")
	if !ok {
		return Asset{}, kerrors.Validation("asset", "asset must be \"native\" or CODE:ISSUER")
	}
	return New(code, issuer)
}

// MustNew is New for literals known to be valid.
func MustNew(code, issuer string) Asset {
	a, err := New(code, issuer)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Asset) IsNative() bool {
	return a.typ == TypeNative
}

// IsZero reports whether a is the unset zero value.
func (a Asset) IsZero() bool {
	return a.typ == ""
}

// Code returns the asset code, "XLM" for the native asset.
func (a Asset) Code() string {
	if a.IsNative() {
		return NativeCode
	}
	return a.code
}

// Issuer returns the issuer address, empty for the native asset.
func (a Asset) Issuer() string {
	return a.issuer
}

func (a Asset) Type() Type {
	return a.typ
}

// Equals compares type, code and issuer.
func (a Asset) Equals(other Asset) bool {
	return a == other
}

// String returns "native" or "CODE:ISSUER".
func (a Asset) String() string {
	switch {
	case a.IsZero():
		return ""
	case a.IsNative():
		return string(TypeNative)
	}
	return a.code + ":" + a.issuer
}

// ToXDR returns the wire form, padding the code with NUL bytes.
func (a Asset) ToXDR() (xdr.Asset, error) {
	if a.IsZero() {
		return xdr.Asset{}, kerrors.Invalid("asset")
	}
	if a.IsNative() {
		return xdr.Asset{Type: xdr.AssetTypeNative}, nil
	}
	issuer, err := addresscodec.DecodeAccountID("issuer", a.issuer)
	if err != nil {
		return xdr.Asset{}, err
	}
	if a.Type() == TypeCreditAlphanum4 {
		v := xdr.AlphaNum4{Issuer: issuer}
		copy(v.AssetCode[:], a.code)
		return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum4, AlphaNum4: &v}, nil
	}
	v := xdr.AlphaNum12{Issuer: issuer}
	copy(v.AssetCode[:], a.code)
	return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum12, AlphaNum12: &v}, nil
}

// CodeToXDR pads code into the issuer-less wire form.
func CodeToXDR(code string) (xdr.AssetCode, error) {
	if !codePattern.MatchString(code) {
		return xdr.AssetCode{}, kerrors.Validation("assetCode", "Asset code is invalid (maximum alphanumeric, 12 characters at max)")
	}
	if len(code) <= 4 {
		var c xdr.AssetCode4
		copy(c[:], code)
		return xdr.AssetCode{Type: xdr.AssetTypeCreditAlphanum4, AssetCode4: &c}, nil
	}
	var c xdr.AssetCode12
	copy(c[:], code)
	return xdr.AssetCode{Type: xdr.AssetTypeCreditAlphanum12, AssetCode12: &c}, nil
}

// CodeFromXDR strips the NUL padding from a wire asset code.
func CodeFromXDR(c xdr.AssetCode) string {
	switch {
	case c.AssetCode4 != nil:
		return trimCode(c.AssetCode4[:])
	case c.AssetCode12 != nil:
		return trimCode(c.AssetCode12[:])
	}
	return ""
}

// FromXDR converts a wire asset back to an Asset.
func FromXDR(x xdr.Asset) (Asset, error) {
	switch x.Type {
	case xdr.AssetTypeNative:
		return Native(), nil
	case xdr.AssetTypeCreditAlphanum4:
		if x.AlphaNum4 != nil {
			return New(trimCode(x.AlphaNum4.AssetCode[:]), addresscodec.EncodeAccountID(x.AlphaNum4.Issuer))
		}
	case xdr.AssetTypeCreditAlphanum12:
		if x.AlphaNum12 != nil {
			return New(trimCode(x.AlphaNum12.AssetCode[:]), addresscodec.EncodeAccountID(x.AlphaNum12.Issuer))
		}
	}
	return Asset{}, kerrors.Decode(xdr.ErrUnknownDiscriminant, "asset type %d", x.Type)
}

func trimCode(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
