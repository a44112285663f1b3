// Package addresscodec maps StrKey addresses to and from their wire forms.
package addresscodec

import (
	"github.com/LeJamon/goKurdBase/internal/codec/strkey"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// DecodeAccountID parses a G address. Failures name field.
func DecodeAccountID(field, address string) (xdr.AccountID, error) {
	var id xdr.AccountID
	raw, err := strkey.Decode(strkey.AccountID, address)
	if err != nil {
		return id, &kerrors.ValidationError{Field: field, Msg: field + " is invalid", Err: err}
	}
	copy(id.Ed25519[:], raw)
	return id, nil
}

// EncodeAccountID renders an account id as a G address.
func EncodeAccountID(id xdr.AccountID) string {
	return strkey.MustEncode(strkey.AccountID, id.Ed25519[:])
}

// IsValidAccountID reports whether address is a plain G address.
func IsValidAccountID(address string) bool {
	return strkey.IsValidEd25519PublicKey(address)
}

// DecodeMuxedAccount parses a G address, or an M address when allowMuxed
// is set, into a wire muxed account.
func DecodeMuxedAccount(field, address string, allowMuxed bool) (xdr.MuxedAccount, error) {
	if allowMuxed && strkey.IsValidMuxedAccount(address) {
		key, id, err := strkey.DecodeMuxed(address)
		if err != nil {
			return xdr.MuxedAccount{}, kerrors.Invalid(field)
		}
		return xdr.MuxedAccount{
			Type:     xdr.KeyTypeMuxedEd25519,
			Med25519: &xdr.MuxedAccountMed25519{ID: id, Ed25519: key},
		}, nil
	}
	id, err := DecodeAccountID(field, address)
	if err != nil {
		return xdr.MuxedAccount{}, err
	}
	return xdr.NewMuxedAccount(id.Ed25519), nil
}

// EncodeMuxedAccount renders the G address underlying m. The multiplexed
// id, if any, is dropped.
func EncodeMuxedAccount(m xdr.MuxedAccount) string {
	key := m.Key()
	return strkey.MustEncode(strkey.AccountID, key[:])
}

// EncodeMuxedAccountFull renders m as an M address when it carries an id
// and as a G address otherwise.
func EncodeMuxedAccountFull(m xdr.MuxedAccount) string {
	if m.Type == xdr.KeyTypeMuxedEd25519 && m.Med25519 != nil {
		return strkey.EncodeMuxed(m.Med25519.Ed25519, m.Med25519.ID)
	}
	return EncodeMuxedAccount(m)
}
