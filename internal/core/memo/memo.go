// Package memo implements the optional transaction memo.
package memo

import (
	"encoding/hex"
	"strconv"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Type is the textual memo kind.
type Type string

const (
	TypeNone   Type = "none"
	TypeText   Type = "text"
	TypeID     Type = "id"
	TypeHash   Type = "hash"
	TypeReturn Type = "return"
)

// Memo is immutable. The zero value is the empty memo.
type Memo struct {
	typ  Type
	text string
	id   uint64
	hash xdr.Hash
}

// None returns the empty memo.
func None() Memo { return Memo{typ: TypeNone} }

// Text returns a text memo of at most 28 bytes.
func Text(s string) (Memo, error) {
	if len(s) > xdr.MaxMemoTextLen {
		return Memo{}, kerrors.Validation("memo", "text must be <= %d bytes", xdr.MaxMemoTextLen)
	}
	return Memo{typ: TypeText, text: s}, nil
}

// ID returns an id memo from a decimal uint64 string.
func ID(s string) (Memo, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Memo{}, kerrors.Validation("memo", "Expects a int64 as a string. Got %s", s)
	}
	return Memo{typ: TypeID, id: v}, nil
}

// Hash returns a hash memo from 32 raw bytes or 64 hex characters.
func Hash(v []byte) (Memo, error) {
	h, err := parseHash(v)
	if err != nil {
		return Memo{}, err
	}
	return Memo{typ: TypeHash, hash: h}, nil
}

// Return returns a return-hash memo from 32 raw bytes or 64 hex characters.
func Return(v []byte) (Memo, error) {
	h, err := parseHash(v)
	if err != nil {
		return Memo{}, err
	}
	return Memo{typ: TypeReturn, hash: h}, nil
}

func parseHash(v []byte) (xdr.Hash, error) {
	var h xdr.Hash
	switch len(v) {
	case len(h):
		copy(h[:], v)
		return h, nil
	case 2 * len(h):
		if _, err := hex.Decode(h[:], v); err == nil {
			return h, nil
		}
	}
	return h, kerrors.Validation("memo", "Expects a 32 byte hash value or hex encoded string")
}

// Type returns the memo kind.
func (m Memo) Type() Type {
	if m.typ == "" {
		return TypeNone
	}
	return m.typ
}

// Value renders the memo payload: the text, the decimal id, the hex hash,
// or "" for none.
func (m Memo) Value() string {
	switch m.Type() {
	case TypeText:
		return m.text
	case TypeID:
		return strconv.FormatUint(m.id, 10)
	case TypeHash, TypeReturn:
		return hex.EncodeToString(m.hash[:])
	}
	return ""
}

func (m Memo) ToXDR() xdr.Memo {
	switch m.Type() {
	case TypeText:
		s := m.text
		return xdr.Memo{Type: xdr.MemoTypeText, Text: &s}
	case TypeID:
		id := m.id
		return xdr.Memo{Type: xdr.MemoTypeID, ID: &id}
	case TypeHash:
		h := m.hash
		return xdr.Memo{Type: xdr.MemoTypeHash, Hash: &h}
	case TypeReturn:
		h := m.hash
		return xdr.Memo{Type: xdr.MemoTypeReturn, RetHash: &h}
	}
	return xdr.Memo{Type: xdr.MemoTypeNone}
}

func FromXDR(x xdr.Memo) (Memo, error) {
	switch {
	case x.Type == xdr.MemoTypeNone:
		return None(), nil
	case x.Type == xdr.MemoTypeText && x.Text != nil:
		return Memo{typ: TypeText, text: *x.Text}, nil
	case x.Type == xdr.MemoTypeID && x.ID != nil:
		return Memo{typ: TypeID, id: *x.ID}, nil
	case x.Type == xdr.MemoTypeHash && x.Hash != nil:
		return Memo{typ: TypeHash, hash: *x.Hash}, nil
	case x.Type == xdr.MemoTypeReturn && x.RetHash != nil:
		return Memo{typ: TypeReturn, hash: *x.RetHash}, nil
	}
	return Memo{}, kerrors.Decode(xdr.ErrUnknownDiscriminant, "memo type %d", x.Type)
}
