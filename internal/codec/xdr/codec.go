// Package xdr implements the canonical binary encoding of protocol values.
//
// Every value is a sequence of big-endian 4-byte aligned units: 32 and 64
// bit integers, booleans as 0/1 words, fixed opaque data padded with zeros,
// and variable opaque data or strings with a uint32 length prefix. Unions
// carry an int32 discriminant and optional values a boolean presence flag.
package xdr

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

var (
	ErrUnexpectedEOF        = errors.New("unexpected end of data")
	ErrTrailingBytes        = errors.New("trailing bytes after value")
	ErrMaxLength            = errors.New("length exceeds maximum")
	ErrUnknownDiscriminant  = errors.New("unknown union discriminant")
	ErrNonZeroPadding       = errors.New("non-zero padding")
	ErrInvalidBool          = errors.New("invalid boolean")
	ErrMaxDepth             = errors.New("maximum nesting depth exceeded")
	ErrInvalidFixedLength   = errors.New("fixed opaque has wrong length")
	ErrUnsupportedExtension = errors.New("unsupported extension version")
)

// maxDepth bounds recursion in self-referential types such as predicates.
const maxDepth = 64

// Marshaler is implemented by every value with a wire form.
type Marshaler interface {
	EncodeTo(e *Encoder) error
}

// Unmarshaler is implemented by every value that can be read back.
type Unmarshaler interface {
	DecodeFrom(d *Decoder) error
}

// Encoder appends wire units to an in-memory buffer.
type Encoder struct {
	buf bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded data.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Encoder) Uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) Int32(v int32) { e.Uint32(uint32(v)) }

func (e *Encoder) Uint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) Int64(v int64) { e.Uint64(uint64(v)) }

func (e *Encoder) Bool(v bool) {
	if v {
		e.Uint32(1)
	} else {
		e.Uint32(0)
	}
}

// FixedOpaque writes b followed by zero padding to a 4-byte boundary.
func (e *Encoder) FixedOpaque(b []byte) {
	e.buf.Write(b)
	e.pad(len(b))
}

// Opaque writes a length-prefixed byte string of at most max bytes.
func (e *Encoder) Opaque(b []byte, max int) error {
	if len(b) > max {
		return fmt.Errorf("%w: %d > %d", ErrMaxLength, len(b), max)
	}
	e.Uint32(uint32(len(b)))
	e.FixedOpaque(b)
	return nil
}

// String writes s as variable opaque data.
func (e *Encoder) String(s string, max int) error {
	return e.Opaque([]byte(s), max)
}

// Optional writes the presence flag for an optional value.
func (e *Encoder) Optional(present bool) { e.Bool(present) }

// ArrayLen writes the length prefix of a variable array.
func (e *Encoder) ArrayLen(n, max int) error {
	if n > max {
		return fmt.Errorf("%w: %d elements > %d", ErrMaxLength, n, max)
	}
	e.Uint32(uint32(n))
	return nil
}

func (e *Encoder) pad(n int) {
	if r := n % 4; r != 0 {
		e.buf.Write(make([]byte, 4-r))
	}
}

// Decoder reads wire units from a byte slice.
type Decoder struct {
	data  []byte
	pos   int
	depth int
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// HasMore reports whether unread bytes remain.
func (d *Decoder) HasMore() bool {
	return d.pos < len(d.data)
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) read(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *Decoder) Uint32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

func (d *Decoder) Uint64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Decoder) Int64() (int64, error) {
	v, err := d.Uint64()
	return int64(v), err
}

func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidBool, v)
	}
}

// FixedOpaque reads n bytes plus padding, returning a copy.
func (d *Decoder) FixedOpaque(n int) ([]byte, error) {
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	if r := n % 4; r != 0 {
		p, err := d.read(4 - r)
		if err != nil {
			return nil, err
		}
		for _, c := range p {
			if c != 0 {
				return nil, ErrNonZeroPadding
			}
		}
	}
	return out, nil
}

// Opaque reads a length-prefixed byte string of at most max bytes.
func (d *Decoder) Opaque(max int) ([]byte, error) {
	n, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	if int64(n) > int64(max) {
		return nil, fmt.Errorf("%w: %d > %d", ErrMaxLength, n, max)
	}
	return d.FixedOpaque(int(n))
}

func (d *Decoder) String(max int) (string, error) {
	b, err := d.Opaque(max)
	return string(b), err
}

// Optional reads the presence flag of an optional value.
func (d *Decoder) Optional() (bool, error) { return d.Bool() }

// ArrayLen reads a variable array length prefix bounded by max.
func (d *Decoder) ArrayLen(max int) (int, error) {
	n, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	if int64(n) > int64(max) {
		return 0, fmt.Errorf("%w: %d elements > %d", ErrMaxLength, n, max)
	}
	return int(n), nil
}

// Enter guards one level of recursive decoding; callers defer Leave.
func (d *Decoder) Enter() error {
	if d.depth >= maxDepth {
		return ErrMaxDepth
	}
	d.depth++
	return nil
}

func (d *Decoder) Leave() { d.depth-- }

func unknown(what string, v int32) error {
	return fmt.Errorf("%w: %s %d", ErrUnknownDiscriminant, what, v)
}

// Marshal encodes v.
func Marshal(v Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := v.EncodeTo(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into v. The whole input must be consumed.
func Unmarshal(data []byte, v Unmarshaler) error {
	d := NewDecoder(data)
	if err := v.DecodeFrom(d); err != nil {
		return kerrors.Decode(err, "xdr %T", v)
	}
	if d.HasMore() {
		return kerrors.Decode(ErrTrailingBytes, "xdr %T: %d bytes left", v, d.Remaining())
	}
	return nil
}

// MarshalBase64 encodes v and renders it as standard base64.
func MarshalBase64(v Marshaler) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 decodes standard base64 input into v.
func UnmarshalBase64(s string, v Unmarshaler) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return kerrors.Decode(err, "base64")
	}
	return Unmarshal(b, v)
}

// Clone returns a deep copy of src made through its wire form.
func Clone[T any, PT interface {
	*T
	Marshaler
	Unmarshaler
}](src PT) (PT, error) {
	b, err := Marshal(src)
	if err != nil {
		return nil, err
	}
	out := PT(new(T))
	if err := Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}
