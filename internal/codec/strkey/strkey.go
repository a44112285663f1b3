// Package strkey implements the checksummed base32 text encoding used for
// account ids, seeds, signer hashes and muxed accounts.
//
// An encoded key is base32(version ‖ payload ‖ crc16(version ‖ payload)),
// RFC 4648 alphabet without padding, with the CRC16-XMODEM checksum stored
// little endian.
package strkey

import (
	"bytes"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// VersionByte selects the kind of key material an address carries.
type VersionByte byte

const (
	AccountID    VersionByte = 6 << 3  // G...
	Seed         VersionByte = 18 << 3 // S...
	PreAuthTx    VersionByte = 19 << 3 // T...
	SHA256Hash   VersionByte = 23 << 3 // X...
	MuxedAccount VersionByte = 12 << 3 // M...
)

const (
	keyPayloadLen   = 32
	muxedPayloadLen = 40
)

var (
	ErrInvalidVersionByte = errors.New("invalid version byte")
	ErrInvalidChecksum    = errors.New("invalid checksum")
	ErrInvalidLength      = errors.New("invalid encoded length")
	ErrInvalidEncoding    = errors.New("invalid base32 encoding")
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// String returns the name of the key kind.
func (v VersionByte) String() string {
	switch v {
	case AccountID:
		return "ed25519PublicKey"
	case Seed:
		return "ed25519SecretSeed"
	case PreAuthTx:
		return "preAuthTx"
	case SHA256Hash:
		return "sha256Hash"
	case MuxedAccount:
		return "muxedAccount"
	default:
		return fmt.Sprintf("VersionByte(%d)", byte(v))
	}
}

// PayloadLen returns the decoded payload length for v, or 0 if v is unknown.
func (v VersionByte) PayloadLen() int {
	switch v {
	case AccountID, Seed, PreAuthTx, SHA256Hash:
		return keyPayloadLen
	case MuxedAccount:
		return muxedPayloadLen
	default:
		return 0
	}
}

// Encode renders payload under version v.
func Encode(v VersionByte, payload []byte) (string, error) {
	want := v.PayloadLen()
	if want == 0 {
		return "", kerrors.Decode(ErrInvalidVersionByte, "encode %s", v)
	}
	if len(payload) != want {
		return "", kerrors.Decode(ErrInvalidLength, "encode %s: payload is %d bytes, want %d", v, len(payload), want)
	}
	return encodeRaw(v, payload), nil
}

// MustEncode is Encode for payloads already known to be well formed.
func MustEncode(v VersionByte, payload []byte) string {
	s, err := Encode(v, payload)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeRaw(v VersionByte, payload []byte) string {
	raw := make([]byte, 0, 1+len(payload)+2)
	raw = append(raw, byte(v))
	raw = append(raw, payload...)
	sum := checksum(raw)
	raw = append(raw, sum[:]...)
	return encoding.EncodeToString(raw)
}

// Decode parses s, which must be encoded under version v.
func Decode(v VersionByte, s string) ([]byte, error) {
	got, payload, err := decodeRaw(s)
	if err != nil {
		return nil, err
	}
	if got != v {
		return nil, kerrors.Decode(ErrInvalidVersionByte, "expected %s, got %s", v, got)
	}
	if len(payload) != v.PayloadLen() {
		return nil, kerrors.Decode(ErrInvalidLength, "%s payload is %d bytes", v, len(payload))
	}
	return payload, nil
}

// DecodeAny parses s under whichever known version byte it carries.
func DecodeAny(s string) (VersionByte, []byte, error) {
	v, payload, err := decodeRaw(s)
	if err != nil {
		return 0, nil, err
	}
	want := v.PayloadLen()
	if want == 0 {
		return 0, nil, kerrors.Decode(ErrInvalidVersionByte, "unknown version byte %d", byte(v))
	}
	if len(payload) != want {
		return 0, nil, kerrors.Decode(ErrInvalidLength, "%s payload is %d bytes", v, len(payload))
	}
	return v, payload, nil
}

func decodeRaw(s string) (VersionByte, []byte, error) {
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return 0, nil, kerrors.Decode(ErrInvalidEncoding, "%q", s)
	}
	// Unused trailing bits must be zero so every key has one spelling.
	if encoding.EncodeToString(raw) != s {
		return 0, nil, kerrors.Decode(ErrInvalidEncoding, "non-canonical %q", s)
	}
	if len(raw) < 3 {
		return 0, nil, kerrors.Decode(ErrInvalidLength, "%d bytes", len(raw))
	}
	body, sum := raw[:len(raw)-2], raw[len(raw)-2:]
	want := checksum(body)
	if !bytes.Equal(sum, want[:]) {
		return 0, nil, kerrors.Decode(ErrInvalidChecksum, "%q", s)
	}
	payload := make([]byte, len(body)-1)
	copy(payload, body[1:])
	return VersionByte(body[0]), payload, nil
}

// IsValid reports whether s decodes cleanly under version v.
func IsValid(v VersionByte, s string) bool {
	_, err := Decode(v, s)
	return err == nil
}

// IsValidEd25519PublicKey reports whether s is a G address.
func IsValidEd25519PublicKey(s string) bool { return IsValid(AccountID, s) }

// IsValidEd25519SecretSeed reports whether s is an S seed.
func IsValidEd25519SecretSeed(s string) bool { return IsValid(Seed, s) }

// IsValidMuxedAccount reports whether s is an M address.
func IsValidMuxedAccount(s string) bool { return IsValid(MuxedAccount, s) }

// EncodeMuxed renders an ed25519 key plus 64-bit id as an M address.
func EncodeMuxed(key [32]byte, id uint64) string {
	payload := make([]byte, muxedPayloadLen)
	copy(payload, key[:])
	binary.BigEndian.PutUint64(payload[32:], id)
	return encodeRaw(MuxedAccount, payload)
}

// DecodeMuxed splits an M address into its ed25519 key and id.
func DecodeMuxed(s string) ([32]byte, uint64, error) {
	var key [32]byte
	payload, err := Decode(MuxedAccount, s)
	if err != nil {
		return key, 0, err
	}
	copy(key[:], payload[:32])
	return key, binary.BigEndian.Uint64(payload[32:]), nil
}

// AccountIDFromMuxed returns the G address underlying an M address.
func AccountIDFromMuxed(s string) (string, error) {
	key, _, err := DecodeMuxed(s)
	if err != nil {
		return "", err
	}
	return encodeRaw(AccountID, key[:]), nil
}
