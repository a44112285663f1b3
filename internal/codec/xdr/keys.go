package xdr

// Uint256 is a 32-byte key or hash.
type Uint256 [32]byte

// Hash is a SHA-256 digest.
type Hash [32]byte

// SignatureHint is the last four bytes of the signing key.
type SignatureHint [4]byte

const MaxSignatureLen = 64

func encodeUint256(e *Encoder, v [32]byte) { e.FixedOpaque(v[:]) }

func decodeUint256(d *Decoder) ([32]byte, error) {
	var out [32]byte
	b, err := d.FixedOpaque(32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// PublicKeyType discriminates PublicKey. Only ed25519 exists.
type PublicKeyType int32

const PublicKeyTypeEd25519 PublicKeyType = 0

// AccountID is an ed25519 public key tagged with its key type.
type AccountID struct {
	Ed25519 Uint256
}

func (a *AccountID) EncodeTo(e *Encoder) error {
	e.Int32(int32(PublicKeyTypeEd25519))
	encodeUint256(e, a.Ed25519)
	return nil
}

func (a *AccountID) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	if PublicKeyType(t) != PublicKeyTypeEd25519 {
		return unknown("PublicKeyType", t)
	}
	a.Ed25519, err = decodeUint256(d)
	return err
}

// CryptoKeyType discriminates MuxedAccount.
type CryptoKeyType int32

const (
	KeyTypeEd25519      CryptoKeyType = 0
	KeyTypeMuxedEd25519 CryptoKeyType = 0x100
)

// MuxedAccountMed25519 is the multiplexed arm of MuxedAccount.
type MuxedAccountMed25519 struct {
	ID      uint64
	Ed25519 Uint256
}

// MuxedAccount is either a plain ed25519 key or a key with a 64-bit id.
type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  *Uint256
	Med25519 *MuxedAccountMed25519
}

// NewMuxedAccount wraps a plain ed25519 key.
func NewMuxedAccount(key Uint256) MuxedAccount {
	return MuxedAccount{Type: KeyTypeEd25519, Ed25519: &key}
}

// Key returns the ed25519 key regardless of arm.
func (m *MuxedAccount) Key() Uint256 {
	switch m.Type {
	case KeyTypeMuxedEd25519:
		if m.Med25519 != nil {
			return m.Med25519.Ed25519
		}
	default:
		if m.Ed25519 != nil {
			return *m.Ed25519
		}
	}
	return Uint256{}
}

func (m *MuxedAccount) EncodeTo(e *Encoder) error {
	e.Int32(int32(m.Type))
	switch m.Type {
	case KeyTypeEd25519:
		encodeUint256(e, m.Key())
	case KeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return unknown("MuxedAccount arm", int32(m.Type))
		}
		e.Uint64(m.Med25519.ID)
		encodeUint256(e, m.Med25519.Ed25519)
	default:
		return unknown("CryptoKeyType", int32(m.Type))
	}
	return nil
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*m = MuxedAccount{Type: CryptoKeyType(t)}
	switch m.Type {
	case KeyTypeEd25519:
		k, err := decodeUint256(d)
		if err != nil {
			return err
		}
		m.Ed25519 = (*Uint256)(&k)
	case KeyTypeMuxedEd25519:
		var med MuxedAccountMed25519
		if med.ID, err = d.Uint64(); err != nil {
			return err
		}
		if med.Ed25519, err = decodeUint256(d); err != nil {
			return err
		}
		m.Med25519 = &med
	default:
		return unknown("CryptoKeyType", t)
	}
	return nil
}

// SignerKeyType discriminates SignerKey.
type SignerKeyType int32

const (
	SignerKeyTypeEd25519   SignerKeyType = 0
	SignerKeyTypePreAuthTx SignerKeyType = 1
	SignerKeyTypeHashX     SignerKeyType = 2
)

// SignerKey is one of the three kinds of key that can authorize an account.
type SignerKey struct {
	Type SignerKeyType
	Key  Uint256
}

func (s *SignerKey) EncodeTo(e *Encoder) error {
	switch s.Type {
	case SignerKeyTypeEd25519, SignerKeyTypePreAuthTx, SignerKeyTypeHashX:
	default:
		return unknown("SignerKeyType", int32(s.Type))
	}
	e.Int32(int32(s.Type))
	encodeUint256(e, s.Key)
	return nil
}

func (s *SignerKey) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	switch SignerKeyType(t) {
	case SignerKeyTypeEd25519, SignerKeyTypePreAuthTx, SignerKeyTypeHashX:
	default:
		return unknown("SignerKeyType", t)
	}
	s.Type = SignerKeyType(t)
	s.Key, err = decodeUint256(d)
	return err
}

// Signer pairs a signer key with its weight.
type Signer struct {
	Key    SignerKey
	Weight uint32
}

func (s *Signer) EncodeTo(e *Encoder) error {
	if err := s.Key.EncodeTo(e); err != nil {
		return err
	}
	e.Uint32(s.Weight)
	return nil
}

func (s *Signer) DecodeFrom(d *Decoder) error {
	if err := s.Key.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	s.Weight, err = d.Uint32()
	return err
}

// DecoratedSignature is a signature together with the hint of its key.
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature []byte
}

func (s *DecoratedSignature) EncodeTo(e *Encoder) error {
	e.FixedOpaque(s.Hint[:])
	return e.Opaque(s.Signature, MaxSignatureLen)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) error {
	h, err := d.FixedOpaque(4)
	if err != nil {
		return err
	}
	copy(s.Hint[:], h)
	s.Signature, err = d.Opaque(MaxSignatureLen)
	return err
}
