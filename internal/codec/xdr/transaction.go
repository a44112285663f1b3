package xdr

// MemoType discriminates Memo.
type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

const MaxMemoTextLen = 28

type Memo struct {
	Type    MemoType
	Text    *string
	ID      *uint64
	Hash    *Hash
	RetHash *Hash
}

func (m *Memo) EncodeTo(e *Encoder) error {
	e.Int32(int32(m.Type))
	switch {
	case m.Type == MemoTypeNone:
	case m.Type == MemoTypeText && m.Text != nil:
		return e.String(*m.Text, MaxMemoTextLen)
	case m.Type == MemoTypeID && m.ID != nil:
		e.Uint64(*m.ID)
	case m.Type == MemoTypeHash && m.Hash != nil:
		encodeUint256(e, *m.Hash)
	case m.Type == MemoTypeReturn && m.RetHash != nil:
		encodeUint256(e, *m.RetHash)
	default:
		return unknown("MemoType", int32(m.Type))
	}
	return nil
}

func (m *Memo) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*m = Memo{Type: MemoType(t)}
	switch m.Type {
	case MemoTypeNone:
	case MemoTypeText:
		s, err := d.String(MaxMemoTextLen)
		if err != nil {
			return err
		}
		m.Text = &s
	case MemoTypeID:
		v, err := d.Uint64()
		if err != nil {
			return err
		}
		m.ID = &v
	case MemoTypeHash, MemoTypeReturn:
		v, err := decodeUint256(d)
		if err != nil {
			return err
		}
		h := Hash(v)
		if m.Type == MemoTypeHash {
			m.Hash = &h
		} else {
			m.RetHash = &h
		}
	default:
		return unknown("MemoType", t)
	}
	return nil
}

// TimeBounds limits the close times at which a transaction is valid.
// MaxTime 0 means no upper bound.
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

func (tb *TimeBounds) EncodeTo(e *Encoder) error {
	e.Uint64(tb.MinTime)
	e.Uint64(tb.MaxTime)
	return nil
}

func (tb *TimeBounds) DecodeFrom(d *Decoder) error {
	var err error
	if tb.MinTime, err = d.Uint64(); err != nil {
		return err
	}
	tb.MaxTime, err = d.Uint64()
	return err
}

const (
	MaxOperations = 100
	MaxSignatures = 20
)

// txBody holds the fields shared by TransactionV0 and Transaction after
// the source account.
type txBody struct {
	Fee        uint32
	SeqNum     int64
	TimeBounds *TimeBounds
	Memo       Memo
	Operations []Operation
}

func (t *txBody) encode(e *Encoder) error {
	e.Uint32(t.Fee)
	e.Int64(t.SeqNum)
	e.Optional(t.TimeBounds != nil)
	if t.TimeBounds != nil {
		if err := t.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := t.Memo.EncodeTo(e); err != nil {
		return err
	}
	if err := e.ArrayLen(len(t.Operations), MaxOperations); err != nil {
		return err
	}
	for i := range t.Operations {
		if err := t.Operations[i].EncodeTo(e); err != nil {
			return err
		}
	}
	// ext: only version 0 is defined
	e.Int32(0)
	return nil
}

func (t *txBody) decode(d *Decoder) error {
	var err error
	if t.Fee, err = d.Uint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.Int64(); err != nil {
		return err
	}
	present, err := d.Optional()
	if err != nil {
		return err
	}
	if present {
		var tb TimeBounds
		if err := tb.DecodeFrom(d); err != nil {
			return err
		}
		t.TimeBounds = &tb
	}
	if err := t.Memo.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.ArrayLen(MaxOperations)
	if err != nil {
		return err
	}
	t.Operations = make([]Operation, n)
	for i := range t.Operations {
		if err := t.Operations[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return decodeExt(d)
}

func decodeExt(d *Decoder) error {
	v, err := d.Int32()
	if err != nil {
		return err
	}
	if v != 0 {
		return ErrUnsupportedExtension
	}
	return nil
}

// TransactionV0 is the legacy transaction layout with a raw ed25519 source.
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  uint32
	SeqNum               int64
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
}

func (t *TransactionV0) body() *txBody {
	return &txBody{Fee: t.Fee, SeqNum: t.SeqNum, TimeBounds: t.TimeBounds, Memo: t.Memo, Operations: t.Operations}
}

func (t *TransactionV0) EncodeTo(e *Encoder) error {
	encodeUint256(e, t.SourceAccountEd25519)
	return t.body().encode(e)
}

func (t *TransactionV0) DecodeFrom(d *Decoder) error {
	var err error
	if t.SourceAccountEd25519, err = decodeUint256(d); err != nil {
		return err
	}
	var b txBody
	if err := b.decode(d); err != nil {
		return err
	}
	t.Fee, t.SeqNum, t.TimeBounds, t.Memo, t.Operations = b.Fee, b.SeqNum, b.TimeBounds, b.Memo, b.Operations
	return nil
}

// ToV1 converts the legacy layout into an equivalent Transaction.
func (t *TransactionV0) ToV1() Transaction {
	return Transaction{
		SourceAccount: NewMuxedAccount(t.SourceAccountEd25519),
		Fee:           t.Fee,
		SeqNum:        t.SeqNum,
		TimeBounds:    t.TimeBounds,
		Memo:          t.Memo,
		Operations:    t.Operations,
	}
}

// Transaction is the current transaction layout.
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	TimeBounds    *TimeBounds
	Memo          Memo
	Operations    []Operation
}

func (t *Transaction) body() *txBody {
	return &txBody{Fee: t.Fee, SeqNum: t.SeqNum, TimeBounds: t.TimeBounds, Memo: t.Memo, Operations: t.Operations}
}

func (t *Transaction) EncodeTo(e *Encoder) error {
	if err := t.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	return t.body().encode(e)
}

func (t *Transaction) DecodeFrom(d *Decoder) error {
	if err := t.SourceAccount.DecodeFrom(d); err != nil {
		return err
	}
	var b txBody
	if err := b.decode(d); err != nil {
		return err
	}
	t.Fee, t.SeqNum, t.TimeBounds, t.Memo, t.Operations = b.Fee, b.SeqNum, b.TimeBounds, b.Memo, b.Operations
	return nil
}

func encodeSignatures(e *Encoder, sigs []DecoratedSignature) error {
	if err := e.ArrayLen(len(sigs), MaxSignatures); err != nil {
		return err
	}
	for i := range sigs {
		if err := sigs[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeSignatures(d *Decoder) ([]DecoratedSignature, error) {
	n, err := d.ArrayLen(MaxSignatures)
	if err != nil || n == 0 {
		return nil, err
	}
	sigs := make([]DecoratedSignature, n)
	for i := range sigs {
		if err := sigs[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return sigs, nil
}

type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

func (v *TransactionV0Envelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, v.Signatures)
}

func (v *TransactionV0Envelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	v.Signatures, err = decodeSignatures(d)
	return err
}

type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (v *TransactionV1Envelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, v.Signatures)
}

func (v *TransactionV1Envelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	v.Signatures, err = decodeSignatures(d)
	return err
}

// EnvelopeType is the domain separator for signed payloads.
type EnvelopeType int32

const (
	EnvelopeTypeTxV0      EnvelopeType = 0
	EnvelopeTypeSCP       EnvelopeType = 1
	EnvelopeTypeTx        EnvelopeType = 2
	EnvelopeTypeAuth      EnvelopeType = 3
	EnvelopeTypeSCPValue  EnvelopeType = 4
	EnvelopeTypeTxFeeBump EnvelopeType = 5
)

func (t EnvelopeType) String() string {
	switch t {
	case EnvelopeTypeTxV0:
		return "envelopeTypeTxV0"
	case EnvelopeTypeSCP:
		return "envelopeTypeScp"
	case EnvelopeTypeTx:
		return "envelopeTypeTx"
	case EnvelopeTypeAuth:
		return "envelopeTypeAuth"
	case EnvelopeTypeSCPValue:
		return "envelopeTypeScpvalue"
	case EnvelopeTypeTxFeeBump:
		return "envelopeTypeTxFeeBump"
	default:
		return "envelopeTypeUnknown"
	}
}

// FeeBumpTransaction wraps a signed v1 envelope with a new fee source.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   TransactionV1Envelope
}

func (t *FeeBumpTransaction) EncodeTo(e *Encoder) error {
	if err := t.FeeSource.EncodeTo(e); err != nil {
		return err
	}
	e.Int64(t.Fee)
	e.Int32(int32(EnvelopeTypeTx))
	if err := t.InnerTx.EncodeTo(e); err != nil {
		return err
	}
	e.Int32(0)
	return nil
}

func (t *FeeBumpTransaction) DecodeFrom(d *Decoder) error {
	if err := t.FeeSource.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if t.Fee, err = d.Int64(); err != nil {
		return err
	}
	inner, err := d.Int32()
	if err != nil {
		return err
	}
	if EnvelopeType(inner) != EnvelopeTypeTx {
		return unknown("fee bump inner EnvelopeType", inner)
	}
	if err := t.InnerTx.DecodeFrom(d); err != nil {
		return err
	}
	return decodeExt(d)
}

type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

func (v *FeeBumpTransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, v.Signatures)
}

func (v *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	v.Signatures, err = decodeSignatures(d)
	return err
}

// TransactionEnvelope is the signed unit submitted to the network.
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

func (env *TransactionEnvelope) EncodeTo(e *Encoder) error {
	e.Int32(int32(env.Type))
	switch {
	case env.Type == EnvelopeTypeTxV0 && env.V0 != nil:
		return env.V0.EncodeTo(e)
	case env.Type == EnvelopeTypeTx && env.V1 != nil:
		return env.V1.EncodeTo(e)
	case env.Type == EnvelopeTypeTxFeeBump && env.FeeBump != nil:
		return env.FeeBump.EncodeTo(e)
	default:
		return unknown("TransactionEnvelope type", int32(env.Type))
	}
}

func (env *TransactionEnvelope) DecodeFrom(d *Decoder) error {
	t, err := d.Int32()
	if err != nil {
		return err
	}
	*env = TransactionEnvelope{Type: EnvelopeType(t)}
	switch env.Type {
	case EnvelopeTypeTxV0:
		var v TransactionV0Envelope
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		env.V0 = &v
	case EnvelopeTypeTx:
		var v TransactionV1Envelope
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		env.V1 = &v
	case EnvelopeTypeTxFeeBump:
		var v FeeBumpTransactionEnvelope
		if err := v.DecodeFrom(d); err != nil {
			return err
		}
		env.FeeBump = &v
	default:
		return unknown("TransactionEnvelope type", t)
	}
	return nil
}

// Signatures returns the signature list of whichever arm is set.
func (env *TransactionEnvelope) Signatures() []DecoratedSignature {
	switch {
	case env.V0 != nil:
		return env.V0.Signatures
	case env.V1 != nil:
		return env.V1.Signatures
	case env.FeeBump != nil:
		return env.FeeBump.Signatures
	}
	return nil
}

// TransactionSignaturePayload is the value hashed to produce a
// transaction's signing hash.
type TransactionSignaturePayload struct {
	NetworkID Hash
	Type      EnvelopeType
	Tx        *Transaction
	FeeBump   *FeeBumpTransaction
}

func (p *TransactionSignaturePayload) EncodeTo(e *Encoder) error {
	encodeUint256(e, p.NetworkID)
	e.Int32(int32(p.Type))
	switch {
	case p.Type == EnvelopeTypeTx && p.Tx != nil:
		return p.Tx.EncodeTo(e)
	case p.Type == EnvelopeTypeTxFeeBump && p.FeeBump != nil:
		return p.FeeBump.EncodeTo(e)
	default:
		return unknown("TransactionSignaturePayload type", int32(p.Type))
	}
}
