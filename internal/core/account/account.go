// Package account tracks a source account and its next sequence number.
package account

import (
	"math"
	"strconv"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// SequenceSource hands out sequence numbers to the transaction builder.
// Account implements it; so does the persistent sequence book.
type SequenceSource interface {
	AccountID() string
	SequenceNumber() string
	IncrementSequenceNumber() error
}

// Account is a source account. It does no locking: callers sharing one
// Account across goroutines must serialize builds.
type Account struct {
	id       string
	sequence int64
}

// New validates accountID and sequence, a decimal int64 string.
func New(accountID, sequence string) (*Account, error) {
	if !addresscodec.IsValidAccountID(accountID) {
		return nil, kerrors.Invalid("accountId")
	}
	seq, err := ParseSequence(sequence)
	if err != nil {
		return nil, err
	}
	return &Account{id: accountID, sequence: seq}, nil
}

// ParseSequence parses a decimal int64 sequence number.
func ParseSequence(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, kerrors.Validation("sequence", "sequence must be of type string and represent a 64-bit integer")
	}
	return v, nil
}

func (a *Account) AccountID() string { return a.id }

func (a *Account) SequenceNumber() string {
	return strconv.FormatInt(a.sequence, 10)
}

// IncrementSequenceNumber advances the sequence by one.
func (a *Account) IncrementSequenceNumber() error {
	if a.sequence == math.MaxInt64 {
		return kerrors.Validation("sequence", "sequence number overflow")
	}
	a.sequence++
	return nil
}
