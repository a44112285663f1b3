package builders

import (
	"crypto/sha256"
	"strconv"

	"github.com/LeJamon/goKurdBase/internal/core/account"
	"github.com/LeJamon/goKurdBase/internal/keypair"
)

// Account is a test account with a deterministic key and a local
// sequence number. It implements account.SequenceSource.
type Account struct {
	Name     string
	Keypair  *keypair.Keypair
	Sequence int64
}

var _ account.SequenceSource = (*Account)(nil)

// NewAccount derives the account's seed from name, so the same name
// always yields the same address.
func NewAccount(name string) *Account {
	seed := sha256.Sum256([]byte(name))
	kp, err := keypair.FromRawSeed(seed[:])
	if err != nil {
		panic(err)
	}
	return &Account{Name: name, Keypair: kp}
}

// NewAccountWithSeq creates a named account at the given sequence number.
func NewAccountWithSeq(name string, sequence int64) *Account {
	a := NewAccount(name)
	a.Sequence = sequence
	return a
}

// Address returns the account's G address.
func (a *Account) Address() string {
	return a.Keypair.PublicKey()
}

func (a *Account) AccountID() string { return a.Address() }

func (a *Account) SequenceNumber() string {
	return strconv.FormatInt(a.Sequence, 10)
}

func (a *Account) IncrementSequenceNumber() error {
	a.Sequence++
	return nil
}

// Commonly used test accounts. Each call returns a fresh account at
// sequence 0.
func Alice() *Account   { return NewAccount("alice") }
func Bob() *Account     { return NewAccount("bob") }
func Carol() *Account   { return NewAccount("carol") }
func Gateway() *Account { return NewAccount("gateway") }
