// Package claimant implements claimable balance claimants and their
// predicate trees.
package claimant

import (
	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// Claimant is an account allowed to claim a balance once its predicate
// holds. Values are immutable.
type Claimant struct {
	destination string
	predicate   Predicate
}

// New returns a claimant for destination. A nil predicate means
// Unconditional.
func New(destination string, p Predicate) (Claimant, error) {
	if !addresscodec.IsValidAccountID(destination) {
		return Claimant{}, kerrors.Validation("destination", "Destination is invalid")
	}
	if p == nil {
		p = Unconditional()
	}
	return Claimant{destination: destination, predicate: p}, nil
}

func (c Claimant) Destination() string { return c.destination }

func (c Claimant) Predicate() Predicate { return c.predicate }

// ToXDR returns the version 0 wire claimant.
func (c Claimant) ToXDR() (xdr.Claimant, error) {
	dest, err := addresscodec.DecodeAccountID("destination", c.destination)
	if err != nil {
		return xdr.Claimant{}, err
	}
	p := c.predicate
	if p == nil {
		p = Unconditional()
	}
	return xdr.Claimant{Destination: dest, Predicate: p.toXDR()}, nil
}

// FromXDR rebuilds a Claimant from its wire form.
func FromXDR(x xdr.Claimant) (Claimant, error) {
	p, err := PredicateFromXDR(x.Predicate)
	if err != nil {
		return Claimant{}, err
	}
	return Claimant{destination: addresscodec.EncodeAccountID(x.Destination), predicate: p}, nil
}
