package builders

import (
	"strconv"
	"time"

	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/claimant"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
)

// Claimable creates a claimable balance any of the claimants can take
// unconditionally.
func Claimable(from *Account, a asset.Asset, amount string, claimants ...*Account) *TxBuilder {
	cs := make([]claimant.Claimant, len(claimants))
	for i, c := range claimants {
		cs[i] = mustClaimant(c, claimant.Unconditional())
	}
	return Tx(from, operation.CreateClaimableBalance{Asset: a, Amount: amount, Claimants: cs})
}

// TimeLocked creates a balance claimable by to only before deadline, and
// by from only after it.
func TimeLocked(from, to *Account, a asset.Asset, amount string, deadline time.Time) *TxBuilder {
	before, err := claimant.BeforeAbsoluteTime(strconv.FormatInt(deadline.Unix(), 10))
	if err != nil {
		panic(err)
	}
	after, err := claimant.Not(before)
	if err != nil {
		panic(err)
	}
	return Tx(from, operation.CreateClaimableBalance{
		Asset:  a,
		Amount: amount,
		Claimants: []claimant.Claimant{
			mustClaimant(to, before),
			mustClaimant(from, after),
		},
	})
}

// Claim claims the balance with the given hex id.
func Claim(account *Account, balanceID string) *TxBuilder {
	return Tx(account, operation.ClaimClaimableBalance{BalanceID: balanceID})
}

func mustClaimant(a *Account, p claimant.Predicate) claimant.Claimant {
	c, err := claimant.New(a.Address(), p)
	if err != nil {
		panic(err)
	}
	return c
}
