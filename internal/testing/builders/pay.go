package builders

import (
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
)

// Pay builds a native payment of amount from one account to another.
func Pay(from, to *Account, amount string) *TxBuilder {
	return PayAsset(from, to, asset.Native(), amount)
}

// PayAsset builds a payment of an arbitrary asset.
func PayAsset(from, to *Account, a asset.Asset, amount string) *TxBuilder {
	return Tx(from, operation.Payment{Destination: to.Address(), Asset: a, Amount: amount})
}

// CreateAccount funds a new account.
func CreateAccount(from, to *Account, startingBalance string) *TxBuilder {
	return Tx(from, operation.CreateAccount{Destination: to.Address(), StartingBalance: startingBalance})
}

// Merge merges from into to.
func Merge(from, to *Account) *TxBuilder {
	return Tx(from, operation.AccountMerge{Destination: to.Address()})
}
