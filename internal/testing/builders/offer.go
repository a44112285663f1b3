package builders

import (
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
	"github.com/LeJamon/goKurdBase/internal/core/price"
)

// SellOffer creates a new sell offer at a decimal price.
func SellOffer(account *Account, selling, buying asset.Asset, amount, p string) *TxBuilder {
	return Tx(account, operation.ManageSellOffer{
		Selling: selling,
		Buying:  buying,
		Amount:  amount,
		Price:   price.Text(p),
	})
}

// BuyOffer creates a new buy offer at a decimal price.
func BuyOffer(account *Account, selling, buying asset.Asset, buyAmount, p string) *TxBuilder {
	return Tx(account, operation.ManageBuyOffer{
		Selling:   selling,
		Buying:    buying,
		BuyAmount: buyAmount,
		Price:     price.Text(p),
	})
}

// PassiveOffer creates a passive sell offer.
func PassiveOffer(account *Account, selling, buying asset.Asset, amount, p string) *TxBuilder {
	return Tx(account, operation.CreatePassiveSellOffer{
		Selling: selling,
		Buying:  buying,
		Amount:  amount,
		Price:   price.Text(p),
	})
}

// CancelOffer deletes offerID by selling zero at any price.
func CancelOffer(account *Account, selling, buying asset.Asset, offerID string) *TxBuilder {
	return Tx(account, operation.ManageSellOffer{
		Selling: selling,
		Buying:  buying,
		Amount:  "0",
		Price:   price.Rational{N: 1, D: 1},
		OfferID: offerID,
	})
}
