package operation

import (
	"strconv"

	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/price"
)

// offerFields is the part shared by the three offer operations.
type offerFields struct {
	selling, buying xdr.Asset
	price           xdr.Price
}

func buildOffer(selling, buying asset.Asset, in price.Input) (offerFields, error) {
	var (
		f   offerFields
		err error
	)
	if f.selling, err = assetField("selling", selling); err != nil {
		return f, err
	}
	if f.buying, err = assetField("buying", buying); err != nil {
		return f, err
	}
	p, err := price.From(in)
	if err != nil {
		return f, err
	}
	f.price = p.ToXDR()
	return f, nil
}

func decodeOffer(selling, buying xdr.Asset, p xdr.Price) (asset.Asset, asset.Asset, price.Rational, error) {
	s, err := assetFromXDR(selling)
	if err != nil {
		return asset.Asset{}, asset.Asset{}, price.Rational{}, err
	}
	b, err := assetFromXDR(buying)
	if err != nil {
		return asset.Asset{}, asset.Asset{}, price.Rational{}, err
	}
	return s, b, price.Rational{N: p.N, D: p.D}, nil
}

// ManageSellOffer creates, updates or deletes an offer to sell Amount of
// Selling for Buying. OfferID "0" or empty creates a new offer; Amount
// "0" deletes an existing one.
type ManageSellOffer struct {
	Selling asset.Asset
	Buying  asset.Asset
	Amount  string
	Price   price.Input
	OfferID string
}

func (ManageSellOffer) OpType() Type { return TypeManageSellOffer }

// ResolvedPrice returns the n/d price the operation will carry.
func (o ManageSellOffer) ResolvedPrice() (price.Price, error) { return price.From(o.Price) }

func (o ManageSellOffer) toXDR() (xdr.OperationBody, error) {
	f, err := buildOffer(o.Selling, o.Buying, o.Price)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amountField("amount", o.Amount, true)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	id, err := offerIDField(o.OfferID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeManageSellOffer,
		ManageSellOfferOp: &xdr.ManageSellOfferOp{
			Selling: f.selling, Buying: f.buying, Amount: amt, Price: f.price, OfferID: id,
		},
	}, nil
}

func manageSellOfferFromXDR(x *xdr.ManageSellOfferOp) (ManageSellOffer, error) {
	s, b, p, err := decodeOffer(x.Selling, x.Buying, x.Price)
	if err != nil {
		return ManageSellOffer{}, err
	}
	return ManageSellOffer{
		Selling: s,
		Buying:  b,
		Amount:  amountString(x.Amount),
		Price:   p,
		OfferID: strconv.FormatInt(x.OfferID, 10),
	}, nil
}

// ManageBuyOffer is ManageSellOffer expressed in the amount bought.
type ManageBuyOffer struct {
	Selling   asset.Asset
	Buying    asset.Asset
	BuyAmount string
	Price     price.Input
	OfferID   string
}

func (ManageBuyOffer) OpType() Type { return TypeManageBuyOffer }

func (o ManageBuyOffer) ResolvedPrice() (price.Price, error) { return price.From(o.Price) }

func (o ManageBuyOffer) toXDR() (xdr.OperationBody, error) {
	f, err := buildOffer(o.Selling, o.Buying, o.Price)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amountField("buyAmount", o.BuyAmount, true)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	id, err := offerIDField(o.OfferID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeManageBuyOffer,
		ManageBuyOfferOp: &xdr.ManageBuyOfferOp{
			Selling: f.selling, Buying: f.buying, BuyAmount: amt, Price: f.price, OfferID: id,
		},
	}, nil
}

func manageBuyOfferFromXDR(x *xdr.ManageBuyOfferOp) (ManageBuyOffer, error) {
	s, b, p, err := decodeOffer(x.Selling, x.Buying, x.Price)
	if err != nil {
		return ManageBuyOffer{}, err
	}
	return ManageBuyOffer{
		Selling:   s,
		Buying:    b,
		BuyAmount: amountString(x.BuyAmount),
		Price:     p,
		OfferID:   strconv.FormatInt(x.OfferID, 10),
	}, nil
}

// CreatePassiveSellOffer creates an offer that does not take offers at
// the same price.
type CreatePassiveSellOffer struct {
	Selling asset.Asset
	Buying  asset.Asset
	Amount  string
	Price   price.Input
}

func (CreatePassiveSellOffer) OpType() Type { return TypeCreatePassiveSellOffer }

func (o CreatePassiveSellOffer) ResolvedPrice() (price.Price, error) { return price.From(o.Price) }

func (o CreatePassiveSellOffer) toXDR() (xdr.OperationBody, error) {
	f, err := buildOffer(o.Selling, o.Buying, o.Price)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amountField("amount", o.Amount, false)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeCreatePassiveSellOffer,
		CreatePassiveSellOfferOp: &xdr.CreatePassiveSellOfferOp{
			Selling: f.selling, Buying: f.buying, Amount: amt, Price: f.price,
		},
	}, nil
}

func createPassiveSellOfferFromXDR(x *xdr.CreatePassiveSellOfferOp) (CreatePassiveSellOffer, error) {
	s, b, p, err := decodeOffer(x.Selling, x.Buying, x.Price)
	if err != nil {
		return CreatePassiveSellOffer{}, err
	}
	return CreatePassiveSellOffer{Selling: s, Buying: b, Amount: amountString(x.Amount), Price: p}, nil
}
