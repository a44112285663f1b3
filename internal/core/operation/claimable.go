package operation

import (
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/claimant"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// CreateClaimableBalance moves Amount of Asset into a balance that the
// claimants may later claim.
type CreateClaimableBalance struct {
	Asset     asset.Asset
	Amount    string
	Claimants []claimant.Claimant
}

func (CreateClaimableBalance) OpType() Type { return TypeCreateClaimableBalance }

func (o CreateClaimableBalance) toXDR() (xdr.OperationBody, error) {
	if o.Asset.IsZero() {
		return xdr.OperationBody{}, kerrors.Validation("asset",
			"must provide an asset for create claimable balance operation")
	}
	a, err := assetField("asset", o.Asset)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amountField("amount", o.Amount, false)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if len(o.Claimants) == 0 {
		return xdr.OperationBody{}, kerrors.Validation("claimants", "must provide at least one claimant")
	}
	if len(o.Claimants) > xdr.MaxClaimants {
		return xdr.OperationBody{}, kerrors.Validation("claimants",
			"must provide at most %d claimants", xdr.MaxClaimants)
	}
	claimants := make([]xdr.Claimant, len(o.Claimants))
	for i, c := range o.Claimants {
		if claimants[i], err = c.ToXDR(); err != nil {
			return xdr.OperationBody{}, err
		}
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeCreateClaimableBalance,
		CreateClaimableBalanceOp: &xdr.CreateClaimableBalanceOp{
			Asset: a, Amount: amt, Claimants: claimants,
		},
	}, nil
}

func createClaimableBalanceFromXDR(x *xdr.CreateClaimableBalanceOp) (CreateClaimableBalance, error) {
	a, err := assetFromXDR(x.Asset)
	if err != nil {
		return CreateClaimableBalance{}, err
	}
	out := CreateClaimableBalance{
		Asset:     a,
		Amount:    amountString(x.Amount),
		Claimants: make([]claimant.Claimant, len(x.Claimants)),
	}
	for i, c := range x.Claimants {
		if out.Claimants[i], err = claimant.FromXDR(c); err != nil {
			return CreateClaimableBalance{}, err
		}
	}
	return out, nil
}

// ClaimClaimableBalance claims a balance by its hex id.
type ClaimClaimableBalance struct {
	BalanceID string
}

func (ClaimClaimableBalance) OpType() Type { return TypeClaimClaimableBalance }

func (o ClaimClaimableBalance) toXDR() (xdr.OperationBody, error) {
	id, err := balanceIDField(o.BalanceID)
	if err != nil {
		return xdr.OperationBody{}, kerrors.Validation("balanceId", "must provide a valid claimable balance Id")
	}
	return xdr.OperationBody{
		Type:                    xdr.OperationTypeClaimClaimableBalance,
		ClaimClaimableBalanceOp: &xdr.ClaimClaimableBalanceOp{BalanceID: id},
	}, nil
}
