package operation

import (
	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
)

// CreateAccount funds a new account with a starting balance of lumens.
type CreateAccount struct {
	Destination     string
	StartingBalance string
}

func (CreateAccount) OpType() Type { return TypeCreateAccount }

func (o CreateAccount) toXDR() (xdr.OperationBody, error) {
	dest, err := accountField("destination", o.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	bal, err := amountField("startingBalance", o.StartingBalance, true)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:            xdr.OperationTypeCreateAccount,
		CreateAccountOp: &xdr.CreateAccountOp{Destination: dest, StartingBalance: bal},
	}, nil
}

func createAccountFromXDR(x *xdr.CreateAccountOp) CreateAccount {
	return CreateAccount{
		Destination:     addresscodec.EncodeAccountID(x.Destination),
		StartingBalance: amountString(x.StartingBalance),
	}
}

// Payment sends an amount of one asset to a destination.
type Payment struct {
	Destination string
	Asset       asset.Asset
	Amount      string
}

func (Payment) OpType() Type { return TypePayment }

func (o Payment) toXDR() (xdr.OperationBody, error) {
	dest, err := muxedField("destination", o.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	a, err := assetField("asset", o.Asset)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	amt, err := amountField("amount", o.Amount, false)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:      xdr.OperationTypePayment,
		PaymentOp: &xdr.PaymentOp{Destination: dest, Asset: a, Amount: amt},
	}, nil
}

func paymentFromXDR(x *xdr.PaymentOp) (Payment, error) {
	a, err := assetFromXDR(x.Asset)
	if err != nil {
		return Payment{}, err
	}
	return Payment{
		Destination: addresscodec.EncodeMuxedAccount(x.Destination),
		Asset:       a,
		Amount:      amountString(x.Amount),
	}, nil
}

// PathPaymentStrictReceive delivers exactly DestAmount, spending at most
// SendMax of SendAsset.
type PathPaymentStrictReceive struct {
	SendAsset   asset.Asset
	SendMax     string
	Destination string
	DestAsset   asset.Asset
	DestAmount  string
	Path        []asset.Asset
}

func (PathPaymentStrictReceive) OpType() Type { return TypePathPaymentStrictReceive }

func (o PathPaymentStrictReceive) toXDR() (xdr.OperationBody, error) {
	var (
		op  xdr.PathPaymentStrictReceiveOp
		err error
	)
	if op.SendAsset, err = assetField("sendAsset", o.SendAsset); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.SendMax, err = amountField("sendMax", o.SendMax, false); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.Destination, err = muxedField("destination", o.Destination); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.DestAsset, err = assetField("destAsset", o.DestAsset); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.DestAmount, err = amountField("destAmount", o.DestAmount, false); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.Path, err = pathField(o.Path); err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{Type: xdr.OperationTypePathPaymentStrictReceive, PathPaymentStrictReceiveOp: &op}, nil
}

func pathPaymentStrictReceiveFromXDR(x *xdr.PathPaymentStrictReceiveOp) (PathPaymentStrictReceive, error) {
	send, err := assetFromXDR(x.SendAsset)
	if err != nil {
		return PathPaymentStrictReceive{}, err
	}
	dest, err := assetFromXDR(x.DestAsset)
	if err != nil {
		return PathPaymentStrictReceive{}, err
	}
	path, err := pathFromXDR(x.Path)
	if err != nil {
		return PathPaymentStrictReceive{}, err
	}
	return PathPaymentStrictReceive{
		SendAsset:   send,
		SendMax:     amountString(x.SendMax),
		Destination: addresscodec.EncodeMuxedAccount(x.Destination),
		DestAsset:   dest,
		DestAmount:  amountString(x.DestAmount),
		Path:        path,
	}, nil
}

// PathPaymentStrictSend spends exactly SendAmount, delivering at least
// DestMin of DestAsset.
type PathPaymentStrictSend struct {
	SendAsset   asset.Asset
	SendAmount  string
	Destination string
	DestAsset   asset.Asset
	DestMin     string
	Path        []asset.Asset
}

func (PathPaymentStrictSend) OpType() Type { return TypePathPaymentStrictSend }

func (o PathPaymentStrictSend) toXDR() (xdr.OperationBody, error) {
	var (
		op  xdr.PathPaymentStrictSendOp
		err error
	)
	if op.SendAsset, err = assetField("sendAsset", o.SendAsset); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.SendAmount, err = amountField("sendAmount", o.SendAmount, false); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.Destination, err = muxedField("destination", o.Destination); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.DestAsset, err = assetField("destAsset", o.DestAsset); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.DestMin, err = amountField("destMin", o.DestMin, false); err != nil {
		return xdr.OperationBody{}, err
	}
	if op.Path, err = pathField(o.Path); err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{Type: xdr.OperationTypePathPaymentStrictSend, PathPaymentStrictSendOp: &op}, nil
}

func pathPaymentStrictSendFromXDR(x *xdr.PathPaymentStrictSendOp) (PathPaymentStrictSend, error) {
	send, err := assetFromXDR(x.SendAsset)
	if err != nil {
		return PathPaymentStrictSend{}, err
	}
	dest, err := assetFromXDR(x.DestAsset)
	if err != nil {
		return PathPaymentStrictSend{}, err
	}
	path, err := pathFromXDR(x.Path)
	if err != nil {
		return PathPaymentStrictSend{}, err
	}
	return PathPaymentStrictSend{
		SendAsset:   send,
		SendAmount:  amountString(x.SendAmount),
		Destination: addresscodec.EncodeMuxedAccount(x.Destination),
		DestAsset:   dest,
		DestMin:     amountString(x.DestMin),
		Path:        path,
	}, nil
}

// AccountMerge transfers the source balance to Destination and removes
// the source account.
type AccountMerge struct {
	Destination string
}

func (AccountMerge) OpType() Type { return TypeAccountMerge }

func (o AccountMerge) toXDR() (xdr.OperationBody, error) {
	dest, err := muxedField("destination", o.Destination)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{Type: xdr.OperationTypeAccountMerge, Destination: &dest}, nil
}

// Inflation runs the inflation process.
type Inflation struct{}

func (Inflation) OpType() Type { return TypeInflation }

func (Inflation) toXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{Type: xdr.OperationTypeInflation}, nil
}
