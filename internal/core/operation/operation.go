// Package operation builds, validates and parses transaction operations.
// Each kind is a plain struct implementing Body; New validates it and
// attaches an optional source account.
package operation

import (
	"errors"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/amount"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

var ErrUnknownOperationType = errors.New("unknown operation type")

// Body is the payload of one operation kind.
type Body interface {
	// OpType returns the logical kind.
	OpType() Type
	toXDR() (xdr.OperationBody, error)
}

// Operation is a validated body with an optional source account.
type Operation struct {
	// Source overrides the transaction source for this operation. Empty
	// means the transaction source.
	Source string
	Body   Body
}

// Option configures New.
type Option func(*Operation)

// WithSource sets the operation-level source account.
func WithSource(address string) Option {
	return func(o *Operation) {
		o.Source = address
	}
}

// New validates body and returns the operation.
func New(body Body, opts ...Option) (Operation, error) {
	op := Operation{Body: body}
	for _, opt := range opts {
		opt(&op)
	}
	if _, err := op.ToXDR(); err != nil {
		return Operation{}, err
	}
	return op, nil
}

// MustNew is New for operations known to be valid.
func MustNew(body Body, opts ...Option) Operation {
	op, err := New(body, opts...)
	if err != nil {
		panic(err)
	}
	return op
}

// Validate checks body without building an Operation.
func Validate(body Body) error {
	if body == nil {
		return kerrors.Validation("operation", "operation body is required")
	}
	_, err := body.toXDR()
	return err
}

// Type returns the logical kind of the body.
func (o Operation) Type() Type {
	if o.Body == nil {
		return -1
	}
	return o.Body.OpType()
}

// ToXDR returns the wire operation.
func (o Operation) ToXDR() (xdr.Operation, error) {
	if o.Body == nil {
		return xdr.Operation{}, kerrors.Validation("operation", "operation body is required")
	}
	var out xdr.Operation
	if o.Source != "" {
		src, err := addresscodec.DecodeMuxedAccount("source", o.Source, false)
		if err != nil {
			return xdr.Operation{}, kerrors.Validation("source", "Source address is invalid")
		}
		out.SourceAccount = &src
	}
	body, err := o.Body.toXDR()
	if err != nil {
		return xdr.Operation{}, err
	}
	out.Body = body
	return out, nil
}

// FromXDR parses a wire operation. Amounts come back as seven-digit
// decimal strings and muxed accounts as their G address.
func FromXDR(x xdr.Operation) (Operation, error) {
	var op Operation
	if x.SourceAccount != nil {
		op.Source = addresscodec.EncodeMuxedAccount(*x.SourceAccount)
	}
	body, err := bodyFromXDR(x.Body)
	if err != nil {
		return Operation{}, err
	}
	op.Body = body
	return op, nil
}

// IsValidAmount reports whether s is a usable amount string.
func IsValidAmount(s string, allowZero bool) bool {
	return amount.IsValid(s, allowZero)
}

// Threshold returns the weight category the operation's source must meet.
func (o Operation) Threshold() Threshold {
	switch b := o.Body.(type) {
	case AllowTrust, *AllowTrust, BumpSequence, *BumpSequence,
		ClaimClaimableBalance, *ClaimClaimableBalance, Inflation, *Inflation:
		return ThresholdLow
	case AccountMerge, *AccountMerge:
		return ThresholdHigh
	case SetOptions:
		return b.threshold()
	case *SetOptions:
		return b.threshold()
	}
	return ThresholdMedium
}

func bodyFromXDR(b xdr.OperationBody) (Body, error) {
	switch b.Type {
	case xdr.OperationTypeCreateAccount:
		if b.CreateAccountOp != nil {
			return createAccountFromXDR(b.CreateAccountOp), nil
		}
	case xdr.OperationTypePayment:
		if b.PaymentOp != nil {
			return paymentFromXDR(b.PaymentOp)
		}
	case xdr.OperationTypePathPaymentStrictReceive:
		if b.PathPaymentStrictReceiveOp != nil {
			return pathPaymentStrictReceiveFromXDR(b.PathPaymentStrictReceiveOp)
		}
	case xdr.OperationTypeManageSellOffer:
		if b.ManageSellOfferOp != nil {
			return manageSellOfferFromXDR(b.ManageSellOfferOp)
		}
	case xdr.OperationTypeCreatePassiveSellOffer:
		if b.CreatePassiveSellOfferOp != nil {
			return createPassiveSellOfferFromXDR(b.CreatePassiveSellOfferOp)
		}
	case xdr.OperationTypeSetOptions:
		if b.SetOptionsOp != nil {
			return setOptionsFromXDR(b.SetOptionsOp), nil
		}
	case xdr.OperationTypeChangeTrust:
		if b.ChangeTrustOp != nil {
			return changeTrustFromXDR(b.ChangeTrustOp)
		}
	case xdr.OperationTypeAllowTrust:
		if b.AllowTrustOp != nil {
			return allowTrustFromXDR(b.AllowTrustOp), nil
		}
	case xdr.OperationTypeAccountMerge:
		if b.Destination != nil {
			return AccountMerge{Destination: addresscodec.EncodeMuxedAccount(*b.Destination)}, nil
		}
	case xdr.OperationTypeInflation:
		return Inflation{}, nil
	case xdr.OperationTypeManageData:
		if b.ManageDataOp != nil {
			return manageDataFromXDR(b.ManageDataOp), nil
		}
	case xdr.OperationTypeBumpSequence:
		if b.BumpSequenceOp != nil {
			return bumpSequenceFromXDR(b.BumpSequenceOp), nil
		}
	case xdr.OperationTypeManageBuyOffer:
		if b.ManageBuyOfferOp != nil {
			return manageBuyOfferFromXDR(b.ManageBuyOfferOp)
		}
	case xdr.OperationTypePathPaymentStrictSend:
		if b.PathPaymentStrictSendOp != nil {
			return pathPaymentStrictSendFromXDR(b.PathPaymentStrictSendOp)
		}
	case xdr.OperationTypeCreateClaimableBalance:
		if b.CreateClaimableBalanceOp != nil {
			return createClaimableBalanceFromXDR(b.CreateClaimableBalanceOp)
		}
	case xdr.OperationTypeClaimClaimableBalance:
		if b.ClaimClaimableBalanceOp != nil {
			return ClaimClaimableBalance{BalanceID: encodeBalanceID(b.ClaimClaimableBalanceOp.BalanceID)}, nil
		}
	case xdr.OperationTypeBeginSponsoringFutureReserves:
		if b.BeginSponsoringFutureReservesOp != nil {
			return BeginSponsoringFutureReserves{
				SponsoredID: addresscodec.EncodeAccountID(b.BeginSponsoringFutureReservesOp.SponsoredID),
			}, nil
		}
	case xdr.OperationTypeEndSponsoringFutureReserves:
		return EndSponsoringFutureReserves{}, nil
	case xdr.OperationTypeRevokeSponsorship:
		if b.RevokeSponsorshipOp != nil {
			return revokeSponsorshipFromXDR(b.RevokeSponsorshipOp)
		}
	default:
		return nil, kerrors.Decode(ErrUnknownOperationType, "operation type %d", b.Type)
	}
	return nil, kerrors.Decode(xdr.ErrUnknownDiscriminant, "%s body missing", b.Type)
}
