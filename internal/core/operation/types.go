package operation

import "github.com/LeJamon/goKurdBase/internal/codec/xdr"

// Type is the logical kind of an operation. The six revoke kinds share
// one wire code.
type Type int

const (
	TypeCreateAccount Type = iota
	TypePayment
	TypePathPaymentStrictReceive
	TypeManageSellOffer
	TypeCreatePassiveSellOffer
	TypeSetOptions
	TypeChangeTrust
	TypeAllowTrust
	TypeAccountMerge
	TypeInflation
	TypeManageData
	TypeBumpSequence
	TypeManageBuyOffer
	TypePathPaymentStrictSend
	TypeCreateClaimableBalance
	TypeClaimClaimableBalance
	TypeBeginSponsoringFutureReserves
	TypeEndSponsoringFutureReserves
	TypeRevokeAccountSponsorship
	TypeRevokeTrustlineSponsorship
	TypeRevokeOfferSponsorship
	TypeRevokeDataSponsorship
	TypeRevokeClaimableBalanceSponsorship
	TypeRevokeSignerSponsorship
)

var typeNames = map[Type]string{
	TypeCreateAccount:                     "createAccount",
	TypePayment:                           "payment",
	TypePathPaymentStrictReceive:          "pathPaymentStrictReceive",
	TypeManageSellOffer:                   "manageSellOffer",
	TypeCreatePassiveSellOffer:            "createPassiveSellOffer",
	TypeSetOptions:                        "setOptions",
	TypeChangeTrust:                       "changeTrust",
	TypeAllowTrust:                        "allowTrust",
	TypeAccountMerge:                      "accountMerge",
	TypeInflation:                         "inflation",
	TypeManageData:                        "manageData",
	TypeBumpSequence:                      "bumpSequence",
	TypeManageBuyOffer:                    "manageBuyOffer",
	TypePathPaymentStrictSend:             "pathPaymentStrictSend",
	TypeCreateClaimableBalance:            "createClaimableBalance",
	TypeClaimClaimableBalance:             "claimClaimableBalance",
	TypeBeginSponsoringFutureReserves:     "beginSponsoringFutureReserves",
	TypeEndSponsoringFutureReserves:       "endSponsoringFutureReserves",
	TypeRevokeAccountSponsorship:          "revokeAccountSponsorship",
	TypeRevokeTrustlineSponsorship:        "revokeTrustlineSponsorship",
	TypeRevokeOfferSponsorship:            "revokeOfferSponsorship",
	TypeRevokeDataSponsorship:             "revokeDataSponsorship",
	TypeRevokeClaimableBalanceSponsorship: "revokeClaimableBalanceSponsorship",
	TypeRevokeSignerSponsorship:           "revokeSignerSponsorship",
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

// String returns the logical operation name, e.g. "createAccount".
func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// TypeFromName resolves a logical operation name.
func TypeFromName(name string) (Type, bool) {
	t, ok := typeByName[name]
	return t, ok
}

// WireType returns the wire operation code of t.
func (t Type) WireType() xdr.OperationType {
	if t >= TypeRevokeAccountSponsorship {
		return xdr.OperationTypeRevokeSponsorship
	}
	return xdr.OperationType(t)
}

// Threshold is the signature weight category an operation requires.
type Threshold string

const (
	ThresholdLow    Threshold = "low"
	ThresholdMedium Threshold = "medium"
	ThresholdHigh   Threshold = "high"
)
