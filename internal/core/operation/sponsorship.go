package operation

import (
	"strconv"

	addresscodec "github.com/LeJamon/goKurdBase/internal/codec/address-codec"
	"github.com/LeJamon/goKurdBase/internal/codec/xdr"
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

// BeginSponsoringFutureReserves makes the source pay the reserves of
// entries SponsoredID creates until the matching End operation.
type BeginSponsoringFutureReserves struct {
	SponsoredID string
}

func (BeginSponsoringFutureReserves) OpType() Type { return TypeBeginSponsoringFutureReserves }

func (o BeginSponsoringFutureReserves) toXDR() (xdr.OperationBody, error) {
	id, err := accountField("sponsoredId", o.SponsoredID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type:                            xdr.OperationTypeBeginSponsoringFutureReserves,
		BeginSponsoringFutureReservesOp: &xdr.BeginSponsoringFutureReservesOp{SponsoredID: id},
	}, nil
}

type EndSponsoringFutureReserves struct{}

func (EndSponsoringFutureReserves) OpType() Type { return TypeEndSponsoringFutureReserves }

func (EndSponsoringFutureReserves) toXDR() (xdr.OperationBody, error) {
	return xdr.OperationBody{Type: xdr.OperationTypeEndSponsoringFutureReserves}, nil
}

func revokeLedgerKey(k xdr.LedgerKey) xdr.OperationBody {
	return xdr.OperationBody{
		Type: xdr.OperationTypeRevokeSponsorship,
		RevokeSponsorshipOp: &xdr.RevokeSponsorshipOp{
			Type:      xdr.RevokeSponsorshipLedgerEntry,
			LedgerKey: &k,
		},
	}
}

// RevokeAccountSponsorship revokes the sponsorship of an account entry.
type RevokeAccountSponsorship struct {
	Account string
}

func (RevokeAccountSponsorship) OpType() Type { return TypeRevokeAccountSponsorship }

func (o RevokeAccountSponsorship) toXDR() (xdr.OperationBody, error) {
	id, err := accountField("account", o.Account)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return revokeLedgerKey(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountID: id},
	}), nil
}

// RevokeTrustlineSponsorship revokes the sponsorship of a trustline.
type RevokeTrustlineSponsorship struct {
	Account string
	Asset   asset.Asset
}

func (RevokeTrustlineSponsorship) OpType() Type { return TypeRevokeTrustlineSponsorship }

func (o RevokeTrustlineSponsorship) toXDR() (xdr.OperationBody, error) {
	id, err := accountField("account", o.Account)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	a, err := assetField("asset", o.Asset)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return revokeLedgerKey(xdr.LedgerKey{
		Type:      xdr.LedgerEntryTypeTrustline,
		TrustLine: &xdr.LedgerKeyTrustLine{AccountID: id, Asset: a},
	}), nil
}

// RevokeOfferSponsorship revokes the sponsorship of an offer.
type RevokeOfferSponsorship struct {
	Seller  string
	OfferID string
}

func (RevokeOfferSponsorship) OpType() Type { return TypeRevokeOfferSponsorship }

func (o RevokeOfferSponsorship) toXDR() (xdr.OperationBody, error) {
	seller, err := accountField("seller", o.Seller)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if o.OfferID == "" {
		return xdr.OperationBody{}, kerrors.Invalid("offerId")
	}
	id, err := offerIDField(o.OfferID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return revokeLedgerKey(xdr.LedgerKey{
		Type:  xdr.LedgerEntryTypeOffer,
		Offer: &xdr.LedgerKeyOffer{SellerID: seller, OfferID: id},
	}), nil
}

// RevokeDataSponsorship revokes the sponsorship of a data entry.
type RevokeDataSponsorship struct {
	Account string
	Name    string
}

func (RevokeDataSponsorship) OpType() Type { return TypeRevokeDataSponsorship }

func (o RevokeDataSponsorship) toXDR() (xdr.OperationBody, error) {
	id, err := accountField("account", o.Account)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	if err := dataNameField("name", o.Name); err != nil {
		return xdr.OperationBody{}, err
	}
	return revokeLedgerKey(xdr.LedgerKey{
		Type: xdr.LedgerEntryTypeData,
		Data: &xdr.LedgerKeyData{AccountID: id, DataName: o.Name},
	}), nil
}

// RevokeClaimableBalanceSponsorship revokes the sponsorship of a
// claimable balance.
type RevokeClaimableBalanceSponsorship struct {
	BalanceID string
}

func (RevokeClaimableBalanceSponsorship) OpType() Type { return TypeRevokeClaimableBalanceSponsorship }

func (o RevokeClaimableBalanceSponsorship) toXDR() (xdr.OperationBody, error) {
	id, err := balanceIDField(o.BalanceID)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return revokeLedgerKey(xdr.LedgerKey{
		Type:             xdr.LedgerEntryTypeClaimableBalance,
		ClaimableBalance: &xdr.LedgerKeyClaimableBalance{BalanceID: id},
	}), nil
}

// RevokeSignerSponsorship revokes the sponsorship of one signer of
// Account.
type RevokeSignerSponsorship struct {
	Account string
	Signer  SignerKey
}

func (RevokeSignerSponsorship) OpType() Type { return TypeRevokeSignerSponsorship }

func (o RevokeSignerSponsorship) toXDR() (xdr.OperationBody, error) {
	id, err := accountField("account", o.Account)
	if err != nil {
		return xdr.OperationBody{}, err
	}
	key, err := o.Signer.toXDR()
	if err != nil {
		return xdr.OperationBody{}, err
	}
	return xdr.OperationBody{
		Type: xdr.OperationTypeRevokeSponsorship,
		RevokeSponsorshipOp: &xdr.RevokeSponsorshipOp{
			Type:   xdr.RevokeSponsorshipSigner,
			Signer: &xdr.RevokeSponsorshipOpSigner{AccountID: id, SignerKey: key},
		},
	}, nil
}

func revokeSponsorshipFromXDR(x *xdr.RevokeSponsorshipOp) (Body, error) {
	switch {
	case x.Type == xdr.RevokeSponsorshipSigner && x.Signer != nil:
		return RevokeSignerSponsorship{
			Account: addresscodec.EncodeAccountID(x.Signer.AccountID),
			Signer:  signerKeyFromXDR(x.Signer.SignerKey),
		}, nil
	case x.Type == xdr.RevokeSponsorshipLedgerEntry && x.LedgerKey != nil:
		return revokeLedgerKeyFromXDR(x.LedgerKey)
	}
	return nil, kerrors.Decode(xdr.ErrUnknownDiscriminant, "revoke sponsorship type %d", x.Type)
}

func revokeLedgerKeyFromXDR(k *xdr.LedgerKey) (Body, error) {
	switch {
	case k.Type == xdr.LedgerEntryTypeAccount && k.Account != nil:
		return RevokeAccountSponsorship{Account: addresscodec.EncodeAccountID(k.Account.AccountID)}, nil
	case k.Type == xdr.LedgerEntryTypeTrustline && k.TrustLine != nil:
		a, err := assetFromXDR(k.TrustLine.Asset)
		if err != nil {
			return nil, err
		}
		return RevokeTrustlineSponsorship{Account: addresscodec.EncodeAccountID(k.TrustLine.AccountID), Asset: a}, nil
	case k.Type == xdr.LedgerEntryTypeOffer && k.Offer != nil:
		return RevokeOfferSponsorship{
			Seller:  addresscodec.EncodeAccountID(k.Offer.SellerID),
			OfferID: strconv.FormatInt(k.Offer.OfferID, 10),
		}, nil
	case k.Type == xdr.LedgerEntryTypeData && k.Data != nil:
		return RevokeDataSponsorship{Account: addresscodec.EncodeAccountID(k.Data.AccountID), Name: k.Data.DataName}, nil
	case k.Type == xdr.LedgerEntryTypeClaimableBalance && k.ClaimableBalance != nil:
		return RevokeClaimableBalanceSponsorship{BalanceID: encodeBalanceID(k.ClaimableBalance.BalanceID)}, nil
	}
	return nil, kerrors.Decode(xdr.ErrUnknownDiscriminant, "ledger key type %d", k.Type)
}
