package builders

import (
	"github.com/LeJamon/goKurdBase/internal/core/asset"
	"github.com/LeJamon/goKurdBase/internal/core/operation"
)

// TrustLine opens or updates a trust line. An empty limit trusts the
// maximum amount.
func TrustLine(account *Account, a asset.Asset, limit string) *TxBuilder {
	return Tx(account, operation.ChangeTrust{Asset: a, Limit: limit})
}

// TrustUSD trusts issuer's USD up to limit.
func TrustUSD(account, issuer *Account, limit string) *TxBuilder {
	return TrustLine(account, USD(issuer), limit)
}

// Authorize sets the trustor's authorization flag on the issuer's asset code.
func Authorize(issuer, trustor *Account, code string, flag uint32) *TxBuilder {
	return Tx(issuer, operation.AllowTrust{Trustor: trustor.Address(), AssetCode: code, Authorize: flag})
}
