package builders

import (
	"github.com/LeJamon/goKurdBase/internal/core/asset"
)

// Native is the native asset.
func Native() asset.Asset { return asset.Native() }

// Credit returns code issued by issuer.
func Credit(code string, issuer *Account) asset.Asset {
	return asset.MustNew(code, issuer.Address())
}

func USD(issuer *Account) asset.Asset { return Credit("USD", issuer) }
func EUR(issuer *Account) asset.Asset { return Credit("EUR", issuer) }
