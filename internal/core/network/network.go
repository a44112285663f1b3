// Package network names the known networks and derives their ids.
package network

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/goKurdBase/internal/crypto/common"
	"github.com/LeJamon/goKurdBase/internal/kerrors"
)

const (
	PublicPassphrase     = "Public Global Stellar Network ; September 2015"
	TestnetPassphrase    = "Test SDF Network ; September 2015"
	StandalonePassphrase = "Standalone Network ; February 2017"
)

// ID is SHA-256 of a network passphrase.
type ID [32]byte

const idCacheSize = 16

// Passphrases are few and hashed once per signature, so ids are memoized.
var ids = mustCache()

func mustCache() *lru.Cache[string, ID] {
	c, err := lru.New[string, ID](idCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// IDFor returns the network id for passphrase.
func IDFor(passphrase string) (ID, error) {
	if passphrase == "" {
		return ID{}, kerrors.Validation("networkPassphrase", "networkPassphrase is required")
	}
	if id, ok := ids.Get(passphrase); ok {
		return id, nil
	}
	id := ID(common.Sha256([]byte(passphrase)))
	ids.Add(passphrase, id)
	return id, nil
}

// Named resolves a short network name to its passphrase. Unknown names
// are returned unchanged so a raw passphrase can be passed through.
func Named(name string) string {
	switch name {
	case "public", "pubnet", "mainnet":
		return PublicPassphrase
	case "testnet", "test":
		return TestnetPassphrase
	case "standalone", "local":
		return StandalonePassphrase
	}
	return name
}
