package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/LeJamon/goKurdBase/internal/core/protocol"
)

// DefaultStorePath is the sequence book location used when store.path is
// unset: $HOME/.kurdtx/store, or ./.kurdtx/store without a home directory.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".kurdtx", "store")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.passphrase", "testnet")
	v.SetDefault("network.base_fee", protocol.BaseFee)
	v.SetDefault("network.timeout", 180)

	v.SetDefault("store.backend", "pebble")
	v.SetDefault("store.path", DefaultStorePath())
	v.SetDefault("store.cache_size", 256)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}
