// Package config loads kurdtx settings from defaults, an optional TOML
// file and KURDTX_ environment variables.
package config

import (
	"github.com/LeJamon/goKurdBase/internal/core/network"
)

// Config is the complete kurdtx configuration.
type Config struct {
	Network NetworkConfig `toml:"network" mapstructure:"network"`
	Store   StoreConfig   `toml:"store" mapstructure:"store"`
	Log     LogConfig     `toml:"log" mapstructure:"log"`

	configPath string
}

// NetworkConfig selects the network transactions are signed for and the
// builder defaults.
type NetworkConfig struct {
	// Passphrase is a full network passphrase or one of the short names
	// "public", "testnet" and "standalone".
	Passphrase string `toml:"passphrase" mapstructure:"passphrase"`
	// BaseFee is the per-operation fee in stroops.
	BaseFee uint32 `toml:"base_fee" mapstructure:"base_fee"`
	// Timeout in seconds; 0 leaves MaxTime unbounded.
	Timeout int64 `toml:"timeout" mapstructure:"timeout"`
}

// StoreConfig locates the sequence book.
type StoreConfig struct {
	Backend   string `toml:"backend" mapstructure:"backend"`
	Path      string `toml:"path" mapstructure:"path"`
	CacheSize int    `toml:"cache_size" mapstructure:"cache_size"`
}

type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

// NetworkPassphrase resolves short network names.
func (c *Config) NetworkPassphrase() string {
	return network.Named(c.Network.Passphrase)
}

// ConfigPath returns the file the configuration was read from, or "".
func (c *Config) ConfigPath() string {
	return c.configPath
}
