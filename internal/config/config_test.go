package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goKurdBase/internal/core/network"
	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kurdtx.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, network.TestnetPassphrase, config.NetworkPassphrase())
	assert.Equal(t, uint32(100), config.Network.BaseFee)
	assert.Equal(t, int64(180), config.Network.Timeout)
	assert.Equal(t, "pebble", config.Store.Backend)
	assert.Equal(t, DefaultStorePath(), config.Store.Path)
	assert.Equal(t, "info", config.Log.Level)
	assert.Empty(t, config.ConfigPath())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[network]
passphrase = "Standalone Network ; February 2017"
base_fee = 250
timeout = 0

[store]
backend = "bbolt"
path = "/var/lib/kurdtx"

[log]
level = "debug"
format = "json"
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, network.StandalonePassphrase, config.NetworkPassphrase())
	assert.Equal(t, uint32(250), config.Network.BaseFee)
	assert.Equal(t, int64(0), config.Network.Timeout)
	assert.Equal(t, string(database.BackendBbolt), config.Store.Backend)
	assert.Equal(t, "/var/lib/kurdtx", config.Store.Path)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, path, config.ConfigPath())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[network]
passphrase = "testnet"
base_fee = 250
`)
	t.Setenv("KURDTX_NETWORK_PASSPHRASE", "public")
	t.Setenv("KURDTX_NETWORK_BASE_FEE", "1000")
	t.Setenv("KURDTX_STORE_BACKEND", "bbolt")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, network.PublicPassphrase, config.NetworkPassphrase())
	assert.Equal(t, uint32(1000), config.Network.BaseFee)
	assert.Equal(t, "bbolt", config.Store.Backend)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown backend", "[store]\nbackend = \"leveldb\"\n", "unknown storage backend"},
		{"negative timeout", "[network]\ntimeout = -5\n", "timeout cannot be negative"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log:"},
		{"bad format", "[log]\nformat = \"xml\"\n", "format must be console or json"},
		{"empty passphrase", "[network]\npassphrase = \"\"\n", "passphrase cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}
