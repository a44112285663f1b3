package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/LeJamon/goKurdBase/internal/storage/database"
)

// ValidateConfig checks every section.
func ValidateConfig(config *Config) error {
	if err := config.Network.Validate(); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := config.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (n *NetworkConfig) Validate() error {
	if n.Passphrase == "" {
		return errors.New("passphrase cannot be empty")
	}
	if n.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %d", n.Timeout)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if _, err := database.ParseBackend(s.Backend); err != nil {
		return err
	}
	if s.Path == "" {
		return errors.New("path cannot be empty")
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache_size cannot be negative: %d", s.CacheSize)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return err
	}
	switch l.Format {
	case "console", "json":
		return nil
	}
	return fmt.Errorf("format must be console or json, got %q", l.Format)
}
