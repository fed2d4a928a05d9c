package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/vaultgate/vaultgate/internal/clog"
)

// Load loads the configuration from the default config path.
// If the config file doesn't exist, it returns DefaultConfig().
// If the file exists but cannot be read or parsed, it returns an error.
// Zero-valued gateway limits are filled in from the defaults, and an empty
// allow-list falls back to the default allow-list.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile loads the configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	clog.Debug("config: loading from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("config: file not found, using defaults")
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills zero-valued fields from DefaultConfig.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Gateway.TimeoutSeconds == 0 {
		cfg.Gateway.TimeoutSeconds = def.Gateway.TimeoutSeconds
	}
	if cfg.Gateway.MaxConcurrent == 0 {
		cfg.Gateway.MaxConcurrent = def.Gateway.MaxConcurrent
	}
	if len(cfg.Gateway.Allow) == 0 {
		cfg.Gateway.Allow = def.Gateway.Allow
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
