package config

import (
	"fmt"
	"strings"
)

// Validate checks a parsed Config for values the gateway cannot operate
// with. Zero values for limits are allowed; Load fills them from defaults.
func Validate(cfg *Config) error {
	if cfg.Gateway.TimeoutSeconds < 0 {
		return fmt.Errorf("gateway.timeout_seconds must not be negative, got %d", cfg.Gateway.TimeoutSeconds)
	}
	if cfg.Gateway.MaxConcurrent < 0 {
		return fmt.Errorf("gateway.max_concurrent must not be negative, got %d", cfg.Gateway.MaxConcurrent)
	}

	for i, e := range cfg.Gateway.Allow {
		prefix := strings.TrimSpace(e.Prefix)
		if prefix == "" {
			return fmt.Errorf("gateway.allow[%d]: prefix cannot be empty", i)
		}
		if !strings.HasPrefix(strings.ToLower(prefix), "az") {
			return fmt.Errorf("gateway.allow[%d]: prefix %q must start with the az tool name", i, e.Prefix)
		}
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error", "err":
	default:
		return fmt.Errorf("log.level %q is not a recognized level", cfg.Log.Level)
	}

	return nil
}
