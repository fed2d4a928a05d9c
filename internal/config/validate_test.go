package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "zero limits allowed",
			mutate: func(c *Config) { c.Gateway.TimeoutSeconds = 0; c.Gateway.MaxConcurrent = 0 },
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Gateway.TimeoutSeconds = -1 },
			wantErr: "timeout_seconds",
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Gateway.MaxConcurrent = -1 },
			wantErr: "max_concurrent",
		},
		{
			name:    "empty allow prefix",
			mutate:  func(c *Config) { c.Gateway.Allow = append(c.Gateway.Allow, AllowEntry{Prefix: "  "}) },
			wantErr: "prefix cannot be empty",
		},
		{
			name:    "allow prefix for wrong tool",
			mutate:  func(c *Config) { c.Gateway.Allow = append(c.Gateway.Allow, AllowEntry{Prefix: "kubectl get"}) },
			wantErr: "must start with the az tool name",
		},
		{
			name:    "unrecognized log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: "not a recognized level",
		},
		{
			name:   "empty log level allowed",
			mutate: func(c *Config) { c.Log.Level = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
