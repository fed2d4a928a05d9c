// Package config provides configuration types for the vaultgate command
// gateway. These types map to the YAML configuration file.
package config

import "time"

// Config represents the top-level vaultgate configuration.
// It is typically stored at ~/.config/vaultgate/config.yaml.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// GatewayConfig contains the knobs consumed by the command gateway. The
// gateway does not own these values; they are injected at construction so
// its decision logic stays testable against arbitrary allow-lists.
type GatewayConfig struct {
	Allow          []AllowEntry `yaml:"allow,omitempty"`
	TimeoutSeconds int          `yaml:"timeout_seconds,omitempty"`
	MaxConcurrent  int          `yaml:"max_concurrent,omitempty"`

	// ToolPath overrides executable resolution with a fixed path.
	ToolPath string `yaml:"tool_path,omitempty"`
}

// AllowEntry represents a single case-insensitive command prefix in the
// allow-list.
type AllowEntry struct {
	Prefix string `yaml:"prefix,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	File      string `yaml:"file,omitempty"`
	AuditFile string `yaml:"audit_file,omitempty"`
	Level     string `yaml:"level,omitempty"`
}

// Timeout returns the per-command timeout as a duration.
func (g GatewayConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// AllowPrefixes returns the allow-list as a plain string slice.
func (g GatewayConfig) AllowPrefixes() []string {
	prefixes := make([]string, 0, len(g.Allow))
	for _, e := range g.Allow {
		prefixes = append(prefixes, e.Prefix)
	}
	return prefixes
}
