package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal renders a Config as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to the default config path.
// It refuses to overwrite an existing file.
func WriteDefault() error {
	path := Path()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
