package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// Serialize renders the config as a TOML document.
func (c *Config) Serialize() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serialize config: %w", err)
	}
	return data, nil
}

// Deserialize parses a TOML document into a Config. Fields absent from the
// document keep their defaults; no normalization or validation is applied.
func Deserialize(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveTo writes the config as TOML to the given path, holding an exclusive
// file lock so concurrent CLI invocations cannot interleave writes.
func (c *Config) SaveTo(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(expanded); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory %q: %w", dir, err)
		}
	}

	lock := flock.New(expanded + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	data, err := c.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Save writes the config to the location recorded in paths.config.
func (c *Config) Save() error {
	return c.SaveTo(c.Paths.Config)
}

// Reload replaces the receiver with the document stored at paths.config.
func (c *Config) Reload() error {
	cfg, _, exists, err := Load(c.Paths.Config)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("config file %s does not exist", c.Paths.Config)
	}
	*c = *cfg
	return nil
}
