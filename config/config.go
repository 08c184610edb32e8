// Package config loads host configuration for capability providers. Documents
// are YAML, validated against a JSON schema generated from Config before they
// are decoded.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config is the host configuration.
type Config struct {
	KeyStore       KeyStore  `json:"keystore,omitempty" yaml:"keystore,omitempty"`
	Providers      Providers `json:"providers,omitempty" yaml:"providers,omitempty"`
	APIKey         APIKey    `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	LogLevel       string    `json:"logLevel,omitempty" yaml:"logLevel,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	NonInteractive bool      `json:"nonInteractive,omitempty" yaml:"nonInteractive,omitempty" jsonschema:"description=Never prompt; fail when a provider needs a key"`
}

// KeyStore configures where accepted API keys are persisted.
type KeyStore struct {
	Path     string `json:"path,omitempty" yaml:"path,omitempty" jsonschema:"description=Path of the YAML key file"`
	FilePerm uint32 `json:"filePerm,omitempty" yaml:"filePerm,omitempty" jsonschema:"minimum=0,maximum=511"`
}

// Providers selects which registered providers the host drives.
type Providers struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty" jsonschema:"description=Glob patterns of provider names to include"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" jsonschema:"description=Glob patterns of provider names to exclude"`
}

// APIKey holds the key policy applied to providers built by the host.
type APIKey struct {
	MinLength int `json:"minLength,omitempty" yaml:"minLength,omitempty" jsonschema:"minimum=1"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		KeyStore: KeyStore{
			Path:     filepath.Join(os.Getenv("HOME"), ".reglet", "keys.yaml"),
			FilePerm: 0o600,
		},
		APIKey:   APIKey{MinLength: 16},
		LogLevel: "info",
	}
}

// Load reads, validates and decodes the configuration file at path. Values
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse validates and decodes a YAML document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config YAML: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level := slog.LevelInfo
	if c.LogLevel == "" {
		return level
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		slog.Warn("unknown log level in config", "level", c.LogLevel)
		return slog.LevelInfo
	}
	return level
}

// FileMode returns the key file permissions, defaulting to 0600.
func (k KeyStore) FileMode() os.FileMode {
	if k.FilePerm == 0 {
		return 0o600
	}
	return os.FileMode(k.FilePerm)
}
