package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/l3aro/go-greet/pkg/greet"
)

// Config holds all configuration for go-greet
type Config struct {
	// Language named in the banner line ("Hello, World from <Language>!")
	Language string `yaml:"language" env:"GREET_LANGUAGE"`

	// MaxNameLength is the capacity of the bounded name reader, in runes.
	// Only the bounded variant (greetc) consults it.
	MaxNameLength int `yaml:"max_name_length" env:"GREET_MAX_NAME_LENGTH"`

	// Overflow picks what the bounded reader does with oversized names:
	// "truncate" keeps the first MaxNameLength runes, "error" rejects.
	Overflow greet.OverflowPolicy `yaml:"overflow" env:"GREET_OVERFLOW"`

	// Logging
	Verbose bool `yaml:"verbose" env:"GREET_VERBOSE"`
}

// DefaultConfig returns a Config that reproduces the classic tutorial
// output byte for byte.
func DefaultConfig() *Config {
	return &Config{
		Language:      greet.DefaultLanguage,
		MaxNameLength: greet.DefaultMaxNameLen,
		Overflow:      greet.OverflowTruncate,
		Verbose:       false,
	}
}

// globalConfigFilePath returns the global config file path (~/.greet/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".greet/config.yaml"
	}
	return filepath.Join(home, ".greet", "config.yaml")
}

// projectConfigFilePath returns the project-level config file path (./.greet/config.yaml)
func projectConfigFilePath() string {
	return ".greet/config.yaml"
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.greet/config.yaml)
// 3. Global config (~/.greet/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// 1. Load global config (~/.greet/config.yaml)
	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	// 2. Load project-level config (./.greet/config.yaml) - overrides global
	projectConfigPath := projectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	// 3. Override with environment variables
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write to file with 0644 permissions
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GREET_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("GREET_MAX_NAME_LENGTH"); v != "" {
		if i := parseInt(v); i > 0 {
			cfg.MaxNameLength = i
		}
	}
	if v := os.Getenv("GREET_OVERFLOW"); v != "" {
		cfg.Overflow = greet.OverflowPolicy(v)
	}
	if v := os.Getenv("GREET_VERBOSE"); v != "" {
		cfg.Verbose = v == "true" || v == "1" || v == "yes"
	}
}

// Validate checks that the configuration has valid required fields
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}

	if c.MaxNameLength <= 0 {
		return fmt.Errorf("max_name_length must be positive")
	}

	switch c.Overflow {
	case greet.OverflowTruncate, greet.OverflowError:
		// Valid
	default:
		return fmt.Errorf("invalid overflow: %s (must be 'truncate' or 'error')", c.Overflow)
	}

	return nil
}

// BoundedReader returns the bounded name reader this configuration
// describes.
func (c *Config) BoundedReader() greet.BoundedReader {
	return greet.BoundedReader{
		Max:      c.MaxNameLength,
		Overflow: c.Overflow,
	}
}

// parseInt attempts to parse a string as int
func parseInt(s string) int {
	var i int
	if _, err := fmt.Sscanf(s, "%d", &i); err != nil {
		return 0
	}
	return i
}
