// Package config loads the optional fuzzcollect configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/fuzzcollect/internal/schema"
)

// EnvVar names the environment variable that points at a configuration file.
const EnvVar = "FUZZCOLLECT_CONFIG"

// Load reads and parses a YAML configuration file after checking it against
// the embedded schema.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data. Empty input yields an empty Config.
func Parse(data []byte) (*Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if raw == nil {
		return &Config{}, nil
	}

	// The schema validator works on JSON documents.
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := schema.ValidateConfig(doc); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults reads a config file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a config file, applies defaults and validates the result.
// An empty path returns the default configuration.
func LoadAndValidate(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
