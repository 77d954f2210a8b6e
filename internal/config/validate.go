package config

import (
	"fmt"
	"time"

	"github.com/AndreyAkinshin/fuzzcollect/internal/discovery"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration with defaults applied.
func Validate(cfg *Config) error {
	d, err := time.ParseDuration(cfg.HTTP.Timeout)
	if err != nil {
		return &ValidationError{Field: "http.timeout", Message: fmt.Sprintf("invalid duration %q", cfg.HTTP.Timeout)}
	}
	if d < 0 {
		return &ValidationError{Field: "http.timeout", Message: "must not be negative"}
	}
	return nil
}

// Timeout returns the parsed per-request timeout. Zero means no timeout.
func (cfg *Config) Timeout() time.Duration {
	if cfg.HTTP == nil {
		return 0
	}
	d, err := time.ParseDuration(cfg.HTTP.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Filter returns the discovery filter described by the configuration.
func (cfg *Config) Filter() discovery.Filter {
	if cfg.Discovery == nil {
		return discovery.DefaultFilter()
	}
	return discovery.Filter{
		LinkText:      cfg.Discovery.LinkText,
		ShardMarker:   cfg.Discovery.ShardMarker,
		TriggerMarker: cfg.Discovery.TriggerMarker,
	}
}
