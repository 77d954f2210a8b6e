package config

import (
	"github.com/AndreyAkinshin/fuzzcollect/internal/discovery"
	"github.com/AndreyAkinshin/fuzzcollect/internal/fetch"
	"github.com/AndreyAkinshin/fuzzcollect/internal/shardlog"
)

// Default configuration values.
const (
	DefaultUserAgent     = fetch.DefaultUserAgent
	DefaultTimeout       = "0s"
	DefaultLinkText      = discovery.DefaultLinkText
	DefaultShardMarker   = shardlog.DefaultShardMarker
	DefaultTriggerMarker = discovery.DefaultTriggerMarker
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyHTTPDefaults(cfg)
	applyDiscoveryDefaults(cfg)
}

func applyHTTPDefaults(cfg *Config) {
	if cfg.HTTP == nil {
		cfg.HTTP = &HTTPConfig{}
	}
	if cfg.HTTP.UserAgent == "" {
		cfg.HTTP.UserAgent = DefaultUserAgent
	}
	if cfg.HTTP.Timeout == "" {
		cfg.HTTP.Timeout = DefaultTimeout
	}
}

func applyDiscoveryDefaults(cfg *Config) {
	if cfg.Discovery == nil {
		cfg.Discovery = &DiscoveryConfig{}
	}
	if cfg.Discovery.LinkText == "" {
		cfg.Discovery.LinkText = DefaultLinkText
	}
	if cfg.Discovery.ShardMarker == "" {
		cfg.Discovery.ShardMarker = DefaultShardMarker
	}
	// An empty trigger marker would exclude nothing, so it is defaulted too.
	if cfg.Discovery.TriggerMarker == "" {
		cfg.Discovery.TriggerMarker = DefaultTriggerMarker
	}
}
