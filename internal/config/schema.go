package config

// Config is the root configuration structure for fuzzcollect.
type Config struct {
	HTTP      *HTTPConfig      `yaml:"http,omitempty" json:"http,omitempty"`
	Discovery *DiscoveryConfig `yaml:"discovery,omitempty" json:"discovery,omitempty"`
}

// HTTPConfig configures how logs are fetched.
type HTTPConfig struct {
	UserAgent string `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`
	// Timeout is a Go duration string applied per request. Empty or "0s" means no timeout.
	Timeout string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// DiscoveryConfig selects the shard log links on a run's listing page.
type DiscoveryConfig struct {
	LinkText      string `yaml:"link_text,omitempty" json:"link_text,omitempty"`
	ShardMarker   string `yaml:"shard_marker,omitempty" json:"shard_marker,omitempty"`
	TriggerMarker string `yaml:"trigger_marker,omitempty" json:"trigger_marker,omitempty"`
}
