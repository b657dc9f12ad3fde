package config

// Config is the top-level libdash configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Session SessionConfig `mapstructure:"session" yaml:"session"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	// BaseURL is the backend root, e.g. "https://library.example.com".
	// Auth endpoints (/login, /register/) live directly under it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// APIPrefix is prepended to resource paths, e.g. "/api/v1".
	APIPrefix string `mapstructure:"api_prefix" yaml:"api_prefix"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// SessionConfig holds client-side session persistence settings.
type SessionConfig struct {
	// TokenPath is the file holding the bearer token between runs.
	TokenPath string `mapstructure:"token_path" yaml:"token_path"`
}

// ResourceBase returns the base URL for resource endpoints
// (BaseURL + APIPrefix).
func (c *Config) ResourceBase() string {
	return c.Server.BaseURL + c.Server.APIPrefix
}
