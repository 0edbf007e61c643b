// Package config loads runtime configuration for the ologcli tool.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional TOML file selected via the -c or -config flags.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Olog service
//	-u string   username for Basic auth (password is prompted interactively)
//	-t int      request timeout (seconds)
//	-k          skip TLS certificate verification
//
// # TOML schema
//
//	base_url = "http://localhost:8080"
//	username = "admin"
//	timeout_seconds = 30
//	insecure_tls = false
//	client_info = "ologcli"
package config

import "time"

// Config holds runtime settings for the ologcli tool.
type Config struct {
	BaseURL     string
	ClientInfo  string
	Username    string
	Timeout     time.Duration
	InsecureTLS bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.ClientInfo = "ologcli"
	c.Timeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the TOML file (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseToml(cfg)
	parseFlags(cfg)
	return cfg
}
