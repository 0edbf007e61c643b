package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/ologgo/internal/flagx"
	"github.com/pelletier/go-toml/v2"
)

// TomlConfig is a DTO used exclusively for TOML unmarshalling; values are
// copied into the runtime Config afterwards.
type TomlConfig struct {
	BaseURL        string `toml:"base_url"`
	ClientInfo     string `toml:"client_info"`
	Username       string `toml:"username"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	InsecureTLS    bool   `toml:"insecure_tls"`
}

// parseToml overlays cfg with values from the TOML file named by the -c or
// -config flags. When no file is named the function is a no-op. Read or
// parse errors panic; configuration is resolved before anything else runs.
func parseToml(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var tc TomlConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := toml.Unmarshal(data, &tc); err != nil {
		panic(err)
	}

	if tc.BaseURL != "" {
		cfg.BaseURL = tc.BaseURL
	}
	if tc.ClientInfo != "" {
		cfg.ClientInfo = tc.ClientInfo
	}
	if tc.Username != "" {
		cfg.Username = tc.Username
	}
	if tc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(tc.TimeoutSeconds) * time.Second
	}
	if tc.InsecureTLS {
		cfg.InsecureTLS = true
	}
}
