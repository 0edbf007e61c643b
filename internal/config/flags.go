package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ologgo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags. The
// args are pre-filtered to the flags handled here so the config-file flags
// parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the Olog service")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "username for Basic auth")
	timeoutSeconds := fs.Int("t", int(cfg.Timeout.Seconds()), "request timeout (seconds)")
	fs.BoolVar(&cfg.InsecureTLS, "k", cfg.InsecureTLS, "skip TLS certificate verification")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Timeout = time.Duration(*timeoutSeconds) * time.Second
}
