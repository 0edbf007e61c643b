// Package cli implements the interactive ologcli shell: a small REPL that
// drives the olog client package against a live service.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/ologgo/internal/config"
	"github.com/dmitrijs2005/ologgo/internal/logging"
	"github.com/dmitrijs2005/ologgo/olog"
)

type App struct {
	config *config.Config
	client *olog.Client
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	opts := []olog.Option{
		olog.WithClientInfo(cfg.ClientInfo),
		olog.WithTimeout(cfg.Timeout),
	}
	if cfg.InsecureTLS {
		opts = append(opts, olog.WithInsecureTLS())
	}

	return &App{
		config: cfg,
		client: olog.New(cfg.BaseURL, opts...),
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run starts the REPL and releases the client session when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	if a.config.Username != "" {
		if err := a.Login(ctx); err != nil {
			a.log.Error(ctx, "login failed", "err", err)
		}
	}

	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}
