package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ologgo/internal/cli"
	"github.com/dmitrijs2005/ologgo/internal/config"
	"github.com/dmitrijs2005/ologgo/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	zl, err := logging.NewZap(os.Getenv("OLOG_ENV"))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()

	app := cli.NewApp(cfg, logging.NewZapLogger(zl))
	app.Run(context.Background())
}
