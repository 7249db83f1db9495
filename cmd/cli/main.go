package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/app/cli"
	"github.com/dmitrijs2005/gasupport/internal/app/config"
	"github.com/dmitrijs2005/gasupport/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
