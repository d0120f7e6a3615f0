package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"

	"bodyshop-chat/internal/bootstrap"
	"bodyshop-chat/internal/config"
	"bodyshop-chat/pkg/logging"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	// ---- Wiring ----
	// Lambda has no scrape endpoint; counters still go to the default
	// registry so a metrics extension can pick them up.
	app, err := bootstrap.New(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Error("failed to build service", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	lambda.Start(app.Handler.Handle)
}
