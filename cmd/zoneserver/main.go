// Package main provides the zone server binary: the combat coordinator for
// every zone, served over gRPC.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting zone server",
		zap.String("grpc_addr", cfg.GameServer.Addr()),
		zap.String("content_source", cfg.Content.Source),
		zap.Bool("database", cfg.Database.Enabled),
	)

	app, cleanup, err := InitializeApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("initializing zone server", zap.Error(err))
	}
	defer cleanup()

	logger.Info("zone server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("grpc_addr", cfg.GameServer.Addr()),
	)

	if err := app.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}
	logger.Info("zones served", zap.Strings("zones", app.Registry.Zones()))
}
