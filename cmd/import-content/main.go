// Package main loads zone YAML files into the PostgreSQL content tables.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/importer"
	"github.com/cory-johannsen/skirmish/internal/observability"
	"github.com/cory-johannsen/skirmish/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	sourceDir := flag.String("source", "", "directory of zone YAML files; defaults to content.dir")
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

	if !cfg.Database.Enabled {
		logger.Fatal("import-content needs database.enabled")
	}
	dir := *sourceDir
	if dir == "" {
		dir = cfg.Content.Dir
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()

	imp := importer.New(importer.NewDirSource(dir), postgres.NewContentRepository(pool.DB()), logger)
	zones, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err), zap.Strings("saved", zones))
	}
	logger.Info("content imported",
		zap.String("source", dir),
		zap.Strings("zones", zones),
		zap.Duration("elapsed", time.Since(start)),
	)
}
