package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/wire"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/content"
	"github.com/cory-johannsen/skirmish/internal/game/character"
	"github.com/cory-johannsen/skirmish/internal/game/zone"
	"github.com/cory-johannsen/skirmish/internal/gameserver"
	"github.com/cory-johannsen/skirmish/internal/gameserver/zonev1"
	"github.com/cory-johannsen/skirmish/internal/scripting"
	"github.com/cory-johannsen/skirmish/internal/server"
	"github.com/cory-johannsen/skirmish/internal/storage/postgres"
)

// providerSet builds every zoneserver component from a Config and a logger.
var providerSet = wire.NewSet(
	providePool,
	provideContent,
	provideStats,
	provideRegistry,
	gameserver.NewZoneService,
	provideGRPCServer,
	wire.Struct(new(App), "*"),
)

// App is the assembled zone server.
type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Pool     *postgres.Pool
	Registry *zone.Registry
	GRPC     *grpc.Server
}

// providePool connects to PostgreSQL when the database is enabled and
// returns a nil pool otherwise.
func providePool(ctx context.Context, cfg config.Config, logger *zap.Logger) (*postgres.Pool, func(), error) {
	if !cfg.Database.Enabled {
		return nil, func() {}, nil
	}
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)
	return pool, pool.Close, nil
}

// provideContent selects the zone content source.
func provideContent(cfg config.Config, pool *postgres.Pool) (content.Provider, error) {
	switch cfg.Content.Source {
	case "postgres":
		if pool == nil {
			return nil, fmt.Errorf("content source postgres needs database.enabled")
		}
		return postgres.NewContentRepository(pool.DB()), nil
	default:
		return content.NewYAMLProvider(cfg.Content.Dir), nil
	}
}

// provideStats builds the damage calculator over the character store.
// Without a database there is nothing to compute from and rooms keep the
// configured default damage.
func provideStats(cfg config.Config, pool *postgres.Pool, logger *zap.Logger) (zone.StatSource, func(), error) {
	if pool == nil {
		return nil, func() {}, nil
	}
	repo := postgres.NewCharacterRepository(pool.DB())

	var opts []character.Option
	cleanup := func() {}
	if cfg.Scripting.DamageScript != "" {
		formula, err := scripting.LoadDamageFormula(cfg.Scripting.DamageScript, cfg.Scripting.InstructionLimit, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("loading damage script: %w", err)
		}
		logger.Info("damage script loaded", zap.String("path", cfg.Scripting.DamageScript))
		opts = append(opts, character.WithFormula(formula))
		cleanup = formula.Close
	}
	return character.NewCalculator(repo, repo, logger, opts...), cleanup, nil
}

func provideRegistry(cfg config.Config, provider content.Provider, stats zone.StatSource, logger *zap.Logger) (*zone.Registry, func()) {
	var opts []zone.Option
	if stats != nil {
		opts = append(opts, zone.WithStats(stats))
	}
	reg := zone.NewRegistry(provider, cfg.Zone, logger, opts...)
	return reg, reg.Close
}

func provideGRPCServer(svc *gameserver.ZoneService) *grpc.Server {
	srv := grpc.NewServer()
	zonev1.RegisterZoneServiceServer(srv, svc)
	return srv
}

// Run serves the app under a lifecycle until a signal or a service failure.
func (a *App) Run(ctx context.Context) error {
	lifecycle := server.NewLifecycle(a.Logger)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func(context.Context) error {
			lis, err := net.Listen("tcp", a.Config.GameServer.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", a.Config.GameServer.Addr(), err)
			}
			a.Logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return a.GRPC.Serve(lis)
		},
		StopFn: func() {
			a.GRPC.GracefulStop()
		},
	})

	if a.Pool != nil {
		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func(ctx context.Context) error {
				ticker := time.NewTicker(30 * time.Second)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return nil
					case <-ticker.C:
						if err := a.Pool.Health(ctx, 5*time.Second); err != nil {
							a.Logger.Warn("database health check failed", zap.Error(err))
							continue
						}
						stats := a.Pool.Stats()
						a.Logger.Debug("database healthy",
							zap.Int32("conns", stats.Total),
							zap.Int32("acquired", stats.Acquired),
							zap.Int32("idle", stats.Idle),
						)
					}
				}
			},
		})
	}

	return lifecycle.Run(ctx)
}
