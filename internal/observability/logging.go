// Package observability builds the zap loggers shared by the zone server and
// its tools, and the scoped child loggers rooms and sessions log through.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/skirmish/internal/config"
)

// NewLogger builds the process logger. "json" selects the production encoder
// and "console" the development one; both stamp ISO8601 times.
//
// Precondition: cfg.Level is a zapcore level name; cfg.Format is "json" or "console".
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// ForZone returns a child logger tagged with the zone identifier.
//
// Postcondition: Returns a non-nil logger; a nil base yields a no-op logger.
func ForZone(base *zap.Logger, zoneID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return base.Named("zone").With(zap.String("zone", zoneID))
}

// ForPlayer returns a child logger tagged with the player identifier.
func ForPlayer(base *zap.Logger, playerID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return base.With(zap.String("player", playerID))
}
