//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
)

// InitializeApp assembles the zone server.
func InitializeApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(providerSet)
	return nil, nil, nil
}
