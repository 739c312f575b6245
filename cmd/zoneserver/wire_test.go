package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/content"
)

func yamlOnlyConfig() config.Config {
	return config.Config{
		Server:     config.ServerConfig{Mode: "standalone", Type: "zone"},
		Logging:    config.LoggingConfig{Level: "info", Format: "json"},
		GameServer: config.GameServerConfig{GRPCHost: "127.0.0.1", GRPCPort: 0},
		Zone:       config.DefaultZoneConfig(),
		Content:    config.ContentConfig{Source: "yaml", Dir: "../../content/zones"},
	}
}

func TestInitializeApp_WithoutDatabase(t *testing.T) {
	app, cleanup, err := InitializeApp(context.Background(), yamlOnlyConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, app.Pool)
	require.NotNil(t, app.Registry)
	require.NotNil(t, app.GRPC)
	assert.Contains(t, app.GRPC.GetServiceInfo(), "skirmish.zone.v1.ZoneService")
}

func TestProvideContent(t *testing.T) {
	cfg := yamlOnlyConfig()
	p, err := provideContent(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &content.YAMLProvider{}, p)

	cfg.Content.Source = "postgres"
	_, err = provideContent(cfg, nil)
	assert.Error(t, err)
}

func TestProvideStats_NilWithoutDatabase(t *testing.T) {
	stats, cleanup, err := provideStats(yamlOnlyConfig(), nil, zaptest.NewLogger(t))
	require.NoError(t, err)
	cleanup()
	assert.Nil(t, stats)
}
