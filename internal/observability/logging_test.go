package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/skirmish/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestForZone_TagsZoneField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ForZone(zap.New(core), "meadow").Info("hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "zone", entry.LoggerName)
	assert.Equal(t, "meadow", entry.ContextMap()["zone"])
}

func TestForZone_NilBase(t *testing.T) {
	assert.NotPanics(t, func() { ForZone(nil, "meadow").Info("quiet") })
}

func TestForPlayer_InheritsZone(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ForPlayer(ForZone(zap.New(core), "meadow"), "p1").Debug("stats recomputed")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "meadow", fields["zone"])
	assert.Equal(t, "p1", fields["player"])
}
