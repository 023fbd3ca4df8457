package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"log_level":"debug"}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Metric.KL)
	assert.Equal(t, 1.0, cfg.Metric.KC)
	assert.Equal(t, 1.0, cfg.Metric.Kh)
	assert.Equal(t, float64(DEFAULT_RADIUS), cfg.Metric.Radius)
	assert.Equal(t, 10, cfg.Grid.Lightness.Steps)
	assert.Equal(t, 21, cfg.Grid.A.Steps)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestParseConfigRejectsGarbage(t *testing.T) {
	_, err := ParseConfig([]byte(`{`))
	require.Error(t, err)
}

func TestAxisValues(t *testing.T) {
	values := Axis{From: -100, To: 100, Steps: 21}.Values()
	require.Len(t, values, 21)
	assert.Equal(t, -100.0, values[0])
	assert.Equal(t, 100.0, values[20])
	assert.InDelta(t, -90.0, values[1], 1e-12)

	single := Axis{From: 5, To: 10, Steps: 1}.Values()
	assert.Equal(t, []float64{5}, single)
}

func TestLogLevelZap(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, LogLevelDebug.Zap().Level())
	assert.Equal(t, zapcore.InfoLevel, LogLevelInfo.Zap().Level())
	assert.Equal(t, zapcore.WarnLevel, LogLevel("warning").Zap().Level())
	assert.Equal(t, zapcore.ErrorLevel, LogLevel("bogus").Zap().Level())
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, CreateSample(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := ParseConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, "./tensorfields.db", cfg.Store.Sqlite)
}
