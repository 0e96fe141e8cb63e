package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stepvis/stepvis/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, 500, cfg.Playback.TickMS)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	path := write(t, `
listen: "127.0.0.1:9000"
graph:
  directed: true
playback:
  tick_ms: 200
log:
  level: debug
  json: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Listen)
	require.True(t, cfg.Graph.Directed)
	require.Equal(t, 200, cfg.Playback.TickMS)
	// Unset cadence fields keep their defaults.
	require.Equal(t, 50, cfg.Playback.MinTickMS)
	require.Equal(t, 2000, cfg.Playback.MaxTickMS)
	require.Equal(t, 25, cfg.Playback.PollMS)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.JSON)
}

func TestLoad_Validation(t *testing.T) {
	_, err := config.Load(write(t, "playback:\n  tick_ms: 0\n"))
	require.ErrorIs(t, err, config.ErrBadTick)

	_, err = config.Load(write(t, "playback:\n  poll_ms: -5\n"))
	require.ErrorIs(t, err, config.ErrBadTick)

	_, err = config.Load(write(t, "playback:\n  min_tick_ms: 900\n  max_tick_ms: 100\n"))
	require.ErrorIs(t, err, config.ErrBadBounds)
}

func TestLoad_ClampsInitialTickToBounds(t *testing.T) {
	cfg, err := config.Load(write(t, "playback:\n  tick_ms: 10\n"))
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Playback.TickMS)

	cfg, err = config.Load(write(t, "playback:\n  tick_ms: 60000\n"))
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.Playback.TickMS)
}

func TestDurations(t *testing.T) {
	p := config.Default().Playback
	require.Equal(t, p.Tick().Milliseconds(), int64(p.TickMS))
	require.Equal(t, p.MinTick().Milliseconds(), int64(p.MinTickMS))
	require.Equal(t, p.MaxTick().Milliseconds(), int64(p.MaxTickMS))
	require.Equal(t, p.Poll().Milliseconds(), int64(p.PollMS))
}
