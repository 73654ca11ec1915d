package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/glassyclock/internal/placement"
)

func TestDefaultFile(t *testing.T) {
	f := DefaultFile()

	cfg := f.ClockConfig()
	assert.Equal(t, 0, cfg.Size)
	assert.Equal(t, 100, cfg.EffectiveSize())
	assert.Equal(t, placement.Unset, cfg.Position)
	assert.Empty(t, cfg.ScreenName)

	a, err := f.ResolveAppearance()
	require.NoError(t, err)
	assert.Equal(t, DefaultAppearance(), a)
	assert.Equal(t, slog.LevelWarn, f.LogLevel())
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	f, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultFile(), f)
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[clock]
size = 240
x = 20
y = 40
screen = "DP-2"

[appearance]
blur = false
hour_color = "#00ff00"
hour_alpha = 0.5

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := Load(path)
	require.NoError(t, err)

	cfg := f.ClockConfig()
	assert.Equal(t, 240, cfg.Size)
	assert.Equal(t, placement.Point{X: 20, Y: 40}, cfg.Position)
	assert.Equal(t, "DP-2", cfg.ScreenName)

	a, err := f.ResolveAppearance()
	require.NoError(t, err)
	assert.False(t, a.Blur)
	assert.True(t, a.ShowFace) // untouched default
	assert.Equal(t, RGBA{R: 0, G: 1, B: 0, A: 0.5}, a.Hour)
	assert.Equal(t, DefaultAppearance().Second, a.Second)

	assert.Equal(t, slog.LevelDebug, f.LogLevel())
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[clock\nsize = "), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAppearance_InvalidColorsKeepDefaults(t *testing.T) {
	f := DefaultFile()
	f.Appearance.HourColor = "white"
	f.Appearance.SecondAlpha = 2

	a, err := f.ResolveAppearance()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour_color")
	assert.Contains(t, err.Error(), "second_color")
	assert.Equal(t, DefaultAppearance().Hour, a.Hour)
	assert.Equal(t, DefaultAppearance().Second, a.Second)
}

func TestLogLevel_Fallback(t *testing.T) {
	f := DefaultFile()
	f.Log.Level = "chatty"
	assert.Equal(t, slog.LevelWarn, f.LogLevel())

	f.Log.Level = "INFO"
	assert.Equal(t, slog.LevelInfo, f.LogLevel())
}
