// Package config holds the clock's startup configuration: positional
// command-line arguments layered over an optional TOML defaults file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/glassyclock/internal/placement"
)

// Default configuration values.
const (
	DefaultSize        = 0 // clamped to placement.MinSize
	DefaultHourColor   = "#ffffff"
	DefaultHourAlpha   = 210.0 / 255.0
	DefaultSecondColor = "#ff0000"
	DefaultSecondAlpha = 153.0 / 255.0
	DefaultLogLevel    = "warn"
)

// ClockConfig is the immutable window configuration chosen at startup.
type ClockConfig struct {
	Size       int
	Position   placement.Point
	ScreenName string
}

// EffectiveSize returns the edge length actually used for the window.
func (c ClockConfig) EffectiveSize() int {
	return placement.EffectiveSize(c.Size)
}

// DefaultClockConfig lets the window system choose the position.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		Size:     DefaultSize,
		Position: placement.Unset,
	}
}

// RGBA is a color with components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Appearance holds the parts of the look that may change while running.
type Appearance struct {
	Blur     bool
	ShowFace bool
	Hour     RGBA
	Second   RGBA
}

// DefaultAppearance matches the built-in look.
func DefaultAppearance() Appearance {
	return Appearance{
		Blur:     true,
		ShowFace: true,
		Hour:     RGBA{R: 1, G: 1, B: 1, A: DefaultHourAlpha},
		Second:   RGBA{R: 1, G: 0, B: 0, A: DefaultSecondAlpha},
	}
}

// File is the on-disk defaults file.
// Loaded from ~/.config/glassyclock/config.toml
type File struct {
	Clock      ClockSection      `toml:"clock"`
	Appearance AppearanceSection `toml:"appearance"`
	Log        LogSection        `toml:"log"`
}

// ClockSection holds default size and placement.
type ClockSection struct {
	Size   int    `toml:"size"`   // Edge length in pixels (minimum 100)
	X      int    `toml:"x"`      // Negative = let the window system decide
	Y      int    `toml:"y"`      // Negative = let the window system decide
	Screen string `toml:"screen"` // Wayland output name, e.g. "DP-1"
}

// AppearanceSection holds colors and effects.
type AppearanceSection struct {
	Blur        bool    `toml:"blur"`         // Ask the compositor to blur behind the face
	ShowFace    bool    `toml:"show_face"`    // Paint the face image
	HourColor   string  `toml:"hour_color"`   // Hour/minute hands, marks and center ring
	HourAlpha   float64 `toml:"hour_alpha"`   // 0.0-1.0
	SecondColor string  `toml:"second_color"` // Second hand
	SecondAlpha float64 `toml:"second_alpha"` // 0.0-1.0
}

// LogSection configures logging.
type LogSection struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// DefaultFile returns a File with default values.
func DefaultFile() *File {
	return &File{
		Clock: ClockSection{
			Size: DefaultSize,
			X:    -1,
			Y:    -1,
		},
		Appearance: AppearanceSection{
			Blur:        true,
			ShowFace:    true,
			HourColor:   DefaultHourColor,
			HourAlpha:   DefaultHourAlpha,
			SecondColor: DefaultSecondColor,
			SecondAlpha: DefaultSecondAlpha,
		},
		Log: LogSection{
			Level: DefaultLogLevel,
		},
	}
}

// Path returns the path to the defaults file.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "glassyclock", "config.toml"), nil
}

// Load reads the defaults file at path. If path is empty the default
// location is used. A missing file yields DefaultFile.
func Load(path string) (*File, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultFile(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then overlay with file contents
	f := DefaultFile()
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return f, nil
}

// ClockConfig returns the startup configuration described by the file.
func (f *File) ClockConfig() ClockConfig {
	return ClockConfig{
		Size:       f.Clock.Size,
		Position:   placement.Point{X: f.Clock.X, Y: f.Clock.Y},
		ScreenName: f.Clock.Screen,
	}
}

// ResolveAppearance resolves colors. Invalid entries keep their default and are
// reported together in the returned error.
func (f *File) ResolveAppearance() (Appearance, error) {
	a := DefaultAppearance()
	a.Blur = f.Appearance.Blur
	a.ShowFace = f.Appearance.ShowFace

	var errs []error
	if c, err := parseColor(f.Appearance.HourColor, f.Appearance.HourAlpha); err != nil {
		errs = append(errs, fmt.Errorf("hour_color: %w", err))
	} else {
		a.Hour = c
	}
	if c, err := parseColor(f.Appearance.SecondColor, f.Appearance.SecondAlpha); err != nil {
		errs = append(errs, fmt.Errorf("second_color: %w", err))
	} else {
		a.Second = c
	}

	return a, errors.Join(errs...)
}

// LogLevel returns the configured slog level, falling back to warn.
func (f *File) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(f.Log.Level))); err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseColor(hex string, alpha float64) (RGBA, error) {
	if alpha < 0 || alpha > 1 {
		return RGBA{}, fmt.Errorf("alpha %v out of range [0,1]", alpha)
	}
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}
