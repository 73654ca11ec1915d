package display

import (
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/glassyclock/internal/clock"
	"github.com/jmylchreest/glassyclock/internal/config"
	"github.com/jmylchreest/glassyclock/internal/placement"
)

// Manager owns the clock window and the updater driving it.
// All methods must be called on the GTK main thread.
type Manager struct {
	app        *gtk.Application
	cfg        config.ClockConfig
	appearance config.Appearance
	logger     *slog.Logger

	display *gdk.Display
	backend placement.Backend
	x11     *x11Conn

	window  *ClockWindow
	updater *clock.Updater
	stopped bool
}

// NewManager creates a display manager for one clock.
func NewManager(app *gtk.Application, cfg config.ClockConfig, appearance config.Appearance, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		app:        app,
		cfg:        cfg,
		appearance: appearance,
		logger:     logger,
	}
}

// Start detects the backend, shows the clock and begins ticking.
func (m *Manager) Start() error {
	m.display = gdk.DisplayGetDefault()
	if m.display == nil {
		return &DisplayError{Message: "no display available"}
	}

	typeName := m.display.TypeFromInstance().Name()
	m.backend = placement.DetectBackend(typeName)
	m.logger.Debug("display backend", "type", typeName, "backend", m.backend.String())

	svc := m.services()

	renderer := NewRenderer(clock.RealClock{}, m.appearance, m.logger)
	m.window = NewClockWindow(m.app, m.cfg, renderer, svc, m.logger)
	m.updater = clock.NewUpdater(clock.RealClock{}, mainLoopScheduler{}, m.window.Redraw, m.logger)

	m.window.Show()
	m.updater.Start()

	m.logger.Info("clock started",
		"size", m.window.Size(),
		"x", m.cfg.Position.X,
		"y", m.cfg.Position.Y,
		"screen", m.cfg.ScreenName,
	)
	return nil
}

// backendServices are the window-system specific parts of the clock.
type backendServices struct {
	placer Placer
	blur   BlurBehind
	shape  WindowShape
}

// services picks the implementations for the detected backend.
// Failures degrade to toolkit defaults without blur or shaping.
func (m *Manager) services() backendServices {
	switch m.backend {
	case placement.BackendX11:
		conn, err := dialX11()
		if err != nil {
			m.logger.Warn("X11 helpers unavailable", "error", err)
			break
		}
		m.x11 = conn
		return backendServices{
			placer: &x11Placer{conn: conn, cfg: m.cfg, display: m.display, logger: m.logger},
			blur:   &x11Blur{conn: conn},
			shape:  &x11Shape{conn: conn},
		}

	case placement.BackendLayerShell:
		if !layershell.IsSupported() {
			m.logger.Warn("compositor does not support wlr-layer-shell")
			break
		}
		return backendServices{
			placer: &layerPlacer{cfg: m.cfg, display: m.display, logger: m.logger},
			blur:   &noBlur{logger: m.logger},
			shape:  noShape{},
		}
	}

	return backendServices{
		placer: &defaultPlacer{backend: m.backend, logger: m.logger},
		blur:   &noBlur{logger: m.logger},
		shape:  noShape{},
	}
}

// Stop cancels all timers, unregisters blur and closes the window.
func (m *Manager) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true

	if m.updater != nil && m.updater.Running() {
		m.updater.Stop()
	}
	if m.window != nil {
		m.window.Close()
	}
	if m.x11 != nil {
		m.x11.Close()
		m.x11 = nil
	}

	m.logger.Info("clock stopped")
}

// SetAppearance swaps colors and effects on the running clock.
func (m *Manager) SetAppearance(a config.Appearance) {
	m.appearance = a
	if m.window != nil && !m.stopped {
		m.window.SetAppearance(a)
	}
}

// Resync realigns the updater to the wall clock, e.g. after resume.
func (m *Manager) Resync() {
	if m.updater != nil && !m.stopped {
		m.updater.Resync()
		m.logger.Debug("clock resynced", "next_tick", m.updater.NextTick())
	}
}

// Backend returns the backend detected by Start.
func (m *Manager) Backend() placement.Backend {
	return m.backend
}

// DisplayError represents a display-related error.
type DisplayError struct {
	Message string
	Cause   error
}

func (e *DisplayError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *DisplayError) Unwrap() error {
	return e.Cause
}
