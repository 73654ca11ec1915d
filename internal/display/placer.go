package display

import (
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/glassyclock/internal/config"
	"github.com/jmylchreest/glassyclock/internal/placement"
)

// LayerNamespace identifies the clock surface to the compositor.
const LayerNamespace = "glassyclock"

// Placer positions the window once, the first time it is shown.
type Placer interface {
	// Prepare runs before the window is first presented.
	Prepare(win *gtk.Window)
	// Mapped runs once the window is first mapped on screen.
	Mapped(win *gtk.Window)
}

// layerPlacer turns the window into a bottom-layer layer-shell surface
// anchored to the top-left corner of the chosen output.
type layerPlacer struct {
	cfg     config.ClockConfig
	display *gdk.Display
	logger  *slog.Logger
}

func (p *layerPlacer) Prepare(win *gtk.Window) {
	layershell.InitForWindow(win)
	layershell.SetLayer(win, layershell.LayerShellLayerBottom)
	layershell.SetAnchor(win, layershell.LayerShellEdgeTop, true)
	layershell.SetAnchor(win, layershell.LayerShellEdgeLeft, true)
	layershell.SetKeyboardMode(win, layershell.LayerShellKeyboardModeNone)
	layershell.SetExclusiveZone(win, -1) // don't reserve space or move for other surfaces
	layershell.SetNamespace(win, LayerNamespace)

	var screen *placement.Screen
	if target, ok := pickMonitor(listMonitors(p.display, p.logger), p.cfg.ScreenName); ok {
		layershell.SetMonitor(win, target.monitor)
		screen = &target.screen
		p.logger.Debug("selected output", "name", target.screen.Name, "requested", p.cfg.ScreenName)
	} else {
		p.logger.Warn("no outputs available, using compositor default")
	}

	m := placement.LayerMargins(p.cfg.Position, p.cfg.Size, screen)
	layershell.SetMargin(win, layershell.LayerShellEdgeTop, m.Top)
	layershell.SetMargin(win, layershell.LayerShellEdgeLeft, m.Left)

	p.logger.Debug("layer-shell placement", "top", m.Top, "left", m.Left)
}

func (p *layerPlacer) Mapped(*gtk.Window) {}

// defaultPlacer leaves placement to the toolkit.
type defaultPlacer struct {
	backend placement.Backend
	logger  *slog.Logger
}

func (p *defaultPlacer) Prepare(*gtk.Window) {
	p.logger.Warn("window placement not supported on this backend, using defaults",
		"backend", p.backend.String(),
	)
}

func (p *defaultPlacer) Mapped(*gtk.Window) {}
