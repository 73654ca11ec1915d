package display

import (
	"log/slog"
	"unsafe"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"

	"github.com/jmylchreest/glassyclock/internal/placement"
)

// monitorScreen pairs a GDK monitor with its placement view.
type monitorScreen struct {
	screen  placement.Screen
	monitor *gdk.Monitor
}

// listMonitors returns every monitor known to display.
func listMonitors(display *gdk.Display, logger *slog.Logger) []monitorScreen {
	if display == nil {
		return nil
	}

	monitors := display.Monitors()
	if monitors == nil {
		logger.Warn("no monitors list available")
		return nil
	}

	out := make([]monitorScreen, 0, monitors.NItems())
	for i := uint(0); i < monitors.NItems(); i++ {
		m := wrapMonitor(monitors.Item(i))
		if m == nil {
			continue
		}
		out = append(out, monitorScreen{screen: screenFromMonitor(m), monitor: m})
	}
	return out
}

// pickMonitor selects the monitor named name, or the leftmost/topmost one.
func pickMonitor(monitors []monitorScreen, name string) (monitorScreen, bool) {
	screens := make([]placement.Screen, len(monitors))
	for i, m := range monitors {
		screens[i] = m.screen
	}

	target, ok := placement.SelectScreen(screens, name)
	if !ok {
		return monitorScreen{}, false
	}
	for _, m := range monitors {
		if m.screen == target {
			return m, true
		}
	}
	return monitorScreen{}, false
}

// screenFromMonitor converts a monitor. GDK does not report panel struts
// per monitor, so the available area starts out as the whole monitor.
func screenFromMonitor(m *gdk.Monitor) placement.Screen {
	g := m.Geometry()
	r := placement.Rect{X: g.X(), Y: g.Y(), Width: g.Width(), Height: g.Height()}
	return placement.Screen{
		Name:      m.Connector(),
		Geometry:  r,
		Available: r,
	}
}

// wrapMonitor wraps a list model item as a gdk.Monitor.
// gotk4 does not expose its internal wrapper, but gdk.Monitor is a struct
// embedding *glib.Object, so the layout can be reproduced here.
func wrapMonitor(obj *glib.Object) *gdk.Monitor {
	if obj == nil {
		return nil
	}
	type monitor struct {
		_ [0]func()
		*glib.Object
	}
	m := &monitor{Object: obj}
	return (*gdk.Monitor)(unsafe.Pointer(m))
}
