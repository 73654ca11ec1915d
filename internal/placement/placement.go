// Package placement decides where the clock window goes when it is first
// shown. It knows nothing about GTK: screens are plain rectangles and the
// result is either an absolute position (X11) or top/left layer-shell
// margins (Wayland).
package placement

import (
	"sort"
	"strings"
)

// Backend identifies the display protocol family the window is shown on.
type Backend int

const (
	BackendUnknown Backend = iota
	// BackendX11 is a legacy X11 session managed through EWMH hints.
	BackendX11
	// BackendLayerShell is a Wayland compositor with wlr-layer-shell.
	BackendLayerShell
)

// String returns the backend name used in logs.
func (b Backend) String() string {
	switch b {
	case BackendX11:
		return "x11"
	case BackendLayerShell:
		return "wayland"
	default:
		return "unknown"
	}
}

// DetectBackend maps a platform or GDK display type name to a Backend.
// Both short names ("x11", "xcb", "wayland") and GDK type names
// ("GdkX11Display", "GdkWaylandDisplay") are accepted.
func DetectBackend(name string) Backend {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "wayland"):
		return BackendLayerShell
	case strings.Contains(n, "x11"), n == "xcb":
		return BackendX11
	default:
		return BackendUnknown
	}
}

// MinSize is the smallest clock edge length in pixels.
const MinSize = 100

// EffectiveSize clamps a requested clock size to MinSize.
func EffectiveSize(requested int) int {
	return max(requested, MinSize)
}

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Unset is the position that leaves placement to the window system.
var Unset = Point{X: -1, Y: -1}

// Explicit reports whether both coordinates were requested.
func (p Point) Explicit() bool {
	return p.X >= 0 && p.Y >= 0
}

// Rect is a pixel rectangle in global desktop coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Intersect returns the overlap of r and o, or a zero Rect if they do not
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Screen is one monitor as seen by the placement logic.
type Screen struct {
	Name string
	// Geometry is the whole monitor.
	Geometry Rect
	// Available is the part not covered by panels. It equals Geometry when
	// the window system does not report work areas.
	Available Rect
}

// Margins are layer-shell offsets from the anchored top-left corner.
type Margins struct {
	Top, Left int
}

// ClampX11 returns the absolute position for a size x size window
// requested at pos on screen, and whether the window should be moved at
// all. A non-explicit position is left to the window manager.
func ClampX11(pos Point, size int, screen *Screen) (Point, bool) {
	if !pos.Explicit() {
		return pos, false
	}
	if screen == nil {
		return pos, true
	}
	s := EffectiveSize(size)
	ag := screen.Available
	return Point{
		X: clamp(pos.X, ag.X, ag.X+ag.Width-s),
		Y: clamp(pos.Y, ag.Y, ag.Y+ag.Height-s),
	}, true
}

// LayerMargins returns the top/left margins placing a size x size surface
// at pos relative to the top-left corner of screen. The offset is clamped
// into the available area, measured from the monitor origin.
func LayerMargins(pos Point, size int, screen *Screen) Margins {
	if !pos.Explicit() {
		return Margins{}
	}
	if screen == nil {
		return Margins{Top: pos.Y, Left: pos.X}
	}
	s := EffectiveSize(size)
	g, ag := screen.Geometry, screen.Available
	left := ag.X - g.X
	top := ag.Y - g.Y
	return Margins{
		Left: clamp(pos.X, left, left+ag.Width-s),
		Top:  clamp(pos.Y, top, top+ag.Height-s),
	}
}

// Less orders screens so the leftmost or topmost comes first. When two
// origins are further apart horizontally than vertically the one further
// left wins, otherwise the higher one.
func Less(a, b Screen) bool {
	dx := abs(a.Geometry.X - b.Geometry.X)
	dy := abs(a.Geometry.Y - b.Geometry.Y)
	if dx > dy {
		return a.Geometry.X < b.Geometry.X
	}
	return a.Geometry.Y < b.Geometry.Y
}

// SelectScreen picks the target screen: the one named name if present,
// otherwise the first under Less. It returns false for an empty list.
func SelectScreen(screens []Screen, name string) (Screen, bool) {
	if len(screens) == 0 {
		return Screen{}, false
	}
	if name != "" {
		for _, s := range screens {
			if s.Name == name {
				return s, true
			}
		}
	}

	sorted := make([]Screen, len(screens))
	copy(sorted, screens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted[0], true
}

// clamp keeps v within [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
