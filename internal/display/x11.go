package display

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gdkx11/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/glassyclock/internal/config"
	"github.com/jmylchreest/glassyclock/internal/face"
	"github.com/jmylchreest/glassyclock/internal/placement"
)

const (
	// allDesktops is the _NET_WM_DESKTOP value for "sticky".
	allDesktops = 0xFFFFFFFF
	// sourcePager marks EWMH requests as coming from a pager, which window
	// managers honor without focus-stealing checks.
	sourcePager = 2

	blurRegionProperty = "_KDE_NET_WM_BLUR_BEHIND_REGION"
)

var errNoNativeWindow = errors.New("window has no native surface yet")

// x11Conn is a second connection to the X server used for EWMH requests
// GTK4 no longer offers.
type x11Conn struct {
	xu *xgbutil.XUtil

	shapeReady bool
	shapeErr   error
}

func dialX11() (*x11Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	return &x11Conn{xu: xu}, nil
}

func (c *x11Conn) Close() {
	c.xu.Conn().Close()
}

// initShape loads the SHAPE extension on first use.
func (c *x11Conn) initShape() error {
	if !c.shapeReady {
		c.shapeReady = true
		if err := shape.Init(c.xu.Conn()); err != nil {
			c.shapeErr = fmt.Errorf("SHAPE extension unavailable: %w", err)
		}
	}
	return c.shapeErr
}

// workarea returns the panel-free area of the current desktop.
func (c *x11Conn) workarea() (placement.Rect, bool) {
	areas, err := ewmh.WorkareaGet(c.xu)
	if err != nil || len(areas) == 0 {
		return placement.Rect{}, false
	}
	desk, err := ewmh.CurrentDesktopGet(c.xu)
	if err != nil || int(desk) >= len(areas) {
		desk = 0
	}
	a := areas[desk]
	return placement.Rect{X: a.X, Y: a.Y, Width: int(a.Width), Height: int(a.Height)}, true
}

// windowXID returns the X window behind win once it is realized.
func windowXID(win *gtk.Window) (xproto.Window, bool) {
	if !win.Realized() {
		return 0, false
	}
	surface, ok := win.Surface().(*gdkx11.X11Surface)
	if !ok || surface == nil {
		return 0, false
	}
	return surfaceXID(surface), true
}

// x11Placer keeps the window out of taskbars and pagers, below other
// windows and on every desktop, then moves it into the work area.
type x11Placer struct {
	conn    *x11Conn
	cfg     config.ClockConfig
	display *gdk.Display
	logger  *slog.Logger
}

func (p *x11Placer) Prepare(*gtk.Window) {}

func (p *x11Placer) Mapped(win *gtk.Window) {
	xid, ok := windowXID(win)
	if !ok {
		p.logger.Warn("no X11 window for clock, skipping placement")
		return
	}

	states := [][2]string{
		{"_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_SKIP_PAGER"},
		{"_NET_WM_STATE_BELOW", "_KDE_NET_WM_STATE_SKIP_SWITCHER"},
	}
	for _, s := range states {
		if err := ewmh.WmStateReqExtra(p.conn.xu, xid, ewmh.StateAdd, s[0], s[1], sourcePager); err != nil {
			p.logger.Warn("failed to set window state", "states", s, "error", err)
		}
	}
	if err := ewmh.WmDesktopReqExtra(p.conn.xu, xid, allDesktops, sourcePager); err != nil {
		p.logger.Warn("failed to show window on all desktops", "error", err)
	}

	if !p.cfg.Position.Explicit() {
		return
	}

	pos, _ := placement.ClampX11(p.cfg.Position, p.cfg.Size, p.currentScreen(win))
	xwindow.New(p.conn.xu, xid).Move(pos.X, pos.Y)

	p.logger.Debug("x11 placement", "x", pos.X, "y", pos.Y, "requested", p.cfg.Position)
}

// currentScreen describes the monitor the window is on, with its
// available area cut down to the desktop work area.
func (p *x11Placer) currentScreen(win *gtk.Window) *placement.Screen {
	if p.display == nil {
		return nil
	}
	m := p.display.MonitorAtSurface(win.Surface())
	if m == nil {
		return nil
	}

	wa, ok := p.conn.workarea()
	s := withWorkarea(screenFromMonitor(m), wa, ok)
	return &s
}

// withWorkarea narrows the screen's available area to the part of the
// desktop work area on that screen. Without a work area, or when it does
// not overlap the screen, the whole screen stays available.
func withWorkarea(s placement.Screen, wa placement.Rect, ok bool) placement.Screen {
	if !ok {
		return s
	}
	if avail := s.Geometry.Intersect(wa); !avail.Empty() {
		s.Available = avail
	}
	return s
}

// BlurBehind registers the region the compositor should blur.
type BlurBehind interface {
	Enable(win *gtk.Window, region []face.Rect) error
	Disable(win *gtk.Window) error
}

// x11Blur uses the KWin blur-behind window property, which other
// compositors such as picom also honor.
type x11Blur struct {
	conn *x11Conn
}

func (b *x11Blur) Enable(win *gtk.Window, region []face.Rect) error {
	xid, ok := windowXID(win)
	if !ok {
		return errNoNativeWindow
	}

	vals := make([]uint, 0, len(region)*4)
	for _, r := range region {
		vals = append(vals, uint(r.X), uint(r.Y), uint(r.W), uint(r.H))
	}
	return xprop.ChangeProp32(b.conn.xu, xid, blurRegionProperty, "CARDINAL", vals...)
}

func (b *x11Blur) Disable(win *gtk.Window) error {
	xid, ok := windowXID(win)
	if !ok {
		return nil
	}
	atom, err := xprop.Atm(b.conn.xu, blurRegionProperty)
	if err != nil {
		return err
	}
	return xproto.DeletePropertyChecked(b.conn.xu.Conn(), xid, atom).Check()
}

// WindowShape limits the window's visible area to a region.
type WindowShape interface {
	Apply(win *gtk.Window, region []face.Rect) error
}

// x11Shape sets the bounding shape of the window, so without a
// compositor only the face is drawn.
type x11Shape struct {
	conn *x11Conn
}

func (s *x11Shape) Apply(win *gtk.Window, region []face.Rect) error {
	xid, ok := windowXID(win)
	if !ok {
		return errNoNativeWindow
	}
	if err := s.conn.initShape(); err != nil {
		return err
	}
	return shape.RectanglesChecked(s.conn.xu.Conn(), shape.SoSet, shape.SkBounding,
		xproto.ClipOrderingUnsorted, xid, 0, 0, xRectangles(region)).Check()
}

func xRectangles(region []face.Rect) []xproto.Rectangle {
	rects := make([]xproto.Rectangle, 0, len(region))
	for _, r := range region {
		if r.Empty() {
			continue
		}
		rects = append(rects, xproto.Rectangle{
			X:      int16(r.X),
			Y:      int16(r.Y),
			Width:  uint16(r.W),
			Height: uint16(r.H),
		})
	}
	return rects
}

// noShape leaves the window rectangular; the renderer's clip and a
// transparent background already hide everything outside the face.
type noShape struct{}

func (noShape) Apply(*gtk.Window, []face.Rect) error { return nil }

// noBlur is used where no blur protocol is reachable.
type noBlur struct {
	logger *slog.Logger
	warned bool
}

func (b *noBlur) Enable(*gtk.Window, []face.Rect) error {
	if !b.warned {
		b.warned = true
		b.logger.Debug("blur-behind not available on this backend")
	}
	return nil
}

func (b *noBlur) Disable(*gtk.Window) error { return nil }
