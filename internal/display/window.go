package display

import (
	"errors"
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/glassyclock/internal/config"
	"github.com/jmylchreest/glassyclock/internal/face"
	"github.com/jmylchreest/glassyclock/internal/theme"
)

// WindowTitle is the title reported to the window manager.
const WindowTitle = "Glassy Analog Clock"

// ClockWindow is the frameless, click-through window holding the face.
type ClockWindow struct {
	window   *gtk.Window
	area     *gtk.DrawingArea
	renderer *Renderer
	placer   Placer
	blur     BlurBehind
	shape    WindowShape
	logger   *slog.Logger

	size   int
	mask   face.Circle
	shown  bool
	mapped bool
	blurOn bool
	closed bool
}

// NewClockWindow builds the window for cfg. Nothing is shown until Show.
func NewClockWindow(app *gtk.Application, cfg config.ClockConfig, renderer *Renderer, svc backendServices, logger *slog.Logger) *ClockWindow {
	if logger == nil {
		logger = slog.Default()
	}

	w := &ClockWindow{
		renderer: renderer,
		placer:   svc.placer,
		blur:     svc.blur,
		shape:    svc.shape,
		logger:   logger,
		size:     cfg.EffectiveSize(),
	}

	w.window = gtk.NewWindow()
	w.window.SetApplication(app)
	w.window.SetTitle(WindowTitle)
	w.window.SetDecorated(false)
	w.window.SetResizable(false)
	w.window.SetCanFocus(false)
	w.window.AddCSSClass(theme.WindowClass)
	w.window.SetDefaultSize(w.size, w.size)

	w.area = gtk.NewDrawingArea()
	w.area.SetContentWidth(w.size)
	w.area.SetContentHeight(w.size)
	w.area.SetCanTarget(false)
	w.area.SetDrawFunc(func(_ *gtk.DrawingArea, cr *cairo.Context, width, height int) {
		w.draw(cr, width, height)
	})
	w.area.ConnectResize(w.resized)
	w.window.SetChild(w.area)

	w.window.ConnectRealize(w.applyInputRegion)
	w.window.ConnectMap(w.onMap)

	return w
}

// Size returns the effective edge length in pixels.
func (w *ClockWindow) Size() int {
	return w.size
}

// Show presents the window, placing it the first time.
func (w *ClockWindow) Show() {
	if w.closed {
		return
	}
	if !w.shown {
		w.shown = true
		w.placer.Prepare(w.window)
	}
	w.window.Present()
}

// Redraw schedules a repaint of the face.
func (w *ClockWindow) Redraw() {
	if w.closed {
		return
	}
	w.area.QueueDraw()
}

// SetAppearance changes colors and effects and repaints.
func (w *ClockWindow) SetAppearance(a config.Appearance) {
	w.renderer.SetAppearance(a)
	w.Redraw()
}

// Close clears the blur registration and destroys the window.
func (w *ClockWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true

	if w.blurOn {
		if err := w.blur.Disable(w.window); err != nil {
			w.logger.Debug("failed to clear blur region", "error", err)
		}
		w.blurOn = false
	}
	w.window.Close()
}

func (w *ClockWindow) onMap() {
	if w.mapped {
		return
	}
	w.mapped = true
	w.placer.Mapped(w.window)
	w.applyInputRegion()
	w.applyShape()
}

// resized recomputes the visible mask for the new allocation.
func (w *ClockWindow) resized(width, height int) {
	w.mask = face.Mask(width, height)
	w.logger.Debug("clock resized",
		"width", width,
		"height", height,
		"mask_diameter", w.mask.Diameter,
	)
	w.applyInputRegion()
	w.applyShape()
	w.area.QueueDraw()
}

// applyInputRegion makes the whole window transparent to pointer input.
func (w *ClockWindow) applyInputRegion() {
	if !w.window.Realized() {
		return
	}
	surface := w.window.Surface()
	if surface == nil {
		return
	}
	region, err := passThroughRegion()
	if err != nil {
		w.logger.Warn("failed to create input region", "error", err)
		return
	}
	gdk.BaseSurface(surface).SetInputRegion(region)
}

// passThroughRegion is an input region that accepts no pointer events.
func passThroughRegion() (*cairo.Region, error) {
	return cairo.RegionCreate()
}

// applyShape cuts the window down to the face circle.
func (w *ClockWindow) applyShape() {
	if w.mask.Diameter <= 0 {
		return
	}
	region := face.EllipseStrips(w.mask.Bounds())
	if err := w.shape.Apply(w.window, region); err != nil {
		if errors.Is(err, errNoNativeWindow) {
			return
		}
		w.logger.Debug("failed to shape window", "error", err)
	}
}

func (w *ClockWindow) draw(cr *cairo.Context, width, height int) {
	w.renderer.Draw(cr, width, height)
	w.updateBlur(width, height)
}

// updateBlur keeps the compositor blur region in step with the face.
func (w *ClockWindow) updateBlur(width, height int) {
	if !w.renderer.Appearance().Blur {
		if w.blurOn {
			if err := w.blur.Disable(w.window); err != nil {
				w.logger.Debug("failed to clear blur region", "error", err)
			}
			w.blurOn = false
		}
		return
	}

	region := face.EllipseStrips(face.BlurBounds(width, height))
	if err := w.blur.Enable(w.window, region); err != nil {
		if errors.Is(err, errNoNativeWindow) {
			return
		}
		w.logger.Debug("failed to set blur region", "error", err)
		return
	}
	w.blurOn = true
}
