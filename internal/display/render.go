package display

import (
	"log/slog"
	"math"

	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gdkpixbuf/v2"

	"github.com/jmylchreest/glassyclock/internal/clock"
	"github.com/jmylchreest/glassyclock/internal/config"
	"github.com/jmylchreest/glassyclock/internal/face"
	"github.com/jmylchreest/glassyclock/internal/theme"
)

// Renderer paints the clock face for the current instant.
type Renderer struct {
	clock      clock.Clock
	appearance config.Appearance
	logger     *slog.Logger

	faceSVG []byte
	// face image rasterized for faceW x faceH
	face         *gdkpixbuf.Pixbuf
	faceW, faceH int
	faceFailed   bool
}

// NewRenderer creates a renderer reading time from c.
func NewRenderer(c clock.Clock, appearance config.Appearance, logger *slog.Logger) *Renderer {
	if c == nil {
		c = clock.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		clock:      c,
		appearance: appearance,
		logger:     logger,
		faceSVG:    theme.FaceSVG(),
	}
}

// Appearance returns the current look.
func (r *Renderer) Appearance() config.Appearance {
	return r.appearance
}

// SetAppearance replaces colors and effects for subsequent frames.
func (r *Renderer) SetAppearance(a config.Appearance) {
	r.appearance = a
}

// Draw paints one frame into a width x height area.
func (r *Renderer) Draw(cr *cairo.Context, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	mask := face.Mask(width, height)
	angles := clock.AnglesAt(r.clock.Now())

	cr.Save()
	defer cr.Restore()

	// keep everything inside the round face
	cr.NewPath()
	cr.Arc(mask.CX, mask.CY, mask.Radius(), 0, 2*math.Pi)
	cr.Clip()

	if r.appearance.ShowFace {
		r.paintFace(cr, width, height)
	}

	cr.Translate(float64(width/2), float64(height/2))
	scale := face.Scale(width, height)
	cr.Scale(scale, scale)

	hour := r.appearance.Hour
	r.drawBorder(cr)
	r.drawHand(cr, face.HourHand, angles.Hour, hour)
	r.drawMarks(cr, hour)
	r.drawHand(cr, face.MinuteHand, angles.Minute, hour)
	r.drawHand(cr, face.SecondHand, angles.Second, r.appearance.Second)
	r.drawCenter(cr, hour)
}

func (r *Renderer) paintFace(cr *cairo.Context, width, height int) {
	pixbuf := r.facePixbuf(width, height)
	if pixbuf == nil {
		return
	}
	cr.Save()
	gdk.CairoSetSourcePixbuf(cr, pixbuf, 0, 0)
	cr.Paint()
	cr.Restore()
}

// facePixbuf rasterizes the face SVG at the requested size, reusing the
// last result while the size is unchanged.
func (r *Renderer) facePixbuf(width, height int) *gdkpixbuf.Pixbuf {
	if r.face != nil && r.faceW == width && r.faceH == height {
		return r.face
	}
	if r.faceFailed {
		return nil
	}

	loader, err := gdkpixbuf.NewPixbufLoaderWithType("svg")
	if err != nil {
		r.faceFailed = true
		r.logger.Warn("svg loader unavailable, drawing without face image", "error", err)
		return nil
	}
	loader.SetSize(width, height)
	if err := loader.Write(r.faceSVG); err != nil {
		r.faceFailed = true
		r.logger.Warn("failed to load face image", "error", err)
		return nil
	}
	if err := loader.Close(); err != nil {
		r.faceFailed = true
		r.logger.Warn("failed to load face image", "error", err)
		return nil
	}

	r.face = loader.Pixbuf()
	r.faceW, r.faceH = width, height
	return r.face
}

func (r *Renderer) drawBorder(cr *cairo.Context) {
	g := face.BorderGradient
	pattern, err := cairo.NewPatternRadial(g.CX, g.CY, 0, g.CX, g.CY, g.Radius)
	if err != nil {
		r.logger.Debug("failed to create border gradient", "error", err)
		return
	}
	for _, s := range g.Stops {
		_ = pattern.AddColorStopRGBA(s.Offset, s.R, s.G, s.B, s.A)
	}

	cr.Save()
	cr.SetSource(pattern)
	cr.SetLineWidth(face.BorderWidth)
	cr.NewPath()
	cr.Arc(0, 0, face.BorderRadius, 0, 2*math.Pi)
	cr.Stroke()
	cr.Restore()
}

func (r *Renderer) drawHand(cr *cairo.Context, hand face.RoundedRect, deg float64, c config.RGBA) {
	cr.Save()
	cr.Rotate(clock.Radians(deg))
	setColor(cr, c)
	roundedRect(cr, hand)
	cr.Fill()
	cr.Restore()
}

// drawMarks paints the twelve hour marks. Each is a short stroke along
// the x axis with square caps, drawn here as the equivalent rectangle.
func (r *Renderer) drawMarks(cr *cairo.Context, c config.RGBA) {
	half := face.MarkWidth / 2
	cr.Save()
	setColor(cr, c)
	for i := 0; i < face.MarkCount; i++ {
		cr.NewPath()
		cr.Rectangle(face.MarkInner-half, -half, face.MarkOuter-face.MarkInner+face.MarkWidth, face.MarkWidth)
		cr.Fill()
		cr.Rotate(clock.Radians(360.0 / face.MarkCount))
	}
	cr.Restore()
}

func (r *Renderer) drawCenter(cr *cairo.Context, c config.RGBA) {
	cr.Save()
	setColor(cr, c)
	cr.SetLineWidth(face.CenterLineWidth)
	cr.NewPath()
	cr.Arc(0, 0, face.CenterRadius, 0, 2*math.Pi)
	cr.Stroke()
	cr.Restore()
}

func setColor(cr *cairo.Context, c config.RGBA) {
	cr.SetSourceRGBA(c.R, c.G, c.B, c.A)
}

func roundedRect(cr *cairo.Context, r face.RoundedRect) {
	x, y, w, h, rad := r.X, r.Y, r.W, r.H, r.R
	cr.NewPath()
	cr.Arc(x+w-rad, y+rad, rad, -math.Pi/2, 0)
	cr.Arc(x+w-rad, y+h-rad, rad, 0, math.Pi/2)
	cr.Arc(x+rad, y+h-rad, rad, math.Pi/2, math.Pi)
	cr.Arc(x+rad, y+rad, rad, math.Pi, 3*math.Pi/2)
	cr.ClosePath()
}
