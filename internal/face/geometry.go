// Package face describes the clock face in design units and derives the
// pixel-space shapes the window needs: its clip mask and the region handed
// to the compositor for blur-behind.
package face

import (
	"math"
)

// DesignSize is the width and height of the design coordinate space.
// Drawing happens with the origin at the center, so coordinates run from
// -DesignSize/2 to DesignSize/2.
const DesignSize = 200.0

// Shapes in design units, hands pointing at twelve o'clock.
var (
	HourHand   = RoundedRect{X: -3, Y: -50, W: 6, H: 42, R: 3}
	MinuteHand = RoundedRect{X: -3, Y: -75, W: 6, H: 67, R: 3}
	SecondHand = RoundedRect{X: -2, Y: -80, W: 4, H: 72, R: 2}
)

const (
	BorderRadius    = 97.0
	BorderWidth     = 2.0
	MarkInner       = 88.0
	MarkOuter       = 90.0
	MarkWidth       = 4.0
	MarkCount       = 12
	CenterRadius    = 9.0
	CenterLineWidth = 4.0
)

// BorderGradient is the radial gradient applied to the border ring.
var BorderGradient = Gradient{
	CX: -20, CY: -90, Radius: 180,
	Stops: []Stop{
		{Offset: 0, R: 0.4, G: 0.4, B: 0.4, A: 0.95},
		{Offset: 0.4, R: 0.35, G: 0.35, B: 0.35, A: 0.95},
		{Offset: 1, R: 0.3, G: 0.3, B: 0.3, A: 0.95},
	},
}

// RoundedRect is a rectangle with uniformly rounded corners.
type RoundedRect struct {
	X, Y, W, H, R float64
}

// Gradient is a radial gradient centered on (CX, CY).
type Gradient struct {
	CX, CY, Radius float64
	Stops          []Stop
}

// Stop is a color stop with components in [0,1].
type Stop struct {
	Offset     float64
	R, G, B, A float64
}

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Circle is a pixel-space circle.
type Circle struct {
	CX, CY   float64
	Diameter int
}

// Radius returns half the diameter.
func (c Circle) Radius() float64 {
	return float64(c.Diameter) / 2
}

// Bounds returns the pixel square enclosing the circle.
func (c Circle) Bounds() Rect {
	half := c.Diameter / 2
	return Rect{
		X: int(c.CX) - half,
		Y: int(c.CY) - half,
		W: c.Diameter,
		H: c.Diameter,
	}
}

// Side returns the length of the largest square that fits width x height.
func Side(width, height int) int {
	return min(width, height)
}

// Scale returns the factor mapping design units onto a width x height area.
func Scale(width, height int) float64 {
	return float64(Side(width, height)) / DesignSize
}

// Mask returns the circular region that forms the visible clock face.
func Mask(width, height int) Circle {
	return Circle{
		CX:       float64(width) / 2,
		CY:       float64(height) / 2,
		Diameter: Side(width, height),
	}
}

// BlurBounds returns the bounding box of the elliptical blur-behind area.
// It is inset slightly from the mask so the blur never bleeds past the
// border ring.
func BlurBounds(width, height int) Rect {
	side := float64(Side(width, height))
	f := 0.02 * side
	return roundRect(
		(float64(width)-side+f)/2,
		(float64(height)-side+f)/2,
		side-f-1,
		side-f-1,
	)
}

// roundRect snaps a fractional rectangle to pixels. The origin is rounded
// to the nearest pixel and the size absorbs half of that shift, which
// keeps both edges within 0.75 px of their exact positions.
func roundRect(x, y, w, h float64) Rect {
	rx := math.Round(x)
	ry := math.Round(y)
	return Rect{
		X: int(rx),
		Y: int(ry),
		W: int(math.Round(w + (x-rx)/2)),
		H: int(math.Round(h + (y-ry)/2)),
	}
}

// EllipseStrips approximates the ellipse inscribed in r by one horizontal
// strip per pixel row. Adjacent rows with identical extents are merged.
// Compositor blur regions are lists of rectangles, so this is the form
// they are registered in.
func EllipseStrips(r Rect) []Rect {
	if r.Empty() {
		return nil
	}

	a := float64(r.W) / 2
	b := float64(r.H) / 2
	cx := float64(r.X) + a

	var strips []Rect
	for row := 0; row < r.H; row++ {
		// sample at the middle of the pixel row
		dy := (float64(row) + 0.5 - b) / b
		span := 1 - dy*dy
		if span <= 0 {
			continue
		}
		half := a * math.Sqrt(span)
		x0 := int(math.Round(cx - half))
		x1 := int(math.Round(cx + half))
		if x1 <= x0 {
			continue
		}
		y := r.Y + row

		if n := len(strips); n > 0 {
			last := &strips[n-1]
			if last.X == x0 && last.W == x1-x0 && last.Y+last.H == y {
				last.H++
				continue
			}
		}
		strips = append(strips, Rect{X: x0, Y: y, W: x1 - x0, H: 1})
	}
	return strips
}
