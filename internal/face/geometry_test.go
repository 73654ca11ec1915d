package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	m := Mask(300, 150)
	assert.Equal(t, 150, m.Diameter)
	assert.Equal(t, 150.0, m.CX)
	assert.Equal(t, 75.0, m.CY)
	assert.Equal(t, 75.0, m.Radius())

	sq := Mask(200, 200)
	assert.Equal(t, 200, sq.Diameter)
	assert.Equal(t, 100.0, sq.CX)
	assert.Equal(t, 100.0, sq.CY)
}

func TestMaskBounds(t *testing.T) {
	assert.Equal(t, Rect{X: 75, Y: 0, W: 150, H: 150}, Mask(300, 150).Bounds())
	assert.Equal(t, Rect{X: 0, Y: 0, W: 200, H: 200}, Mask(200, 200).Bounds())
	assert.Equal(t, Rect{X: 0, Y: 25, W: 101, H: 101}, Mask(101, 151).Bounds())
}

func TestScale(t *testing.T) {
	assert.Equal(t, 1.0, Scale(200, 200))
	assert.Equal(t, 0.5, Scale(100, 400))
	assert.Equal(t, 2.0, Scale(400, 500))
}

func TestBlurBounds(t *testing.T) {
	// side 200, f = 4 -> (2, 2, 195, 195)
	assert.Equal(t, Rect{X: 2, Y: 2, W: 195, H: 195}, BlurBounds(200, 200))

	// side 150 on a wide window, f = 3: (76.5, 1.5, 146, 146)
	r := BlurBounds(300, 150)
	assert.Equal(t, Rect{X: 77, Y: 2, W: 146, H: 146}, r)

	// f = 6.66: (3.33, 3.33, 325.34, 325.34)
	assert.Equal(t, Rect{X: 3, Y: 3, W: 326, H: 326}, BlurBounds(333, 333))
}

func TestRoundRect(t *testing.T) {
	assert.Equal(t, Rect{X: 1, Y: 2, W: 10, H: 10}, roundRect(1.0, 2.0, 10.0, 10.0))
	// origin rounds up, size gives back half the shift
	assert.Equal(t, Rect{X: 3, Y: 3, W: 9, H: 9}, roundRect(2.6, 2.6, 9.4, 9.4))
	// origin rounds down, size takes half the shift
	assert.Equal(t, Rect{X: 2, Y: 2, W: 10, H: 10}, roundRect(2.4, 2.4, 9.4, 9.4))
}

func TestBlurBounds_InsideMask(t *testing.T) {
	for _, size := range []int{100, 137, 200, 512} {
		r := BlurBounds(size, size)
		assert.GreaterOrEqual(t, r.X, 0)
		assert.GreaterOrEqual(t, r.Y, 0)
		assert.LessOrEqual(t, r.X+r.W, size)
		assert.LessOrEqual(t, r.Y+r.H, size)
	}
}

func TestEllipseStrips_Empty(t *testing.T) {
	assert.Nil(t, EllipseStrips(Rect{}))
	assert.Nil(t, EllipseStrips(Rect{X: 5, Y: 5, W: 0, H: 10}))
}

func TestEllipseStrips_CoverCircle(t *testing.T) {
	bounds := Rect{X: 10, Y: 20, W: 100, H: 100}
	strips := EllipseStrips(bounds)
	require.NotEmpty(t, strips)

	rows := 0
	widest := 0
	for _, s := range strips {
		assert.GreaterOrEqual(t, s.X, bounds.X)
		assert.LessOrEqual(t, s.X+s.W, bounds.X+bounds.W)
		assert.GreaterOrEqual(t, s.Y, bounds.Y)
		assert.LessOrEqual(t, s.Y+s.H, bounds.Y+bounds.H)
		rows += s.H
		widest = max(widest, s.W)
	}

	assert.Equal(t, bounds.H, rows)
	assert.InDelta(t, bounds.W, widest, 1)

	// strips are ordered top to bottom without overlap
	for i := 1; i < len(strips); i++ {
		assert.Equal(t, strips[i-1].Y+strips[i-1].H, strips[i].Y)
	}
}

func TestEllipseStrips_Symmetric(t *testing.T) {
	strips := EllipseStrips(Rect{X: 0, Y: 0, W: 40, H: 40})
	first, last := strips[0], strips[len(strips)-1]
	assert.Equal(t, first.W, last.W)
	assert.Equal(t, first.X, last.X)
}

func TestHandsFitInsideBorder(t *testing.T) {
	for _, h := range []RoundedRect{HourHand, MinuteHand, SecondHand} {
		assert.Greater(t, -h.Y, 0.0)
		assert.Less(t, -h.Y, BorderRadius)
		assert.LessOrEqual(t, h.R*2, h.W)
	}
	assert.Less(t, MarkOuter, BorderRadius)
}
