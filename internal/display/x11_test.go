package display

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/glassyclock/internal/face"
	"github.com/jmylchreest/glassyclock/internal/placement"
)

func TestWithWorkarea(t *testing.T) {
	monitor := placement.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}
	screen := placement.Screen{Name: "HDMI-1", Geometry: monitor, Available: monitor}

	t.Run("panel on the screen", func(t *testing.T) {
		wa := placement.Rect{X: 0, Y: 32, Width: 3840, Height: 1048}
		got := withWorkarea(screen, wa, true)
		assert.Equal(t, placement.Rect{X: 1920, Y: 32, Width: 1920, Height: 1048}, got.Available)
		assert.Equal(t, monitor, got.Geometry)
	})

	t.Run("no work area", func(t *testing.T) {
		assert.Equal(t, screen, withWorkarea(screen, placement.Rect{}, false))
	})

	t.Run("work area on another screen", func(t *testing.T) {
		wa := placement.Rect{X: 0, Y: 0, Width: 1920, Height: 1050}
		assert.Equal(t, monitor, withWorkarea(screen, wa, true).Available)
	})
}

func TestXRectangles(t *testing.T) {
	region := []face.Rect{
		{X: 75, Y: 0, W: 10, H: 1},
		{X: 0, Y: 1, W: 0, H: 1},
		{X: 70, Y: 1, W: 20, H: 2},
	}
	assert.Equal(t, []xproto.Rectangle{
		{X: 75, Y: 0, Width: 10, Height: 1},
		{X: 70, Y: 1, Width: 20, Height: 2},
	}, xRectangles(region))
}

func TestXRectangles_MaskCoversFace(t *testing.T) {
	mask := face.Mask(300, 150)
	rects := xRectangles(face.EllipseStrips(mask.Bounds()))

	rows := 0
	for _, r := range rects {
		assert.GreaterOrEqual(t, int(r.X), 75)
		assert.LessOrEqual(t, int(r.X)+int(r.Width), 225)
		rows += int(r.Height)
	}
	assert.Equal(t, 150, rows)
}
