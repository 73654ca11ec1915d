package clock

import (
	"math"
	"time"
)

// HandAngles holds clockwise rotations in degrees from twelve o'clock.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AnglesAt returns the hand angles for t.
// The second hand is rounded to the nearest whole second.
func AnglesAt(t time.Time) HandAngles {
	h, m, s := t.Clock()
	ms := MillisWithinSecond(t)

	second := s
	if ms >= 500 {
		second++
	}

	return HandAngles{
		Hour:   normalize(30.0 * (float64(h) + float64(m)/60.0)),
		Minute: normalize(6.0 * (float64(m) + float64(s)/60.0)),
		Second: normalize(6.0 * float64(second)),
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}
