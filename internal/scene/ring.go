// Package scene drives the ring scan: it samples a meridian ring of the unit
// sphere, spins it about the y axis with an animation clock, and colours
// each point from its sphere coordinates.
package scene

import (
	"image/color"
	"math"

	"ringscan/internal/mathutil"
)

// DefaultRingCount gives a ring of 101 points.
const DefaultRingCount = 50

// Ring samples 2·Count+1 points on a meridian of the unit sphere.
type Ring struct {
	Count int
}

func (r Ring) Len() int {
	return 2*r.Count + 1
}

// Points fills dst with the ring rotated to angle t (radians about y).
// Heights are i/(Count+1) for i in [-Count, Count], so the poles are never
// sampled.
func (r Ring) Points(t float64, dst []mathutil.Vec3) []mathutil.Vec3 {
	n := r.Len()
	if cap(dst) < n {
		dst = make([]mathutil.Vec3, n)
	}
	dst = dst[:n]

	sin, cos := math.Sincos(t)
	for i := -r.Count; i <= r.Count; i++ {
		hgt := float64(i) / float64(r.Count+1)
		mag := math.Sqrt(1 - hgt*hgt)
		dst[i+r.Count] = mathutil.Vec3{mag * sin, hgt, mag * cos}
	}
	return dst
}

// PointColor maps unit-sphere coordinates to RGB: round(127·c + 127) per
// channel. ok is false when a coordinate lies outside [-1, 1].
func PointColor(v mathutil.Vec3) (c color.NRGBA, ok bool) {
	for _, x := range v {
		if !(x >= -1 && x <= 1) {
			return color.NRGBA{}, false
		}
	}
	return color.NRGBA{
		R: uint8(math.Round(127*v[0] + 127)),
		G: uint8(math.Round(127*v[1] + 127)),
		B: uint8(math.Round(127*v[2] + 127)),
		A: 0xFF,
	}, true
}
