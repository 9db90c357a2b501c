package scene

import (
	"image/color"

	"ringscan/internal/mathutil"
)

// Sample is one ring point for the current frame.
type Sample struct {
	Sphere mathutil.Vec3 // unit-sphere position, source of the colour
	World  mathutil.Vec3 // after the model transform
	Color  color.NRGBA
}

// Scene owns the ring, the clock and the model transform.
type Scene struct {
	Ring  Ring
	Clock Clock
	Model mathutil.Mat34

	// Fixed overrides the per-point colour when non-nil.
	Fixed *color.NRGBA

	pts     []mathutil.Vec3
	samples []Sample
}

// New returns a scene with the default clock and an identity model.
func New(count int) *Scene {
	return &Scene{
		Ring:  Ring{Count: count},
		Clock: DefaultClock(),
		Model: mathutil.Mat34Identity(),
	}
}

// Next advances the clock and returns the frame's samples with their angle.
// The returned slice is reused by the following call.
func (s *Scene) Next() ([]Sample, float64) {
	t := s.Clock.Tick()
	return s.At(t), t
}

// At samples the ring at angle t without touching the clock.
func (s *Scene) At(t float64) []Sample {
	s.pts = s.Ring.Points(t, s.pts)
	if cap(s.samples) < len(s.pts) {
		s.samples = make([]Sample, len(s.pts))
	}
	s.samples = s.samples[:len(s.pts)]

	for i, p := range s.pts {
		c, ok := PointColor(p)
		if s.Fixed != nil {
			c, ok = *s.Fixed, true
		}
		if !ok {
			c = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
		}
		s.samples[i] = Sample{Sphere: p, World: s.Model.MulPoint(p), Color: c}
	}
	return s.samples
}
