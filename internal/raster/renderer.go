package raster

import (
	"ringscan/internal/mathutil"
	"ringscan/internal/projection"
	"ringscan/internal/scene"
)

// Renderer draws ring samples onto a FrameBuffer through a Projector.
// It keeps a scratch slice so steady-state frames do not allocate.
type Renderer struct {
	Proj *projection.Projector
	Fade FadeParams

	// PointScale multiplies the projected point size; set it to the
	// supersampling factor so points keep their footprint.
	PointScale float64

	world  []mathutil.Vec3
	screen []projection.ScreenPoint
}

// NewRenderer returns a renderer with the default fade and unit point scale.
func NewRenderer(p *projection.Projector) *Renderer {
	return &Renderer{Proj: p, Fade: DefaultFade(), PointScale: 1}
}

// RenderFrame fades the previous frame and paints one square per sample.
func (r *Renderer) RenderFrame(fb *FrameBuffer, samples []scene.Sample) {
	fb.Fade(r.Fade)

	r.world = r.world[:0]
	for _, s := range samples {
		r.world = append(r.world, s.World)
	}
	r.screen = r.Proj.ProjectAll(r.world, r.screen)

	scale := r.PointScale
	if scale <= 0 {
		scale = 1
	}
	for i, sp := range r.screen {
		fb.FillSquare(sp.X, sp.Y, sp.Size*scale, samples[i].Color)
	}
}
