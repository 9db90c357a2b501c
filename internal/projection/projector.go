// Package projection maps world-space points onto a pixel surface through a
// look-at camera and a perspective divide.
//
// Pipeline (fixed):
//
//	world → camera (Mat34 view) → clip (Project) → screen (PointToScreen)
//
// A Projector caches the view matrix and the projection constants. They are
// rebuilt only by SetCamera (eye/target/up changed) and Resize (surface size
// changed); nothing else mutates a Projector.
package projection

import (
	"errors"
	"fmt"

	"ringscan/internal/mathutil"
)

// ErrBadParams is returned when the frustum parameters are unusable.
var ErrBadParams = errors.New("projection: invalid parameters")

// Camera places the eye in world space.
type Camera struct {
	Eye    mathutil.Vec3
	Target mathutil.Vec3
	Up     mathutil.Vec3
}

// View returns the world-to-camera transform.
func (c Camera) View() mathutil.Mat34 {
	return mathutil.LookAt(c.Eye, c.Target, c.Up)
}

// Params holds the frustum and the screen-mapping constants.
type Params struct {
	Focal float64 // 1 / tan(FOV/2)
	Near  float64
	Far   float64

	// HorizontalScale and VerticalScale map clip x/y to the surface:
	// x = W·(HorizontalScale·cx + 0.5), y = H·(VerticalScale·cy + 0.5).
	HorizontalScale float64
	VerticalScale   float64

	// Point size in pixels is SizeBase - SizeRange·(0.5·cz + 0.5),
	// so near points are SizeBase wide and far points SizeBase-SizeRange.
	SizeBase  float64
	SizeRange float64
}

// DefaultParams returns the ring-scan frustum.
func DefaultParams() Params {
	return Params{
		Focal:           2.5,
		Near:            9,
		Far:             13,
		HorizontalScale: 0.7,
		VerticalScale:   0.5,
		SizeBase:        6,
		SizeRange:       4,
	}
}

// DefaultCamera returns the ring-scan camera.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mathutil.V3(4, 4, -12),
		Target: mathutil.V3(0, 0, 0),
		Up:     mathutil.V3(0, 1, 0),
	}
}

// Validate checks 0 < Near < Far and Focal > 0.
func (p Params) Validate() error {
	if !(p.Near > 0) || !(p.Far > p.Near) {
		return fmt.Errorf("%w: need 0 < near < far, got near=%g far=%g", ErrBadParams, p.Near, p.Far)
	}
	if !(p.Focal > 0) {
		return fmt.Errorf("%w: focal length must be > 0, got %g", ErrBadParams, p.Focal)
	}
	return nil
}

// ScreenPoint is a projected point in surface pixels. X and Y may lie outside
// the surface. Size is the square footprint derived from clip depth.
type ScreenPoint struct {
	X, Y float64
	Size float64
}

// Projector holds the camera matrix and the projection constants.
type Projector struct {
	cam    Camera
	params Params
	view   mathutil.Mat34

	g, h float64 // depth terms: clip z = g - h/z

	width, height float64
	aspect        float64 // height / width
	left          float64 // -focal / aspect
}

// New builds a Projector for a width×height surface.
func New(cam Camera, params Params, width, height float64) (*Projector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, n := params.Far, params.Near
	p := &Projector{
		params: params,
		g:      (f + n) / (f - n),
		h:      (2 * f * n) / (f - n),
	}
	p.SetCamera(cam)
	p.Resize(width, height)
	return p, nil
}

// SetCamera rebuilds the view matrix.
func (p *Projector) SetCamera(cam Camera) {
	p.cam = cam
	p.view = cam.View()
}

// Resize records the surface size and recomputes the aspect ratio and the
// left-plane bound.
func (p *Projector) Resize(width, height float64) {
	p.width = width
	p.height = height
	p.aspect = height / width
	p.left = -p.params.Focal / p.aspect
}

func (p *Projector) Camera() Camera { return p.cam }
func (p *Projector) Params() Params { return p.params }
func (p *Projector) View() mathutil.Mat34 { return p.view }
func (p *Projector) Size() (w, h float64) { return p.width, p.height }
func (p *Projector) AspectRatio() float64 { return p.aspect }
func (p *Projector) LeftBound() float64 { return p.left }

// Project applies the perspective divide to a camera-space point:
// (e·x/z, l·y/z, g - h/z). Clip z is -1 at the near plane and +1 at the far
// plane. A point with z == 0 gives non-finite output.
func (p *Projector) Project(v mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{
		p.params.Focal * v[0] / v[2],
		p.left * v[1] / v[2],
		p.g - p.h/v[2],
	}
}

// ToScreen maps clip coordinates to surface pixels.
func (p *Projector) ToScreen(clip mathutil.Vec3) ScreenPoint {
	return ScreenPoint{
		X:    p.width * (p.params.HorizontalScale*clip[0] + 0.5),
		Y:    p.height * (p.params.VerticalScale*clip[1] + 0.5),
		Size: p.params.SizeBase - p.params.SizeRange*(0.5*clip[2]+0.5),
	}
}

// PointToScreen runs a world-space point through the whole pipeline.
func (p *Projector) PointToScreen(v mathutil.Vec3) ScreenPoint {
	return p.ToScreen(p.Project(p.view.MulPoint(v)))
}

// ProjectAll projects points into dst, growing it when short, and returns
// the filled slice.
func (p *Projector) ProjectAll(points []mathutil.Vec3, dst []ScreenPoint) []ScreenPoint {
	if cap(dst) < len(points) {
		dst = make([]ScreenPoint, len(points))
	}
	dst = dst[:len(points)]
	for i, v := range points {
		dst[i] = p.PointToScreen(v)
	}
	return dst
}

// Stages holds every intermediate value of one projected point.
type Stages struct {
	World  mathutil.Vec3
	Camera mathutil.Vec3
	Clip   mathutil.Vec3
	Screen ScreenPoint
}

// Trace is PointToScreen with the intermediate values kept.
func (p *Projector) Trace(v mathutil.Vec3) Stages {
	s := Stages{World: v}
	s.Camera = p.view.MulPoint(v)
	s.Clip = p.Project(s.Camera)
	s.Screen = p.ToScreen(s.Clip)
	return s
}

// InFrustum reports whether a camera-space depth lies in [Near, Far].
func (p *Projector) InFrustum(camera mathutil.Vec3) bool {
	return camera[2] >= p.params.Near && camera[2] <= p.params.Far
}
