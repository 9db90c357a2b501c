// Package window shows the ring scan live in a desktop window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ringscan/internal/projection"
	"ringscan/internal/raster"
	"ringscan/internal/scene"
)

// Options configures the viewer window.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int // animation ticks per second
}

// Viewer is an ebiten.Game that advances the scene once per tick.
type Viewer struct {
	scene    *scene.Scene
	proj     *projection.Projector
	fb       *raster.FrameBuffer
	renderer *raster.Renderer

	img *ebiten.Image
}

// NewViewer builds a viewer over an existing scene and projector. The
// projector is resized whenever the window's layout size changes.
func NewViewer(sc *scene.Scene, proj *projection.Projector, fade raster.FadeParams) *Viewer {
	w, h := proj.Size()
	r := raster.NewRenderer(proj)
	r.Fade = fade
	return &Viewer{
		scene:    sc,
		proj:     proj,
		fb:       raster.NewFrameBuffer(int(w), int(h)),
		renderer: r,
	}
}

// Step renders the next animation frame into the framebuffer.
func (v *Viewer) Step() {
	samples, _ := v.scene.Next()
	v.renderer.RenderFrame(v.fb, samples)
}

// FrameBuffer exposes the drawing surface.
func (v *Viewer) FrameBuffer() *raster.FrameBuffer { return v.fb }

func (v *Viewer) Update() error {
	v.Step()
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.img == nil || v.img.Bounds().Dx() != v.fb.Width || v.img.Bounds().Dy() != v.fb.Height {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(v.fb.Width, v.fb.Height)
	}
	v.img.WritePixels(v.fb.Color)
	screen.DrawImage(v.img, nil)
}

// Layout tracks the window size 1:1. A new size clears the surface and
// rebuilds the projector's aspect ratio.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.Resize(outsideWidth, outsideHeight)
	return v.fb.Width, v.fb.Height
}

// Resize applies a surface size change. Same-size calls are no-ops.
func (v *Viewer) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == v.fb.Width && h == v.fb.Height {
		return
	}
	v.fb.Resize(w, h)
	v.proj.Resize(float64(w), float64(h))
}

// Run opens the window and blocks until it is closed.
func Run(v *Viewer, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 50
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(v)
}
