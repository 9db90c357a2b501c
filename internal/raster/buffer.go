package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer is the drawing surface as a flat NRGBA slice.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a buffer cleared to opaque black.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the buffer and clears it. Sizes below 1 are raised to 1.
func (fb *FrameBuffer) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	fb.Width = w
	fb.Height = h
	if n := w * h * 4; cap(fb.Color) >= n {
		fb.Color = fb.Color[:n]
	} else {
		fb.Color = make([]uint8, n)
	}
	fb.Clear()
}

// Clear fills the surface with opaque black.
func (fb *FrameBuffer) Clear() {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = 0
		fb.Color[i+1] = 0
		fb.Color[i+2] = 0
		fb.Color[i+3] = 0xFF
	}
}

// FillSquare paints [x, x+size) × [y, y+size) with c, rounded to whole pixels
// and clipped to the surface. Non-finite or non-positive input draws nothing.
func (fb *FrameBuffer) FillSquare(x, y, size float64, c color.NRGBA) {
	if !(size > 0) || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x+size, 0) || math.IsInf(y+size, 0) {
		return
	}
	x0 := clampInt(math.Round(x), fb.Width)
	x1 := clampInt(math.Round(x+size), fb.Width)
	y0 := clampInt(math.Round(y), fb.Height)
	y1 := clampInt(math.Round(y+size), fb.Height)

	stride := fb.Width * 4
	for py := y0; py < y1; py++ {
		off := py * stride
		for px := x0; px < x1; px++ {
			i := off + px*4
			fb.Color[i] = c.R
			fb.Color[i+1] = c.G
			fb.Color[i+2] = c.B
			fb.Color[i+3] = c.A
		}
	}
}

// Image wraps the buffer without copying. The image aliases fb.Color.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Snapshot returns a copy of the current frame.
func (fb *FrameBuffer) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func clampInt(v float64, hi int) int {
	if v < 0 {
		return 0
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}
