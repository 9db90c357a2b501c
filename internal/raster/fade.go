package raster

// FadeParams controls the per-frame trail decay.
type FadeParams struct {
	Factor float64 // channel multiplier, 0 disables fading entirely
	Stride int     // bytes between sampled positions
}

// DefaultFade leaves a long, streaky trail.
func DefaultFade() FadeParams {
	return FadeParams{Factor: 0.105, Stride: 10}
}

// Fade decays the surface in place. It visits every Stride-th byte i and
// scales the three bytes starting there, but only those already non-zero:
//
//	c[i]   = ⌊f·c[i]⌋
//	c[i+1] = ⌊f·c[i+3]⌋
//	c[i+2] = ⌊f·c[i+4]⌋
//
// With a stride that is not a multiple of 4 the visited bytes drift across
// channels, so some pixels fade fast, some slowly and some keep their colour.
// That unevenness is the look of the trail. Alpha bytes may be read but are
// never written, so the surface stays opaque; bytes read past the end count
// as 0. A channel fed from an alpha byte therefore settles at ⌊f·255⌋ (26 for
// the default factor) instead of fading to black, which tints the trail.
func (fb *FrameBuffer) Fade(p FadeParams) {
	if p.Factor <= 0 || p.Stride <= 0 {
		return
	}
	pix := fb.Color
	n := len(pix)
	at := func(j int) float64 {
		if j >= n {
			return 0
		}
		return float64(pix[j])
	}
	scale := func(dst, src int) {
		if dst < n && dst%4 != 3 && pix[dst] != 0 {
			pix[dst] = uint8(p.Factor * at(src))
		}
	}
	for i := 0; i < n; i += p.Stride {
		scale(i, i)
		scale(i+1, i+3)
		scale(i+2, i+4)
	}
}
