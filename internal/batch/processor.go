package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"ringscan/internal/postprocess"
	"ringscan/internal/projection"
	"ringscan/internal/raster"
	"ringscan/internal/scene"
)

// Config holds everything a frame run needs.
type Config struct {
	OutputDir   string
	Format      Format
	Frames      int
	Width       int
	Height      int
	Supersample int
	Workers     int

	Camera projection.Camera
	Params projection.Params
	Fade   raster.FadeParams

	// Quiet disables the progress reporter.
	Quiet bool
}

// Result holds the outcome of one frame.
type Result struct {
	Frame   int
	T       float64
	Path    string
	Success bool
	Error   string
}

type job struct {
	frame int
	t     float64
	img   *image.NRGBA
}

// FrameName returns the file name of frame i.
func FrameName(i int, f Format) string {
	return fmt.Sprintf("frame_%05d%s", i, f.Ext())
}

// Run renders cfg.Frames frames of sc and writes them to cfg.OutputDir.
//
// Rendering is sequential because each frame fades the previous one; the
// downsample and encode work is spread over cfg.Workers goroutines.
func Run(cfg Config, sc *scene.Scene) ([]Result, error) {
	if cfg.Frames <= 0 {
		return nil, nil
	}
	if _, err := ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	ss := max(cfg.Supersample, 1)
	workers := max(cfg.Workers, 1)
	renderW, renderH := cfg.Width*ss, cfg.Height*ss

	proj, err := projection.New(cfg.Camera, cfg.Params, float64(renderW), float64(renderH))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	fb := raster.NewFrameBuffer(renderW, renderH)
	r := raster.NewRenderer(proj)
	r.Fade = cfg.Fade
	r.PointScale = float64(ss)

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	if !cfg.Quiet {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.frame] = writeFrame(cfg, j)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		samples, t := sc.Next()
		r.RenderFrame(fb, samples)
		jobs <- job{frame: i, t: t, img: fb.Snapshot()}
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results, nil
}

func writeFrame(cfg Config, j job) Result {
	res := Result{
		Frame: j.frame,
		T:     j.t,
		Path:  filepath.Join(cfg.OutputDir, FrameName(j.frame, cfg.Format)),
	}

	img := j.img
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	f, err := os.Create(res.Path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := Encode(f, img, cfg.Format); err != nil {
		f.Close()
		os.Remove(res.Path)
		res.Error = err.Error()
		return res
	}
	if err := f.Close(); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
