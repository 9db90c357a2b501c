package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ringscan/internal/batch"
	"ringscan/internal/config"
	"ringscan/internal/projection"
	"ringscan/internal/window"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	live := flag.Bool("window", false, "Open a live window instead of writing frames")
	width := flag.Int("width", 0, "Surface width (default: 640)")
	height := flag.Int("height", 0, "Surface height (default: 480)")
	frames := flag.Int("frames", 0, "Number of frames to write (default: 120)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp or tga (default: webp)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := cfg.Scene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *live {
		proj, err := projection.New(cfg.Camera(), cfg.ProjectionParams(), float64(cfg.Width), float64(cfg.Height))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		v := window.NewViewer(sc, proj, cfg.FadeParams())
		opts := window.Options{Title: "ringscan", Width: cfg.Width, Height: cfg.Height, TPS: cfg.FPS}
		if err := window.Run(v, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	bc := cfg.Batch()
	fmt.Printf("Ring scan → %s\n", bc.Format)
	fmt.Printf("Frames: %d, Size: %dx%d, Supersample: %d, Workers: %d\n", bc.Frames, bc.Width, bc.Height, bc.Supersample, bc.Workers)
	fmt.Printf("Output: %s\n", bc.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results, err := batch.Run(bc, sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Written: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(bc.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, bc, cfg.FPS, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
