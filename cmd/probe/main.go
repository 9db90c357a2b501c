package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ringscan/internal/config"
	"ringscan/internal/mathutil"
	"ringscan/internal/projection"
)

// probe prints every pipeline stage for world-space points given as "x,y,z".
func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 100, "Surface width")
	height := flag.Int("height", 100, "Surface height")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	proj, err := projection.New(cfg.Camera(), cfg.ProjectionParams(), float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"0,1,0"}
	}

	cam := proj.Camera()
	fmt.Printf("Camera: eye=%v target=%v up=%v\n", cam.Eye, cam.Target, cam.Up)
	fmt.Printf("Surface: %dx%d aspect=%.4f left=%.4f\n", cfg.Width, cfg.Height, proj.AspectRatio(), proj.LeftBound())

	failed := false
	for _, a := range args {
		v, err := parseVec3(a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		s := proj.Trace(v)
		fmt.Printf("  world  %s\n", fmtVec(s.World))
		fmt.Printf("  camera %s", fmtVec(s.Camera))
		if !proj.InFrustum(s.Camera) {
			fmt.Print("  (outside near/far)")
		}
		fmt.Println()
		fmt.Printf("  clip   %s\n", fmtVec(s.Clip))
		fmt.Printf("  screen x=%.6f y=%.6f size=%.6f\n", s.Screen.X, s.Screen.Y, s.Screen.Size)
		if !s.Clip.IsFinite() {
			fmt.Fprintf(os.Stderr, "Warning: %s projects to non-finite coordinates (zero camera depth)\n", a)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func parseVec3(s string) (mathutil.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mathutil.Vec3{}, fmt.Errorf("point %q: want x,y,z", s)
	}
	var v mathutil.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("point %q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}

func fmtVec(v mathutil.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v[0], v[1], v[2])
}
