package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"

	"ringscan/internal/batch"
	"ringscan/internal/mathutil"
	"ringscan/internal/projection"
	"ringscan/internal/raster"
	"ringscan/internal/scene"
)

// Config holds all render settings. Zero values and nil pointers are filled
// by Resolve; a pointer set by the file keeps its value, including 0.
type Config struct {
	// Surface
	Width  int `json:"width"`
	Height int `json:"height"`

	// Camera
	Eye    *mathutil.Vec3 `json:"eye"`
	Target *mathutil.Vec3 `json:"target"`
	Up     *mathutil.Vec3 `json:"up"`

	// Frustum and screen mapping
	Near            *float64 `json:"near"`
	Far             *float64 `json:"far"`
	Focal           *float64 `json:"focal"`
	HorizontalScale *float64 `json:"horizontal_scale"`
	VerticalScale   *float64 `json:"vertical_scale"`
	SizeBase        *float64 `json:"size_base"`
	SizeRange       *float64 `json:"size_range"`

	// Animation
	RingCount  int          `json:"ring_count"`
	Start      *float64     `json:"start"`
	PreStep    *float64     `json:"pre_step"`
	PostStep   *float64     `json:"post_step"`
	FadeFactor *float64     `json:"fade_factor"`
	FadeStride int          `json:"fade_stride"`
	Transforms []scene.Step `json:"transforms"`

	// Output
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"`
	Frames      int    `json:"frames"`
	FPS         int    `json:"fps"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Frames    int
	OutputDir string
	Format    string
	Workers   int
}

// Resolve applies CLI overrides, then fills every unset field with its default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}

	cam := projection.DefaultCamera()
	if c.Eye == nil {
		c.Eye = &cam.Eye
	}
	if c.Target == nil {
		c.Target = &cam.Target
	}
	if c.Up == nil {
		c.Up = &cam.Up
	}

	p := projection.DefaultParams()
	setIfNil(&c.Near, p.Near)
	setIfNil(&c.Far, p.Far)
	setIfNil(&c.Focal, p.Focal)
	setIfNil(&c.HorizontalScale, p.HorizontalScale)
	setIfNil(&c.VerticalScale, p.VerticalScale)
	setIfNil(&c.SizeBase, p.SizeBase)
	setIfNil(&c.SizeRange, p.SizeRange)

	if c.RingCount <= 0 {
		c.RingCount = scene.DefaultRingCount
	}
	setIfNil(&c.Start, scene.DefaultStart)
	setIfNil(&c.PreStep, scene.DefaultPreStep)
	setIfNil(&c.PostStep, scene.DefaultPostStep)

	fade := raster.DefaultFade()
	setIfNil(&c.FadeFactor, fade.Factor)
	if c.FadeStride <= 0 {
		c.FadeStride = fade.Stride
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = string(batch.FormatWebP)
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FPS <= 0 {
		c.FPS = 50
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if err := c.ProjectionParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if *c.FadeFactor < 0 || *c.FadeFactor > 1 {
		return fmt.Errorf("%w: fade_factor must be in [0, 1], got %g", ErrInvalid, *c.FadeFactor)
	}
	if _, err := batch.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cam := c.Camera()
	if d := cam.View().Linear().Det(); math.IsNaN(d) || math.Abs(d-1) > 1e-9 {
		return fmt.Errorf("%w: camera up %v is parallel to the view direction", ErrInvalid, cam.Up)
	}
	if _, err := scene.BuildModel(c.Transforms); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Camera returns the resolved camera.
func (c *Config) Camera() projection.Camera {
	return projection.Camera{Eye: *c.Eye, Target: *c.Target, Up: *c.Up}
}

// ProjectionParams returns the resolved frustum.
func (c *Config) ProjectionParams() projection.Params {
	return projection.Params{
		Focal:           *c.Focal,
		Near:            *c.Near,
		Far:             *c.Far,
		HorizontalScale: *c.HorizontalScale,
		VerticalScale:   *c.VerticalScale,
		SizeBase:        *c.SizeBase,
		SizeRange:       *c.SizeRange,
	}
}

// FadeParams returns the resolved trail decay.
func (c *Config) FadeParams() raster.FadeParams {
	return raster.FadeParams{Factor: *c.FadeFactor, Stride: c.FadeStride}
}

// Scene builds the animated scene.
func (c *Config) Scene() (*scene.Scene, error) {
	model, err := scene.BuildModel(c.Transforms)
	if err != nil {
		return nil, err
	}
	sc := scene.New(c.RingCount)
	sc.Clock = scene.Clock{T: *c.Start, PreStep: *c.PreStep, PostStep: *c.PostStep}
	sc.Model = model
	return sc, nil
}

// Batch returns the frame-output settings.
func (c *Config) Batch() batch.Config {
	f, _ := batch.ParseFormat(c.Format)
	return batch.Config{
		OutputDir:   c.OutputDir,
		Format:      f,
		Frames:      c.Frames,
		Width:       c.Width,
		Height:      c.Height,
		Supersample: c.Supersample,
		Workers:     c.Workers,
		Camera:      c.Camera(),
		Params:      c.ProjectionParams(),
		Fade:        c.FadeParams(),
	}
}

func setIfNil(p **float64, v float64) {
	if *p == nil {
		*p = &v
	}
}
