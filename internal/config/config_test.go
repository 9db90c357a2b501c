package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ringscan/internal/batch"
	"ringscan/internal/config"
	"ringscan/internal/mathutil"
	"ringscan/internal/projection"
	"ringscan/internal/raster"
	"ringscan/internal/scene"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestResolveDefaults(t *testing.T) {
	var cfg config.Config
	cfg.Resolve(config.Flags{})
	require.NoError(t, cfg.Validate())

	require.Equal(t, 640, cfg.Width)
	require.Equal(t, 480, cfg.Height)
	require.Equal(t, projection.DefaultCamera(), cfg.Camera())
	require.Equal(t, projection.DefaultParams(), cfg.ProjectionParams())
	require.Equal(t, raster.DefaultFade(), cfg.FadeParams())
	require.Equal(t, scene.DefaultRingCount, cfg.RingCount)
	require.Equal(t, "webp", cfg.Format)
	require.Equal(t, 50, cfg.FPS)
	require.Equal(t, 1, cfg.Supersample)
	require.Positive(t, cfg.Workers)

	sc, err := cfg.Scene()
	require.NoError(t, err)
	require.Equal(t, scene.DefaultClock(), sc.Clock)
	require.Equal(t, mathutil.Mat34Identity(), sc.Model)
}

func TestLoadAndOverride(t *testing.T) {
	path := writeConfig(t, `{
		"width": 320,
		"height": 200,
		"eye": [0, 2, -11],
		"near": 8,
		"far": 14,
		"horizontal_scale": 0.5,
		"start": 0,
		"fade_factor": 0,
		"transforms": [{"scale": 0.5}, {"translate": [0, 1, 0]}],
		"format": "tga",
		"frames": 10
	}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	cfg.Resolve(config.Flags{Width: 100, Frames: 3, OutputDir: "out", Workers: 2})
	require.NoError(t, cfg.Validate())

	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 200, cfg.Height)
	require.Equal(t, mathutil.V3(0, 2, -11), cfg.Camera().Eye)
	require.Equal(t, mathutil.V3(0, 1, 0), cfg.Camera().Up)
	require.Equal(t, 8.0, cfg.ProjectionParams().Near)
	require.Equal(t, 0.5, cfg.ProjectionParams().HorizontalScale)
	require.Equal(t, 0.0, cfg.FadeParams().Factor)

	sc, err := cfg.Scene()
	require.NoError(t, err)
	// explicit zero start is kept
	require.Equal(t, 0.0, sc.Clock.T)
	require.Equal(t, mathutil.V3(0.5, 1, 0), sc.Model.MulPoint(mathutil.V3(1, 0, 0)))

	b := cfg.Batch()
	require.Equal(t, batch.FormatTGA, b.Format)
	require.Equal(t, 3, b.Frames)
	require.Equal(t, "out", b.OutputDir)
	require.Equal(t, 2, b.Workers)
}

func TestExplicitZeroKept(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `{"size_range": 0, "vertical_scale": 0}`))
	require.NoError(t, err)
	cfg.Resolve(config.Flags{})
	require.NoError(t, cfg.Validate())

	p := cfg.ProjectionParams()
	require.Equal(t, 0.0, p.SizeRange)
	require.Equal(t, 0.0, p.VerticalScale)
	// unset fields still get defaults
	require.Equal(t, projection.DefaultParams().SizeBase, p.SizeBase)
	require.Equal(t, projection.DefaultParams().Near, p.Near)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, `{"width": "wide"}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config: parse")
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"far before near": `{"near": 10, "far": 5}`,
		"zero near":       `{"near": 0}`,
		"fade too strong": `{"fade_factor": 1.5}`,
		"unknown format":  `{"format": "gif"}`,
		"parallel up":     `{"eye": [0, 5, 0], "up": [0, 1, 0]}`,
		"bad transform":   `{"transforms": [{"scale": "x"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, body))
			require.NoError(t, err)
			cfg.Resolve(config.Flags{})
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
