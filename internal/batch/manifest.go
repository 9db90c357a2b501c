package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Manifest describes a rendered frame sequence.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Format Format          `json:"format"`
	FPS    int             `json:"fps"`
	Frames []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one written frame.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	T     float64 `json:"t"`
	Image string  `json:"image"`
}

// WriteManifest writes the successful frames of results to path.
func WriteManifest(path string, cfg Config, fps int, results []Result) error {
	m := Manifest{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: cfg.Format,
		FPS:    fps,
		Frames: make([]ManifestEntry, 0, len(results)),
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame: r.Frame,
			T:     r.T,
			Image: filepath.Base(r.Path),
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
