// Package export writes run results to interchange formats: JSON for
// downstream tooling and SVG heatmaps for quick visual inspection.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/surfgrow/internal/sim"
	"github.com/san-kum/surfgrow/internal/storage"
)

type RunData struct {
	Model      string             `json:"model"`
	Size       int                `json:"size"`
	Nu         float64            `json:"nu"`
	Lambda     float64            `json:"lambda"`
	NoiseKind  string             `json:"noise_kind"`
	Steps      int                `json:"steps"`
	Widths     []float64          `json:"widths"`
	FinalField []float64          `json:"final_field"`
	Metrics    map[string]float64 `json:"metrics"`
}

func buildRunData(meta *storage.RunMetadata, result *sim.Result) RunData {
	data := RunData{
		Model:     meta.Model,
		Size:      meta.Size,
		Nu:        meta.Nu,
		Lambda:    meta.Lambda,
		NoiseKind: meta.NoiseKind,
		Steps:     result.StepsTaken,
		Widths:    result.Widths,
		Metrics:   result.Metrics,
	}
	if final := result.Final(); final != nil {
		data.FinalField = final.Cells()
	}
	return data
}

// JSON writes a run to w as indented JSON.
func JSON(w io.Writer, meta *storage.RunMetadata, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildRunData(meta, result))
}

// JSONFile writes a run to a file.
func JSONFile(path string, meta *storage.RunMetadata, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, meta, result)
}
