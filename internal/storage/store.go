// Package storage persists run results under a data directory. Each run
// gets its own directory with metadata.json, widths.csv (interface width
// per step), and field.csv (the final height field).
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Timestamp time.Time          `json:"timestamp"`
	Size      int                `json:"size"`
	Steps     int                `json:"steps"`
	Nu        float64            `json:"nu"`
	Lambda    float64            `json:"lambda"`
	NoiseKind string             `json:"noise_kind"`
	NoiseSeed int64              `json:"noise_seed"`
	InitSeed  int64              `json:"init_seed"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = result.StepsTaken
	meta.Metrics = result.Metrics

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeWidths(runDir, result.Widths); err != nil {
		return "", err
	}

	if final := result.Final(); final != nil {
		if err := s.writeField(runDir, final); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeWidths(runDir string, widths []float64) error {
	file, err := os.Create(filepath.Join(runDir, "widths.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"step", "width"}); err != nil {
		return err
	}
	for i, width := range widths {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(width, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeField(runDir string, f *lattice.Field) error {
	file, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	for y := 0; y < f.L; y++ {
		row := make([]string, f.L)
		for x := 0; x < f.L; x++ {
			row[x] = strconv.FormatFloat(f.At(x, y), 'f', 9, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadWidths reads the interface-width history of a run.
func (s *Store) LoadWidths(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "widths.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	widths := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		w, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		widths = append(widths, w)
	}
	return widths, nil
}

// LoadField reads the final height field of a run.
func (s *Store) LoadField(runID string) (*lattice.Field, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	cells := make([]float64, 0, len(records)*len(records))
	for _, record := range records {
		for _, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: corrupt field cell %q: %w", cell, err)
			}
			cells = append(cells, v)
		}
	}
	return lattice.FromSlice(cells)
}
