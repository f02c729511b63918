package storage

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/surfgrow/internal/growth"
	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/noise"
	"github.com/san-kum/surfgrow/internal/sim"
)

func runForTest(t *testing.T) *sim.Result {
	t.Helper()
	f0, err := lattice.Random(8, 5.0, 3)
	if err != nil {
		t.Fatal(err)
	}
	r := sim.New(growth.NewKPZ(0.1, 0.5))
	result, err := r.Run(context.Background(), f0, sim.Config{
		Steps: 10, NoiseKind: noise.Gaussian, NoiseSeed: 7, KeepHistory: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	result := runForTest(t)
	meta := RunMetadata{
		Model: "kpz", Size: 8, Nu: 0.1, Lambda: 0.5,
		NoiseKind: "gaussian", NoiseSeed: 7, InitSeed: 3,
	}

	runID, err := st.Save(meta, result)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "kpz" || loaded.Size != 8 || loaded.Lambda != 0.5 {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if loaded.Steps != result.StepsTaken {
		t.Errorf("steps = %d, want %d", loaded.Steps, result.StepsTaken)
	}

	widths, err := st.LoadWidths(runID)
	if err != nil {
		t.Fatalf("LoadWidths failed: %v", err)
	}
	if len(widths) != len(result.Widths) {
		t.Fatalf("width count = %d, want %d", len(widths), len(result.Widths))
	}
	for i := range widths {
		if math.Abs(widths[i]-result.Widths[i]) > 1e-8 {
			t.Errorf("width %d = %f, want %f", i, widths[i], result.Widths[i])
		}
	}

	field, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("LoadField failed: %v", err)
	}
	final := result.Final()
	if field.L != final.L {
		t.Fatalf("field size = %d, want %d", field.L, final.L)
	}
	for i := range field.Cells() {
		if math.Abs(field.Cells()[i]-final.Cells()[i]) > 1e-8 {
			t.Errorf("field cell %d = %f, want %f", i, field.Cells()[i], final.Cells()[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	result := runForTest(t)
	if _, err := st.Save(RunMetadata{Model: "kpz"}, result); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Model != "kpz" {
		t.Errorf("model = %q, want kpz", runs[0].Model)
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New("/nonexistent/surfgrow-data")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoad_MissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_123"); err == nil {
		t.Error("expected error for missing run")
	}
}
