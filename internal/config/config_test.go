package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "ew" {
		t.Errorf("expected model ew, got %s", cfg.Model)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Nu < 0 {
		t.Error("nu should be non-negative")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "kpz"
	cfg.Lambda = 2.5
	cfg.Noise.Kind = "signed"
	cfg.Noise.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "kpz" || loaded.Lambda != 2.5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Noise.Kind != "signed" || loaded.Noise.Seed != 42 {
		t.Errorf("round trip lost noise config: %+v", loaded.Noise)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("model: kpz\nlambda: 3.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "kpz" || cfg.Lambda != 3.0 {
		t.Errorf("explicit values not applied: %+v", cfg)
	}
	if cfg.Size != DefaultSize || cfg.Steps != DefaultSteps {
		t.Errorf("defaults not retained: %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/run.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("kpz", "growth")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Lambda != 1.0 {
		t.Errorf("expected lambda 1.0, got %f", cfg.Lambda)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("ew", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "relax"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("ew"); len(presets) == 0 {
		t.Error("expected presets for ew")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}
