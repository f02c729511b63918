package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/surfgrow/internal/growth"
	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/noise"
	"github.com/san-kum/surfgrow/internal/sim"
	"github.com/san-kum/surfgrow/internal/storage"
)

func TestJSON(t *testing.T) {
	f0, _ := lattice.Random(4, 5.0, 1)
	r := sim.New(growth.NewEW(0.1))
	result, err := r.Run(context.Background(), f0, sim.Config{
		Steps: 5, NoiseKind: noise.Gaussian, NoiseSeed: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	meta := &storage.RunMetadata{Model: "ew", Size: 4, Nu: 0.1, NoiseKind: "gaussian"}

	var buf bytes.Buffer
	if err := JSON(&buf, meta, result); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var data RunData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data.Model != "ew" || data.Size != 4 {
		t.Errorf("metadata mismatch: %+v", data)
	}
	if len(data.Widths) != 6 {
		t.Errorf("expected 6 width samples, got %d", len(data.Widths))
	}
	if len(data.FinalField) != 16 {
		t.Errorf("expected 16 cells, got %d", len(data.FinalField))
	}
}

func TestFieldToSVG(t *testing.T) {
	f, _ := lattice.FromSlice([]float64{0, 1, 2, 3})
	svg := FieldToSVG(f, 10)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20"`) {
		t.Errorf("unexpected dimensions:\n%s", svg[:200])
	}
	// lowest cell is black, highest is white
	if !strings.Contains(svg, `fill="#000000"`) {
		t.Error("missing black cell for minimum height")
	}
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("missing white cell for maximum height")
	}
	if got := strings.Count(svg, "<rect"); got != 5 { // 4 cells + background
		t.Errorf("expected 5 rects, got %d", got)
	}
}

func TestFieldToSVG_FlatField(t *testing.T) {
	f, _ := lattice.Uniform(3, 7.0)
	svg := FieldToSVG(f, 4)
	if svg == "" {
		t.Fatal("flat field produced empty SVG")
	}
	// zero span must not divide by zero; all cells render at the floor
	if !strings.Contains(svg, `fill="#000000"`) {
		t.Error("flat field cells should render at zero level")
	}
}

func TestFieldToSVG_Nil(t *testing.T) {
	if svg := FieldToSVG(nil, 4); svg != "" {
		t.Error("nil field should produce empty string")
	}
}
