package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/surfgrow/internal/lattice"
)

func TestHeatmap(t *testing.T) {
	f, _ := lattice.FromSlice([]float64{0, 1, 2, 3})
	out := Heatmap(f)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 4 { // two runes per cell
			t.Errorf("row %d has %d runes, want 4", i, len([]rune(line)))
		}
	}

	// minimum renders as the lowest ramp rune, maximum as the highest
	if rune(lines[0][0]) != ramp[0] {
		t.Errorf("min cell rendered as %q, want %q", lines[0][0], ramp[0])
	}
	if !strings.ContainsRune(lines[1], ramp[len(ramp)-1]) {
		t.Errorf("max cell missing %q in %q", ramp[len(ramp)-1], lines[1])
	}
}

func TestHeatmap_Flat(t *testing.T) {
	f, _ := lattice.Uniform(3, 5.0)
	out := Heatmap(f)
	if out == "" {
		t.Fatal("flat field produced empty heatmap")
	}
	if strings.ContainsRune(out, ramp[len(ramp)-1]) {
		t.Error("flat field should render at the ramp floor")
	}
}

func TestHeatmap_Nil(t *testing.T) {
	if out := Heatmap(nil); out != "" {
		t.Error("nil field should produce empty string")
	}
}

func TestWidthPlot(t *testing.T) {
	if out := WidthPlot([]float64{1}); !strings.Contains(out, "not enough") {
		t.Error("expected placeholder for short series")
	}
	out := WidthPlot([]float64{0, 1, 2, 3, 2, 1})
	if !strings.Contains(out, "interface width vs step") {
		t.Error("missing caption")
	}
}

func TestProfilePlot(t *testing.T) {
	out := ProfilePlot([]float64{5, 6, 7, 6}, 2)
	if !strings.Contains(out, "height profile, row 2") {
		t.Error("missing caption")
	}
}
