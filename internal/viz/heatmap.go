package viz

import (
	"strings"

	"github.com/san-kum/surfgrow/internal/lattice"
)

// shade ramp from low to high; two chars per cell keeps the aspect square.
var ramp = []rune(" .:-=+*#%@")

// Heatmap renders the field as shaded ASCII cells, normalized to the
// field's own height range.
func Heatmap(f *lattice.Field) string {
	if f == nil || f.Len() == 0 {
		return ""
	}

	min, max := f.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	for y := 0; y < f.L; y++ {
		for x := 0; x < f.L; x++ {
			level := (f.At(x, y) - min) / span
			idx := int(level * float64(len(ramp)-1))
			if idx >= len(ramp) {
				idx = len(ramp) - 1
			}
			sb.WriteRune(ramp[idx])
			sb.WriteRune(ramp[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StyledHeatmap wraps the heatmap in the shared panel style.
func StyledHeatmap(f *lattice.Field) string {
	return PanelStyle.Render(Heatmap(f))
}
