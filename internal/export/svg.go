package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/surfgrow/internal/lattice"
)

// FieldToSVG renders a height field as a grayscale cell heatmap. Each cell
// becomes a scale×scale rectangle; darker is lower.
func FieldToSVG(f *lattice.Field, scale float64) string {
	if f == nil || f.Len() == 0 {
		return ""
	}
	if scale <= 0 {
		scale = 8
	}

	side := float64(f.L) * scale
	min, max := f.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, side, side, side, side))

	for y := 0; y < f.L; y++ {
		for x := 0; x < f.L; x++ {
			level := (f.At(x, y) - min) / span
			shade := int(level * 255)
			sb.WriteString(fmt.Sprintf(
				`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"/>
`,
				float64(x)*scale, float64(y)*scale, scale, scale,
				shade, shade, shade))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
