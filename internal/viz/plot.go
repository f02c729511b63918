// Package viz renders terminal plots and heatmaps of growth runs.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// WidthPlot renders the interface-width history as an ASCII line plot.
func WidthPlot(widths []float64) string {
	if len(widths) < 2 {
		return "not enough samples to plot"
	}
	return asciigraph.Plot(widths,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("interface width vs step"),
	)
}

// ProfilePlot renders one row of the field as a surface cross-section.
func ProfilePlot(row []float64, y int) string {
	if len(row) < 2 {
		return "not enough samples to plot"
	}
	return asciigraph.Plot(row,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("height profile, row %d", y)),
	)
}
