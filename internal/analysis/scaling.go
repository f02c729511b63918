// Package analysis provides scaling diagnostics for surface growth runs.
//
// The standard characterization of a growing interface is the width curve
// w(t): early-time growth follows w ~ t^β (β is the growth exponent), and
// a finite system saturates at a width set by its size.
package analysis

import (
	"errors"
	"math"
)

// ErrTooShort indicates a width history with too few usable samples.
var ErrTooShort = errors.New("analysis: width history too short")

// GrowthExponent estimates β from a least-squares fit of log w against
// log t over the first fraction of the run (the pre-saturation regime).
// Samples with w ≤ 0 or t = 0 are skipped.
func GrowthExponent(widths []float64, fraction float64) (float64, error) {
	if fraction <= 0 || fraction > 1 {
		fraction = 0.5
	}
	n := int(float64(len(widths)) * fraction)
	if n < 3 {
		return 0, ErrTooShort
	}

	var xs, ys []float64
	for t := 1; t < n; t++ {
		if widths[t] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(t)))
		ys = append(ys, math.Log(widths[t]))
	}
	if len(xs) < 3 {
		return 0, ErrTooShort
	}

	slope, _ := linearFit(xs, ys)
	return slope, nil
}

// SaturationWidth averages the last quarter of the width history.
func SaturationWidth(widths []float64) (float64, error) {
	if len(widths) < 4 {
		return 0, ErrTooShort
	}
	tail := widths[len(widths)*3/4:]
	sum := 0.0
	for _, w := range tail {
		sum += w
	}
	return sum / float64(len(tail)), nil
}

// GrowthRate estimates the mean-height velocity from the first and last
// mean heights; non-zero under the KPZ non-linearity, zero for pure EW
// with zero-mean noise.
func GrowthRate(means []float64) (float64, error) {
	if len(means) < 2 {
		return 0, ErrTooShort
	}
	return (means[len(means)-1] - means[0]) / float64(len(means)-1), nil
}

// linearFit returns the slope and intercept of the least-squares line
// through (xs, ys).
func linearFit(xs, ys []float64) (float64, float64) {
	n := float64(len(xs))
	var sx, sy, sxx, sxy float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
		sxx += xs[i] * xs[i]
		sxy += xs[i] * ys[i]
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return 0, sy / n
	}
	slope := (n*sxy - sx*sy) / den
	return slope, (sy - slope*sx) / n
}
