package metrics

import (
	"math"

	"github.com/san-kum/surfgrow/internal/lattice"
)

// Roughness averages the RMS interface width over the run.
type Roughness struct {
	name    string
	total   float64
	samples int
}

func NewRoughness() *Roughness {
	return &Roughness{name: "roughness"}
}

func (r *Roughness) Name() string { return r.name }

func (r *Roughness) Observe(f *lattice.Field, step int) {
	r.total += f.Roughness()
	r.samples++
}

func (r *Roughness) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.total / float64(r.samples)
}

func (r *Roughness) Reset() {
	r.total = 0
	r.samples = 0
}

// Extrema tracks the largest height magnitude seen; a cheap stability
// indicator for unstable parameter choices.
type Extrema struct {
	name string
	max  float64
}

func NewExtrema() *Extrema {
	return &Extrema{name: "max_height"}
}

func (e *Extrema) Name() string { return e.name }

func (e *Extrema) Observe(f *lattice.Field, step int) {
	e.max = math.Max(e.max, f.MaxAbs())
}

func (e *Extrema) Value() float64 { return e.max }

func (e *Extrema) Reset() { e.max = 0 }
