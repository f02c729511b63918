package growth

import (
	"fmt"

	"github.com/san-kum/surfgrow/internal/lattice"
)

// EW is the Edwards-Wilkinson model: diffusive relaxation under surface
// tension ν plus optional noise. The periodic Laplacian conserves total
// mass, so with zero-mean noise the field's sum is invariant.
type EW struct {
	Nu    float64
	pool  *lattice.FieldPool
	cells int
}

func NewEW(nu float64) *EW { return &EW{Nu: nu} }

func (m *EW) Name() string { return "ew" }

func (m *EW) Step(f *lattice.Field, eta []float64) (*lattice.Field, error) {
	if err := validate(f, eta); err != nil {
		return nil, err
	}
	if m.pool == nil || m.cells != f.Len() {
		m.pool = lattice.NewFieldPool(f.Len())
		m.cells = f.Len()
	}

	lap := m.pool.Get()
	defer m.pool.Put(lap)
	f.LaplacianInto(lap)

	out := f.Clone()
	cells := out.Cells()
	for i := range cells {
		cells[i] += m.Nu * lap[i]
		if eta != nil {
			cells[i] += eta[i]
		}
	}
	return out, nil
}

func (m *EW) Params() map[string]float64 {
	return map[string]float64{"nu": m.Nu}
}

func (m *EW) SetParam(name string, v float64) error {
	switch name {
	case "nu":
		if v < 0 {
			return fmt.Errorf("%w: nu must be non-negative", ErrBadParameter)
		}
		m.Nu = v
	default:
		return fmt.Errorf("%w: %q", ErrBadParameter, name)
	}
	return nil
}
