package growth

import (
	"errors"
	"fmt"

	"github.com/san-kum/surfgrow/internal/lattice"
)

// Model advances a height field by one discrete time step. The noise slice
// may be nil (no perturbation); otherwise its length must equal the field's
// cell count.
type Model interface {
	Step(f *lattice.Field, eta []float64) (*lattice.Field, error)
	Name() string
}

// Configurable exposes live-tunable model parameters.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

var (
	// ErrNilField indicates Step was called without a field.
	ErrNilField = errors.New("growth: nil field")

	// ErrUnknownModel indicates an unrecognized model name.
	ErrUnknownModel = errors.New("growth: unknown model")

	// ErrBadParameter indicates a parameter name or value a model rejects.
	ErrBadParameter = errors.New("growth: invalid parameter")
)

// New builds a model by name. Recognized names: "ew", "kpz".
func New(name string, nu, lambda float64) (Model, error) {
	if nu < 0 {
		return nil, fmt.Errorf("%w: nu must be non-negative, got %g", ErrBadParameter, nu)
	}
	switch name {
	case "ew":
		return &EW{Nu: nu}, nil
	case "kpz":
		return &KPZ{Nu: nu, Lambda: lambda}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}

// ModelNames lists the models New accepts.
func ModelNames() []string { return []string{"ew", "kpz"} }

func validate(f *lattice.Field, eta []float64) error {
	if f == nil || f.Len() == 0 {
		return ErrNilField
	}
	if eta != nil && len(eta) != f.Len() {
		return fmt.Errorf("%w: noise length %d, field cells %d",
			lattice.ErrShapeMismatch, len(eta), f.Len())
	}
	return nil
}
