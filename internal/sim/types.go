package sim

import (
	"fmt"

	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/noise"
)

// Metric accumulates a scalar diagnostic over a run.
type Metric interface {
	Name() string
	Observe(f *lattice.Field, step int)
	Value() float64
	Reset()
}

// Observer is notified after every completed step.
type Observer interface {
	OnStep(f *lattice.Field, step int)
}

// Config controls a single run.
type Config struct {
	Steps           int
	NoiseKind       noise.Kind
	NoiseSeed       int64
	KeepHistory     bool
	ValidateField   bool
	DivergenceLimit float64 // 0 disables the magnitude check
}

func DefaultConfig() Config {
	return Config{
		Steps:         100,
		NoiseKind:     noise.Zero,
		KeepHistory:   true,
		ValidateField: true,
	}
}

// Result collects the outcome of a run. Fields holds the initial field plus
// one snapshot per step when Config.KeepHistory is set; otherwise only the
// final field.
type Result struct {
	Fields     []*lattice.Field
	Widths     []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Final returns the last field snapshot.
func (r *Result) Final() *lattice.Field {
	if len(r.Fields) == 0 {
		return nil
	}
	return r.Fields[len(r.Fields)-1]
}

// StepError records where a run halted.
type StepError struct {
	Step    int
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}
