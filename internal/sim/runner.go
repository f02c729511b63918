// Package sim orchestrates growth-model runs: the step loop, noise wiring,
// metric observation, and divergence handling live here.
package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/surfgrow/internal/growth"
	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/noise"
)

// Runner drives a growth model through a configured number of steps.
// Runners are not safe for concurrent use.
type Runner struct {
	model     growth.Model
	metrics   []Metric
	observers []Observer
}

func New(model growth.Model) *Runner {
	return &Runner{model: model}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances f0 for cfg.Steps steps. The initial field is not mutated.
// On divergence (ValidateField) the partial Result is returned with a
// recorded StepError rather than an error; hard failures (bad config,
// noise setup, model validation) return an error.
func (r *Runner) Run(ctx context.Context, f0 *lattice.Field, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if f0 == nil {
		return nil, growth.ErrNilField
	}

	gen, err := noise.New(cfg.NoiseKind, f0.Len(), cfg.NoiseSeed)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Widths:  make([]float64, 0, cfg.Steps+1),
	}
	for _, m := range r.metrics {
		m.Reset()
	}

	f := f0.Clone()
	result.Widths = append(result.Widths, f.Roughness())
	if cfg.KeepHistory {
		result.Fields = append(result.Fields, f.Clone())
	}

	for step := 0; step < cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next, err := r.model.Step(f, gen.Slice())
		if err != nil {
			return result, err
		}
		f = next

		if cfg.ValidateField {
			if !f.IsValid() {
				result.Errors = append(result.Errors,
					StepError{Step: step, Message: "field diverged (NaN/Inf)"})
				break
			}
			if cfg.DivergenceLimit > 0 && f.MaxAbs() > cfg.DivergenceLimit {
				result.Errors = append(result.Errors,
					StepError{Step: step, Message: fmt.Sprintf(
						"height magnitude %.3g exceeds limit %.3g",
						f.MaxAbs(), cfg.DivergenceLimit)})
				break
			}
		}

		result.StepsTaken++
		result.Widths = append(result.Widths, f.Roughness())
		if cfg.KeepHistory {
			result.Fields = append(result.Fields, f.Clone())
		}

		for _, m := range r.metrics {
			m.Observe(f, step)
		}
		for _, obs := range r.observers {
			obs.OnStep(f, step)
		}
	}

	if !cfg.KeepHistory {
		result.Fields = append(result.Fields, f)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// RunWithCallback streams fields to the callback instead of accumulating a
// Result; returning false from the callback stops the run.
func (r *Runner) RunWithCallback(ctx context.Context, f0 *lattice.Field, cfg Config, callback func(f *lattice.Field, step int) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	gen, err := noise.New(cfg.NoiseKind, f0.Len(), cfg.NoiseSeed)
	if err != nil {
		return err
	}

	f := f0.Clone()
	for step := 0; step < cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		next, err := r.model.Step(f, gen.Slice())
		if err != nil {
			return err
		}
		f = next

		if cfg.ValidateField && !f.IsValid() {
			return fmt.Errorf("%w at step %d", lattice.ErrFieldDiverged, step)
		}
		if !callback(f, step) {
			return nil
		}
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("sim: steps must be positive, got %d", cfg.Steps)
	}
	if cfg.DivergenceLimit < 0 {
		return fmt.Errorf("sim: divergence limit must be non-negative, got %f", cfg.DivergenceLimit)
	}
	return nil
}
