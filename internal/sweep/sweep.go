// Package sweep runs scripted batches of growth simulations from a YAML
// scenario file, one run per parameter combination.
package sweep

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/surfgrow/internal/analysis"
	"github.com/san-kum/surfgrow/internal/config"
	"github.com/san-kum/surfgrow/internal/metrics"
	"github.com/san-kum/surfgrow/internal/sim"
)

// Scenario is a named list of runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run is one scenario entry: a full run configuration plus a label.
type Run struct {
	Label         string `yaml:"label"`
	config.Config `yaml:",inline"`
}

// Summary is the per-run outcome of a scenario.
type Summary struct {
	Label      string
	Model      string
	Nu         float64
	Lambda     float64
	Beta       float64
	BetaOK     bool
	FinalWidth float64
	MassDrift  float64
	StepsTaken int
	Halted     bool
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("sweep: scenario %q has no runs", scenario.Name)
	}
	return &scenario, nil
}

// RunScenario executes every run in order and returns their summaries.
func RunScenario(ctx context.Context, scenario *Scenario) ([]Summary, error) {
	summaries := make([]Summary, 0, len(scenario.Runs))

	for i := range scenario.Runs {
		entry := &scenario.Runs[i]
		cfg := entry.Config
		applyDefaults(&cfg)

		model, f0, runCfg, err := sim.FromConfig(&cfg)
		if err != nil {
			return summaries, fmt.Errorf("sweep: run %q: %w", entry.Label, err)
		}

		runner := sim.New(model)
		drift := metrics.NewMassDrift()
		runner.AddMetric(drift)

		result, err := runner.Run(ctx, f0, runCfg)
		if err != nil {
			return summaries, fmt.Errorf("sweep: run %q: %w", entry.Label, err)
		}

		s := Summary{
			Label:      entry.Label,
			Model:      cfg.Model,
			Nu:         cfg.Nu,
			Lambda:     cfg.Lambda,
			MassDrift:  drift.Value(),
			StepsTaken: result.StepsTaken,
			Halted:     len(result.Errors) > 0,
		}
		if len(result.Widths) > 0 {
			s.FinalWidth = result.Widths[len(result.Widths)-1]
		}
		if beta, err := analysis.GrowthExponent(result.Widths, 0.5); err == nil {
			s.Beta = beta
			s.BetaOK = true
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func applyDefaults(cfg *config.Config) {
	def := config.DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Size == 0 {
		cfg.Size = def.Size
	}
	if cfg.Steps == 0 {
		cfg.Steps = def.Steps
	}
	if cfg.Limit == 0 {
		cfg.Limit = def.Limit
	}
}
