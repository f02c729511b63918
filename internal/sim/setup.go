package sim

import (
	"fmt"

	"github.com/san-kum/surfgrow/internal/config"
	"github.com/san-kum/surfgrow/internal/growth"
	"github.com/san-kum/surfgrow/internal/lattice"
	"github.com/san-kum/surfgrow/internal/noise"
)

// InitialField builds the starting surface described by an init config.
func InitialField(init config.InitConfig, size int) (*lattice.Field, error) {
	switch init.Kind {
	case "flat", "":
		return lattice.Uniform(size, init.Height)
	case "random":
		return lattice.Random(size, init.Bound, init.Seed)
	default:
		return nil, fmt.Errorf("sim: unknown init kind %q", init.Kind)
	}
}

// FromConfig assembles a model, initial field, and run config from a
// loaded configuration.
func FromConfig(cfg *config.Config) (growth.Model, *lattice.Field, Config, error) {
	model, err := growth.New(cfg.Model, cfg.Nu, cfg.Lambda)
	if err != nil {
		return nil, nil, Config{}, err
	}

	f0, err := InitialField(cfg.Init, cfg.Size)
	if err != nil {
		return nil, nil, Config{}, err
	}

	kind, err := noise.ParseKind(cfg.Noise.Kind)
	if err != nil {
		return nil, nil, Config{}, err
	}

	runCfg := Config{
		Steps:           cfg.Steps,
		NoiseKind:       kind,
		NoiseSeed:       cfg.Noise.Seed,
		KeepHistory:     cfg.KeepHistory,
		ValidateField:   true,
		DivergenceLimit: cfg.Limit,
	}
	return model, f0, runCfg, nil
}
