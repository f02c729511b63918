package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 32
	DefaultSteps     = 200
	DefaultNu        = 0.1
	DefaultLambda    = 1.0
	DefaultInitBound = 5.0
	DefaultNoise     = "gaussian"
	DefaultLimit     = 1e9
)

type Config struct {
	Model       string      `yaml:"model"`
	Size        int         `yaml:"size"`
	Steps       int         `yaml:"steps"`
	Nu          float64     `yaml:"nu"`
	Lambda      float64     `yaml:"lambda"`
	Noise       NoiseConfig `yaml:"noise"`
	Init        InitConfig  `yaml:"init"`
	Limit       float64     `yaml:"divergence_limit"`
	KeepHistory bool        `yaml:"keep_history"`
}

type NoiseConfig struct {
	Kind string `yaml:"kind"`
	Seed int64  `yaml:"seed"`
}

type InitConfig struct {
	Kind   string  `yaml:"kind"` // flat | random
	Height float64 `yaml:"height"`
	Bound  float64 `yaml:"bound"`
	Seed   int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "ew",
		Size:        DefaultSize,
		Steps:       DefaultSteps,
		Nu:          DefaultNu,
		Lambda:      DefaultLambda,
		Noise:       NoiseConfig{Kind: DefaultNoise},
		Init:        InitConfig{Kind: "random", Bound: DefaultInitBound},
		Limit:       DefaultLimit,
		KeepHistory: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
