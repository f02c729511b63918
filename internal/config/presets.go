package config

var Presets = map[string]map[string]*Config{
	"ew": {
		"relax": {
			Model: "ew", Size: 32, Steps: 200, Nu: 0.2,
			Noise: NoiseConfig{Kind: "zero"},
			Init:  InitConfig{Kind: "random", Bound: 10.0},
		},
		"noisy": {
			Model: "ew", Size: 32, Steps: 500, Nu: 0.1,
			Noise: NoiseConfig{Kind: "signed"},
			Init:  InitConfig{Kind: "flat", Height: 5.0},
		},
		"thermal": {
			Model: "ew", Size: 64, Steps: 1000, Nu: 0.1,
			Noise: NoiseConfig{Kind: "gaussian"},
			Init:  InitConfig{Kind: "flat"},
		},
	},
	"kpz": {
		"growth": {
			Model: "kpz", Size: 32, Steps: 500, Nu: 0.1, Lambda: 1.0,
			Noise: NoiseConfig{Kind: "gaussian"},
			Init:  InitConfig{Kind: "flat"},
		},
		"gentle": {
			Model: "kpz", Size: 32, Steps: 300, Nu: 0.15, Lambda: 0.2,
			Noise: NoiseConfig{Kind: "signed"},
			Init:  InitConfig{Kind: "flat", Height: 5.0},
		},
		"unstable": {
			Model: "kpz", Size: 16, Steps: 100, Nu: 0.05, Lambda: 4.0,
			Noise: NoiseConfig{Kind: "gaussian"},
			Init:  InitConfig{Kind: "random", Bound: 5.0},
			Limit: 1e6,
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
