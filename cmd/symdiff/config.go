package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/symgolab/symdiff"
)

const defaultConfigPath = ".symdiff.yaml"

type config struct {
	// MaxSteps caps the simplifier's pass budget.
	MaxSteps int `yaml:"max_steps"`
	// At is the default evaluation point for the demo command.
	At float64 `yaml:"at"`
}

func defaultConfig() config {
	return config{MaxSteps: symdiff.DefaultMaxSteps, At: 1.0}
}

// loadConfig reads the yaml config at path. An empty path falls back to
// .symdiff.yaml in the working directory, which is allowed to be absent.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = symdiff.DefaultMaxSteps
	}
	return cfg, nil
}
