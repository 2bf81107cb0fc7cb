package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/transitlab/netmat/pkg/errors"
	"github.com/transitlab/netmat/pkg/network"
)

// fileConfig is the optional TOML configuration for the convert command.
// Flags set explicitly on the command line take precedence over it.
//
//	[units]
//	threshold = 0.01
//	factor = 1000.0
//
//	[output]
//	archive = ""          # derived from the input path when empty
//	dump = "roadgraph.txt"
type fileConfig struct {
	Units  unitsConfig  `toml:"units"`
	Output outputConfig `toml:"output"`
}

type unitsConfig struct {
	Threshold float64 `toml:"threshold" validate:"gte=0"`
	Factor    float64 `toml:"factor" validate:"gt=0"`
}

type outputConfig struct {
	Archive string `toml:"archive"`
	Dump    string `toml:"dump"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() fileConfig {
	return fileConfig{
		Units: unitsConfig{
			Threshold: network.DefaultLengthThreshold,
			Factor:    network.DefaultLengthFactor,
		},
	}
}

// loadConfig reads and validates a TOML config file.
// An empty path yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate %s", path)
	}
	return cfg, nil
}
