package fsmbin

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config Settings shared by the commands. Zero values in a config file keep
// the defaults.
type Config struct {
	// Probability scale (P_max) assumed for table files.
	Scale int `yaml:"scale"`
	// L1 convergence tolerance of the stationary distribution.
	Tolerance float64 `yaml:"tolerance"`
	// Iteration cap of the stationary distribution.
	MaxIterations int `yaml:"max_iterations"`
	// Bit source encoding for run: "text" or "binary".
	Encoding string `yaml:"encoding"`
}

func DefaultConfig() Config {
	return Config{
		Scale:         DefaultScale,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Encoding:      EncodingText.String(),
	}
}

// LoadConfig Reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %s", path)
	}
	if file.Scale != 0 {
		cfg.Scale = file.Scale
	}
	if file.Tolerance != 0 {
		cfg.Tolerance = file.Tolerance
	}
	if file.MaxIterations != 0 {
		cfg.MaxIterations = file.MaxIterations
	}
	if file.Encoding != "" {
		cfg.Encoding = file.Encoding
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate Rejects values no command can work with.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return errors.Newf("scale must be positive, got %d", c.Scale)
	}
	if c.Tolerance <= 0 {
		return errors.Newf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return errors.Newf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if _, err := ParseBitEncoding(c.Encoding); err != nil {
		return err
	}
	return nil
}

// ModelOptions Returns the model options the config implies.
func (c Config) ModelOptions() []ModelOption {
	return []ModelOption{WithScale(c.Scale)}
}

// StatsOptions Returns the stats options the config implies.
func (c Config) StatsOptions() []StatsOption {
	return []StatsOption{WithTolerance(c.Tolerance), WithMaxIterations(c.MaxIterations)}
}
