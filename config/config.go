// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/engine"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/solve"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LINALG"

// Output formats understood by the runner.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Tolerance is the numeric policy shared by all operations.
type Tolerance struct {
	// Symmetry is the absolute tolerance of the Cholesky symmetry check.
	Symmetry float64 `yaml:"symmetry" mapstructure:"symmetry"`
	// SymmetryRelative is the relative part: |a_ij − a_ji| ≤ abs + rel·|a_ji|.
	SymmetryRelative float64 `yaml:"symmetryRelative" mapstructure:"symmetryRelative"`
	// Residual is the squared least-squares residual above which a system is inconsistent.
	Residual float64 `yaml:"residual" mapstructure:"residual"`
	// Singularity scales the n·ε·max|a| pivot threshold of inverse and solve.
	Singularity float64 `yaml:"singularity" mapstructure:"singularity"`
}

// Engine bounds a single evaluation.
type Engine struct {
	CallTimeout  time.Duration `yaml:"callTimeout" mapstructure:"callTimeout"`
	MaxDimension int           `yaml:"maxDimension" mapstructure:"maxDimension"`
}

// Runner controls the batch evaluator of the CLI.
type Runner struct {
	Workers   int     `yaml:"workers" mapstructure:"workers"`
	RateLimit float64 `yaml:"rateLimit" mapstructure:"rateLimit"` // operations per second, 0 = unlimited
	Burst     int     `yaml:"burst" mapstructure:"burst"`
	Output    string  `yaml:"output" mapstructure:"output"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Development bool   `yaml:"development" mapstructure:"development"`
}

// Config is the complete configuration.
type Config struct {
	Tolerance Tolerance `yaml:"tolerance" mapstructure:"tolerance"`
	Engine    Engine    `yaml:"engine" mapstructure:"engine"`
	Runner    Runner    `yaml:"runner" mapstructure:"runner"`
	Log       Log       `yaml:"log" mapstructure:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance: Tolerance{
			Symmetry:         matrix.DefaultEpsilon,
			SymmetryRelative: matrix.DefaultRelativeTolerance,
			Residual:         solve.DefaultResidualTolerance,
			Singularity:      matrix.DefaultSingularityScale,
		},
		Engine: Engine{
			CallTimeout:  engine.DefaultCallTimeout,
			MaxDimension: engine.DefaultMaxDimension,
		},
		Runner: Runner{Workers: 4, RateLimit: 0, Burst: 1, Output: OutputJSON},
		Log:    Log{Level: "info"},
	}
}

func nonNegativeFinite(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite and >= 0, got %g", name, v)
	}

	return nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"tolerance.symmetry", c.Tolerance.Symmetry},
		{"tolerance.symmetryRelative", c.Tolerance.SymmetryRelative},
		{"tolerance.residual", c.Tolerance.Residual},
		{"tolerance.singularity", c.Tolerance.Singularity},
		{"runner.rateLimit", c.Runner.RateLimit},
	} {
		if err := nonNegativeFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if c.Engine.CallTimeout < 0 {
		return fmt.Errorf("engine.callTimeout must be >= 0, got %s", c.Engine.CallTimeout)
	}
	if c.Engine.MaxDimension < 0 {
		return fmt.Errorf("engine.maxDimension must be >= 0, got %d", c.Engine.MaxDimension)
	}
	if c.Runner.Workers < 1 {
		return fmt.Errorf("runner.workers must be >= 1, got %d", c.Runner.Workers)
	}
	if c.Runner.RateLimit > 0 && c.Runner.Burst < 1 {
		return fmt.Errorf("runner.burst must be >= 1 when rateLimit is set, got %d", c.Runner.Burst)
	}
	switch c.Runner.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("runner.output must be %q or %q, got %q", OutputJSON, OutputYAML, c.Runner.Output)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// MatrixOptions projects the tolerances onto kernel options.
// Call Validate first: the option constructors panic on invalid values.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Tolerance.Symmetry),
		matrix.WithRelativeTolerance(c.Tolerance.SymmetryRelative),
		matrix.WithSingularityScale(c.Tolerance.Singularity),
	}
}

// EngineOptions projects the configuration onto engine options.
func (c Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithMatrixOptions(c.MatrixOptions()...),
		engine.WithResidualTolerance(c.Tolerance.Residual),
		engine.WithMaxDimension(c.Engine.MaxDimension),
		engine.WithCallTimeout(c.Engine.CallTimeout),
	}
}

// YAML renders the configuration as a YAML document.
func (c Config) YAML() ([]byte, error) { return yaml.Marshal(c) }

// FlagKeys maps CLI flag names onto configuration keys.
var FlagKeys = map[string]string{
	"workers":       "runner.workers",
	"rate":          "runner.rateLimit",
	"burst":         "runner.burst",
	"output":        "runner.output",
	"timeout":       "engine.callTimeout",
	"max-dimension": "engine.maxDimension",
	"log-level":     "log.level",
	"log-dev":       "log.development",
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("tolerance.symmetry", d.Tolerance.Symmetry)
	v.SetDefault("tolerance.symmetryRelative", d.Tolerance.SymmetryRelative)
	v.SetDefault("tolerance.residual", d.Tolerance.Residual)
	v.SetDefault("tolerance.singularity", d.Tolerance.Singularity)
	v.SetDefault("engine.callTimeout", d.Engine.CallTimeout)
	v.SetDefault("engine.maxDimension", d.Engine.MaxDimension)
	v.SetDefault("runner.workers", d.Runner.Workers)
	v.SetDefault("runner.rateLimit", d.Runner.RateLimit)
	v.SetDefault("runner.burst", d.Runner.Burst)
	v.SetDefault("runner.output", d.Runner.Output)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
}

// Load resolves the configuration from defaults, the optional YAML file at
// path, LINALG_* environment variables and the changed flags of flags
// (nil means no flags), then validates it.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
