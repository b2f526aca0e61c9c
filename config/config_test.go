// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linalg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 10*time.Second, cfg.Engine.CallTimeout)
	require.Equal(t, 512, cfg.Engine.MaxDimension)
	require.Equal(t, 1e-8, cfg.Tolerance.Residual)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_FileEnvFlagsPrecedence(t *testing.T) {
	path := writeFile(t, `
tolerance:
  singularity: 10
engine:
  callTimeout: 2s
runner:
  workers: 8
  output: yaml
log:
  level: debug
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 10.0, cfg.Tolerance.Singularity)
	require.Equal(t, 2*time.Second, cfg.Engine.CallTimeout)
	require.Equal(t, 8, cfg.Runner.Workers)
	require.Equal(t, config.OutputYAML, cfg.Runner.Output)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, config.Default().Tolerance.Symmetry, cfg.Tolerance.Symmetry, "untouched keys keep defaults")

	t.Setenv("LINALG_RUNNER_WORKERS", "3")
	cfg, err = config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Runner.Workers, "environment beats the file")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", 4, "")
	fs.Duration("timeout", time.Second, "")
	fs.String("output", "json", "")
	require.NoError(t, fs.Parse([]string{"--workers=7", "--timeout=250ms"}))

	cfg, err = config.Load(path, fs)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Runner.Workers, "changed flag beats the environment")
	require.Equal(t, 250*time.Millisecond, cfg.Engine.CallTimeout)
	require.Equal(t, config.OutputYAML, cfg.Runner.Output, "unchanged flag does not override the file")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "runner:\n  workers: 0\n"), nil)
	require.ErrorContains(t, err, "runner.workers")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		msg    string
	}{
		{"negative symmetry", func(c *config.Config) { c.Tolerance.Symmetry = -1 }, "tolerance.symmetry"},
		{"negative residual", func(c *config.Config) { c.Tolerance.Residual = -1e-9 }, "tolerance.residual"},
		{"negative timeout", func(c *config.Config) { c.Engine.CallTimeout = -time.Second }, "engine.callTimeout"},
		{"negative max dimension", func(c *config.Config) { c.Engine.MaxDimension = -1 }, "engine.maxDimension"},
		{"no workers", func(c *config.Config) { c.Runner.Workers = 0 }, "runner.workers"},
		{"rate without burst", func(c *config.Config) { c.Runner.RateLimit = 5; c.Runner.Burst = 0 }, "runner.burst"},
		{"bad output", func(c *config.Config) { c.Runner.Output = "xml" }, "runner.output"},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tc.msg)
		})
	}
}

func TestMatrixOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Tolerance.Symmetry = 1e-3
	cfg.Tolerance.Singularity = 100
	o := matrix.NewOptions(cfg.MatrixOptions()...)
	require.Equal(t, 1e-3, o.Epsilon())
	require.Equal(t, matrix.DefaultRelativeTolerance, o.RelativeTolerance())
	require.Equal(t, 100.0, o.SingularityScale())

	require.Len(t, cfg.EngineOptions(), 4)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	out, err := config.Default().YAML()
	require.NoError(t, err)
	require.Contains(t, string(out), "callTimeout: 10s")
	require.Contains(t, string(out), "output: json")
}
