// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/engine"
)

// newRootCmd assembles the command tree. Every command builds its own
// engine; there is no process-wide state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense linear-algebra computation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	d := config.Default()
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", d.Log.Level, "log level (debug shows one line per operation)")
	pf.Bool("log-dev", d.Log.Development, "human-readable development logging")

	root.AddCommand(newEvalCmd(), newOpsCmd(), newConfigCmd())

	return root
}

// loadConfig resolves the configuration for cmd from --config, LINALG_*
// variables and the flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	return config.Load(path, cmd.Flags())
}

func newEvalCmd() *cobra.Command {
	var in, metricsOut string
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate newline-delimited JSON requests",
		Long: `Reads one JSON request per line, for example

  {"op":"determinant","matrixText":"1 2; 3 4"}

and writes one envelope per request, in input order. Failed operations
produce {"error":...,"kind":...} envelopes; the exit status stays 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, flush, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer flush()

			src := cmd.InOrStdin()
			if in != "" && in != "-" {
				f, err := os.Open(in)
				if err != nil {
					return fmt.Errorf("opening requests: %w", err)
				}
				defer f.Close()
				src = f
			}

			reg := prometheus.NewRegistry()
			return evaluate(cmd, cfg, log, reg, src, cmd.OutOrStdout(), metricsOut)
		},
	}
	d := config.Default()
	f := cmd.Flags()
	f.StringVar(&in, "in", "-", "request file (- for stdin)")
	f.StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this file on exit (- for stderr)")
	f.Int("workers", d.Runner.Workers, "maximum concurrent evaluations")
	f.Float64("rate", d.Runner.RateLimit, "maximum operations per second (0 = unlimited)")
	f.Int("burst", d.Runner.Burst, "rate limiter burst")
	f.String("output", d.Runner.Output, "output format: json or yaml")
	f.Duration("timeout", d.Engine.CallTimeout, "per-operation time limit (0 = none)")
	f.Int("max-dimension", d.Engine.MaxDimension, "largest accepted row/column count (0 = unlimited)")

	return cmd
}

// evaluate wires one engine with logging and metrics and runs the batch.
func evaluate(cmd *cobra.Command, cfg config.Config, log logr.Logger, reg *prometheus.Registry,
	in io.Reader, out io.Writer, metricsOut string) error {
	metrics, err := engine.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	opts := append(cfg.EngineOptions(), engine.WithLogger(log), engine.WithMetrics(metrics))
	eng, err := engine.New(opts...)
	if err != nil {
		return err
	}

	if _, err = newRunner(eng, cfg.Runner, log).run(cmd.Context(), in, out); err != nil {
		return err
	}
	if metricsOut != "" {
		return dumpMetrics(metricsOut, reg)
	}

	return nil
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the registered operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := engine.New()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, op := range eng.Operations() {
				fmt.Fprintf(tw, "%s\t%s\n", op.Name, op.Summary)
			}

			return tw.Flush()
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			b, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)

			return err
		},
	}
}
