// SPDX-License-Identifier: MIT

// Command clusterviz computes confidence-region outlines for clustered 2-D
// point tables and prints them as SVG path strings or renders them as a chart.
//
// Usage:
//
//	clusterviz outline data/all_confounders_3.csv
//	clusterviz outline --k 3 --data-dir data --json
//	clusterviz render --k 3 -o confounders.svg
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/clusterviz/cluster"
	"github.com/katalvlaran/clusterviz/dataset"
	"github.com/katalvlaran/clusterviz/internal/config"
	"github.com/katalvlaran/clusterviz/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries flag values and the per-invocation state built in
// PersistentPreRunE.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	nStd       float64
	size       int
	workers    int

	// Input selection
	k       int
	dataDir string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "clusterviz",
		Short: "Confidence-region outlines for clustered 2-D data",
		Long: `clusterviz reads a table of labelled points (columns x, y, cluster), bounds
every cluster with its n-standard-deviation confidence ellipse and emits the
outlines as SVG path strings or draws them over the scatter plot.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.Float64Var(&a.nStd, "n-std", 0, "standard-deviation multiplier (default from config, 1.96)")
	pf.IntVar(&a.size, "size", 0, "outline vertex count (default from config, 100)")
	pf.IntVar(&a.workers, "workers", 0, "concurrent estimator calls (0 = one per CPU)")
	pf.IntVar(&a.k, "k", 0, "read all_confounders_<k>.csv from --data-dir instead of a path argument")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory holding all_confounders_<k>.csv (default from config, data)")

	root.AddCommand(newOutlineCmd(a), newRenderCmd(a))

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("n-std") {
		if !(a.nStd > 0) {
			return fmt.Errorf("%w: --n-std must be > 0, got %v", config.ErrInvalid, a.nStd)
		}
		cfg.Estimator.NStd = a.nStd
	}
	if flags.Changed("size") {
		if a.size <= 0 {
			return fmt.Errorf("%w: --size must be > 0, got %d", config.ErrInvalid, a.size)
		}
		cfg.Estimator.Size = a.size
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("data-dir") {
		cfg.Input.DataDir = a.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Float64("n_std", cfg.Estimator.NStd),
		zap.Int("size", cfg.Estimator.Size),
		zap.Int("workers", cfg.Workers))

	return nil
}

// loadConfig reads --config when given (it must exist) or the defaults.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		return config.Load("")
	}
	if _, err := os.Stat(a.configPath); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return config.Load(a.configPath)
}

// inputPath resolves the table to read from args or --k.
func (a *app) inputPath(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 1 && cmd.Flags().Changed("k"):
		return "", errors.New("give either a path or --k, not both")
	case len(args) == 1:
		return args[0], nil
	case cmd.Flags().Changed("k"):
		return dataset.ConfoundersPath(a.cfg.Input.DataDir, a.k), nil
	}

	return "", errors.New("missing input: pass a CSV path or --k")
}

// outlines loads the input table and estimates every cluster's outline.
func (a *app) outlines(cmd *cobra.Command, args []string) ([]cluster.Group, []cluster.Result, error) {
	path, err := a.inputPath(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	delim, err := a.cfg.Delimiter()
	if err != nil {
		return nil, nil, err
	}

	tbl, err := dataset.LoadConfounders(path, delim)
	if err != nil {
		return nil, nil, err
	}
	groups, err := tbl.Groups()
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("table loaded",
		zap.String("path", path),
		zap.Int("rows", tbl.Len()),
		zap.Int("clusters", len(groups)))

	results, err := cluster.Outlines(cmd.Context(), groups, cluster.Config{
		Options: a.cfg.EstimatorOptions(),
		Workers: a.cfg.Workers,
		Logger:  a.logger,
	})
	if err != nil {
		return nil, nil, err
	}

	return groups, results, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
