// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/config"
	"github.com/katalvlaran/polyhedra/store"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// flags holds the persistent command-line overrides.
type flags struct {
	configPath    string
	tolerance     float64
	maxIterations int
	method        string
	workers       int
	verbosity     int
	database      string
	output        string
}

// app is the state shared by all subcommands.
type app struct {
	flags  flags
	cfg    config.Config
	stdout io.Writer
	logger *log.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, logger: log.New(stderr, "pieface: ", log.LstdFlags)}
	def := config.Default()

	root := &cobra.Command{
		Use:   "pieface",
		Short: "Minimum-volume enclosing ellipsoids for coordination polyhedra",
		Long: `pieface fits the minimum-volume enclosing ellipsoid to the sites of a
coordination polyhedron and reports its radii, orientation and distortion
descriptors (shape parameter, strain energy, unique radii).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolveConfig(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "TOML configuration file")
	pf.Float64Var(&a.flags.tolerance, "tolerance", def.Tolerance, "convergence tolerance on the weight update")
	pf.IntVar(&a.flags.maxIterations, "max-iterations", def.MaxIterations, "iteration cap (0 = unbounded)")
	pf.StringVar(&a.flags.method, "method", def.Method, "solver: khachiyan or cholesky")
	pf.IntVar(&a.flags.workers, "workers", def.Workers, "concurrent fits in batch mode")
	pf.IntVarP(&a.flags.verbosity, "verbosity", "v", def.Verbosity, "report detail, 0-3")
	pf.StringVar(&a.flags.database, "db", "", "SQLite database to store results in")
	pf.StringVarP(&a.flags.output, "output", "o", "", "write the report to this file instead of stdout")

	root.AddCommand(a.newFitCmd(), a.newBatchCmd(), newVersionCmd())

	return root
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func (a *app) resolveConfig(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		var err error
		if cfg, err = config.Load(a.flags.configPath); err != nil {
			return err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("tolerance") {
		cfg.Tolerance = a.flags.tolerance
	}
	if fs.Changed("max-iterations") {
		cfg.MaxIterations = a.flags.maxIterations
	}
	if fs.Changed("method") {
		cfg.Method = a.flags.method
	}
	if fs.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if fs.Changed("verbosity") {
		cfg.Verbosity = a.flags.verbosity
	}
	if fs.Changed("db") {
		cfg.Database = a.flags.database
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// openOutput returns the report destination and its closer.
func (a *app) openOutput() (io.Writer, func() error, error) {
	if a.flags.output == "" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(a.flags.output)
	if err != nil {
		return nil, nil, fmt.Errorf("output: %w", err)
	}

	return f, f.Close, nil
}

// openStore returns nil when no database is configured.
func (a *app) openStore() (*store.Store, error) {
	if a.cfg.Database == "" {
		return nil, nil
	}

	return store.Open(a.cfg.Database)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pieface %s (%s)\n", Version, GitCommit)
		},
	}
}
