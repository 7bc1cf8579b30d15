// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/batch"
	"github.com/katalvlaran/polyhedra/report"
)

func (a *app) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>...",
		Short: "Fit many polyhedron files concurrently",
		Long: `Fit every file with a pool of workers. Results are reported in argument
order; a failing file is reported and does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args)
		},
	}
}

func (a *app) runBatch(cmd *cobra.Command, paths []string) (err error) {
	jobs := make([]batch.Job, len(paths))
	for i, p := range paths {
		jobs[i] = batch.Job{ID: p, Path: p}
	}

	results := batch.Run(cmd.Context(), jobs,
		batch.WithWorkers(a.cfg.Workers),
		batch.WithLogger(a.logger),
		batch.WithFitOptions(a.cfg.FitOptions()...))

	st, err := a.openStore()
	if err != nil {
		return err
	}
	var run string
	if st != nil {
		defer st.Close()
		if run, err = st.BeginRun(fmt.Sprintf("batch of %d files", len(paths))); err != nil {
			return err
		}
	}

	entries := make([]report.Entry, len(results))
	failed := 0
	for i, res := range results {
		entries[i] = report.Entry{Name: entryName(res), Polyhedron: res.Polyhedron, Ellipsoid: res.Ellipsoid, Err: res.Err}
		if res.Err != nil {
			failed++
			continue
		}
		if st != nil {
			if err = st.SaveResult(run, res.Job.ID, res.Polyhedron.Centre.Label, res.Ellipsoid, res.Polyhedron); err != nil {
				return err
			}
		}
	}
	if st != nil {
		a.logger.Printf("stored run %s in %s", run, a.cfg.Database)
	}

	w, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()
	if err = report.Write(w, entries, a.cfg.Verbosity); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fits failed", failed, len(results))
	}

	return nil
}

func entryName(res batch.Result) string {
	base := filepath.Base(res.Job.Path)
	if res.Polyhedron == nil {
		return base
	}

	return base + " " + res.Polyhedron.Centre.Label
}
