// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/report"
)

func (a *app) newFitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fit <file>",
		Short: "Fit the ellipsoid of one polyhedron file",
		Long:  "Read a site list (first site is the centre), fit its minimum-volume enclosing ellipsoid and print the report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runFit(args[0])
		},
	}
}

func (a *app) runFit(path string) (err error) {
	p, err := polyhedron.ReadFile(path)
	if err != nil {
		return err
	}
	e, err := p.FitEllipsoid(a.cfg.FitOptions()...)
	if err != nil {
		return err
	}
	if !e.Converged() {
		a.logger.Printf("%s: iteration cap reached, residual %g", path, e.Tolerance())
	}

	st, err := a.openStore()
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
		run, err := st.BeginRun("fit " + path)
		if err != nil {
			return err
		}
		if err = st.SaveResult(run, path, p.Centre.Label, e, p); err != nil {
			return err
		}
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

	return report.Write(w, []report.Entry{{Name: p.Centre.Label, Polyhedron: p, Ellipsoid: e}}, a.cfg.Verbosity)
}
