// SPDX-License-Identifier: MIT

// Package report writes fitted coordination polyhedra as a plain-text report
// with cumulative verbosity levels:
//
//	0  radii and centre
//	1  + rotation matrix and the site table
//	2  + tolerance, mean radius, radius variance and volume
//	3  + dimensionality, unique radii, sphere radius, strain energy,
//	     shape parameter and bond-length statistics
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/polyhedra/ellipsoid"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// Verbosity bounds.
const (
	MinVerbosity = 0
	MaxVerbosity = 3
)

const (
	fmtHeader  = "! %s %s -------\n"
	fmtLabel   = "%-25s:"
	fmtFloat   = "%14.8f"
	fmtInt     = "%14d"
	fmtSiteRow = "%-11s%11.6f%11.6f%11.6f%11.6f%11.6f%11.6f%14.6f%s\n"
	fmtSiteHdr = "%-11s%-33s%-33s%14s\n"
)

// Entry is one polyhedron and its fit. A failed fit carries Err and no
// Ellipsoid.
type Entry struct {
	Name       string
	Polyhedron *polyhedron.Polyhedron
	Ellipsoid  *ellipsoid.Ellipsoid
	Err        error
}

// Write renders entries in order. verbosity is clamped to
// [MinVerbosity, MaxVerbosity].
func Write(w io.Writer, entries []Entry, verbosity int) error {
	if verbosity < MinVerbosity {
		verbosity = MinVerbosity
	}
	if verbosity > MaxVerbosity {
		verbosity = MaxVerbosity
	}

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		writeEntry(bw, e, verbosity)
	}

	return bw.Flush()
}

func writeEntry(w *bufio.Writer, e Entry, v int) {
	if e.Err != nil || e.Ellipsoid == nil || !e.Ellipsoid.Fitted() {
		reason := "not fitted"
		if e.Err != nil {
			reason = e.Err.Error()
		}
		fmt.Fprintf(w, "! Fit failed %s: %s\n\n", e.Name, reason)

		return
	}
	if v >= 1 && e.Polyhedron != nil {
		writeSites(w, e.Name, e.Polyhedron)
	}
	writeEllipsoid(w, e, v)
}

func writeSites(w *bufio.Writer, name string, p *polyhedron.Polyhedron) {
	fmt.Fprintf(w, fmtHeader, "Polyhedron definition", fmt.Sprintf("%s (%d-coordinate)", name, p.CoordinationNumber()))
	fmt.Fprintf(w, fmtSiteHdr, "# Atom", "CartesianCoords", "CartesianCoordsReltoCentre", "Bondlength")

	rel := p.Points()
	c := p.Centre.Position
	fmt.Fprintf(w, fmtSiteRow, p.Centre.Label, c.X, c.Y, c.Z, rel[0].X, rel[0].Y, rel[0].Z, 0.0, "  *Central Site")
	bonds := p.BondLengths()
	for i, l := range p.Ligands {
		r := rel[i+1]
		fmt.Fprintf(w, fmtSiteRow, l.Label, l.Position.X, l.Position.Y, l.Position.Z, r.X, r.Y, r.Z, bonds[i], "")
	}
	w.WriteString("\n")
}

func writeEllipsoid(w *bufio.Writer, e Entry, v int) {
	el := e.Ellipsoid
	s, _ := el.Summary() // fitted, checked by the caller

	fmt.Fprintf(w, fmtHeader, "Ellipsoid parameters", e.Name)
	floats(w, "Radii R1 > R2 > R3", s.Radii[0], s.Radii[1], s.Radii[2])
	floats(w, "Ellipsoid centre x,y,z", s.Centre.X, s.Centre.Y, s.Centre.Z)

	if v >= 1 {
		rot := el.Rotation()
		for i := 0; i < 3; i++ {
			label := ""
			if i == 0 {
				label = "Rotation matrix"
			}
			floats(w, label, rot.At(i, 0), rot.At(i, 1), rot.At(i, 2))
		}
	}
	if v >= 2 {
		floats(w, "Tolerance", s.Tolerance)
		if !s.Converged {
			integers(w, "Iterations (capped)", s.Iterations)
		}
		floats(w, "Mean Radius", s.MeanRadius)
		floats(w, "Radius Variance", s.RadiusVariance)
		floats(w, "Volume", s.Volume)
	}
	if v >= 3 {
		integers(w, "Hyperellipse dims", s.Dims)
		integers(w, "Unique radii", s.UniqueRadii)
		floats(w, "Equiv. Sphere Radius", s.SphereRadius)
		floats(w, "Strain Energy", s.StrainEnergy)
		floats(w, "Shape Parameter", s.ShapeParameter)
		floats(w, "Centre displacement", s.CentreDisplacement)
		if p := e.Polyhedron; p != nil {
			integers(w, "Coordination number", p.CoordinationNumber())
			floats(w, "Mean bond length", p.MeanBondLength())
			floats(w, "Bond length variance", p.BondLengthVariance())
		}
	}
	w.WriteString("\n")
}

func floats(w *bufio.Writer, label string, vs ...float64) {
	fmt.Fprintf(w, fmtLabel, label)
	for _, v := range vs {
		fmt.Fprintf(w, fmtFloat, v)
	}
	w.WriteString("\n")
}

func integers(w *bufio.Writer, label string, vs ...int) {
	fmt.Fprintf(w, fmtLabel, label)
	for _, v := range vs {
		fmt.Fprintf(w, fmtInt, v)
	}
	w.WriteString("\n")
}
