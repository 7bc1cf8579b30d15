// SPDX-License-Identifier: MIT

package polyhedron

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/polyhedra/ellipsoid"
	"github.com/katalvlaran/polyhedra/geometry"
)

// Site is a labelled atomic position.
type Site struct {
	Label    string
	Type     string
	Position r3.Vector
}

// Polyhedron is a central site with its ligands, in input order.
type Polyhedron struct {
	Centre  Site
	Ligands []Site
}

// New validates the positions and returns a Polyhedron owning a copy of ligands.
func New(centre Site, ligands []Site) (*Polyhedron, error) {
	if !finite(centre.Position) {
		return nil, polyhedronErrorf(opNew, ErrNaNInf)
	}
	for _, l := range ligands {
		if !finite(l.Position) {
			return nil, polyhedronErrorf(opNew, ErrNaNInf)
		}
	}
	ligs := make([]Site, len(ligands))
	copy(ligs, ligands)

	return &Polyhedron{Centre: centre, Ligands: ligs}, nil
}

func finite(v r3.Vector) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// CoordinationNumber is the number of ligands.
func (p *Polyhedron) CoordinationNumber() int { return len(p.Ligands) }

// Labels returns the centre label followed by the ligand labels.
func (p *Polyhedron) Labels() []string {
	out := make([]string, 0, len(p.Ligands)+1)
	out = append(out, p.Centre.Label)
	for _, l := range p.Ligands {
		out = append(out, l.Label)
	}

	return out
}

// Points returns every site relative to the centre, the centre first (at the
// origin). This is the cloud an ellipsoid is fitted to.
func (p *Polyhedron) Points() geometry.PointCloud {
	out := make(geometry.PointCloud, 0, len(p.Ligands)+1)
	out = append(out, r3.Vector{})
	for _, l := range p.Ligands {
		out = append(out, l.Position.Sub(p.Centre.Position))
	}

	return out
}

// BondLengths returns the centre–ligand distances in ligand order.
func (p *Polyhedron) BondLengths() []float64 {
	out := make([]float64, len(p.Ligands))
	for i, l := range p.Ligands {
		out[i] = l.Position.Distance(p.Centre.Position)
	}

	return out
}

// MeanBondLength returns the average bond length, NaN without ligands.
func (p *Polyhedron) MeanBondLength() float64 {
	if len(p.Ligands) == 0 {
		return math.NaN()
	}

	return stat.Mean(p.BondLengths(), nil)
}

// BondLengthVariance returns the population variance of the bond lengths,
// NaN without ligands.
func (p *Polyhedron) BondLengthVariance() float64 {
	if len(p.Ligands) == 0 {
		return math.NaN()
	}

	return stat.PopVariance(p.BondLengths(), nil)
}

// BondLengthStdDev is the square root of BondLengthVariance.
func (p *Polyhedron) BondLengthStdDev() float64 {
	return math.Sqrt(p.BondLengthVariance())
}

// FitEllipsoid fits the minimum-volume enclosing ellipsoid of Points().
func (p *Polyhedron) FitEllipsoid(opts ...ellipsoid.Option) (*ellipsoid.Ellipsoid, error) {
	e, err := ellipsoid.Fit(p.Points(), opts...)
	if err != nil {
		return nil, polyhedronErrorf(opFit, err)
	}

	return e, nil
}
