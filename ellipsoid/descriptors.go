// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"
)

// MeanRadius returns the arithmetic mean of the three radii.
func (e *Ellipsoid) MeanRadius() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}

	return stat.Mean(e.radii[:], nil), nil
}

// RadiusVariance returns the mean squared deviation of the radii from
// MeanRadius (population variance).
func (e *Ellipsoid) RadiusVariance() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}

	return stat.PopVariance(e.radii[:], nil), nil
}

// RadiusStdDev returns the square root of RadiusVariance.
func (e *Ellipsoid) RadiusStdDev() (float64, error) {
	v, err := e.RadiusVariance()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// SphereRadius returns the radius of the sphere of equal volume, the
// geometric mean of the radii. It is 0 for degenerate shapes.
func (e *Ellipsoid) SphereRadius() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}
	if e.Dims() < 3 {
		return 0, nil
	}

	return math.Cbrt(e.radii[0] * e.radii[1] * e.radii[2]), nil
}

// Volume returns 4/3·π·r1·r2·r3, or 0 for degenerate shapes.
func (e *Ellipsoid) Volume() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}
	if e.Dims() < 3 {
		return 0, nil
	}

	return 4.0 / 3.0 * math.Pi * e.radii[0] * e.radii[1] * e.radii[2], nil
}

// StrainEnergy approximates the strain energy of deforming a sphere into the
// ellipsoid: Σr²/(Σr)² − 1/3. It is NaN for degenerate shapes and 0 when all
// radii vanish.
func (e *Ellipsoid) StrainEnergy() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}
	if e.Dims() < 3 {
		return math.NaN(), nil
	}
	sum, sq := 0.0, 0.0
	for _, r := range e.radii {
		sum += r
		sq += r * r
	}
	if sum == 0 {
		return 0, nil
	}

	return sq/(sum*sum) - 1.0/3.0, nil
}

// ShapeParameter returns r3/r2 − r2/r1: positive for prolate, negative for
// oblate and zero for spherical shapes. It is NaN when r1 or r2 is zero.
func (e *Ellipsoid) ShapeParameter() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}
	r1, r2, r3 := e.radii[0], e.radii[1], e.radii[2]
	if r1 == 0 || r2 == 0 {
		return math.NaN(), nil
	}

	return r3/r2 - r2/r1, nil
}

// UniqueRadii counts distinct nonzero radii, treating neighbours closer than
// tol as equal. tol ≤ 0 selects Tolerance(). A single point has 0.
func (e *Ellipsoid) UniqueRadii(tol float64) (int, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}
	if e.Dims() == 0 {
		return 0, nil
	}
	if tol <= 0 {
		tol = e.tolerance
	}
	count := 0
	prev := math.NaN()
	for _, r := range e.radii { // already descending
		if r == 0 {
			continue
		}
		if count == 0 || math.Abs(prev-r) >= tol {
			count++
		}
		prev = r
	}

	return count, nil
}

// CentreDisplacement returns the distance of the centre from the origin.
func (e *Ellipsoid) CentreDisplacement() (float64, error) {
	if !e.fitted {
		return 0, ErrNotFitted
	}

	return e.centre.Norm(), nil
}

// CentreAxes projects the centre onto the principal axes (centre · rotation).
func (e *Ellipsoid) CentreAxes() ([3]float64, error) {
	var out [3]float64
	if !e.fitted {
		return out, ErrNotFitted
	}
	for k := range out {
		out[k] = e.centre.Dot(e.Axis(k))
	}

	return out, nil
}

// Summary is every descriptor of a fitted ellipsoid in one value.
type Summary struct {
	Dims               int
	Radii              [3]float64
	Centre             r3.Vector
	Tolerance          float64
	Converged          bool
	Iterations         int
	MeanRadius         float64
	RadiusVariance     float64
	RadiusStdDev       float64
	SphereRadius       float64
	Volume             float64
	StrainEnergy       float64
	ShapeParameter     float64
	UniqueRadii        int
	CentreDisplacement float64
	CentreAxes         [3]float64
}

// Summary collects all descriptors; UniqueRadii uses Tolerance().
func (e *Ellipsoid) Summary() (Summary, error) {
	if !e.fitted {
		return Summary{}, ErrNotFitted
	}
	s := Summary{
		Dims:       e.Dims(),
		Radii:      e.radii,
		Centre:     e.centre,
		Tolerance:  e.tolerance,
		Converged:  e.converged,
		Iterations: e.iterations,
	}
	// Errors below are impossible once fitted.
	s.MeanRadius, _ = e.MeanRadius()
	s.RadiusVariance, _ = e.RadiusVariance()
	s.RadiusStdDev, _ = e.RadiusStdDev()
	s.SphereRadius, _ = e.SphereRadius()
	s.Volume, _ = e.Volume()
	s.StrainEnergy, _ = e.StrainEnergy()
	s.ShapeParameter, _ = e.ShapeParameter()
	s.UniqueRadii, _ = e.UniqueRadii(0)
	s.CentreDisplacement, _ = e.CentreDisplacement()
	s.CentreAxes, _ = e.CentreAxes()

	return s, nil
}
