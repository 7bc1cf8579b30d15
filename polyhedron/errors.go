// SPDX-License-Identifier: MIT

package polyhedron

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCentre is returned when a site list contains no site at all.
	ErrNoCentre = errors.New("polyhedron: no central site")

	// ErrBadLine is returned for a site line that is not "label [type] x y z".
	ErrBadLine = errors.New("polyhedron: malformed site line")

	// ErrNaNInf is returned when a site coordinate is not finite.
	ErrNaNInf = errors.New("polyhedron: NaN or Inf coordinate")
)

const (
	opNew      = "New"
	opRead     = "Read"
	opReadFile = "ReadFile"
	opFit      = "FitEllipsoid"
)

func polyhedronErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
