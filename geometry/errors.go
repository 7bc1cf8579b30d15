// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

// ErrInput is the root of every input validation failure in this package.
// Match it with errors.Is to catch the whole family.
var ErrInput = errors.New("geometry: invalid input")

var (
	// ErrEmptyPointCloud is returned when a cloud has no points.
	ErrEmptyPointCloud = fmt.Errorf("%w: empty point cloud", ErrInput)

	// ErrNaNInf is returned when a coordinate is NaN or ±Inf.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf coordinate", ErrInput)

	// ErrBadShape is returned when raw coordinates are not triples.
	ErrBadShape = fmt.Errorf("%w: coordinates must have exactly 3 components", ErrInput)
)

// ErrDecomposition signals that the singular value decomposition of the
// relative positions did not succeed.
var ErrDecomposition = errors.New("geometry: singular value decomposition failed")

const (
	opReduce    = "Reduce"
	opRank      = "Rank"
	opFromSlice = "FromSlices"
)

// geometryErrorf tags err with the failing operation. err must be non-nil.
func geometryErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
