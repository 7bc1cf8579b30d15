// SPDX-License-Identifier: MIT

package geometry_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/geometry"
)

const eps = 1e-9

func octahedron() geometry.PointCloud {
	return geometry.PointCloud{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
}

// TestReduce_EmptyAndNaN verifies the InputError family.
func TestReduce_EmptyAndNaN(t *testing.T) {
	_, err := geometry.Reduce(nil)
	assert.ErrorIs(t, err, geometry.ErrEmptyPointCloud)
	assert.ErrorIs(t, err, geometry.ErrInput)

	_, err = geometry.Reduce(geometry.PointCloud{{X: math.NaN()}})
	assert.ErrorIs(t, err, geometry.ErrNaNInf)
	assert.ErrorIs(t, err, geometry.ErrInput)

	_, err = geometry.Reduce(geometry.PointCloud{{X: 1}, {Y: math.Inf(1)}})
	assert.ErrorIs(t, err, geometry.ErrNaNInf)
}

func TestReduce_SinglePoint(t *testing.T) {
	red, err := geometry.Reduce(geometry.PointCloud{{X: 1, Y: 1, Z: 1}})
	require.NoError(t, err)
	assert.Equal(t, geometry.Point, red.Kind)
	assert.Equal(t, 0, red.Kind.Dims())
	assert.Equal(t, r3.Vector{X: 1, Y: 1, Z: 1}, red.Origin)
	assert.Nil(t, red.Coords)
}

// TestReduce_DuplicatesCollapseToPoint checks that merging happens before the rank test.
func TestReduce_DuplicatesCollapseToPoint(t *testing.T) {
	p := r3.Vector{X: 0.5, Y: -2, Z: 3}
	red, err := geometry.Reduce(geometry.PointCloud{p, p, p})
	require.NoError(t, err)
	assert.Equal(t, geometry.Point, red.Kind)
	assert.Len(t, red.Points, 1)
}

func TestReduce_TwoPointsIsLine(t *testing.T) {
	red, err := geometry.Reduce(geometry.PointCloud{{}, {X: 2}})
	require.NoError(t, err)
	require.Equal(t, geometry.Line, red.Kind)
	assert.InDelta(t, 1.0, math.Abs(red.Direction.X), eps)
	r, c := red.Coords.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
}

// TestReduce_CollinearThreeIsLine: rank must win over the 3-point shortcut.
func TestReduce_CollinearThreeIsLine(t *testing.T) {
	red, err := geometry.Reduce(geometry.PointCloud{
		{}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: -1},
	})
	require.NoError(t, err)
	require.Equal(t, geometry.Line, red.Kind)

	inv := 1 / math.Sqrt(3)
	assert.InDelta(t, inv, math.Abs(red.Direction.X), eps)
	assert.InDelta(t, inv, math.Abs(red.Direction.Y), eps)
	assert.InDelta(t, inv, math.Abs(red.Direction.Z), eps)

	// Projected span is 2√3 around the first point.
	lo, hi := red.Coords.At(0, 0), red.Coords.At(0, 0)
	for i := 1; i < 3; i++ {
		lo = math.Min(lo, red.Coords.At(i, 0))
		hi = math.Max(hi, red.Coords.At(i, 0))
	}
	assert.InDelta(t, 2*math.Sqrt(3), hi-lo, eps)

	for _, o := range red.Complement() {
		assert.InDelta(t, 0, o.Dot(red.Direction), eps)
		assert.InDelta(t, 1, o.Norm(), eps)
	}
}

func TestReduce_TriangleIsPlane(t *testing.T) {
	red, err := geometry.Reduce(geometry.PointCloud{
		{X: 1}, {X: -0.5, Y: 0.8}, {X: -0.5, Y: -0.8},
	})
	require.NoError(t, err)
	require.Equal(t, geometry.Plane, red.Kind)
	assert.InDelta(t, 1.0, math.Abs(red.Normal.Z), eps)
	assert.InDelta(t, 0, red.Basis[0].Dot(red.Basis[1]), eps)

	// Lifting the 2-D coordinates reproduces the input.
	for i, p := range red.Points {
		q := red.Lift([]float64{red.Coords.At(i, 0), red.Coords.At(i, 1)})
		assert.InDelta(t, 0, p.Distance(q), eps, "point %d: %v vs %v", i, p, q)
	}
}

func TestReduce_OctahedronIsVolume(t *testing.T) {
	red, err := geometry.Reduce(octahedron())
	require.NoError(t, err)
	assert.Equal(t, geometry.Volume, red.Kind)
	assert.Equal(t, 3, red.Kind.Dims())
	r, c := red.Coords.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 3, c)
	assert.Empty(t, red.Complement())
}

// TestReduce_RoundingNoiseDefaults: picometre-scale noise left by symmetry
// expansion does not lift a line or a plane to full rank.
func TestReduce_RoundingNoiseDefaults(t *testing.T) {
	cases := []struct {
		name string
		pc   geometry.PointCloud
		want geometry.Kind
	}{
		{"dumbbell", geometry.PointCloud{{}, {Z: 1.84}, {X: 1e-12, Z: -1.84}}, geometry.Line},
		{"square planar", geometry.PointCloud{
			{}, {X: 2.31}, {X: -2.31}, {Y: 2.31, Z: 1e-12}, {Y: -2.31},
		}, geometry.Plane},
		{"square planar 1e-13", geometry.PointCloud{
			{}, {X: 2}, {X: -2}, {Y: 2, Z: 1e-13}, {Y: -2},
		}, geometry.Plane},
		{"unit plane 1e-9", geometry.PointCloud{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1, Z: 1e-9},
		}, geometry.Plane},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			red, err := geometry.Reduce(tc.pc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, red.Kind)
		})
	}
}

// TestReduce_NoisyLineCoordinates: the projections keep the true span.
func TestReduce_NoisyLineCoordinates(t *testing.T) {
	red, err := geometry.Reduce(geometry.PointCloud{{}, {Z: 1.84}, {X: 1e-12, Z: -1.84}})
	require.NoError(t, err)
	require.Equal(t, geometry.Line, red.Kind)
	assert.InDelta(t, 1, math.Abs(red.Direction.Z), eps)

	span := math.Abs(red.Coords.At(1, 0) - red.Coords.At(2, 0))
	assert.InDelta(t, 3.68, span, eps)
}

// TestReduce_StrictRankTolerance: rcond 0 counts any nonzero extent.
func TestReduce_StrictRankTolerance(t *testing.T) {
	pc := geometry.PointCloud{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1, Z: 1e-9},
	}
	red, err := geometry.Reduce(pc, geometry.WithRankTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, geometry.Volume, red.Kind)

	rank, err := geometry.Rank(pc, geometry.DefaultRankTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	assert.Equal(t, geometry.DefaultRankTolerance, geometry.NewOptions().RankTolerance())
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		pc   geometry.PointCloud
		want int
	}{
		{"single", geometry.PointCloud{{X: 3}}, 0},
		{"segment", geometry.PointCloud{{}, {Y: 1}}, 1},
		{"square", geometry.PointCloud{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}, 2},
		{"octahedron", octahedron(), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geometry.Rank(tc.pc, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "point", geometry.Point.String())
	assert.Equal(t, "line", geometry.Line.String())
	assert.Equal(t, "plane", geometry.Plane.String())
	assert.Equal(t, "volume", geometry.Volume.String())
	assert.Equal(t, "unknown", geometry.Kind(7).String())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { geometry.WithRankTolerance(-1) })
	assert.Panics(t, func() { geometry.WithRankTolerance(1) })
	assert.Panics(t, func() { geometry.WithMergeDistance(math.NaN()) })

	o := geometry.NewOptions(geometry.WithMergeDistance(0.1), geometry.WithRankTolerance(1e-3))
	assert.Equal(t, 0.1, o.MergeDistance())
	assert.Equal(t, 1e-3, o.RankTolerance())
}
