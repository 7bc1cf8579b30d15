// SPDX-License-Identifier: MIT

// Package geometry classifies the affine rank of a 3-D point cloud and
// reduces degenerate clouds to the smallest embedding that still admits a
// stable ellipsoid fit.
//
// 🚀 What does it do?
//
//	Given the sites of a coordination polyhedron (already expressed in
//	Cartesian coordinates relative to the polyhedron centre) Reduce decides
//	whether the cloud is a single point, a line segment, a planar figure or a
//	genuine volume, and returns a tagged Reduction carrying exactly what the
//	matching fit path needs:
//
//	  Point    the origin only
//	  Line     origin, line direction, 1-D coordinates
//	  Plane    origin, in-plane basis, normal, 2-D coordinates
//	  Volume   the points themselves
//
// ✨ Numeric policy:
//   - Coincident points (closer than the merge distance) are merged before the
//     rank test; the first occurrence wins and order is preserved.
//   - Rank is computed from the singular values of the points relative to the
//     first point, never by exact equality. A zero rank tolerance selects the
//     conventional max(N,3)·ε_machine cut-off.
//   - Rank always wins over point count: three collinear points are a Line.
//
// ⚙️ Usage:
//
//	red, err := geometry.Reduce(cloud, geometry.WithMergeDistance(1e-6))
//	if err != nil {
//	  // geometry.ErrInput family
//	}
//	switch red.Kind {
//	case geometry.Plane:
//	  // red.Coords is N×2, red.Basis/red.Normal span the frame
//	}
package geometry
