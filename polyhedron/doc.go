// SPDX-License-Identifier: MIT

// Package polyhedron models a coordination polyhedron: one central site and
// its ligand sites in Cartesian coordinates.
//
// A Polyhedron provides the relative point cloud the ellipsoid fit consumes
// (centre first, at the origin), centre–ligand bond statistics and a reader
// for a plain-text site list:
//
//	# comment
//	Ti1  Ti  0.000 0.000 0.000   <- first site line is the centre
//	O1   O   1.950 0.000 0.000
//	O2   O   0.000 1.950 0.000
//
// The type column is optional; a line may be "label x y z".
package polyhedron
