// SPDX-License-Identifier: MIT

// Package ellipsoid fits minimum-volume enclosing ellipsoids to coordination
// polyhedra and derives their distortion descriptors.
//
// 🚀 What is here?
//
//   - Ellipsoid: the value object (radii, centre, rotation, dims, achieved
//     tolerance, retained points) with an explicit New → Fit lifecycle.
//   - Assembler: turns MVEE weights into a canonical ellipsoid. Radii are
//     sorted descending, rotation columns are the matching principal axes and
//     every axis has its largest-magnitude component positive.
//   - Degenerate clouds (a point, a segment, a flat polygon) are fitted in
//     their own dimension and re-embedded into 3-D with zero radii.
//   - Descriptors: mean radius, radius variance and standard deviation,
//     sphere-equivalent radius, volume, strain energy, shape parameter,
//     unique radius count and centre displacement.
//
// ✨ Quick start
//
//	e, err := ellipsoid.Fit(cloud, ellipsoid.WithTolerance(1e-6))
//	if err != nil { /* geometry.ErrInput or ErrSingularGeometry */ }
//	if !e.Converged() { /* Tolerance() holds the residual reached */ }
//	shape, _ := e.ShapeParameter()
//
// ⚙️ Errors
//
//   - Input errors come from package geometry and match geometry.ErrInput.
//   - ErrSingularGeometry: the scatter matrix became singular mid-fit.
//   - ErrNotFitted: a descriptor was requested before Fit.
//   - ErrNotConverged: returned by RequireConverged only; a capped fit is
//     otherwise a usable, degraded-precision result.
//
// The package never logs and holds no package-level mutable state.
package ellipsoid
