// SPDX-License-Identifier: MIT

// Package polyhedra measures the distortion of coordination polyhedra in
// crystal structures by fitting minimum-volume enclosing ellipsoids.
//
// 🚀 What is polyhedra?
//
//	A small numeric toolkit and CLI that brings together:
//		• Geometry reduction: point, line, plane or volume by numerical rank
//		• MVEE solver: Khachiyan iteration, plain or with Cholesky rank-one updates
//		• Ellipsoid assembly: descending radii, matching axes, fixed sign convention
//		• Descriptors: mean radius, variance, volume, strain energy, shape parameter
//		• Batch fitting: a worker pool with results in input order
//		• Persistence: SQLite result store, one run per batch
//
// ✨ Layout
//
//	geometry/     PointCloud, rank classification, reduced frames
//	mvee/         weight iteration for full-rank point sets
//	ellipsoid/    Ellipsoid value object, assembler and descriptors
//	polyhedron/   centre + ligand sites, bond statistics, site-list reader
//	report/       verbosity-levelled text report
//	batch/        concurrent fitting of many polyhedra
//	store/        SQLite persistence
//	config/       TOML configuration for the CLI
//	cmd/pieface   command-line front end
//	examples/     runnable walkthroughs
//
// Quick example:
//
//	p, _ := polyhedron.ReadFile("TiO6.txt")
//	e, _ := p.FitEllipsoid(ellipsoid.WithTolerance(1e-6))
//	shape, _ := e.ShapeParameter() // > 0 prolate, < 0 oblate
//
//	go install github.com/katalvlaran/polyhedra/cmd/pieface@latest
package polyhedra
