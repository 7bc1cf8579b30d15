// SPDX-License-Identifier: MIT

// Package store persists fitted ellipsoids in SQLite, grouped by run.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/polyhedra/ellipsoid"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	note        TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id           TEXT NOT NULL,
	job_id           TEXT NOT NULL,
	label            TEXT NOT NULL,
	dims             INTEGER NOT NULL,
	r1               REAL NOT NULL,
	r2               REAL NOT NULL,
	r3               REAL NOT NULL,
	cx               REAL NOT NULL,
	cy               REAL NOT NULL,
	cz               REAL NOT NULL,
	rotation_json    TEXT NOT NULL,
	tolerance        REAL NOT NULL,
	converged        INTEGER NOT NULL,
	iterations       INTEGER NOT NULL,
	mean_radius      REAL NOT NULL,
	radius_variance  REAL NOT NULL,
	sphere_radius    REAL NOT NULL,
	volume           REAL NOT NULL,
	strain_energy    REAL,
	shape_parameter  REAL,
	unique_radii     INTEGER NOT NULL,
	coordination     INTEGER NOT NULL,
	mean_bond_length REAL,
	bond_variance    REAL,
	created_at       TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS results_run ON results(run_id, id);
`

// ErrNotFitted is returned when saving an ellipsoid without a successful fit.
var ErrNotFitted = errors.New("store: ellipsoid not fitted")

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Record is one stored fit. NaN descriptors survive the round trip.
type Record struct {
	RunID              string
	JobID              string
	Label              string
	Summary            ellipsoid.Summary
	Rotation           [9]float64 // row-major
	CoordinationNumber int
	MeanBondLength     float64
	BondLengthVariance float64
	CreatedAt          time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Pragmas are per connection; one connection keeps them in force.
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", schema} {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()

			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun registers a new run and returns its id.
func (s *Store) BeginRun(note string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`INSERT INTO runs (run_id, note, created_at) VALUES (?, ?, ?)`,
		id, note, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	return id, nil
}

// Run describes one stored run.
type Run struct {
	ID        string
	Note      string
	CreatedAt time.Time
}

// Runs lists every run in the order it was begun.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT run_id, note, created_at FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			note    sql.NullString
			created string
		)
		if err = rows.Scan(&r.ID, &note, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Note = note.String
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return out, nil
}

// SaveResult stores the fit of one job under runID. p may be nil.
func (s *Store) SaveResult(runID, jobID, label string, e *ellipsoid.Ellipsoid, p *polyhedron.Polyhedron) error {
	sum, err := e.Summary()
	if err != nil {
		return ErrNotFitted
	}
	rot := e.Rotation()
	var flat [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			flat[3*i+j] = rot.At(i, j)
		}
	}
	rotJSON, err := json.Marshal(flat)
	if err != nil {
		return fmt.Errorf("marshal rotation: %w", err)
	}

	coord := 0
	meanBond, bondVar := math.NaN(), math.NaN()
	if p != nil {
		coord = p.CoordinationNumber()
		meanBond, bondVar = p.MeanBondLength(), p.BondLengthVariance()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO results (run_id, job_id, label, dims, r1, r2, r3, cx, cy, cz, rotation_json,
			tolerance, converged, iterations, mean_radius, radius_variance, sphere_radius, volume,
			strain_energy, shape_parameter, unique_radii, coordination, mean_bond_length, bond_variance, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, jobID, label, sum.Dims, sum.Radii[0], sum.Radii[1], sum.Radii[2],
		sum.Centre.X, sum.Centre.Y, sum.Centre.Z, string(rotJSON),
		sum.Tolerance, sum.Converged, sum.Iterations, sum.MeanRadius, sum.RadiusVariance,
		sum.SphereRadius, sum.Volume, nullable(sum.StrainEnergy), nullable(sum.ShapeParameter),
		sum.UniqueRadii, coord, nullable(meanBond), nullable(bondVar),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// Results returns the records of runID in insertion order.
func (s *Store) Results(runID string) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT run_id, job_id, label, dims, r1, r2, r3, cx, cy, cz, rotation_json,
			tolerance, converged, iterations, mean_radius, radius_variance, sphere_radius, volume,
			strain_energy, shape_parameter, unique_radii, coordination, mean_bond_length, bond_variance, created_at
		 FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r                         Record
			sum                       = &r.Summary
			rotJSON, created          string
			strain, shape, mean, bvar sql.NullFloat64
		)
		err = rows.Scan(&r.RunID, &r.JobID, &r.Label, &sum.Dims,
			&sum.Radii[0], &sum.Radii[1], &sum.Radii[2],
			&sum.Centre.X, &sum.Centre.Y, &sum.Centre.Z, &rotJSON,
			&sum.Tolerance, &sum.Converged, &sum.Iterations, &sum.MeanRadius, &sum.RadiusVariance,
			&sum.SphereRadius, &sum.Volume, &strain, &shape,
			&sum.UniqueRadii, &r.CoordinationNumber, &mean, &bvar, &created)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err = json.Unmarshal([]byte(rotJSON), &r.Rotation); err != nil {
			return nil, fmt.Errorf("unmarshal rotation: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		sum.StrainEnergy = orNaN(strain)
		sum.ShapeParameter = orNaN(shape)
		r.MeanBondLength = orNaN(mean)
		r.BondLengthVariance = orNaN(bvar)
		sum.RadiusStdDev = math.Sqrt(sum.RadiusVariance)
		sum.CentreDisplacement = sum.Centre.Norm()
		for k := 0; k < 3; k++ {
			axis := r3.Vector{X: r.Rotation[k], Y: r.Rotation[3+k], Z: r.Rotation[6+k]}
			sum.CentreAxes[k] = sum.Centre.Dot(axis)
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return out, nil
}

// nullable maps NaN to SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

func orNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}

	return v.Float64
}
