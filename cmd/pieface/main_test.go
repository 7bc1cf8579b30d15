// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/store"
)

const linearSites = "Cu Cu 0 0 0\nO1 O 0 0 1.9\nO2 O 0 0 -1.9\n"

const octaSites = `Ti1 Ti 0 0 0
O1 O 1.95 0 0
O2 O -1.95 0 0
O3 O 0 1.95 0
O4 O 0 -1.95 0
O5 O 0 0 1.95
O6 O 0 0 -1.95
`

func writeSites(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd(&out, &errb)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errb.String(), err
}

func TestFit(t *testing.T) {
	path := writeSites(t, t.TempDir(), "cu.txt", linearSites)

	out, _, err := execute(t, "fit", path, "--verbosity", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "! Ellipsoid parameters Cu -------")
	assert.Contains(t, out, "Radii R1 > R2 > R3       :    1.90000000    0.00000000    0.00000000")
	assert.Contains(t, out, "Hyperellipse dims        :             1")
	assert.Contains(t, out, "Coordination number      :             2")
}

func TestFit_OutputFileAndDatabase(t *testing.T) {
	dir := t.TempDir()
	path := writeSites(t, dir, "ti.txt", octaSites)
	report := filepath.Join(dir, "report.txt")
	db := filepath.Join(dir, "results.db")

	out, logs, err := execute(t, "fit", path, "--tolerance", "1e-3", "-o", report, "--db", db)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "stored run")

	body, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(body), "! Ellipsoid parameters Ti1")

	recs := storedResults(t, db)
	require.Len(t, recs, 1)
	assert.Equal(t, path, recs[0].JobID)
	assert.Equal(t, 6, recs[0].CoordinationNumber)
}

// storedResults returns the records of the only run in db.
func storedResults(t *testing.T, db string) []store.Record {
	t.Helper()
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	recs, err := st.Results(runs[0].ID)
	require.NoError(t, err)

	return recs
}

func TestFit_Errors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "fit", filepath.Join(dir, "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "fit")
	assert.Error(t, err, "exactly one file")

	path := writeSites(t, dir, "cu.txt", linearSites)
	_, _, err = execute(t, "fit", path, "--method", "simplex")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	a := writeSites(t, dir, "a.txt", linearSites)
	b := writeSites(t, dir, "b.txt", "Ag 1 1 1\nI1 1 1 3.5\nI2 1 1 -1.5\n")
	bad := writeSites(t, dir, "bad.txt", "Cu 0 0\n")

	out, logs, err := execute(t, "batch", a, bad, b, "--workers", "2")
	require.EqualError(t, err, "1 of 3 fits failed")
	assert.Contains(t, logs, "read failed")

	ia := bytes.Index([]byte(out), []byte("a.txt Cu"))
	ibad := bytes.Index([]byte(out), []byte("! Fit failed bad.txt"))
	ib := bytes.Index([]byte(out), []byte("b.txt Ag"))
	require.True(t, ia >= 0 && ibad >= 0 && ib >= 0, "report:\n%s", out)
	assert.True(t, ia < ibad && ibad < ib, "report keeps argument order")
	assert.Contains(t, out, "    2.50000000    0.00000000    0.00000000")
}

func TestBatch_StoresRun(t *testing.T) {
	dir := t.TempDir()
	a := writeSites(t, dir, "a.txt", linearSites)
	b := writeSites(t, dir, "b.txt", linearSites)
	db := filepath.Join(dir, "results.db")
	cfg := writeSites(t, dir, "pieface.toml", "workers = 2\nverbosity = 0\ndatabase = \""+filepath.ToSlash(db)+"\"\n")

	_, logs, err := execute(t, "batch", a, b, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, logs, "stored run ")

	recs := storedResults(t, db)
	require.Len(t, recs, 2)
	assert.Equal(t, a, recs[0].JobID)
	assert.Equal(t, b, recs[1].JobID)
	assert.Equal(t, "Cu", recs[0].Label)
}

func TestConfigFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeSites(t, dir, "cu.txt", linearSites)
	cfg := writeSites(t, dir, "pieface.toml", "verbosity = 3\n")

	out, _, err := execute(t, "fit", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Hyperellipse dims", "file beats the default")

	out, _, err = execute(t, "fit", path, "--config", cfg, "--verbosity", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Hyperellipse dims", "explicit flag beats the file")
	assert.NotContains(t, out, "Rotation matrix")

	_, _, err = execute(t, "fit", path, "--config", filepath.Join(dir, "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pieface dev (unknown)\n", out)
}
