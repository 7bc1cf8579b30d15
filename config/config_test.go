// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/config"
	"github.com/katalvlaran/polyhedra/ellipsoid"
	"github.com/katalvlaran/polyhedra/mvee"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pieface.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1e-6, c.Tolerance)
	assert.Equal(t, "khachiyan", c.Method)
	assert.GreaterOrEqual(t, c.Workers, 1)
	assert.Empty(t, c.Database)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
tolerance = 1e-5
max_iterations = 5000
method = "cholesky"
workers = 3
verbosity = 2
database = "out.db"
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-5, c.Tolerance)
	assert.Equal(t, 5000, c.MaxIterations)
	assert.Equal(t, "cholesky", c.Method)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 2, c.Verbosity)
	assert.Equal(t, "out.db", c.Database)
	assert.Equal(t, config.Default().MergeDistance, c.MergeDistance, "unset keys keep defaults")

	o := ellipsoid.NewOptions(c.FitOptions()...)
	assert.Equal(t, 1e-5, o.Tolerance())
	assert.Equal(t, 5000, o.MaxIterations())
	assert.Equal(t, mvee.CholeskyUpdate, o.Method())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "toleranse = 1e-3\n"))
	assert.ErrorIs(t, err, config.ErrInvalid, "unknown key")

	_, err = config.Load(writeFile(t, "tolerance = -1.0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "tolerance = \"tight\"\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"ZeroTolerance", func(c *config.Config) { c.Tolerance = 0 }},
		{"NegativeCap", func(c *config.Config) { c.MaxIterations = -1 }},
		{"RankToleranceOne", func(c *config.Config) { c.RankTolerance = 1 }},
		{"NegativeMerge", func(c *config.Config) { c.MergeDistance = -1e-9 }},
		{"NoWorkers", func(c *config.Config) { c.Workers = 0 }},
		{"Verbosity", func(c *config.Config) { c.Verbosity = 4 }},
		{"Method", func(c *config.Config) { c.Method = "simplex" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}
