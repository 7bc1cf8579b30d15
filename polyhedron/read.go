// SPDX-License-Identifier: MIT

package polyhedron

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// commentPrefix starts a comment anywhere on a line.
const commentPrefix = "#"

// Read parses a site list. Blank lines and "#" comments are skipped; the
// first site line is the centre and the rest are ligands in order.
//
// Errors: ErrBadLine (with the 1-based line number), ErrNaNInf, ErrNoCentre,
// or the reader's own error.
func Read(r io.Reader) (*Polyhedron, error) {
	var (
		sites []Site
		sc    = bufio.NewScanner(r)
		line  int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		s, err := parseSite(fields)
		if err != nil {
			return nil, polyhedronErrorf(opRead, fmt.Errorf("line %d: %w", line, err))
		}
		sites = append(sites, s)
	}
	if err := sc.Err(); err != nil {
		return nil, polyhedronErrorf(opRead, err)
	}
	if len(sites) == 0 {
		return nil, polyhedronErrorf(opRead, ErrNoCentre)
	}

	p, err := New(sites[0], sites[1:])
	if err != nil {
		return nil, polyhedronErrorf(opRead, err)
	}

	return p, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Polyhedron, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, polyhedronErrorf(opReadFile, err)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// parseSite accepts "label x y z" or "label type x y z".
func parseSite(fields []string) (Site, error) {
	var s Site
	switch len(fields) {
	case 4:
		s.Label = fields[0]
	case 5:
		s.Label, s.Type = fields[0], fields[1]
	default:
		return s, fmt.Errorf("%w: want 4 or 5 fields, got %d", ErrBadLine, len(fields))
	}

	coords := fields[len(fields)-3:]
	var xyz [3]float64
	for i, c := range coords {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return s, fmt.Errorf("%w: coordinate %q", ErrBadLine, c)
		}
		xyz[i] = v
	}
	s.Position = r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	if !finite(s.Position) {
		return s, ErrNaNInf
	}

	return s, nil
}
