// SPDX-License-Identifier: MIT

// Package dataset reads the pre-computed confounder tables the dashboard
// plots: one row per point with its x, y coordinates and cluster label.
//
// Columns are located by header name once, at the boundary; everything past
// ReadConfounders works with typed slices.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/clusterviz/cluster"
)

// Column names expected in a confounder table header.
const (
	ColumnX       = "x"
	ColumnY       = "y"
	ColumnCluster = "cluster"
)

var (
	// ErrMissingColumn is returned when the header lacks x, y or cluster.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrBadRecord is returned for a row whose values cannot be parsed.
	ErrBadRecord = errors.New("dataset: bad record")
)

// Table holds a confounder table as parallel columns.
type Table struct {
	X, Y   []float64
	Labels []int
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.X) }

// Groups splits the table by cluster label (first-appearance order).
func (t *Table) Groups() ([]cluster.Group, error) {
	return cluster.GroupBy(t.Labels, t.X, t.Y)
}

// ConfoundersPath returns dir/all_confounders_<k>.csv.
func ConfoundersPath(dir string, k int) string {
	return filepath.Join(dir, fmt.Sprintf("all_confounders_%d.csv", k))
}

// LoadConfounders opens path and reads it with ReadConfounders.
func LoadConfounders(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadConfounders(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadConfounders parses a delimited table with a header row. The x, y and
// cluster columns may appear in any order (names are matched
// case-insensitively); other columns, such as an index, are ignored.
//
// Errors:
//   - ErrMissingColumn: a required column is absent.
//   - ErrBadRecord:     a value fails to parse (wrapped with the line number).
func ReadConfounders(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	ix, iy, ic, err := locate(header)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(ix)
		x, err := parseFloat(rec[ix])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %q: %w", ErrBadRecord, line, ColumnX, err)
		}
		y, err := parseFloat(rec[iy])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %q: %w", ErrBadRecord, line, ColumnY, err)
		}
		label, err := parseLabel(rec[ic])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %q: %w", ErrBadRecord, line, ColumnCluster, err)
		}
		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
		t.Labels = append(t.Labels, label)
	}

	return t, nil
}

// locate returns the indices of the x, y and cluster columns.
func locate(header []string) (ix, iy, ic int, err error) {
	ix, iy, ic = -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case ColumnX:
			ix = i
		case ColumnY:
			iy = i
		case ColumnCluster:
			ic = i
		}
	}
	var missing []string
	if ix < 0 {
		missing = append(missing, ColumnX)
	}
	if iy < 0 {
		missing = append(missing, ColumnY)
	}
	if ic < 0 {
		missing = append(missing, ColumnCluster)
	}
	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf("%w: %s (header %q)", ErrMissingColumn, strings.Join(missing, ", "), header)
	}

	return ix, iy, ic, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseLabel accepts integers and integral floats ("2", "2.0").
func parseLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("label %q is not an integer", s)
	}

	return int(f), nil
}
