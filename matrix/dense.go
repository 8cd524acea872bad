// SPDX-License-Identifier: MIT
// Dense is the concrete row-major implementation of Matrix, storing elements
// in a flat slice for cache friendliness.

package matrix

import (
	"fmt"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero-size shapes (0×c, r×0) are allowed and describe empty samples.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows. Values are copied.
// Returns ErrBadShape for ragged input.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// FromColumns builds an n×k Dense whose j-th column is cols[j].
// This is the canonical way to turn parallel observation slices (x, y, …)
// into a sample matrix with observations as rows.
// Returns ErrBadShape when the columns differ in length.
// Complexity: O(n*k).
func FromColumns(cols ...[]float64) (*Dense, error) {
	k := len(cols)
	n := 0
	if k > 0 {
		n = len(cols[0])
	}
	// Stage 1 (Validate): every column must have the same number of observations.
	for j := 1; j < k; j++ {
		if len(cols[j]) != n {
			return nil, fmt.Errorf("FromColumns: column %d has %d values, want %d: %w", j, len(cols[j]), n, ErrBadShape)
		}
	}
	d, err := NewDense(n, k)
	if err != nil {
		return nil, err
	}
	// Stage 2 (Execute): scatter columns into the row-major buffer.
	var i, j int
	for i = 0; i < n; i++ {
		base := i * k
		for j = 0; j < k; j++ {
			d.data[base+j] = cols[j][i]
		}
	}

	return d, nil
}

// NewDiagonal returns the n×n matrix with vals on the main diagonal.
// Complexity: O(n^2) zeroing + O(n) writes.
func NewDiagonal(vals ...float64) *Dense {
	n := len(vals)
	d := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i, v := range vals {
		d.data[i*n+i] = v
	}

	return d
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}
