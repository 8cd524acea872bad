// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over a sample matrix (observations as rows):
//     ColumnMeans, CenterColumns and the unbiased sample Covariance.
//   - Covariance is a composition of the canonical kernels:
//     Cov = (Xcᵀ · Xc) / (r-1), where Xc is the column-centred sample.
//
// Determinism:
//   - Fixed i→j traversal; identical inputs give bit-identical outputs.

package matrix

// ColumnMeans returns the arithmetic mean of every column.
//
// Behavior highlights:
//   - Zero rows: returns zeros (len = Cols) rather than NaN.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return means, nil
	}

	// Stage 2 (Execute): accumulate column sums.
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3 (Finalize): sums → averages.
	n := float64(r)
	for j = 0; j < c; j++ {
		means[j] /= n
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
//
// Returns:
//   - *Dense: centred copy (r×c).
//   - []float64: the column means used (len = c).
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// Covariance computes the sample covariance of the columns of X:
// Cov = (Xcᵀ Xc)/(r-1).
//
// Behavior highlights:
//   - Symmetric c×c output; the diagonal holds per-column sample variances.
//
// Returns:
//   - *Dense: covariance (c×c).
//   - []float64: column means used for centring.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when r < 2 (the sample denominator would be ≤ 0).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func Covariance(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate): need at least two observations.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Center): reuse the canonical centering implementation.
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Compute): Cov = (Xcᵀ Xc)/(r-1) via canonical kernels.
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}
