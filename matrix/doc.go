// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra core behind the
// confidence-region estimator.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Canonical kernels: Mul, Transpose, Scale.
//   - Sample statistics over columns: ColumnMeans, CenterColumns, Covariance.
//   - Central validators returning package sentinels (errors.go).
//
// Observations are rows, variables are columns. A bivariate sample (x, y)
// becomes an n×2 matrix via FromColumns, and Covariance returns its 2×2
// sample covariance with the unbiased (n-1) denominator.
//
// All kernels allocate a fresh result and never mutate their operands, so
// they are safe for concurrent use on shared inputs.
package matrix
