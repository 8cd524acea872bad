// SPDX-License-Identifier: MIT

// Package ellipse estimates the 2-D confidence region of a scatter of points
// and returns it as a closed polygonal outline.
//
// What & Why:
//
//	A cluster's (x, y) coordinates are summarised by their sample covariance.
//	The Pearson correlation ρ gives the radii of a unit ellipse
//	(√(1+ρ), √(1-ρ)), which is rotated by a fixed 45°, stretched by
//	NStd standard deviations along each axis and moved onto the sample mean.
//	The result bounds roughly 95% of a bivariate-normal cluster when
//	NStd = 1.96, and is drawn under the cluster's scatter points.
//
// Algorithm Outline:
//  1. Cov = sample covariance of (x, y) with denominator n-1.
//  2. ρ = Cov[0,1] / √(Cov[0,0]·Cov[1,1]).
//  3. RadiusX = √(1+ρ), RadiusY = √(1-ρ).
//  4. Size angles evenly spaced over [0, 2π] (both ends included).
//  5. ScaleX = √Cov[0,0]·NStd, ScaleY = √Cov[1,1]·NStd; centre = (mean x, mean y).
//  6. p' = p · R(45°) · diag(ScaleX, ScaleY) + centre.
//  7. The Size points form the outline; the path closes back to point 0.
//
// The rotation is the literal constant π/4 and is NOT the principal-axis angle
// of the data.
//
// Radii come from the closed form for a 2×2 correlation matrix with unit
// diagonal; this is not a general eigen-decomposition.
//
// Errors:
//   - ErrInvalidInput:    len(x) != len(y), non-finite samples, bad Options.
//   - ErrDegenerateInput: fewer than two points or zero variance on an axis.
//
// Complexity:
//
//	Time  = O(n + Size)
//	Memory = O(n + Size)
//
// Every call is a pure function of its inputs and safe for concurrent use.
package ellipse
