// SPDX-License-Identifier: MIT

package ellipse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterviz/matrix"
	"gonum.org/v1/gonum/floats"
)

// rotationAngle is the fixed outline rotation. It is a constant, not the
// principal-axis angle of the sample; see the package documentation.
const rotationAngle = math.Pi / 4

// Estimate computes the confidence outline of the sample (x, y).
//
// Zero-valued Options fields take their defaults (NStd 1.96, Size 100).
//
// Errors:
//   - ErrInvalidInput:    len(x) != len(y), NaN/Inf samples, invalid Options.
//   - ErrDegenerateInput: len(x) < 2, or zero variance on either axis.
//
// Complexity: O(n + Size).
func Estimate(x, y []float64, opts Options) (*Outline, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p, err := Fit(x, y, opts.NStd)
	if err != nil {
		return nil, err
	}

	return p.Outline(opts.Size)
}

// Fit derives the ellipse parameters of the sample (x, y) for the given
// standard-deviation multiplier.
//
// Implementation:
//   - Stage 1: Validate lengths, nStd and finiteness; require n ≥ 2 and
//     neither axis constant.
//   - Stage 2: Sample covariance via matrix.Covariance (denominator n-1).
//   - Stage 3: Pearson ρ, unit radii, axis scales.
//   - Stage 4: Compose the linear map R(45°)·diag(ScaleX, ScaleY).
//
// ρ is clamped to [-1, 1] so rounding never feeds a negative value into
// √(1±ρ); perfectly correlated samples get a radius of exactly 0.
func Fit(x, y []float64, nStd float64) (Params, error) {
	// Stage 1 (Validate): usage errors first, then degenerate shapes.
	if len(x) != len(y) {
		return Params{}, fmt.Errorf("%w: len(x)=%d != len(y)=%d", ErrInvalidInput, len(x), len(y))
	}
	if err := validateNStd(nStd); err != nil {
		return Params{}, err
	}
	n := len(x)
	if n < 2 {
		return Params{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateInput, n)
	}

	X, err := matrix.FromColumns(x, y)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(X); err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	// A constant axis is checked on the raw samples: the centred values of a
	// repeated 0.1 are rounding residue, not exact zeros.
	if cx, cy := constant(x), constant(y); cx || cy {
		return Params{}, fmt.Errorf("%w: zero variance (constant x=%t, constant y=%t)", ErrDegenerateInput, cx, cy)
	}

	// Stage 2 (Covariance): 2×2, symmetric; rows 0 and 1 always exist.
	cov, means, err := matrix.Covariance(X)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrDegenerateInput, err)
	}
	if err = matrix.ValidateSquare(cov); err != nil {
		return Params{}, fmt.Errorf("ellipse: covariance: %w", err)
	}
	row0, _ := cov.Row(0)
	row1, _ := cov.Row(1)
	varX, covXY, varY := row0[0], row0[1], row1[1]

	// Stage 3 (Correlation & radii).
	if varX == 0 || varY == 0 {
		return Params{}, fmt.Errorf("%w: zero variance (var_x=%g, var_y=%g)", ErrDegenerateInput, varX, varY)
	}
	denom := math.Sqrt(varX) * math.Sqrt(varY)
	if denom == 0 || math.IsInf(denom, 0) || math.IsInf(covXY, 0) {
		return Params{}, fmt.Errorf("%w: covariance out of range (var_x=%g, var_y=%g)", ErrDegenerateInput, varX, varY)
	}
	rho := covXY / denom
	if rho > 1 {
		rho = 1
	} else if rho < -1 {
		rho = -1
	}

	p := Params{
		N:       n,
		MeanX:   means[0],
		MeanY:   means[1],
		VarX:    varX,
		VarY:    varY,
		CovXY:   covXY,
		Pearson: rho,
		RadiusX: math.Sqrt(1 + rho),
		RadiusY: math.Sqrt(1 - rho),
		ScaleX:  math.Sqrt(varX) * nStd,
		ScaleY:  math.Sqrt(varY) * nStd,
		NStd:    nStd,
	}

	// Stage 4 (Transform): rotate first, then scale. The matrix product order
	// encodes that order for row vectors: p·R·S.
	lin, err := matrix.Mul(rotation(), matrix.NewDiagonal(p.ScaleX, p.ScaleY))
	if err != nil {
		return Params{}, fmt.Errorf("ellipse: compose transform: %w", err)
	}
	for i := 0; i < 4; i++ {
		p.linear[i], _ = lin.At(i/2, i%2)
	}

	return p, nil
}

// constant reports whether every sample equals the first.
func constant(v []float64) bool {
	for _, f := range v[1:] {
		if f != v[0] {
			return false
		}
	}

	return true
}

// rotation returns R = [[cos π/4, sin π/4], [-sin π/4, cos π/4]] for row vectors.
func rotation() *matrix.Dense {
	c, s := math.Cos(rotationAngle), math.Sin(rotationAngle)
	r, _ := matrix.FromRows([][]float64{{c, s}, {-s, c}})

	return r
}

// Center returns the ellipse centre (MeanX, MeanY).
func (p Params) Center() Point {
	return Point{X: p.MeanX, Y: p.MeanY}
}

// UnitPoint returns the point of the unscaled ellipse at angle theta:
// (RadiusX·cos θ, RadiusY·sin θ).
func (p Params) UnitPoint(theta float64) Point {
	return Point{X: p.RadiusX * math.Cos(theta), Y: p.RadiusY * math.Sin(theta)}
}

// Place maps a unit-ellipse point into data space: rotate by 45°, scale by
// (ScaleX, ScaleY), translate by the mean. Place(Point{}) is exactly Center().
func (p Params) Place(u Point) Point {
	return Point{
		X: u.X*p.linear[0] + u.Y*p.linear[2] + p.MeanX,
		Y: u.X*p.linear[1] + u.Y*p.linear[3] + p.MeanY,
	}
}

// Outline samples size angles evenly over [0, 2π] and returns the placed
// points as a closed outline.
// Returns ErrInvalidInput when size < MinSize.
func (p Params) Outline(size int) (*Outline, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	thetas := floats.Span(make([]float64, size), 0, 2*math.Pi)
	pts := make([]Point, size)
	for i, theta := range thetas {
		pts[i] = p.Place(p.UnitPoint(theta))
	}

	return &Outline{points: pts}, nil
}
