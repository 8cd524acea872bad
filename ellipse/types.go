// SPDX-License-Identifier: MIT

package ellipse

import (
	"fmt"
	"math"
)

const (
	// DefaultNStd is the standard-deviation multiplier giving ≈95% two-tailed
	// normal coverage.
	DefaultNStd = 1.96

	// DefaultSize is the number of outline vertices.
	DefaultSize = 100

	// MinSize is the smallest vertex count that still describes a polygon.
	MinSize = 3
)

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Options configures Estimate.
//
// Fields:
//   - NStd: standard-deviation multiplier for both axes. 0 means DefaultNStd.
//   - Size: number of outline vertices (≥ MinSize). 0 means DefaultSize.
//
// Example:
//
//	opts := ellipse.DefaultOptions()
//	opts.NStd = 2.576 // ≈99%
//	outline, err := ellipse.Estimate(xs, ys, opts)
type Options struct {
	NStd float64
	Size int
}

// DefaultOptions returns Options{NStd: 1.96, Size: 100}.
func DefaultOptions() Options {
	return Options{NStd: DefaultNStd, Size: DefaultSize}
}

// WithDefaults returns o with zero-valued fields replaced by their defaults.
func (o Options) WithDefaults() Options {
	if o.NStd == 0 {
		o.NStd = DefaultNStd
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}

	return o
}

// Validate checks NStd and Size after defaults are applied.
func (o Options) Validate() error {
	o = o.WithDefaults()
	if err := validateNStd(o.NStd); err != nil {
		return err
	}

	return validateSize(o.Size)
}

func validateNStd(nStd float64) error {
	if !(nStd > 0) || math.IsInf(nStd, 1) {
		return fmt.Errorf("%w: NStd must be finite and > 0, got %v", ErrInvalidInput, nStd)
	}

	return nil
}

func validateSize(size int) error {
	if size < MinSize {
		return fmt.Errorf("%w: Size must be >= %d, got %d", ErrInvalidInput, MinSize, size)
	}

	return nil
}

// Params holds every quantity derived from one sample. All fields are
// outputs of Fit; none is independently settable.
type Params struct {
	N int // number of points

	MeanX, MeanY float64 // centre
	VarX, VarY   float64 // unbiased sample variances
	CovXY        float64 // unbiased sample covariance
	Pearson      float64 // ρ, clamped to [-1, 1]

	RadiusX, RadiusY float64 // unit-ellipse radii √(1+ρ), √(1-ρ)
	ScaleX, ScaleY   float64 // √Var·NStd
	NStd             float64

	// linear is R(45°)·diag(ScaleX, ScaleY) in row-major order.
	linear [4]float64
}
