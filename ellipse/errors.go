// SPDX-License-Identifier: MIT

package ellipse

import "errors"

var (
	// ErrInvalidInput is returned for usage errors: x and y of different
	// lengths, NaN/Inf samples, NStd ≤ 0 or Size < 3.
	ErrInvalidInput = errors.New("ellipse: invalid input")

	// ErrDegenerateInput is returned when the confidence region is undefined:
	// fewer than two points, or zero variance along either axis (the Pearson
	// correlation would divide by zero).
	ErrDegenerateInput = errors.New("ellipse: degenerate input")
)
