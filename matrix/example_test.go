// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/clusterviz/matrix"
)

// ExampleCovariance turns a bivariate sample into its 2×2 sample covariance.
func ExampleCovariance() {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	X, err := matrix.FromColumns(x, y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cov, means, err := matrix.Covariance(X)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("means:", means)
	fmt.Print(cov)

	// Output:
	// means: [3 6]
	// [2.5, 5]
	// [5, 10]
}
