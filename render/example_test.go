// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/clusterviz/cluster"
	"github.com/katalvlaran/clusterviz/render"
)

func ExampleConfounders() {
	groups, _ := cluster.GroupBy(
		[]int{0, 0, 0, 1, 1, 1},
		[]float64{1, 2, 3, 7, 8, 9},
		[]float64{2, 1, 3, 8, 9, 7},
	)
	results, _ := cluster.Outlines(context.Background(), groups, cluster.DefaultConfig())

	var buf bytes.Buffer
	if err := render.Confounders(&buf, groups, results, render.DefaultOptions()); err != nil {
		panic(err)
	}
	fmt.Println(strings.HasPrefix(buf.String(), "<svg"))
	// Output: true
}
