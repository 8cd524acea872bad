// SPDX-License-Identifier: MIT

package ellipse_test

import (
	"testing"

	"github.com/katalvlaran/clusterviz/ellipse"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) ellipse.Point { return ellipse.Point{X: x, Y: y} }

func TestNewOutline_CopiesInput(t *testing.T) {
	t.Parallel()

	pts := []ellipse.Point{pt(0, 0), pt(1, 0), pt(0, 1)}
	o, err := ellipse.NewOutline(pts)
	require.NoError(t, err)

	pts[0] = ellipse.Point{X: 9, Y: 9}
	require.Equal(t, ellipse.Point{}, o.First())

	got := o.Points()
	got[1] = ellipse.Point{X: 7, Y: 7}
	require.Equal(t, ellipse.Point{X: 1}, o.At(1))
}

func TestNewOutline_TooFewVertices(t *testing.T) {
	t.Parallel()

	_, err := ellipse.NewOutline([]ellipse.Point{pt(0, 0), pt(1, 1)})
	require.ErrorIs(t, err, ellipse.ErrInvalidInput)
}

func TestOutline_AllStopsEarly(t *testing.T) {
	t.Parallel()

	o, err := ellipse.NewOutline([]ellipse.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)})
	require.NoError(t, err)

	var seen []int
	for i := range o.All() {
		if i == 2 {
			break
		}
		seen = append(seen, i)
	}
	require.Equal(t, []int{0, 1}, seen)
}

func TestOutline_XYRepeatsFirstVertex(t *testing.T) {
	t.Parallel()

	o, err := ellipse.NewOutline([]ellipse.Point{pt(1, 2), pt(3, 4), pt(5, 6)})
	require.NoError(t, err)

	xs, ys := o.XY()
	require.Equal(t, []float64{1, 3, 5, 1}, xs)
	require.Equal(t, []float64{2, 4, 6, 2}, ys)
	require.Equal(t, ellipse.Point{X: 5, Y: 6}, o.Last())
}
