// SPDX-License-Identifier: MIT

package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/clusterviz/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const confoundersCSV = `,x,y,cluster
0,5.0,4.9,1
1,0.1,1.0,0
2,5.5,5.8,1
3,0.4,1.3,0
4,6.1,6.0,1.0
`

func TestReadConfounders(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.ReadConfounders(strings.NewReader(confoundersCSV), ',')
	require.NoError(t, err)
	require.Equal(t, 5, tbl.Len())

	assert.Equal(t, []float64{5.0, 0.1, 5.5, 0.4, 6.1}, tbl.X)
	assert.Equal(t, []float64{4.9, 1.0, 5.8, 1.3, 6.0}, tbl.Y)
	assert.Equal(t, []int{1, 0, 1, 0, 1}, tbl.Labels)

	groups, err := tbl.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Label)
	assert.Equal(t, 3, groups[0].Len())
}

func TestReadConfounders_ColumnOrderAndDelimiter(t *testing.T) {
	t.Parallel()

	in := "\ufeffCluster;Y;X\n2;1.5;-3\n2;2.5;4e-1\n"
	tbl, err := dataset.ReadConfounders(strings.NewReader(in), ';')
	require.NoError(t, err)

	assert.Equal(t, []float64{-3, 0.4}, tbl.X)
	assert.Equal(t, []float64{1.5, 2.5}, tbl.Y)
	assert.Equal(t, []int{2, 2}, tbl.Labels)
}

func TestReadConfounders_HeaderOnly(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.ReadConfounders(strings.NewReader("x,y,cluster\n"), ',')
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
}

func TestReadConfounders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
		msg  string
	}{
		{"empty", "", dataset.ErrMissingColumn, "empty input"},
		{"no cluster", "x,y\n1,2\n", dataset.ErrMissingColumn, "cluster"},
		{"no x or y", "a,b,cluster\n1,2,0\n", dataset.ErrMissingColumn, "x, y"},
		{"bad x", "x,y,cluster\n1,2,0\nabc,2,0\n", dataset.ErrBadRecord, `line 3 column "x"`},
		{"bad y", "x,y,cluster\n1,,0\n", dataset.ErrBadRecord, `line 2 column "y"`},
		{"fractional label", "x,y,cluster\n1,2,0.5\n", dataset.ErrBadRecord, `column "cluster"`},
		{"short row", "x,y,cluster\n1,2\n", dataset.ErrBadRecord, "wrong number of fields"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := dataset.ReadConfounders(strings.NewReader(tc.in), ',')
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestConfoundersPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("data", "all_confounders_3.csv"), dataset.ConfoundersPath("data", 3))
}

func TestLoadConfounders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := dataset.ConfoundersPath(dir, 2)
	require.NoError(t, os.WriteFile(path, []byte(confoundersCSV), 0o600))

	tbl, err := dataset.LoadConfounders(path, ',')
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Len())

	_, err = dataset.LoadConfounders(dataset.ConfoundersPath(dir, 9), ',')
	require.ErrorIs(t, err, os.ErrNotExist)
}
