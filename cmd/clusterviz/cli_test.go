// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/clusterviz/dataset"
	"github.com/katalvlaran/clusterviz/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableCSV = `,x,y,cluster
0,5.0,4.9,1
1,0.1,1.0,0
2,5.5,5.8,1
3,0.4,1.3,0
4,6.1,6.0,1
5,0.2,0.7,0
6,9.0,9.0,2
`

// run executes a fresh command tree and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvLogLevel, "error")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeTable(t *testing.T, dir string, k int) string {
	t.Helper()
	path := dataset.ConfoundersPath(dir, k)
	require.NoError(t, os.WriteFile(path, []byte(tableCSV), 0o600))
	return path
}

func TestOutlineCmd_Text(t *testing.T) {
	path := writeTable(t, t.TempDir(), 3)

	out, err := run(t, "outline", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "cluster 1\tM "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], " Z"), lines[0])
	assert.Equal(t, 99, strings.Count(lines[0], "L"))
	assert.True(t, strings.HasPrefix(lines[1], "cluster 0\tM "), lines[1])
	assert.Contains(t, lines[2], "cluster 2\tskipped: ellipse: degenerate input")
}

func TestOutlineCmd_JSONWithK(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, 3)

	out, err := run(t, "outline", "--k", "3", "--data-dir", dir, "--json", "--size", "8")
	require.NoError(t, err)

	var items []outlineJSON
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)

	assert.Equal(t, 1, items[0].Cluster)
	assert.Equal(t, 3, items[0].Points)
	require.NotNil(t, items[0].Fit)
	assert.InDelta(t, 16.6/3, items[0].Fit.MeanX, 1e-12)
	assert.Equal(t, 1.96, items[0].Fit.NStd)
	assert.Equal(t, 7, strings.Count(items[0].Path, "L"))

	assert.Equal(t, 2, items[2].Cluster)
	assert.Nil(t, items[2].Fit)
	assert.Empty(t, items[2].Path)
	assert.Contains(t, items[2].Error, "degenerate")
}

func TestOutlineCmd_ConfigAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, 1)
	cfgPath := filepath.Join(dir, "clusterviz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("estimator:\n  n_std: 3\n  size: 5\n"), 0o600))

	out, err := run(t, "outline", "--config", cfgPath, "--json", path)
	require.NoError(t, err)
	var items []outlineJSON
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, 3.0, items[0].Fit.NStd)
	assert.Equal(t, 4, strings.Count(items[0].Path, "L"))

	out, err = run(t, "outline", "--config", cfgPath, "--size", "6", "--json", path)
	require.NoError(t, err)
	items = nil
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, 5, strings.Count(items[0].Path, "L"))
}

func TestOutlineCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, 2)

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"no input", []string{"outline"}, "missing input"},
		{"path and k", []string{"outline", "--k", "2", path}, "not both"},
		{"absent table", []string{"outline", "--k", "7", "--data-dir", dir}, "all_confounders_7.csv"},
		{"bad n-std", []string{"outline", "--n-std", "-1", path}, "NStd"},
		{"bad size", []string{"outline", "--size", "2", path}, "Size"},
		{"zero n-std", []string{"outline", "--n-std", "0", path}, "--n-std must be > 0"},
		{"zero size", []string{"outline", "--size", "0", path}, "--size must be > 0"},
		{"absent config", []string{"outline", "--config", filepath.Join(dir, "nope.yaml"), path}, "nope.yaml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestOutlineCmd_ExplicitZeroIsNotDefault(t *testing.T) {
	path := writeTable(t, t.TempDir(), 2)

	for _, flag := range []string{"--n-std", "--size"} {
		_, err := run(t, "outline", flag, "0", path)
		require.ErrorIsf(t, err, config.ErrInvalid, "%s 0", flag)
	}
}

func TestRenderCmd_File(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, 3)
	svg := filepath.Join(dir, "chart.svg")

	_, err := run(t, "render", path, "-o", svg, "--title", "k=3")
	require.NoError(t, err)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<svg")))
	assert.Contains(t, string(data), "k=3")
}

func TestRenderCmd_PNGByExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, 3)
	out := filepath.Join(dir, "chart.png")

	_, err := run(t, "render", path, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRenderCmd_Stdout(t *testing.T) {
	path := writeTable(t, t.TempDir(), 3)

	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
}

func TestRenderCmd_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, 3)

	_, err := run(t, "render", path, "-o", filepath.Join(dir, "chart.gif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
