// SPDX-License-Identifier: MIT

// Package render draws the confounder scatter chart: every cluster's points
// as dots and, when the cluster could be bounded, its confidence outline as a
// dashed closed line in the same colour.
//
// Charts are produced with go-chart and written as SVG or PNG.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/clusterviz/cluster"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the chart encoding.
type Format string

const (
	// FormatSVG writes an SVG document (the default).
	FormatSVG Format = "svg"

	// FormatPNG writes a PNG image.
	FormatPNG Format = "png"
)

const (
	// DefaultWidth is the chart width in pixels.
	DefaultWidth = 900

	// DefaultHeight is the chart height in pixels.
	DefaultHeight = 600

	// DefaultTitle is used when Options.Title is empty.
	DefaultTitle = "Cluster confounders"
)

var (
	// ErrNoGroups is returned when there is nothing to draw.
	ErrNoGroups = errors.New("render: no groups")

	// ErrResultMismatch is returned when results do not line up with groups.
	ErrResultMismatch = errors.New("render: results do not match groups")

	// ErrUnknownFormat is returned for a Format other than svg or png.
	ErrUnknownFormat = errors.New("render: unknown format")
)

// Options configures Confounders. Zero fields take the package defaults.
type Options struct {
	Title  string
	Width  int
	Height int
	Format Format
}

// DefaultOptions returns an SVG chart of DefaultWidth × DefaultHeight.
func DefaultOptions() Options {
	return Options{Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight, Format: FormatSVG}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Format == "" {
		o.Format = d.Format
	}

	return o
}

// ParseFormat maps "svg" or "png" to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case FormatSVG:
		return chart.SVG, nil
	case FormatPNG:
		return chart.PNG, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// palette is the plotly default qualitative colour sequence.
var palette = []drawing.Color{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

// Color returns the palette colour of a cluster label. Negative labels
// (noise in most clusterers) wrap like positive ones.
func Color(label int) drawing.Color {
	i := label % len(palette)
	if i < 0 {
		i += len(palette)
	}

	return palette[i]
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

// outlineStyle renders a dashed line without dots.
func outlineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth:     1.5,
		StrokeColor:     col,
		StrokeDashArray: []float64{5, 4},
	}
}

// Series builds the chart series for groups: a scatter series per group
// followed, when results[i].Err is nil, by its outline. results may be nil
// to draw points only.
func Series(groups []cluster.Group, results []cluster.Result) ([]chart.Series, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	if results != nil && len(results) != len(groups) {
		return nil, fmt.Errorf("%w: %d groups, %d results", ErrResultMismatch, len(groups), len(results))
	}

	series := make([]chart.Series, 0, 2*len(groups))
	for i, g := range groups {
		col := Color(g.Label)
		name := "cluster " + strconv.Itoa(g.Label)
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: g.X,
			YValues: g.Y,
			Style:   pointStyle(col),
		})
		if results == nil {
			continue
		}
		r := results[i]
		if r.Label != g.Label {
			return nil, fmt.Errorf("%w: group %d has label %d, result has %d", ErrResultMismatch, i, g.Label, r.Label)
		}
		if r.Err != nil || r.Outline == nil {
			continue
		}
		xs, ys := r.Outline.XY()
		series = append(series, chart.ContinuousSeries{
			Name:    name + " region",
			XValues: xs,
			YValues: ys,
			Style:   outlineStyle(col),
		})
	}

	return series, nil
}

// Confounders renders the chart of groups and their outlines to w.
func Confounders(w io.Writer, groups []cluster.Group, results []cluster.Result, opts Options) error {
	opts = opts.withDefaults()
	rp, err := opts.Format.provider()
	if err != nil {
		return err
	}
	series, err := Series(groups, results)
	if err != nil {
		return err
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "x"},
		YAxis:      chart.YAxis{Name: "y"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(rp, w); err != nil {
		return fmt.Errorf("render: %s chart: %w", opts.Format, err)
	}

	return nil
}
