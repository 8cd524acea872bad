// SPDX-License-Identifier: MIT

// Package cluster groups labelled points into typed per-cluster samples and
// runs the confidence-region estimator once per group.
//
// Groups are plain records (a label plus two coordinate slices), so the
// estimator never sees the tabular source they came from. Outlines fans the
// per-group calls out over a bounded worker pool; every call is independent.
package cluster

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/clusterviz/ellipse"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned by GroupBy when labels, x and y differ in length.
var ErrLengthMismatch = errors.New("cluster: labels, x and y must have equal length")

// Group is one cluster's observed coordinates.
type Group struct {
	Label int
	X, Y  []float64
}

// Len returns the number of points in the group.
func (g Group) Len() int { return len(g.X) }

// Result is the estimator output for one group. When Err is non-nil the
// group could not be bounded (typically ellipse.ErrDegenerateInput) and
// Outline is nil.
type Result struct {
	Label   int
	Params  ellipse.Params
	Outline *ellipse.Outline
	Err     error
}

// Config controls Outlines.
type Config struct {
	// Options are passed to the estimator for every group.
	Options ellipse.Options

	// Workers bounds concurrent estimator calls. 0 means runtime.NumCPU().
	Workers int

	// Logger receives one warning per skipped group. nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns estimator defaults with automatic worker count.
func DefaultConfig() Config {
	return Config{Options: ellipse.DefaultOptions()}
}

// GroupBy splits parallel (label, x, y) columns into groups ordered by the
// first appearance of each label. Point order inside a group is preserved.
//
// Complexity: O(n).
func GroupBy(labels []int, x, y []float64) ([]Group, error) {
	if len(labels) != len(x) || len(x) != len(y) {
		return nil, fmt.Errorf("%w: labels=%d x=%d y=%d", ErrLengthMismatch, len(labels), len(x), len(y))
	}

	index := make(map[int]int)
	var groups []Group
	for i, label := range labels {
		gi, ok := index[label]
		if !ok {
			gi = len(groups)
			index[label] = gi
			groups = append(groups, Group{Label: label})
		}
		groups[gi].X = append(groups[gi].X, x[i])
		groups[gi].Y = append(groups[gi].Y, y[i])
	}

	return groups, nil
}

// Outlines estimates the confidence outline of every group.
//
// Results are returned in group order. A group the estimator rejects does not
// abort the batch; its Result carries the error instead. The returned error is
// non-nil only for invalid Options or when ctx is cancelled.
func Outlines(ctx context.Context, groups []Group, cfg Config) ([]Result, error) {
	opts := cfg.Options.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range groups {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = estimate(groups[i], opts)
			if results[i].Err != nil {
				logger.Warn("cluster outline skipped",
					zap.Int("cluster", groups[i].Label),
					zap.Int("points", groups[i].Len()),
					zap.Error(results[i].Err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// estimate runs Fit and Outline for one group.
func estimate(g Group, opts ellipse.Options) Result {
	res := Result{Label: g.Label}
	p, err := ellipse.Fit(g.X, g.Y, opts.NStd)
	if err != nil {
		res.Err = err
		return res
	}
	o, err := p.Outline(opts.Size)
	if err != nil {
		res.Err = err
		return res
	}
	res.Params = p
	res.Outline = o

	return res
}
