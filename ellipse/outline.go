// SPDX-License-Identifier: MIT

package ellipse

import "iter"

// Outline is the ordered boundary of a confidence region: Len() vertices
// joined by straight segments, closed by an implicit segment from the last
// vertex back to the first.
//
// An Outline is never mutated after construction; accessors return copies.
type Outline struct {
	points []Point
}

// NewOutline builds an Outline from caller-supplied vertices (copied).
// Returns ErrInvalidInput for fewer than MinSize vertices.
func NewOutline(pts []Point) (*Outline, error) {
	if err := validateSize(len(pts)); err != nil {
		return nil, err
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return &Outline{points: cp}, nil
}

// Len returns the number of vertices.
func (o *Outline) Len() int { return len(o.points) }

// At returns vertex i. It panics if i is out of range, like a slice index.
func (o *Outline) At(i int) Point { return o.points[i] }

// First returns vertex 0, which is also where the closing segment ends.
func (o *Outline) First() Point { return o.points[0] }

// Last returns the final vertex before the closing segment.
func (o *Outline) Last() Point { return o.points[len(o.points)-1] }

// Points returns a copy of the vertices.
func (o *Outline) Points() []Point {
	cp := make([]Point, len(o.points))
	copy(cp, o.points)

	return cp
}

// XY returns the vertices as parallel coordinate slices, with the first
// vertex repeated at the end so line renderers draw the closing segment.
func (o *Outline) XY() (xs, ys []float64) {
	n := len(o.points)
	xs = make([]float64, n+1)
	ys = make([]float64, n+1)
	for i, p := range o.points {
		xs[i], ys[i] = p.X, p.Y
	}
	xs[n], ys[n] = o.points[0].X, o.points[0].Y

	return xs, ys
}

// All yields (index, vertex) pairs in order.
//
//	for i, p := range outline.All() { ... }
func (o *Outline) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range o.points {
			if !yield(i, p) {
				return
			}
		}
	}
}
