// SPDX-License-Identifier: MIT

// Package svgpath serialises an ellipse.Outline into path-drawing
// instructions: one move-to, a line-to per remaining vertex, one close.
//
// The string form is the SVG/plotly path syntax the dashboard feeds to its
// shape layer:
//
//	M x0, y0Lx1, y1Lx2, y2 … Lxn, yn Z
//
// This package does no geometry; it only changes representation, so the
// estimator stays independent of any renderer's path syntax.
package svgpath

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/clusterviz/ellipse"
)

// Op is a path instruction kind.
type Op byte

const (
	// MoveTo starts the path at (X, Y).
	MoveTo Op = 'M'
	// LineTo draws a straight segment to (X, Y).
	LineTo Op = 'L'
	// Close draws the segment back to the MoveTo point; X and Y are unused.
	Close Op = 'Z'
)

// String returns the single-letter SVG command.
func (op Op) String() string { return string(rune(op)) }

// Command is one path instruction.
type Command struct {
	Op   Op
	X, Y float64
}

// Commands returns the instruction sequence for o:
// MoveTo(p0), LineTo(p1) … LineTo(p[n-1]), Close.
// A nil outline yields nil.
// Complexity: O(n).
func Commands(o *ellipse.Outline) []Command {
	if o == nil {
		return nil
	}
	cmds := make([]Command, 0, o.Len()+1)
	for i, p := range o.All() {
		op := LineTo
		if i == 0 {
			op = MoveTo
		}
		cmds = append(cmds, Command{Op: op, X: p.X, Y: p.Y})
	}

	return append(cmds, Command{Op: Close})
}

// Encode renders o as a path string. A nil outline yields "".
func Encode(o *ellipse.Outline) string {
	if o == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(o.Len() * 40)
	for _, c := range Commands(o) {
		switch c.Op {
		case MoveTo:
			sb.WriteString("M ")
			writePair(&sb, c.X, c.Y)
		case LineTo:
			sb.WriteByte('L')
			writePair(&sb, c.X, c.Y)
		case Close:
			sb.WriteString(" Z")
		}
	}

	return sb.String()
}

// WriteTo writes Encode(o) to w.
func WriteTo(w io.Writer, o *ellipse.Outline) (int64, error) {
	n, err := io.WriteString(w, Encode(o))

	return int64(n), err
}

// writePair appends "x, y" using the shortest exact decimal form.
func writePair(sb *strings.Builder, x, y float64) {
	sb.WriteString(formatCoord(x))
	sb.WriteString(", ")
	sb.WriteString(formatCoord(y))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
