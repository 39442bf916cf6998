// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package canvas

import (
	"errors"
	"fmt"
)

// RootMarker is the symbol used to indicate
// the root of a tree.
// For the junction classification
// it is a horizontal stroke.
const RootMarker = '='

// Shape is the shape of a junction
// as defined by its neighbors.
type Shape int

// Valid junction shapes.
//
// The pattern of each shape lists the neighbors
// in the order above, below, left, and right,
// using '_' for a blank,
// '|' for a vertical stroke,
// and '-' for a horizontal stroke.
const (
	// A pattern not produced by a tree drawing.
	Unknown Shape = iota

	// The first child of a node: "_|_-".
	UpperAngle

	// The last child of a node: "|__-".
	LowerAngle

	// A child in the same row of its parent branch: "||--".
	Cross

	// A parent branch without a child in the same row: "||-_".
	Tee

	// A child between the first and the last child: "||_-".
	Fork

	// The end of a terminal branch: "__-_".
	Tip

	// A node with a single descendant: "__--".
	Inline
)

var shapePattern = map[string]Shape{
	"_|_-": UpperAngle,
	"|__-": LowerAngle,
	"||--": Cross,
	"||-_": Tee,
	"||_-": Fork,
	"__-_": Tip,
	"__--": Inline,
}

// String returns the name of a shape.
func (s Shape) String() string {
	switch s {
	case UpperAngle:
		return "upper-angle"
	case LowerAngle:
		return "lower-angle"
	case Cross:
		return "cross"
	case Tee:
		return "tee"
	case Fork:
		return "fork"
	case Tip:
		return "tip"
	case Inline:
		return "inline"
	}
	return "unknown"
}

// ErrJunction is the error returned
// when a junction has an unexpected shape.
var ErrJunction = errors.New("unexpected junction shape")

// A JunctionError is an error produced
// by a junction with an unknown shape.
type JunctionError struct {
	Row     int
	Col     int
	Pattern string
}

func (e *JunctionError) Error() string {
	return fmt.Sprintf("%v at row %d, column %d: pattern %q", ErrJunction, e.Row, e.Col, e.Pattern)
}

func (e *JunctionError) Unwrap() error {
	return ErrJunction
}

// Pattern returns the neighbor pattern of a cell.
//
// Cells outside the grid
// and text cells without a stroke
// are blanks.
// A text written over a stroke
// does not hide it.
func Pattern(g *Grid, row, col int) string {
	p := []byte("____")
	if isVertical(g, row-1, col) {
		p[0] = '|'
	}
	if isVertical(g, row+1, col) {
		p[1] = '|'
	}
	if isHorizontal(g, row, col-1) {
		p[2] = '-'
	}
	if isHorizontal(g, row, col+1) {
		p[3] = '-'
	}
	return string(p)
}

// Classify returns the shape of a junction cell.
func Classify(g *Grid, row, col int) Shape {
	return shapePattern[Pattern(g, row, col)]
}

func isVertical(g *Grid, row, col int) bool {
	if !g.inside(row, col) {
		return false
	}
	s := g.strokes[row][col]
	return s == Vertical || s == Junction
}

func isHorizontal(g *Grid, row, col int) bool {
	if !g.inside(row, col) {
		return false
	}
	s := g.strokes[row][col]
	return s == Horizontal || s == Junction || s == RootMarker
}

func (g *Grid) inside(row, col int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	if col < 0 || col >= g.width {
		return false
	}
	return true
}

type junction struct {
	row, col int
	shape    Shape
}

// Resolve replaces the junctions of a grid
// with the glyphs of the given style.
// Box drawing styles also replace
// the horizontal and vertical strokes.
//
// Junctions hidden by a text are not replaced.
//
// All junctions are classified before any change,
// so if a junction has an unknown shape,
// the grid is left untouched
// and a *JunctionError is returned.
func Resolve(g *Grid, st Style) error {
	if st == Raw {
		return nil
	}
	gl, ok := glyphSets[st]
	if !ok {
		return fmt.Errorf("%w: %v", ErrStyle, st)
	}

	var js []junction
	for i, r := range g.strokes {
		for j, s := range r {
			if s != Junction || g.text[i][j] {
				continue
			}
			p := Pattern(g, i, j)
			shape := shapePattern[p]
			if shape == Unknown {
				return &JunctionError{Row: i, Col: j, Pattern: p}
			}
			js = append(js, junction{row: i, col: j, shape: shape})
		}
	}

	if gl.box {
		for i, r := range g.cells {
			for j, c := range r {
				if g.text[i][j] {
					continue
				}
				switch c {
				case Horizontal:
					r[j] = gl.horizontal
				case Vertical:
					r[j] = gl.vertical
				}
			}
		}
	}

	for _, x := range js {
		g.cells[x.row][x.col] = gl.glyph(x.shape)
	}
	return nil
}
