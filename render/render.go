// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render draws rooted trees
// as text dendrograms.
//
// Each leaf uses two rows of the output,
// and the root is at the left,
// marked with a '=' at the first column.
// The horizontal length of each branch
// is proportional to its length,
// scaled so the deepest leaf and its label
// fit in the output width.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/js-arias/dendro/canvas"
	"github.com/js-arias/dendro/layout"
	"github.com/js-arias/dendro/rtree"
)

// Margins of the drawing
// (in columns).
const (
	// Columns reserved for the root marker.
	RootSpace = 1

	// Columns between a node and its label.
	LabelSpace = 2
)

// Errors returned by the renderer.
var (
	// ErrScale is returned when the output width
	// is too small to draw the tree.
	ErrScale = errors.New("output width too small")

	// ErrRange is returned when a node
	// is drawn outside of the output.
	ErrRange = errors.New("node outside of the output")

	// ErrEmpty is returned when the tree has no nodes.
	ErrEmpty = errors.New("empty tree")
)

// A StageError is an error
// produced at a given stage of the rendering.
type StageError struct {
	Tree  string
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("tree %q: %s: %v", e.Tree, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Scale returns the number of columns
// per unit of depth,
// required to draw a tree with the given statistics
// in the indicated width.
// The statistics must be the ones returned by layout.SetDepths,
// which never have a zero maximum depth.
func Scale(width int, st layout.Stats) float64 {
	return float64(width-st.MaxLabel-RootSpace-LabelSpace) / st.MaxDepth
}

// Layout is the result of a tree layout.
type Layout struct {
	Leaves int
	Stats  layout.Stats
	Scale  float64
}

// Prepare sets the positions of the nodes of a tree,
// and returns the layout of the tree
// for the given width.
func Prepare(t *rtree.Tree, width int) (Layout, error) {
	if t.Root() == nil {
		return Layout{}, &StageError{Tree: t.Name(), Stage: "positions", Err: ErrEmpty}
	}

	layout.Allocate(t)
	st, err := layout.SetDepths(t)
	if err != nil {
		return Layout{}, &StageError{Tree: t.Name(), Stage: "depths", Err: err}
	}
	leaves, err := layout.SetPositions(t)
	if err != nil {
		return Layout{}, &StageError{Tree: t.Name(), Stage: "positions", Err: err}
	}

	scale := Scale(width, st)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		err := fmt.Errorf("%w: width %d, label %d, scale %.6f", ErrScale, width, st.MaxLabel, scale)
		return Layout{}, &StageError{Tree: t.Name(), Stage: "scale", Err: err}
	}

	return Layout{
		Leaves: leaves,
		Stats:  st,
		Scale:  scale,
	}, nil
}

// Draw draws a tree on a new grid
// with the indicated width.
// The height of the grid is two rows per leaf.
//
// The nodes of the tree keep their positions
// as annotations.
func Draw(t *rtree.Tree, width int) (*canvas.Grid, error) {
	lt, err := Prepare(t, width)
	if err != nil {
		return nil, err
	}

	g, err := canvas.New(width, 2*lt.Leaves)
	if err != nil {
		return nil, &StageError{Tree: t.Name(), Stage: "canvas", Err: err}
	}

	if err := paint(g, t, lt.Scale); err != nil {
		g.Release()
		return nil, &StageError{Tree: t.Name(), Stage: "paint", Err: err}
	}
	return g, nil
}

func column(p layout.Positioner, scale float64) int {
	return int(math.Round(RootSpace + scale*p.Depth()))
}

func paint(g *canvas.Grid, t *rtree.Tree, scale float64) error {
	for _, n := range t.Nodes() {
		p, err := layout.PositionOf(n)
		if err != nil {
			return err
		}

		h := column(p, scale)
		top := int(math.Round(2 * p.Top()))
		bottom := int(math.Round(2 * p.Bottom()))
		mid := int(math.Round(p.Top() + p.Bottom()))
		if h < 0 || h >= g.Width() {
			return fmt.Errorf("%w: node %d (%q): column %d", ErrRange, n.ID(), n.Label(), h)
		}

		g.VLine(h, top, bottom)
		g.WriteText(h+LabelSpace, mid, n.Label())
		if n.IsRoot() {
			g.Set(mid, 0, canvas.RootMarker)
			continue
		}

		pp, err := layout.PositionOf(n.Parent())
		if err != nil {
			return err
		}
		ph := column(pp, scale)
		if ph < 0 || ph >= g.Width() {
			return fmt.Errorf("%w: node %d (%q): column %d", ErrRange, n.Parent().ID(), n.Parent().Label(), ph)
		}
		g.HLine(mid, ph, h)
	}
	return nil
}

// Fprint draws a tree
// and writes it using the indicated style.
func Fprint(w io.Writer, t *rtree.Tree, width int, st canvas.Style) error {
	g, err := Draw(t, width)
	if err != nil {
		return err
	}
	defer g.Release()

	if err := canvas.Resolve(g, st); err != nil {
		return &StageError{Tree: t.Name(), Stage: "junctions", Err: err}
	}
	if err := canvas.Fprint(w, g, st); err != nil {
		return &StageError{Tree: t.Name(), Stage: "output", Err: err}
	}
	return nil
}

// Text returns a tree drawn as text
// using the indicated style.
func Text(t *rtree.Tree, width int, st canvas.Style) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, t, width, st); err != nil {
		return "", err
	}
	return b.String(), nil
}
