// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package canvas implements a fixed size grid of characters
// used to draw trees as text.
//
// Lines are drawn with plain ASCII symbols:
// a horizontal stroke is a '-',
// a vertical stroke is a '|',
// and the cell in which a vertical and a horizontal stroke
// meet is a junction ('+').
// Junctions can be reclassified later
// into directional glyphs
// (see Resolve).
package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stroke symbols.
const (
	Blank      = ' '
	Horizontal = '-'
	Vertical   = '|'
	Junction   = '+'
)

// ErrSize is returned when a grid is created
// with invalid dimensions.
var ErrSize = errors.New("invalid grid size")

// A Grid is a rectangular buffer of characters.
type Grid struct {
	width  int
	height int

	cells [][]rune

	// strokes drawn on each cell,
	// kept when a text is written over them
	strokes [][]rune

	// text cells
	text [][]bool
}

// New creates a new blank grid
// with the indicated width and height.
func New(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrSize, width, height)
	}

	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([][]rune, height),
		strokes: make([][]rune, height),
		text:    make([][]bool, height),
	}
	for i := range g.cells {
		g.cells[i] = blankRow(width)
		g.strokes[i] = blankRow(width)
		g.text[i] = make([]bool, width)
	}
	return g, nil
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for j := range row {
		row[j] = Blank
	}
	return row
}

// Width returns the number of columns of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows of the grid.
func (g *Grid) Height() int {
	return g.height
}

// HLine draws a horizontal stroke on a row,
// from the start column to the stop column
// (both included).
// Cells with a vertical stroke become junctions,
// even if a text was written over them.
func (g *Grid) HLine(row, start, stop int) {
	if start > stop {
		start, stop = stop, start
	}
	for col := start; col <= stop; col++ {
		s := g.strokes[row][col]
		if s == Vertical || s == Junction {
			g.stroke(row, col, Junction)
			continue
		}
		g.stroke(row, col, Horizontal)
	}
}

// VLine draws a vertical stroke on a column,
// from the start row to the stop row
// (both included).
// Cells with a horizontal stroke become junctions,
// even if a text was written over them.
func (g *Grid) VLine(col, start, stop int) {
	if start > stop {
		start, stop = stop, start
	}
	for row := start; row <= stop; row++ {
		s := g.strokes[row][col]
		if s == Horizontal || s == Junction {
			g.stroke(row, col, Junction)
			continue
		}
		g.stroke(row, col, Vertical)
	}
}

func (g *Grid) stroke(row, col int, s rune) {
	g.cells[row][col] = s
	g.strokes[row][col] = s
	g.text[row][col] = false
}

// WriteText writes a text on a row,
// starting at the indicated column.
// Characters beyond the right border of the grid
// are discarded.
//
// The text hides the strokes below it,
// but they are still used
// to classify the neighbor junctions.
func (g *Grid) WriteText(col, row int, text string) {
	if col >= g.width {
		return
	}
	r := g.cells[row]
	for _, c := range text {
		if col >= g.width {
			return
		}
		r[col] = c
		g.text[row][col] = true
		col++
	}
}

// At returns the character at a given cell.
func (g *Grid) At(row, col int) rune {
	return g.cells[row][col]
}

// Set sets the character of a cell.
// The cell is treated as a drawing,
// not as text.
// If the character is a stroke symbol
// or the root marker,
// it replaces the stroke of the cell,
// otherwise the cell has no stroke.
func (g *Grid) Set(row, col int, c rune) {
	g.cells[row][col] = c
	g.text[row][col] = false
	switch c {
	case Horizontal, Vertical, Junction, RootMarker:
		g.strokes[row][col] = c
	default:
		g.strokes[row][col] = Blank
	}
}

// Stroke returns the stroke drawn on a cell,
// including the strokes hidden by a text.
func (g *Grid) Stroke(row, col int) rune {
	return g.strokes[row][col]
}

// IsText returns true if the cell
// was written with WriteText.
func (g *Grid) IsText(row, col int) bool {
	return g.text[row][col]
}

// Lines returns the rows of the grid.
func (g *Grid) Lines() []string {
	ls := make([]string, 0, g.height)
	for _, r := range g.cells {
		ls = append(ls, string(r))
	}
	return ls
}

// String returns the grid as a single string,
// with a new line at the end of each row.
func (g *Grid) String() string {
	var b strings.Builder
	for _, r := range g.cells {
		b.WriteString(string(r))
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes each row of the grid,
// one per line.
func (g *Grid) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range g.cells {
		bw.WriteString(string(r))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing grid: %v", err)
	}
	return nil
}

// Release frees the grid buffer.
// After a release,
// the grid has no cells.
func (g *Grid) Release() {
	g.cells = nil
	g.strokes = nil
	g.text = nil
	g.width = 0
	g.height = 0
}
