// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Style is an output style for a grid.
type Style int

// Valid output styles.
const (
	// Plain ASCII symbols,
	// junctions are not resolved.
	Raw Style = iota

	// ASCII symbols,
	// the upper angles are replaced by a comma
	// and the lower angles by a backtick.
	Comma

	// ASCII symbols,
	// the upper angles are replaced by a slash
	// and the lower angles by a backslash.
	Slash

	// Line drawing characters of VT100 terminals
	// (DEC special graphics).
	VT100

	// Unicode box drawing characters.
	Unicode
)

var styleNames = []string{
	Raw:     "raw",
	Comma:   "comma",
	Slash:   "slash",
	VT100:   "vt100",
	Unicode: "unicode",
}

// ErrStyle is returned when a style is not defined.
var ErrStyle = errors.New("unknown style")

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return Raw, fmt.Errorf("%w %q", ErrStyle, name)
}

// String returns the name of the style.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// VT100 sequences to switch
// between the ASCII and the line drawing character sets.
const (
	vt100In  = "\x1b(0"
	vt100Out = "\x1b(B"
)

// A glyphSet maps the symbol classes
// to the glyphs used by a style.
type glyphSet struct {
	vertical   rune
	horizontal rune
	upper      rune // upper right diagonal
	lower      rune // lower right diagonal
	node       rune
	cross      rune
	tee        rune
	fork       rune

	// box drawing characters
	box bool
}

var glyphSets = map[Style]glyphSet{
	Comma: {
		vertical:   Vertical,
		horizontal: Horizontal,
		upper:      ',',
		lower:      '`',
		node:       Junction,
		cross:      Junction,
		tee:        Junction,
		fork:       Junction,
	},
	Slash: {
		vertical:   Vertical,
		horizontal: Horizontal,
		upper:      '/',
		lower:      '\\',
		node:       Junction,
		cross:      Junction,
		tee:        Junction,
		fork:       Junction,
	},
	VT100: {
		vertical:   'x',
		horizontal: 'q',
		upper:      'l',
		lower:      'm',
		node:       '`',
		cross:      'n',
		tee:        'u',
		fork:       't',
		box:        true,
	},
	Unicode: {
		vertical:   '│',
		horizontal: '─',
		upper:      '┌',
		lower:      '└',
		node:       '◆',
		cross:      '┼',
		tee:        '┤',
		fork:       '├',
		box:        true,
	},
}

func (gl glyphSet) glyph(s Shape) rune {
	switch s {
	case UpperAngle:
		return gl.upper
	case LowerAngle:
		return gl.lower
	case Cross:
		return gl.cross
	case Tee:
		return gl.tee
	case Fork:
		return gl.fork
	case Tip, Inline:
		return gl.node
	}
	return Junction
}

// Fprint writes a grid using an output style.
// The grid must be already resolved
// with the same style.
//
// For the VT100 style,
// each run of drawing cells is enclosed
// in the sequences that switch to the line drawing character set
// and back to ASCII.
// Text and the root marker are always written in ASCII.
func Fprint(w io.Writer, g *Grid, st Style) error {
	if st != VT100 {
		return g.Dump(w)
	}

	bw := bufio.NewWriter(w)
	for i, r := range g.cells {
		graph := false
		for j, c := range r {
			ascii := g.text[i][j] || c == RootMarker
			if !ascii && c != Blank && !graph {
				bw.WriteString(vt100In)
				graph = true
			}
			if ascii && graph {
				bw.WriteString(vt100Out)
				graph = false
			}
			bw.WriteRune(c)
		}
		if graph {
			bw.WriteString(vt100Out)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing grid: %v", err)
	}
	return nil
}
