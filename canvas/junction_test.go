// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package canvas_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/js-arias/dendro/canvas"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		above, below, left, right rune
		want                      canvas.Shape
	}{
		"upper-angle": {' ', '|', ' ', '-', canvas.UpperAngle},
		"lower-angle": {'|', ' ', ' ', '-', canvas.LowerAngle},
		"cross":       {'|', '|', '-', '-', canvas.Cross},
		"tee":         {'|', '|', '-', ' ', canvas.Tee},
		"fork":        {'|', '+', ' ', '-', canvas.Fork},
		"tip":         {' ', ' ', '-', ' ', canvas.Tip},
		"inline":      {' ', ' ', '=', '-', canvas.Inline},
		"unknown":     {'|', ' ', '-', ' ', canvas.Unknown},
		"no strokes":  {' ', ' ', ' ', ' ', canvas.Unknown},
	}

	for name, test := range tests {
		g := newGrid(t, 3, 3)
		g.Set(1, 1, canvas.Junction)
		g.Set(0, 1, test.above)
		g.Set(2, 1, test.below)
		g.Set(1, 0, test.left)
		g.Set(1, 2, test.right)

		if s := canvas.Classify(g, 1, 1); s != test.want {
			t.Errorf("%s: got %v, want %v", name, s, test.want)
		}
	}
}

func TestClassifyBorder(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.Set(0, 0, canvas.Junction)
	g.Set(1, 0, canvas.Vertical)
	g.Set(0, 1, canvas.Horizontal)

	if s := canvas.Classify(g, 0, 0); s != canvas.UpperAngle {
		t.Errorf("border: got %v, want %v", s, canvas.UpperAngle)
	}
}

func TestClassifyText(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.Set(1, 1, canvas.Junction)
	g.Set(2, 1, canvas.Vertical)
	g.WriteText(2, 1, "-")

	if p := canvas.Pattern(g, 1, 1); p != "_|__" {
		t.Errorf("text: got pattern %q, want %q", p, "_|__")
	}
}

func TestClassifyHiddenStroke(t *testing.T) {
	// a label written over the branch of a terminal
	g := newGrid(t, 6, 1)
	g.HLine(0, 0, 4)
	g.VLine(4, 0, 0)
	g.WriteText(1, 0, "X")

	if s := canvas.Classify(g, 0, 4); s != canvas.Tip {
		t.Errorf("hidden stroke: got %v, want %v", s, canvas.Tip)
	}
	if err := canvas.Resolve(g, canvas.Unicode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testGrid(t, "hidden stroke", g, []string{"─X──◆ "})
}

// smallTree returns a grid with a tree of two terminals.
func smallTree(t testing.TB) *canvas.Grid {
	t.Helper()

	g := newGrid(t, 8, 3)
	for _, row := range []int{0, 2} {
		g.VLine(4, row, row)
		g.HLine(row, 1, 4)
	}
	g.VLine(1, 0, 2)
	g.Set(1, 0, canvas.RootMarker)
	g.WriteText(6, 0, "A")
	g.WriteText(6, 2, "B")
	return g
}

func TestResolve(t *testing.T) {
	tests := map[canvas.Style][]string{
		canvas.Raw: {
			" +--+ A ",
			"=|      ",
			" +--+ B ",
		},
		canvas.Comma: {
			" ,--+ A ",
			"=|      ",
			" `--+ B ",
		},
		canvas.Slash: {
			" /--+ A ",
			"=|      ",
			" \\--+ B ",
		},
		canvas.VT100: {
			" lqq` A ",
			"=x      ",
			" mqq` B ",
		},
		canvas.Unicode: {
			" ┌──◆ A ",
			"=│      ",
			" └──◆ B ",
		},
	}

	for st, want := range tests {
		g := smallTree(t)
		if err := canvas.Resolve(g, st); err != nil {
			t.Fatalf("%v: unexpected error: %v", st, err)
		}
		testGrid(t, st.String(), g, want)
	}
}

func TestResolveTree(t *testing.T) {
	g := newGrid(t, 12, 7)
	for _, row := range []int{0, 2, 4} {
		g.VLine(7, row, row)
		g.HLine(row, 4, 7)
	}
	g.VLine(4, 0, 4)
	g.HLine(1, 1, 4)
	g.VLine(4, 6, 6)
	g.HLine(6, 1, 4)
	g.VLine(1, 1, 6)
	g.Set(3, 0, canvas.RootMarker)

	if err := canvas.Resolve(g, canvas.Unicode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"    ┌──◆    ",
		" ┌──┤       ",
		" │  ├──◆    ",
		"=│  │       ",
		" │  └──◆    ",
		" │          ",
		" └──◆       ",
	}
	testGrid(t, "tree", g, want)
}

func TestResolveUnknown(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.VLine(1, 0, 1)
	g.HLine(1, 0, 1)

	err := canvas.Resolve(g, canvas.Unicode)
	if !errors.Is(err, canvas.ErrJunction) {
		t.Fatalf("got error %v, want %v", err, canvas.ErrJunction)
	}
	var je *canvas.JunctionError
	if !errors.As(err, &je) {
		t.Fatalf("got error %T, want *JunctionError", err)
	}
	if je.Row != 1 || je.Col != 1 || je.Pattern != "|_-_" {
		t.Errorf("got junction error at %d, %d [%q]", je.Row, je.Col, je.Pattern)
	}

	// the grid is not modified
	want := []string{
		" | ",
		"-+ ",
		"   ",
	}
	testGrid(t, "unknown", g, want)
}

func TestResolveUndefinedStyle(t *testing.T) {
	g := smallTree(t)
	want := g.Lines()

	err := canvas.Resolve(g, canvas.Style(42))
	if !errors.Is(err, canvas.ErrStyle) {
		t.Errorf("got error %v, want %v", err, canvas.ErrStyle)
	}
	testGrid(t, "undefined style", g, want)
}

func TestFprintVT100(t *testing.T) {
	g := smallTree(t)
	if err := canvas.Resolve(g, canvas.VT100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := canvas.Fprint(&buf, g, canvas.VT100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := " \x1b(0lqq` \x1b(BA \n" +
		"=\x1b(0x      \x1b(B\n" +
		" \x1b(0mqq` \x1b(BB \n"
	if got := buf.String(); got != want {
		t.Errorf("vt100: got %q, want %q", got, want)
	}
}

func TestParseStyle(t *testing.T) {
	for _, st := range []canvas.Style{canvas.Raw, canvas.Comma, canvas.Slash, canvas.VT100, canvas.Unicode} {
		got, err := canvas.ParseStyle(st.String())
		if err != nil {
			t.Errorf("style %v: unexpected error: %v", st, err)
			continue
		}
		if got != st {
			t.Errorf("style %v: got %v", st, got)
		}
	}

	if _, err := canvas.ParseStyle("color"); err == nil {
		t.Errorf("style %q: expecting error", "color")
	}
}
