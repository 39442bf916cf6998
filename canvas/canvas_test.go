// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package canvas_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/dendro/canvas"
)

func TestNew(t *testing.T) {
	tests := []struct {
		width  int
		height int
	}{
		{0, 0},
		{0, 3},
		{4, 0},
		{1, 1},
		{20, 7},
	}

	for _, test := range tests {
		g, err := canvas.New(test.width, test.height)
		if err != nil {
			t.Fatalf("new %d x %d: unexpected error: %v", test.width, test.height, err)
		}
		if g.Width() != test.width {
			t.Errorf("new %d x %d: got width %d", test.width, test.height, g.Width())
		}
		if g.Height() != test.height {
			t.Errorf("new %d x %d: got height %d", test.width, test.height, g.Height())
		}

		ls := g.Lines()
		if len(ls) != test.height {
			t.Errorf("new %d x %d: got %d rows", test.width, test.height, len(ls))
		}
		blank := strings.Repeat(" ", test.width)
		for i, l := range ls {
			if l != blank {
				t.Errorf("new %d x %d: row %d: got %q, want %q", test.width, test.height, i, l, blank)
			}
		}
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := canvas.New(-1, 4); !errors.Is(err, canvas.ErrSize) {
		t.Errorf("negative width: got error %v, want %v", err, canvas.ErrSize)
	}
	if _, err := canvas.New(4, -1); !errors.Is(err, canvas.ErrSize) {
		t.Errorf("negative height: got error %v, want %v", err, canvas.ErrSize)
	}
}

func TestLines(t *testing.T) {
	g := newGrid(t, 5, 4)
	g.HLine(0, 2, 4)
	g.VLine(2, 0, 3)
	g.HLine(2, 0, 3)

	want := []string{
		"  +--",
		"  |  ",
		"--+- ",
		"  |  ",
	}
	testGrid(t, "lines", g, want)
}

func TestHLine(t *testing.T) {
	g := newGrid(t, 8, 3)
	g.VLine(3, 0, 2)
	g.HLine(1, 1, 5)

	want := []string{
		"   |    ",
		" --+--  ",
		"   |    ",
	}
	testGrid(t, "hline", g, want)

	// reversed bounds
	g = newGrid(t, 8, 1)
	g.HLine(0, 5, 2)
	testGrid(t, "hline reversed", g, []string{"  ----  "})
}

func TestVLine(t *testing.T) {
	g := newGrid(t, 3, 6)
	g.HLine(2, 0, 2)
	g.VLine(1, 1, 4)

	want := []string{
		"   ",
		" | ",
		"-+-",
		" | ",
		" | ",
		"   ",
	}
	testGrid(t, "vline", g, want)
}

func TestWriteText(t *testing.T) {
	g := newGrid(t, 20, 2)
	g.WriteText(0, 0, "xxxxxxxxxxxxxxxxxxxx")
	g.WriteText(10, 0, "bulgone")

	want := []string{
		"xxxxxxxxxxbulgonexxx",
		"                    ",
	}
	testGrid(t, "write", g, want)

	// truncated text
	g.WriteText(17, 1, "bulgone")
	want[1] = "                 bul"
	testGrid(t, "truncated", g, want)

	// outside the grid
	g.WriteText(20, 1, "out")
	testGrid(t, "outside", g, want)

	if !g.IsText(0, 12) {
		t.Errorf("cell 0, 12: want text cell")
	}
}

func TestTextOverStroke(t *testing.T) {
	g := newGrid(t, 6, 1)
	g.WriteText(0, 0, "a|b")
	g.HLine(0, 0, 5)
	testGrid(t, "text", g, []string{"------"})
}

func TestStrokeUnderText(t *testing.T) {
	g := newGrid(t, 6, 1)
	g.HLine(0, 0, 5)
	g.WriteText(2, 0, "ab")
	testGrid(t, "text", g, []string{"--ab--"})

	if s := g.Stroke(0, 3); s != canvas.Horizontal {
		t.Errorf("stroke 0, 3: got %q, want %q", s, canvas.Horizontal)
	}
	if !g.IsText(0, 3) {
		t.Errorf("cell 0, 3: want text cell")
	}

	// a vertical stroke over a hidden stroke
	// is a junction
	g.VLine(2, 0, 0)
	testGrid(t, "junction", g, []string{"--+b--"})
	if g.IsText(0, 2) {
		t.Errorf("cell 0, 2: want drawing cell")
	}
}

func TestStrokeOverJunction(t *testing.T) {
	g := newGrid(t, 5, 3)
	g.HLine(1, 0, 2)
	g.VLine(2, 1, 1)
	g.HLine(1, 2, 4)
	g.VLine(2, 0, 2)

	want := []string{
		"  |  ",
		"--+--",
		"  |  ",
	}
	testGrid(t, "junction", g, want)
	if s := g.Stroke(1, 2); s != canvas.Junction {
		t.Errorf("stroke 1, 2: got %q, want %q", s, canvas.Junction)
	}
}

func TestCell(t *testing.T) {
	g := newGrid(t, 4, 4)
	g.Set(2, 3, '#')
	if c := g.At(2, 3); c != '#' {
		t.Errorf("cell: got %q, want %q", c, '#')
	}
	if c := g.At(3, 2); c != canvas.Blank {
		t.Errorf("cell: got %q, want %q", c, canvas.Blank)
	}
}

func TestDump(t *testing.T) {
	g := newGrid(t, 5, 4)
	g.HLine(0, 2, 4)
	g.VLine(2, 0, 3)
	g.HLine(2, 0, 3)

	var buf bytes.Buffer
	if err := g.Dump(&buf); err != nil {
		t.Fatalf("dump: unexpected error: %v", err)
	}
	want := "  +--\n  |  \n--+- \n  |  \n"
	if got := buf.String(); got != want {
		t.Errorf("dump: got %q, want %q", got, want)
	}
	if got := g.String(); got != want {
		t.Errorf("string: got %q, want %q", got, want)
	}
}

func TestRelease(t *testing.T) {
	g := newGrid(t, 5, 4)
	g.Release()
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("release: got %d x %d grid", g.Width(), g.Height())
	}
	if ls := g.Lines(); len(ls) != 0 {
		t.Errorf("release: got %d rows", len(ls))
	}
}

func newGrid(t testing.TB, width, height int) *canvas.Grid {
	t.Helper()

	g, err := canvas.New(width, height)
	if err != nil {
		t.Fatalf("unable to create grid: %v", err)
	}
	return g
}

func testGrid(t testing.TB, name string, g *canvas.Grid, want []string) {
	t.Helper()

	got := g.Lines()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got\n%s\nwant\n%s", name, strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
