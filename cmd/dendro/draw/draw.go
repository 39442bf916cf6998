// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a dendro project as text dendrograms.
package draw

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/dendro/canvas"
	"github.com/js-arias/dendro/project"
	"github.com/js-arias/dendro/render"
	"github.com/js-arias/dendro/rtree"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[-w|--width <number>] [--style <style>]
	[--verbose]
	<project-file>`,
	Short: "draw project trees as text",
	Long: `
Command draw reads a dendro project and draws the trees as text dendrograms in
the standard output.

The argument of the command is the name of the project file.

Each leaf of a tree uses two rows of the output. The root is at the left,
marked with a '=', and the length of each branch is proportional to its
length. Branches without a defined length are drawn as branches of length 1.

By default, all trees in the project will be drawn, one after the other,
separated by an empty line. If the flag --tree is set, only the indicated tree
will be drawn.

By default, the drawing is 80 columns wide. Use the flag --width, or -w, to
define a different width. The width must be large enough to hold the longest
terminal label and the margins of the drawing.

The flag --style defines the characters used for the drawing. Valid values
are:

	raw      plain ASCII, all junctions are drawn with '+'
	comma    ASCII, with upper and lower angles drawn as ',' and '` + "`" + `'
	slash    ASCII, with upper and lower angles drawn as '/' and '\'
	vt100    line drawing characters of VT100 terminals
	unicode  Unicode box drawing characters
	auto     unicode if the locale uses UTF-8, raw otherwise

The default style is raw.

If the flag --verbose is given, the number of leaves, the maximum depth, and
the scale (columns per unit of length) of each tree will be printed in the
standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var width int
var styleFlag string
var treeName string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&width, "width", 80, "")
	c.Flags().IntVar(&width, "w", 80, "")
	c.Flags().StringVar(&styleFlag, "style", "raw", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if width <= 0 {
		return c.UsageError(fmt.Sprintf("invalid width %d", width))
	}
	st, err := parseStyle(styleFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	var ls []string
	if treeName != "" {
		if tc.Tree(treeName) == nil {
			return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
		}
		ls = append(ls, treeName)
	} else {
		ls = tc.Names()
	}

	bw := bufio.NewWriter(c.Stdout())
	for i, tn := range ls {
		t := tc.Tree(tn)
		if i > 0 {
			fmt.Fprintf(bw, "\n")
		}
		if verbose {
			report(c, t)
		}
		if err := render.Fprint(bw, t, width, st); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing output: %v", err)
	}
	return nil
}

func report(c *command.Command, t *rtree.Tree) {
	lt, err := render.Prepare(t, width)
	if err != nil {
		// the error is reported when the tree is drawn
		return
	}
	fmt.Fprintf(c.Stderr(), "# %s: leaves %d, max depth %.6f, max label %d, scale %.6f\n", t.Name(), lt.Leaves, lt.Stats.MaxDepth, lt.Stats.MaxLabel, lt.Scale)
}

// ParseStyle returns the style from the style flag.
// The value "auto" uses the locale
// from the environment.
func parseStyle(s string) (canvas.Style, error) {
	if strings.ToLower(s) != "auto" {
		return canvas.ParseStyle(s)
	}

	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		if strings.Contains(v, "utf-8") || strings.Contains(v, "utf8") {
			return canvas.Unicode, nil
		}
		return canvas.Raw, nil
	}
	return canvas.Raw, nil
}
