// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a dendro project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/dendro/project"
)

var Command = &command.Command{
	Usage: "list [--size] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a dendro project and print the tree names in
the standard output.

The argument of the command is the name of the project file.

If the flag --size is given, the number of nodes and leaves of each tree will
be printed after the tree name, separated by tabs. As each leaf uses two rows
of a drawing, the number of leaves indicates the height of the drawing.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var sizeFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&sizeFlag, "size", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	for _, tn := range tc.Names() {
		if !sizeFlag {
			fmt.Fprintf(c.Stdout(), "%s\n", tn)
			continue
		}
		t := tc.Tree(tn)
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", tn, t.Len(), t.Leaves())
	}
	return nil
}
