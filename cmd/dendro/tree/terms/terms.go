// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the trees of a dendro project.
package terms

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/dendro/project"
	"github.com/js-arias/dendro/rtree"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--tree <tree-name>] [--order] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the trees from a dendro project and print the labels of
the terminals in the standard output.

The argument of the command is the name of the project file.

By default all terminals will be printed in alphabetical order. If the flag
--tree is set, only the terminals of the indicated tree will be printed.

If the flag --order is given, the terminals of each tree will be printed in
the order in which they are drawn (from top to bottom), and terminals shared
by several trees will be printed once for each tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var drawOrder bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&drawOrder, "order", false, "")
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

	var ls []string
	if treeName != "" {
		if tc.Tree(treeName) == nil {
			return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
		}
		ls = append(ls, treeName)
	} else {
		ls = tc.Names()
	}

	if drawOrder {
		for _, tn := range ls {
			for _, term := range tc.Tree(tn).Terms() {
				fmt.Fprintf(c.Stdout(), "%s\n", term)
			}
		}
		return nil
	}

	for _, term := range makeTermList(tc, ls) {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}

func makeTermList(tc *rtree.Collection, ls []string) []string {
	terms := make(map[string]bool)
	for _, tn := range ls {
		for _, tax := range tc.Tree(tn).Terms() {
			terms[tax] = true
		}
	}

	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	return termList
}
