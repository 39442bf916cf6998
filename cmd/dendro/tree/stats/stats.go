// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// summary statistics of the trees in a dendro project.
package stats

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/dendro/project"
	"github.com/js-arias/dendro/treestat"
)

var Command = &command.Command{
	Usage: "stats [--tree <tree-name>] <project-file>",
	Short: "print summary statistics of the trees",
	Long: `
Command stats reads the trees from a dendro project and prints a summary of
each tree in the standard output, as a tab-delimited table.

The argument of the command is the name of the project file.

The table contains the following columns:

	- tree      the name of the tree
	- nodes     the number of nodes
	- leaves    the number of leaves
	- inline    the number of nodes with a single descendant
	- undef     the number of branches without a defined length
	- length    the sum of all branch lengths
	- min       the minimum depth of a leaf
	- max       the maximum depth of a leaf
	- mean      the mean depth of the leaves
	- median    the median depth of the leaves
	- sd        the standard deviation of the leaf depths

Branches without a defined length are counted as branches of length 1.

By default all trees will be summarized. If the flag --tree is set, only the
indicated tree will be summarized.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
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

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	if err := tsv.Write([]string{"tree", "nodes", "leaves", "inline", "undef", "length", "min", "max", "mean", "median", "sd"}); err != nil {
		return err
	}

	for _, tn := range ls {
		s, err := treestat.Summarize(tc.Tree(tn))
		if err != nil {
			return err
		}
		row := []string{
			tn,
			strconv.Itoa(s.Nodes),
			strconv.Itoa(s.Leaves),
			strconv.Itoa(s.Inline),
			strconv.Itoa(s.Undefined),
			strconv.FormatFloat(s.Length, 'f', 6, 64),
			strconv.FormatFloat(s.MinDepth, 'f', 6, 64),
			strconv.FormatFloat(s.MaxDepth, 'f', 6, 64),
			strconv.FormatFloat(s.MeanDepth, 'f', 6, 64),
			strconv.FormatFloat(s.MedianDepth, 'f', 6, 64),
			strconv.FormatFloat(s.SDDepth, 'f', 6, 64),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
