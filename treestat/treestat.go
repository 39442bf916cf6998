// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treestat implements summary statistics
// of rooted trees.
package treestat

import (
	"fmt"
	"math"
	"slices"

	"github.com/js-arias/dendro/layout"
	"github.com/js-arias/dendro/rtree"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is a summary of a tree.
type Summary struct {
	Name string

	Nodes  int
	Leaves int

	// Number of nodes with a single child.
	Inline int

	// Number of branches without a defined length.
	Undefined int

	// Sum of all branch lengths.
	Length float64

	// Leaf depths (from the root).
	MinDepth    float64
	MaxDepth    float64
	MeanDepth   float64
	MedianDepth float64
	SDDepth     float64
}

// Summarize returns the summary of a tree.
//
// Node annotations are used to calculate
// the node depths,
// and are cleared at the end.
func Summarize(t *rtree.Tree) (Summary, error) {
	s := Summary{
		Name:  t.Name(),
		Nodes: t.Len(),
	}
	if t.Root() == nil {
		return s, nil
	}

	layout.Allocate(t)
	defer t.ClearData()
	if _, err := layout.SetDepths(t); err != nil {
		return Summary{}, fmt.Errorf("tree %q: %v", t.Name(), err)
	}

	var lengths, depths []float64
	for _, n := range t.Nodes() {
		if len(n.Children()) == 1 {
			s.Inline++
		}
		if !n.IsRoot() {
			if _, ok := n.Length(); !ok {
				s.Undefined++
			}
			lengths = append(lengths, layout.EdgeLength(n))
		}
		if !n.IsLeaf() {
			continue
		}
		p, err := layout.PositionOf(n)
		if err != nil {
			return Summary{}, fmt.Errorf("tree %q: %v", t.Name(), err)
		}
		depths = append(depths, p.Depth())
	}

	s.Leaves = len(depths)
	if len(lengths) > 0 {
		s.Length = floats.Sum(lengths)
	}

	slices.Sort(depths)
	s.MinDepth = floats.Min(depths)
	s.MaxDepth = floats.Max(depths)
	s.MeanDepth = stat.Mean(depths, nil)
	s.MedianDepth = stat.Quantile(0.5, stat.Empirical, depths, nil)
	s.SDDepth = 0
	if len(depths) > 1 {
		s.SDDepth = stat.StdDev(depths, nil)
	}
	return s, nil
}

// IsUltrametric returns true
// if all the leaves are at the same depth,
// within a given tolerance.
func (s Summary) IsUltrametric(tol float64) bool {
	return math.Abs(s.MaxDepth-s.MinDepth) <= tol
}
