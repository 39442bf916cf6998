// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rtree

import (
	"strconv"

	"github.com/js-arias/timetree"
)

// MillionYears is the default unit
// for branch lengths of time calibrated trees.
const MillionYears = 1_000_000

// FromTimeTree creates a rooted tree
// from a time calibrated tree.
// Branch lengths are the age differences
// between each node and its parent,
// in the indicated unit
// (in years).
func FromTimeTree(tt *timetree.Tree, unit float64) *Tree {
	if unit <= 0 {
		unit = MillionYears
	}
	t := New(tt.Name())
	root := tt.Root()
	t.copyTimeNode(tt, root, -1, unit)
	return t
}

func (t *Tree) copyTimeNode(tt *timetree.Tree, id, parent int, unit float64) {
	n, err := t.Add(id, parent, tt.Taxon(id))
	if err != nil {
		// time trees have unique IDs
		// and parents are always added first
		panic(err)
	}
	if parent >= 0 {
		l := float64(tt.Age(parent)-tt.Age(id)) / unit
		n.SetLength(strconv.FormatFloat(l, 'f', -1, 64))
	}

	for _, c := range tt.Children(id) {
		t.copyTimeNode(tt, c, id, unit)
	}
}

// FromTimeCollection creates a collection of rooted trees
// from a collection of time calibrated trees.
func FromTimeCollection(tc *timetree.Collection, unit float64) *Collection {
	c := NewCollection()
	for _, name := range tc.Names() {
		t := FromTimeTree(tc.Tree(name), unit)
		c.trees[t.name] = t
	}
	return c
}
