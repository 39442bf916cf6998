// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rtree

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// A Collection is a set of trees
// identified by their names.
type Collection struct {
	trees map[string]*Tree
}

// NewCollection creates a new empty collection.
func NewCollection() *Collection {
	return &Collection{
		trees: make(map[string]*Tree),
	}
}

// Add adds a tree to the collection.
func (c *Collection) Add(t *Tree) error {
	if t.name == "" {
		return fmt.Errorf("tree without name")
	}
	if _, dup := c.trees[t.name]; dup {
		return fmt.Errorf("tree %q already in collection", t.name)
	}
	if t.root == nil {
		return fmt.Errorf("tree %q: undefined root", t.name)
	}
	c.trees[t.name] = t
	return nil
}

// Names returns the names of the trees
// in the collection.
func (c *Collection) Names() []string {
	ns := make([]string, 0, len(c.trees))
	for n := range c.trees {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Tree returns a tree with the given name.
func (c *Collection) Tree(name string) *Tree {
	return c.trees[name]
}

// Len returns the number of trees in the collection.
func (c *Collection) Len() int {
	return len(c.trees)
}
