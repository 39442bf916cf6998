// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rtree implements rooted trees
// with optional branch lengths.
package rtree

import (
	"fmt"
)

// A Node is a node of a rooted tree.
type Node struct {
	id     int
	label  string
	length string
	hasLen bool

	parent   *Node
	children []*Node

	// Data is an annotation slot
	// for the algorithms that use the tree.
	// Each algorithm must set its own value
	// before using it.
	Data any
}

// ID returns the ID of the node.
func (n *Node) ID() int {
	return n.id
}

// Label returns the label of the node.
func (n *Node) Label() string {
	return n.label
}

// SetLabel sets the label of the node.
func (n *Node) SetLabel(label string) {
	n.label = label
}

// Parent returns the parent of the node.
// The root returns nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of the node,
// in the order in which they were defined.
func (n *Node) Children() []*Node {
	return n.children
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsRoot returns true if the node is the root.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Length returns the length of the branch
// that connects the node to its parent,
// as it was defined.
// If the length was not defined,
// it returns false.
func (n *Node) Length() (string, bool) {
	return n.length, n.hasLen
}

// SetLength sets the length of the branch
// that connects the node to its parent.
func (n *Node) SetLength(length string) {
	n.length = length
	n.hasLen = true
}

// ClearLength removes the length of the branch
// that connects the node to its parent.
func (n *Node) ClearLength() {
	n.length = ""
	n.hasLen = false
}

// A Tree is a rooted tree.
type Tree struct {
	name  string
	root  *Node
	nodes map[int]*Node

	// canonical order
	order []*Node
}

// New creates a new empty tree.
func New(name string) *Tree {
	return &Tree{
		name:  name,
		nodes: make(map[int]*Node),
	}
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Add adds a new node to the tree.
// Use -1 as the parent of the root.
// The parent must be already in the tree.
func (t *Tree) Add(id, parent int, label string) (*Node, error) {
	if id < 0 {
		return nil, fmt.Errorf("tree %q: invalid node ID %d", t.name, id)
	}
	if _, dup := t.nodes[id]; dup {
		return nil, fmt.Errorf("tree %q: node %d already defined", t.name, id)
	}

	n := &Node{
		id:    id,
		label: label,
	}
	if parent < 0 {
		if t.root != nil {
			return nil, fmt.Errorf("tree %q: node %d: root already defined", t.name, id)
		}
		t.root = n
	} else {
		p, ok := t.nodes[parent]
		if !ok {
			return nil, fmt.Errorf("tree %q: node %d: parent %d not found", t.name, id, parent)
		}
		n.parent = p
		p.children = append(p.children, n)
	}

	t.nodes[id] = n
	t.order = nil
	return n, nil
}

// Root returns the root of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Node returns a node by its ID.
func (t *Tree) Node(id int) *Node {
	return t.nodes[id]
}

// Len returns the number of nodes of the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns the nodes of the tree
// in canonical order:
// a depth-first postorder
// with children in the order in which they were defined.
// In this order,
// any node comes after all of its descendants,
// so the root is always the last node.
func (t *Tree) Nodes() []*Node {
	if t.root == nil {
		return nil
	}
	if t.order == nil {
		t.order = make([]*Node, 0, len(t.nodes))
		t.order = postOrder(t.order, t.root)
	}
	return t.order
}

func postOrder(ls []*Node, n *Node) []*Node {
	for _, c := range n.children {
		ls = postOrder(ls, c)
	}
	return append(ls, n)
}

// Leaves returns the number of leaves
// of the tree.
func (t *Tree) Leaves() int {
	var l int
	for _, n := range t.nodes {
		if n.IsLeaf() {
			l++
		}
	}
	return l
}

// Terms returns the labels of the leaves
// in canonical order.
// Leaves without a label are ignored.
func (t *Tree) Terms() []string {
	var terms []string
	for _, n := range t.Nodes() {
		if !n.IsLeaf() || n.label == "" {
			continue
		}
		terms = append(terms, n.label)
	}
	return terms
}

// ClearData removes the annotations of all nodes.
func (t *Tree) ClearData() {
	for _, n := range t.nodes {
		n.Data = nil
	}
}
