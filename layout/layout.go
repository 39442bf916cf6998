// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements the calculation
// of node positions
// used to draw a rooted tree as a dendrogram.
//
// The vertical position of a node is an interval
// measured in leaf units:
// leaves are numbered in canonical order
// starting at 0,
// and an inner node spans from the middle
// of its first child
// to the middle of its last child.
// The horizontal position of a node
// is its depth:
// the sum of the branch lengths
// from the root to the node.
package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/js-arias/dendro/rtree"
)

// A Positioner stores the layout values of a node.
type Positioner interface {
	Top() float64
	Bottom() float64
	Depth() float64

	SetTop(float64)
	SetBottom(float64)
	SetDepth(float64)
}

// Position is the default Positioner.
type Position struct {
	top    float64
	bottom float64
	depth  float64
}

// Top returns the upper limit of the node interval.
func (p *Position) Top() float64 {
	return p.top
}

// Bottom returns the lower limit of the node interval.
func (p *Position) Bottom() float64 {
	return p.bottom
}

// Depth returns the depth of the node.
func (p *Position) Depth() float64 {
	return p.depth
}

// SetTop sets the upper limit of the node interval.
func (p *Position) SetTop(v float64) {
	p.top = v
}

// SetBottom sets the lower limit of the node interval.
func (p *Position) SetBottom(v float64) {
	p.bottom = v
}

// SetDepth sets the depth of the node.
func (p *Position) SetDepth(v float64) {
	p.depth = v
}

// Errors returned by the position passes.
var (
	// ErrNoPosition is returned when the annotation
	// of a node is not a Positioner.
	ErrNoPosition = errors.New("node without position")

	// ErrOrder is returned when the nodes
	// are not in canonical order.
	ErrOrder = errors.New("nodes not in canonical order")
)

// Stats are the global values
// required to scale a tree.
type Stats struct {
	// Length of the longest leaf label,
	// in characters.
	MaxLabel int

	// Depth of the deepest leaf.
	MaxDepth float64
}

// Allocate sets a new Position
// as the annotation of each node of a tree.
func Allocate(t *rtree.Tree) {
	for _, n := range t.Nodes() {
		n.Data = &Position{}
	}
}

// PositionOf returns the Positioner of a node.
func PositionOf(n *rtree.Node) (Positioner, error) {
	p, ok := n.Data.(Positioner)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: node %d (%q)", ErrNoPosition, n.ID(), n.Label())
	}
	return p, nil
}

// SetPositions sets the vertical interval of each node
// and returns the number of leaves.
//
// Each node must have a Positioner as its annotation.
func SetPositions(t *rtree.Tree) (int, error) {
	var leaves int
	for _, n := range t.Nodes() {
		p, err := PositionOf(n)
		if err != nil {
			return 0, err
		}

		if n.IsLeaf() {
			p.SetTop(float64(leaves))
			p.SetBottom(float64(leaves))
			leaves++
			continue
		}

		// in canonical order
		// children are always visited before the parent
		children := n.Children()
		first, err := PositionOf(children[0])
		if err != nil {
			return 0, err
		}
		last, err := PositionOf(children[len(children)-1])
		if err != nil {
			return 0, err
		}
		p.SetTop((first.Top() + first.Bottom()) / 2)
		p.SetBottom((last.Top() + last.Bottom()) / 2)
	}
	return leaves, nil
}

// SetDepths sets the depth of each node
// and returns the layout statistics of the tree.
//
// Nodes are visited in reverse canonical order,
// so the root is visited first,
// and any parent is visited before its children.
// Each node must have a Positioner as its annotation.
//
// If the tree has a single node,
// the maximum depth is 1.
func SetDepths(t *rtree.Tree) (Stats, error) {
	nodes := t.Nodes()
	if err := CheckOrder(nodes); err != nil {
		return Stats{}, err
	}

	var st Stats
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		p, err := PositionOf(n)
		if err != nil {
			return Stats{}, err
		}

		if n.IsRoot() {
			p.SetDepth(0)
		} else {
			pp, err := PositionOf(n.Parent())
			if err != nil {
				return Stats{}, err
			}
			p.SetDepth(pp.Depth() + EdgeLength(n))
		}

		if !n.IsLeaf() {
			continue
		}
		if d := p.Depth(); d > st.MaxDepth {
			st.MaxDepth = d
		}
		if l := utf8.RuneCountInString(n.Label()); l > st.MaxLabel {
			st.MaxLabel = l
		}
	}

	if st.MaxDepth == 0 {
		st.MaxDepth = 1
	}
	return st, nil
}

// CheckOrder checks that a list of nodes
// is in canonical order.
// In reverse,
// the first node must be the root,
// and all parents must be visited
// before their children.
func CheckOrder(nodes []*rtree.Node) error {
	if len(nodes) == 0 {
		return nil
	}
	if r := nodes[len(nodes)-1]; !r.IsRoot() {
		return fmt.Errorf("%w: last node %d (%q) is not the root", ErrOrder, r.ID(), r.Label())
	}

	seen := make(map[*rtree.Node]bool, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if p := n.Parent(); p != nil && !seen[p] {
			return fmt.Errorf("%w: node %d (%q) visited before its parent", ErrOrder, n.ID(), n.Label())
		}
		seen[n] = true
	}
	return nil
}

// DefaultLength is the length used
// for a branch without a defined length.
const DefaultLength = 1.0

var numPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// EdgeLength returns the length of the branch
// that connects a node to its parent.
//
// If the length is undefined,
// it returns DefaultLength.
// Otherwise the length is read
// from the longest numeric prefix of the text,
// and if there is no numeric prefix
// it returns 0.
// Malformed lengths are not reported
// as they must be validated
// when the tree is read.
func EdgeLength(n *rtree.Node) float64 {
	s, ok := n.Length()
	if !ok {
		return DefaultLength
	}
	return ParseLength(s)
}

// ParseLength reads a length
// from the longest numeric prefix of a string.
// If there is no numeric prefix,
// it returns 0.
func ParseLength(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	p := numPrefix.FindString(s)
	if p == "" {
		return 0
	}
	// out of range values are returned as infinities
	v, _ := strconv.ParseFloat(p, 64)
	return v
}
