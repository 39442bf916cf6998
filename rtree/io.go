// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rtree

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var header = []string{
	"tree",
	"node",
	"parent",
	"length",
	"label",
}

// ReadTSV reads a collection of trees
// from a TSV file.
//
// The TSV must contain the following fields:
//
//   - tree, for the name of the tree
//   - node, for the ID of the node
//   - parent, for the ID of the parent node
//     (-1 is used for the root)
//   - length, for the length of the branch
//     that connects the node to its parent
//     (an empty value is an undefined length)
//   - label, for the label of the node
//
// A parent must be defined before its children,
// and the children are added in the order of the file.
//
// Here is an example file:
//
//	# rooted trees
//	tree	node	parent	length	label
//	dinosaurs	0	-1
//	dinosaurs	1	0	5	Eoraptor lunensis
//	dinosaurs	2	0	65
//	dinosaurs	3	2	25	Ceratosaurus nasicornis
//	dinosaurs	4	2		Carnotaurus sastrei
func ReadTSV(r io.Reader) (*Collection, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	trees := make(map[string]*Tree)
	var names []string
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tree"
		name := strings.Join(strings.Fields(field(row, fields[f])), " ")
		if name == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty tree name", ln, f)
		}
		t, ok := trees[name]
		if !ok {
			t = New(name)
			trees[name] = t
			names = append(names, name)
		}

		f = "node"
		id, err := strconv.Atoi(strings.TrimSpace(field(row, fields[f])))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "parent"
		parent, err := strconv.Atoi(strings.TrimSpace(field(row, fields[f])))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "label"
		label := strings.Join(strings.Fields(field(row, fields[f])), " ")

		n, err := t.Add(id, parent, label)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f = "length"
		if l := strings.TrimSpace(field(row, fields[f])); l != "" {
			n.SetLength(l)
		}
	}

	c := NewCollection()
	for _, name := range names {
		if err := c.Add(trees[name]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Field returns a field of a row.
// Missing trailing fields are empty.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// TSV writes a collection of trees
// as a TSV file.
func (c *Collection) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# rooted trees\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, name := range c.Names() {
		t := c.trees[name]
		if err := writeNode(tsv, name, t.root); err != nil {
			return fmt.Errorf("tree %q: %v", name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// WriteNode writes a node before its children.
func writeNode(tsv *csv.Writer, name string, n *Node) error {
	parent := -1
	if n.parent != nil {
		parent = n.parent.id
	}
	row := []string{
		name,
		strconv.Itoa(n.id),
		strconv.Itoa(parent),
		n.length,
		n.label,
	}
	if err := tsv.Write(row); err != nil {
		return err
	}

	for _, c := range n.children {
		if err := writeNode(tsv, name, c); err != nil {
			return err
		}
	}
	return nil
}
