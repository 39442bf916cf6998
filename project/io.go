// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/dendro/rtree"
	"github.com/js-arias/timetree"
)

// Trees reads the trees of a project.
//
// Trees are read from the rooted tree file,
// and from the time calibrated tree file
// (with branch lengths in million years).
// If no tree file is defined,
// it returns an error.
func (p *Project) Trees() (*rtree.Collection, error) {
	rf := p.Path(Trees)
	tf := p.Path(TimeTrees)
	if rf == "" && tf == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	c := rtree.NewCollection()
	if rf != "" {
		rc, err := readTrees(rf)
		if err != nil {
			return nil, err
		}
		c = rc
	}
	if tf == "" {
		return c, nil
	}

	tc, err := readTimeTrees(tf)
	if err != nil {
		return nil, err
	}
	for _, tn := range tc.Names() {
		if err := c.Add(tc.Tree(tn)); err != nil {
			return nil, fmt.Errorf("on file %q: %v", tf, err)
		}
	}
	return c, nil
}

func readTrees(name string) (*rtree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := rtree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func readTimeTrees(name string) (*rtree.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tc, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return rtree.FromTimeCollection(tc, rtree.MillionYears), nil
}
