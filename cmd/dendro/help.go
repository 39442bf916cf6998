// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Dendro reads trees from one or more files. To reduce the burden of keeping
track of many files, a single project file is used to hold the reference of
the tree files. This guide explains the structure of the file, but most of
the time, the best way to edit this file is by using dendro commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# dendro project files
	dataset	path
	trees	trees.tab
	timetrees	dinosaurs.tab

The valid file types are:

- Rooted trees. Defined by the dataset keyword "trees". This file contains one
  or more trees with branch lengths in the form of a tab-delimited file. The
  recommended way to add a tree file is by using the command
  'dendro tree add'.
- Time-calibrated trees. Defined by the dataset keyword "timetrees". This file
  contains one or more time calibrated trees, as used by PhyGeo. Branch
  lengths are the age differences between each node and its parent, in
  million years.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In dendro, rooted trees are stored in a tab-delimited file. The advantage of
using a tab-delimited file is that it would be easier to manipulate trees
than in traditional newick files; for example, it would be easier for
third-party applications to understand the node IDs.

The recommended way to interact with trees in a dendro project is by using
the commands in "dendro tree".

A dendro tree file is a tab-delimited file with the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-length  the length of the branch that connects the node with its
	         parent. An empty value is an undefined length.
	-label   the label of the node.

A parent must be defined before its children, and the children of a node are
drawn in the order in which they are defined.

Here is an example file:

	# rooted trees
	tree	node	parent	length	label
	dinosaurs	0	-1
	dinosaurs	1	0	5	Eoraptor lunensis
	dinosaurs	2	0	65
	dinosaurs	3	2	25	Ceratosaurus nasicornis
	dinosaurs	4	2	99	Carnotaurus sastrei

Lengths are read as decimal numbers. Values that are not numbers are read
from their numeric prefix (e.g., "3.5my" is read as 3.5), or as 0 if there
is no numeric prefix.

In a dendro project, the file that contains the trees is indicated with the
"trees" keyword.
	`,
}
