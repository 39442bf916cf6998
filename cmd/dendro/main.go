// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Dendro is a tool to draw phylogenetic trees
// as text dendrograms.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/dendro/cmd/dendro/draw"
	"github.com/js-arias/dendro/cmd/dendro/tree"
)

var app = &command.Command{
	Usage: "dendro <command> [<argument>...]",
	Short: "a tool to draw trees as text dendrograms",
}

func init() {
	app.Add(draw.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
