// Package cmd implements the CLI commands for the Merkle AVL
// tree demo tool.
package cmd

import (
	"github.com/nagarajmanjunath/AVL-tree/cli"
)

// RootCmd represents the base "avltree" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("avltree",
	"Merkle-authenticated AVL tree demo tool",
	`
_______  __   __  ___      _______  ______    _______  _______
|   _   ||  | |  ||   |    |       ||    _ |  |       ||       |
|  |_|  ||  |_|  ||   |    |_     _||   | ||  |    ___||    ___|
|       ||       ||   |      |   |  |   |_||_ |   |___ |   |___
|       ||       ||   |___   |   |  |    __  ||    ___||    ___|
|   _   | |     | |       |  |   |  |   |  | ||   |___ |   |___
|__| |__|  |___|  |_______|  |___|  |___|  |_||_______||_______|
`)
