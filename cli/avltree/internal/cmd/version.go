package cmd

import (
	"github.com/nagarajmanjunath/AVL-tree/cli"
)

var versionCmd = cli.NewVersionCommand("avltree")

func init() {
	RootCmd.AddCommand(versionCmd)
}
