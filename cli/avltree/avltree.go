// Executable Merkle AVL tree demo tool. See README for
// usage instructions.
package main

import (
	"github.com/nagarajmanjunath/AVL-tree/cli"
	"github.com/nagarajmanjunath/AVL-tree/cli/avltree/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
