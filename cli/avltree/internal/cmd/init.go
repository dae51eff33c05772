package cmd

import (
	"log"
	"path"

	"github.com/spf13/cobra"

	"github.com/nagarajmanjunath/AVL-tree/cli"
	"github.com/nagarajmanjunath/AVL-tree/storage/cassandra"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("Merkle AVL tree demo tool", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func initRunFunc(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	mkConfig(dir)
}

func mkConfig(dir string) {
	file := path.Join(dir, "config.toml")
	conf := cassandra.DefaultConfig()
	if err := conf.Save(file); err != nil {
		log.Println(err)
	}
}
