package cmd

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/nagarajmanjunath/AVL-tree/avl"
	"github.com/nagarajmanjunath/AVL-tree/cli"
	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher"
	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher/shake128"
	"github.com/nagarajmanjunath/AVL-tree/storage/kv/leveldbkv"
	"github.com/nagarajmanjunath/AVL-tree/storage/kv/treestore"
	"github.com/nagarajmanjunath/AVL-tree/utils/binutils"
)

// runCmd represents the run command
var runCmd = cli.NewRunCommand("Merkle AVL tree demo",
	`Run a short Merkle AVL tree demonstration.

This inserts a handful of entries, looks some of them up,
generates and verifies an inclusion proof against the root
hash, and finally deletes an entry. With --db the entries
and their root hashes are also persisted to a LevelDB
database at the given path.
	`, run)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("db", "d", "", "Path to a LevelDB database for persisting entries")
}

func run(cmd *cobra.Command, args []string) {
	h, err := hasher.Hasher(shake128.SHAKE128Hasher)
	if err != nil {
		log.Fatal(err)
	}
	tree := avl.New(h)

	keys := []int64{10, 20, 5, 15, 25}
	for _, k := range keys {
		tree.Insert(k, []byte(fmt.Sprintf("value-%d", k)))
	}

	for _, k := range []int64{10, 20} {
		v, err := tree.Lookup(k)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("lookup %d: %s\n", k, v)
	}
	fmt.Printf("root hash: %s\n", hex.EncodeToString(tree.RootHash()))

	proof, err := tree.GenerateProof(10)
	if err != nil {
		log.Fatal(err)
	}
	k, v, err := avl.Verify(h, proof, tree.RootHash())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("verified proof for %d: %s\n", k, v)

	if dbPath := cmd.Flag("db").Value.String(); dbPath != "" {
		persist(dbPath, tree, keys)
	}

	if _, err := tree.Delete(10); err != nil {
		log.Fatal(err)
	}
	if _, err := tree.Lookup(10); err != avl.ErrNotFound {
		log.Fatalf("lookup after delete: got %v, want %v", err, avl.ErrNotFound)
	}
	fmt.Println("deleted 10")
	fmt.Printf("root hash: %s\n", hex.EncodeToString(tree.RootHash()))
}

func persist(dbPath string, tree *avl.Tree, keys []int64) {
	logger := binutils.NewLogger(&binutils.LoggerConfig{
		Environment: "development",
	})

	db, err := leveldbkv.OpenDB(dbPath)
	if err != nil {
		logger.Fatal("Cannot open database", "path", dbPath, "error", err)
	}
	defer db.Close()

	store := treestore.New(db)
	rootHash := tree.RootHash()
	for _, k := range keys {
		v, err := tree.Lookup(k)
		if err != nil {
			logger.Fatal("Lookup failed", "key", k, "error", err)
		}
		if err := store.Put(k, v, rootHash); err != nil {
			logger.Fatal("Cannot persist entry", "key", k, "error", err)
		}
		logger.Info("Persisted entry", "key", k)
	}
}
