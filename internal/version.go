// Package internal defines constants shared by the AVL-tree
// executables.
package internal

// Version is the current release of the AVL-tree toolchain.
const Version = "0.1.0"
