package hasher

import (
	"fmt"
)

// TreeHasher provides the digest functions for the Merkle AVL tree
// and its proofs. All digests of one tree must come from the same
// TreeHasher instance.
type TreeHasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices. The passed slices won't be mutated.
	Digest(ms ...[]byte) []byte

	// HashLeaf computes the digest of a node without children as:
	// H(key || value). It must equal HashNode(key, value, nil, nil).
	HashLeaf(key int64, value []byte) []byte

	// HashNode computes the digest of a node as:
	// H(key || value || leftHash || rightHash)
	// where a nil child hash contributes nothing to the digest.
	// Skipping absent children keeps the mixing simple but weakens
	// structural collision resistance compared to feeding a fixed
	// marker for an absent child.
	HashNode(key int64, value, leftHash, rightHash []byte) []byte

	// HashEmpty returns the fixed digest standing in for an empty tree.
	HashEmpty() []byte
}

var hashers = make(map[string]TreeHasher)

// RegisterHasher registers a hasher for use.
func RegisterHasher(h string, f func() TreeHasher) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", h))
	}
	hashers[h] = f()
}

// Hasher returns a TreeHasher.
func Hasher(h string) (TreeHasher, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("Hasher(%v) is unknown hasher", h)
}
