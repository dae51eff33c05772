package avl

import (
	"errors"

	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher"
)

var (
	// ErrNotFound indicates that the requested key is not in the tree.
	ErrNotFound = errors.New("[avl] Key not found")

	// ErrInvalidProof indicates a proof that does not verify against
	// the trusted root digest.
	ErrInvalidProof = errors.New("[avl] Invalid proof")
)

// Tree represents the Merkle AVL tree data structure, which includes
// the root node and the tree hasher used to compute node digests.
type Tree struct {
	hasher hasher.TreeHasher
	root   *node
	count  int
}

// New returns an empty Merkle AVL tree using the given tree hasher.
func New(h hasher.TreeHasher) *Tree {
	if h == nil {
		panic("[avl] nil tree hasher")
	}
	return &Tree{hasher: h}
}

// Insert sets the value stored under key, creating the entry if the
// key is new and overwriting it in place otherwise. Insert always
// succeeds. The passed value won't be aliased by the tree.
func (t *Tree) Insert(key int64, value []byte) {
	t.root = t.insert(t.root, key, append([]byte(nil), value...))
}

// Delete removes the entry stored under key and returns its value.
// It fails with ErrNotFound if the key is absent, in which case the
// tree is left untouched.
func (t *Tree) Delete(key int64) ([]byte, error) {
	root, removed, err := t.remove(t.root, key)
	if err != nil {
		return nil, err
	}
	t.root = root
	t.count--
	return removed, nil
}

// Lookup returns the value stored under key, or ErrNotFound if the
// key is absent. The tree is not mutated.
func (t *Tree) Lookup(key int64) ([]byte, error) {
	v, err := lookup(t.root, key)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), v...), nil
}

// RootHash returns the digest of the root node, which summarizes the
// current contents of the whole tree. It returns nil if the tree is
// empty.
func (t *Tree) RootHash() []byte {
	if t.root == nil {
		return nil
	}
	return append([]byte(nil), t.root.digest...)
}

// Size returns the number of keys currently stored in the tree.
func (t *Tree) Size() int {
	return t.count
}
