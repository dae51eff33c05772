package avl

import (
	"bytes"

	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher"
)

// maxProofDepth bounds proof recursion during verification. An AVL
// tree over 64-bit keys cannot exceed 1.44*log2(2^64) < 93 levels;
// anything deeper is malformed.
const maxProofDepth = 93

// ProofNode is one step of an inclusion proof. It is a closed set of
// variants: ProofLeft, ProofRight, ProofLeaf and ProofEmpty. A proof
// is a snapshot of the search path at generation time and shares no
// memory with the live tree.
type ProofNode interface {
	proofNode()
}

// ProofLeft records a step where the search path descended into the
// left subtree. Key and Value belong to the traversed node; RightHash
// is the digest of its untraversed right subtree, nil if it has none.
type ProofLeft struct {
	Key       int64
	Value     []byte
	RightHash []byte
	Child     ProofNode
}

// ProofRight records a step where the search path descended into the
// right subtree. LeftHash is the digest of the traversed node's
// untraversed left subtree, nil if it has none.
type ProofRight struct {
	Child    ProofNode
	Key      int64
	Value    []byte
	LeftHash []byte
}

// ProofLeaf terminates a proof at the target node. LeftHash and
// RightHash carry the digests of the target's children, nil when
// absent, so folding reproduces the node's stored digest even when
// the target is the root or another interior node.
type ProofLeaf struct {
	Key       int64
	Value     []byte
	LeftHash  []byte
	RightHash []byte
}

// ProofEmpty marks a search path that ran past a missing child. It
// folds to a fixed sentinel and never satisfies verification;
// absence proofs are not a supported feature.
type ProofEmpty struct{}

func (*ProofLeft) proofNode()  {}
func (*ProofRight) proofNode() {}
func (*ProofLeaf) proofNode()  {}
func (*ProofEmpty) proofNode() {}

// GenerateProof retraces the lookup path of key and captures it as a
// proof. It fails with ErrNotFound if the key is absent, consistent
// with Lookup and Delete.
func (t *Tree) GenerateProof(key int64) (ProofNode, error) {
	return generateProof(t.root, key)
}

func generateProof(n *node, key int64) (ProofNode, error) {
	if n == nil {
		return nil, ErrNotFound
	}
	switch {
	case key < n.key:
		child, err := generateProof(n.left, key)
		if err != nil {
			return nil, err
		}
		return &ProofLeft{
			Key:       n.key,
			Value:     append([]byte(nil), n.value...),
			RightHash: copyDigest(n.right),
			Child:     child,
		}, nil
	case key > n.key:
		child, err := generateProof(n.right, key)
		if err != nil {
			return nil, err
		}
		return &ProofRight{
			Child:    child,
			Key:      n.key,
			Value:    append([]byte(nil), n.value...),
			LeftHash: copyDigest(n.left),
		}, nil
	default:
		return &ProofLeaf{
			Key:       n.key,
			Value:     append([]byte(nil), n.value...),
			LeftHash:  copyDigest(n.left),
			RightHash: copyDigest(n.right),
		}, nil
	}
}

func copyDigest(n *node) []byte {
	if n == nil {
		return nil
	}
	return append([]byte(nil), n.digest...)
}

// Verify folds proof into a digest and compares it against the
// trusted root digest rootHash, which has to come from a trusted
// source. It never inspects a live tree. On success it returns the
// proven key and value; any mismatch, missing terminal leaf or
// malformed input fails with ErrInvalidProof. Verify terminates on
// adversarially constructed proofs and never panics.
func Verify(h hasher.TreeHasher, proof ProofNode, rootHash []byte) (int64, []byte, error) {
	if h == nil || proof == nil || len(rootHash) != h.Size() {
		return 0, nil, ErrInvalidProof
	}
	digest, leaf, err := foldProof(h, proof, 0)
	if err != nil {
		return 0, nil, err
	}
	if leaf == nil || !bytes.Equal(digest, rootHash) {
		return 0, nil, ErrInvalidProof
	}
	return leaf.Key, leaf.Value, nil
}

// foldProof recomputes the digest of a proof and locates its
// terminal leaf, if any.
func foldProof(h hasher.TreeHasher, p ProofNode, depth int) ([]byte, *ProofLeaf, error) {
	if depth > maxProofDepth {
		return nil, nil, ErrInvalidProof
	}
	switch p := p.(type) {
	case *ProofLeft:
		child, leaf, err := foldProof(h, p.Child, depth+1)
		if err != nil {
			return nil, nil, err
		}
		return h.HashNode(p.Key, p.Value, child, p.RightHash), leaf, nil
	case *ProofRight:
		child, leaf, err := foldProof(h, p.Child, depth+1)
		if err != nil {
			return nil, nil, err
		}
		return h.HashNode(p.Key, p.Value, p.LeftHash, child), leaf, nil
	case *ProofLeaf:
		return h.HashNode(p.Key, p.Value, p.LeftHash, p.RightHash), p, nil
	case *ProofEmpty:
		return h.HashEmpty(), nil, nil
	default:
		// nil or foreign implementations of ProofNode
		return nil, nil, ErrInvalidProof
	}
}
