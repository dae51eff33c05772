package avl

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher"
	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher/shake128"
)

// checkSubtree recursively verifies the AVL balance, the stored
// heights and the bottom-up digest consistency of every node. It
// returns the subtree height.
func checkSubtree(t *testing.T, h hasher.TreeHasher, n *node) int {
	t.Helper()
	if n == nil {
		return 0
	}
	lh := checkSubtree(t, h, n.left)
	rh := checkSubtree(t, h, n.right)
	if bf := rh - lh; bf < -1 || bf > 1 {
		t.Errorf("Balance factor %d at key %d", bf, n.key)
	}
	if n.height != 1+max(lh, rh) {
		t.Errorf("Stale height %d at key %d", n.height, n.key)
	}
	if n.left != nil && n.left.key >= n.key {
		t.Errorf("BST order violated left of key %d", n.key)
	}
	if n.right != nil && n.right.key <= n.key {
		t.Errorf("BST order violated right of key %d", n.key)
	}
	want := h.HashNode(n.key, n.value, digest(n.left), digest(n.right))
	if !bytes.Equal(n.digest, want) {
		t.Errorf("Stale digest at key %d", n.key)
	}
	return n.height
}

func TestInsertLookup(t *testing.T) {
	tr := New(shake128.New())
	tr.Insert(10, []byte("value10"))
	tr.Insert(20, []byte("value20"))

	v, err := tr.Lookup(10)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(v, []byte("value10")) {
		t.Error("Value mismatch", string(v))
	}
	v, err = tr.Lookup(20)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(v, []byte("value20")) {
		t.Error("Value mismatch", string(v))
	}
	if _, err := tr.Lookup(30); err != ErrNotFound {
		t.Error("Expect ErrNotFound for an absent key, got", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tr := New(shake128.New())
	if tr.RootHash() != nil {
		t.Error("Expect nil root hash for an empty tree")
	}
	if tr.Size() != 0 {
		t.Error("Expect size 0 for an empty tree")
	}
	if _, err := tr.Lookup(1); err != ErrNotFound {
		t.Error("Expect ErrNotFound on an empty tree, got", err)
	}
	if _, err := tr.Delete(1); err != ErrNotFound {
		t.Error("Expect ErrNotFound on an empty tree, got", err)
	}
}

func TestInsertOverwritesInPlace(t *testing.T) {
	tr := New(shake128.New())
	tr.Insert(10, []byte("value10"))
	tr.Insert(20, []byte("value20"))
	oldRoot := tr.RootHash()

	tr.Insert(10, []byte("other"))
	if tr.Size() != 2 {
		t.Error("Overwrite changed the node count to", tr.Size())
	}
	v, err := tr.Lookup(10)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(v, []byte("other")) {
		t.Error("Overwritten value not returned")
	}
	if bytes.Equal(oldRoot, tr.RootHash()) {
		t.Error("Root digest unchanged after overwrite")
	}
	checkSubtree(t, tr.hasher, tr.root)
}

func TestDelete(t *testing.T) {
	tr := New(shake128.New())
	tr.Insert(10, []byte("value10"))
	tr.Insert(20, []byte("value20"))

	removed, err := tr.Delete(10)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(removed, []byte("value10")) {
		t.Error("Delete returned the wrong entry")
	}
	if _, err := tr.Lookup(10); err != ErrNotFound {
		t.Error("Expect ErrNotFound after delete, got", err)
	}
	if tr.Size() != 1 {
		t.Error("Wrong size after delete:", tr.Size())
	}
}

func TestDeleteAbsentKeyLeavesTreeUntouched(t *testing.T) {
	tr := New(shake128.New())
	tr.Insert(10, []byte("value10"))
	tr.Insert(20, []byte("value20"))
	tr.Insert(5, []byte("value5"))
	oldRoot := tr.RootHash()

	if _, err := tr.Delete(15); err != ErrNotFound {
		t.Fatal("Expect ErrNotFound, got", err)
	}
	if tr.Size() != 3 {
		t.Error("Failed delete changed the node count")
	}
	if !bytes.Equal(oldRoot, tr.RootHash()) {
		t.Error("Failed delete changed the root digest")
	}
}

func TestDeleteTwoChildrenSplicesSuccessor(t *testing.T) {
	tr := New(shake128.New())
	for _, key := range []int64{10, 5, 20, 15, 25} {
		tr.Insert(key, []byte{byte(key)})
	}

	// 20 has children 15 and 25; its in-order successor is 25
	if _, err := tr.Delete(20); err != nil {
		t.Fatal(err)
	}
	for _, key := range []int64{10, 5, 15, 25} {
		if _, err := tr.Lookup(key); err != nil {
			t.Errorf("Key %d lost after deleting 20", key)
		}
	}
	if _, err := tr.Lookup(20); err != ErrNotFound {
		t.Error("Key 20 still present after delete")
	}
	checkSubtree(t, tr.hasher, tr.root)
}

func TestNoRotationScenario(t *testing.T) {
	// 10, 20, 5 inserted in this order never unbalance the tree
	tr := New(shake128.New())
	tr.Insert(10, []byte("value10"))
	checkSubtree(t, tr.hasher, tr.root)
	tr.Insert(20, []byte("value20"))
	checkSubtree(t, tr.hasher, tr.root)
	tr.Insert(5, []byte("value5"))
	checkSubtree(t, tr.hasher, tr.root)

	if tr.root.key != 10 || tr.root.left.key != 5 || tr.root.right.key != 20 {
		t.Error("Unexpected shape: a rotation must not occur here")
	}
	if tr.root.height != 2 {
		t.Error("Wrong root height", tr.root.height)
	}
}

func TestRotationCases(t *testing.T) {
	// each sequence forces exactly one of the four rebalancing cases
	for _, tc := range []struct {
		name string
		keys []int64
	}{
		{"LL", []int64{30, 20, 10}},
		{"RR", []int64{10, 20, 30}},
		{"LR", []int64{30, 10, 20}},
		{"RL", []int64{10, 30, 20}},
	} {
		tr := New(shake128.New())
		for _, key := range tc.keys {
			tr.Insert(key, []byte("v"))
		}
		if tr.root.key != 20 {
			t.Errorf("%s: expect root 20 after rotation, got %d", tc.name, tr.root.key)
		}
		if tr.root.height != 2 {
			t.Errorf("%s: wrong root height %d", tc.name, tr.root.height)
		}
		checkSubtree(t, tr.hasher, tr.root)
	}
}

func TestBalanceAfterRandomizedMutations(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tr := New(shake128.New())
	present := make(map[int64][]byte)

	for i := 0; i < 2000; i++ {
		key := int64(r.Intn(500))
		if r.Intn(3) == 0 {
			_, err := tr.Delete(key)
			if _, ok := present[key]; ok {
				if err != nil {
					t.Fatal("Delete of a present key failed:", err)
				}
				delete(present, key)
			} else if err != ErrNotFound {
				t.Fatal("Delete of an absent key returned", err)
			}
		} else {
			value := []byte{byte(i), byte(i >> 8)}
			tr.Insert(key, value)
			present[key] = value
		}
	}

	checkSubtree(t, tr.hasher, tr.root)
	if tr.Size() != len(present) {
		t.Errorf("Size %d does not match reference %d", tr.Size(), len(present))
	}
	for key, want := range present {
		got, err := tr.Lookup(key)
		if err != nil {
			t.Fatalf("Key %d lost", key)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Key %d holds the wrong value", key)
		}
	}
}

func TestAscendingInsertStaysLogarithmic(t *testing.T) {
	tr := New(shake128.New())
	for key := int64(1); key <= 1024; key++ {
		tr.Insert(key, []byte("v"))
	}
	checkSubtree(t, tr.hasher, tr.root)
	// 1.44*log2(1024) rounds up to 15
	if tr.root.height > 15 {
		t.Error("Tree degenerated, height", tr.root.height)
	}
}

func TestValueIsNotAliased(t *testing.T) {
	tr := New(shake128.New())
	value := []byte("value10")
	tr.Insert(10, value)
	value[0] = 'x'

	got, err := tr.Lookup(10)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("value10")) {
		t.Error("Tree aliased the caller's value slice")
	}
	got[0] = 'y'
	again, _ := tr.Lookup(10)
	if !bytes.Equal(again, []byte("value10")) {
		t.Error("Lookup leaked an aliasing reference")
	}
}
