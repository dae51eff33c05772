package avl

type node struct {
	key    int64
	value  []byte
	digest []byte
	height int
	left   *node
	right  *node
}

func (t *Tree) newLeaf(key int64, value []byte) *node {
	return &node{
		key:    key,
		value:  value,
		digest: t.hasher.HashLeaf(key, value),
		height: 1,
	}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func digest(n *node) []byte {
	if n == nil {
		return nil
	}
	return n.digest
}

func balanceFactor(n *node) int {
	return height(n.right) - height(n.left)
}

// update recomputes n's height and digest from its children. It must
// run after any structural change below n and before n's parent is
// touched, so digests stay consistent bottom-up.
func (t *Tree) update(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
	n.digest = t.hasher.HashNode(n.key, n.value, digest(n.left), digest(n.right))
}

// rotateLeft promotes n's right child to subtree root. The demoted
// node is updated before the new root.
func (t *Tree) rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	t.update(n)
	t.update(r)
	return r
}

// rotateRight promotes n's left child to subtree root.
func (t *Tree) rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	t.update(n)
	t.update(l)
	return l
}

// rebalance restores the AVL balance of n, applying at most one of
// the LL, RR, LR, RL rotation cases.
func (t *Tree) rebalance(n *node) *node {
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.right) < 0 { // right-left
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	case bf < -1:
		if balanceFactor(n.left) > 0 { // left-right
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	default:
		return n
	}
}

func (t *Tree) insert(n *node, key int64, value []byte) *node {
	if n == nil {
		t.count++
		return t.newLeaf(key, value)
	}
	switch {
	case key < n.key:
		n.left = t.insert(n.left, key, value)
	case key > n.key:
		n.right = t.insert(n.right, key, value)
	default:
		n.value = value
	}
	t.update(n)
	return t.rebalance(n)
}

func (t *Tree) remove(n *node, key int64) (*node, []byte, error) {
	if n == nil {
		return nil, nil, ErrNotFound
	}
	var removed []byte
	switch {
	case key < n.key:
		left, rem, err := t.remove(n.left, key)
		if err != nil {
			return nil, nil, err
		}
		n.left, removed = left, rem
	case key > n.key:
		right, rem, err := t.remove(n.right, key)
		if err != nil {
			return nil, nil, err
		}
		n.right, removed = right, rem
	default:
		removed = n.value
		switch {
		case n.left == nil:
			return n.right, removed, nil
		case n.right == nil:
			return n.left, removed, nil
		}
		// splice in the in-order successor
		right, succ := t.removeMin(n.right)
		n.key = succ.key
		n.value = succ.value
		n.right = right
	}
	t.update(n)
	return t.rebalance(n), removed, nil
}

// removeMin unlinks and returns the minimum node of the subtree
// rooted at n, rebalancing on the way back up.
func (t *Tree) removeMin(n *node) (*node, *node) {
	if n.left == nil {
		return n.right, n
	}
	left, min := t.removeMin(n.left)
	n.left = left
	t.update(n)
	return t.rebalance(n), min
}

func lookup(n *node, key int64) ([]byte, error) {
	switch {
	case n == nil:
		return nil, ErrNotFound
	case key < n.key:
		return lookup(n.left, key)
	case key > n.key:
		return lookup(n.right, key)
	default:
		return n.value, nil
	}
}
