/*
Package avl implements a Merkle-authenticated AVL tree and related
data structures. We implemented this data structure separately as a
library to help other developers use it in their implementation
easily.

Authenticated Dictionary

This package implements an in-memory authenticated dictionary, which
supports dictionary operations with one additional feature: every
subtree carries a content digest derived from its key, value, and the
digests of its children, so the digest of the root summarizes the
entire contents of the dictionary. A party holding only a trusted
root digest can confirm that a (key, value) pair belongs to the
dictionary by checking a compact inclusion proof, without holding the
full dataset.

Merkle AVL Tree

The underlying structure is a height-balanced binary search tree.
Every mutation recomputes heights and digests bottom-up, so the root
digest always reflects the current contents. Inclusion proofs retrace
the search path of a key and capture, per traversed node, the node's
entry and the digest of the untraversed subtree; verification folds
the proof back into a digest and compares it against the trusted
root. The digest functions are provided by the crypto/hasher package
(see the TreeHasher interface); a tamper-evident deployment should
use one of the cryptographic hashers.

The tree provides no internal locking. A caller requiring concurrent
access must layer external synchronization.
*/
package avl
