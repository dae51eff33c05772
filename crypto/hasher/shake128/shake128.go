package shake128

import (
	"github.com/nagarajmanjunath/AVL-tree/crypto"
	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher"
	"github.com/nagarajmanjunath/AVL-tree/utils"
)

func init() {
	hasher.RegisterHasher(SHAKE128Hasher, New)
}

// SHAKE128Hasher is the identity of the default tree hasher.
const SHAKE128Hasher = crypto.HashID

type shake128Hasher struct{}

// New returns an instance of the SHAKE128 tree hasher.
func New() hasher.TreeHasher {
	return &shake128Hasher{}
}

func (shake128Hasher) ID() string {
	return SHAKE128Hasher
}

func (shake128Hasher) Size() int {
	return crypto.HashSizeByte
}

func (shake128Hasher) Digest(ms ...[]byte) []byte {
	return crypto.Digest(ms...)
}

func (ch *shake128Hasher) HashLeaf(key int64, value []byte) []byte {
	return ch.HashNode(key, value, nil, nil)
}

func (ch *shake128Hasher) HashNode(key int64, value, leftHash, rightHash []byte) []byte {
	ms := make([][]byte, 0, 4)
	ms = append(ms, utils.LongToBytes(key), value)
	if leftHash != nil {
		ms = append(ms, leftHash)
	}
	if rightHash != nil {
		ms = append(ms, rightHash)
	}
	return ch.Digest(ms...)
}

func (ch *shake128Hasher) HashEmpty() []byte {
	return make([]byte, ch.Size())
}
