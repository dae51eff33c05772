package sha256

import (
	minsha "github.com/minio/sha256-simd"

	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher"
	"github.com/nagarajmanjunath/AVL-tree/utils"
)

func init() {
	hasher.RegisterHasher(SHA256Hasher, New)
}

// SHA256Hasher is the identity of the SIMD-accelerated SHA-256
// tree hasher.
const SHA256Hasher = "SHA256"

type sha256Hasher struct{}

// New returns an instance of the SHA-256 tree hasher.
func New() hasher.TreeHasher {
	return &sha256Hasher{}
}

func (sha256Hasher) ID() string {
	return SHA256Hasher
}

func (sha256Hasher) Size() int {
	return minsha.Size
}

func (sha256Hasher) Digest(ms ...[]byte) []byte {
	h := minsha.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (ch *sha256Hasher) HashLeaf(key int64, value []byte) []byte {
	return ch.HashNode(key, value, nil, nil)
}

func (ch *sha256Hasher) HashNode(key int64, value, leftHash, rightHash []byte) []byte {
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

func (ch *sha256Hasher) HashEmpty() []byte {
	return make([]byte, ch.Size())
}
