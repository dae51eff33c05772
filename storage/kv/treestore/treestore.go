// Package treestore persists (key, value, root hash) triples
// produced by a Merkle AVL tree into a generic kv database. It is a
// plain consumer of the tree's operations: the tree itself is never
// serialized, and the stored root hash is whatever the caller read
// from the tree when the entry was written.
package treestore

import (
	"encoding/binary"
	"errors"

	"github.com/nagarajmanjunath/AVL-tree/storage/kv"
	"github.com/nagarajmanjunath/AVL-tree/utils"
)

// EntryIdentifier is the domain separation for tree entries.
const EntryIdentifier = 'T'

var (
	// ErrorBadEntryLength indicates a malformed stored entry.
	ErrorBadEntryLength = errors.New("[treestore] Bad entry buffer's length")
)

// Store reads and writes tree entries through a kv.DB.
type Store struct {
	db kv.DB
}

// New wraps db into a triple store.
func New(db kv.DB) *Store {
	return &Store{db: db}
}

// Put stores value and rootHash under key. An existing entry for
// key is overwritten.
func (s *Store) Put(key int64, value, rootHash []byte) error {
	wb := s.db.NewBatch()
	wb.Put(entryKey(key), serializeEntry(value, rootHash))
	return s.db.Write(wb)
}

// Get loads the value and root hash stored under key. It returns
// the underlying db's not-found error if the key is absent.
func (s *Store) Get(key int64) ([]byte, []byte, error) {
	buf, err := s.db.Get(entryKey(key))
	if err != nil {
		return nil, nil, err
	}
	return deserializeEntry(buf)
}

// Delete removes the entry stored under key.
func (s *Store) Delete(key int64) error {
	return s.db.Delete(entryKey(key))
}

func entryKey(key int64) []byte {
	// EntryIdentifier + key
	buf := make([]byte, 0, 1+8)
	buf = append(buf, EntryIdentifier)
	buf = append(buf, utils.LongToBytes(key)...)
	return buf
}

func serializeEntry(value, rootHash []byte) []byte {
	// len(value) + value + rootHash
	buf := make([]byte, 0, 4+len(value)+len(rootHash))
	buf = append(buf, utils.IntToBytes(len(value))...)
	buf = append(buf, value...)
	buf = append(buf, rootHash...)
	return buf
}

func deserializeEntry(buf []byte) ([]byte, []byte, error) {
	if len(buf) < 4 {
		return nil, nil, ErrorBadEntryLength
	}
	vlen := int(binary.LittleEndian.Uint32(buf[:4]))
	buf = buf[4:]
	if vlen < 0 || vlen > len(buf) {
		return nil, nil, ErrorBadEntryLength
	}
	value := append([]byte(nil), buf[:vlen]...)
	rootHash := append([]byte(nil), buf[vlen:]...)
	return value, rootHash, nil
}
