package treestore

import (
	"bytes"
	"testing"

	"github.com/nagarajmanjunath/AVL-tree/avl"
	"github.com/nagarajmanjunath/AVL-tree/crypto/hasher/shake128"
	"github.com/nagarajmanjunath/AVL-tree/storage/kv"
	"github.com/nagarajmanjunath/AVL-tree/storage/kv/leveldbkv"
)

func withDB(t *testing.T, f func(db kv.DB)) {
	t.Helper()
	db, err := leveldbkv.OpenDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	f(db)
}

func TestEntryRoundTrip(t *testing.T) {
	withDB(t, func(db kv.DB) {
		tr := avl.New(shake128.New())
		tr.Insert(10, []byte("value10"))
		tr.Insert(20, []byte("value20"))
		root := tr.RootHash()

		store := New(db)
		for _, key := range []int64{10, 20} {
			value, err := tr.Lookup(key)
			if err != nil {
				t.Fatal(err)
			}
			if err := store.Put(key, value, root); err != nil {
				t.Fatal(err)
			}
		}

		value, storedRoot, err := store.Get(10)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(value, []byte("value10")) {
			t.Error("Stored value mismatch")
		}
		if !bytes.Equal(storedRoot, root) {
			t.Error("Stored root hash mismatch")
		}
	})
}

func TestDeleteEntry(t *testing.T) {
	withDB(t, func(db kv.DB) {
		store := New(db)
		if err := store.Put(10, []byte("value10"), []byte("roothash")); err != nil {
			t.Fatal(err)
		}
		if err := store.Delete(10); err != nil {
			t.Fatal(err)
		}
		if _, _, err := store.Get(10); err != db.ErrNotFound() {
			t.Error("Expect the db's not-found error, got", err)
		}
	})
}

func TestMalformedEntry(t *testing.T) {
	withDB(t, func(db kv.DB) {
		if err := db.Put(entryKey(10), []byte{1, 0}); err != nil {
			t.Fatal(err)
		}
		store := New(db)
		if _, _, err := store.Get(10); err != ErrorBadEntryLength {
			t.Error("Expect ErrorBadEntryLength, got", err)
		}

		// declared value length runs past the buffer
		if err := db.Put(entryKey(11), []byte{200, 0, 0, 0, 'x'}); err != nil {
			t.Fatal(err)
		}
		if _, _, err := store.Get(11); err != ErrorBadEntryLength {
			t.Error("Expect ErrorBadEntryLength, got", err)
		}
	})
}

func TestEmptyValueEntry(t *testing.T) {
	withDB(t, func(db kv.DB) {
		store := New(db)
		if err := store.Put(10, nil, []byte("roothash")); err != nil {
			t.Fatal(err)
		}
		value, root, err := store.Get(10)
		if err != nil {
			t.Fatal(err)
		}
		if len(value) != 0 {
			t.Error("Expect an empty value")
		}
		if !bytes.Equal(root, []byte("roothash")) {
			t.Error("Stored root hash mismatch")
		}
	})
}
