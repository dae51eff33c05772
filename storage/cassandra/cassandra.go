// Package cassandra persists (key, value, root hash) triples
// produced by a Merkle AVL tree into a Cassandra cluster. Like
// treestore it is purely a consumer of the tree's operations: it
// calls them and persists the resulting values, and the tree makes
// no assumptions about this schema or the cluster's availability.
package cassandra

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

// Store reads and writes tree entries through a Cassandra session.
type Store struct {
	session  *gocql.Session
	keyspace string
	table    string
}

// Open connects to the cluster named in conf and creates the
// keyspace and table if they don't exist yet.
func Open(conf *Config) (*Store, error) {
	cluster := gocql.NewCluster(conf.ContactPoints...)
	cluster.Port = 9042
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("cassandra: cannot connect: %v", err)
	}

	s := &Store{
		session:  session,
		keyspace: conf.Keyspace,
		table:    conf.Table,
	}
	if err := s.createSchema(); err != nil {
		session.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createSchema() error {
	stmts := []string{
		fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
			WITH REPLICATION = { 'class' : 'SimpleStrategy', 'replication_factor' : 1 }`,
			s.keyspace),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s
			(key bigint PRIMARY KEY, value text, root_hash blob)`,
			s.keyspace, s.table),
	}
	for _, stmt := range stmts {
		if err := s.session.Query(stmt).Exec(); err != nil {
			return fmt.Errorf("cassandra: cannot create schema: %v", err)
		}
	}
	return nil
}

// Put stores value and rootHash under key. An existing row for key
// is overwritten.
func (s *Store) Put(key int64, value, rootHash []byte) error {
	return s.session.Query(
		fmt.Sprintf(`INSERT INTO %s.%s (key, value, root_hash) VALUES (?, ?, ?)`,
			s.keyspace, s.table),
		key, string(value), rootHash,
	).Exec()
}

// Get loads the value and root hash stored under key. It returns
// ErrNotFound() if the key is absent.
func (s *Store) Get(key int64) ([]byte, []byte, error) {
	var (
		value    string
		rootHash []byte
	)
	err := s.session.Query(
		fmt.Sprintf(`SELECT value, root_hash FROM %s.%s WHERE key = ?`,
			s.keyspace, s.table),
		key,
	).Scan(&value, &rootHash)
	if err != nil {
		return nil, nil, err
	}
	return []byte(value), rootHash, nil
}

// Delete removes the row stored under key.
func (s *Store) Delete(key int64) error {
	return s.session.Query(
		fmt.Sprintf(`DELETE FROM %s.%s WHERE key = ?`, s.keyspace, s.table),
		key,
	).Exec()
}

// Close releases the underlying session.
func (s *Store) Close() {
	s.session.Close()
}

// ErrNotFound returns the error reported for absent keys.
func (s *Store) ErrNotFound() error {
	return gocql.ErrNotFound
}
