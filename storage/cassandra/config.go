package cassandra

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/nagarajmanjunath/AVL-tree/utils"
)

// Config contains the connection settings of the Cassandra-backed
// tree entry store.
type Config struct {
	ContactPoints []string `toml:"contact_points"`
	Keyspace      string   `toml:"keyspace"`
	Table         string   `toml:"table"`
}

// DefaultConfig returns a config pointing at a local single-node
// cluster.
func DefaultConfig() *Config {
	return &Config{
		ContactPoints: []string{"127.0.0.1"},
		Keyspace:      "merkle_avl_tree",
		Table:         "tree_data",
	}
}

// LoadConfig reads a store configuration from the given toml-encoded
// file. If there is any decoding error, LoadConfig() returns an error.
func LoadConfig(file string) (*Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(file, conf); err != nil {
		return nil, fmt.Errorf("Failed to load config: %v", err)
	}
	return conf, nil
}

// Save writes the configuration conf in toml encoding.
// If there is any encoding or IO error, Save() returns an error.
func (conf *Config) Save(file string) error {
	var confBuf bytes.Buffer

	e := toml.NewEncoder(&confBuf)
	if err := e.Encode(conf); err != nil {
		return err
	}
	return utils.WriteFile(file, confBuf.Bytes(), 0644)
}
