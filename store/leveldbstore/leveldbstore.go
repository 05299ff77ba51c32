// Package leveldbstore is a persistent, on-disk backing store backed by
// github.com/syndtr/goleveldb, grounded on Carmen's common.LevelDB usage
// throughout backend/hashtree/htldb. Keys are big-endian encoded
// identifiers (grounded on backend/stock's EncodeIndex); values are
// gob-encoded (Value, Edges) records.
package leveldbstore

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"log"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/fantom-foundation/graphcache/ident"
	"github.com/fantom-foundation/graphcache/store"
)

// Store is a store.ReadWriter persisted to a LevelDB directory.
type Store[V any] struct {
	db   *leveldb.DB
	path string
}

// record is the on-disk shape of one node, gob-encoded.
type record[V any] struct {
	Value V
	Edges []ident.ID
}

// Open opens (creating if needed) a LevelDB-backed store at path.
func Open[V any](path string) (*Store[V], error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("leveldbstore: open %s: %w", path, err)
	}
	log.Printf("leveldbstore: opened %s", path)
	return &Store[V]{db: db, path: path}, nil
}

// Close releases the underlying LevelDB handle.
func (s *Store[V]) Close() error {
	log.Printf("leveldbstore: closing %s", s.path)
	return s.db.Close()
}

// Read implements store.Reader.
func (s *Store[V]) Read(id ident.ID) (store.Node[V], error) {
	data, err := s.db.Get(encodeKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return store.Node[V]{}, fmt.Errorf("%w: identifier %d", store.ErrNotFound, id)
	}
	if err != nil {
		return store.Node[V]{}, fmt.Errorf("leveldbstore: read identifier %d: %w", id, err)
	}
	var rec record[V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return store.Node[V]{}, fmt.Errorf("%w: identifier %d: %v", store.ErrCorrupt, id, err)
	}
	return store.Node[V]{Value: rec.Value, Edges: rec.Edges}, nil
}

// Write implements store.Writer.
func (s *Store[V]) Write(id ident.ID, node store.Node[V]) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(record[V]{Value: node.Value, Edges: node.Edges}); err != nil {
		return fmt.Errorf("leveldbstore: encode identifier %d: %w", id, err)
	}
	if err := s.db.Put(encodeKey(id), buf.Bytes(), nil); err != nil {
		return fmt.Errorf("leveldbstore: write identifier %d: %w", id, err)
	}
	return nil
}

func encodeKey(id ident.ID) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

var _ store.ReadWriter[int] = (*Store[int])(nil)
