package index

import (
	"fmt"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketKeys = []byte("keys")
)

// BoltStore implements Store interface using BoltDB
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a new BoltDB-backed index
func NewBoltStore(dataDir string) (*BoltStore, error) {
	dbPath := filepath.Join(dataDir, "kalavara.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketKeys); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketKeys, err)
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Get returns the volume URL the key is placed on
func (s *BoltStore) Get(key string) (string, error) {
	var volume string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKeys)
		data := b.Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		volume = string(data)
		return nil
	})
	return volume, err
}

// Put maps the key to a volume URL, replacing any previous mapping.
// The previous mapping is returned so counters can be settled.
func (s *BoltStore) Put(key string, volume string) (string, error) {
	var prev string
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKeys)
		if data := b.Get([]byte(key)); data != nil {
			prev = string(data)
		}
		return b.Put([]byte(key), []byte(volume))
	})
	return prev, err
}

// Delete removes the key and returns the volume URL it was placed on
func (s *BoltStore) Delete(key string) (string, error) {
	var volume string
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKeys)
		data := b.Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		volume = string(data)
		return b.Delete([]byte(key))
	})
	return volume, err
}
