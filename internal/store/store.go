package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketLocal = []byte("local")
)

// LocalStore implements domain.KeyValueStore using BoltDB. It backs guest
// favorites: a single shared string store per device, not namespaced per
// viewer. An empty dataDir gives a memory-only store (no persistence),
// which tests use.
type LocalStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string]string
}

func NewLocalStore(dataDir string) (*LocalStore, error) {
	if dataDir == "" {
		// Memory-only mode (no persistence)
		return &LocalStore{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "mural.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLocal)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &LocalStore{db: db, cache: make(map[string]string)}, nil
}

// Get returns the stored value for key, or ("", false) when absent.
func (s *LocalStore) Get(key string) (string, bool) {
	// Check memory cache first
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLocal)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return "", false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = string(data)
	s.mu.Unlock()

	return string(data), true
}

// Set stores value under key.
func (s *LocalStore) Set(key, value string) error {
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLocal)
		return b.Put([]byte(key), []byte(value))
	})
}

// Delete removes key if present.
func (s *LocalStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLocal)
		if b != nil {
			return b.Delete([]byte(key))
		}
		return nil
	})
}

func (s *LocalStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
