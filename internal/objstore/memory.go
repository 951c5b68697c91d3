package objstore

import (
	"context"
	"sync"

	"github.com/muralhq/mural/internal/domain"
)

// MemoryStorage keeps uploads in memory. It backs demo deployments with no
// bucket configured; returned URLs resolve only within the process.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (m *MemoryStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	m.objects[path] = copied
	return m.PublicURL(path), nil
}

func (m *MemoryStorage) PublicURL(path string) string {
	return "memory://" + path
}

// Get returns a stored object's bytes
func (m *MemoryStorage) Get(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[path]
	return data, ok
}

var _ domain.ObjectStorage = (*MemoryStorage)(nil)
