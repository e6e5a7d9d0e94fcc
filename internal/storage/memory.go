package storage

import (
	"sync"

	"github.com/shhac/aura/internal/domain"
	apperrors "github.com/shhac/aura/internal/errors"
)

// MemoryRepository implements Repository using in-memory storage for tests
type MemoryRepository struct {
	snapshot *domain.Snapshot
	mu       sync.RWMutex
}

// NewMemoryRepository creates a new in-memory storage repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveSnapshot stores a copy of the snapshot
func (m *MemoryRepository) SaveSnapshot(snapshot domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = &snapshot
	return nil
}

// LoadSnapshot returns the stored snapshot
func (m *MemoryRepository) LoadSnapshot() (*domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.snapshot == nil {
		return nil, apperrors.ErrSnapshotNotFound
	}
	s := *m.snapshot
	return &s, nil
}

// ClearSnapshot forgets the stored snapshot
func (m *MemoryRepository) ClearSnapshot() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = nil
	return nil
}
