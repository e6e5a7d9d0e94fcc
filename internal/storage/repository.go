package storage

import "github.com/shhac/aura/internal/domain"

// Repository persists the last dashboard snapshot so the UI has figures to
// show while the scoring API is unreachable.
type Repository interface {
	SaveSnapshot(snapshot domain.Snapshot) error
	// LoadSnapshot returns ErrSnapshotNotFound when nothing has been saved.
	LoadSnapshot() (*domain.Snapshot, error)
	ClearSnapshot() error
}
