package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shhac/aura/internal/domain"
	apperrors "github.com/shhac/aura/internal/errors"
)

const (
	snapshotFile   = "dashboard_snapshot.json"
	filePermission = 0644
	dirPermission  = 0755
)

// JSONRepository implements Repository using JSON files
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a new JSON-based storage repository
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// SaveSnapshot writes the snapshot, replacing any previous one
func (r *JSONRepository) SaveSnapshot(snapshot domain.Snapshot) error {
	if err := r.ensureBaseDir(); err != nil {
		return fmt.Errorf("ensure base directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	path := r.snapshotPath()
	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	r.logger.Debug("saved dashboard snapshot",
		slog.String("path", path),
		slog.Time("fetched_at", snapshot.FetchedAt))

	return nil
}

// LoadSnapshot reads the last saved snapshot
func (r *JSONRepository) LoadSnapshot() (*domain.Snapshot, error) {
	path := r.snapshotPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	r.logger.Debug("loaded dashboard snapshot", slog.String("path", path))
	return &snapshot, nil
}

// ClearSnapshot removes the saved snapshot
func (r *JSONRepository) ClearSnapshot() error {
	if err := os.Remove(r.snapshotPath()); err != nil {
		if os.IsNotExist(err) {
			// Already clear, not an error
			return nil
		}
		return fmt.Errorf("delete snapshot file: %w", err)
	}

	r.logger.Debug("cleared dashboard snapshot")
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

func (r *JSONRepository) ensureBaseDir() error {
	if err := os.MkdirAll(r.basePath, dirPermission); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}
	return nil
}

func (r *JSONRepository) snapshotPath() string {
	return filepath.Join(r.basePath, snapshotFile)
}
