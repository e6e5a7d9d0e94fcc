package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/aura/internal/domain"
	apperrors "github.com/shhac/aura/internal/errors"
	"github.com/shhac/aura/internal/logging"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Summary: domain.DashboardSummary{
			TotalCustomers:   7043,
			HighRiskCount:    412,
			AverageRisk:      0.27,
			MonthlyChurnRate: 6.4,
			RiskDistribution: domain.RiskDistribution{Low: 5000, Medium: 1631, High: 412},
			TopRiskyCustomers: []domain.RiskyCustomer{
				{CustomerID: "7590-VHVEG", Name: "7590-VHVEG", RiskScore: 92.5, RiskLevel: "high"},
			},
		},
		FetchedAt: time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC),
		Source:    domain.SourceLive,
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")
	data := []byte(`{"hello": "world"}`)

	if err := atomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("atomicWriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions = %o, want 0644", perm)
	}
}

func TestAtomicWriteFile_NoTempFileOnFailure(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "nodir", "test.json")
	if err := atomicWriteFile(path, []byte("data"), 0644); err == nil {
		t.Fatal("expected error writing to non-existent directory")
	}

	entries, _ := os.ReadDir(parent)
	if len(entries) != 0 {
		t.Errorf("unexpected files left behind: %v", entries)
	}
}

func TestJSONRepository_SnapshotRoundTrip(t *testing.T) {
	repo := NewJSONRepository(filepath.Join(t.TempDir(), "nested"), logging.NewNopLogger())

	_, err := repo.LoadSnapshot()
	require.ErrorIs(t, err, apperrors.ErrSnapshotNotFound)

	want := sampleSnapshot()
	require.NoError(t, repo.SaveSnapshot(want))

	got, err := repo.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, want.Summary, got.Summary)
	assert.True(t, want.FetchedAt.Equal(got.FetchedAt))
	assert.Equal(t, domain.SourceLive, got.Source)
}

func TestJSONRepository_SaveOverwrites(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.NewNopLogger())

	first := sampleSnapshot()
	require.NoError(t, repo.SaveSnapshot(first))

	second := sampleSnapshot()
	second.Summary.HighRiskCount = 1
	require.NoError(t, repo.SaveSnapshot(second))

	got, err := repo.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, got.Summary.HighRiskCount)
}

func TestJSONRepository_CorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONRepository(dir, logging.NewNopLogger())
	require.NoError(t, os.WriteFile(filepath.Join(dir, snapshotFile), []byte("{not json"), 0644))

	_, err := repo.LoadSnapshot()
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSnapshotNotFound)
}

func TestJSONRepository_Clear(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.NewNopLogger())

	require.NoError(t, repo.ClearSnapshot(), "clearing nothing is fine")
	require.NoError(t, repo.SaveSnapshot(sampleSnapshot()))
	require.NoError(t, repo.ClearSnapshot())

	_, err := repo.LoadSnapshot()
	assert.ErrorIs(t, err, apperrors.ErrSnapshotNotFound)
}

func TestMemoryRepository(t *testing.T) {
	var repo Repository = NewMemoryRepository()

	_, err := repo.LoadSnapshot()
	require.ErrorIs(t, err, apperrors.ErrSnapshotNotFound)

	require.NoError(t, repo.SaveSnapshot(sampleSnapshot()))
	got, err := repo.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 7043, got.Summary.TotalCustomers)

	require.NoError(t, repo.ClearSnapshot())
	_, err = repo.LoadSnapshot()
	assert.ErrorIs(t, err, apperrors.ErrSnapshotNotFound)
}

func TestDefaultStoragePath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path, err := DefaultStoragePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".aura"), path)
}
