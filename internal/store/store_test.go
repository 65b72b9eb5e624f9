package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuegrip/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "issues.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createIssues(t *testing.T, s *Store, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		issue, err := s.CreateIssue(context.Background(), "issue", "", domain.StatusBacklog, "")
		require.NoError(t, err)
		ids = append(ids, issue.ID)
	}
	return ids
}

func TestCreateAndList(t *testing.T) {
	s := newTestStore(t)
	createIssues(t, s, 3)

	issues, err := s.ListIssues(context.Background())
	require.NoError(t, err)
	assert.Len(t, issues, 3)
}

func TestUpdateManyPatchesStatusAndSprint(t *testing.T) {
	s := newTestStore(t)
	ids := createIssues(t, s, 3)

	status := domain.StatusInProgress
	sprint := "week-40"
	err := s.UpdateMany(context.Background(), ids[:2], domain.IssuePatch{Status: &status, Sprint: &sprint})
	require.NoError(t, err)

	first, err := s.GetIssue(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, first.Status)
	assert.Equal(t, "week-40", first.Sprint)

	last, err := s.GetIssue(context.Background(), ids[2])
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBacklog, last.Status)
}

func TestUpdateManyUnassignsSprint(t *testing.T) {
	s := newTestStore(t)
	ids := createIssues(t, s, 1)

	sprint := "week-40"
	require.NoError(t, s.UpdateMany(context.Background(), ids, domain.IssuePatch{Sprint: &sprint}))

	unassigned := ""
	require.NoError(t, s.UpdateMany(context.Background(), ids, domain.IssuePatch{Sprint: &unassigned}))

	issue, err := s.GetIssue(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "", issue.Sprint)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	s := newTestStore(t)
	ids := createIssues(t, s, 2)

	require.NoError(t, s.SoftDeleteMany(context.Background(), ids))
	issue, err := s.GetIssue(context.Background(), ids[0])
	require.NoError(t, err)
	assert.True(t, issue.Deleted())

	require.NoError(t, s.RestoreMany(context.Background(), ids))
	issue, err = s.GetIssue(context.Background(), ids[0])
	require.NoError(t, err)
	assert.False(t, issue.Deleted())
}

func TestArchiveAndUnarchive(t *testing.T) {
	s := newTestStore(t)
	ids := createIssues(t, s, 1)

	require.NoError(t, s.ArchiveMany(context.Background(), ids))
	issue, err := s.GetIssue(context.Background(), ids[0])
	require.NoError(t, err)
	assert.True(t, issue.Archived())

	require.NoError(t, s.UnarchiveMany(context.Background(), ids))
	issue, err = s.GetIssue(context.Background(), ids[0])
	require.NoError(t, err)
	assert.False(t, issue.Archived())
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SeedIfEmpty(context.Background()))
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	require.NoError(t, s.SeedIfEmpty(context.Background()))
	m, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, m)
}

func TestBulkMethodsNoOpOnEmptyIDs(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.UpdateMany(context.Background(), nil, domain.IssuePatch{}))
	assert.NoError(t, s.ArchiveMany(context.Background(), nil))
	assert.NoError(t, s.SoftDeleteMany(context.Background(), nil))
}
