package bulk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuegrip/internal/domain"
	"issuegrip/internal/eventbus"
	"issuegrip/internal/ui/services/events"
	"issuegrip/internal/ui/services/selection"
	"issuegrip/internal/ui/services/toast"
)

type fakeAPI struct {
	calls []string
	ids   [][]string
	err   error
}

func (f *fakeAPI) record(call string, ids []string) error {
	f.calls = append(f.calls, call)
	f.ids = append(f.ids, ids)
	return f.err
}

func (f *fakeAPI) UpdateMany(_ context.Context, ids []string, _ domain.IssuePatch) error {
	return f.record("update", ids)
}
func (f *fakeAPI) ArchiveMany(_ context.Context, ids []string) error {
	return f.record("archive", ids)
}
func (f *fakeAPI) UnarchiveMany(_ context.Context, ids []string) error {
	return f.record("unarchive", ids)
}
func (f *fakeAPI) SoftDeleteMany(_ context.Context, ids []string) error {
	return f.record("softdelete", ids)
}
func (f *fakeAPI) RestoreMany(_ context.Context, ids []string) error {
	return f.record("restore", ids)
}

func newTestBulk(t *testing.T, ids []string) (*Service, *fakeAPI, *selection.Service, *toast.Service) {
	t.Helper()
	uiBus := events.NewBus()
	sel := selection.NewService(uiBus)
	sel.SetOrderFunction(func() []string { return ids })
	toastSvc := toast.NewService(uiBus)
	api := &fakeAPI{}
	svc := NewService(api, sel, toastSvc, eventbus.New())
	svc.SetUndoWindow(time.Minute)
	return svc, api, sel, toastSvc
}

func TestArchiveSnapshotsAndClearsSelection(t *testing.T) {
	svc, api, sel, toastSvc := newTestBulk(t, []string{"a", "b", "c"})
	sel.Toggle("a")
	sel.Toggle("c")
	require.True(t, svc.Visible())

	svc.Archive(context.Background())

	require.Equal(t, []string{"archive"}, api.calls)
	assert.Equal(t, []string{"a", "c"}, api.ids[0])
	// Selection is cleared the moment the action dispatches
	assert.False(t, sel.HasSelection())
	assert.False(t, svc.Visible())
	assert.True(t, toastSvc.CanUndo())
}

func TestUndoInvokesInverseWithoutReselecting(t *testing.T) {
	svc, api, sel, toastSvc := newTestBulk(t, []string{"a", "b"})
	sel.ToggleSelectAll()

	svc.Delete(context.Background())
	require.True(t, toastSvc.Undo())

	require.Equal(t, []string{"softdelete", "restore"}, api.calls)
	assert.Equal(t, api.ids[0], api.ids[1])
	assert.False(t, sel.HasSelection())
}

func TestFailureLeavesSelectionCleared(t *testing.T) {
	svc, api, sel, toastSvc := newTestBulk(t, []string{"a"})
	api.err = errors.New("disk full")
	sel.Toggle("a")

	svc.Archive(context.Background())

	// The UX favors "already cleared, reported as failed" over restoring
	assert.False(t, sel.HasSelection())
	assert.False(t, toastSvc.CanUndo())
	assert.Contains(t, toastSvc.Message(), "Could not archive")
}

func TestMoveToSprintUnassign(t *testing.T) {
	svc, api, sel, toastSvc := newTestBulk(t, []string{"a", "b"})
	sel.Toggle("b")

	svc.MoveToSprint(context.Background(), "")

	require.Equal(t, []string{"update"}, api.calls)
	assert.Contains(t, toastSvc.Message(), "Unassigned")
}

func TestChangeStatus(t *testing.T) {
	svc, api, sel, toastSvc := newTestBulk(t, []string{"a", "b"})
	sel.ToggleSelectAll()

	svc.ChangeStatus(context.Background(), domain.StatusDone)

	require.Equal(t, []string{"update"}, api.calls)
	assert.Equal(t, []string{"a", "b"}, api.ids[0])
	assert.Contains(t, toastSvc.Message(), "done")
}

func TestActionsNoOpOnEmptySelection(t *testing.T) {
	svc, api, _, _ := newTestBulk(t, []string{"a"})

	svc.Archive(context.Background())
	svc.Delete(context.Background())
	svc.ChangeStatus(context.Background(), domain.StatusDone)

	assert.Empty(t, api.calls)
}
