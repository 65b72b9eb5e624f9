package bulk

import (
	"context"
	"fmt"
	"log"
	"time"

	"issuegrip/internal/domain"
	"issuegrip/internal/eventbus"
	"issuegrip/internal/ui/services/selection"
	"issuegrip/internal/ui/services/toast"
)

// MutationAPI is the batched mutation surface the bulk bar dispatches
// against. Implemented by the sqlite store; the bar never sees row data.
type MutationAPI interface {
	UpdateMany(ctx context.Context, ids []string, patch domain.IssuePatch) error
	ArchiveMany(ctx context.Context, ids []string) error
	UnarchiveMany(ctx context.Context, ids []string) error
	SoftDeleteMany(ctx context.Context, ids []string) error
	RestoreMany(ctx context.Context, ids []string) error
}

// Service is the bulk action bar controller. Every action snapshots the
// effective selection, clears it immediately (the UX is optimistic: a
// failed mutation is reported, never re-selected), then dispatches one
// batched mutation. Archive and Delete arm an undo toast for a bounded
// window; undo re-invokes the inverse mutation without re-selecting.
type Service struct {
	api        MutationAPI
	selection  *selection.Service
	toast      *toast.Service
	bus        eventbus.EventBus
	undoWindow time.Duration
}

// NewService creates a new bulk action service
func NewService(api MutationAPI, sel *selection.Service, toastSvc *toast.Service, bus eventbus.EventBus) *Service {
	return &Service{
		api:        api,
		selection:  sel,
		toast:      toastSvc,
		bus:        bus,
		undoWindow: toast.DefaultUndoWindow,
	}
}

// SetUndoWindow overrides the undo window (tests)
func (s *Service) SetUndoWindow(d time.Duration) {
	s.undoWindow = d
}

// Visible reports whether the bar should be rendered
func (s *Service) Visible() bool {
	return s.selection.HasSelection()
}

// Count returns the number of items the next action would cover
func (s *Service) Count() int {
	return s.selection.Count()
}

// snapshot captures the effective selection and clears it before any
// mutation is dispatched, so no response ordering can resurrect it.
func (s *Service) snapshot() []string {
	ids := s.selection.Effective()
	if len(ids) == 0 {
		return nil
	}
	s.selection.DeselectAll()
	return ids
}

func (s *Service) report(action string, err error) {
	log.Printf("bulk %s failed: %v", action, err)
	s.bus.Publish(eventbus.ErrorEvent{
		Message: fmt.Sprintf("%s failed, selection was not restored", action),
		Err:     err,
	})
	s.toast.Show(fmt.Sprintf("Could not %s, try again", action))
}

// Archive archives the selected issues with an undo affordance
func (s *Service) Archive(ctx context.Context) {
	ids := s.snapshot()
	if ids == nil {
		return
	}
	if err := s.api.ArchiveMany(ctx, ids); err != nil {
		s.report("archive", err)
		return
	}
	s.bus.Publish(eventbus.IssuesArchivedEvent{IDs: ids, Archived: true})
	s.toast.ShowUndoable(fmt.Sprintf("Archived %s", countNoun(len(ids))), func() {
		if err := s.api.UnarchiveMany(ctx, ids); err != nil {
			s.report("unarchive", err)
			return
		}
		s.bus.Publish(eventbus.IssuesArchivedEvent{IDs: ids, Archived: false})
	}, s.undoWindow)
}

// Delete soft-deletes the selected issues to the trash with undo
func (s *Service) Delete(ctx context.Context) {
	ids := s.snapshot()
	if ids == nil {
		return
	}
	if err := s.api.SoftDeleteMany(ctx, ids); err != nil {
		s.report("delete", err)
		return
	}
	s.bus.Publish(eventbus.IssuesDeletedEvent{IDs: ids})
	s.toast.ShowUndoable(fmt.Sprintf("Moved %s to trash", countNoun(len(ids))), func() {
		if err := s.api.RestoreMany(ctx, ids); err != nil {
			s.report("restore", err)
			return
		}
		s.bus.Publish(eventbus.IssuesRestoredEvent{IDs: ids})
	}, s.undoWindow)
}

// Restore brings the selected trashed issues back (Trash tab action)
func (s *Service) Restore(ctx context.Context) {
	ids := s.snapshot()
	if ids == nil {
		return
	}
	if err := s.api.RestoreMany(ctx, ids); err != nil {
		s.report("restore", err)
		return
	}
	s.bus.Publish(eventbus.IssuesRestoredEvent{IDs: ids})
	s.toast.Show(fmt.Sprintf("Restored %s", countNoun(len(ids))))
}

// MoveToSprint assigns the selected issues to a sprint; an empty name is
// the explicit unassign choice.
func (s *Service) MoveToSprint(ctx context.Context, sprint string) {
	ids := s.snapshot()
	if ids == nil {
		return
	}
	patch := domain.IssuePatch{Sprint: &sprint}
	if err := s.api.UpdateMany(ctx, ids, patch); err != nil {
		s.report("move", err)
		return
	}
	s.bus.Publish(eventbus.IssuesUpdatedEvent{IDs: ids, Patch: patch})
	if sprint == "" {
		s.toast.Show(fmt.Sprintf("Unassigned %s from sprint", countNoun(len(ids))))
	} else {
		s.toast.Show(fmt.Sprintf("Moved %s to %s", countNoun(len(ids)), sprint))
	}
}

// ChangeStatus sets the status of the selected issues
func (s *Service) ChangeStatus(ctx context.Context, status domain.Status) {
	ids := s.snapshot()
	if ids == nil {
		return
	}
	patch := domain.IssuePatch{Status: &status}
	if err := s.api.UpdateMany(ctx, ids, patch); err != nil {
		s.report("update", err)
		return
	}
	s.bus.Publish(eventbus.IssuesUpdatedEvent{IDs: ids, Patch: patch})
	s.toast.Show(fmt.Sprintf("Marked %s as %s", countNoun(len(ids)), status))
}

func countNoun(n int) string {
	if n == 1 {
		return "1 issue"
	}
	return fmt.Sprintf("%d issues", n)
}
