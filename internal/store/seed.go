package store

import (
	"context"
	"fmt"

	"issuegrip/internal/domain"
)

type seedIssue struct {
	title  string
	body   string
	status domain.Status
	sprint string
}

var seedIssues = []seedIssue{
	{"Fix login redirect loop", "Users bounce between /login and /app when the session cookie is stale.", domain.StatusTodo, ""},
	{"Add keyboard shortcuts help", "Single `?` overlay listing navigation and selection shortcuts.", domain.StatusBacklog, ""},
	{"Broken avatar upload on Safari", "Multipart boundary handling differs; repro in the bug report.", domain.StatusInProgress, "week-35"},
	{"Bulk status change for boards", "Allow changing status for every selected card at once.", domain.StatusTodo, "week-35"},
	{"Sprint burndown export", "CSV export of the per-day remaining estimate.", domain.StatusBacklog, ""},
	{"Archive completed epics", "Old epics clutter the backlog; archive anything done before Q2.", domain.StatusBacklog, ""},
	{"Migrate documents to new editor", "Port legacy rich-text docs to the block editor format.", domain.StatusInProgress, "week-36"},
	{"Trash retention policy", "Purge soft-deleted issues after 30 days.", domain.StatusBacklog, ""},
}

// SeedIfEmpty inserts the demo issue set when the database has no issues,
// so a fresh install starts with something navigable.
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, seed := range seedIssues {
		if _, err := s.CreateIssue(ctx, seed.title, seed.body, seed.status, seed.sprint); err != nil {
			return fmt.Errorf("seed issues: %w", err)
		}
	}
	return nil
}
