package domain

import "time"

// Status is the workflow state of an issue
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists the workflow states in display order
var Statuses = []Status{StatusBacklog, StatusTodo, StatusInProgress, StatusDone}

// Issue represents a tracked work item
type Issue struct {
	ID         string
	Title      string
	Body       string // markdown description shown in the detail pager
	Status     Status
	Sprint     string // sprint name ("" if unassigned)
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ArchivedAt *time.Time // non-nil once archived
	DeletedAt  *time.Time // non-nil once soft-deleted (shown in Trash)
}

// Archived reports whether the issue has been archived
func (i *Issue) Archived() bool { return i.ArchivedAt != nil }

// Deleted reports whether the issue is in the trash
func (i *Issue) Deleted() bool { return i.DeletedAt != nil }

// IssuePatch describes a partial update applied to many issues at once.
// Nil fields are left untouched.
type IssuePatch struct {
	Status *Status
	Sprint *string // pointer to "" means explicit unassign
}

// Tab identifies one of the top-level list views
type Tab string

const (
	TabBacklog Tab = "backlog"
	TabSprint  Tab = "sprint"
	TabTrash   Tab = "trash"
)

// Tabs lists the views in display order
var Tabs = []Tab{TabBacklog, TabSprint, TabTrash}
