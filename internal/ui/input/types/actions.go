package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
	Global    bool   // true for vim-style j/k that never grants local focus
}

func (a NavigateAction) Type() string { return "navigate" }

// ExtendRangeAction extends the pending selection range one step or to an
// edge, pivoting on the current anchor
type ExtendRangeAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a ExtendRangeAction) Type() string { return "extend_range" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type ToggleSelectAllAction struct{}

func (a ToggleSelectAllAction) Type() string { return "toggle_select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// OpenIssueAction opens the focused issue's detail view
type OpenIssueAction struct{}

func (a OpenIssueAction) Type() string { return "open_issue" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode // Which mode was cancelled
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Bulk actions
type ArchiveAction struct{}

func (a ArchiveAction) Type() string { return "archive" }

type DeleteAction struct{}

func (a DeleteAction) Type() string { return "delete" }

type RestoreAction struct{}

func (a RestoreAction) Type() string { return "restore" }

type MoveToSprintAction struct {
	Sprint string // "" unassigns
}

func (a MoveToSprintAction) Type() string { return "move_to_sprint" }

type ChangeStatusAction struct {
	Status string
}

func (a ChangeStatusAction) Type() string { return "change_status" }

type UndoAction struct{}

func (a UndoAction) Type() string { return "undo" }

// View actions
type SwitchTabAction struct {
	Tab string // "", advances to the next tab
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
