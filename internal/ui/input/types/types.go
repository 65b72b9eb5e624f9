package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeSprint
	ModeStatus
	ModeDeleteConfirm
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// ListFocused reports whether the active list owns local keyboard
	// focus (granted by clicking or using a local list shortcut, not by
	// global j/k navigation).
	ListFocused() bool
	FocusedID() string
	HasSelection() bool
	SelectedCount() int
	TotalItems() int
	ActiveTab() string
	FilterQuery() string
	CanUndo() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
