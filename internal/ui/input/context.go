package input

import (
	"issuegrip/internal/ui/services/focus"
	"issuegrip/internal/ui/services/query"
	"issuegrip/internal/ui/services/selection"
	"issuegrip/internal/ui/services/toast"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Selection *selection.Service
	Focus     *focus.Service
	Query     *query.Service
	Toast     *toast.Service
	Router    *Router
}

// ListFocused reports whether the active list owns local keyboard focus.
// Global j/k moves the cursor without granting it, so Enter still opens
// the issue instead of toggling its checkbox.
func (c *ModelContext) ListFocused() bool {
	if c.Router != nil && c.Router.LocalFocus() == "" {
		return false
	}
	return c.Focus.Origin() == focus.OriginLocal
}

// FocusedID returns the focused item id ("" if none)
func (c *ModelContext) FocusedID() string {
	return c.Focus.FocusedID()
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

// SelectedCount returns the number of selected items
func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count()
}

// TotalItems returns the number of visible items
func (c *ModelContext) TotalItems() int {
	return c.Query.Len()
}

// ActiveTab returns the active tab name
func (c *ModelContext) ActiveTab() string {
	return string(c.Query.Tab())
}

// FilterQuery returns the active filter text
func (c *ModelContext) FilterQuery() string {
	return c.Query.Filter()
}

// CanUndo reports whether an undoable toast is still inside its window
func (c *ModelContext) CanUndo() bool {
	return c.Toast.CanUndo()
}
