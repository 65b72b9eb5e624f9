package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuegrip/internal/ui/input/types"
)

// fakeContext is a stub Context for exercising the handler without services
type fakeContext struct {
	listFocused  bool
	focusedID    string
	hasSelection bool
	count        int
	total        int
	tab          string
	filter       string
	canUndo      bool
}

func (c *fakeContext) ListFocused() bool   { return c.listFocused }
func (c *fakeContext) FocusedID() string   { return c.focusedID }
func (c *fakeContext) HasSelection() bool  { return c.hasSelection }
func (c *fakeContext) SelectedCount() int  { return c.count }
func (c *fakeContext) TotalItems() int     { return c.total }
func (c *fakeContext) ActiveTab() string   { return c.tab }
func (c *fakeContext) FilterQuery() string { return c.filter }
func (c *fakeContext) CanUndo() bool       { return c.canUndo }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyShiftUp}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func actionTypes(actions []types.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Type()
	}
	return out
}

func TestHandlerStartsInNormalMode(t *testing.T) {
	h := New()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "normal", h.ModeName())
}

func TestNavigationKeys(t *testing.T) {
	h := New()
	ctx := &fakeContext{focusedID: "a", total: 3}

	actions, _ := h.HandleKey(keyMsg("down"), ctx)
	require.Len(t, actions, 1)
	nav, ok := actions[0].(types.NavigateAction)
	require.True(t, ok)
	assert.Equal(t, "down", nav.Direction)
	assert.False(t, nav.Global, "arrow keys grant local focus")

	actions, _ = h.HandleKey(keyMsg("j"), ctx)
	require.Len(t, actions, 1)
	nav = actions[0].(types.NavigateAction)
	assert.Equal(t, "down", nav.Direction)
	assert.True(t, nav.Global, "j stays global")
}

func TestShiftArrowsExtendRange(t *testing.T) {
	h := New()
	ctx := &fakeContext{focusedID: "a"}

	actions, _ := h.HandleKey(keyMsg("shift+down"), ctx)
	require.Len(t, actions, 1)
	ext, ok := actions[0].(types.ExtendRangeAction)
	require.True(t, ok)
	assert.Equal(t, "down", ext.Direction)

	actions, _ = h.HandleKey(keyMsg("shift+up"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, "up", actions[0].(types.ExtendRangeAction).Direction)
}

func TestEnterTogglesWhenListFocused(t *testing.T) {
	h := New()

	ctx := &fakeContext{focusedID: "a", listFocused: true}
	actions, _ := h.HandleKey(keyMsg("enter"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ToggleSelectAction{}, actions[0])

	ctx.listFocused = false
	actions, _ = h.HandleKey(keyMsg("enter"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.OpenIssueAction{}, actions[0])
}

func TestEnterWithoutFocusDoesNothing(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(keyMsg("enter"), &fakeContext{})
	assert.Empty(t, actions)
}

func TestSpaceAndXToggle(t *testing.T) {
	h := New()
	ctx := &fakeContext{focusedID: "a"}

	for _, key := range []string{" ", "x"} {
		actions, _ := h.HandleKey(keyMsg(key), ctx)
		require.Len(t, actions, 1, "key %q", key)
		assert.IsType(t, types.ToggleSelectAction{}, actions[0])
	}
}

func TestEscClearsSelectionThenFilter(t *testing.T) {
	h := New()

	ctx := &fakeContext{hasSelection: true, filter: "auth"}
	actions, _ := h.HandleKey(keyMsg("esc"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.DeselectAllAction{}, actions[0])

	ctx = &fakeContext{filter: "auth"}
	actions, _ = h.HandleKey(keyMsg("esc"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ClearFilterAction{}, actions[0])

	actions, _ = h.HandleKey(keyMsg("esc"), &fakeContext{})
	assert.Empty(t, actions)
}

func TestFilterModeRoundTrip(t *testing.T) {
	h := New()
	ctx := &fakeContext{}

	actions, _ := h.HandleKey(keyMsg("/"), ctx)
	assert.Empty(t, actionTypes(actions)) // mode change is internal
	assert.Equal(t, types.ModeFilter, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	// Typing produces live text updates
	actions, _ = h.HandleKey(keyMsg("a"), ctx)
	require.NotEmpty(t, actions)
	update, ok := actions[len(actions)-1].(types.UpdateTextAction)
	require.True(t, ok)
	assert.Equal(t, "a", update.Text)

	// Enter submits and returns to normal mode
	actions, _ = h.HandleKey(keyMsg("enter"), ctx)
	require.NotEmpty(t, actions)
	submit, ok := actions[0].(types.SubmitTextAction)
	require.True(t, ok)
	assert.Equal(t, "a", submit.Text)
	assert.Equal(t, types.ModeFilter, submit.Mode)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestFilterModeEscCancels(t *testing.T) {
	h := New()
	ctx := &fakeContext{}

	h.HandleKey(keyMsg("/"), ctx)
	h.HandleKey(keyMsg("a"), ctx)

	actions, _ := h.HandleKey(keyMsg("esc"), ctx)
	require.NotEmpty(t, actions)
	assert.IsType(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestDeleteGoesThroughConfirm(t *testing.T) {
	h := New()
	ctx := &fakeContext{hasSelection: true}

	h.HandleKey(keyMsg("d"), ctx)
	assert.Equal(t, types.ModeDeleteConfirm, h.CurrentMode())

	// n cancels
	actions, _ := h.HandleKey(keyMsg("n"), ctx)
	assert.Empty(t, actionTypes(actions))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	// y confirms
	h.HandleKey(keyMsg("d"), ctx)
	actions, _ = h.HandleKey(keyMsg("y"), ctx)
	require.NotEmpty(t, actions)
	assert.IsType(t, types.DeleteAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestStatusModePicksByDigit(t *testing.T) {
	h := New()
	ctx := &fakeContext{focusedID: "a"}

	h.HandleKey(keyMsg("t"), ctx)
	assert.Equal(t, types.ModeStatus, h.CurrentMode())

	actions, _ := h.HandleKey(keyMsg("2"), ctx)
	require.NotEmpty(t, actions)
	change, ok := actions[0].(types.ChangeStatusAction)
	require.True(t, ok)
	assert.Equal(t, h.StatusOptions()[1], change.Status)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestStatusModeSwallowsOtherKeys(t *testing.T) {
	h := New()
	ctx := &fakeContext{focusedID: "a"}

	h.HandleKey(keyMsg("t"), ctx)
	actions, _ := h.HandleKey(keyMsg("j"), ctx)
	assert.Empty(t, actions, "status mode must not leak navigation")
	assert.Equal(t, types.ModeStatus, h.CurrentMode())
}

func TestSprintModeSubmitsEmptyText(t *testing.T) {
	h := New()
	ctx := &fakeContext{hasSelection: true}

	h.HandleKey(keyMsg("m"), ctx)
	assert.Equal(t, types.ModeSprint, h.CurrentMode())

	actions, _ := h.HandleKey(keyMsg("enter"), ctx)
	require.NotEmpty(t, actions)
	submit := actions[0].(types.SubmitTextAction)
	assert.Equal(t, "", submit.Text, "empty submit is the unassign path")
	assert.Equal(t, types.ModeSprint, submit.Mode)
}

func TestRestoreOnlyOnTrashTab(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(keyMsg("r"), &fakeContext{hasSelection: true, tab: "backlog"})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(keyMsg("r"), &fakeContext{hasSelection: true, tab: "trash"})
	require.Len(t, actions, 1)
	assert.IsType(t, types.RestoreAction{}, actions[0])
}

func TestUndoRequiresWindow(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(keyMsg("u"), &fakeContext{})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(keyMsg("u"), &fakeContext{canUndo: true})
	require.Len(t, actions, 1)
	assert.IsType(t, types.UndoAction{}, actions[0])
}

func TestTabSwitchKeys(t *testing.T) {
	h := New()
	ctx := &fakeContext{}

	actions, _ := h.HandleKey(keyMsg("2"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, "sprint", actions[0].(types.SwitchTabAction).Tab)

	actions, _ = h.HandleKey(keyMsg("tab"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, "", actions[0].(types.SwitchTabAction).Tab, "bare tab advances cyclically")
}

func TestGgNavigatesHome(t *testing.T) {
	h := New()
	ctx := &fakeContext{focusedID: "a"}

	actions, _ := h.HandleKey(keyMsg("g"), ctx)
	assert.Empty(t, actions, "first g is a prefix")

	actions, _ = h.HandleKey(keyMsg("g"), ctx)
	require.Len(t, actions, 1)
	nav := actions[0].(types.NavigateAction)
	assert.Equal(t, "home", nav.Direction)
	assert.True(t, nav.Global)
}

func TestSelectAllAndQuit(t *testing.T) {
	h := New()
	ctx := &fakeContext{total: 5}

	actions, _ := h.HandleKey(keyMsg("ctrl+a"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ToggleSelectAllAction{}, actions[0])

	actions, _ = h.HandleKey(keyMsg("q"), ctx)
	require.Len(t, actions, 1)
	assert.False(t, actions[0].(types.QuitAction).Force)
}
