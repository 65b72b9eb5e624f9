package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"issuegrip/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter toggles selection when the list owns local focus;
		// otherwise it opens the focused issue.
		if ctx.FocusedID() == "" {
			return nil, false
		}
		if ctx.ListFocused() {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return []types.Action{types.OpenIssueAction{}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchTabAction{}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "shift+up":
		return []types.Action{types.ExtendRangeAction{Direction: "up"}}, true

	case "shift+down":
		return []types.Action{types.ExtendRangeAction{Direction: "down"}}, true

	case "shift+home":
		return []types.Action{types.ExtendRangeAction{Direction: "home"}}, true

	case "shift+end":
		return []types.Action{types.ExtendRangeAction{Direction: "end"}}, true

	case "j":
		// Vim-style navigation stays global: it moves focus without
		// claiming it for the list
		return []types.Action{types.NavigateAction{Direction: "down", Global: true}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up", Global: true}}, true

	case " ", "x":
		// Toggle selection on the focused issue
		if ctx.FocusedID() == "" {
			return nil, true // Consume the key even if no action
		}
		return []types.Action{types.ToggleSelectAction{}}, true

	case "ctrl+a":
		return []types.Action{types.ToggleSelectAllAction{}}, true

	case "e":
		// Archive selected issues, or the focused one
		if ctx.HasSelection() || ctx.FocusedID() != "" {
			return []types.Action{types.ArchiveAction{}}, true
		}
		return nil, false

	case "d":
		// Soft delete, behind a confirm prompt
		if ctx.HasSelection() || ctx.FocusedID() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return nil, false

	case "r":
		// Restore deleted issues (trash tab only)
		if ctx.ActiveTab() == "trash" && (ctx.HasSelection() || ctx.FocusedID() != "") {
			return []types.Action{types.RestoreAction{}}, true
		}
		return nil, false

	case "m":
		// Move to sprint
		if ctx.HasSelection() || ctx.FocusedID() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSprint}}, true
		}
		return nil, false

	case "t":
		// Change status
		if ctx.HasSelection() || ctx.FocusedID() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeStatus}}, true
		}
		return nil, false

	case "u":
		if ctx.CanUndo() {
			return []types.Action{types.UndoAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "/":
		// Enter filter mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "s":
		// Cycle sort order
		return []types.Action{types.CycleSortAction{}}, true

	case "1":
		return []types.Action{types.SwitchTabAction{Tab: "backlog"}}, true

	case "2":
		return []types.Action{types.SwitchTabAction{Tab: "sprint"}}, true

	case "3":
		return []types.Action{types.SwitchTabAction{Tab: "trash"}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear selection if any, otherwise clear the filter
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home", Global: true}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end", Global: true}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG && msg.String() != "g" {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
