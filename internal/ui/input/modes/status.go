package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"issuegrip/internal/ui/input/types"
)

// StatusMode is a one-key picker over the target workflow states
type StatusMode struct {
	options []string
}

func NewStatusMode(options []string) *StatusMode {
	return &StatusMode{options: options}
}

func (m *StatusMode) Name() string {
	return "status"
}

func (m *StatusMode) Options() []string {
	return m.options
}

func (m *StatusMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *StatusMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *StatusMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "1", "2", "3", "4":
		index := int(msg.String()[0] - '1')
		if index >= len(m.options) {
			return nil, true
		}
		return []types.Action{
			types.ChangeStatusAction{Status: m.options[index]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true // Modal: swallow everything else
}
