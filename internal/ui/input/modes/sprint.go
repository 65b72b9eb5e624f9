package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"issuegrip/internal/ui/input/types"
)

// SprintMode prompts for a sprint name for the selected issues. Submitting
// an empty name is the explicit unassign choice.
type SprintMode struct {
	TextInputMode
}

func NewSprintMode(ti *textinput.Model) *SprintMode {
	return &SprintMode{
		TextInputMode: NewTextInputMode(types.ModeSprint, "sprint", "Move to sprint (empty to unassign): ", ti),
	}
}
