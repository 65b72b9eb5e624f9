package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Dim           lipgloss.Style
	Filter        lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Confirm       lipgloss.Style
	Cursor        lipgloss.Style
	SelectionBg   lipgloss.Style
	Checkbox      lipgloss.Style
	CheckboxOn    lipgloss.Style
	SprintTag     lipgloss.Style
	BulkBar       lipgloss.Style
	BulkCount     lipgloss.Style
	Toast         lipgloss.Style
	ToastUndo     lipgloss.Style
	Announce      lipgloss.Style
	StatusError   lipgloss.Style
	StatusBacklog lipgloss.Style
	StatusTodo    lipgloss.Style
	StatusWorking lipgloss.Style
	StatusDone    lipgloss.Style
	Archived      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		Dim:    lipgloss.NewStyle().Faint(true),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Confirm: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("203")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checkbox:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CheckboxOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		SprintTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		BulkBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		BulkCount:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Toast:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		ToastUndo:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Announce:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusBacklog: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusTodo:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusWorking: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Archived:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
	}
}
