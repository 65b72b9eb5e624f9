package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("issuegrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move focus (list takes keyboard focus)")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("j/k"), descStyle.Render("Move focus (global, Enter opens the issue)")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Home/End"), descStyle.Render("Go to first/last issue")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Space/x"), descStyle.Render("Toggle selection on the focused issue")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Enter"), descStyle.Render("Toggle when the list has focus, open otherwise")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Shift+↑/↓"), descStyle.Render("Grow or shrink the range from the anchor")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Shift+Home/End"), descStyle.Render("Extend range to the edge")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Ctrl+A"), descStyle.Render("Select all / deselect all")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear selection, then clear filter")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Click"), descStyle.Render("Select only that issue")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Ctrl+Click"), descStyle.Render("Add or remove the issue from the selection")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Shift+Click"), descStyle.Render("Extend the range to the clicked issue")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Actions"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("e"), descStyle.Render("Archive selection (u to undo)")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("d"), descStyle.Render("Move selection to trash (u to undo)")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("r"), descStyle.Render("Restore from trash")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("m"), descStyle.Render("Move selection to a sprint")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("t"), descStyle.Render("Change status")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("u"), descStyle.Render("Undo the last archive/delete")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Views"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("1/2/3"), descStyle.Render("Backlog / Sprint / Trash")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Tab"), descStyle.Render("Next view")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("/"), descStyle.Render("Filter issues")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("s"), descStyle.Render("Cycle sort order")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s        %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
