package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"issuegrip/internal/domain"
)

// IssueRenderer renders single issue rows
type IssueRenderer struct {
	styles *Styles
}

func NewIssueRenderer(styles *Styles) *IssueRenderer {
	return &IssueRenderer{styles: styles}
}

// RenderRow renders one issue line. The checkbox reflects the effective
// selection, the cursor marker the focus position.
func (r *IssueRenderer) RenderRow(issue *domain.Issue, focused, selected bool, width int) string {
	cursor := "  "
	if focused {
		cursor = r.styles.Cursor.Render("▌ ")
	}

	checkbox := r.styles.Checkbox.Render("[ ]")
	if selected {
		checkbox = r.styles.CheckboxOn.Render("[x]")
	}

	badge := r.statusBadge(issue.Status)

	title := issue.Title
	if issue.Archived() {
		title = r.styles.Archived.Render(title)
	}

	var tags []string
	if issue.Sprint != "" {
		tags = append(tags, r.styles.SprintTag.Render("@"+issue.Sprint))
	}
	tags = append(tags, r.styles.Dim.Render(humanize.Time(issue.UpdatedAt)))

	line := fmt.Sprintf("%s%s %s %s  %s", cursor, checkbox, badge, title, strings.Join(tags, " "))

	// Clip to terminal width, keeping ANSI sequences intact
	if width > 0 && lipgloss.Width(line) > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}

	if selected {
		line = r.styles.SelectionBg.Render(line)
	}
	return line
}

func (r *IssueRenderer) statusBadge(status domain.Status) string {
	switch status {
	case domain.StatusBacklog:
		return r.styles.StatusBacklog.Render("·")
	case domain.StatusTodo:
		return r.styles.StatusTodo.Render("○")
	case domain.StatusInProgress:
		return r.styles.StatusWorking.Render("◐")
	case domain.StatusDone:
		return r.styles.StatusDone.Render("●")
	default:
		return " "
	}
}
