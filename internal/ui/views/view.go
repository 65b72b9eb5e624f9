package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"issuegrip/internal/domain"
)

// ListTop is the number of header lines above the first issue row.
// Mouse hit-testing in the model depends on it matching Render's output.
const ListTop = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Issues    []*domain.Issue // visible issues in display order
	FocusedID string
	Selected  map[string]bool // effective selection
	Tab       domain.Tab
	SortMode  string

	FilterQuery   string
	SelectedCount int
	TotalCount    int

	SelectionText string // announcer text for the status bar
	ToastMessage  string
	ToastCanUndo  bool
	ErrorMessage  string

	ViewportOffset int
	ViewportHeight int

	InputMode     string // "normal", "filter", "sprint", "status", "delete-confirm"
	Prompt        string
	TextInput     string
	StatusOptions []string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	issueRender *IssueRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		issueRender: NewIssueRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderIssueList(state))
	content.WriteString("\n")
	content.WriteString(r.renderBulkBar(state))
	content.WriteString(r.renderStatusBar(state))

	return content.String()
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("issuegrip")

	var tabs []string
	for _, tab := range domain.Tabs {
		label := tabLabel(tab)
		if tab == state.Tab {
			tabs = append(tabs, r.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, r.styles.TabInactive.Render(label))
		}
	}
	left := fmt.Sprintf("%s  %s", logo, strings.Join(tabs, ""))

	right := r.styles.Dim.Render(fmt.Sprintf("sort: %s", state.SortMode))
	if state.FilterQuery != "" {
		right = fmt.Sprintf("%s  %s", r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)), right)
	}

	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func tabLabel(tab domain.Tab) string {
	s := string(tab)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (r *Renderer) renderIssueList(state ViewState) string {
	if len(state.Issues) == 0 {
		return r.styles.Dim.Render(r.emptyMessage(state))
	}

	start := state.ViewportOffset
	if start > len(state.Issues) {
		start = len(state.Issues)
	}
	end := start + state.ViewportHeight
	if end > len(state.Issues) {
		end = len(state.Issues)
	}

	lines := make([]string, 0, end-start)
	for _, issue := range state.Issues[start:end] {
		lines = append(lines, r.issueRender.RenderRow(
			issue,
			issue.ID == state.FocusedID,
			state.Selected[issue.ID],
			state.Width,
		))
	}

	if end < len(state.Issues) {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("  … %d more", len(state.Issues)-end)))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) emptyMessage(state ViewState) string {
	if state.FilterQuery != "" {
		return fmt.Sprintf("  No issues match %q", state.FilterQuery)
	}
	switch state.Tab {
	case domain.TabTrash:
		return "  Trash is empty"
	case domain.TabSprint:
		return "  No issues assigned to a sprint"
	default:
		return "  Backlog is empty"
	}
}

// renderBulkBar renders the contextual action bar. It appears as soon as
// the effective selection is non-empty and vanishes when it drops to zero.
func (r *Renderer) renderBulkBar(state ViewState) string {
	if state.SelectedCount == 0 {
		return ""
	}

	count := r.styles.BulkCount.Render(fmt.Sprintf("%d selected", state.SelectedCount))
	actions := "e archive · d delete · m sprint · t status"
	if state.Tab == domain.TabTrash {
		actions = "r restore · d delete"
	}
	bar := r.styles.BulkBar.Render(fmt.Sprintf("%s  %s  (esc to clear)", count, actions))
	return bar + "\n"
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	switch state.InputMode {
	case "filter", "sprint":
		return r.styles.Filter.Render(state.Prompt) + state.TextInput + "█"
	case "status":
		var opts []string
		for i, option := range state.StatusOptions {
			opts = append(opts, fmt.Sprintf("%d %s", i+1, option))
		}
		return r.styles.Filter.Render("Status: ") + strings.Join(opts, "  ") + r.styles.Dim.Render("  (esc to cancel)")
	case "delete-confirm":
		target := "1 issue"
		if state.SelectedCount > 1 {
			target = fmt.Sprintf("%d issues", state.SelectedCount)
		}
		return r.styles.Confirm.Render(fmt.Sprintf("Move %s to trash? (y/n)", target))
	}

	parts := []string{}
	if state.ErrorMessage != "" {
		parts = append(parts, r.styles.StatusError.Render(state.ErrorMessage))
	}
	if state.ToastMessage != "" {
		toast := r.styles.Toast.Render(state.ToastMessage)
		if state.ToastCanUndo {
			toast += r.styles.ToastUndo.Render("  (u to undo)")
		}
		parts = append(parts, toast)
	}
	if state.SelectionText != "" {
		parts = append(parts, r.styles.Announce.Render(state.SelectionText))
	}
	parts = append(parts, r.styles.Status.Render(fmt.Sprintf("%d issues", state.TotalCount)))
	parts = append(parts, r.styles.Help.Render("? help · q quit"))

	return strings.Join(parts, r.styles.Dim.Render(" │ "))
}
