package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/noborus/ov/oviewer"

	"issuegrip/internal/domain"
)

// PagerOps shows full-screen content in the ov pager, handing the
// terminal over and restoring it afterwards.
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// buildIssueDetail renders the full issue body for the pager
func buildIssueDetail(issue *domain.Issue) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(issue.Title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Status:"), valueStyle.Render(string(issue.Status))))
	sprint := issue.Sprint
	if sprint == "" {
		sprint = "unassigned"
	}
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Sprint:"), valueStyle.Render(sprint)))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Created:"), valueStyle.Render(humanize.Time(issue.CreatedAt))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Updated:"), valueStyle.Render(humanize.Time(issue.UpdatedAt))))
	if issue.Archived() {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Archived:"), valueStyle.Render(humanize.Time(*issue.ArchivedAt))))
	}
	if issue.Deleted() {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Deleted:"), valueStyle.Render(humanize.Time(*issue.DeletedAt))))
	}

	b.WriteString("\n")
	if issue.Body != "" {
		b.WriteString(valueStyle.Render(issue.Body))
	} else {
		b.WriteString(dimStyle.Render("No description"))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("id: %s", issue.ID)))

	return b.String()
}
