package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"issuegrip/internal/config"
	"issuegrip/internal/domain"
	"issuegrip/internal/eventbus"
	"issuegrip/internal/store"
	"issuegrip/internal/ui/coordinator"
	"issuegrip/internal/ui/input"
	inputtypes "issuegrip/internal/ui/input/types"
	"issuegrip/internal/ui/services/events"
	"issuegrip/internal/ui/services/focus"
	"issuegrip/internal/ui/services/query"
	"issuegrip/internal/ui/views"
)

// listID names the issue list in the keyboard router. There is a single
// list per view today; the router keeps the ownership rules honest.
const listID = "issues"

// Model is the root bubbletea model
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *store.Store

	coord        *coordinator.Coordinator
	inputHandler *input.Handler
	router       *input.Router
	renderer     *views.Renderer
	helpRender   *HelpRenderer
	pagerOps     *PagerOps
	program      *tea.Program

	width  int
	height int

	errorMessage     string
	filterEditing    bool
	filterBeforeEdit string
	pauseRendering   bool
	quitting         bool
}

// NewModel creates the root model and wires the UI services together
func NewModel(bus eventbus.EventBus, uiBus events.EventBus, cfg *config.Config, st *store.Store) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        st,
		coord:        coordinator.NewCoordinator(uiBus, st, bus),
		inputHandler: input.New(),
		router:       input.NewRouter(),
		renderer:     views.NewRenderer(),
		helpRender:   NewHelpRenderer(),
		pagerOps:     NewPagerOps(nil),
	}

	m.router.Register(listID)

	// Apply persisted UI settings
	m.coord.Query.SetSortMode(querySortMode(cfg.UISettings.SortMode))
	m.coord.SetTab(configTab(cfg.UISettings.DefaultTab))
	if cfg.UISettings.UndoWindowSeconds > 0 {
		m.coord.Bulk.SetUndoWindow(time.Duration(cfg.UISettings.UndoWindowSeconds) * time.Second)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadIssues(), tick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case issuesLoadedMsg:
		if msg.err != nil {
			log.Printf("loading issues failed: %v", msg.err)
			m.errorMessage = "Could not load issues"
			return m, nil
		}
		m.errorMessage = ""
		m.coord.SetIssues(msg.issues)

	case EventMsg:
		return m, m.handleDomainEvent(msg.Event)

	case tickMsg:
		return m, tick()

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("pager failed: %v", msg.err)
			m.errorMessage = "Pager failed"
		}

	case pauseRenderingMsg:
		m.pauseRendering = true

	case resumeRenderingMsg:
		m.pauseRendering = false
		return m, tea.ClearScreen

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.pauseRendering || m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	issues := make([]*domain.Issue, 0, m.coord.Query.Len())
	for _, id := range m.coord.Query.OrderedIDs() {
		issues = append(issues, m.coord.Query.Issue(id))
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Issues:         issues,
		FocusedID:      m.coord.Focus.FocusedID(),
		Selected:       m.coord.Selection.EffectiveSet(),
		Tab:            m.coord.Query.Tab(),
		SortMode:       string(m.coord.Query.SortMode()),
		FilterQuery:    m.coord.Query.Filter(),
		SelectedCount:  m.coord.Selection.Count(),
		TotalCount:     m.coord.Query.Len(),
		SelectionText:  m.coord.Announcer.Text(),
		ToastMessage:   m.coord.Toast.Message(),
		ToastCanUndo:   m.coord.Toast.CanUndo(),
		ErrorMessage:   m.errorMessage,
		ViewportOffset: m.coord.Focus.GetViewportOffset(),
		ViewportHeight: m.coord.Focus.GetViewportHeight(),
		InputMode:      m.inputHandler.ModeName(),
		Prompt:         m.inputHandler.Prompt(),
		StatusOptions:  m.inputHandler.StatusOptions(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.Value()
	}

	return m.renderer.Render(state)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Selection: m.coord.Selection,
		Focus:     m.coord.Focus,
		Query:     m.coord.Query,
		Toast:     m.coord.Toast,
		Router:    m.router,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if a.Global {
			m.router.ClearLocalFocus()
			m.coord.Focus.Navigate(focusDirection(a.Direction), originGlobal)
		} else {
			m.claimLocalFocus()
			m.coord.Focus.Navigate(focusDirection(a.Direction), originLocal)
		}

	case inputtypes.ExtendRangeAction:
		target := m.coord.Focus.PeekNext(focusDirection(a.Direction))
		if target == "" {
			return nil
		}
		m.coord.Selection.ExtendRange(target)
		m.coord.Focus.Navigate(focusDirection(a.Direction), originLocal)
		m.claimLocalFocus()

	case inputtypes.ToggleSelectAction:
		m.coord.Selection.ToggleFocused()
		m.coord.Focus.Claim(originLocal)
		m.claimLocalFocus()

	case inputtypes.ToggleSelectAllAction:
		m.coord.Selection.ToggleSelectAll()

	case inputtypes.DeselectAllAction:
		m.coord.Selection.DeselectAll()

	case inputtypes.OpenIssueAction:
		issue := m.coord.Query.Issue(m.coord.Focus.FocusedID())
		if issue == nil {
			return nil
		}
		m.bus.Publish(eventbus.IssueOpenedEvent{ID: issue.ID})
		return m.showPager(buildIssueDetail(issue))

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
			// Stash the pre-edit filter once per editing session so Esc
			// can revert the live preview
			if !m.filterEditing {
				m.filterEditing = true
				m.filterBeforeEdit = m.coord.Query.Filter()
			}
			m.coord.SetFilter(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeFilter:
			m.coord.SetFilter(a.Text)
			m.filterEditing = false
			m.filterBeforeEdit = ""
		case inputtypes.ModeSprint:
			m.ensureActionTarget()
			m.coord.Bulk.MoveToSprint(context.Background(), a.Text)
			return m.loadIssues()
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeFilter && m.filterEditing {
			m.coord.SetFilter(m.filterBeforeEdit)
			m.filterEditing = false
			m.filterBeforeEdit = ""
		}

	case inputtypes.ArchiveAction:
		m.ensureActionTarget()
		m.coord.Bulk.Archive(context.Background())
		return m.loadIssues()

	case inputtypes.DeleteAction:
		m.ensureActionTarget()
		m.coord.Bulk.Delete(context.Background())
		return m.loadIssues()

	case inputtypes.RestoreAction:
		m.ensureActionTarget()
		m.coord.Bulk.Restore(context.Background())
		return m.loadIssues()

	case inputtypes.MoveToSprintAction:
		m.ensureActionTarget()
		m.coord.Bulk.MoveToSprint(context.Background(), a.Sprint)
		return m.loadIssues()

	case inputtypes.ChangeStatusAction:
		m.ensureActionTarget()
		m.coord.Bulk.ChangeStatus(context.Background(), domain.Status(a.Status))
		return m.loadIssues()

	case inputtypes.UndoAction:
		if m.coord.Toast.Undo() {
			return m.loadIssues()
		}

	case inputtypes.SwitchTabAction:
		if a.Tab == "" {
			m.coord.NextTab()
		} else {
			m.coord.SetTab(domain.Tab(a.Tab))
		}

	case inputtypes.CycleSortAction:
		m.coord.CycleSortMode()

	case inputtypes.ClearFilterAction:
		m.coord.ClearFilter()

	case inputtypes.ToggleHelpAction:
		return m.showPager(m.helpRender.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.quitting = true
		if !a.Force {
			m.saveConfig()
		}
		return tea.Quit
	}

	return nil
}

// handleMouse maps pointer input onto the focus and selection services.
// Hover moves focus stickily; clicks own the selection: plain replaces,
// ctrl toggles, shift extends the range from the anchor.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if id := m.rowAt(msg.Y); id != "" {
			m.coord.Focus.FocusOnHover(id)
		}

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.coord.Focus.Navigate(focusDirection("up"), originGlobal)
		case tea.MouseButtonWheelDown:
			m.coord.Focus.Navigate(focusDirection("down"), originGlobal)
		case tea.MouseButtonLeft:
			id := m.rowAt(msg.Y)
			if id == "" {
				return nil
			}
			switch {
			case msg.Shift:
				m.coord.Selection.ExtendRange(id)
			case msg.Ctrl:
				m.coord.Selection.Toggle(id)
			default:
				m.coord.Selection.Replace(id)
			}
			m.coord.Focus.FocusOnHover(id)
			m.coord.Focus.Claim(originLocal)
			m.claimLocalFocus()
		}
	}

	return nil
}

// rowAt translates a terminal row to an issue id, "" when off-list
func (m *Model) rowAt(y int) string {
	index := y - views.ListTop + m.coord.Focus.GetViewportOffset()
	if index < 0 {
		return ""
	}
	return m.coord.Query.IDAt(index)
}

func (m *Model) handleDomainEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.IssuesUpdatedEvent, eventbus.IssuesArchivedEvent,
		eventbus.IssuesDeletedEvent, eventbus.IssuesRestoredEvent:
		return m.loadIssues()
	case eventbus.ErrorEvent:
		m.errorMessage = e.Message
	}
	return nil
}

// ensureActionTarget promotes the focused issue to a one-item selection
// when an action fires with nothing selected.
func (m *Model) ensureActionTarget() {
	if m.coord.Selection.HasSelection() {
		return
	}
	if focused := m.coord.Focus.FocusedID(); focused != "" {
		m.coord.Selection.Replace(focused)
	}
}

func (m *Model) claimLocalFocus() {
	m.router.SetLocalFocus(listID)
}

func (m *Model) loadIssues() tea.Cmd {
	return func() tea.Msg {
		issues, err := m.store.ListIssues(context.Background())
		return issuesLoadedMsg{issues: issues, err: err}
	}
}

// showPager returns a command that shows content in ov, pausing and
// resuming rendering around the handover.
func (m *Model) showPager(content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pagerOps.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerDoneMsg{err: err}
	}
}

func (m *Model) updateViewportHeight() {
	// Header, bulk bar and status bar chrome
	height := m.height - views.ListTop - 3
	if height < 1 {
		height = 1
	}
	m.coord.Focus.SetViewportHeight(height)
}

func (m *Model) saveConfig() {
	m.config.UISettings.DefaultTab = string(m.coord.Query.Tab())
	m.config.UISettings.SortMode = string(m.coord.Query.SortMode())
	cs := config.NewConfigServiceWithBus(m.bus)
	if err := cs.Save(m.config); err != nil {
		log.Printf("saving config failed: %v", err)
	}
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

const (
	originLocal  = focus.OriginLocal
	originGlobal = focus.OriginGlobal
)

func focusDirection(direction string) focus.Direction {
	return focus.Direction(direction)
}

func querySortMode(mode string) query.SortMode {
	return query.SortMode(mode)
}

func configTab(tab string) domain.Tab {
	for _, known := range domain.Tabs {
		if string(known) == tab {
			return known
		}
	}
	return domain.TabBacklog
}
