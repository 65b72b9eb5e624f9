package coordinator

import (
	"issuegrip/internal/domain"
	"issuegrip/internal/eventbus"
	"issuegrip/internal/ui/services/announcer"
	"issuegrip/internal/ui/services/bulk"
	"issuegrip/internal/ui/services/events"
	"issuegrip/internal/ui/services/focus"
	"issuegrip/internal/ui/services/query"
	"issuegrip/internal/ui/services/selection"
	"issuegrip/internal/ui/services/toast"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Query     *query.Service
	Selection *selection.Service
	Focus     *focus.Service
	Toast     *toast.Service
	Bulk      *bulk.Service
	Announcer *announcer.Service

	bus events.EventBus
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus, api bulk.MutationAPI, domainBus eventbus.EventBus) *Coordinator {
	c := &Coordinator{
		Query:     query.NewService(bus),
		Selection: selection.NewService(bus),
		Focus:     focus.NewService(bus),
		Toast:     toast.NewService(bus),
		Announcer: announcer.NewService(bus),
		bus:       bus,
	}
	c.Bulk = bulk.NewService(api, c.Selection, c.Toast, domainBus)

	c.wireServices()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	// Selection and focus resolve ids against the live visible order,
	// so ranges are computed over current positions, never stale ones
	c.Selection.SetOrderFunction(func() []string {
		return c.Query.OrderedIDs()
	})
	c.Focus.SetOrderFunction(func() []string {
		return c.Query.OrderedIDs()
	})

	// Range extension pivots on the focused row when no anchor exists yet
	c.Selection.SetFocusFunction(func() string {
		return c.Focus.FocusedID()
	})
}

// SetIssues replaces the issue snapshot and drops selection and focus
// entries for items that no longer exist.
func (c *Coordinator) SetIssues(issues []*domain.Issue) {
	c.Query.SetIssues(issues)
	c.Selection.Reconcile()
	c.Focus.Reconcile()
}

// SetTab switches the visible tab. Selection and focus are cleared before
// the list rebuilds so no transient state leaks across views.
func (c *Coordinator) SetTab(tab domain.Tab) {
	if tab == c.Query.Tab() {
		return
	}
	c.resetView()
	c.Query.SetTab(tab)
}

// NextTab advances to the next tab in display order
func (c *Coordinator) NextTab() {
	current := c.Query.Tab()
	for i, tab := range domain.Tabs {
		if tab == current {
			c.SetTab(domain.Tabs[(i+1)%len(domain.Tabs)])
			return
		}
	}
	c.SetTab(domain.Tabs[0])
}

// SetFilter applies a filter query, clearing selection and focus first
func (c *Coordinator) SetFilter(filterQuery string) {
	if filterQuery == c.Query.Filter() {
		return
	}
	c.resetView()
	c.Query.SetFilter(filterQuery)
}

// ClearFilter removes the active filter
func (c *Coordinator) ClearFilter() {
	c.SetFilter("")
}

// CycleSortMode advances the sort order, clearing selection and focus first
func (c *Coordinator) CycleSortMode() query.SortMode {
	c.resetView()
	return c.Query.CycleSortMode()
}

func (c *Coordinator) resetView() {
	c.Selection.Reset()
	c.Focus.Reset()
}
