package query

import (
	"sort"
	"strings"

	"issuegrip/internal/domain"
	"issuegrip/internal/ui/services/events"
)

// Service is the ordered item source for the active view. It owns the
// current tab, filter and sort settings and produces the ordered id
// snapshot every other service addresses items through. The ordering is
// rebuilt whenever data, tab, filter or sort changes; consumers treat each
// snapshot as immutable.
type Service struct {
	bus      events.EventBus
	issues   map[string]*domain.Issue
	tab      domain.Tab
	filter   string
	sortMode SortMode
	ordered  []string
	indexOf  map[string]int
}

// NewService creates a new query service
func NewService(bus events.EventBus) *Service {
	return &Service{
		bus:      bus,
		issues:   make(map[string]*domain.Issue),
		tab:      domain.TabBacklog,
		sortMode: SortByUpdated,
		indexOf:  make(map[string]int),
	}
}

// SetIssues replaces the issue snapshot and rebuilds the order
func (s *Service) SetIssues(issues []*domain.Issue) {
	s.issues = make(map[string]*domain.Issue, len(issues))
	for _, issue := range issues {
		s.issues[issue.ID] = issue
	}
	s.rebuild()
}

// Tab returns the active tab
func (s *Service) Tab() domain.Tab { return s.tab }

// SetTab switches the active tab and rebuilds the order
func (s *Service) SetTab(tab domain.Tab) {
	s.tab = tab
	s.rebuild()
}

// Filter returns the active filter query
func (s *Service) Filter() string { return s.filter }

// SetFilter narrows the order to issues whose title matches the query
func (s *Service) SetFilter(query string) {
	s.filter = query
	s.rebuild()
}

// SortMode returns the active sort mode
func (s *Service) SortMode() SortMode { return s.sortMode }

// SetSortMode applies a sort mode directly; unknown modes are ignored
func (s *Service) SetSortMode(mode SortMode) {
	for _, known := range SortModes {
		if known == mode {
			s.sortMode = mode
			s.rebuild()
			return
		}
	}
}

// CycleSortMode advances to the next sort mode and rebuilds the order
func (s *Service) CycleSortMode() SortMode {
	for i, mode := range SortModes {
		if mode == s.sortMode {
			s.sortMode = SortModes[(i+1)%len(SortModes)]
			s.rebuild()
			return s.sortMode
		}
	}
	s.sortMode = SortByUpdated
	s.rebuild()
	return s.sortMode
}

// OrderedIDs returns the current ordered id snapshot
func (s *Service) OrderedIDs() []string { return s.ordered }

// Len returns the number of items in the current order
func (s *Service) Len() int { return len(s.ordered) }

// IDAt returns the id at an index ("" if out of range)
func (s *Service) IDAt(index int) string {
	if index < 0 || index >= len(s.ordered) {
		return ""
	}
	return s.ordered[index]
}

// IndexOf returns the position of an id in the order, or -1
func (s *Service) IndexOf(id string) int {
	if i, ok := s.indexOf[id]; ok {
		return i
	}
	return -1
}

// Issue returns the issue for an id (nil if unknown)
func (s *Service) Issue(id string) *domain.Issue {
	return s.issues[id]
}

// IssueAt returns the issue at an index (nil if out of range)
func (s *Service) IssueAt(index int) *domain.Issue {
	return s.issues[s.IDAt(index)]
}

// visible reports whether an issue belongs on the active tab
func (s *Service) visible(issue *domain.Issue) bool {
	switch s.tab {
	case domain.TabTrash:
		return issue.Deleted()
	case domain.TabSprint:
		return !issue.Deleted() && !issue.Archived() && issue.Sprint != ""
	default:
		return !issue.Deleted() && !issue.Archived() && issue.Sprint == ""
	}
}

func (s *Service) rebuild() {
	matched := make([]*domain.Issue, 0, len(s.issues))
	needle := strings.ToLower(s.filter)
	for _, issue := range s.issues {
		if !s.visible(issue) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(issue.Title), needle) {
			continue
		}
		matched = append(matched, issue)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch s.sortMode {
		case SortByCreated:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		case SortByTitle:
			if a.Title != b.Title {
				return strings.ToLower(a.Title) < strings.ToLower(b.Title)
			}
		case SortByStatus:
			if a.Status != b.Status {
				return statusRank(a.Status) < statusRank(b.Status)
			}
		default: // SortByUpdated
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.After(b.UpdatedAt)
			}
		}
		// Stable tie-break keeps the order deterministic across rebuilds
		return a.ID < b.ID
	})

	s.ordered = make([]string, len(matched))
	s.indexOf = make(map[string]int, len(matched))
	for i, issue := range matched {
		s.ordered[i] = issue.ID
		s.indexOf[issue.ID] = i
	}

	if s.bus != nil {
		s.bus.Publish(OrderChangedEvent{Count: len(s.ordered)})
	}
}

func statusRank(status domain.Status) int {
	for i, other := range domain.Statuses {
		if other == status {
			return i
		}
	}
	return len(domain.Statuses)
}
