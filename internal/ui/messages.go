package ui

import (
	"time"

	"issuegrip/internal/domain"
	"issuegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer so toast expiry shows without input
type tickMsg time.Time

// issuesLoadedMsg carries a fresh issue snapshot from the store
type issuesLoadedMsg struct {
	issues []*domain.Issue
	err    error
}

// pagerDoneMsg signals that an external pager has exited
type pagerDoneMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
