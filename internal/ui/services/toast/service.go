package toast

import (
	"time"

	"issuegrip/internal/ui/services/events"
)

// DefaultUndoWindow is how long an undoable toast keeps its undo handler
const DefaultUndoWindow = 8 * time.Second

// Event types
type ToastShownEvent struct {
	Message  string
	Undoable bool
}

type ToastClearedEvent struct{}

// Service is the status-bar notification channel. A toast optionally
// carries an undo handler that stays invocable until the deadline passes;
// after that the toast may still be visible but Undo becomes a no-op.
type Service struct {
	bus      events.EventBus
	message  string
	undo     func()
	deadline time.Time
	now      func() time.Time
}

// NewService creates a new toast service
func NewService(bus events.EventBus) *Service {
	return &Service{bus: bus, now: time.Now}
}

// SetClock overrides the time source (tests)
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Show displays a message with no undo affordance
func (s *Service) Show(message string) {
	s.ShowUndoable(message, nil, 0)
}

// ShowUndoable displays a message with an undo handler valid for the
// given window (DefaultUndoWindow when zero).
func (s *Service) ShowUndoable(message string, undo func(), window time.Duration) {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	s.message = message
	s.undo = undo
	s.deadline = s.now().Add(window)
	s.bus.Publish(ToastShownEvent{Message: message, Undoable: undo != nil})
}

// Message returns the current toast text ("" when none)
func (s *Service) Message() string {
	if s.message != "" && s.now().After(s.deadline) {
		s.clear()
	}
	return s.message
}

// CanUndo reports whether an undo handler is still invocable
func (s *Service) CanUndo() bool {
	return s.undo != nil && !s.now().After(s.deadline)
}

// Undo invokes the undo handler if still within the window. The handler
// runs once; a second call is a no-op.
func (s *Service) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	undo := s.undo
	s.clear()
	undo()
	return true
}

// Dismiss clears the toast without undoing
func (s *Service) Dismiss() {
	if s.message != "" {
		s.clear()
	}
}

func (s *Service) clear() {
	s.message = ""
	s.undo = nil
	s.bus.Publish(ToastClearedEvent{})
}
