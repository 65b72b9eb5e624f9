package focus

import (
	"issuegrip/internal/ui/services/events"
)

// Service owns the focus cursor for a list. Focus is a pure presentation
// position: moving it never changes the selection. Pointer hover and the
// keyboard both write the same cursor, last writer wins.
type Service struct {
	state   *State
	bus     events.EventBus
	orderFn func() []string // ordered item ids for the view
}

// State holds focus state
type State struct {
	FocusedID      string
	Origin         Origin
	ViewportOffset int
	ViewportHeight int
}

// NewService creates a new focus service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 20, // Default, will be updated
		},
		bus: bus,
	}
}

// SetOrderFunction sets the function that supplies the ordered id snapshot
func (s *Service) SetOrderFunction(fn func() []string) {
	s.orderFn = fn
}

func (s *Service) order() []string {
	if s.orderFn == nil {
		return nil
	}
	return s.orderFn()
}

// FocusedID returns the focused item id ("" if none)
func (s *Service) FocusedID() string {
	return s.state.FocusedID
}

// Origin returns the input path that last moved focus
func (s *Service) Origin() Origin {
	return s.state.Origin
}

// FocusedIndex returns the position of the focused item, or -1
func (s *Service) FocusedIndex() int {
	for i, id := range s.order() {
		if id == s.state.FocusedID {
			return i
		}
	}
	return -1
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate moves focus in a direction, clamped at both ends (no wraparound)
func (s *Service) Navigate(direction Direction, origin Origin) {
	order := s.order()
	if len(order) == 0 {
		return
	}

	index := s.FocusedIndex()
	switch direction {
	case DirectionUp:
		if index < 0 {
			index = 0
		} else if index > 0 {
			index--
		}
	case DirectionDown:
		if index < 0 {
			index = 0
		} else if index < len(order)-1 {
			index++
		}
	case DirectionHome:
		index = 0
	case DirectionEnd:
		index = len(order) - 1
	}

	s.focusIndex(order, index, origin)
}

// FocusOnHover focuses the hovered item unconditionally. Focus is sticky:
// leaving the row does not clear it, only focusing another item moves it.
func (s *Service) FocusOnHover(id string) {
	if id == "" {
		return
	}
	s.setFocus(id, OriginPointer)
	s.ensureVisible()
}

// Claim re-tags the current focus with a new origin without moving it.
// Toggling a row's checkbox hands local focus to the list even when the
// cursor got there through global navigation.
func (s *Service) Claim(origin Origin) {
	if s.state.FocusedID != "" {
		s.state.Origin = origin
	}
}

// PeekNext returns the id one step in the given direction from the current
// focus without moving it. Used to compute shift+arrow range targets.
func (s *Service) PeekNext(direction Direction) string {
	order := s.order()
	if len(order) == 0 {
		return ""
	}
	index := s.FocusedIndex()
	switch direction {
	case DirectionUp:
		if index <= 0 {
			index = 0
		} else {
			index--
		}
	case DirectionDown:
		if index < 0 {
			index = 0
		} else if index < len(order)-1 {
			index++
		}
	case DirectionHome:
		index = 0
	case DirectionEnd:
		index = len(order) - 1
	}
	return order[index]
}

// Reset clears focus entirely. Called on filter/tab/sort changes.
func (s *Service) Reset() {
	old := s.state.FocusedID
	s.state.FocusedID = ""
	s.state.Origin = OriginNone
	s.state.ViewportOffset = 0
	if old != "" {
		s.bus.Publish(FocusChangedEvent{OldID: old, NewID: ""})
	}
}

// Reconcile clears focus if the focused item left the ordered set
func (s *Service) Reconcile() {
	if s.state.FocusedID != "" && s.FocusedIndex() < 0 {
		s.Reset()
	}
}

func (s *Service) focusIndex(order []string, index int, origin Origin) {
	if index < 0 {
		index = 0
	}
	if index > len(order)-1 {
		index = len(order) - 1
	}
	s.setFocus(order[index], origin)
	s.ensureVisible()
}

func (s *Service) setFocus(id string, origin Origin) {
	old := s.state.FocusedID
	s.state.FocusedID = id
	s.state.Origin = origin
	if old != id {
		s.bus.Publish(FocusChangedEvent{OldID: old, NewID: id})
	}
}

func (s *Service) ensureVisible() {
	index := s.FocusedIndex()
	if index < 0 {
		return
	}
	if index < s.state.ViewportOffset {
		s.state.ViewportOffset = index
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	} else if index >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = index - s.state.ViewportHeight + 1
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
