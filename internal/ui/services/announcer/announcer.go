package announcer

import (
	"fmt"

	"issuegrip/internal/ui/services/events"
	"issuegrip/internal/ui/services/selection"
)

// Service turns selection changes into the human-readable count string
// shown in the status bar live region, for assistive output. The text is
// updated on every selection event and is empty when nothing is selected.
type Service struct {
	text string
}

// AnnouncementEvent carries the current live-region text
type AnnouncementEvent struct {
	Text string
}

// NewService creates an announcer subscribed to selection events
func NewService(bus events.EventBus) *Service {
	s := &Service{}
	bus.Subscribe("selection.SelectionChangedEvent", func(e interface{}) {
		if changed, ok := e.(selection.SelectionChangedEvent); ok {
			s.announce(bus, changed.Count)
		}
	})
	bus.Subscribe("selection.SelectionClearedEvent", func(e interface{}) {
		s.announce(bus, 0)
	})
	return s
}

// Text returns the current announcement ("" when nothing is selected)
func (s *Service) Text() string {
	return s.text
}

func (s *Service) announce(bus events.EventBus, count int) {
	old := s.text
	switch count {
	case 0:
		s.text = ""
	case 1:
		s.text = "1 item selected"
	default:
		s.text = fmt.Sprintf("%d items selected", count)
	}
	if s.text != old {
		bus.Publish(AnnouncementEvent{Text: s.text})
	}
}
