package announcer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuegrip/internal/ui/services/events"
	"issuegrip/internal/ui/services/selection"
)

func TestAnnouncesCountChanges(t *testing.T) {
	bus := events.NewBus()
	var announced []string
	bus.Subscribe("announcer.AnnouncementEvent", func(e interface{}) {
		announced = append(announced, e.(AnnouncementEvent).Text)
	})
	s := NewService(bus)

	bus.Publish(selection.SelectionChangedEvent{Count: 1})
	assert.Equal(t, "1 item selected", s.Text())

	bus.Publish(selection.SelectionChangedEvent{Count: 4})
	assert.Equal(t, "4 items selected", s.Text())

	bus.Publish(selection.SelectionClearedEvent{})
	assert.Equal(t, "", s.Text())

	require.Equal(t, []string{"1 item selected", "4 items selected", ""}, announced)
}

func TestNoDuplicateAnnouncements(t *testing.T) {
	bus := events.NewBus()
	var announced []string
	bus.Subscribe("announcer.AnnouncementEvent", func(e interface{}) {
		announced = append(announced, e.(AnnouncementEvent).Text)
	})
	NewService(bus)

	bus.Publish(selection.SelectionChangedEvent{Count: 2})
	bus.Publish(selection.SelectionChangedEvent{Count: 2})

	assert.Len(t, announced, 1)
}
