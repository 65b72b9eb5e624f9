package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"issuegrip/internal/ui/services/events"
)

func TestUndoWithinWindow(t *testing.T) {
	s := NewService(events.NewBus())
	undone := false
	s.ShowUndoable("Archived 3 issues", func() { undone = true }, time.Minute)

	assert.True(t, s.CanUndo())
	assert.True(t, s.Undo())
	assert.True(t, undone)

	// Undo handlers fire once
	assert.False(t, s.Undo())
}

func TestUndoExpiresAfterWindow(t *testing.T) {
	s := NewService(events.NewBus())
	clock := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return clock })

	s.ShowUndoable("Deleted 2 issues", func() { t.Fatal("undo fired past deadline") }, time.Second)
	clock = clock.Add(2 * time.Second)

	assert.False(t, s.CanUndo())
	assert.False(t, s.Undo())
	assert.Equal(t, "", s.Message())
}

func TestPlainToastHasNoUndo(t *testing.T) {
	s := NewService(events.NewBus())
	s.Show("2 issues moved to week-35")

	assert.Equal(t, "2 issues moved to week-35", s.Message())
	assert.False(t, s.CanUndo())
}

func TestDismissClears(t *testing.T) {
	bus := events.NewBus()
	var cleared int
	bus.Subscribe("toast.ToastClearedEvent", func(interface{}) { cleared++ })

	s := NewService(bus)
	s.Show("hello")
	s.Dismiss()

	assert.Equal(t, "", s.Message())
	assert.Equal(t, 1, cleared)
}
