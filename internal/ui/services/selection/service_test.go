package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuegrip/internal/ui/services/events"
)

func newTestService(ids []string) (*Service, *[]interface{}) {
	bus := events.NewBus()
	var published []interface{}
	bus.Subscribe("selection.SelectionChangedEvent", func(e interface{}) {
		published = append(published, e)
	})
	bus.Subscribe("selection.SelectionClearedEvent", func(e interface{}) {
		published = append(published, e)
	})

	s := NewService(bus)
	s.SetOrderFunction(func() []string { return ids })
	return s, &published
}

func TestServiceToggleAndCount(t *testing.T) {
	s, published := newTestService([]string{"1", "2", "3", "4"})

	s.Toggle("2")
	assert.True(t, s.IsSelected("2"))
	assert.Equal(t, 1, s.Count())
	require.Len(t, *published, 1)
	assert.Equal(t, SelectionChangedEvent{Count: 1}, (*published)[0])
}

func TestServiceShiftArrowGrowThenShrink(t *testing.T) {
	// select item 1, shift+down twice, shift+up once
	s, _ := newTestService([]string{"1", "2", "3", "4"})

	s.Toggle("1")
	s.ExtendRange("2")
	s.ExtendRange("3")
	assert.Equal(t, []string{"1", "2", "3"}, s.Effective())

	s.ExtendRange("2")
	assert.Equal(t, []string{"1", "2"}, s.Effective())
}

func TestServiceExtendRangeUsesFocusedItemAsAnchor(t *testing.T) {
	s, _ := newTestService([]string{"1", "2", "3", "4", "5"})
	focused := "2"
	s.SetFocusFunction(func() string { return focused })

	// No click yet; shift-extend pivots on the hovered/focused row
	s.ExtendRange("4")
	assert.Equal(t, []string{"2", "3", "4"}, s.Effective())
}

func TestServiceToggleSelectAllTwice(t *testing.T) {
	s, _ := newTestService([]string{"1", "2", "3", "4", "5"})

	s.ToggleSelectAll()
	assert.Equal(t, 5, s.Count())

	s.ToggleSelectAll()
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.HasSelection())
}

func TestServiceResetPublishesCleared(t *testing.T) {
	s, published := newTestService([]string{"1", "2", "3"})

	s.Toggle("1")
	s.Reset()

	assert.False(t, s.HasSelection())
	assert.Equal(t, "", s.AnchorID())
	require.NotEmpty(t, *published)
	assert.Equal(t, SelectionClearedEvent{}, (*published)[len(*published)-1])
}

func TestServiceReconcileAfterExternalDeletion(t *testing.T) {
	ids := []string{"1", "2", "3"}
	s, _ := newTestService(nil)
	s.SetOrderFunction(func() []string { return ids })

	s.Toggle("1")
	s.Toggle("3")
	ids = []string{"1", "2"} // "3" deleted elsewhere
	s.Reconcile()

	assert.Equal(t, []string{"1"}, s.Effective())
}

func TestServiceIgnoresEmptyID(t *testing.T) {
	s, published := newTestService([]string{"1"})

	s.Toggle("")
	s.ExtendRange("")
	s.Replace("")

	assert.Empty(t, *published)
	assert.False(t, s.HasSelection())
}
