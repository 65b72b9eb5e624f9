package selection

import (
	"issuegrip/internal/ui/services/events"
)

// Service handles selection logic for one list instance. It wraps the pure
// Model with the order and focus query functions wired in by the
// coordinator, and publishes change events for the announcer and views.
type Service struct {
	model   Model
	bus     events.EventBus
	orderFn func() []string // current ordered item ids for the view
	focusFn func() string   // currently focused item id ("" if none)
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		model: NewModel(),
		bus:   bus,
	}
}

// SetOrderFunction sets the function that supplies the ordered id snapshot
func (s *Service) SetOrderFunction(fn func() []string) {
	s.orderFn = fn
}

// SetFocusFunction sets the function that supplies the focused item id
func (s *Service) SetFocusFunction(fn func() string) {
	s.focusFn = fn
}

func (s *Service) order() []string {
	if s.orderFn == nil {
		return nil
	}
	return s.orderFn()
}

func (s *Service) focused() string {
	if s.focusFn == nil {
		return ""
	}
	return s.focusFn()
}

func (s *Service) publishChange() {
	count := len(s.model.Effective(s.order()))
	if count == 0 {
		s.bus.Publish(SelectionClearedEvent{})
		return
	}
	s.bus.Publish(SelectionChangedEvent{Count: count})
}

// Toggle toggles the selection state of a single item
func (s *Service) Toggle(id string) {
	if id == "" {
		return
	}
	s.model = s.model.ToggleOne(s.order(), id)
	s.publishChange()
}

// ToggleFocused toggles the currently focused item, if any
func (s *Service) ToggleFocused() {
	s.Toggle(s.focused())
}

// Replace selects solely the given item, discarding everything else
func (s *Service) Replace(id string) {
	if id == "" {
		return
	}
	s.model = s.model.ReplaceWithOne(id)
	s.publishChange()
}

// ExtendRange extends the pending range to the given item. The anchor
// defaults to the focused item when none has been established yet.
func (s *Service) ExtendRange(id string) {
	if id == "" {
		return
	}
	s.model = s.model.ExtendRangeTo(s.order(), id, s.focused())
	s.publishChange()
}

// ToggleSelectAll selects the full list, or clears it when already full
func (s *Service) ToggleSelectAll() {
	s.model = s.model.ToggleSelectAll(s.order())
	s.publishChange()
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	s.model = s.model.Clear()
	s.bus.Publish(SelectionClearedEvent{})
}

// Reset discards the model entirely. Called on filter/tab/sort changes,
// before the new order is rendered, so no frame shows stale selected ids.
func (s *Service) Reset() {
	s.model = NewModel()
	s.bus.Publish(SelectionClearedEvent{})
}

// Reconcile drops ids that left the ordered set (external deletions)
func (s *Service) Reconcile() {
	s.model = s.model.Reconcile(s.order())
}

// IsSelected checks if an item is in the effective selection
func (s *Service) IsSelected(id string) bool {
	return s.model.IsSelected(s.order(), id)
}

// Effective returns the effective selection in list order
func (s *Service) Effective() []string {
	return s.model.Effective(s.order())
}

// EffectiveSet returns the effective selection as a membership set
func (s *Service) EffectiveSet() map[string]bool {
	return s.model.EffectiveSet(s.order())
}

// Count returns the number of effectively selected items
func (s *Service) Count() int {
	return len(s.model.Effective(s.order()))
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return s.Count() > 0
}

// AnchorID returns the current range pivot ("" if none)
func (s *Service) AnchorID() string {
	return s.model.AnchorID()
}

// Snapshot returns the underlying pure model
func (s *Service) Snapshot() Model {
	return s.model
}
