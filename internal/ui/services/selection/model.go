package selection

// Model is the pure selection state for a single list instance. All
// transition methods return a new Model; the receiver is never mutated.
// The ordered id snapshot for the view is passed in by the caller so that
// ranges are always computed over live positions, not cached indices.
type Model struct {
	committed map[string]bool
	anchorID  string
	// pendingEnd is the other end of an in-progress shift-range. It is
	// recomputed fresh on every extension, so reversing direction shrinks
	// the range instead of inverting it.
	pendingEnd string
}

// NewModel returns an empty selection
func NewModel() Model {
	return Model{committed: make(map[string]bool)}
}

func (m Model) clone() Model {
	committed := make(map[string]bool, len(m.committed))
	for id := range m.committed {
		committed[id] = true
	}
	return Model{committed: committed, anchorID: m.anchorID, pendingEnd: m.pendingEnd}
}

// AnchorID returns the current range pivot ("" if none)
func (m Model) AnchorID() string { return m.anchorID }

// PendingEnd returns the in-progress range target ("" if none)
func (m Model) PendingEnd() string { return m.pendingEnd }

// HasPendingRange reports whether a shift-range is in progress
func (m Model) HasPendingRange() bool {
	return m.anchorID != "" && m.pendingEnd != ""
}

// indexOf returns the position of id in order, or -1
func indexOf(order []string, id string) int {
	for i, other := range order {
		if other == id {
			return i
		}
	}
	return -1
}

// rangeBetween returns the closed interval between the positions of a and b,
// in list order, regardless of which one comes first. Ids missing from the
// order yield an empty range.
func rangeBetween(order []string, a, b string) []string {
	ai, bi := indexOf(order, a), indexOf(order, b)
	if ai < 0 || bi < 0 {
		return nil
	}
	if ai > bi {
		ai, bi = bi, ai
	}
	return order[ai : bi+1]
}

// CommitPendingRange folds the pending range into the committed set and
// clears the pending end. The anchor is left in place so a follow-up
// shift-gesture still pivots on it.
func (m Model) CommitPendingRange(order []string) Model {
	if !m.HasPendingRange() {
		return m
	}
	next := m.clone()
	for _, id := range rangeBetween(order, m.anchorID, m.pendingEnd) {
		next.committed[id] = true
	}
	next.pendingEnd = ""
	return next
}

// ToggleOne commits any pending range, then toggles id in the committed set
// and makes it the new anchor. Used for checkbox clicks, cmd/ctrl-clicks and
// Enter/Space on the focused row.
func (m Model) ToggleOne(order []string, id string) Model {
	next := m.CommitPendingRange(order).clone()
	if next.committed[id] {
		delete(next.committed, id)
	} else {
		next.committed[id] = true
	}
	next.anchorID = id
	next.pendingEnd = ""
	return next
}

// ReplaceWithOne discards the whole selection and selects only id
func (m Model) ReplaceWithOne(id string) Model {
	return Model{
		committed: map[string]bool{id: true},
		anchorID:  id,
	}
}

// ExtendRangeTo sets the pending range end to id. When no anchor exists yet
// the anchor defaults to fallback (normally the focused/hovered item) so a
// hover-then-shift gesture still works; failing that, id anchors itself.
func (m Model) ExtendRangeTo(order []string, id, fallback string) Model {
	next := m.clone()
	if next.anchorID == "" || indexOf(order, next.anchorID) < 0 {
		if fallback != "" && indexOf(order, fallback) >= 0 {
			next.anchorID = fallback
		} else {
			next.anchorID = id
		}
	}
	next.pendingEnd = id
	return next
}

// ToggleSelectAll selects every item in the order, or clears everything if
// the effective selection already covers the full list.
func (m Model) ToggleSelectAll(order []string) Model {
	effective := m.Effective(order)
	if len(order) > 0 && len(effective) == len(order) {
		return NewModel()
	}
	next := NewModel()
	for _, id := range order {
		next.committed[id] = true
	}
	return next
}

// Clear empties the selection. Focus is tracked elsewhere and survives.
func (m Model) Clear() Model {
	return NewModel()
}

// Effective returns the committed set unioned with the pending range,
// restricted to ids present in the order, in list order.
func (m Model) Effective(order []string) []string {
	selected := m.EffectiveSet(order)
	result := make([]string, 0, len(selected))
	for _, id := range order {
		if selected[id] {
			result = append(result, id)
		}
	}
	return result
}

// EffectiveSet returns the effective selection as a membership set
func (m Model) EffectiveSet(order []string) map[string]bool {
	selected := make(map[string]bool)
	for _, id := range order {
		if m.committed[id] {
			selected[id] = true
		}
	}
	if m.HasPendingRange() {
		for _, id := range rangeBetween(order, m.anchorID, m.pendingEnd) {
			selected[id] = true
		}
	}
	return selected
}

// IsSelected reports whether id is in the effective selection
func (m Model) IsSelected(order []string, id string) bool {
	return m.EffectiveSet(order)[id]
}

// Reconcile drops every reference to ids that are no longer part of the
// order, e.g. after an external deletion. Stale ids are dropped silently.
func (m Model) Reconcile(order []string) Model {
	next := NewModel()
	for _, id := range order {
		if m.committed[id] {
			next.committed[id] = true
		}
	}
	if indexOf(order, m.anchorID) >= 0 {
		next.anchorID = m.anchorID
		if indexOf(order, m.pendingEnd) >= 0 {
			next.pendingEnd = m.pendingEnd
		}
	}
	return next
}
