package selection

// Event types
type SelectionChangedEvent struct {
	Count int
}

type SelectionClearedEvent struct{}
