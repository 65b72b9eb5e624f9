package focus

// Origin records which input path last moved focus. The keyboard router
// uses it to disambiguate Enter: toggle inside a locally focused list,
// open the item when focus came from global j/k navigation.
type Origin int

const (
	OriginNone Origin = iota
	OriginPointer
	OriginLocal
	OriginGlobal
)

// Direction represents focus movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHome Direction = "home"
	DirectionEnd  Direction = "end"
)

// Event types for focus changes
type FocusChangedEvent struct {
	OldID string
	NewID string
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}
