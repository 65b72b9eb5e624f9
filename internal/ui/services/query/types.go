package query

// SortMode determines the ordering of the issue list
type SortMode string

const (
	SortByUpdated SortMode = "updated"
	SortByCreated SortMode = "created"
	SortByTitle   SortMode = "title"
	SortByStatus  SortMode = "status"
)

// SortModes lists the sort modes in cycle order
var SortModes = []SortMode{SortByUpdated, SortByCreated, SortByTitle, SortByStatus}

// Event types
type OrderChangedEvent struct {
	Count int
}
