package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIssuesLoaded     EventType = "IssuesLoaded"
	EventIssuesUpdated    EventType = "IssuesUpdated"
	EventIssuesArchived   EventType = "IssuesArchived"
	EventIssuesDeleted    EventType = "IssuesDeleted"
	EventIssuesRestored   EventType = "IssuesRestored"
	EventIssueOpened      EventType = "IssueOpened"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IssuesLoadedEvent is emitted when the store has loaded the issue set
type IssuesLoadedEvent struct {
	Count int
}

func (e IssuesLoadedEvent) Type() EventType { return EventIssuesLoaded }

// IssuesUpdatedEvent is emitted after a bulk field update completes
type IssuesUpdatedEvent struct {
	IDs   []string
	Patch IssuePatch
}

func (e IssuesUpdatedEvent) Type() EventType { return EventIssuesUpdated }

// IssuesArchivedEvent is emitted after issues are archived (or unarchived)
type IssuesArchivedEvent struct {
	IDs      []string
	Archived bool
}

func (e IssuesArchivedEvent) Type() EventType { return EventIssuesArchived }

// IssuesDeletedEvent is emitted after issues are soft-deleted to the trash
type IssuesDeletedEvent struct {
	IDs []string
}

func (e IssuesDeletedEvent) Type() EventType { return EventIssuesDeleted }

// IssuesRestoredEvent is emitted after issues are restored from the trash
type IssuesRestoredEvent struct {
	IDs []string
}

func (e IssuesRestoredEvent) Type() EventType { return EventIssuesRestored }

// IssueOpenedEvent is emitted when an issue detail view is requested
type IssueOpenedEvent struct {
	ID string
}

func (e IssueOpenedEvent) Type() EventType { return EventIssueOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DatabasePath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	IssueCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
