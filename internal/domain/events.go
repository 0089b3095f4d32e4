package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBoardLoaded      EventType = "BoardLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventCardActivated    EventType = "CardActivated"
	EventFilterChanged    EventType = "FilterChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BoardLoadedEvent is emitted when a board has been read and its cards stored
type BoardLoadedEvent struct {
	Title string
	Cards int
}

func (e BoardLoadedEvent) Type() EventType { return EventBoardLoaded }

// SelectionChangedEvent is emitted after the selected card changes
type SelectionChangedEvent struct {
	Index  int
	CardID string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// CardActivatedEvent is emitted when the selected card is opened
type CardActivatedEvent struct {
	Index  int
	CardID string
}

func (e CardActivatedEvent) Type() EventType { return EventCardActivated }

// FilterChangedEvent is emitted when the visible card set changes because of a filter
type FilterChangedEvent struct {
	Query   string
	Visible int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
