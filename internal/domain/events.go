package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested  EventType = "PageRequested"
	EventPageLoaded     EventType = "PageLoaded"
	EventPageLoadFailed EventType = "PageLoadFailed"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent asks the page service to fetch and parse a page.
// Generation orders overlapping requests: the UI only accepts results
// carrying its latest generation, so stale completions are discarded.
type PageRequestedEvent struct {
	Address    PageAddress
	Kind       PageKind
	Generation uint64
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted when a page was fetched and parsed.
type PageLoadedEvent struct {
	Address    PageAddress
	Generation uint64
	Document   Document
	Raw        []byte // the fetched payload, kept for the source viewer
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageLoadFailedEvent is emitted when a fetch or parse failed.
type PageLoadFailedEvent struct {
	Address    PageAddress
	Generation uint64
	Err        error
}

func (e PageLoadFailedEvent) Type() EventType { return EventPageLoadFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	StartPage int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
