package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchDiscarded EventType = "SearchDiscarded"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when a lookup request is issued
type SearchSubmittedEvent struct {
	RequestID uint64
	Query     string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// SearchCompletedEvent is emitted when the current lookup returns records
type SearchCompletedEvent struct {
	RequestID uint64
	Query     string
	Count     int
	Elapsed   time.Duration
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the current lookup fails
type SearchFailedEvent struct {
	RequestID uint64
	Query     string
	Message   string
	Elapsed   time.Duration
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a response arrives for a request that
// has been replaced by a newer submission
type SearchDiscardedEvent struct {
	RequestID uint64
	Query     string
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
