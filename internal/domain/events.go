package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTransitionStarted  EventType = "TransitionStarted"
	EventPageChanged        EventType = "PageChanged"
	EventTransitionSettled  EventType = "TransitionSettled"
	EventNavigationRejected EventType = "NavigationRejected"
	EventContactSubmitted   EventType = "ContactSubmitted"
	EventContentReloaded    EventType = "ContentReloaded"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TransitionStartedEvent is emitted when the navigator accepts a page change
type TransitionStartedEvent struct {
	From      int
	To        int
	Direction string
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// PageChangedEvent is emitted at the midpoint of a transition, when the
// incoming page becomes the current one
type PageChangedEvent struct {
	From  int
	To    int
	Title string
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// TransitionSettledEvent is emitted when a transition's full duration has
// elapsed and new requests are accepted again
type TransitionSettledEvent struct {
	Current int
}

func (e TransitionSettledEvent) Type() EventType { return EventTransitionSettled }

// NavigationRejectedEvent is emitted when a request is dropped
type NavigationRejectedEvent struct {
	Request string
	Current int
	Reason  string
}

func (e NavigationRejectedEvent) Type() EventType { return EventNavigationRejected }

// ContactSubmittedEvent is emitted after a (simulated) contact form submission
type ContactSubmittedEvent struct {
	ID      string
	Name    string
	Email   string
	Subject string
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ContentReloadedEvent is emitted when the portfolio document is reloaded from disk
type ContentReloadedEvent struct {
	Path string
}

func (e ContentReloadedEvent) Type() EventType { return EventContentReloaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Created bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
