package events

import "time"

// Event codes published on the internal bus and, best-effort, to NATS.
const (
	TypeSessionExpired = "SESSION_EXPIRED"
	TypeSessionOpened  = "SESSION_OPENED"
	TypeScrapeStarted  = "SCRAPE_STARTED"
	TypeCompanyAdded   = "COMPANY_ADDED"
	TypeCompanyRemoved = "COMPANY_REMOVED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_EXPIRED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across the gateway.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
