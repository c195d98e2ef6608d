package domain

import (
	"time"

	"github.com/google/uuid"
)

// CurrentEventVersion is the schema version stamped on every new event.
const CurrentEventVersion = 1

// Event is an immutable record of a state change, buffered by an aggregate
// until its persistence transaction commits.
type Event interface {
	EventID() string
	EventName() string
	AggregateID() string
	OccurredOn() time.Time
	EventVersion() int
}

// EventSource is implemented by aggregates that buffer domain events.
// Repository adapters drain it into the outbox on save.
type EventSource interface {
	DomainEvents() []Event
	ClearDomainEvents()
}

// EventBase carries the metadata common to every event. Concrete events
// embed it; its fields are flattened into the event's JSON payload.
type EventBase struct {
	ID       string    `json:"event_id"`
	Occurred time.Time `json:"occurred_on"`
	Version  int       `json:"event_version"`
}

// NewEventBase stamps a fresh event id and the current schema version.
func NewEventBase(now time.Time) EventBase {
	return EventBase{
		ID:       uuid.NewString(),
		Occurred: now,
		Version:  CurrentEventVersion,
	}
}

// EventID returns the unique event id.
func (b EventBase) EventID() string { return b.ID }

// OccurredOn returns when the event was recorded.
func (b EventBase) OccurredOn() time.Time { return b.Occurred }

// EventVersion returns the payload schema version.
func (b EventBase) EventVersion() int { return b.Version }

// EventBuffer accumulates events in emission order. It is not safe for
// concurrent use; it shares the single-writer discipline of its aggregate.
type EventBuffer struct {
	events []Event
}

// Record appends an event.
func (b *EventBuffer) Record(e Event) {
	b.events = append(b.events, e)
}

// Events returns a copy of the buffered events.
func (b *EventBuffer) Events() []Event {
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Len returns the number of buffered events.
func (b *EventBuffer) Len() int { return len(b.events) }

// Clear drops all buffered events.
func (b *EventBuffer) Clear() {
	b.events = nil
}
