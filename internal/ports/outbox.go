package ports

import (
	"context"
	"time"
)

// OutboxRecord is a domain event committed alongside its aggregate and
// waiting to be published.
type OutboxRecord struct {
	EventID     string
	EventName   string
	AggregateID string
	Payload     []byte
	OccurredOn  time.Time
	Attempts    int
}

// OutboxStore reads and acknowledges committed events. Writes happen inside
// the repository Save transactions, not through this port.
type OutboxStore interface {
	// Pending returns up to limit unpublished records, oldest first.
	Pending(ctx context.Context, limit int) ([]OutboxRecord, error)

	// MarkPublished acknowledges a record so it is never returned again.
	MarkPublished(ctx context.Context, eventID string, at time.Time) error

	// MarkFailed increments the attempt counter and stores the last error.
	MarkFailed(ctx context.Context, eventID string, reason string) error

	// PendingCount returns the number of unpublished records.
	PendingCount(ctx context.Context) (int64, error)
}

// EventPublisher delivers an outbox record to downstream consumers.
// Implementations must be safe to call again for the same record; the
// relay delivers at least once.
type EventPublisher interface {
	Publish(ctx context.Context, rec OutboxRecord) error
}

// RelayRecorder receives outbox relay outcomes for metrics.
type RelayRecorder interface {
	// EventPublished records one publish attempt; err is nil on success.
	EventPublished(ctx context.Context, eventName string, err error)

	// OutboxPending records the current backlog size.
	OutboxPending(ctx context.Context, n int64)
}
