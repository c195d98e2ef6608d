package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// DefaultMaxAttempts is used when NewOutboxStore is given a non-positive limit.
const DefaultMaxAttempts = 10

// appendEvents writes events to the outbox inside tx, in emission order.
func appendEvents(ctx context.Context, tx *sql.Tx, events []domain.Event) error {
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding event %s: %w", e.EventName(), err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO outbox (event_id, event_name, aggregate_id, payload, occurred_on)
			 VALUES (?, ?, ?, ?, ?)`,
			e.EventID(), e.EventName(), e.AggregateID(), string(payload), formatTime(e.OccurredOn()),
		)
		if err != nil {
			return fmt.Errorf("writing event %s to outbox: %w", e.EventName(), err)
		}
	}
	return nil
}

// OutboxStore implements ports.OutboxStore. Records that have failed
// maxAttempts times are no longer returned by Pending and stay in the table
// for inspection.
type OutboxStore struct {
	db          *sql.DB
	maxAttempts int
}

// NewOutboxStore creates an OutboxStore.
func NewOutboxStore(db *sql.DB, maxAttempts int) *OutboxStore {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &OutboxStore{db: db, maxAttempts: maxAttempts}
}

// Pending returns up to limit unpublished records in commit order.
func (s *OutboxStore) Pending(ctx context.Context, limit int) (_ []ports.OutboxRecord, err error) {
	ctx, span := startSpan(ctx, "SELECT", "outbox")
	defer func() { endSpan(span, err) }()

	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id, event_name, aggregate_id, payload, occurred_on, attempts
		 FROM outbox
		 WHERE published_at IS NULL AND attempts < ?
		 ORDER BY seq
		 LIMIT ?`,
		s.maxAttempts, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying outbox: %w", err)
	}
	defer rows.Close()

	var out []ports.OutboxRecord
	for rows.Next() {
		var (
			rec      ports.OutboxRecord
			payload  string
			occurred string
		)
		if err := rows.Scan(&rec.EventID, &rec.EventName, &rec.AggregateID, &payload, &occurred, &rec.Attempts); err != nil {
			return nil, fmt.Errorf("scanning outbox row: %w", err)
		}
		if rec.OccurredOn, err = parseTime(occurred); err != nil {
			return nil, err
		}
		rec.Payload = []byte(payload)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// MarkPublished sets published_at. Returns domain.ErrNotFound for an
// unknown event id.
func (s *OutboxStore) MarkPublished(ctx context.Context, eventID string, at time.Time) (err error) {
	ctx, span := startSpan(ctx, "UPDATE", "outbox")
	defer func() { endSpan(span, err) }()

	res, err := s.db.ExecContext(ctx,
		`UPDATE outbox SET published_at = ? WHERE event_id = ?`,
		formatTime(at), eventID,
	)
	return expectOne(res, err, "outbox event", eventID)
}

// MarkFailed increments attempts and stores reason as the last error.
func (s *OutboxStore) MarkFailed(ctx context.Context, eventID, reason string) (err error) {
	ctx, span := startSpan(ctx, "UPDATE", "outbox")
	defer func() { endSpan(span, err) }()

	res, err := s.db.ExecContext(ctx,
		`UPDATE outbox SET attempts = attempts + 1, last_error = ? WHERE event_id = ?`,
		reason, eventID,
	)
	return expectOne(res, err, "outbox event", eventID)
}

// PendingCount counts records Pending would still return.
func (s *OutboxStore) PendingCount(ctx context.Context) (n int64, err error) {
	ctx, span := startSpan(ctx, "SELECT", "outbox")
	defer func() { endSpan(span, err) }()

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM outbox WHERE published_at IS NULL AND attempts < ?`,
		s.maxAttempts,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting outbox: %w", err)
	}
	return n, nil
}

// expectOne converts an Exec result that touched no rows into a not-found error.
func expectOne(res sql.Result, err error, kind, id string) error {
	if err != nil {
		return fmt.Errorf("writing %s %s: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("writing %s %s: %w", kind, id, err)
	}
	if n == 0 {
		return domain.NotFound("%s %s", kind, id)
	}
	return nil
}

// upsertResult maps a versioned upsert outcome to the domain error model.
func upsertResult(res sql.Result, err error, kind, id string) error {
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("%s %s violates a uniqueness constraint", kind, id)
		}
		if isForeignKeyViolation(err) {
			return domain.Conflict("%s %s references a missing record", kind, id)
		}
		return fmt.Errorf("writing %s %s: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("writing %s %s: %w", kind, id, err)
	}
	if n == 0 {
		return domain.Conflict("%s %s was modified concurrently", kind, id)
	}
	return nil
}

var _ ports.OutboxStore = (*OutboxStore)(nil)
