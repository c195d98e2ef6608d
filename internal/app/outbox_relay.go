package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// RelayConfig controls the outbox polling loop.
type RelayConfig struct {
	Interval  time.Duration
	BatchSize int
}

// OutboxRelay moves committed domain events from the outbox to the event
// publisher. Records are published in order; the first failure ends the
// batch so later events for the same aggregate are not delivered ahead of
// it. Delivery is at least once.
type OutboxRelay struct {
	store     ports.OutboxStore
	publisher ports.EventPublisher
	recorder  ports.RelayRecorder
	cfg       RelayConfig
	now       func() time.Time
	logger    *slog.Logger
}

// NewOutboxRelay creates an OutboxRelay. recorder and logger may be nil.
func NewOutboxRelay(store ports.OutboxStore, publisher ports.EventPublisher, recorder ports.RelayRecorder, cfg RelayConfig, logger *slog.Logger) *OutboxRelay {
	logger = logging.OrDiscard(logger)
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &OutboxRelay{
		store:     store,
		publisher: publisher,
		recorder:  recorder,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

// Run flushes the outbox every Interval until ctx is canceled.
func (r *OutboxRelay) Run(ctx context.Context) {
	r.logger.InfoContext(ctx, "outbox relay started",
		slog.Duration("interval", r.cfg.Interval),
		slog.Int("batch_size", r.cfg.BatchSize),
	)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
			r.logger.ErrorContext(ctx, "outbox flush failed",
				slog.String("operation", "OutboxRelay.Run"),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			r.logger.InfoContext(context.WithoutCancel(ctx), "outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

// Flush publishes one batch of pending records and returns how many were
// published. A publish failure is recorded on the record and stops the
// batch without returning an error; store failures are returned.
func (r *OutboxRelay) Flush(ctx context.Context) (int, error) {
	records, err := r.store.Pending(ctx, r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("reading pending events: %w", err)
	}

	published := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return published, err
		}

		pubErr := r.publisher.Publish(ctx, rec)
		r.record(ctx, rec.EventName, pubErr)

		if pubErr != nil {
			r.logger.WarnContext(ctx, "failed to publish event",
				slog.String("event_id", rec.EventID),
				slog.String("event_name", rec.EventName),
				slog.Int("attempts", rec.Attempts+1),
				slog.Any("error", pubErr),
			)
			if err := r.store.MarkFailed(ctx, rec.EventID, pubErr.Error()); err != nil {
				return published, fmt.Errorf("marking event %s failed: %w", rec.EventID, err)
			}
			break
		}

		if err := r.store.MarkPublished(ctx, rec.EventID, r.now().UTC()); err != nil {
			return published, fmt.Errorf("marking event %s published: %w", rec.EventID, err)
		}
		published++
	}

	if r.recorder != nil {
		if n, err := r.store.PendingCount(ctx); err == nil {
			r.recorder.OutboxPending(ctx, n)
		}
	}
	return published, nil
}

func (r *OutboxRelay) record(ctx context.Context, name string, err error) {
	if r.recorder != nil {
		r.recorder.EventPublished(ctx, name, err)
	}
}
