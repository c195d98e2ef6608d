// Package webhook delivers outbox records to an HTTP endpoint. Each record
// is posted as a JSON envelope, optionally signed with HMAC-SHA256, through
// the resilient [httpclient.Client].
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Delivery headers.
const (
	HeaderEvent     = "X-Taskflow-Event"
	HeaderDelivery  = "X-Taskflow-Delivery"
	HeaderSignature = "X-Taskflow-Signature"
)

// Compile-time interface checks.
var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.HealthChecker  = (*Publisher)(nil)
)

// Options configures a Publisher.
type Options struct {
	// URL receives every delivery as a POST.
	URL string
	// Secret signs the body when non-empty.
	Secret string
	// Events lists event names or path.Match patterns ("task.*") to
	// forward. Empty forwards everything.
	Events []string
}

// Envelope is the JSON body of a delivery.
type Envelope struct {
	EventID     string          `json:"event_id"`
	EventName   string          `json:"event_name"`
	AggregateID string          `json:"aggregate_id"`
	OccurredOn  time.Time       `json:"occurred_on"`
	Attempt     int             `json:"attempt"`
	Payload     json.RawMessage `json:"payload"`
}

// Publisher implements [ports.EventPublisher] over HTTP.
type Publisher struct {
	client *httpclient.Client
	opts   Options
	logger *slog.Logger
}

// NewPublisher returns a Publisher posting to opts.URL through client.
func NewPublisher(client *httpclient.Client, opts Options, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		opts:   opts,
		logger: logging.OrDiscard(logger),
	}
}

// Publish posts rec to the webhook. Records filtered out by Options.Events
// are acknowledged without a request. Any non-2xx answer is an error so the
// relay retries the record later.
func (p *Publisher) Publish(ctx context.Context, rec ports.OutboxRecord) error {
	if !p.accepts(rec.EventName) {
		p.logger.DebugContext(ctx, "event filtered",
			slog.String("event_id", rec.EventID),
			slog.String("event_name", rec.EventName),
		)
		return nil
	}

	body, err := json.Marshal(Envelope{
		EventID:     rec.EventID,
		EventName:   rec.EventName,
		AggregateID: rec.AggregateID,
		OccurredOn:  rec.OccurredOn,
		Attempt:     rec.Attempts + 1,
		Payload:     json.RawMessage(rec.Payload),
	})
	if err != nil {
		return fmt.Errorf("marshaling event %s: %w", rec.EventID, err)
	}

	ctx = httpclient.WithRequestID(ctx, rec.EventID)
	ctx = httpclient.WithCorrelationID(ctx, rec.AggregateID)

	hdr := http.Header{}
	hdr.Set(HeaderEvent, rec.EventName)
	hdr.Set(HeaderDelivery, rec.EventID)
	if p.opts.Secret != "" {
		hdr.Set(HeaderSignature, Sign([]byte(p.opts.Secret), body))
	}

	resp, err := p.client.Post(ctx, p.opts.URL, "application/json", body, hdr)
	if err != nil {
		// Retries exhausted on a retryable status: report the receiver's answer.
		if resp != nil {
			defer p.closeBody(ctx, resp)
			return translateHTTPError(resp)
		}
		return fmt.Errorf("delivering event %s: %w", rec.EventID, err)
	}
	defer p.closeBody(ctx, resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := translateHTTPError(resp)
		p.logger.WarnContext(ctx, "webhook rejected event",
			slog.String("event_id", rec.EventID),
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Name identifies the publisher in the health registry.
func (p *Publisher) Name() string {
	return p.client.Name()
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}

func (p *Publisher) accepts(name string) bool {
	if len(p.opts.Events) == 0 {
		return true
	}
	for _, pattern := range p.opts.Events {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (p *Publisher) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	if err := resp.Body.Close(); err != nil {
		p.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
