package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// StatusError reports that the downstream kept answering with a retryable
// status until the attempts ran out.
type StatusError struct {
	Service    string
	StatusCode int
	Attempts   int
	// RetryAfter is the delay the last response asked for, or zero.
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// delay returns the wait before retry number attempt (1 is the first
// retry): exponential growth capped at maxInterval, then jittered.
func (p retryConfig) delay(attempt int) time.Duration {
	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto randomness
	return time.Duration(max(d, 0))
}

// doWithRetry sends req up to maxAttempts times. Webhook deliveries carry a
// stable delivery id, so POST bodies are replayed like any other request.
// The final response is stored in *resp for the caller to close.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	var wait time.Duration
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.sleep(ctx, req, attempt, wait, lastErr); err != nil {
				return err
			}
		}
		rewindBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, wait = err, 0
			continue
		}
		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		wait = parseRetryAfter(r.Header.Get("Retry-After"), time.Now(), c.retryCfg.maxInterval)
		lastErr = &StatusError{
			Service:    c.serviceName,
			StatusCode: r.StatusCode,
			Attempts:   attempt + 1,
			RetryAfter: wait,
		}
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		discard(r)
	}
	return lastErr
}

// sleep waits out the backoff, or the server's Retry-After when longer.
func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	d := max(c.retryCfg.delay(attempt), retryAfter)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// snapshotBody reads and closes the request body so it can be replayed.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewindBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// parseRetryAfter reads Retry-After as delta seconds or an HTTP date
// relative to now, capped at limit. Past dates and garbage yield zero.
func parseRetryAfter(v string, now time.Time, limit time.Duration) time.Duration {
	if v == "" {
		return 0
	}
	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = at.Sub(now)
	}
	if d <= 0 {
		return 0
	}
	return min(d, limit)
}

// isRetryable treats transport failures as transient. A canceled or
// expired context is final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
