package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.App.validate(),
		c.Outbox.validate(),
		c.Webhook.validate(c.Outbox.Enabled),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	if _, err := logging.ParseLevel(l.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Path == "" {
		errs = append(errs, errors.New("database.path must not be empty"))
	}
	if d.Path == ":memory:" {
		errs = append(errs, errors.New("database.path must be a file, not :memory:"))
	}
	if d.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if len(a.Secret) < MinAuthSecretLength {
		return fmt.Errorf("auth.secret must be at least %d bytes", MinAuthSecretLength)
	}
	return nil
}

func (a *AppConfig) validate() error {
	if a.BulkWorkers < 1 {
		return fmt.Errorf("app.bulk_workers must be >= 1, got %d", a.BulkWorkers)
	}
	return nil
}

func (o *OutboxConfig) validate() error {
	if !o.Enabled {
		return nil
	}

	var errs []error

	if o.Interval <= 0 {
		errs = append(errs, errors.New("outbox.interval must be positive"))
	}
	if o.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("outbox.batch_size must be >= 1, got %d", o.BatchSize))
	}
	if o.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("outbox.max_attempts must be >= 1, got %d", o.MaxAttempts))
	}

	return errors.Join(errs...)
}

// validate checks the webhook only when the relay will use it.
func (w *WebhookConfig) validate(required bool) error {
	if !required {
		return nil
	}

	var errs []error

	if w.URL == "" {
		errs = append(errs, errors.New("webhook.url must not be empty when outbox is enabled"))
	} else if u, err := url.Parse(w.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("webhook.url must be an absolute http(s) URL, got %q", w.URL))
	}
	errs = append(errs, w.Client.validate("webhook.client"))

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", prefix))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
