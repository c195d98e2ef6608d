package config

import (
	"net"
	"strconv"
)

const (
	defaultServerPort = 8080

	defaultDBMaxOpenConns = 1
	defaultBulkWorkers    = 4

	defaultOutboxBatchSize   = 100
	defaultOutboxMaxAttempts = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10

	// MinAuthSecretLength is the shortest HS256 key accepted.
	MinAuthSecretLength = 32
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":           "data/taskflow.db",
		"database.max_open_conns": defaultDBMaxOpenConns,
		"database.busy_timeout":   "5s",

		"auth.secret":      "",
		"auth.secret_file": "",
		"auth.issuer":      "",
		"auth.audience":    "",

		"app.bulk_workers": defaultBulkWorkers,

		"outbox.enabled":      false,
		"outbox.interval":     "1s",
		"outbox.batch_size":   defaultOutboxBatchSize,
		"outbox.max_attempts": defaultOutboxMaxAttempts,

		"webhook.url":                                    "",
		"webhook.secret":                                 "",
		"webhook.secret_file":                            "",
		"webhook.client.timeout":                         "10s",
		"webhook.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"webhook.client.retry.initial_interval":          "100ms",
		"webhook.client.retry.max_interval":              "10s",
		"webhook.client.retry.multiplier":                defaultRetryMultiplier,
		"webhook.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"webhook.client.circuit_breaker.timeout":         "30s",
		"webhook.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"webhook.client.rate_limit.requests_per_second":  0,
		"webhook.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskflow-service",
	}
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
