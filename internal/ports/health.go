package ports

import "context"

// HealthChecker reports whether a dependency can serve traffic. The SQLite
// store and the webhook publisher implement it.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "database".
	Name() string
	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered check for the readiness endpoint.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
