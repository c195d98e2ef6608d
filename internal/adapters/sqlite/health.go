package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// HealthChecker reports whether the database answers a ping.
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker creates a HealthChecker for db.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name returns the identifier used in readiness responses.
func (h *HealthChecker) Name() string {
	return "database"
}

// HealthCheck pings the database within ctx's deadline.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

var _ ports.HealthChecker = (*HealthChecker)(nil)
