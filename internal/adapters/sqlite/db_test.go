package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/sqlite"
)

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := sqlite.Open(context.Background(), sqlite.Config{Path: "  "}); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM outbox`).Scan(&n); err != nil {
		t.Fatalf("outbox table missing after migrate: %v", err)
	}
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	_, err := db.Exec(`INSERT INTO project_members (project_id, user_id, role, joined_at)
		VALUES ('nope', 'nobody', 'MEMBER', '2026-01-01T00:00:00.000000000Z')`)
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestHealthChecker(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	hc := sqlite.NewHealthChecker(db)

	if hc.Name() != "database" {
		t.Errorf("Name() = %q, want %q", hc.Name(), "database")
	}
	if err := hc.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	_ = db.Close()
	if err := hc.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() on closed db should fail")
	} else if errors.Unwrap(err) == nil {
		t.Errorf("HealthCheck() error %v should wrap the ping error", err)
	}
}
