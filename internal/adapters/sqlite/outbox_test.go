package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/sqlite"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
)

// seedEvents saves n tasks, leaving one task.created event per task.
func seedEvents(t *testing.T, n int) *sqlite.OutboxStore {
	t.Helper()

	ctx := context.Background()
	db := newTestDB(t)
	seedUsers(t, db, "alice")
	seedProject(t, db, "proj-1", "alice")

	repo := sqlite.NewTaskRepository(db)
	for i := range n {
		tk := newTask(t, "task-"+string(rune('a'+i)), "proj-1")
		if err := repo.Save(ctx, tk); err != nil {
			t.Fatal(err)
		}
	}
	return sqlite.NewOutboxStore(db, 2)
}

func TestOutboxStore_PendingOrderAndLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seedEvents(t, 3)

	got, err := store.Pending(ctx, 2)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Pending() = %d records, want 2", len(got))
	}
	if got[0].AggregateID != "task-a" || got[1].AggregateID != "task-b" {
		t.Errorf("order = %s, %s", got[0].AggregateID, got[1].AggregateID)
	}
	if got[0].EventName != task.EventCreated || got[0].OccurredOn.IsZero() || len(got[0].Payload) == 0 {
		t.Errorf("record = %+v", got[0])
	}
}

func TestOutboxStore_MarkPublished(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seedEvents(t, 2)

	first, _ := store.Pending(ctx, 1)
	if err := store.MarkPublished(ctx, first[0].EventID, time.Now()); err != nil {
		t.Fatalf("MarkPublished() error = %v", err)
	}

	rest, _ := store.Pending(ctx, 10)
	if len(rest) != 1 || rest[0].AggregateID != "task-b" {
		t.Errorf("Pending() after ack = %+v", rest)
	}
	if n, _ := store.PendingCount(ctx); n != 1 {
		t.Errorf("PendingCount() = %d, want 1", n)
	}

	if err := store.MarkPublished(ctx, "no-such-event", time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MarkPublished(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestOutboxStore_MarkFailedStopsAtMaxAttempts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seedEvents(t, 1)

	recs, _ := store.Pending(ctx, 1)
	id := recs[0].EventID

	if err := store.MarkFailed(ctx, id, "connection refused"); err != nil {
		t.Fatalf("MarkFailed() error = %v", err)
	}
	recs, _ = store.Pending(ctx, 1)
	if len(recs) != 1 || recs[0].Attempts != 1 {
		t.Fatalf("after one failure Pending() = %+v", recs)
	}

	if err := store.MarkFailed(ctx, id, "connection refused"); err != nil {
		t.Fatal(err)
	}
	recs, _ = store.Pending(ctx, 1)
	if len(recs) != 0 {
		t.Errorf("record with max attempts still pending: %+v", recs)
	}
	if n, _ := store.PendingCount(ctx); n != 0 {
		t.Errorf("PendingCount() = %d, want 0", n)
	}

	if err := store.MarkFailed(ctx, "no-such-event", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MarkFailed(unknown) error = %v, want ErrNotFound", err)
	}
}
