package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const taskColumns = `id, project_id, title, description, status, priority, assignee_id,
	created_by, due_date, created_at, updated_at, version`

// TaskRepository implements ports.TaskRepository.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save upserts t and appends its buffered events to the outbox in one
// transaction. The buffer is cleared and the version advanced only after
// the commit succeeds.
func (r *TaskRepository) Save(ctx context.Context, t *task.Task) (err error) {
	ctx, span := startSpan(ctx, "UPSERT", "tasks")
	defer func() { endSpan(span, err) }()

	s := t.Snapshot()
	next := s.Version + 1
	events := t.DomainEvents()

	err = inTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (`+taskColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			     title = excluded.title,
			     description = excluded.description,
			     status = excluded.status,
			     priority = excluded.priority,
			     assignee_id = excluded.assignee_id,
			     due_date = excluded.due_date,
			     updated_at = excluded.updated_at,
			     version = excluded.version
			 WHERE tasks.version = ?`,
			s.ID, s.ProjectID, s.Title, s.Description, string(s.Status), int(s.Priority), nullable(s.AssigneeID),
			s.CreatedBy, formatOptionalTime(s.DueDate), formatTime(s.CreatedAt), formatTime(s.UpdatedAt), next,
			s.Version,
		)
		if err := upsertResult(res, err, "task", s.ID); err != nil {
			return err
		}
		return appendEvents(ctx, tx, events)
	})
	if err != nil {
		return err
	}

	t.ClearDomainEvents()
	t.SetVersion(next)
	return nil
}

// FindByID returns domain.ErrNotFound if absent.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (_ *task.Task, err error) {
	ctx, span := startSpan(ctx, "SELECT", "tasks")
	defer func() { endSpan(span, err) }()

	t, err := scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("task %s", id)
	}
	return t, err
}

// FindByProjectID returns the project's tasks ordered by creation time.
func (r *TaskRepository) FindByProjectID(ctx context.Context, projectID string) ([]*task.Task, error) {
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at, id`,
		projectID,
	)
}

// FindByAssigneeID returns tasks assigned to assigneeID across projects.
func (r *TaskRepository) FindByAssigneeID(ctx context.Context, assigneeID string) ([]*task.Task, error) {
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE assignee_id = ? ORDER BY created_at, id`,
		assigneeID,
	)
}

// FindOverdue returns tasks due strictly before now that are not DONE,
// oldest due date first.
func (r *TaskRepository) FindOverdue(ctx context.Context, now time.Time) ([]*task.Task, error) {
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE due_date IS NOT NULL AND due_date < ? AND status <> ?
		 ORDER BY due_date, id`,
		formatTime(now), string(task.StatusDone),
	)
}

// Delete returns domain.ErrNotFound if absent.
func (r *TaskRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "DELETE", "tasks")
	defer func() { endSpan(span, err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return expectOne(res, err, "task", id)
}

func (r *TaskRepository) query(ctx context.Context, q string, args ...any) (_ []*task.Task, err error) {
	ctx, span := startSpan(ctx, "SELECT", "tasks")
	defer func() { endSpan(span, err) }()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var out []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		s                    task.Snapshot
		status               string
		priority             int
		assignee, due        sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&s.ID, &s.ProjectID, &s.Title, &s.Description, &status, &priority, &assignee,
		&s.CreatedBy, &due, &createdAt, &updatedAt, &s.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	s.Status = task.Status(status)
	s.Priority = task.Priority(priority)
	s.AssigneeID = assignee.String
	if !s.Status.IsValid() || !s.Priority.IsValid() {
		return nil, fmt.Errorf("task %s has corrupt status %q or priority %d", s.ID, status, priority)
	}
	if s.DueDate, err = parseOptionalTime(due); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return task.Rehydrate(s), nil
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
