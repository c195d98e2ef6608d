package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// ProjectRepository persists Project aggregates.
// Implemented by the storage adapter; called by the application layer.
type ProjectRepository interface {
	// Save upserts the project keyed by ID. Buffered domain events are
	// written to the outbox in the same transaction and cleared on commit.
	// Returns domain.ErrConflict if the stored version no longer matches
	// the version the project was loaded with.
	Save(ctx context.Context, p *project.Project) error

	// FindByID returns domain.ErrNotFound if the project does not exist.
	FindByID(ctx context.Context, id string) (*project.Project, error)

	// FindByOwnerID returns projects owned by ownerID.
	FindByOwnerID(ctx context.Context, ownerID string) ([]*project.Project, error)

	// FindByMemberID returns projects where memberID holds any role.
	FindByMemberID(ctx context.Context, memberID string) ([]*project.Project, error)

	// FindActive returns all active projects.
	FindActive(ctx context.Context) ([]*project.Project, error)

	// Delete removes the project, its memberships and its tasks.
	// Returns domain.ErrNotFound if the project does not exist.
	Delete(ctx context.Context, id string) error
}

// TaskRepository persists Task aggregates.
type TaskRepository interface {
	// Save upserts the task keyed by ID, with the same outbox and
	// version semantics as ProjectRepository.Save.
	Save(ctx context.Context, t *task.Task) error

	// FindByID returns domain.ErrNotFound if the task does not exist.
	FindByID(ctx context.Context, id string) (*task.Task, error)

	FindByProjectID(ctx context.Context, projectID string) ([]*task.Task, error)
	FindByAssigneeID(ctx context.Context, assigneeID string) ([]*task.Task, error)

	// FindOverdue returns tasks whose due date is before now and whose
	// status is not DONE.
	FindOverdue(ctx context.Context, now time.Time) ([]*task.Task, error)

	// Delete returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}

// UserRepository persists User entities.
type UserRepository interface {
	// Save upserts the user keyed by ID. Returns domain.ErrConflict if the
	// email is already taken by another user or the version is stale.
	Save(ctx context.Context, u *user.User) error

	// FindByID returns domain.ErrNotFound if the user does not exist.
	FindByID(ctx context.Context, id string) (*user.User, error)

	// FindByEmail returns domain.ErrNotFound if no user has the address.
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)

	FindAll(ctx context.Context) ([]*user.User, error)

	// Delete returns domain.ErrNotFound if the user does not exist.
	Delete(ctx context.Context, id string) error
}
