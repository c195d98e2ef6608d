package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// ProjectService defines the service port for project aggregate operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method except CreateProject takes the acting user's ID and enforces
// the project's permission rules for that user.
type ProjectService interface {
	// CreateProject creates a project owned by cmd.OwnerID.
	// Returns domain.ErrValidation if the input is invalid and
	// domain.ErrNotFound if the owner does not exist.
	CreateProject(ctx context.Context, cmd CreateProjectCommand) (*project.Project, error)

	// GetProject returns domain.ErrNotFound if the project does not exist
	// and domain.ErrForbidden if actingUserID is not a member.
	GetProject(ctx context.Context, actingUserID, id string) (*project.Project, error)

	// ListProjects returns the projects visible to actingUserID, narrowed
	// by scope.
	ListProjects(ctx context.Context, actingUserID string, scope ProjectScope) ([]*project.Project, error)

	UpdateProject(ctx context.Context, actingUserID, id, name, description string) (*project.Project, error)
	ActivateProject(ctx context.Context, actingUserID, id string) (*project.Project, error)
	DeactivateProject(ctx context.Context, actingUserID, id string) (*project.Project, error)

	// DeleteProject removes the project and its tasks. Only the owner may
	// delete; anyone else gets domain.ErrForbidden.
	DeleteProject(ctx context.Context, actingUserID, id string) error

	// AddMember returns domain.ErrNotFound if userID is not a known user.
	AddMember(ctx context.Context, actingUserID, projectID, userID string, role project.Role) (*project.Project, error)
	RemoveMember(ctx context.Context, actingUserID, projectID, userID string) (*project.Project, error)
	UpdateMemberRole(ctx context.Context, actingUserID, projectID, userID string, role project.Role) (*project.Project, error)
}

// ProjectScope narrows ListProjects.
type ProjectScope string

const (
	// ScopeMember lists every project the user belongs to.
	ScopeMember ProjectScope = "member"
	// ScopeOwned lists projects the user owns.
	ScopeOwned ProjectScope = "owned"
	// ScopeActive lists active projects the user belongs to.
	ScopeActive ProjectScope = "active"
)

// IsValid returns true if the scope is one of the defined constants.
func (s ProjectScope) IsValid() bool {
	switch s {
	case ScopeMember, ScopeOwned, ScopeActive:
		return true
	default:
		return false
	}
}

// CreateProjectCommand carries the inputs for ProjectService.CreateProject.
type CreateProjectCommand struct {
	Name        string
	Description string
	OwnerID     string
}

// TaskService defines the service port for task aggregate operations.
// Reads require the acting user to be a member of the task's project;
// mutations require project.CanCreateTasks.
type TaskService interface {
	// CreateTask returns domain.ErrConflict if the project is inactive and
	// domain.ErrValidation if the assignee is not a project member.
	CreateTask(ctx context.Context, cmd CreateTaskCommand) (*task.Task, error)

	GetTask(ctx context.Context, actingUserID, id string) (*task.Task, error)
	ListProjectTasks(ctx context.Context, actingUserID, projectID string) ([]*task.Task, error)

	// ListAssignedTasks returns tasks assigned to actingUserID.
	ListAssignedTasks(ctx context.Context, actingUserID string) ([]*task.Task, error)

	// ListOverdueTasks returns overdue tasks in projects actingUserID can view.
	ListOverdueTasks(ctx context.Context, actingUserID string) ([]*task.Task, error)

	ChangeStatus(ctx context.Context, actingUserID, id string, status task.Status) (*task.Task, error)

	// AssignTask returns domain.ErrValidation if assigneeID is not a member
	// of the task's project.
	AssignTask(ctx context.Context, actingUserID, id, assigneeID string) (*task.Task, error)

	ChangePriority(ctx context.Context, actingUserID, id string, priority task.Priority) (*task.Task, error)
	UpdateTask(ctx context.Context, actingUserID, id, title, description string) (*task.Task, error)

	// SetDueDate replaces the due date; nil clears it.
	SetDueDate(ctx context.Context, actingUserID, id string, due *time.Time) (*task.Task, error)

	DeleteTask(ctx context.Context, actingUserID, id string) error

	// BulkChangeStatus applies several status changes within one project
	// concurrently. Uses partial success semantics: each change succeeds or
	// fails independently. Returns a hard error only for request-level
	// failures (project not found, permission, empty request). Individual
	// failures are collected in BulkStatusResult.Errors.
	BulkChangeStatus(ctx context.Context, actingUserID, projectID string, changes []StatusChange) (*BulkStatusResult, error)
}

// CreateTaskCommand carries the inputs for TaskService.CreateTask.
// A zero Priority defaults to MEDIUM.
type CreateTaskCommand struct {
	Title       string
	Description string
	ProjectID   string
	CreatedBy   string
	Priority    task.Priority
	DueDate     *time.Time
	AssigneeID  string
}

// StatusChange pairs a task ID with its target status for bulk operations.
type StatusChange struct {
	TaskID string
	Status task.Status
}

// BulkStatusError records a single failed change within a bulk operation.
type BulkStatusError struct {
	TaskID string
	Err    error
}

// BulkStatusResult holds the outcomes of a bulk status change.
// Updated contains successfully saved tasks; Errors contains per-item failures.
type BulkStatusResult struct {
	Updated []*task.Task
	Errors  []BulkStatusError
}

// UserService defines the service port for user operations.
type UserService interface {
	// CreateUser returns domain.ErrConflict if the email is already taken.
	CreateUser(ctx context.Context, cmd CreateUserCommand) (*user.User, error)

	GetUser(ctx context.Context, id string) (*user.User, error)

	// FindByEmail normalizes email before lookup.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	ListUsers(ctx context.Context) ([]*user.User, error)
	UpdateUser(ctx context.Context, id string, changes user.Changes) (*user.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CreateUserCommand carries the inputs for UserService.CreateUser.
type CreateUserCommand struct {
	Email string
	Name  string
	Bio   string
}
