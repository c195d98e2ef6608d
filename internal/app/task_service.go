package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskflow-service/internal/app/fanout"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// DefaultBulkWorkers bounds BulkChangeStatus concurrency when the caller
// passes a non-positive value.
const DefaultBulkWorkers = 4

// access is the capability a task operation needs on the owning project.
type access int

const (
	accessView access = iota
	accessEdit
)

// TaskService implements ports.TaskService. Task state rules live in the
// Task aggregate; project membership rules live in the Project aggregate.
// The service loads both and saves the task.
type TaskService struct {
	tasks       ports.TaskRepository
	projects    ports.ProjectRepository
	bulkWorkers int
	now         func() time.Time
	newID       func() string
	logger      *slog.Logger
}

// NewTaskService creates a TaskService. bulkWorkers bounds the concurrency of
// BulkChangeStatus. A nil logger discards output.
func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, bulkWorkers int, logger *slog.Logger) *TaskService {
	logger = logging.OrDiscard(logger)
	if bulkWorkers <= 0 {
		bulkWorkers = DefaultBulkWorkers
	}
	return &TaskService{
		tasks:       tasks,
		projects:    projects,
		bulkWorkers: bulkWorkers,
		now:         time.Now,
		newID:       uuid.NewString,
		logger:      logger,
	}
}

// CreateTask creates a task in an active project. If cmd.AssigneeID is set
// the task is assigned at creation and the assignee must be a project member.
func (s *TaskService) CreateTask(ctx context.Context, cmd ports.CreateTaskCommand) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.String("project_id", cmd.ProjectID),
		slog.String("created_by", cmd.CreatedBy),
	)

	t, err := task.New(task.Params{
		ID:          s.newID(),
		Title:       cmd.Title,
		Description: cmd.Description,
		ProjectID:   cmd.ProjectID,
		CreatedBy:   cmd.CreatedBy,
		Priority:    cmd.Priority,
		DueDate:     cmd.DueDate,
	})
	if err != nil {
		return nil, err
	}

	p, err := s.authorize(ctx, "CreateTask", cmd.ProjectID, cmd.CreatedBy, accessEdit)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, domain.Conflict("project %s is inactive", p.ID())
	}
	if cmd.AssigneeID != "" {
		if !p.IsMember(cmd.AssigneeID) {
			return nil, domain.NewValidationError("assignee_id", "must be a project member")
		}
		t.AssignTo(cmd.AssigneeID, cmd.CreatedBy)
	}

	if err := s.save(ctx, "CreateTask", t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTask returns the task if actingUserID may view its project.
func (s *TaskService) GetTask(ctx context.Context, actingUserID, id string) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.String("task_id", id))

	t, err := s.load(ctx, "GetTask", id)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, "GetTask", t.ProjectID(), actingUserID, accessView); err != nil {
		return nil, err
	}
	return t, nil
}

// ListProjectTasks returns every task in the project.
func (s *TaskService) ListProjectTasks(ctx context.Context, actingUserID, projectID string) ([]*task.Task, error) {
	s.logger.InfoContext(ctx, "listing project tasks", slog.String("project_id", projectID))

	if _, err := s.authorize(ctx, "ListProjectTasks", projectID, actingUserID, accessView); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.FindByProjectID(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list project tasks",
			slog.String("operation", "ListProjectTasks"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// ListAssignedTasks returns tasks assigned to actingUserID in projects the
// user can still view.
func (s *TaskService) ListAssignedTasks(ctx context.Context, actingUserID string) ([]*task.Task, error) {
	s.logger.InfoContext(ctx, "listing assigned tasks", slog.String("user_id", actingUserID))

	tasks, err := s.tasks.FindByAssigneeID(ctx, actingUserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list assigned tasks",
			slog.String("operation", "ListAssignedTasks"),
			slog.String("user_id", actingUserID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s.visible(ctx, "ListAssignedTasks", actingUserID, tasks)
}

// ListOverdueTasks returns overdue tasks in projects actingUserID can view.
func (s *TaskService) ListOverdueTasks(ctx context.Context, actingUserID string) ([]*task.Task, error) {
	s.logger.InfoContext(ctx, "listing overdue tasks", slog.String("user_id", actingUserID))

	tasks, err := s.tasks.FindOverdue(ctx, s.now().UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list overdue tasks",
			slog.String("operation", "ListOverdueTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s.visible(ctx, "ListOverdueTasks", actingUserID, tasks)
}

// ChangeStatus moves the task along the status transition graph.
func (s *TaskService) ChangeStatus(ctx context.Context, actingUserID, id string, status task.Status) (*task.Task, error) {
	s.logger.InfoContext(ctx, "changing task status",
		slog.String("task_id", id),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}
	return s.mutate(ctx, "ChangeStatus", actingUserID, id, func(t *task.Task, _ *project.Project) error {
		return t.ChangeStatus(status, actingUserID)
	})
}

// AssignTask assigns the task to a member of its project.
func (s *TaskService) AssignTask(ctx context.Context, actingUserID, id, assigneeID string) (*task.Task, error) {
	s.logger.InfoContext(ctx, "assigning task",
		slog.String("task_id", id),
		slog.String("assignee_id", assigneeID),
	)

	return s.mutate(ctx, "AssignTask", actingUserID, id, func(t *task.Task, p *project.Project) error {
		if !p.IsMember(assigneeID) {
			return domain.NewValidationError("assignee_id", "must be a project member")
		}
		t.AssignTo(assigneeID, actingUserID)
		return nil
	})
}

// ChangePriority sets the task's priority.
func (s *TaskService) ChangePriority(ctx context.Context, actingUserID, id string, priority task.Priority) (*task.Task, error) {
	s.logger.InfoContext(ctx, "changing task priority",
		slog.String("task_id", id),
		slog.String("priority", priority.Name()),
	)

	return s.mutate(ctx, "ChangePriority", actingUserID, id, func(t *task.Task, _ *project.Project) error {
		return t.ChangePriority(priority, actingUserID)
	})
}

// UpdateTask replaces the task's title and description.
func (s *TaskService) UpdateTask(ctx context.Context, actingUserID, id, title, description string) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", id))

	if strings.TrimSpace(title) == "" {
		return nil, domain.NewValidationError("title", domain.MsgRequired)
	}
	return s.mutate(ctx, "UpdateTask", actingUserID, id, func(t *task.Task, _ *project.Project) error {
		t.UpdateDetails(title, description)
		return nil
	})
}

// SetDueDate replaces the task's due date; nil clears it.
func (s *TaskService) SetDueDate(ctx context.Context, actingUserID, id string, due *time.Time) (*task.Task, error) {
	s.logger.InfoContext(ctx, "setting task due date", slog.String("task_id", id))

	return s.mutate(ctx, "SetDueDate", actingUserID, id, func(t *task.Task, _ *project.Project) error {
		t.SetDueDate(due)
		return nil
	})
}

// DeleteTask removes the task.
func (s *TaskService) DeleteTask(ctx context.Context, actingUserID, id string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", id))

	t, err := s.load(ctx, "DeleteTask", id)
	if err != nil {
		return err
	}
	if _, err := s.authorize(ctx, "DeleteTask", t.ProjectID(), actingUserID, accessEdit); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// BulkChangeStatus applies status changes to tasks of one project
// concurrently. Each change is loaded, transitioned and saved on its own, so
// one failure does not affect the others.
func (s *TaskService) BulkChangeStatus(ctx context.Context, actingUserID, projectID string, changes []ports.StatusChange) (*ports.BulkStatusResult, error) {
	s.logger.InfoContext(ctx, "bulk changing task status",
		slog.String("project_id", projectID),
		slog.Int("count", len(changes)),
	)

	if len(changes) == 0 {
		return nil, domain.NewValidationError("changes", "must not be empty")
	}
	if _, err := s.authorize(ctx, "BulkChangeStatus", projectID, actingUserID, accessEdit); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.bulkWorkers, changes, func(ctx context.Context, c ports.StatusChange) (*task.Task, error) {
		return s.applyStatusChange(ctx, actingUserID, projectID, c)
	})
	updated, failed := fanout.Split(changes, results)

	result := &ports.BulkStatusResult{Updated: updated}
	for _, f := range failed {
		s.logger.WarnContext(ctx, "bulk status change item failed",
			slog.String("operation", "BulkChangeStatus"),
			slog.String("task_id", f.Item.TaskID),
			slog.Any("error", f.Err),
		)
		result.Errors = append(result.Errors, ports.BulkStatusError{TaskID: f.Item.TaskID, Err: f.Err})
	}
	return result, nil
}

func (s *TaskService) applyStatusChange(ctx context.Context, actingUserID, projectID string, c ports.StatusChange) (*task.Task, error) {
	if !c.Status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", c.Status))
	}
	t, err := s.tasks.FindByID(ctx, c.TaskID)
	if err != nil {
		return nil, fmt.Errorf("loading task: %w", err)
	}
	if t.ProjectID() != projectID {
		return nil, domain.NotFound("task %s is not in project %s", c.TaskID, projectID)
	}
	if err := t.ChangeStatus(c.Status, actingUserID); err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return t, nil
}

// mutate loads the task and its project, checks edit access, applies change
// and saves the task. Errors from change pass through unlogged.
func (s *TaskService) mutate(ctx context.Context, op, actingUserID, id string, change func(*task.Task, *project.Project) error) (*task.Task, error) {
	t, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}
	p, err := s.authorize(ctx, op, t.ProjectID(), actingUserID, accessEdit)
	if err != nil {
		return nil, err
	}
	if err := change(t, p); err != nil {
		return nil, err
	}
	if err := s.save(ctx, op, t); err != nil {
		return nil, err
	}
	return t, nil
}

// authorize loads the project and checks that actingUserID has the needed
// access to it.
func (s *TaskService) authorize(ctx context.Context, op, projectID, actingUserID string, need access) (*project.Project, error) {
	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load project",
			slog.String("operation", op),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	switch need {
	case accessEdit:
		if !p.CanCreateTasks(actingUserID) {
			return nil, domain.Forbidden("user %s cannot modify tasks in project %s", actingUserID, projectID)
		}
	default:
		if !p.CanViewProject(actingUserID) {
			return nil, domain.Forbidden("user %s cannot view project %s", actingUserID, projectID)
		}
	}
	return p, nil
}

// visible drops tasks whose project actingUserID cannot view. Projects that
// no longer exist are skipped.
func (s *TaskService) visible(ctx context.Context, op, actingUserID string, tasks []*task.Task) ([]*task.Task, error) {
	canView := make(map[string]bool)
	out := make([]*task.Task, 0, len(tasks))

	for _, t := range tasks {
		pid := t.ProjectID()
		ok, seen := canView[pid]
		if !seen {
			p, err := s.projects.FindByID(ctx, pid)
			switch {
			case err == nil:
				ok = p.CanViewProject(actingUserID)
			case errors.Is(err, domain.ErrNotFound):
				ok = false
			default:
				s.logger.ErrorContext(ctx, "failed to load project",
					slog.String("operation", op),
					slog.String("project_id", pid),
					slog.Any("error", err),
				)
				return nil, fmt.Errorf("verifying project: %w", err)
			}
			canView[pid] = ok
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TaskService) load(ctx context.Context, op, id string) (*task.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load task",
			slog.String("operation", op),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading task: %w", err)
	}
	return t, nil
}

func (s *TaskService) save(ctx context.Context, op string, t *task.Task) error {
	if err := s.tasks.Save(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to save task",
			slog.String("operation", op),
			slog.String("task_id", t.ID()),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving task: %w", err)
	}
	return nil
}
