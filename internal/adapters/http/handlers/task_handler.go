package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTask handles POST /api/v1/projects/{id}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	projectID, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), req.ToCommand(projectID, actor))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// ListProjectTasks handles GET /api/v1/projects/{id}/tasks.
func (h *TaskHandler) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	projectID, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeList(w, r, func(ctx context.Context) ([]*task.Task, error) {
		return h.svc.ListProjectTasks(ctx, actor, projectID)
	})
}

// BulkChangeStatus handles POST /api/v1/projects/{id}/tasks/status. Item
// failures are reported in the body; the response is 200 whenever the
// request itself was acceptable.
func (h *TaskHandler) BulkChangeStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	projectID, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BulkStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.BulkChangeStatus(r.Context(), actor, projectID, req.ToChanges())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBulkStatusResponse(result))
}

// ListAssignedTasks handles GET /api/v1/tasks/assigned.
func (h *TaskHandler) ListAssignedTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	h.writeList(w, r, func(ctx context.Context) ([]*task.Task, error) {
		return h.svc.ListAssignedTasks(ctx, actor)
	})
}

// ListOverdueTasks handles GET /api/v1/tasks/overdue.
func (h *TaskHandler) ListOverdueTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	h.writeList(w, r, func(ctx context.Context) ([]*task.Task, error) {
		return h.svc.ListOverdueTasks(ctx, actor)
	})
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	h.withTask(w, r, h.svc.GetTask)
}

// UpdateTask handles PUT /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.withTask(w, r, func(ctx context.Context, actor, id string) (*task.Task, error) {
		return h.svc.UpdateTask(ctx, actor, id, req.Title, req.Description)
	})
}

// ChangeStatus handles PUT /api/v1/tasks/{id}/status.
func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangeStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.withTask(w, r, func(ctx context.Context, actor, id string) (*task.Task, error) {
		return h.svc.ChangeStatus(ctx, actor, id, req.ParsedStatus())
	})
}

// AssignTask handles PUT /api/v1/tasks/{id}/assignee.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.withTask(w, r, func(ctx context.Context, actor, id string) (*task.Task, error) {
		return h.svc.AssignTask(ctx, actor, id, req.AssigneeID)
	})
}

// ChangePriority handles PUT /api/v1/tasks/{id}/priority.
func (h *TaskHandler) ChangePriority(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePriorityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.withTask(w, r, func(ctx context.Context, actor, id string) (*task.Task, error) {
		return h.svc.ChangePriority(ctx, actor, id, req.ParsedPriority())
	})
}

// SetDueDate handles PUT /api/v1/tasks/{id}/due-date.
func (h *TaskHandler) SetDueDate(w http.ResponseWriter, r *http.Request) {
	var req dto.SetDueDateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.withTask(w, r, func(ctx context.Context, actor, id string) (*task.Task, error) {
		return h.svc.SetDueDate(ctx, actor, id, req.DueDate)
	})
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), actor, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) withTask(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, actor, id string) (*task.Task, error),
) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := op(r.Context(), actor, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

func (h *TaskHandler) writeList(w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context) ([]*task.Task, error),
) {
	tasks, err := list(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}
