// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// UserResponse represents a single user in HTTP responses.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserListResponse represents a list of users in HTTP responses.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Bio:       u.Bio(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt().Format(time.RFC3339),
	}
}

// ToUserListResponse converts domain users to a list response. An empty
// input renders as an empty JSON array.
func ToUserListResponse(users []*user.User) UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = ToUserResponse(u)
	}
	return UserListResponse{Users: items, Count: len(items)}
}

// MemberResponse represents a project member in HTTP responses.
type MemberResponse struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	OwnerID     string           `json:"owner_id"`
	IsActive    bool             `json:"is_active"`
	Members     []MemberResponse `json:"members"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	members := p.Members()
	items := make([]MemberResponse, len(members))
	for i, m := range members {
		items[i] = MemberResponse{
			UserID:   m.UserID,
			Role:     m.Role.String(),
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		}
	}

	return ProjectResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		OwnerID:     p.OwnerID(),
		IsActive:    p.IsActive(),
		Members:     items,
		CreatedAt:   p.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt().Format(time.RFC3339),
	}
}

// ToProjectListResponse converts domain projects to a list response.
func ToProjectListResponse(projects []*project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = ToProjectResponse(p)
	}
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// TaskResponse represents a single task in HTTP responses. Priority is
// rendered by name ("HIGH").
type TaskResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AssigneeID  string  `json:"assignee_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	IsOverdue   bool    `json:"is_overdue"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().Name(),
		AssigneeID:  t.AssigneeID(),
		IsOverdue:   t.IsOverdue(),
		CreatedBy:   t.CreatedBy(),
		CreatedAt:   t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt().Format(time.RFC3339),
	}
	if due := t.DueDate(); due != nil {
		s := due.Format(time.RFC3339)
		resp.DueDate = &s
	}
	return resp
}

// ToTaskListResponse converts domain tasks to a list response.
func ToTaskListResponse(tasks []*task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// BulkStatusResponse represents the result of a bulk status change.
// It includes both successful updates and per-item errors.
type BulkStatusResponse struct {
	Updated   []TaskResponse        `json:"updated"`
	Errors    []BulkStatusErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BulkStatusErrorItem represents a single failed change within a bulk operation.
type BulkStatusErrorItem struct {
	TaskID  string `json:"task_id"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToBulkStatusResponse converts a ports.BulkStatusResult to an HTTP response DTO.
// Each error carries the HTTP status its domain error would map to.
func ToBulkStatusResponse(result *ports.BulkStatusResult) BulkStatusResponse {
	updated := make([]TaskResponse, len(result.Updated))
	for i, t := range result.Updated {
		updated[i] = ToTaskResponse(t)
	}

	errs := make([]BulkStatusErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkStatusErrorItem{
			TaskID:  e.TaskID,
			Status:  StatusFor(e.Err),
			Message: publicMessage(e.Err),
		}
	}

	return BulkStatusResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     len(updated) + len(errs),
		Succeeded: len(updated),
		Failed:    len(errs),
	}
}
