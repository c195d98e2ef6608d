package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// maxBulkChanges bounds a single bulk status request.
const maxBulkChanges = 100

func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// --- Users ---

// CreateUserRequest represents the JSON body for registering a user.
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
}

// Validate checks that required fields are present. Email syntax is checked
// by the domain.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	return validationResult(fields)
}

// ToCommand maps the request to the service command.
func (r *CreateUserRequest) ToCommand() ports.CreateUserCommand {
	return ports.CreateUserCommand{Email: r.Email, Name: r.Name, Bio: r.Bio}
}

// UpdateUserRequest represents the JSON body for a partial user update.
// All fields are optional; nil means "do not change this field.".
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateUserRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	return validationResult(fields)
}

// ToChanges maps the request to a domain partial update.
func (r *UpdateUserRequest) ToChanges() user.Changes {
	return user.Changes{Name: r.Name, Bio: r.Bio, IsActive: r.IsActive}
}

// --- Projects ---

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	return validationResult(fields)
}

// UpdateProjectRequest represents the JSON body for updating an existing project.
// Both fields are replaced; description may be empty.
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that the name is present.
func (r *UpdateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	return validationResult(fields)
}

// AddMemberRequest represents the JSON body for adding a project member.
type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`

	role project.Role
}

// Validate checks the user id and parses the role.
func (r *AddMemberRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.UserID) == "" {
		fields["user_id"] = msgRequired
	}
	role, msg := parseRole(r.Role)
	if msg != "" {
		fields["role"] = msg
	}
	r.role = role
	return validationResult(fields)
}

// ParsedRole returns the role parsed by Validate.
func (r *AddMemberRequest) ParsedRole() project.Role { return r.role }

// UpdateMemberRoleRequest represents the JSON body for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role"`

	role project.Role
}

// Validate parses the role.
func (r *UpdateMemberRoleRequest) Validate() error {
	role, msg := parseRole(r.Role)
	if msg != "" {
		return domain.NewValidationError("role", msg)
	}
	r.role = role
	return nil
}

// ParsedRole returns the role parsed by Validate.
func (r *UpdateMemberRoleRequest) ParsedRole() project.Role { return r.role }

func parseRole(raw string) (project.Role, string) {
	if strings.TrimSpace(raw) == "" {
		return "", msgRequired
	}
	role, err := project.ParseRole(raw)
	if err != nil {
		return "", fmt.Sprintf("invalid: %q", raw)
	}
	return role, ""
}

// --- Tasks ---

// CreateTaskRequest represents the JSON body for creating a task in a project.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssigneeID  string     `json:"assignee_id,omitempty"`

	priority task.Priority
}

// Validate checks the title and parses the optional priority.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.Priority != "" {
		p, err := task.ParsePriority(r.Priority)
		if err != nil {
			fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
		}
		r.priority = p
	}
	return validationResult(fields)
}

// ToCommand maps the request to the service command for projectID and the
// acting user.
func (r *CreateTaskRequest) ToCommand(projectID, actingUserID string) ports.CreateTaskCommand {
	return ports.CreateTaskCommand{
		Title:       r.Title,
		Description: r.Description,
		ProjectID:   projectID,
		CreatedBy:   actingUserID,
		Priority:    r.priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
	}
}

// UpdateTaskRequest represents the JSON body for replacing task details.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks that the title is present.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	return validationResult(fields)
}

// ChangeStatusRequest represents the JSON body for a status transition.
type ChangeStatusRequest struct {
	Status string `json:"status"`

	status task.Status
}

// Validate parses the status.
func (r *ChangeStatusRequest) Validate() error {
	s, msg := parseStatus(r.Status)
	if msg != "" {
		return domain.NewValidationError("status", msg)
	}
	r.status = s
	return nil
}

// ParsedStatus returns the status parsed by Validate.
func (r *ChangeStatusRequest) ParsedStatus() task.Status { return r.status }

// AssignTaskRequest represents the JSON body for assigning a task.
type AssignTaskRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// Validate checks that the assignee is present.
func (r *AssignTaskRequest) Validate() error {
	if strings.TrimSpace(r.AssigneeID) == "" {
		return domain.NewValidationError("assignee_id", msgRequired)
	}
	return nil
}

// ChangePriorityRequest represents the JSON body for changing priority. The
// priority may be a name ("HIGH"), label ("High") or ordinal ("3").
type ChangePriorityRequest struct {
	Priority string `json:"priority"`

	priority task.Priority
}

// Validate parses the priority.
func (r *ChangePriorityRequest) Validate() error {
	if strings.TrimSpace(r.Priority) == "" {
		return domain.NewValidationError("priority", msgRequired)
	}
	p, err := task.ParsePriority(r.Priority)
	if err != nil {
		return domain.NewValidationError("priority", fmt.Sprintf("invalid: %q", r.Priority))
	}
	r.priority = p
	return nil
}

// ParsedPriority returns the priority parsed by Validate.
func (r *ChangePriorityRequest) ParsedPriority() task.Priority { return r.priority }

// SetDueDateRequest represents the JSON body for setting a due date. A null
// or missing due_date clears it.
type SetDueDateRequest struct {
	DueDate *time.Time `json:"due_date"`
}

// Validate accepts any value; the JSON decoder already rejects malformed dates.
func (r *SetDueDateRequest) Validate() error { return nil }

// BulkStatusRequest represents the JSON body for changing several task
// statuses in one project.
type BulkStatusRequest struct {
	Changes []BulkStatusItem `json:"changes"`

	parsed []ports.StatusChange
}

// BulkStatusItem is one entry of a BulkStatusRequest.
type BulkStatusItem struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// Validate checks the list size and every entry. Field keys are indexed
// ("changes[2].status").
func (r *BulkStatusRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case len(r.Changes) == 0:
		fields["changes"] = msgRequired
	case len(r.Changes) > maxBulkChanges:
		fields["changes"] = fmt.Sprintf("must contain at most %d items, got %d", maxBulkChanges, len(r.Changes))
	}

	parsed := make([]ports.StatusChange, 0, len(r.Changes))
	for i, c := range r.Changes {
		if strings.TrimSpace(c.TaskID) == "" {
			fields[fmt.Sprintf("changes[%d].task_id", i)] = msgRequired
		}
		s, msg := parseStatus(c.Status)
		if msg != "" {
			fields[fmt.Sprintf("changes[%d].status", i)] = msg
		}
		parsed = append(parsed, ports.StatusChange{TaskID: c.TaskID, Status: s})
	}

	if err := validationResult(fields); err != nil {
		return err
	}
	r.parsed = parsed
	return nil
}

// ToChanges returns the changes parsed by Validate.
func (r *BulkStatusRequest) ToChanges() []ports.StatusChange { return r.parsed }

func parseStatus(raw string) (task.Status, string) {
	if strings.TrimSpace(raw) == "" {
		return "", msgRequired
	}
	s, err := task.ParseStatus(raw)
	if err != nil {
		return "", fmt.Sprintf("invalid: %q", raw)
	}
	return s, ""
}
