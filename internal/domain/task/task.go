// Package task implements the Task aggregate: lifecycle state, the status
// transition state machine, and the domain events it records.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Task is a unit of work inside a project. All state changes go through its
// methods; a Task is not safe for concurrent use.
type Task struct {
	base        domain.Entity[string]
	title       string
	description string
	status      Status
	priority    Priority
	assigneeID  string
	projectID   string
	dueDate     *time.Time
	createdBy   string
	events      domain.EventBuffer
}

// Params holds the inputs for New. A zero Priority defaults to MEDIUM.
type Params struct {
	ID          string
	Title       string
	Description string
	ProjectID   string
	CreatedBy   string
	Priority    Priority
	DueDate     *time.Time
}

// New constructs a task in TODO and records a CreatedEvent.
// Returns a *domain.ValidationError if required fields are missing.
func New(p Params) (*Task, error) {
	if p.Priority == 0 {
		p.Priority = PriorityMedium
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &Task{
		base:        domain.NewEntity(p.ID, now),
		title:       p.Title,
		description: p.Description,
		status:      StatusTodo,
		priority:    p.Priority,
		projectID:   p.ProjectID,
		dueDate:     copyTime(p.DueDate),
		createdBy:   p.CreatedBy,
	}
	t.events.Record(CreatedEvent{
		EventBase: domain.NewEventBase(now),
		TaskID:    p.ID,
		ProjectID: p.ProjectID,
		Title:     p.Title,
		CreatedBy: p.CreatedBy,
	})
	return t, nil
}

func (p *Params) validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.ProjectID) == "" {
		fields["project_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.CreatedBy) == "" {
		fields["created_by"] = domain.MsgRequired
	}
	if !p.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %d", int(p.Priority))
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Snapshot is the flat, persistable state of a Task.
type Snapshot struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	AssigneeID  string
	ProjectID   string
	DueDate     *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int64
}

// Rehydrate rebuilds a Task from stored state. No events are recorded.
func Rehydrate(s Snapshot) *Task {
	return &Task{
		base:        domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, s.Version),
		title:       s.Title,
		description: s.Description,
		status:      s.Status,
		priority:    s.Priority,
		assigneeID:  s.AssigneeID,
		projectID:   s.ProjectID,
		dueDate:     copyTime(s.DueDate),
		createdBy:   s.CreatedBy,
	}
}

// Snapshot returns a copy of the current state.
func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.base.ID(),
		Title:       t.title,
		Description: t.description,
		Status:      t.status,
		Priority:    t.priority,
		AssigneeID:  t.assigneeID,
		ProjectID:   t.projectID,
		DueDate:     copyTime(t.dueDate),
		CreatedBy:   t.createdBy,
		CreatedAt:   t.base.CreatedAt(),
		UpdatedAt:   t.base.UpdatedAt(),
		Version:     t.base.Version(),
	}
}

// ID returns the task id.
func (t *Task) ID() string { return t.base.ID() }

// CreatedAt returns when the task was created.
func (t *Task) CreatedAt() time.Time { return t.base.CreatedAt() }

// UpdatedAt returns when the task was last mutated.
func (t *Task) UpdatedAt() time.Time { return t.base.UpdatedAt() }

// Version returns the stored row version, or 0 if never saved.
func (t *Task) Version() int64 { return t.base.Version() }

// IsNew reports whether the task has never been saved.
func (t *Task) IsNew() bool { return t.base.IsNew() }

// Title returns the task title.
func (t *Task) Title() string { return t.title }

// Description returns the free-text description.
func (t *Task) Description() string { return t.description }

// Status returns the current workflow status.
func (t *Task) Status() Status { return t.status }

// Priority returns the current priority.
func (t *Task) Priority() Priority { return t.priority }

// AssigneeID returns the assigned user id, or "" if unassigned.
func (t *Task) AssigneeID() string { return t.assigneeID }

// ProjectID returns the id of the owning project.
func (t *Task) ProjectID() string { return t.projectID }

// CreatedBy returns the id of the user who created the task.
func (t *Task) CreatedBy() string { return t.createdBy }

// DueDate returns a copy of the due date, or nil.
func (t *Task) DueDate() *time.Time { return copyTime(t.dueDate) }

// SetVersion records the row version after a successful save.
func (t *Task) SetVersion(v int64) { t.base.SetVersion(v) }

// IsAssigned reports whether the task has an assignee.
func (t *Task) IsAssigned() bool { return t.assigneeID != "" }

// IsOverdue reports whether the task is overdue right now.
func (t *Task) IsOverdue() bool { return t.IsOverdueAt(time.Now()) }

// DomainEvents returns a copy of the buffered events.
func (t *Task) DomainEvents() []domain.Event {
	return t.events.Events()
}

// ClearDomainEvents empties the event buffer. Called by the repository
// adapter once the events are committed to the outbox.
func (t *Task) ClearDomainEvents() {
	t.events.Clear()
}

// Equals reports whether other is the same task by identity.
func (t *Task) Equals(other *Task) bool {
	if t == nil || other == nil {
		return false
	}
	return t.base.SameIdentity(&other.base)
}

// IsOverdueAt reports whether the due date is strictly before now and the
// task is not DONE.
func (t *Task) IsOverdueAt(now time.Time) bool {
	if t.dueDate == nil {
		return false
	}
	return t.dueDate.Before(now) && t.status != StatusDone
}

// ChangeStatus moves the task along the transition graph. Changing to the
// current status is a no-op. Entering DONE records a CompletedEvent after
// the StatusChangedEvent.
func (t *Task) ChangeStatus(newStatus Status, actingUserID string) error {
	if newStatus == t.status {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return domain.Conflict("cannot transition from %s to %s", t.status, newStatus)
	}

	now := time.Now().UTC()
	old := t.status
	t.status = newStatus
	t.base.Touch(now)

	t.events.Record(StatusChangedEvent{
		EventBase: domain.NewEventBase(now),
		TaskID:    t.ID(),
		OldStatus: old,
		NewStatus: newStatus,
		ChangedBy: actingUserID,
	})
	if newStatus == StatusDone {
		t.events.Record(CompletedEvent{
			EventBase:   domain.NewEventBase(now),
			TaskID:      t.ID(),
			CompletedBy: actingUserID,
			CompletedAt: now,
		})
	}
	return nil
}

// AssignTo sets the assignee. Re-assigning the current assignee is a no-op.
func (t *Task) AssignTo(assigneeID, actingUserID string) {
	if t.assigneeID == assigneeID {
		return
	}

	now := time.Now().UTC()
	t.assigneeID = assigneeID
	t.base.Touch(now)

	t.events.Record(AssignedEvent{
		EventBase:  domain.NewEventBase(now),
		TaskID:     t.ID(),
		AssigneeID: assigneeID,
		AssignedBy: actingUserID,
	})
}

// ChangePriority sets the priority. Setting the current priority is a no-op.
// Returns a *domain.ValidationError for an unknown priority.
func (t *Task) ChangePriority(newPriority Priority, actingUserID string) error {
	if !newPriority.IsValid() {
		return domain.NewValidationError("priority", fmt.Sprintf("invalid: %d", int(newPriority)))
	}
	if newPriority == t.priority {
		return nil
	}

	now := time.Now().UTC()
	old := t.priority
	t.priority = newPriority
	t.base.Touch(now)

	t.events.Record(PriorityChangedEvent{
		EventBase:   domain.NewEventBase(now),
		TaskID:      t.ID(),
		OldPriority: old,
		NewPriority: newPriority,
		ChangedBy:   actingUserID,
	})
	return nil
}

// UpdateDetails replaces title and description. No event is recorded.
func (t *Task) UpdateDetails(title, description string) {
	t.title = title
	t.description = description
	t.base.Touch(time.Now().UTC())
}

// SetDueDate replaces the due date; nil clears it. No event is recorded.
func (t *Task) SetDueDate(due *time.Time) {
	t.dueDate = copyTime(due)
	t.base.Touch(time.Now().UTC())
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
