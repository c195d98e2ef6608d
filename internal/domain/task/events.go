package task

import (
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Event names as written to the outbox.
const (
	EventCreated         = "task.created"
	EventAssigned        = "task.assigned"
	EventStatusChanged   = "task.status_changed"
	EventPriorityChanged = "task.priority_changed"
	EventCompleted       = "task.completed"
)

// CreatedEvent is recorded when a task is constructed.
type CreatedEvent struct {
	domain.EventBase
	TaskID    string `json:"task_id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	CreatedBy string `json:"created_by"`
}

// EventName returns the stable wire name of the event.
func (e CreatedEvent) EventName() string { return EventCreated }

// AggregateID returns the id of the task the event belongs to.
func (e CreatedEvent) AggregateID() string { return e.TaskID }

// AssignedEvent is recorded when the assignee changes.
type AssignedEvent struct {
	domain.EventBase
	TaskID     string `json:"task_id"`
	AssigneeID string `json:"assignee_id"`
	AssignedBy string `json:"assigned_by"`
}

// EventName returns the stable wire name of the event.
func (e AssignedEvent) EventName() string { return EventAssigned }

// AggregateID returns the id of the task the event belongs to.
func (e AssignedEvent) AggregateID() string { return e.TaskID }

// StatusChangedEvent is recorded for every legal status transition.
type StatusChangedEvent struct {
	domain.EventBase
	TaskID    string `json:"task_id"`
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
	ChangedBy string `json:"changed_by"`
}

// EventName returns the stable wire name of the event.
func (e StatusChangedEvent) EventName() string { return EventStatusChanged }

// AggregateID returns the id of the task the event belongs to.
func (e StatusChangedEvent) AggregateID() string { return e.TaskID }

// PriorityChangedEvent is recorded when the priority changes.
type PriorityChangedEvent struct {
	domain.EventBase
	TaskID      string   `json:"task_id"`
	OldPriority Priority `json:"old_priority"`
	NewPriority Priority `json:"new_priority"`
	ChangedBy   string   `json:"changed_by"`
}

// EventName returns the stable wire name of the event.
func (e PriorityChangedEvent) EventName() string { return EventPriorityChanged }

// AggregateID returns the id of the task the event belongs to.
func (e PriorityChangedEvent) AggregateID() string { return e.TaskID }

// CompletedEvent follows the StatusChangedEvent of any transition into DONE.
type CompletedEvent struct {
	domain.EventBase
	TaskID      string    `json:"task_id"`
	CompletedBy string    `json:"completed_by"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventName returns the stable wire name of the event.
func (e CompletedEvent) EventName() string { return EventCompleted }

// AggregateID returns the id of the task the event belongs to.
func (e CompletedEvent) AggregateID() string { return e.TaskID }

// Compile-time checks that every task event satisfies domain.Event.
var (
	_ domain.Event = CreatedEvent{}
	_ domain.Event = AssignedEvent{}
	_ domain.Event = StatusChangedEvent{}
	_ domain.Event = PriorityChangedEvent{}
	_ domain.Event = CompletedEvent{}
)
