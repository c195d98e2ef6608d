package task

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Status represents the lifecycle state of a Task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReview     Status = "REVIEW"
	StatusDone       Status = "DONE"
)

// transitions defines the allowed status transitions. DONE is not terminal:
// a completed task can be reopened.
//
//	TODO -> IN_PROGRESS -> REVIEW -> DONE
//	 ^          |  ^         |        |
//	 +----------+  +---------+--------+
var transitions = map[Status][]Status{
	StatusTodo:       {StatusInProgress},
	StatusInProgress: {StatusReview, StatusTodo},
	StatusReview:     {StatusDone, StatusInProgress},
	StatusDone:       {StatusInProgress},
}

// AllStatuses returns all valid status values in workflow order.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}
}

// ParseStatus converts external input (case-insensitive, surrounding
// whitespace ignored) into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", domain.NewValidationError("status", fmt.Sprintf("invalid: %q", raw))
	}
	return s, nil
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo returns true if (s, target) is an edge of the transition graph.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
