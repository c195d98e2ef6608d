package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testTask(due *time.Time, status task.Status) *task.Task {
	return task.Rehydrate(task.Snapshot{
		ID:          "task-1",
		Title:       "Write docs",
		Description: "API reference",
		Status:      status,
		Priority:    task.PriorityHigh,
		AssigneeID:  "bob",
		ProjectID:   "proj-1",
		DueDate:     due,
		CreatedBy:   "alice",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
		Version:     1,
	})
}

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	past := testTime.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		task        *task.Task
		wantDue     string
		wantOverdue bool
	}{
		{name: "no due date", task: testTask(nil, task.StatusTodo)},
		{name: "overdue", task: testTask(&past, task.StatusInProgress), wantDue: "2026-02-11T15:04:05Z", wantOverdue: true},
		{name: "done is never overdue", task: testTask(&past, task.StatusDone), wantDue: "2026-02-11T15:04:05Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.ToTaskResponse(tt.task)
			if got.ID != "task-1" || got.ProjectID != "proj-1" || got.CreatedBy != "alice" {
				t.Errorf("identity fields = %+v", got)
			}
			if got.Priority != "HIGH" {
				t.Errorf("Priority = %q, want %q", got.Priority, "HIGH")
			}
			if got.CreatedAt != "2026-02-12T15:04:05Z" {
				t.Errorf("CreatedAt = %q", got.CreatedAt)
			}
			gotDue := ""
			if got.DueDate != nil {
				gotDue = *got.DueDate
			}
			if gotDue != tt.wantDue {
				t.Errorf("DueDate = %q, want %q", gotDue, tt.wantDue)
			}
			if got.IsOverdue != tt.wantOverdue {
				t.Errorf("IsOverdue = %v, want %v", got.IsOverdue, tt.wantOverdue)
			}
		})
	}
}

func TestListResponses_EmptyRenderAsArrays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		key  string
	}{
		{name: "tasks", v: dto.ToTaskListResponse(nil), key: `"tasks":[]`},
		{name: "projects", v: dto.ToProjectListResponse(nil), key: `"projects":[]`},
		{name: "users", v: dto.ToUserListResponse(nil), key: `"users":[]`},
		{name: "bulk", v: dto.ToBulkStatusResponse(&ports.BulkStatusResult{}), key: `"errors":[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if !strings.Contains(string(b), tt.key) {
				t.Errorf("JSON = %s, want it to contain %s", b, tt.key)
			}
		})
	}
}

func TestToProjectResponse(t *testing.T) {
	t.Parallel()

	p := project.Rehydrate(project.Snapshot{
		ID:      "proj-1",
		Name:    "Apollo",
		OwnerID: "alice",
		Active:  true,
		Members: []project.Member{
			{UserID: "alice", Role: project.RoleOwner, JoinedAt: testTime},
			{UserID: "bob", Role: project.RoleViewer, JoinedAt: testTime},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
		Version:   3,
	})

	got := dto.ToProjectResponse(p)
	if got.ID != "proj-1" || got.OwnerID != "alice" || !got.IsActive {
		t.Errorf("ToProjectResponse() = %+v", got)
	}
	if len(got.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(got.Members))
	}
	if got.Members[1].UserID != "bob" || got.Members[1].Role != "VIEWER" {
		t.Errorf("Members[1] = %+v, want bob/VIEWER", got.Members[1])
	}
}

func TestToUserResponse(t *testing.T) {
	t.Parallel()

	u := user.Rehydrate(user.Snapshot{
		ID:        "user-1",
		Email:     "ada@example.com",
		Name:      "Ada",
		Active:    true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	})

	got := dto.ToUserResponse(u)
	if got.Email != "ada@example.com" || got.Name != "Ada" || !got.IsActive {
		t.Errorf("ToUserResponse() = %+v", got)
	}
}

func TestToBulkStatusResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BulkStatusResult{
		Updated: []*task.Task{testTask(nil, task.StatusInProgress)},
		Errors: []ports.BulkStatusError{
			{TaskID: "task-2", Err: domain.Conflict("cannot transition from TODO to DONE")},
			{TaskID: "task-3", Err: fmt.Errorf("loading: %w", domain.ErrNotFound)},
			{TaskID: "task-4", Err: errors.New("disk on fire")},
		},
	}

	got := dto.ToBulkStatusResponse(result)
	if got.Total != 4 || got.Succeeded != 1 || got.Failed != 3 {
		t.Errorf("counts = %d/%d/%d, want 4/1/3", got.Total, got.Succeeded, got.Failed)
	}

	wantStatus := []int{http.StatusConflict, http.StatusNotFound, http.StatusInternalServerError}
	for i, want := range wantStatus {
		if got.Errors[i].Status != want {
			t.Errorf("Errors[%d].Status = %d, want %d", i, got.Errors[i].Status, want)
		}
	}
	if msg := got.Errors[2].Message; strings.Contains(msg, "disk") {
		t.Errorf("Errors[2].Message = %q, want internal details hidden", msg)
	}
}
