package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

const (
	testOwner  = "alice"
	testMember = "bob"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request authenticated as actor ("" for anonymous)
// with the given chi URL params.
func newRequest(method, target string, body io.Reader, actor string, params map[string]string) *http.Request {
	if body == nil {
		body = http.NoBody
	}
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Content-Type", "application/json")
	if actor != "" {
		r = r.WithContext(middleware.WithActingUser(r.Context(), actor))
	}
	return withChiParams(r, params)
}

func validProject() *project.Project {
	return project.Rehydrate(project.Snapshot{
		ID:          "proj-1",
		Name:        "Apollo",
		Description: "Moon landing",
		OwnerID:     testOwner,
		Active:      true,
		Members: []project.Member{
			{UserID: testOwner, Role: project.RoleOwner, JoinedAt: testTime},
			{UserID: testMember, Role: project.RoleMember, JoinedAt: testTime},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
		Version:   1,
	})
}

func validTask() *task.Task {
	return task.Rehydrate(task.Snapshot{
		ID:          "task-1",
		Title:       "Write docs",
		Description: "API reference",
		Status:      task.StatusTodo,
		Priority:    task.PriorityMedium,
		ProjectID:   "proj-1",
		CreatedBy:   testOwner,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
		Version:     1,
	})
}

func validUser(id string) *user.User {
	return user.Rehydrate(user.Snapshot{
		ID:        id,
		Email:     id + "@example.com",
		Name:      id,
		Active:    true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
		Version:   1,
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
