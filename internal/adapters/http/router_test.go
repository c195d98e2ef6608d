package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

var testAuth = middleware.AuthConfig{Secret: "router-test-secret", Issuer: "taskflow"}

type testServices struct {
	projects *mocks.MockProjectService
	tasks    *mocks.MockTaskService
	users    *mocks.MockUserService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testServices) {
	t.Helper()
	svcs := testServices{
		projects: mocks.NewMockProjectService(t),
		tasks:    mocks.NewMockTaskService(t),
		users:    mocks.NewMockUserService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(adapthttp.Handlers{
		Project: handlers.NewProjectHandler(svcs.projects),
		Task:    handlers.NewTaskHandler(svcs.tasks),
		User:    handlers.NewUserHandler(svcs.users),
		Health:  handlers.NewHealthHandler(svcs.registry),
	}, adapthttp.RouterConfig{Auth: testAuth, RequestTimeout: 5 * time.Second}, middlewares...)
	return router, svcs
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	token, err := middleware.IssueToken(testAuth, subject, time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	return "Bearer " + token
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []string{
		"GET /health/live",
		"GET /health/ready",
		"POST /api/v1/users",
		"GET /api/v1/users",
		"GET /api/v1/users/me",
		"GET /api/v1/users/{id}",
		"PATCH /api/v1/users/{id}",
		"DELETE /api/v1/users/{id}",
		"GET /api/v1/projects",
		"POST /api/v1/projects",
		"GET /api/v1/projects/{id}",
		"PUT /api/v1/projects/{id}",
		"DELETE /api/v1/projects/{id}",
		"POST /api/v1/projects/{id}/activate",
		"POST /api/v1/projects/{id}/deactivate",
		"POST /api/v1/projects/{id}/members",
		"PUT /api/v1/projects/{id}/members/{userId}",
		"DELETE /api/v1/projects/{id}/members/{userId}",
		"GET /api/v1/projects/{id}/tasks",
		"POST /api/v1/projects/{id}/tasks",
		"POST /api/v1/projects/{id}/tasks/status",
		"GET /api/v1/tasks/assigned",
		"GET /api/v1/tasks/overdue",
		"GET /api/v1/tasks/{id}",
		"PUT /api/v1/tasks/{id}",
		"DELETE /api/v1/tasks/{id}",
		"PUT /api/v1/tasks/{id}/status",
		"PUT /api/v1/tasks/{id}/assignee",
		"PUT /api/v1/tasks/{id}/priority",
		"PUT /api/v1/tasks/{id}/due-date",
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, svcs := newTestRouter(t, testMW)
	svcs.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, target := range []string{"/api/v1/projects", "/api/v1/tasks/assigned", "/api/v1/users/me"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want %d", target, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRouter_RegistrationIsPublic(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)
	svcs.users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(user.Rehydrate(user.Snapshot{
		ID:     "u-1",
		Email:  "carol@example.com",
		Name:   "Carol",
		Active: true,
	}), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"email":"carol@example.com","name":"Carol"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestRouter_IntegrationListProjects(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)
	svcs.projects.EXPECT().ListProjects(mock.Anything, "alice", ports.ScopeMember).Return([]*project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", bearer(t, "alice"))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/health/live", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
