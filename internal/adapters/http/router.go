// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
)

// Handlers groups the inbound handlers the router dispatches to.
type Handlers struct {
	Project *handlers.ProjectHandler
	Task    *handlers.TaskHandler
	User    *handlers.UserHandler
	Health  *handlers.HealthHandler
}

// RouterConfig holds routing-level settings. A zero RequestTimeout disables
// the per-request deadline.
type RouterConfig struct {
	Auth           middleware.AuthConfig
	RequestTimeout time.Duration
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Health probes and user
// registration are public; every other /api/v1 route requires a bearer token.
func NewRouter(h Handlers, cfg RouterConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chimw.Timeout(cfg.RequestTimeout))
		}

		r.Post("/users", h.User.CreateUser)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.Auth))

			// Users.
			r.Get("/users", h.User.ListUsers)
			r.Get("/users/me", h.User.Me)
			r.Get("/users/{id}", h.User.GetUser)
			r.Patch("/users/{id}", h.User.UpdateUser)
			r.Delete("/users/{id}", h.User.DeleteUser)

			// Projects and membership.
			r.Get("/projects", h.Project.ListProjects)
			r.Post("/projects", h.Project.CreateProject)
			r.Get("/projects/{id}", h.Project.GetProject)
			r.Put("/projects/{id}", h.Project.UpdateProject)
			r.Delete("/projects/{id}", h.Project.DeleteProject)
			r.Post("/projects/{id}/activate", h.Project.ActivateProject)
			r.Post("/projects/{id}/deactivate", h.Project.DeactivateProject)
			r.Post("/projects/{id}/members", h.Project.AddMember)
			r.Put("/projects/{id}/members/{userId}", h.Project.UpdateMemberRole)
			r.Delete("/projects/{id}/members/{userId}", h.Project.RemoveMember)

			// Tasks nested under a project.
			r.Get("/projects/{id}/tasks", h.Task.ListProjectTasks)
			r.Post("/projects/{id}/tasks", h.Task.CreateTask)
			r.Post("/projects/{id}/tasks/status", h.Task.BulkChangeStatus)

			// Flat task routes.
			r.Get("/tasks/assigned", h.Task.ListAssignedTasks)
			r.Get("/tasks/overdue", h.Task.ListOverdueTasks)
			r.Get("/tasks/{id}", h.Task.GetTask)
			r.Put("/tasks/{id}", h.Task.UpdateTask)
			r.Delete("/tasks/{id}", h.Task.DeleteTask)
			r.Put("/tasks/{id}/status", h.Task.ChangeStatus)
			r.Put("/tasks/{id}/assignee", h.Task.AssignTask)
			r.Put("/tasks/{id}/priority", h.Task.ChangePriority)
			r.Put("/tasks/{id}/due-date", h.Task.SetDueDate)
		})
	})

	return r
}
