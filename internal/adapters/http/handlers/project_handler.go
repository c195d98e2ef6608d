// Package handlers provides HTTP request handlers for the service's API endpoints.
// Every handler under /api/v1 reads the acting user set by the Authenticate
// middleware and passes it to the service port.
package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// ProjectHandler handles HTTP requests for projects and their members.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects?scope=member|owned|active.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}

	scope := ports.ScopeMember
	if raw := r.URL.Query().Get("scope"); raw != "" {
		scope = ports.ProjectScope(raw)
		if !scope.IsValid() {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("scope", "must be one of member, owned, active"))
			return
		}
	}

	projects, err := h.svc.ListProjects(r.Context(), actor, scope)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects. The acting user becomes the owner.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), ports.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	h.withProject(w, r, http.StatusOK, h.svc.GetProject)
}

// UpdateProject handles PUT /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.withProject(w, r, http.StatusOK, func(ctx context.Context, actor, id string) (*project.Project, error) {
		return h.svc.UpdateProject(ctx, actor, id, req.Name, req.Description)
	})
}

// ActivateProject handles POST /api/v1/projects/{id}/activate.
func (h *ProjectHandler) ActivateProject(w http.ResponseWriter, r *http.Request) {
	h.withProject(w, r, http.StatusOK, h.svc.ActivateProject)
}

// DeactivateProject handles POST /api/v1/projects/{id}/deactivate.
func (h *ProjectHandler) DeactivateProject(w http.ResponseWriter, r *http.Request) {
	h.withProject(w, r, http.StatusOK, h.svc.DeactivateProject)
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), actor, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddMember handles POST /api/v1/projects/{id}/members.
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.withProject(w, r, http.StatusCreated, func(ctx context.Context, actor, id string) (*project.Project, error) {
		return h.svc.AddMember(ctx, actor, id, req.UserID, req.ParsedRole())
	})
}

// UpdateMemberRole handles PUT /api/v1/projects/{id}/members/{userId}.
func (h *ProjectHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateMemberRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.withProject(w, r, http.StatusOK, func(ctx context.Context, actor, id string) (*project.Project, error) {
		return h.svc.UpdateMemberRole(ctx, actor, id, userID, req.ParsedRole())
	})
}

// RemoveMember handles DELETE /api/v1/projects/{id}/members/{userId}.
func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.withProject(w, r, http.StatusOK, func(ctx context.Context, actor, id string) (*project.Project, error) {
		return h.svc.RemoveMember(ctx, actor, id, userID)
	})
}

// withProject resolves the acting user and {id}, runs op and renders the
// resulting project with status.
func (h *ProjectHandler) withProject(w http.ResponseWriter, r *http.Request, status int,
	op func(ctx context.Context, actor, id string) (*project.Project, error),
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

	p, err := op(r.Context(), actor, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, status, dto.ToProjectResponse(p))
}
