package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

func newProjectHandler(t *testing.T) (*handlers.ProjectHandler, *mocks.MockProjectService) {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	return handlers.NewProjectHandler(svc), svc
}

// --- ListProjects ---

func TestListProjects_Scopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantScope ports.ProjectScope
	}{
		{name: "default member", query: "", wantScope: ports.ScopeMember},
		{name: "owned", query: "?scope=owned", wantScope: ports.ScopeOwned},
		{name: "active", query: "?scope=active", wantScope: ports.ScopeActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			svc.EXPECT().ListProjects(mock.Anything, testOwner, tt.wantScope).
				Return([]*project.Project{validProject()}, nil)

			rec := httptest.NewRecorder()
			h.ListProjects(rec, newRequest(http.MethodGet, "/api/v1/projects"+tt.query, nil, testOwner, nil))

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.ProjectListResponse](t, rec)
			if resp.Count != 1 {
				t.Errorf("Count = %d, want 1", resp.Count)
			}
		})
	}
}

func TestListProjects_InvalidScope(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, newRequest(http.MethodGet, "/api/v1/projects?scope=all", nil, testOwner, nil))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "query.scope" {
		t.Errorf("Errors = %+v, want query.scope", resp.Errors)
	}
}

func TestListProjects_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ListProjects(mock.Anything, testOwner, ports.ScopeMember).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, newRequest(http.MethodGet, "/api/v1/projects", nil, testOwner, nil))

	requireStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"projects":[]`) {
		t.Errorf("body = %s, want empty projects array", rec.Body.String())
	}
}

func TestListProjects_Unauthenticated(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, newRequest(http.MethodGet, "/api/v1/projects", nil, "", nil))

	requireStatus(t, rec, http.StatusUnauthorized)
}

// --- CreateProject ---

func TestCreateProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().CreateProject(mock.Anything, ports.CreateProjectCommand{
		Name:        "Apollo",
		Description: "Moon landing",
		OwnerID:     testOwner,
	}).Return(validProject(), nil)

	body := jsonBody(t, dto.CreateProjectRequest{Name: "Apollo", Description: "Moon landing"})
	rec := httptest.NewRecorder()
	h.CreateProject(rec, newRequest(http.MethodPost, "/api/v1/projects", body, testOwner, nil))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	if resp.Name != "Apollo" || resp.OwnerID != testOwner {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.Members) != 2 {
		t.Errorf("len(Members) = %d, want 2", len(resp.Members))
	}
}

func TestCreateProject_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	body := jsonBody(t, dto.CreateProjectRequest{})
	rec := httptest.NewRecorder()
	h.CreateProject(rec, newRequest(http.MethodPost, "/api/v1/projects", body, testOwner, nil))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateProject_BodyErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "invalid JSON", body: "{not json", wantMsg: "invalid JSON"},
		{name: "empty body", body: "", wantMsg: "must not be empty"},
		{name: "unknown field", body: `{"name":"x","owner_id":"mallory"}`, wantMsg: `unknown field "owner_id"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newProjectHandler(t)

			rec := httptest.NewRecorder()
			h.CreateProject(rec, newRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(tt.body), testOwner, nil))

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Message != tt.wantMsg {
				t.Errorf("Errors = %+v, want message %q", resp.Errors, tt.wantMsg)
			}
		})
	}
}

// --- Single project operations ---

func TestGetProject_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", err: nil, wantStatus: http.StatusOK},
		{name: "not found", err: domain.NotFound("project %s", "proj-1"), wantStatus: http.StatusNotFound},
		{name: "not a member", err: domain.Forbidden("not a member"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			var p *project.Project
			if tt.err == nil {
				p = validProject()
			}
			svc.EXPECT().GetProject(mock.Anything, testMember, "proj-1").Return(p, tt.err)

			rec := httptest.NewRecorder()
			h.GetProject(rec, newRequest(http.MethodGet, "/api/v1/projects/proj-1", nil, testMember, map[string]string{"id": "proj-1"}))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestUpdateProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().UpdateProject(mock.Anything, testOwner, "proj-1", "Artemis", "").
		Return(validProject(), nil)

	body := jsonBody(t, dto.UpdateProjectRequest{Name: "Artemis"})
	rec := httptest.NewRecorder()
	h.UpdateProject(rec, newRequest(http.MethodPut, "/api/v1/projects/proj-1", body, testOwner, map[string]string{"id": "proj-1"}))

	requireStatus(t, rec, http.StatusOK)
}

func TestActivateDeactivateProject(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().DeactivateProject(mock.Anything, testOwner, "proj-1").Return(validProject(), nil)
	svc.EXPECT().ActivateProject(mock.Anything, testOwner, "proj-1").
		Return(nil, domain.Conflict("project is already active"))

	params := map[string]string{"id": "proj-1"}

	rec := httptest.NewRecorder()
	h.DeactivateProject(rec, newRequest(http.MethodPost, "/api/v1/projects/proj-1/deactivate", nil, testOwner, params))
	requireStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.ActivateProject(rec, newRequest(http.MethodPost, "/api/v1/projects/proj-1/activate", nil, testOwner, params))
	requireStatus(t, rec, http.StatusConflict)
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		actor      string
		err        error
		wantStatus int
	}{
		{name: "owner", actor: testOwner, wantStatus: http.StatusNoContent},
		{name: "non-owner", actor: testMember, err: domain.Forbidden("only the owner may delete"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			svc.EXPECT().DeleteProject(mock.Anything, tt.actor, "proj-1").Return(tt.err)

			rec := httptest.NewRecorder()
			h.DeleteProject(rec, newRequest(http.MethodDelete, "/api/v1/projects/proj-1", nil, tt.actor, map[string]string{"id": "proj-1"}))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- Members ---

func TestAddMember_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().AddMember(mock.Anything, testOwner, "proj-1", "carol", project.RoleViewer).
		Return(validProject(), nil)

	body := jsonBody(t, map[string]string{"user_id": "carol", "role": "viewer"})
	rec := httptest.NewRecorder()
	h.AddMember(rec, newRequest(http.MethodPost, "/api/v1/projects/proj-1/members", body, testOwner, map[string]string{"id": "proj-1"}))

	requireStatus(t, rec, http.StatusCreated)
}

func TestAddMember_InvalidRole(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	body := jsonBody(t, map[string]string{"user_id": "carol", "role": "superuser"})
	rec := httptest.NewRecorder()
	h.AddMember(rec, newRequest(http.MethodPost, "/api/v1/projects/proj-1/members", body, testOwner, map[string]string{"id": "proj-1"}))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateMemberRole_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().UpdateMemberRole(mock.Anything, testOwner, "proj-1", testMember, project.RoleAdmin).
		Return(validProject(), nil)

	body := jsonBody(t, map[string]string{"role": "ADMIN"})
	rec := httptest.NewRecorder()
	h.UpdateMemberRole(rec, newRequest(http.MethodPut, "/api/v1/projects/proj-1/members/bob", body, testOwner,
		map[string]string{"id": "proj-1", "userId": testMember}))

	requireStatus(t, rec, http.StatusOK)
}

func TestRemoveMember_OwnerConflict(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().RemoveMember(mock.Anything, testOwner, "proj-1", testOwner).
		Return(nil, domain.Conflict("cannot remove the project owner"))

	rec := httptest.NewRecorder()
	h.RemoveMember(rec, newRequest(http.MethodDelete, "/api/v1/projects/proj-1/members/alice", nil, testOwner,
		map[string]string{"id": "proj-1", "userId": testOwner}))

	requireStatus(t, rec, http.StatusConflict)
}
