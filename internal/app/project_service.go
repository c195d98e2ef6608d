// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. It loads aggregates from
// the repository, lets the Project aggregate decide whether the acting user
// may perform the change, and saves the result. Permission and invariant
// rules live in the aggregate, not here.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	newID    func() string
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger *slog.Logger) *ProjectService {
	logger = logging.OrDiscard(logger)
	return &ProjectService{
		projects: projects,
		users:    users,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// CreateProject creates a project owned by cmd.OwnerID.
func (s *ProjectService) CreateProject(ctx context.Context, cmd ports.CreateProjectCommand) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project",
		slog.String("name", cmd.Name),
		slog.String("owner_id", cmd.OwnerID),
	)

	p, err := project.New(project.Params{
		ID:          s.newID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		OwnerID:     cmd.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, cmd.OwnerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify owner",
			slog.String("operation", "CreateProject"),
			slog.String("owner_id", cmd.OwnerID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying owner: %w", err)
	}

	if err := s.save(ctx, "CreateProject", p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProject returns the project if actingUserID may view it.
func (s *ProjectService) GetProject(ctx context.Context, actingUserID, id string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("project_id", id))

	p, err := s.load(ctx, "GetProject", id)
	if err != nil {
		return nil, err
	}
	if !p.CanViewProject(actingUserID) {
		return nil, domain.Forbidden("user %s cannot view project %s", actingUserID, id)
	}
	return p, nil
}

// ListProjects returns the projects visible to actingUserID within scope.
func (s *ProjectService) ListProjects(ctx context.Context, actingUserID string, scope ports.ProjectScope) ([]*project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects",
		slog.String("user_id", actingUserID),
		slog.String("scope", string(scope)),
	)

	var (
		projects []*project.Project
		err      error
	)
	switch scope {
	case ports.ScopeMember, "":
		projects, err = s.projects.FindByMemberID(ctx, actingUserID)
	case ports.ScopeOwned:
		projects, err = s.projects.FindByOwnerID(ctx, actingUserID)
	case ports.ScopeActive:
		projects, err = s.projects.FindActive(ctx)
	default:
		return nil, domain.NewValidationError("scope", fmt.Sprintf("invalid: %q", scope))
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.String("scope", string(scope)),
			slog.Any("error", err),
		)
		return nil, err
	}

	visible := projects[:0]
	for _, p := range projects {
		if p.CanViewProject(actingUserID) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// UpdateProject replaces the project's name and description.
func (s *ProjectService) UpdateProject(ctx context.Context, actingUserID, id, name, description string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project", slog.String("project_id", id))

	return s.mutate(ctx, "UpdateProject", id, func(p *project.Project) error {
		return p.UpdateDetails(name, description, actingUserID)
	})
}

// ActivateProject marks the project active.
func (s *ProjectService) ActivateProject(ctx context.Context, actingUserID, id string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "activating project", slog.String("project_id", id))

	return s.mutate(ctx, "ActivateProject", id, func(p *project.Project) error {
		return p.Activate(actingUserID)
	})
}

// DeactivateProject marks the project inactive. Inactive projects reject
// new tasks.
func (s *ProjectService) DeactivateProject(ctx context.Context, actingUserID, id string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "deactivating project", slog.String("project_id", id))

	return s.mutate(ctx, "DeactivateProject", id, func(p *project.Project) error {
		return p.Deactivate(actingUserID)
	})
}

// DeleteProject removes the project. Only the owner may delete it.
func (s *ProjectService) DeleteProject(ctx context.Context, actingUserID, id string) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("project_id", id))

	p, err := s.load(ctx, "DeleteProject", id)
	if err != nil {
		return err
	}
	if p.OwnerID() != actingUserID {
		return domain.Forbidden("only the owner can delete project %s", id)
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.String("project_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// AddMember adds an existing user to the project with role.
func (s *ProjectService) AddMember(ctx context.Context, actingUserID, projectID, userID string, role project.Role) (*project.Project, error) {
	s.logger.InfoContext(ctx, "adding project member",
		slog.String("project_id", projectID),
		slog.String("user_id", userID),
		slog.String("role", role.String()),
	)

	return s.mutate(ctx, "AddMember", projectID, func(p *project.Project) error {
		// The user lookup runs only once membership and permission checks pass.
		if !p.IsMember(userID) && p.CanManageMembers(actingUserID) {
			if err := s.verifyUser(ctx, userID); err != nil {
				return err
			}
		}
		return p.AddMember(userID, role, actingUserID)
	})
}

func (s *ProjectService) verifyUser(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify user",
			slog.String("operation", "AddMember"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("verifying user: %w", err)
	}
	return nil
}

// RemoveMember removes userID from the project.
func (s *ProjectService) RemoveMember(ctx context.Context, actingUserID, projectID, userID string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "removing project member",
		slog.String("project_id", projectID),
		slog.String("user_id", userID),
	)

	return s.mutate(ctx, "RemoveMember", projectID, func(p *project.Project) error {
		return p.RemoveMember(userID, actingUserID)
	})
}

// UpdateMemberRole changes userID's role in the project.
func (s *ProjectService) UpdateMemberRole(ctx context.Context, actingUserID, projectID, userID string, role project.Role) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project member role",
		slog.String("project_id", projectID),
		slog.String("user_id", userID),
		slog.String("role", role.String()),
	)

	return s.mutate(ctx, "UpdateMemberRole", projectID, func(p *project.Project) error {
		return p.UpdateMemberRole(userID, role, actingUserID)
	})
}

// mutate loads the project, applies change and saves it. Errors returned by
// change are domain rule violations and are passed through unlogged.
func (s *ProjectService) mutate(ctx context.Context, op, id string, change func(*project.Project) error) (*project.Project, error) {
	p, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if err := change(p); err != nil {
		return nil, err
	}
	if err := s.save(ctx, op, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) load(ctx context.Context, op, id string) (*project.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load project",
			slog.String("operation", op),
			slog.String("project_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return p, nil
}

func (s *ProjectService) save(ctx context.Context, op string, p *project.Project) error {
	if err := s.projects.Save(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "failed to save project",
			slog.String("operation", op),
			slog.String("project_id", p.ID()),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}
