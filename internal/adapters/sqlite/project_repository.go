package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const projectColumns = `p.id, p.name, p.description, p.owner_id, p.active, p.created_at, p.updated_at, p.version`

// ProjectRepository implements ports.ProjectRepository. Members are stored
// in project_members and rewritten on every save.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a ProjectRepository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Save upserts p with its member list and appends buffered events to the
// outbox in one transaction.
func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) (err error) {
	ctx, span := startSpan(ctx, "UPSERT", "projects")
	defer func() { endSpan(span, err) }()

	s := p.Snapshot()
	next := s.Version + 1
	events := p.DomainEvents()

	err = inTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, description, owner_id, active, created_at, updated_at, version)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			     name = excluded.name,
			     description = excluded.description,
			     active = excluded.active,
			     updated_at = excluded.updated_at,
			     version = excluded.version
			 WHERE projects.version = ?`,
			s.ID, s.Name, s.Description, s.OwnerID, s.Active, formatTime(s.CreatedAt), formatTime(s.UpdatedAt), next,
			s.Version,
		)
		if err := upsertResult(res, err, "project", s.ID); err != nil {
			return err
		}
		if err := replaceMembers(ctx, tx, s.ID, s.Members); err != nil {
			return err
		}
		return appendEvents(ctx, tx, events)
	})
	if err != nil {
		return err
	}

	p.ClearDomainEvents()
	p.SetVersion(next)
	return nil
}

func replaceMembers(ctx context.Context, tx *sql.Tx, projectID string, members []project.Member) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing members of project %s: %w", projectID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO project_members (project_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing member insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range members {
		if _, err := stmt.ExecContext(ctx, projectID, m.UserID, string(m.Role), formatTime(m.JoinedAt)); err != nil {
			if isForeignKeyViolation(err) {
				return domain.Conflict("member %s of project %s is not a known user", m.UserID, projectID)
			}
			return fmt.Errorf("writing member %s of project %s: %w", m.UserID, projectID, err)
		}
	}
	return nil
}

// FindByID returns domain.ErrNotFound if absent.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*project.Project, error) {
	found, err := r.query(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.NotFound("project %s", id)
	}
	return found[0], nil
}

// FindByOwnerID returns projects owned by ownerID, oldest first.
func (r *ProjectRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*project.Project, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM projects p WHERE p.owner_id = ? ORDER BY p.created_at, p.id`,
		ownerID,
	)
}

// FindByMemberID returns projects where memberID holds any role.
func (r *ProjectRepository) FindByMemberID(ctx context.Context, memberID string) ([]*project.Project, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM projects p
		 JOIN project_members m ON m.project_id = p.id
		 WHERE m.user_id = ?
		 ORDER BY p.created_at, p.id`,
		memberID,
	)
}

// FindActive returns all active projects.
func (r *ProjectRepository) FindActive(ctx context.Context) ([]*project.Project, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM projects p WHERE p.active = 1 ORDER BY p.created_at, p.id`,
	)
}

// Delete removes the project. Memberships and tasks go with it through
// ON DELETE CASCADE.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "DELETE", "projects")
	defer func() { endSpan(span, err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return expectOne(res, err, "project", id)
}

// query loads the matching project rows, then their members. Rows are
// closed before members are read so a single-connection pool cannot stall.
func (r *ProjectRepository) query(ctx context.Context, q string, args ...any) (_ []*project.Project, err error) {
	ctx, span := startSpan(ctx, "SELECT", "projects")
	defer func() { endSpan(span, err) }()

	snaps, err := r.scanProjects(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	out := make([]*project.Project, 0, len(snaps))
	for i := range snaps {
		if snaps[i].Members, err = r.members(ctx, snaps[i].ID); err != nil {
			return nil, err
		}
		out = append(out, project.Rehydrate(snaps[i]))
	}
	return out, nil
}

func (r *ProjectRepository) scanProjects(ctx context.Context, q string, args ...any) ([]project.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var out []project.Snapshot
	for rows.Next() {
		var (
			s                    project.Snapshot
			createdAt, updatedAt string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.OwnerID, &s.Active, &createdAt, &updatedAt, &s.Version); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		if s.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) members(ctx context.Context, projectID string) ([]project.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, role, joined_at FROM project_members WHERE project_id = ? ORDER BY user_id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying members of project %s: %w", projectID, err)
	}
	defer rows.Close()

	var out []project.Member
	for rows.Next() {
		var (
			m        project.Member
			role     string
			joinedAt string
		)
		if err := rows.Scan(&m.UserID, &role, &joinedAt); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		m.Role = project.Role(role)
		if !m.Role.IsValid() {
			return nil, fmt.Errorf("project %s has a member with corrupt role %q", projectID, role)
		}
		if m.JoinedAt, err = parseTime(joinedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
