package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

const userColumns = `id, email, name, bio, active, created_at, updated_at, version`

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save upserts u. A taken email maps to domain.ErrConflict.
func (r *UserRepository) Save(ctx context.Context, u *user.User) (err error) {
	ctx, span := startSpan(ctx, "UPSERT", "users")
	defer func() { endSpan(span, err) }()

	s := u.Snapshot()
	next := s.Version + 1

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     email = excluded.email,
		     name = excluded.name,
		     bio = excluded.bio,
		     active = excluded.active,
		     updated_at = excluded.updated_at,
		     version = excluded.version
		 WHERE users.version = ?`,
		s.ID, s.Email, s.Name, s.Bio, s.Active, formatTime(s.CreatedAt), formatTime(s.UpdatedAt), next,
		s.Version,
	)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflict("email %s is already registered", s.Email)
	}
	if err := upsertResult(res, err, "user", s.ID); err != nil {
		return err
	}
	u.SetVersion(next)
	return nil
}

// FindByID returns domain.ErrNotFound if absent.
func (r *UserRepository) FindByID(ctx context.Context, id string) (_ *user.User, err error) {
	ctx, span := startSpan(ctx, "SELECT", "users")
	defer func() { endSpan(span, err) }()

	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user %s", id)
	}
	return u, err
}

// FindByEmail returns domain.ErrNotFound if no user has the address.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (_ *user.User, err error) {
	ctx, span := startSpan(ctx, "SELECT", "users")
	defer func() { endSpan(span, err) }()

	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email.String())
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user with email %s", email)
	}
	return u, err
}

// FindAll returns every user ordered by creation time.
func (r *UserRepository) FindAll(ctx context.Context) (_ []*user.User, err error) {
	ctx, span := startSpan(ctx, "SELECT", "users")
	defer func() { endSpan(span, err) }()

	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var out []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Delete removes the user and their memberships. A user who still owns a
// project cannot be deleted and gets domain.ErrConflict.
func (r *UserRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "DELETE", "users")
	defer func() { endSpan(span, err) }()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil && isForeignKeyViolation(err) {
		return domain.Conflict("user %s still owns projects", id)
	}
	return expectOne(res, err, "user", id)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		s                    user.Snapshot
		createdAt, updatedAt string
	)
	if err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Bio, &s.Active, &createdAt, &updatedAt, &s.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	var err error
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return user.Rehydrate(s), nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
