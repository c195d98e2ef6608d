package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService. Email uniqueness is enforced by
// the repository.
type UserService struct {
	users  ports.UserRepository
	newID  func() string
	logger *slog.Logger
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(users ports.UserRepository, logger *slog.Logger) *UserService {
	logger = logging.OrDiscard(logger)
	return &UserService{users: users, newID: uuid.NewString, logger: logger}
}

// CreateUser registers a new active user.
func (s *UserService) CreateUser(ctx context.Context, cmd ports.CreateUserCommand) (*user.User, error) {
	s.logger.InfoContext(ctx, "creating user")

	u, err := user.New(user.Params{
		ID:    s.newID(),
		Email: cmd.Email,
		Name:  cmd.Name,
		Bio:   cmd.Bio,
	})
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving user: %w", err)
	}
	return u, nil
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*user.User, error) {
	s.logger.InfoContext(ctx, "fetching user", slog.String("user_id", id))

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetUser"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// FindByEmail normalizes email and looks the user up by it.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, addr)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to find user by email",
			slog.String("operation", "FindByEmail"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*user.User, error) {
	s.logger.InfoContext(ctx, "listing users")

	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial update.
func (s *UserService) UpdateUser(ctx context.Context, id string, changes user.Changes) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating user", slog.String("user_id", id))

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "UpdateUser"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := u.Update(changes); err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to save user",
			slog.String("operation", "UpdateUser"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving user: %w", err)
	}
	return u, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting user", slog.String("user_id", id))

	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("operation", "DeleteUser"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
