// Package user implements the User entity and its Email value object.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// User is a person who can own projects and be assigned tasks.
type User struct {
	base   domain.Entity[string]
	email  Email
	name   string
	bio    string
	active bool
}

// Params holds the inputs for New.
type Params struct {
	ID    string
	Email string
	Name  string
	Bio   string
}

// New constructs an active user.
func New(p Params) (*User, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(p.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		fields["email"] = emailMessage(err)
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &User{
		base:   domain.NewEntity(p.ID, time.Now().UTC()),
		email:  email,
		name:   p.Name,
		bio:    p.Bio,
		active: true,
	}, nil
}

// Changes is a partial update; nil fields are left unchanged.
type Changes struct {
	Name     *string
	Bio      *string
	IsActive *bool
}

// Update applies the non-nil fields of c. An empty name is rejected.
func (u *User) Update(c Changes) error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}

	if c.Name != nil {
		u.name = *c.Name
	}
	if c.Bio != nil {
		u.bio = *c.Bio
	}
	if c.IsActive != nil {
		u.active = *c.IsActive
	}
	u.base.Touch(time.Now().UTC())
	return nil
}

// Snapshot is the flat, persistable state of a User.
type Snapshot struct {
	ID        string
	Email     string
	Name      string
	Bio       string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

// Rehydrate rebuilds a User from stored state. The stored email is trusted.
func Rehydrate(s Snapshot) *User {
	return &User{
		base:   domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, s.Version),
		email:  Email{value: s.Email},
		name:   s.Name,
		bio:    s.Bio,
		active: s.Active,
	}
}

// Snapshot returns a copy of the current state.
func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:        u.base.ID(),
		Email:     u.email.String(),
		Name:      u.name,
		Bio:       u.bio,
		Active:    u.active,
		CreatedAt: u.base.CreatedAt(),
		UpdatedAt: u.base.UpdatedAt(),
		Version:   u.base.Version(),
	}
}

// ID returns the user id.
func (u *User) ID() string { return u.base.ID() }

// CreatedAt returns when the user was created.
func (u *User) CreatedAt() time.Time { return u.base.CreatedAt() }

// UpdatedAt returns when the user was last mutated.
func (u *User) UpdatedAt() time.Time { return u.base.UpdatedAt() }

// Version returns the stored row version, or 0 if never saved.
func (u *User) Version() int64 { return u.base.Version() }

// IsNew reports whether the user has never been saved.
func (u *User) IsNew() bool { return u.base.IsNew() }

// Email returns the normalized address.
func (u *User) Email() Email { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Bio returns the profile text.
func (u *User) Bio() string { return u.bio }

// IsActive reports whether the user is active.
func (u *User) IsActive() bool { return u.active }

// SetVersion records the row version after a successful save.
func (u *User) SetVersion(v int64) { u.base.SetVersion(v) }

// Equals reports whether other is the same user by identity.
func (u *User) Equals(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	return u.base.SameIdentity(&other.base)
}

func emailMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields["email"]
	}
	return err.Error()
}
