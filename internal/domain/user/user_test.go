package user

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func TestNew(t *testing.T) {
	t.Parallel()

	u, err := New(Params{ID: "user-1", Email: " Ada@Example.com ", Name: "Ada", Bio: "math"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if u.Email().String() != "ada@example.com" {
		t.Errorf("Email() = %q, want ada@example.com", u.Email())
	}
	if !u.IsActive() {
		t.Error("new user should be active")
	}
	if !u.IsNew() {
		t.Error("new user should report IsNew")
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(Params{ID: "", Email: "bogus", Name: " "})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("New() error = %v, want *domain.ValidationError", err)
	}
	for _, field := range []string{"id", "email", "name"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields = %v, want key %q", verr.Fields, field)
		}
	}
	if verr.Fields["email"] != "invalid format" {
		t.Errorf("Fields[email] = %q, want %q", verr.Fields["email"], "invalid format")
	}
}

func TestUser_Update(t *testing.T) {
	t.Parallel()

	name := "Grace"
	bio := ""
	inactive := false

	tests := []struct {
		name    string
		changes Changes
		check   func(t *testing.T, u *User)
		wantErr error
	}{
		{
			name:    "rename only",
			changes: Changes{Name: &name},
			check: func(t *testing.T, u *User) {
				if u.Name() != "Grace" || u.Bio() != "math" || !u.IsActive() {
					t.Errorf("got name=%q bio=%q active=%v", u.Name(), u.Bio(), u.IsActive())
				}
			},
		},
		{
			name:    "clear bio and deactivate",
			changes: Changes{Bio: &bio, IsActive: &inactive},
			check: func(t *testing.T, u *User) {
				if u.Name() != "Ada" || u.Bio() != "" || u.IsActive() {
					t.Errorf("got name=%q bio=%q active=%v", u.Name(), u.Bio(), u.IsActive())
				}
			},
		},
		{
			name:    "blank name rejected",
			changes: Changes{Name: new(string), Bio: &bio},
			check: func(t *testing.T, u *User) {
				if u.Name() != "Ada" || u.Bio() != "math" {
					t.Error("rejected update mutated the user")
				}
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := New(Params{ID: "user-1", Email: "ada@example.com", Name: "Ada", Bio: "math"})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if err := u.Update(tt.changes); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			tt.check(t, u)
		})
	}
}

func TestRehydrate(t *testing.T) {
	t.Parallel()

	u, err := New(Params{ID: "user-1", Email: "ada@example.com", Name: "Ada"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	u.SetVersion(3)

	snap := u.Snapshot()
	got := Rehydrate(snap)
	if got.Snapshot() != snap {
		t.Errorf("Snapshot() = %+v, want %+v", got.Snapshot(), snap)
	}
	if !got.Equals(u) {
		t.Error("rehydrated user should equal original")
	}
}
