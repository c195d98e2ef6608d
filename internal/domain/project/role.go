package project

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Role is a member's role within a project.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleViewer Role = "VIEWER"
)

// AllRoles returns all valid roles from most to least privileged.
func AllRoles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}
}

// ParseRole converts external input (case-insensitive) into a Role.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if !r.IsValid() {
		return "", domain.NewValidationError("role", fmt.Sprintf("invalid: %q", raw))
	}
	return r, nil
}

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

func (r Role) canManage() bool {
	return r == RoleOwner || r == RoleAdmin
}
