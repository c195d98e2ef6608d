// Package project implements the Project aggregate: membership, roles and
// the permission checks every project-scoped operation relies on.
package project

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Member is a user's membership in a project.
type Member struct {
	UserID   string
	Role     Role
	JoinedAt time.Time
}

// Project groups tasks and controls who may act on them. The owner is always
// a member with RoleOwner. A Project is not safe for concurrent use.
type Project struct {
	base        domain.Entity[string]
	name        string
	description string
	ownerID     string
	members     map[string]Member
	active      bool
	events      domain.EventBuffer
}

// Params holds the inputs for New.
type Params struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
}

// New constructs an active project with the owner as its only member.
// No event is recorded.
func New(p Params) (*Project, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Project{
		base:        domain.NewEntity(p.ID, now),
		name:        p.Name,
		description: p.Description,
		ownerID:     p.OwnerID,
		members: map[string]Member{
			p.OwnerID: {UserID: p.OwnerID, Role: RoleOwner, JoinedAt: now},
		},
		active: true,
	}, nil
}

func (p *Params) validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.OwnerID) == "" {
		fields["owner_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Snapshot is the flat, persistable state of a Project.
type Snapshot struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	Active      bool
	Members     []Member
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int64
}

// Rehydrate rebuilds a Project from stored state. The owner membership is
// restored even if the stored member list lacks it.
func Rehydrate(s Snapshot) *Project {
	members := make(map[string]Member, len(s.Members)+1)
	for _, m := range s.Members {
		members[m.UserID] = m
	}
	owner, ok := members[s.OwnerID]
	if !ok {
		owner = Member{UserID: s.OwnerID, JoinedAt: s.CreatedAt}
	}
	owner.Role = RoleOwner
	members[s.OwnerID] = owner

	return &Project{
		base:        domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, s.Version),
		name:        s.Name,
		description: s.Description,
		ownerID:     s.OwnerID,
		members:     members,
		active:      s.Active,
	}
}

// Snapshot returns a copy of the current state with members sorted by user id.
func (p *Project) Snapshot() Snapshot {
	return Snapshot{
		ID:          p.base.ID(),
		Name:        p.name,
		Description: p.description,
		OwnerID:     p.ownerID,
		Active:      p.active,
		Members:     p.Members(),
		CreatedAt:   p.base.CreatedAt(),
		UpdatedAt:   p.base.UpdatedAt(),
		Version:     p.base.Version(),
	}
}

// ID returns the project id.
func (p *Project) ID() string { return p.base.ID() }

// CreatedAt returns when the project was created.
func (p *Project) CreatedAt() time.Time { return p.base.CreatedAt() }

// UpdatedAt returns when the project was last mutated.
func (p *Project) UpdatedAt() time.Time { return p.base.UpdatedAt() }

// Version returns the stored row version, or 0 if never saved.
func (p *Project) Version() int64 { return p.base.Version() }

// IsNew reports whether the project has never been saved.
func (p *Project) IsNew() bool { return p.base.IsNew() }

// Name returns the display name.
func (p *Project) Name() string { return p.name }

// Description returns the free-text description.
func (p *Project) Description() string { return p.description }

// OwnerID returns the id of the owning user.
func (p *Project) OwnerID() string { return p.ownerID }

// IsActive reports whether the project is active.
func (p *Project) IsActive() bool { return p.active }

// SetVersion records the row version after a successful save.
func (p *Project) SetVersion(v int64) { p.base.SetVersion(v) }

// Members returns a copy of the membership sorted by user id.
func (p *Project) Members() []Member {
	out := make([]Member, 0, len(p.members))
	for _, m := range p.members {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b Member) int {
		return strings.Compare(a.UserID, b.UserID)
	})
	return out
}

// DomainEvents returns a copy of the buffered events.
func (p *Project) DomainEvents() []domain.Event {
	return p.events.Events()
}

// ClearDomainEvents empties the event buffer.
func (p *Project) ClearDomainEvents() {
	p.events.Clear()
}

// Equals reports whether other is the same project by identity.
func (p *Project) Equals(other *Project) bool {
	if p == nil || other == nil {
		return false
	}
	return p.base.SameIdentity(&other.base)
}

// AddMember adds userID with role. Fails with ErrConflict if already a
// member, ErrForbidden if actingUserID cannot manage members, or a
// validation error for an unknown role.
func (p *Project) AddMember(userID string, role Role, actingUserID string) error {
	if _, ok := p.members[userID]; ok {
		return domain.Conflict("user %s is already a member of project %s", userID, p.ID())
	}
	if !p.CanManageMembers(actingUserID) {
		return domain.Forbidden("user %s cannot add members to project %s", actingUserID, p.ID())
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "invalid: "+string(role))
	}
	if strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("user_id", domain.MsgRequired)
	}

	now := time.Now().UTC()
	p.members[userID] = Member{UserID: userID, Role: role, JoinedAt: now}
	p.base.Touch(now)
	return nil
}

// RemoveMember removes userID. The owner can never be removed.
func (p *Project) RemoveMember(userID, actingUserID string) error {
	if _, ok := p.members[userID]; !ok {
		return domain.NotFound("user %s is not a member of project %s", userID, p.ID())
	}
	if userID == p.ownerID {
		return domain.Conflict("cannot remove the owner of project %s", p.ID())
	}
	if !p.CanManageMembers(actingUserID) {
		return domain.Forbidden("user %s cannot remove members from project %s", actingUserID, p.ID())
	}

	delete(p.members, userID)
	p.base.Touch(time.Now().UTC())
	return nil
}

// UpdateMemberRole replaces userID's role, keeping JoinedAt. The owner's
// role can never change.
func (p *Project) UpdateMemberRole(userID string, newRole Role, actingUserID string) error {
	m, ok := p.members[userID]
	if !ok {
		return domain.NotFound("user %s is not a member of project %s", userID, p.ID())
	}
	if userID == p.ownerID {
		return domain.Conflict("cannot change the owner's role in project %s", p.ID())
	}
	if !p.CanManageMembers(actingUserID) {
		return domain.Forbidden("user %s cannot change member roles in project %s", actingUserID, p.ID())
	}
	if !newRole.IsValid() {
		return domain.NewValidationError("role", "invalid: "+string(newRole))
	}

	m.Role = newRole
	p.members[userID] = m
	p.base.Touch(time.Now().UTC())
	return nil
}

// UpdateDetails replaces name and description.
func (p *Project) UpdateDetails(name, description, actingUserID string) error {
	if !p.CanManageProject(actingUserID) {
		return domain.Forbidden("user %s cannot update project %s", actingUserID, p.ID())
	}
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}

	p.name = name
	p.description = description
	p.base.Touch(time.Now().UTC())
	return nil
}

// Deactivate marks the project inactive.
func (p *Project) Deactivate(actingUserID string) error {
	if !p.CanManageProject(actingUserID) {
		return domain.Forbidden("user %s cannot deactivate project %s", actingUserID, p.ID())
	}
	p.active = false
	p.base.Touch(time.Now().UTC())
	return nil
}

// Activate marks the project active.
func (p *Project) Activate(actingUserID string) error {
	if !p.CanManageProject(actingUserID) {
		return domain.Forbidden("user %s cannot activate project %s", actingUserID, p.ID())
	}
	p.active = true
	p.base.Touch(time.Now().UTC())
	return nil
}

// IsMember reports whether userID belongs to the project.
func (p *Project) IsMember(userID string) bool {
	_, ok := p.members[userID]
	return ok
}

// MemberRole returns userID's role and whether userID is a member.
func (p *Project) MemberRole(userID string) (Role, bool) {
	m, ok := p.members[userID]
	return m.Role, ok
}

// CanManageProject reports whether userID is an OWNER or ADMIN.
func (p *Project) CanManageProject(userID string) bool {
	role, ok := p.MemberRole(userID)
	return ok && role.canManage()
}

// CanManageMembers reports whether userID may add, remove or re-role members.
func (p *Project) CanManageMembers(userID string) bool {
	return p.CanManageProject(userID)
}

// CanCreateTasks reports whether userID is a member other than a VIEWER.
func (p *Project) CanCreateTasks(userID string) bool {
	role, ok := p.MemberRole(userID)
	return ok && role != RoleViewer
}

// CanViewProject reports whether userID is any member.
func (p *Project) CanViewProject(userID string) bool {
	return p.IsMember(userID)
}
