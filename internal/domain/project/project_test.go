package project

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const (
	ownerID  = "user-owner"
	adminID  = "user-admin"
	memberID = "user-member"
	viewerID = "user-viewer"
	outsider = "user-outsider"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	p, err := New(Params{ID: "proj-1", Name: "Apollo", Description: "Moon", OwnerID: ownerID})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

// newStaffedProject returns a project with one member of each role.
func newStaffedProject(t *testing.T) *Project {
	t.Helper()
	p := newTestProject(t)
	for id, role := range map[string]Role{adminID: RoleAdmin, memberID: RoleMember, viewerID: RoleViewer} {
		if err := p.AddMember(id, role, ownerID); err != nil {
			t.Fatalf("AddMember(%s) error = %v", id, err)
		}
	}
	return p
}

func TestNew(t *testing.T) {
	t.Parallel()

	p := newTestProject(t)

	if !p.IsActive() {
		t.Error("new project should be active")
	}
	if role, ok := p.MemberRole(ownerID); !ok || role != RoleOwner {
		t.Errorf("MemberRole(owner) = %q, %v; want OWNER, true", role, ok)
	}
	members := p.Members()
	if len(members) != 1 || members[0].UserID != ownerID {
		t.Errorf("Members() = %+v, want only the owner", members)
	}
	if len(p.DomainEvents()) != 0 {
		t.Errorf("New recorded %d events, want 0", len(p.DomainEvents()))
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    Params
		wantField string
	}{
		{name: "missing name", params: Params{ID: "p", OwnerID: "u"}, wantField: "name"},
		{name: "missing owner", params: Params{ID: "p", Name: "n"}, wantField: "owner_id"},
		{name: "missing id", params: Params{Name: "n", OwnerID: "u"}, wantField: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.params)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestProject_Permissions(t *testing.T) {
	t.Parallel()

	p := newStaffedProject(t)

	tests := []struct {
		user          string
		manage        bool
		createTasks   bool
		view          bool
		wantRole      Role
		wantMemberHit bool
	}{
		{user: ownerID, manage: true, createTasks: true, view: true, wantRole: RoleOwner, wantMemberHit: true},
		{user: adminID, manage: true, createTasks: true, view: true, wantRole: RoleAdmin, wantMemberHit: true},
		{user: memberID, manage: false, createTasks: true, view: true, wantRole: RoleMember, wantMemberHit: true},
		{user: viewerID, manage: false, createTasks: false, view: true, wantRole: RoleViewer, wantMemberHit: true},
		{user: outsider, manage: false, createTasks: false, view: false, wantRole: "", wantMemberHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			t.Parallel()

			if got := p.CanManageProject(tt.user); got != tt.manage {
				t.Errorf("CanManageProject() = %v, want %v", got, tt.manage)
			}
			if got := p.CanManageMembers(tt.user); got != tt.manage {
				t.Errorf("CanManageMembers() = %v, want %v", got, tt.manage)
			}
			if got := p.CanCreateTasks(tt.user); got != tt.createTasks {
				t.Errorf("CanCreateTasks() = %v, want %v", got, tt.createTasks)
			}
			if got := p.CanViewProject(tt.user); got != tt.view {
				t.Errorf("CanViewProject() = %v, want %v", got, tt.view)
			}
			if got := p.IsMember(tt.user); got != tt.wantMemberHit {
				t.Errorf("IsMember() = %v, want %v", got, tt.wantMemberHit)
			}
			role, ok := p.MemberRole(tt.user)
			if role != tt.wantRole || ok != tt.wantMemberHit {
				t.Errorf("MemberRole() = %q, %v; want %q, %v", role, ok, tt.wantRole, tt.wantMemberHit)
			}
		})
	}
}

func TestProject_AddMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  string
		role    Role
		acting  string
		wantErr error
	}{
		{name: "owner adds member", userID: "new", role: RoleMember, acting: ownerID},
		{name: "admin adds viewer", userID: "new", role: RoleViewer, acting: adminID},
		{name: "duplicate member", userID: memberID, role: RoleViewer, acting: ownerID, wantErr: domain.ErrConflict},
		{name: "duplicate checked before permission", userID: adminID, role: RoleViewer, acting: viewerID, wantErr: domain.ErrConflict},
		{name: "member cannot add", userID: "new", role: RoleMember, acting: memberID, wantErr: domain.ErrForbidden},
		{name: "viewer cannot add", userID: "new", role: RoleMember, acting: viewerID, wantErr: domain.ErrForbidden},
		{name: "outsider cannot add", userID: "new", role: RoleMember, acting: outsider, wantErr: domain.ErrForbidden},
		{name: "unknown role", userID: "new", role: "GUEST", acting: ownerID, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newStaffedProject(t)
			before := len(p.Members())

			err := p.AddMember(tt.userID, tt.role, tt.acting)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddMember() error = %v, want %v", err, tt.wantErr)
				}
				if len(p.Members()) != before {
					t.Error("failed AddMember changed the membership")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddMember() error = %v", err)
			}
			if role, ok := p.MemberRole(tt.userID); !ok || role != tt.role {
				t.Errorf("MemberRole() = %q, %v; want %q", role, ok, tt.role)
			}
		})
	}
}

func TestProject_RemoveMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  string
		acting  string
		wantErr error
	}{
		{name: "owner removes member", userID: memberID, acting: ownerID},
		{name: "admin removes viewer", userID: viewerID, acting: adminID},
		{name: "not a member", userID: outsider, acting: ownerID, wantErr: domain.ErrNotFound},
		{name: "owner cannot be removed by owner", userID: ownerID, acting: ownerID, wantErr: domain.ErrConflict},
		{name: "owner cannot be removed by admin", userID: ownerID, acting: adminID, wantErr: domain.ErrConflict},
		{name: "member lacks permission", userID: viewerID, acting: memberID, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newStaffedProject(t)
			err := p.RemoveMember(tt.userID, tt.acting)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RemoveMember() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RemoveMember() error = %v", err)
			}
			if p.IsMember(tt.userID) {
				t.Errorf("%s still a member after removal", tt.userID)
			}
		})
	}
}

func TestProject_UpdateMemberRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  string
		role    Role
		acting  string
		wantErr error
	}{
		{name: "owner promotes member", userID: memberID, role: RoleAdmin, acting: ownerID},
		{name: "admin demotes member", userID: memberID, role: RoleViewer, acting: adminID},
		{name: "not a member", userID: outsider, role: RoleAdmin, acting: ownerID, wantErr: domain.ErrNotFound},
		{name: "owner role is fixed", userID: ownerID, role: RoleAdmin, acting: ownerID, wantErr: domain.ErrConflict},
		{name: "viewer lacks permission", userID: memberID, role: RoleAdmin, acting: viewerID, wantErr: domain.ErrForbidden},
		{name: "unknown role", userID: memberID, role: "ROOT", acting: ownerID, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newStaffedProject(t)
			before, _ := p.MemberRole(tt.userID)
			joined := memberJoinedAt(p, tt.userID)

			err := p.UpdateMemberRole(tt.userID, tt.role, tt.acting)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateMemberRole() error = %v, want %v", err, tt.wantErr)
				}
				if after, _ := p.MemberRole(tt.userID); after != before {
					t.Errorf("role changed to %q on failure", after)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateMemberRole() error = %v", err)
			}
			if got, _ := p.MemberRole(tt.userID); got != tt.role {
				t.Errorf("MemberRole() = %q, want %q", got, tt.role)
			}
			if !memberJoinedAt(p, tt.userID).Equal(joined) {
				t.Error("UpdateMemberRole changed JoinedAt")
			}
		})
	}
}

func TestProject_OwnerAlwaysOwner(t *testing.T) {
	t.Parallel()

	p := newStaffedProject(t)
	for _, acting := range []string{ownerID, adminID, memberID, viewerID, outsider} {
		if err := p.RemoveMember(ownerID, acting); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("RemoveMember(owner) by %s error = %v, want ErrConflict", acting, err)
		}
		for _, role := range AllRoles() {
			if err := p.UpdateMemberRole(ownerID, role, acting); !errors.Is(err, domain.ErrConflict) {
				t.Errorf("UpdateMemberRole(owner, %s) by %s error = %v, want ErrConflict", role, acting, err)
			}
		}
	}
	if role, _ := p.MemberRole(ownerID); role != RoleOwner {
		t.Errorf("MemberRole(owner) = %q, want OWNER", role)
	}
}

func TestProject_ManageProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		acting  string
		wantErr error
	}{
		{name: "owner", acting: ownerID},
		{name: "admin", acting: adminID},
		{name: "member", acting: memberID, wantErr: domain.ErrForbidden},
		{name: "viewer", acting: viewerID, wantErr: domain.ErrForbidden},
		{name: "outsider", acting: outsider, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newStaffedProject(t)

			err := p.UpdateDetails("Artemis", "Return", tt.acting)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateDetails() error = %v, want %v", err, tt.wantErr)
			}
			err = p.Deactivate(tt.acting)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Deactivate() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				if p.Name() != "Apollo" || !p.IsActive() {
					t.Error("rejected call mutated the project")
				}
				return
			}
			if p.Name() != "Artemis" || p.Description() != "Return" {
				t.Errorf("details = %q/%q", p.Name(), p.Description())
			}
			if p.IsActive() {
				t.Error("project should be inactive after Deactivate")
			}
			if err := p.Activate(tt.acting); err != nil {
				t.Fatalf("Activate() error = %v", err)
			}
			if !p.IsActive() {
				t.Error("project should be active after Activate")
			}
		})
	}
}

func TestProject_MembersReturnsCopy(t *testing.T) {
	t.Parallel()

	p := newStaffedProject(t)
	members := p.Members()
	for i := 1; i < len(members); i++ {
		if members[i-1].UserID > members[i].UserID {
			t.Errorf("Members() not sorted: %q before %q", members[i-1].UserID, members[i].UserID)
		}
	}
	if members[0].UserID != adminID {
		t.Fatalf("Members()[0] = %q, want %q", members[0].UserID, adminID)
	}
	members[0].Role = RoleViewer
	if role, _ := p.MemberRole(adminID); role != RoleAdmin {
		t.Errorf("MemberRole(admin) = %q after mutating copy, want ADMIN", role)
	}
}

func TestRehydrate(t *testing.T) {
	t.Parallel()

	orig := newStaffedProject(t)
	orig.SetVersion(2)

	p := Rehydrate(orig.Snapshot())
	if !p.Equals(orig) {
		t.Error("rehydrated project should equal original")
	}
	if p.Version() != 2 || p.IsNew() {
		t.Errorf("Version() = %d, IsNew() = %v", p.Version(), p.IsNew())
	}
	if len(p.Members()) != 4 {
		t.Errorf("len(Members()) = %d, want 4", len(p.Members()))
	}

	// A snapshot missing the owner row still yields an owner membership.
	snap := orig.Snapshot()
	snap.Members = nil
	if role, ok := Rehydrate(snap).MemberRole(ownerID); !ok || role != RoleOwner {
		t.Errorf("MemberRole(owner) = %q, %v; want OWNER, true", role, ok)
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	if r, err := ParseRole(" admin "); err != nil || r != RoleAdmin {
		t.Errorf("ParseRole(admin) = %q, %v", r, err)
	}
	if _, err := ParseRole("superuser"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ParseRole(superuser) error = %v, want ErrValidation", err)
	}
}

func memberJoinedAt(p *Project, userID string) (joined time.Time) {
	for _, m := range p.Members() {
		if m.UserID == userID {
			return m.JoinedAt
		}
	}
	return joined
}

func TestProject_MutationsAdvanceUpdatedAt(t *testing.T) {
	t.Parallel()

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*Project) error
	}{
		{name: "AddMember", mutate: func(p *Project) error { return p.AddMember("new", RoleMember, ownerID) }},
		{name: "RemoveMember", mutate: func(p *Project) error { return p.RemoveMember(memberID, ownerID) }},
		{name: "UpdateMemberRole", mutate: func(p *Project) error { return p.UpdateMemberRole(viewerID, RoleAdmin, ownerID) }},
		{name: "UpdateDetails", mutate: func(p *Project) error { return p.UpdateDetails("Artemis", "Return", ownerID) }},
		{name: "Deactivate", mutate: func(p *Project) error { return p.Deactivate(ownerID) }},
		{name: "Activate", mutate: func(p *Project) error { return p.Activate(adminID) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := newStaffedProject(t).Snapshot()
			snap.CreatedAt = stale
			snap.UpdatedAt = stale
			snap.Version = 1
			p := Rehydrate(snap)

			if err := tt.mutate(p); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			if !p.UpdatedAt().After(stale) {
				t.Errorf("UpdatedAt() = %v, want after %v", p.UpdatedAt(), stale)
			}
			if !p.CreatedAt().Equal(stale) {
				t.Errorf("CreatedAt() = %v, want unchanged %v", p.CreatedAt(), stale)
			}
		})
	}
}

func TestProject_RejectedMutationKeepsUpdatedAt(t *testing.T) {
	t.Parallel()

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := newStaffedProject(t).Snapshot()
	snap.UpdatedAt = stale
	p := Rehydrate(snap)

	if err := p.UpdateDetails("Artemis", "", viewerID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UpdateDetails() error = %v, want ErrForbidden", err)
	}
	if err := p.RemoveMember(ownerID, ownerID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("RemoveMember(owner) error = %v, want ErrConflict", err)
	}
	if !p.UpdatedAt().Equal(stale) {
		t.Errorf("UpdatedAt() = %v, want unchanged %v", p.UpdatedAt(), stale)
	}
}

func TestProject_EqualsNil(t *testing.T) {
	t.Parallel()

	p := newTestProject(t)
	var nilProject *Project

	tests := []struct {
		name  string
		left  *Project
		right *Project
	}{
		{name: "nil other", left: p, right: nil},
		{name: "nil receiver", left: nilProject, right: p},
		{name: "both nil", left: nilProject, right: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.left.Equals(tt.right) {
				t.Error("Equals() = true, want false")
			}
		})
	}
}
