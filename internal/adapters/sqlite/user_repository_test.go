package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/sqlite"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

func TestUserRepository_SaveAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := sqlite.NewUserRepository(newTestDB(t))

	u, err := user.New(user.Params{ID: "ada", Email: "Ada@Example.com", Name: "Ada", Bio: "first"})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if u.Version() != 1 {
		t.Errorf("Version() after insert = %d, want 1", u.Version())
	}

	got, err := repo.FindByID(ctx, "ada")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	gs, ws := got.Snapshot(), u.Snapshot()
	if gs.Email != "ada@example.com" || gs.Name != ws.Name || gs.Bio != ws.Bio || !gs.Active || gs.Version != 1 {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", gs, ws)
	}
	if !gs.CreatedAt.Equal(ws.CreatedAt) || !gs.UpdatedAt.Equal(ws.UpdatedAt) {
		t.Errorf("timestamps = %v/%v, want %v/%v", gs.CreatedAt, gs.UpdatedAt, ws.CreatedAt, ws.UpdatedAt)
	}

	email, _ := user.NewEmail("ada@example.com")
	byEmail, err := repo.FindByEmail(ctx, email)
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if !byEmail.Equals(u) {
		t.Error("FindByEmail() returned a different user")
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := sqlite.NewUserRepository(newTestDB(t))
	email, _ := user.NewEmail("ghost@example.com")

	if _, err := repo.FindByID(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByEmail(ctx, email); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByEmail() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedUsers(t, db, "ada")
	repo := sqlite.NewUserRepository(db)

	dup, err := user.New(user.Params{ID: "other", Email: "ada@example.com", Name: "Imposter"})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, dup); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Save() error = %v, want ErrConflict", err)
	}
	if dup.Version() != 0 {
		t.Errorf("failed save changed version to %d", dup.Version())
	}
}

func TestUserRepository_StaleVersion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedUsers(t, db, "ada")
	repo := sqlite.NewUserRepository(db)

	first, _ := repo.FindByID(ctx, "ada")
	second, _ := repo.FindByID(ctx, "ada")

	name := "Ada Lovelace"
	if err := first.Update(user.Changes{Name: &name}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if first.Version() != 2 {
		t.Errorf("Version() = %d, want 2", first.Version())
	}

	bio := "lost update"
	if err := second.Update(user.Changes{Bio: &bio}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, second); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("stale Save() error = %v, want ErrConflict", err)
	}

	got, _ := repo.FindByID(ctx, "ada")
	if got.Name() != name || got.Bio() != "" {
		t.Errorf("stored user = %q/%q, want first writer's state", got.Name(), got.Bio())
	}
}

func TestUserRepository_FindAllAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedUsers(t, db, "ada", "bob", "cy")
	repo := sqlite.NewUserRepository(db)

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll() = %d users, want 3", len(all))
	}

	if err := repo.Delete(ctx, "bob"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	all, _ = repo.FindAll(ctx)
	if len(all) != 2 {
		t.Errorf("FindAll() after delete = %d users, want 2", len(all))
	}
}

func TestUserRepository_DeleteProjectOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedUsers(t, db, "alice")
	seedProject(t, db, "proj-1", "alice")

	err := sqlite.NewUserRepository(db).Delete(ctx, "alice")
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Delete(owner) error = %v, want ErrConflict", err)
	}
}
