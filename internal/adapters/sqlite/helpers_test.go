package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/sqlite"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/project"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/task"
	"github.com/jsamuelsen11/taskflow-service/internal/domain/user"
)

// newTestDB opens a migrated database file under t.TempDir.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func seedUsers(t *testing.T, db *sql.DB, ids ...string) {
	t.Helper()

	repo := sqlite.NewUserRepository(db)
	for _, id := range ids {
		u, err := user.New(user.Params{ID: id, Email: id + "@example.com", Name: id})
		if err != nil {
			t.Fatalf("user.New(%s) error = %v", id, err)
		}
		if err := repo.Save(context.Background(), u); err != nil {
			t.Fatalf("Save(user %s) error = %v", id, err)
		}
	}
}

func seedProject(t *testing.T, db *sql.DB, id, ownerID string) *project.Project {
	t.Helper()

	p, err := project.New(project.Params{ID: id, Name: "Project " + id, OwnerID: ownerID})
	if err != nil {
		t.Fatalf("project.New(%s) error = %v", id, err)
	}
	if err := sqlite.NewProjectRepository(db).Save(context.Background(), p); err != nil {
		t.Fatalf("Save(project %s) error = %v", id, err)
	}
	return p
}

func newTask(t *testing.T, id, projectID string) *task.Task {
	t.Helper()

	tk, err := task.New(task.Params{ID: id, Title: "Task " + id, ProjectID: projectID, CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("task.New(%s) error = %v", id, err)
	}
	return tk
}
