package taskstore_test

import (
	"testing"

	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := taskstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com")

	created, err := store.Create(ctx, models.Task{
		Title:    "Write report",
		Status:   models.StatusTodo,
		Priority: models.PriorityHigh,
		UserID:   user.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_ListByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := taskstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice@example.com")
	bob := fixtures.CreateUser(ctx, "Bob", "bob@example.com")

	first, err := store.Create(ctx, models.Task{Title: "First", Status: models.StatusTodo, Priority: models.PriorityLow, UserID: alice.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := store.Create(ctx, models.Task{Title: "Second", Status: models.StatusTodo, Priority: models.PriorityLow, UserID: alice.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Task{Title: "Bob's", Status: models.StatusTodo, Priority: models.PriorityLow, UserID: bob.ID}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tasks, err := store.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	// Newest first. Both inserts can land in the same millisecond, so
	// accept either ordering when the timestamps tie.
	if tasks[0].CreatedAt.After(second.CreatedAt) || tasks[1].CreatedAt.After(tasks[0].CreatedAt) {
		t.Errorf("expected newest-first ordering, got %q then %q", tasks[0].Title, tasks[1].Title)
	}
	_ = first

	empty, err := store.ListByUser(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty slice for unknown user, got %d tasks", len(empty))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := taskstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com")
	task := fixtures.CreateTask(ctx, "Original", user.ID)

	newTitle := "Renamed"
	newStatus := models.StatusDone
	updated, err := store.Update(ctx, task.ID, user.ID, taskstore.Patch{
		Title:  &newTitle,
		Status: &newStatus,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title: got %q", updated.Title)
	}
	if updated.Status != models.StatusDone {
		t.Errorf("status: got %q", updated.Status)
	}
	// Untouched field survives.
	if updated.Priority != models.PriorityMedium {
		t.Errorf("priority: got %q, want %q", updated.Priority, models.PriorityMedium)
	}
	if !updated.UpdatedAt.After(task.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestStore_Update_WrongOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := taskstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice@example.com")
	bob := fixtures.CreateUser(ctx, "Bob", "bob@example.com")
	task := fixtures.CreateTask(ctx, "Alice's task", alice.ID)

	title := "Hijacked"
	_, err := store.Update(ctx, task.ID, bob.ID, taskstore.Patch{Title: &title})
	if err != taskstore.ErrNotFound {
		t.Errorf("expected ErrNotFound for foreign task, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := taskstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@example.com")
	task := fixtures.CreateTask(ctx, "Disposable", user.ID)

	if err := store.Delete(ctx, task.ID, user.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := store.Delete(ctx, task.ID, user.ID); err != taskstore.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
