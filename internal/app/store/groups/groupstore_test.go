package groupstore_test

import (
	"testing"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	groupstore "github.com/dalemusser/taskhub/internal/app/store/groups"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Olive", "olive@example.com")

	created, err := store.Create(ctx, models.Group{
		Name:    "Research",
		OwnerID: owner.ID,
		Members: []models.Member{{
			UserID:   owner.ID,
			UserName: owner.Name,
			Role:     grouppolicy.RoleOwner,
		}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(found.Members) != 1 || found.Members[0].Role != grouppolicy.RoleOwner {
		t.Errorf("members: got %+v", found.Members)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != groupstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListByMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Olive", "olive@example.com")
	member := fixtures.CreateUser(ctx, "Max", "max@example.com")

	g1 := fixtures.CreateGroup(ctx, "Alpha", owner)
	fixtures.CreateGroup(ctx, "Beta", owner)
	fixtures.AddMember(ctx, g1.ID, member, grouppolicy.RoleMember)

	ownerGroups, err := store.ListByMember(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByMember failed: %v", err)
	}
	if len(ownerGroups) != 2 {
		t.Errorf("owner groups: got %d, want 2", len(ownerGroups))
	}

	memberGroups, err := store.ListByMember(ctx, member.ID)
	if err != nil {
		t.Fatalf("ListByMember failed: %v", err)
	}
	if len(memberGroups) != 1 || memberGroups[0].Name != "Alpha" {
		t.Errorf("member groups: got %+v", memberGroups)
	}
}

func TestStore_GetByIDForMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Olive", "olive@example.com")
	outsider := fixtures.CreateUser(ctx, "Oscar", "oscar@example.com")
	g := fixtures.CreateGroup(ctx, "Private", owner)

	if _, err := store.GetByIDForMember(ctx, g.ID, owner.ID); err != nil {
		t.Fatalf("GetByIDForMember for member failed: %v", err)
	}

	// A real group the caller is not in must be indistinguishable from a
	// nonexistent one.
	if _, err := store.GetByIDForMember(ctx, g.ID, outsider.ID); err != groupstore.ErrNotFound {
		t.Errorf("expected ErrNotFound for non-member, got %v", err)
	}
}

func TestStore_UpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Olive", "olive@example.com")
	g := fixtures.CreateGroup(ctx, "Old Name", owner)

	newName := "New Name"
	if err := store.UpdateInfo(ctx, g.ID, &newName, nil); err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}

	found, err := store.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Name != "New Name" {
		t.Errorf("name: got %q", found.Name)
	}
	if found.Description != "Test group description" {
		t.Errorf("description should be untouched, got %q", found.Description)
	}

	if err := store.UpdateInfo(ctx, primitive.NewObjectID(), &newName, nil); err != groupstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AddAndRemoveMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Olive", "olive@example.com")
	newbie := fixtures.CreateUser(ctx, "Nina", "nina@example.com")
	g := fixtures.CreateGroup(ctx, "Team", owner)

	err := store.AddMember(ctx, g.ID, models.Member{
		UserID:    newbie.ID,
		UserName:  newbie.Name,
		UserEmail: newbie.Email,
		Role:      grouppolicy.RoleViewer,
	})
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	found, err := store.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(found.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(found.Members))
	}

	if err := store.RemoveMember(ctx, g.ID, newbie.ID); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	found, err = store.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(found.Members) != 1 || found.Members[0].UserID != owner.ID {
		t.Errorf("members after removal: got %+v", found.Members)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Olive", "olive@example.com")
	g := fixtures.CreateGroup(ctx, "Doomed", owner)

	if err := store.Delete(ctx, g.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, g.ID); err != groupstore.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
