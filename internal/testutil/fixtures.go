package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/taskhub/internal/app/system/normalize"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user without a password (Google-only account).
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     normalize.Email(email),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateUserWithPassword creates a test user with a bcrypt password hash.
func (f *Fixtures) CreateUserWithPassword(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}
	hashStr := string(hash)

	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        normalize.Email(email),
		Name:         name,
		PasswordHash: &hashStr,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateGroup creates a test group owned by the given user, with the owner
// seeded as the first member.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, owner models.User) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	group := models.Group{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: "Test group description",
		OwnerID:     owner.ID,
		Members: []models.Member{{
			UserID:    owner.ID,
			UserName:  owner.Name,
			UserEmail: owner.Email,
			Role:      grouppolicy.RoleOwner,
			JoinedAt:  now,
		}},
		CreatedAt: now,
	}

	_, err := f.db.Collection("groups").InsertOne(ctx, group)
	if err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}

	return group
}

// AddMember appends a membership entry to a group and returns the updated
// group document.
func (f *Fixtures) AddMember(ctx context.Context, groupID primitive.ObjectID, user models.User, role string) models.Group {
	f.t.Helper()

	member := models.Member{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}

	_, err := f.db.Collection("groups").UpdateByID(ctx, groupID,
		bson.M{"$push": bson.M{"members": member}})
	if err != nil {
		f.t.Fatalf("failed to add test member: %v", err)
	}

	var g models.Group
	if err := f.db.Collection("groups").FindOne(ctx, bson.M{"_id": groupID}).Decode(&g); err != nil {
		f.t.Fatalf("failed to reload test group: %v", err)
	}
	return g
}

// CreateTask creates a personal task owned by the given user.
func (f *Fixtures) CreateTask(ctx context.Context, title string, userID primitive.ObjectID) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Status:    models.StatusTodo,
		Priority:  models.PriorityMedium,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("tasks").InsertOne(ctx, task)
	if err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}

	return task
}

// CreateGroupTask creates a group task in the given group.
func (f *Fixtures) CreateGroupTask(ctx context.Context, title string, groupID, createdBy primitive.ObjectID) models.GroupTask {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.GroupTask{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Status:    models.StatusTodo,
		Priority:  models.PriorityMedium,
		GroupID:   groupID,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("group_tasks").InsertOne(ctx, task)
	if err != nil {
		f.t.Fatalf("failed to create test group task: %v", err)
	}

	return task
}
