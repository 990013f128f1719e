// internal/app/store/grouptasks/grouptaskstore.go
package grouptaskstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("group task not found")

const listCap = 1000

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("group_tasks")}
}

// ListByGroup returns the group's tasks, newest first.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.GroupTask, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listCap)
	cur, err := s.c.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := []models.GroupTask{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) Create(ctx context.Context, t models.GroupTask) (models.GroupTask, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.GroupTask{}, err
	}
	return t, nil
}

// Get loads a task scoped to its group. A task ID from another group
// behaves like a missing task.
func (s *Store) Get(ctx context.Context, id, groupID primitive.ObjectID) (models.GroupTask, error) {
	var t models.GroupTask
	err := s.c.FindOne(ctx, bson.M{"_id": id, "group_id": groupID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.GroupTask{}, ErrNotFound
		}
		return models.GroupTask{}, err
	}
	return t, nil
}

// Patch holds the optional fields of a group-task update. Nil fields are
// left untouched. SetAssignee distinguishes "assign to nobody" from "leave
// the assignee alone": when true, AssignedTo and AssignedToName are written
// even if nil.
type Patch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string

	SetAssignee    bool
	AssignedTo     *primitive.ObjectID
	AssignedToName *string
}

// Update applies a patch to the task scoped to groupID and returns the
// updated document.
func (s *Store) Update(ctx context.Context, id, groupID primitive.ObjectID, p Patch) (models.GroupTask, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Priority != nil {
		set["priority"] = *p.Priority
	}
	if p.DueDate != nil {
		set["due_date"] = *p.DueDate
	}
	if p.SetAssignee {
		set["assigned_to"] = p.AssignedTo
		set["assigned_to_name"] = p.AssignedToName
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.GroupTask
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "group_id": groupID},
		bson.M{"$set": set},
		opts,
	).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.GroupTask{}, ErrNotFound
		}
		return models.GroupTask{}, err
	}
	return t, nil
}

// Delete removes the task scoped to groupID.
func (s *Store) Delete(ctx context.Context, id, groupID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "group_id": groupID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByGroup removes all tasks in a group. Used when the group itself is
// deleted. Returns the number of documents deleted.
func (s *Store) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
