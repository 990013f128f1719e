package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupTask is a task shared by a group. AssignedToName is a denormalized
// snapshot of the assignee's membership name; it must be recomputed (or
// cleared) from the current member list whenever AssignedTo changes.
type GroupTask struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title          string              `bson:"title" json:"title"`
	Description    string              `bson:"description" json:"description"`
	Status         string              `bson:"status" json:"status"`
	Priority       string              `bson:"priority" json:"priority"`
	DueDate        *string             `bson:"due_date,omitempty" json:"due_date"`
	GroupID        primitive.ObjectID  `bson:"group_id" json:"group_id"`
	CreatedBy      primitive.ObjectID  `bson:"created_by" json:"created_by"`
	AssignedTo     *primitive.ObjectID `bson:"assigned_to,omitempty" json:"assigned_to"`
	AssignedToName *string             `bson:"assigned_to_name,omitempty" json:"assigned_to_name"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
