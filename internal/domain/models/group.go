package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a collaboration space with an embedded, ordered member list.
//
// Invariant: exactly one member holds the "owner" role. It is assigned to
// the creator when the group is created and no operation may change it,
// promote another member to it, or remove it.
type Group struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	OwnerID     primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Members     []Member           `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Member is a user's role-bearing association with a group. UserName and
// UserEmail are snapshots captured at invite time; they are not kept in
// sync with later profile edits.
type Member struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	Role      string             `bson:"role" json:"role"` // owner | admin | member | viewer
	JoinedAt  time.Time          `bson:"joined_at" json:"joined_at"`
}
