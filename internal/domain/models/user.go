package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. Accounts are created on registration or on
// first Google sign-in; Google-only accounts carry no password hash.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"` // lowercase-normalized, unique
	Name         string             `bson:"name" json:"name"`
	Picture      *string            `bson:"picture,omitempty" json:"picture"`
	PasswordHash *string            `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
