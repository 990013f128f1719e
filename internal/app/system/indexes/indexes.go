// Package indexes creates the MongoDB indexes the application relies on.
// It runs once at startup (EnsureSchema) and in test database setup.
package indexes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure creates all indexes. Index creation is idempotent, so calling it
// on every startup is safe.
func Ensure(ctx context.Context, db *mongo.Database) error {
	// Unique email backs duplicate-registration detection.
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("tasks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	// Group listing filters on the embedded member list.
	_, err = db.Collection("groups").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "members.user_id", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("group_tasks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
