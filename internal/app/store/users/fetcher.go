package userstore

import (
	"context"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fetcher adapts Store to the auth guard's lookup interface.
type Fetcher struct {
	Store *Store
}

func (f Fetcher) FetchByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, err := f.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
