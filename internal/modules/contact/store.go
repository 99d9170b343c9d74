package contact

import (
	"context"

	"github.com/espace-agenda/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore is the MongoDB-backed Store. Documents are addressed by the
// application-level "id" field, not the driver's "_id".
type mongoStore struct {
	c *mongo.Collection
}

func NewMongoStore(c *mongo.Collection) Store {
	return &mongoStore{c: c}
}

func (m *mongoStore) Insert(ctx context.Context, sub *models.ContactSubmission) error {
	_, err := m.c.InsertOne(ctx, sub)
	return err
}

func (m *mongoStore) List(ctx context.Context, limit, skip int64) ([]models.ContactSubmission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := m.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	subs := make([]models.ContactSubmission, 0, limit)
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
