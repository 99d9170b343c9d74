package blog

import (
	"context"
	"errors"

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

func (m *mongoStore) Insert(ctx context.Context, post *models.BlogPost) error {
	_, err := m.c.InsertOne(ctx, post)
	return err
}

func (m *mongoStore) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.BlogPost, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := m.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	posts := make([]models.BlogPost, 0, limit)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *mongoStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return m.c.CountDocuments(ctx, filter)
}

func (m *mongoStore) FindByID(ctx context.Context, id string, publishedOnly bool) (*models.BlogPost, error) {
	filter := bson.M{"id": id}
	if publishedOnly {
		filter["published"] = true
	}

	var post models.BlogPost
	if err := m.c.FindOne(ctx, filter).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (m *mongoStore) Update(ctx context.Context, id string, set bson.M) (int64, error) {
	res, err := m.c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *mongoStore) Delete(ctx context.Context, id string) (int64, error) {
	res, err := m.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *mongoStore) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := m.c.Distinct(ctx, "category", bson.M{"published": true})
	if err != nil {
		return nil, err
	}

	cats := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			cats = append(cats, s)
		}
	}
	return cats, nil
}
