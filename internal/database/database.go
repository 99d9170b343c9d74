// Package database owns the MongoDB connection and collection handles.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/espace-agenda/core/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	contactsCollection  = "contacts"
	blogPostsCollection = "blog_posts"

	connectTimeout = 10 * time.Second
)

// Database wraps the Mongo client and the application database.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.AppConfig) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Database.Name),
	}, nil
}

// Contacts returns the contact submissions collection.
func (d *Database) Contacts() *mongo.Collection {
	return d.db.Collection(contactsCollection)
}

// BlogPosts returns the blog posts collection.
func (d *Database) BlogPosts() *mongo.Collection {
	return d.db.Collection(blogPostsCollection)
}

// Close disconnects the underlying client.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
