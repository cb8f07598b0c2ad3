package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"true-feelings/config"
	"true-feelings/internal/logger"
)

const (
	CollectionPosts      = "posts"
	CollectionCategories = "categories"
	CollectionTags       = "tags"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init connects the global Mongo client, pings it and ensures indexes.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	var initErr error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Database)

		if err := EnsureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Infof("MongoDB connected and indexes ensured (db=%s)", cfg.Database)
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Disconnect closes the global client if it was opened.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping checks the primary is reachable; used by the health endpoint.
func Ping(ctx context.Context) error {
	if client == nil {
		return mongo.ErrClientDisconnected
	}
	return client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes every query and uniqueness rule depends on.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	// posts: slug is the source of truth for uniqueness
	posts := d.Collection(CollectionPosts)
	if _, err := posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "excerpt", Value: "text"},
				{Key: "content", Value: "text"},
			},
			Options: options.Index().SetName("txt_title_excerpt_content").
				SetWeights(bson.D{{Key: "title", Value: 10}, {Key: "excerpt", Value: 5}, {Key: "content", Value: 1}}),
		},
		{
			Keys:    bson.D{{Key: "categories", Value: 1}},
			Options: options.Index().SetName("idx_categories"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("idx_tags"),
		},
		{
			Keys: bson.D{
				{Key: "published", Value: 1},
				{Key: "isFeatured", Value: -1},
				{Key: "isTrending", Value: -1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_published_feed_order"),
		},
	}); err != nil {
		return err
	}

	for _, name := range []string{CollectionCategories, CollectionTags} {
		if _, err := d.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		}); err != nil {
			return err
		}
	}
	return nil
}
