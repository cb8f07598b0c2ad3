package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"true-feelings/db"
	"true-feelings/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(d *mongo.Database) *PostRepository {
	return &PostRepository{col: d.Collection(db.CollectionPosts)}
}

// List returns one page of posts matching f plus the total over the whole filter.
func (r *PostRepository) List(ctx context.Context, f PostFilter, w PageWindow) ([]models.Post, int64, error) {
	filter := f.BSON()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSkip(w.Skip()).
		SetLimit(int64(w.Limit)).
		SetSort(f.Sort())
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	results := make([]models.Post, 0, w.Limit)
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, 0, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// FindPublishedBySlug returns a published post by slug.
func (r *PostRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var p models.Post
	err := r.col.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID returns a post by its ObjectID regardless of publication state.
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsBySlug checks whether any post, published or not, already uses slug.
func (r *PostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return err == nil, err
}

// Insert stores a new post and fills in its ID and timestamps.
// A unique index violation is reported as ErrDuplicate.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Categories == nil {
		p.Categories = []primitive.ObjectID{}
	}
	if p.Tags == nil {
		p.Tags = []primitive.ObjectID{}
	}
	if p.MetaKeywords == nil {
		p.MetaKeywords = []string{}
	}

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
