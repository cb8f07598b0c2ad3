package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"true-feelings/db"
	"true-feelings/models"
)

// Term is the set of taxonomy documents stored with the same shape.
type Term interface {
	models.Category | models.Tag
}

// TermRepository reads and writes a taxonomy collection (categories or tags).
type TermRepository[T Term] struct {
	col *mongo.Collection
}

type (
	CategoryRepository = TermRepository[models.Category]
	TagRepository      = TermRepository[models.Tag]
)

func NewCategoryRepository(d *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: d.Collection(db.CollectionCategories)}
}

func NewTagRepository(d *mongo.Database) *TagRepository {
	return &TagRepository{col: d.Collection(db.CollectionTags)}
}

// FindBySlug returns the term with slug or ErrNotFound.
func (r *TermRepository[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	var t T
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindBySlugs returns every term whose slug is in slugs; unknown slugs are skipped.
func (r *TermRepository[T]) FindBySlugs(ctx context.Context, slugs []string) ([]T, error) {
	if len(slugs) == 0 {
		return []T{}, nil
	}
	return r.find(ctx, bson.M{"slug": bson.M{"$in": slugs}}, nil)
}

// FindByIDs returns every term whose _id is in ids; unknown ids are skipped.
func (r *TermRepository[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// CountByIDs counts how many of ids exist.
func (r *TermRepository[T]) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.col.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// List returns all terms sorted by name.
func (r *TermRepository[T]) List(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// Insert stores t. A unique index violation is reported as ErrDuplicate.
func (r *TermRepository[T]) Insert(ctx context.Context, t *T) error {
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *TermRepository[T]) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cur, err := r.col.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []T{}
	for cur.Next(ctx) {
		var t T
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
