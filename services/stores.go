package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"true-feelings/models"
	"true-feelings/repositories"
)

// PostStore is the subset of repositories.PostRepository used by the services.
type PostStore interface {
	List(ctx context.Context, f repositories.PostFilter, w repositories.PageWindow) ([]models.Post, int64, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, p *models.Post) error
}

// TermStore is the subset of repositories.TermRepository used by the services.
type TermStore[T repositories.Term] interface {
	FindBySlug(ctx context.Context, slug string) (*T, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]T, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]T, error)
	CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, t *T) error
}

type (
	CategoryStore = TermStore[models.Category]
	TagStore      = TermStore[models.Tag]
)

var (
	_ PostStore     = (*repositories.PostRepository)(nil)
	_ CategoryStore = (*repositories.CategoryRepository)(nil)
	_ TagStore      = (*repositories.TagRepository)(nil)
)
