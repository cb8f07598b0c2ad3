package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"true-feelings/auth"
	"true-feelings/dto"
	"true-feelings/models"
	"true-feelings/repositories"
	"true-feelings/slug"
)

// TaxonomyService manages categories and tags and the post listings scoped to them.
type TaxonomyService struct {
	categories CategoryStore
	tags       TagStore
	posts      *PostService
	now        func() time.Time
}

func NewTaxonomyService(categories CategoryStore, tags TagStore, posts *PostService) *TaxonomyService {
	return &TaxonomyService{categories: categories, tags: tags, posts: posts, now: time.Now}
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]dto.TermDTO, error) {
	items, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]dto.TermDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]dto.TermDTO, error) {
	items, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	out := make([]dto.TermDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.NewTagDTO(t))
	}
	return out, nil
}

func (s *TaxonomyService) Category(ctx context.Context, termSlug string) (*models.Category, error) {
	c, err := s.categories.FindBySlug(ctx, termSlug)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("category %q: %w", termSlug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", termSlug, err)
	}
	return c, nil
}

func (s *TaxonomyService) Tag(ctx context.Context, termSlug string) (*models.Tag, error) {
	t, err := s.tags.FindBySlug(ctx, termSlug)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("tag %q: %w", termSlug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find tag %q: %w", termSlug, err)
	}
	return t, nil
}

// PostsByCategory lists published posts of a category, featured first then newest published.
// An unknown category is ErrNotFound here, unlike the category filter of PostService.List.
func (s *TaxonomyService) PostsByCategory(ctx context.Context, termSlug string, page, limit int) (dto.TermDTO, dto.Page[dto.PostDTO], error) {
	c, err := s.Category(ctx, termSlug)
	if err != nil {
		return dto.TermDTO{}, dto.Page[dto.PostDTO]{}, err
	}
	filter := repositories.PublishedPosts().WithCategories(c.ID).OrderBy(repositories.OrderArchive)
	result, err := s.posts.listPage(ctx, filter, s.posts.Window(page, limit))
	if err != nil {
		return dto.TermDTO{}, dto.Page[dto.PostDTO]{}, err
	}
	return dto.NewCategoryDTO(*c), result, nil
}

func (s *TaxonomyService) PostsByTag(ctx context.Context, termSlug string, page, limit int) (dto.TermDTO, dto.Page[dto.PostDTO], error) {
	t, err := s.Tag(ctx, termSlug)
	if err != nil {
		return dto.TermDTO{}, dto.Page[dto.PostDTO]{}, err
	}
	filter := repositories.PublishedPosts().WithTags(t.ID).OrderBy(repositories.OrderArchive)
	result, err := s.posts.listPage(ctx, filter, s.posts.Window(page, limit))
	if err != nil {
		return dto.TermDTO{}, dto.Page[dto.PostDTO]{}, err
	}
	return dto.NewTagDTO(*t), result, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, caller *auth.Identity, in dto.CreateTermRequest) (dto.TermDTO, error) {
	in, err := prepareTerm(caller, in)
	if err != nil {
		return dto.TermDTO{}, err
	}
	now := s.now()
	c := models.Category{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        in.Name,
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
		Keywords:    in.Keywords,
	}
	if err := s.categories.Insert(ctx, &c); err != nil {
		return dto.TermDTO{}, insertTermError("category", c.Slug, err)
	}
	return dto.NewCategoryDTO(c), nil
}

func (s *TaxonomyService) CreateTag(ctx context.Context, caller *auth.Identity, in dto.CreateTermRequest) (dto.TermDTO, error) {
	in, err := prepareTerm(caller, in)
	if err != nil {
		return dto.TermDTO{}, err
	}
	now := s.now()
	t := models.Tag{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        in.Name,
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
		Keywords:    in.Keywords,
	}
	if err := s.tags.Insert(ctx, &t); err != nil {
		return dto.TermDTO{}, insertTermError("tag", t.Slug, err)
	}
	return dto.NewTagDTO(t), nil
}

// prepareTerm checks the caller and normalizes the request; the slug comes
// from the slug field or the name.
func prepareTerm(caller *auth.Identity, in dto.CreateTermRequest) (dto.CreateTermRequest, error) {
	if caller == nil || !caller.IsAdmin() {
		return in, ErrUnauthorized
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, invalid("name", "Name is required")
	}
	source := strings.TrimSpace(in.Slug)
	if source == "" {
		source = in.Name
	}
	in.Slug = slug.Make(source)
	if in.Slug == "" {
		return in, invalid("slug", "Slug could not be derived from name")
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Keywords = cleanKeywords(in.Keywords)
	return in, nil
}

func insertTermError(kind, termSlug string, err error) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return fmt.Errorf("%s slug %q: %w", kind, termSlug, ErrConflict)
	}
	return fmt.Errorf("insert %s: %w", kind, err)
}
