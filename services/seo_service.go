package services

import (
	"context"
	"fmt"

	"true-feelings/repositories"
	"true-feelings/seo"
)

// SEOService assembles page metadata and the site-wide XML documents.
type SEOService struct {
	posts    *PostService
	taxonomy *TaxonomyService
	site     seo.Site
	feedSize int
}

func NewSEOService(posts *PostService, taxonomy *TaxonomyService, site seo.Site, feedSize int) *SEOService {
	if feedSize <= 0 {
		feedSize = 50
	}
	return &SEOService{posts: posts, taxonomy: taxonomy, site: site, feedSize: feedSize}
}

func (s *SEOService) Site() seo.Site {
	return s.site
}

func (s *SEOService) PostMeta(ctx context.Context, postSlug string) (seo.Meta, error) {
	detail, err := s.posts.Detail(ctx, postSlug)
	if err != nil {
		return seo.Meta{}, err
	}
	return seo.ForPost(s.site, detail.Post, detail.Categories, detail.Tags), nil
}

// CategoryMeta uses the cover of the category's top post for social images.
func (s *SEOService) CategoryMeta(ctx context.Context, termSlug string) (seo.Meta, error) {
	c, err := s.taxonomy.Category(ctx, termSlug)
	if err != nil {
		return seo.Meta{}, err
	}
	top := repositories.PublishedPosts().WithCategories(c.ID).OrderBy(repositories.OrderArchive)
	cover, err := s.firstCover(ctx, top)
	if err != nil {
		return seo.Meta{}, err
	}
	return seo.ForCategory(s.site, *c, cover), nil
}

func (s *SEOService) TagMeta(ctx context.Context, termSlug string) (seo.Meta, error) {
	t, err := s.taxonomy.Tag(ctx, termSlug)
	if err != nil {
		return seo.Meta{}, err
	}
	top := repositories.PublishedPosts().WithTags(t.ID).OrderBy(repositories.OrderArchive)
	cover, err := s.firstCover(ctx, top)
	if err != nil {
		return seo.Meta{}, err
	}
	return seo.ForTag(s.site, *t, cover), nil
}

func (s *SEOService) firstCover(ctx context.Context, filter repositories.PostFilter) (string, error) {
	items, _, err := s.posts.posts.List(ctx, filter, repositories.PageWindow{Page: 1, Limit: 1})
	if err != nil {
		return "", fmt.Errorf("load cover post: %w", err)
	}
	if len(items) == 0 {
		return "", nil
	}
	return items[0].CoverImage, nil
}

// RSS renders the feed of the latest published posts.
func (s *SEOService) RSS(ctx context.Context) ([]byte, error) {
	posts, err := s.posts.Latest(ctx, s.feedSize)
	if err != nil {
		return nil, err
	}
	out, err := seo.RSS(s.site, posts)
	if err != nil {
		return nil, fmt.Errorf("render rss: %w", err)
	}
	return out, nil
}

func (s *SEOService) Sitemap(ctx context.Context) ([]byte, error) {
	posts, err := s.posts.Latest(ctx, s.feedSize)
	if err != nil {
		return nil, err
	}
	cats, err := s.taxonomy.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	tags, err := s.taxonomy.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	out, err := seo.Sitemap(s.site, posts, cats, tags)
	if err != nil {
		return nil, fmt.Errorf("render sitemap: %w", err)
	}
	return out, nil
}

func (s *SEOService) Robots() string {
	return seo.Robots(s.site)
}
