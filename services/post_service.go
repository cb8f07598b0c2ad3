package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"true-feelings/auth"
	"true-feelings/cache"
	"true-feelings/config"
	"true-feelings/dto"
	"true-feelings/eventbus"
	"true-feelings/events"
	"true-feelings/internal/logger"
	"true-feelings/models"
	"true-feelings/parser"
	"true-feelings/repositories"
	"true-feelings/sanitizer"
	"true-feelings/slug"
)

// MaxContentLength is the largest accepted post body, in characters.
const MaxContentLength = 300000

// PostService encapsulates post listing, lookup and creation plus DTO mapping.
type PostService struct {
	posts      PostStore
	categories CategoryStore
	tags       TagStore

	cache cache.Cache
	bus   eventbus.Publisher
	topic string

	defaultLimit int
	maxLimit     int
	now          func() time.Time
}

func NewPostService(posts PostStore, categories CategoryStore, tags TagStore, limits config.PostsConfig) *PostService {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 10
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = 50
	}
	return &PostService{
		posts:        posts,
		categories:   categories,
		tags:         tags,
		cache:        cache.NopCache{},
		bus:          eventbus.NopBus{},
		defaultLimit: limits.DefaultLimit,
		maxLimit:     limits.MaxLimit,
		now:          time.Now,
	}
}

// WithCache enables read-through caching of GetBySlug.
func (s *PostService) WithCache(c cache.Cache) *PostService {
	if c != nil {
		s.cache = c
	}
	return s
}

// WithPublisher publishes post.published events to topic after creation.
func (s *PostService) WithPublisher(bus eventbus.Publisher, topic string) *PostService {
	if bus != nil {
		s.bus = bus
		s.topic = topic
	}
	return s
}

func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

// Window clamps raw page/limit values to the configured bounds.
func (s *PostService) Window(page, limit int) repositories.PageWindow {
	return repositories.NewPageWindow(page, limit, s.defaultLimit, s.maxLimit)
}

type ListPostsInput struct {
	Page         int
	Limit        int
	CategorySlug string
	TagSlugs     []string
	Search       string
	FeaturedOnly bool
	TrendingOnly bool
}

// List runs the public post query. An unknown category, or tags of which none
// exist, yield an empty page rather than an error.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (dto.Page[dto.PostDTO], error) {
	window := s.Window(in.Page, in.Limit)
	empty := dto.Page[dto.PostDTO]{Data: []dto.PostDTO{}, Page: window.Page, Limit: window.Limit}

	filter := repositories.PublishedPosts()

	if categorySlug := strings.TrimSpace(in.CategorySlug); categorySlug != "" {
		cat, err := s.categories.FindBySlug(ctx, categorySlug)
		if errors.Is(err, repositories.ErrNotFound) {
			return empty, nil
		}
		if err != nil {
			return empty, fmt.Errorf("resolve category %q: %w", categorySlug, err)
		}
		filter = filter.WithCategories(cat.ID)
	}

	if len(in.TagSlugs) > 0 {
		found, err := s.tags.FindBySlugs(ctx, in.TagSlugs)
		if err != nil {
			return empty, fmt.Errorf("resolve tags: %w", err)
		}
		if len(found) == 0 {
			return empty, nil
		}
		ids := make([]primitive.ObjectID, 0, len(found))
		for _, t := range found {
			ids = append(ids, t.ID)
		}
		filter = filter.WithTags(ids...)
	}

	if q := strings.TrimSpace(in.Search); q != "" {
		filter = filter.WithSearch(q)
	}
	if in.FeaturedOnly {
		filter = filter.FeaturedOnly()
	}
	if in.TrendingOnly {
		filter = filter.TrendingOnly()
	}

	return s.listPage(ctx, filter, window)
}

func (s *PostService) listPage(ctx context.Context, filter repositories.PostFilter, window repositories.PageWindow) (dto.Page[dto.PostDTO], error) {
	items, total, err := s.posts.List(ctx, filter, window)
	if err != nil {
		return dto.Page[dto.PostDTO]{}, fmt.Errorf("list posts: %w", err)
	}

	out, err := s.toDTOs(ctx, items)
	if err != nil {
		return dto.Page[dto.PostDTO]{}, err
	}
	return dto.Page[dto.PostDTO]{
		Data:  out,
		Total: total,
		Page:  window.Page,
		Limit: window.Limit,
	}, nil
}

// Latest returns the n most recently published posts.
func (s *PostService) Latest(ctx context.Context, n int) ([]models.Post, error) {
	if n <= 0 {
		n = s.maxLimit
	}
	items, _, err := s.posts.List(ctx,
		repositories.PublishedPosts().OrderBy(repositories.OrderLatest),
		repositories.PageWindow{Page: 1, Limit: n},
	)
	if err != nil {
		return nil, fmt.Errorf("list latest posts: %w", err)
	}
	return items, nil
}

// PostDetail is a published post with its referenced terms loaded.
type PostDetail struct {
	Post       models.Post
	Categories []models.Category
	Tags       []models.Tag
}

// Detail loads a published post and its categories and tags.
func (s *PostService) Detail(ctx context.Context, postSlug string) (*PostDetail, error) {
	p, err := s.posts.FindPublishedBySlug(ctx, postSlug)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("post %q: %w", postSlug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find post %q: %w", postSlug, err)
	}

	cats, err := s.categories.FindByIDs(ctx, p.Categories)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	tags, err := s.tags.FindByIDs(ctx, p.Tags)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	return &PostDetail{Post: *p, Categories: cats, Tags: tags}, nil
}

// GetBySlug returns a published post. Cache errors are logged and fall through to the store.
func (s *PostService) GetBySlug(ctx context.Context, postSlug string) (dto.PostDTO, error) {
	key := cache.PostSlugKey(postSlug)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached dto.PostDTO
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Log.Warnf("post cache get failed key=%s: %v", key, err)
	}

	detail, err := s.Detail(ctx, postSlug)
	if err != nil {
		return dto.PostDTO{}, err
	}
	out := dto.NewPostDTO(detail.Post, categoryRefs(detail.Categories), tagRefs(detail.Tags))

	if b, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, string(b)); err != nil {
			logger.Log.Warnf("post cache set failed key=%s: %v", key, err)
		}
	}
	return out, nil
}

// Create validates, sanitizes and stores a new post on behalf of an admin caller.
func (s *PostService) Create(ctx context.Context, caller *auth.Identity, in dto.CreatePostRequest) (dto.PostDTO, error) {
	if caller == nil || !caller.IsAdmin() {
		return dto.PostDTO{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return dto.PostDTO{}, invalid("title", "Title and content required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return dto.PostDTO{}, invalid("content", "Title and content required")
	}
	if utf8.RuneCountInString(in.Content) > MaxContentLength {
		return dto.PostDTO{}, invalid("content", "Content too large")
	}

	if len(in.Categories) == 0 {
		return dto.PostDTO{}, invalid("categories", "At least one category required")
	}
	categoryIDs, ok := parseObjectIDs(in.Categories)
	if !ok {
		return dto.PostDTO{}, invalid("categories", "Invalid category id format")
	}
	if err := s.ensureExist(ctx, s.categories.CountByIDs, categoryIDs, "categories"); err != nil {
		return dto.PostDTO{}, err
	}

	tagIDs := []primitive.ObjectID{}
	if len(in.Tags) > 0 {
		tagIDs, ok = parseObjectIDs(in.Tags)
		if !ok {
			return dto.PostDTO{}, invalid("tags", "Invalid tag id format")
		}
		if err := s.ensureExist(ctx, s.tags.CountByIDs, tagIDs, "tags"); err != nil {
			return dto.PostDTO{}, err
		}
	}

	content := sanitizer.Sanitize(in.Content)
	now := s.now()

	postSlug, err := s.uniqueSlug(ctx, in.Slug, title, now)
	if err != nil {
		return dto.PostDTO{}, err
	}

	published := in.Published == nil || *in.Published
	var publishedAt *time.Time
	if published {
		at := now
		if in.PublishedAt != nil {
			at = *in.PublishedAt
		}
		publishedAt = &at
	}

	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = parser.Excerpt(content, parser.ExcerptLength)
	}
	metaTitle := strings.TrimSpace(in.MetaTitle)
	if metaTitle == "" {
		metaTitle = title
	}
	metaDescription := strings.TrimSpace(in.MetaDescription)
	if metaDescription == "" {
		metaDescription = strings.TrimSpace(in.Excerpt)
	}

	post := &models.Post{
		CreatedAt:       now,
		Title:           title,
		Slug:            postSlug,
		Content:         content,
		Excerpt:         excerpt,
		CoverImage:      strings.TrimSpace(in.CoverImage),
		Categories:      categoryIDs,
		Tags:            tagIDs,
		IsFeatured:      in.IsFeatured,
		IsTrending:      in.IsTrending,
		Published:       published,
		PublishedAt:     publishedAt,
		ReadTime:        parser.ReadTimeMinutes(content),
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		MetaKeywords:    cleanKeywords(in.MetaKeywords),
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return dto.PostDTO{}, fmt.Errorf("post slug %q: %w", postSlug, ErrConflict)
		}
		return dto.PostDTO{}, fmt.Errorf("insert post: %w", err)
	}

	if post.Published {
		s.publishCreated(ctx, post)
	}

	// Respond with the document as stored, not the one we built.
	stored, err := s.posts.FindByID(ctx, post.ID)
	if err != nil {
		logger.Log.Warnf("reload created post id=%s: %v", post.ID.Hex(), err)
		stored = post
	}

	out, err := s.toDTOs(ctx, []models.Post{*stored})
	if err != nil {
		return dto.PostDTO{}, err
	}
	return out[0], nil
}

// uniqueSlug derives the slug and appends a millisecond suffix when it is taken.
// The unique index still decides races.
func (s *PostService) uniqueSlug(ctx context.Context, requested, title string, now time.Time) (string, error) {
	source := strings.TrimSpace(requested)
	if source == "" {
		source = title
	}
	base := slug.Make(source)
	if base == "" {
		return "", invalid("slug", "Slug could not be derived from title")
	}

	exists, err := s.posts.ExistsBySlug(ctx, base)
	if err != nil {
		return "", fmt.Errorf("check slug %q: %w", base, err)
	}
	if exists {
		return slug.WithSuffix(base, now), nil
	}
	return base, nil
}

func (s *PostService) ensureExist(ctx context.Context, count func(context.Context, []primitive.ObjectID) (int64, error), ids []primitive.ObjectID, field string) error {
	n, err := count(ctx, ids)
	if err != nil {
		return fmt.Errorf("count %s: %w", field, err)
	}
	if n != int64(len(ids)) {
		return invalid(field, fmt.Sprintf("One or more %s not found", field))
	}
	return nil
}

func (s *PostService) publishCreated(ctx context.Context, p *models.Post) {
	payload := events.PostPublishedEvent{
		BaseEvent:   events.NewBaseEvent(events.PostPublished, "api", s.now()),
		PostID:      p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		CategoryIDs: p.Categories,
		TagIDs:      p.Tags,
		PublishedAt: p.PublishedAt,
	}
	evt, err := eventbus.NewJSONEvent(payload.ID, string(events.PostPublished), payload)
	if err == nil {
		err = s.bus.Publish(ctx, s.topic, evt)
	}
	if err != nil {
		logger.ErrorWithFields("publish post event failed", logger.Fields{
			"post_id": p.ID.Hex(),
			"slug":    p.Slug,
			"error":   err.Error(),
		})
	}
}

// toDTOs populates category and tag references for items with one lookup each.
func (s *PostService) toDTOs(ctx context.Context, items []models.Post) ([]dto.PostDTO, error) {
	out := make([]dto.PostDTO, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	var catIDs, tagIDs []primitive.ObjectID
	for _, p := range items {
		catIDs = append(catIDs, p.Categories...)
		tagIDs = append(tagIDs, p.Tags...)
	}

	cats, err := s.categories.FindByIDs(ctx, uniqueIDs(catIDs))
	if err != nil {
		return nil, fmt.Errorf("populate categories: %w", err)
	}
	tags, err := s.tags.FindByIDs(ctx, uniqueIDs(tagIDs))
	if err != nil {
		return nil, fmt.Errorf("populate tags: %w", err)
	}

	catRefs, tagRefs := categoryRefs(cats), tagRefs(tags)
	for _, p := range items {
		out = append(out, dto.NewPostDTO(p, catRefs, tagRefs))
	}
	return out, nil
}

func categoryRefs(cats []models.Category) map[primitive.ObjectID]dto.TermRefDTO {
	refs := make(map[primitive.ObjectID]dto.TermRefDTO, len(cats))
	for _, c := range cats {
		refs[c.ID] = dto.TermRefDTO{ID: c.ID.Hex(), Name: c.Name, Slug: c.Slug}
	}
	return refs
}

func tagRefs(tags []models.Tag) map[primitive.ObjectID]dto.TermRefDTO {
	refs := make(map[primitive.ObjectID]dto.TermRefDTO, len(tags))
	for _, t := range tags {
		refs[t.ID] = dto.TermRefDTO{ID: t.ID.Hex(), Name: t.Name, Slug: t.Slug}
	}
	return refs
}

// parseObjectIDs parses 24-hex ids, dropping duplicates. ok is false on the first malformed id.
func parseObjectIDs(raw []string) ([]primitive.ObjectID, bool) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(r))
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return uniqueIDs(ids), true
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
