// Package memstore provides in-memory stores with the same contracts as the
// Mongo repositories, the Redis cache and the Kafka publisher. Tests use them.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"true-feelings/cache"
	"true-feelings/eventbus"
	"true-feelings/models"
	"true-feelings/repositories"
)

// Posts implements the post store on a slice.
type Posts struct {
	mu         sync.Mutex
	Items      []models.Post
	InsertErr  error
	ListErr    error
	FindErr    error
	LastWindow repositories.PageWindow
}

func (m *Posts) List(_ context.Context, f repositories.PostFilter, w repositories.PageWindow) ([]models.Post, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	m.LastWindow = w

	var matched []models.Post
	for _, p := range m.Items {
		if matchesFilter(p, f) {
			matched = append(matched, p)
		}
	}
	sortPosts(matched, f.Order())

	total := int64(len(matched))
	start := int(w.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := start + w.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return append([]models.Post{}, matched[start:end]...), total, nil
}

func (m *Posts) FindPublishedBySlug(_ context.Context, slug string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Items {
		if p.Slug == slug && p.Published {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *Posts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, p := range m.Items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *Posts) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Items {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *Posts) Insert(_ context.Context, p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	for _, existing := range m.Items {
		if existing.Slug == p.Slug {
			return repositories.ErrDuplicate
		}
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	m.Items = append(m.Items, *p)
	return nil
}

func matchesFilter(p models.Post, f repositories.PostFilter) bool {
	if f.IsPublishedOnly() && !p.Published {
		return false
	}
	if ids := f.CategoryIDs(); len(ids) > 0 && !containsAny(p.Categories, ids) {
		return false
	}
	if ids := f.TagIDs(); len(ids) > 0 && !containsAny(p.Tags, ids) {
		return false
	}
	if f.IsFeaturedOnly() && !p.IsFeatured {
		return false
	}
	if f.IsTrendingOnly() && !p.IsTrending {
		return false
	}
	if q := strings.ToLower(f.Search()); q != "" {
		text := strings.ToLower(p.Title + " " + p.Excerpt + " " + p.Content)
		if !strings.Contains(text, q) {
			return false
		}
	}
	return true
}

func containsAny(have, want []primitive.ObjectID) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func publishedTime(p models.Post) time.Time {
	if p.PublishedAt == nil {
		return time.Time{}
	}
	return *p.PublishedAt
}

func sortPosts(items []models.Post, order repositories.PostOrder) {
	boolRank := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch order {
		case repositories.OrderLatest:
			if !publishedTime(a).Equal(publishedTime(b)) {
				return publishedTime(a).After(publishedTime(b))
			}
		case repositories.OrderArchive:
			if a.IsFeatured != b.IsFeatured {
				return boolRank(a.IsFeatured) > boolRank(b.IsFeatured)
			}
			if !publishedTime(a).Equal(publishedTime(b)) {
				return publishedTime(a).After(publishedTime(b))
			}
		default:
			if a.IsFeatured != b.IsFeatured {
				return boolRank(a.IsFeatured) > boolRank(b.IsFeatured)
			}
			if a.IsTrending != b.IsTrending {
				return boolRank(a.IsTrending) > boolRank(b.IsTrending)
			}
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

type termAccessor interface {
	GetID() primitive.ObjectID
	GetSlug() string
	GetName() string
}

// Terms implements a category or tag store on a slice.
type Terms[T repositories.Term] struct {
	mu    sync.Mutex
	Items []T
}

func (m *Terms[T]) FindBySlug(_ context.Context, slug string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.Items {
		if any(t).(termAccessor).GetSlug() == slug {
			cp := t
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *Terms[T]) FindBySlugs(_ context.Context, slugs []string) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for _, t := range m.Items {
		for _, s := range slugs {
			if any(t).(termAccessor).GetSlug() == s {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (m *Terms[T]) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for _, t := range m.Items {
		for _, id := range ids {
			if any(t).(termAccessor).GetID() == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (m *Terms[T]) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	found, err := m.FindByIDs(ctx, ids)
	return int64(len(found)), err
}

func (m *Terms[T]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]T{}, m.Items...)
	sort.SliceStable(out, func(i, j int) bool {
		return any(out[i]).(termAccessor).GetName() < any(out[j]).(termAccessor).GetName()
	})
	return out, nil
}

func (m *Terms[T]) Insert(_ context.Context, t *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	slug := any(*t).(termAccessor).GetSlug()
	for _, existing := range m.Items {
		if any(existing).(termAccessor).GetSlug() == slug {
			return repositories.ErrDuplicate
		}
	}
	m.Items = append(m.Items, *t)
	return nil
}

// Cache is a map-backed cache.Cache without expiry.
type Cache struct {
	mu     sync.Mutex
	Data   map[string]string
	GetErr error
}

func NewCache() *Cache {
	return &Cache{Data: map[string]string{}}
}

func (c *Cache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return "", c.GetErr
	}
	v, ok := c.Data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (c *Cache) Set(_ context.Context, key, val string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Data[key] = val
	return nil
}

func (c *Cache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Data, key)
	return nil
}

// Bus records published events.
type Bus struct {
	mu     sync.Mutex
	Topics []string
	Events []eventbus.Event
	Err    error
}

func (b *Bus) Publish(_ context.Context, topic string, event eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.Topics = append(b.Topics, topic)
	b.Events = append(b.Events, event)
	return nil
}

func (b *Bus) Close() {}
