package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"true-feelings/dto"
	"true-feelings/models"
	"true-feelings/seo"
)

func newTaxonomy(f *fixture) *TaxonomyService {
	svc := NewTaxonomyService(f.categories, f.tags, f.svc)
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestPostsByCategory(t *testing.T) {
	f := newFixture()
	f.seedPublished(3, 1)
	other := models.Category{ID: primitive.NewObjectID(), Name: "Dating", Slug: "dating"}
	f.categories.Items = append(f.categories.Items, other)
	f.posts.Items = append(f.posts.Items, models.Post{Slug: "elsewhere", Published: true, Categories: []primitive.ObjectID{other.ID}})

	svc := newTaxonomy(f)
	cat, page, err := svc.PostsByCategory(context.Background(), "love", 0, 500)
	require.NoError(t, err)
	assert.Equal(t, "Love", cat.Name)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 50, page.Limit)
	require.Len(t, page.Data, 3)
	assert.True(t, page.Data[0].IsFeatured)
}

func TestPostsByCategoryUnknownIsNotFound(t *testing.T) {
	f := newFixture()
	_, _, err := newTaxonomy(f).PostsByCategory(context.Background(), "nope", 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostsByTag(t *testing.T) {
	f := newFixture()
	f.seedPublished(2, 0)
	f.posts.Items[1].Tags = []primitive.ObjectID{f.trust.ID}

	tag, page, err := newTaxonomy(f).PostsByTag(context.Background(), "trust", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "trust", tag.Slug)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "post-1", page.Data[0].Slug)

	_, _, err = newTaxonomy(f).PostsByTag(context.Background(), "nope", 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTermsSortedByName(t *testing.T) {
	f := newFixture()
	f.categories.Items = append(f.categories.Items, models.Category{ID: primitive.NewObjectID(), Name: "Breakups", Slug: "breakups"})

	cats, err := newTaxonomy(f).ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Breakups", cats[0].Name)
	assert.Equal(t, []string{}, cats[0].Keywords)

	tags, err := newTaxonomy(f).ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestCreateCategory(t *testing.T) {
	f := newFixture()
	svc := newTaxonomy(f)

	out, err := svc.CreateCategory(context.Background(), admin, dto.CreateTermRequest{
		Name:     " Self Love ",
		Keywords: []string{"care", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, "Self Love", out.Name)
	assert.Equal(t, "self-love", out.Slug)
	assert.Equal(t, []string{"care"}, out.Keywords)
	assert.True(t, out.CreatedAt.Equal(fixed))

	_, err = svc.CreateCategory(context.Background(), admin, dto.CreateTermRequest{Name: "Self-Love"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateTermValidation(t *testing.T) {
	f := newFixture()
	svc := newTaxonomy(f)

	_, err := svc.CreateTag(context.Background(), reader, dto.CreateTermRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.CreateTag(context.Background(), nil, dto.CreateTermRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.CreateTag(context.Background(), admin, dto.CreateTermRequest{Name: "  "})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)

	_, err = svc.CreateTag(context.Background(), admin, dto.CreateTermRequest{Name: "???"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "slug", verr.Field)

	out, err := svc.CreateTag(context.Background(), admin, dto.CreateTermRequest{Name: "Moving On", Slug: "moving on!"})
	require.NoError(t, err)
	assert.Equal(t, "moving-on", out.Slug)
}

func TestSEOServiceMeta(t *testing.T) {
	f := newFixture()
	f.seedPublished(1, 0)
	f.posts.Items[0].CoverImage = "/cover.png"
	f.posts.Items[0].Tags = []primitive.ObjectID{f.trust.ID}

	site := seo.Site{Name: "True Feelings", BaseURL: "https://truefeelings.in", Description: "d"}
	svc := NewSEOService(f.svc, newTaxonomy(f), site, 0)

	meta, err := svc.PostMeta(context.Background(), "post-0")
	require.NoError(t, err)
	assert.Equal(t, "post 0", meta.Title)
	assert.Equal(t, "All about love", meta.Description)
	assert.Equal(t, "Trust", meta.Keywords)
	assert.Equal(t, "https://truefeelings.in/blog/post-0", meta.Canonical)

	_, err = svc.PostMeta(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	meta, err = svc.CategoryMeta(context.Background(), "love")
	require.NoError(t, err)
	assert.Equal(t, "/cover.png", meta.OpenGraph.Images[0].URL)

	meta, err = svc.TagMeta(context.Background(), "trust")
	require.NoError(t, err)
	assert.Equal(t, "Posts tagged with Trust", meta.Title)

	_, err = svc.TagMeta(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSEOServiceDocuments(t *testing.T) {
	f := newFixture()
	f.seedPublished(2, 0)
	site := seo.Site{Name: "True Feelings", BaseURL: "https://truefeelings.in"}
	svc := NewSEOService(f.svc, newTaxonomy(f), site, 50)

	rss, err := svc.RSS(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(rss), "https://truefeelings.in/blog/post-0")

	sitemap, err := svc.Sitemap(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://truefeelings.in/category/love")
	assert.Contains(t, string(sitemap), "https://truefeelings.in/tag/trust")

	assert.True(t, strings.HasPrefix(svc.Robots(), "User-agent: *"))

	f.posts.ListErr = errStoreDown
	_, err = svc.RSS(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
