package repositories

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostOrder selects one of the fixed listing orders.
type PostOrder int

const (
	// OrderFeed: featured first, then trending, then newest created.
	OrderFeed PostOrder = iota
	// OrderArchive: featured first, then newest published, then newest created.
	OrderArchive
	// OrderLatest: newest published first, used by feeds and sitemaps.
	OrderLatest
)

// PostFilter is the resolved set of predicates for a post listing.
// It is built once by the caller and never mutated; the With* helpers return copies.
type PostFilter struct {
	publishedOnly bool
	categoryIDs   []primitive.ObjectID
	tagIDs        []primitive.ObjectID
	search        string
	featuredOnly  bool
	trendingOnly  bool
	order         PostOrder
}

// PublishedPosts is the base filter every public listing starts from.
func PublishedPosts() PostFilter {
	return PostFilter{publishedOnly: true, order: OrderFeed}
}

func (f PostFilter) WithCategories(ids ...primitive.ObjectID) PostFilter {
	f.categoryIDs = append([]primitive.ObjectID(nil), ids...)
	return f
}

// WithTags requires posts to carry at least one of ids.
func (f PostFilter) WithTags(ids ...primitive.ObjectID) PostFilter {
	f.tagIDs = append([]primitive.ObjectID(nil), ids...)
	return f
}

func (f PostFilter) WithSearch(q string) PostFilter {
	f.search = q
	return f
}

func (f PostFilter) FeaturedOnly() PostFilter {
	f.featuredOnly = true
	return f
}

func (f PostFilter) TrendingOnly() PostFilter {
	f.trendingOnly = true
	return f
}

func (f PostFilter) OrderBy(o PostOrder) PostFilter {
	f.order = o
	return f
}

// BSON renders the filter document.
func (f PostFilter) BSON() bson.M {
	filter := bson.M{}
	if f.publishedOnly {
		filter["published"] = true
	}
	if len(f.categoryIDs) > 0 {
		filter["categories"] = bson.M{"$in": f.categoryIDs}
	}
	if len(f.tagIDs) > 0 {
		filter["tags"] = bson.M{"$in": f.tagIDs}
	}
	if f.featuredOnly {
		filter["isFeatured"] = true
	}
	if f.trendingOnly {
		filter["isTrending"] = true
	}
	if f.search != "" {
		filter["$text"] = bson.M{"$search": f.search}
	}
	return filter
}

// Sort renders the sort document; _id breaks remaining ties newest-inserted first.
func (f PostFilter) Sort() bson.D {
	switch f.order {
	case OrderArchive:
		return bson.D{
			{Key: "isFeatured", Value: -1},
			{Key: "publishedAt", Value: -1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}
	case OrderLatest:
		return bson.D{
			{Key: "publishedAt", Value: -1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}
	default:
		return bson.D{
			{Key: "isFeatured", Value: -1},
			{Key: "isTrending", Value: -1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}
	}
}

// Accessors used by in-memory stores in tests and by logging.
func (f PostFilter) CategoryIDs() []primitive.ObjectID { return f.categoryIDs }
func (f PostFilter) TagIDs() []primitive.ObjectID      { return f.tagIDs }
func (f PostFilter) Search() string                    { return f.search }
func (f PostFilter) IsFeaturedOnly() bool              { return f.featuredOnly }
func (f PostFilter) IsTrendingOnly() bool              { return f.trendingOnly }
func (f PostFilter) IsPublishedOnly() bool             { return f.publishedOnly }
func (f PostFilter) Order() PostOrder                  { return f.order }

// PageWindow is a clamped page/limit pair.
type PageWindow struct {
	Page  int
	Limit int
}

// NewPageWindow clamps page to >= 1 and limit into [1, maxLimit], using
// defaultLimit when limit is not positive. Page is also capped so that
// Skip cannot overflow.
func NewPageWindow(page, limit, defaultLimit, maxLimit int) PageWindow {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if limit > 0 {
		if maxPage := math.MaxInt / limit; page > maxPage {
			page = maxPage
		}
	}
	return PageWindow{Page: page, Limit: limit}
}

func (w PageWindow) Skip() int64 {
	return int64(w.Page-1) * int64(w.Limit)
}
