package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a published or draft article.
// Collection: posts
//
// Field names are camelCase to stay compatible with documents written by the
// previous admin, which shares this database.
type Post struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
	Title           string               `bson:"title" json:"title"`
	Slug            string               `bson:"slug" json:"slug"`
	Content         string               `bson:"content" json:"content"`
	Excerpt         string               `bson:"excerpt" json:"excerpt"`
	CoverImage      string               `bson:"coverImage" json:"coverImage"`
	Categories      []primitive.ObjectID `bson:"categories" json:"categories"`
	Tags            []primitive.ObjectID `bson:"tags" json:"tags"`
	IsFeatured      bool                 `bson:"isFeatured" json:"isFeatured"`
	IsTrending      bool                 `bson:"isTrending" json:"isTrending"`
	Published       bool                 `bson:"published" json:"published"`
	PublishedAt     *time.Time           `bson:"publishedAt" json:"publishedAt"`
	ReadTime        int                  `bson:"readTime" json:"readTime"`
	MetaTitle       string               `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string               `bson:"metaDescription" json:"metaDescription"`
	MetaKeywords    []string             `bson:"metaKeywords" json:"metaKeywords"`
}
