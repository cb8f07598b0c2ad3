package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"true-feelings/models"
)

// TermRefDTO is the populated form of a category or tag reference on a post.
type TermRefDTO struct {
	ID   string `json:"id" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Name string `json:"name" example:"Relationships"`
	Slug string `json:"slug" example:"relationships"`
}

// PostDTO is a post with its categories and tags populated.
type PostDTO struct {
	ID              string       `json:"id" example:"65f1c2a9e4b0a1b2c3d4e5f7"`
	Title           string       `json:"title" example:"Learning to let go"`
	Slug            string       `json:"slug" example:"learning-to-let-go"`
	Content         string       `json:"content"`
	Excerpt         string       `json:"excerpt"`
	CoverImage      string       `json:"coverImage"`
	Categories      []TermRefDTO `json:"categories"`
	Tags            []TermRefDTO `json:"tags"`
	IsFeatured      bool         `json:"isFeatured"`
	IsTrending      bool         `json:"isTrending"`
	Published       bool         `json:"published"`
	PublishedAt     *time.Time   `json:"publishedAt"`
	ReadTime        int          `json:"readTime" example:"4"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	MetaKeywords    []string     `json:"metaKeywords"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// NewPostDTO maps p, resolving its reference ids through the given lookups.
// Ids missing from the lookups are dropped, as a populate would.
func NewPostDTO(p models.Post, categories, tags map[primitive.ObjectID]TermRefDTO) PostDTO {
	keywords := p.MetaKeywords
	if keywords == nil {
		keywords = []string{}
	}
	return PostDTO{
		ID:              p.ID.Hex(),
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		CoverImage:      p.CoverImage,
		Categories:      resolveRefs(p.Categories, categories),
		Tags:            resolveRefs(p.Tags, tags),
		IsFeatured:      p.IsFeatured,
		IsTrending:      p.IsTrending,
		Published:       p.Published,
		PublishedAt:     p.PublishedAt,
		ReadTime:        p.ReadTime,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    keywords,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func resolveRefs(ids []primitive.ObjectID, lookup map[primitive.ObjectID]TermRefDTO) []TermRefDTO {
	out := make([]TermRefDTO, 0, len(ids))
	for _, id := range ids {
		if ref, ok := lookup[id]; ok {
			out = append(out, ref)
		}
	}
	return out
}

// CreatePostRequest is the admin post editor payload.
type CreatePostRequest struct {
	Title           string     `json:"title" example:"Learning to let go"`
	Slug            string     `json:"slug,omitempty"`
	Content         string     `json:"content" example:"<p>Some feelings take time.</p>"`
	Excerpt         string     `json:"excerpt,omitempty"`
	CoverImage      string     `json:"coverImage,omitempty"`
	Categories      []string   `json:"categories" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Tags            []string   `json:"tags,omitempty"`
	IsFeatured      bool       `json:"isFeatured"`
	IsTrending      bool       `json:"isTrending"`
	Published       *bool      `json:"published,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaKeywords    []string   `json:"metaKeywords,omitempty"`
}
