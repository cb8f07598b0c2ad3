package dto

import (
	"time"

	"true-feelings/models"
)

// TermDTO exposes a category or tag.
type TermDTO struct {
	ID          string    `json:"id" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Name        string    `json:"name" example:"Relationships"`
	Slug        string    `json:"slug" example:"relationships"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewCategoryDTO(c models.Category) TermDTO {
	return newTermDTO(c.ID.Hex(), c.Name, c.Slug, c.Title, c.Description, c.Keywords, c.CreatedAt, c.UpdatedAt)
}

func NewTagDTO(t models.Tag) TermDTO {
	return newTermDTO(t.ID.Hex(), t.Name, t.Slug, t.Title, t.Description, t.Keywords, t.CreatedAt, t.UpdatedAt)
}

func newTermDTO(id, name, slug, title, description string, keywords []string, createdAt, updatedAt time.Time) TermDTO {
	if keywords == nil {
		keywords = []string{}
	}
	return TermDTO{
		ID:          id,
		Name:        name,
		Slug:        slug,
		Title:       title,
		Description: description,
		Keywords:    keywords,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// CreateTermRequest is the payload for creating a category or tag.
type CreateTermRequest struct {
	Name        string   `json:"name" binding:"required" example:"Relationships"`
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}
