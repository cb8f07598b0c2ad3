package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups posts under a browsable section.
// Collection: categories
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description" json:"description"`
	Keywords    []string           `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

// GetID, GetSlug and GetName let repositories and services treat
// categories and tags alike.
func (c Category) GetID() primitive.ObjectID { return c.ID }
func (c Category) GetSlug() string           { return c.Slug }
func (c Category) GetName() string           { return c.Name }
