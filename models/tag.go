package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a free-form label attached to posts.
// Collection: tags
type Tag struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description" json:"description"`
	Keywords    []string           `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

func (t Tag) GetID() primitive.ObjectID { return t.ID }
func (t Tag) GetSlug() string           { return t.Slug }
func (t Tag) GetName() string           { return t.Name }
