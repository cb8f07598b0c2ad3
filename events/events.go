// Package events holds the payloads published on the post event topic.
package events

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	PostPublished EventType = "post.published"
)

// BaseEvent is embedded in every event payload.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func (e BaseEvent) GetType() EventType {
	return e.Type
}

func NewBaseEvent(t EventType, source string, now time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: now.UTC(),
		Source:    source,
		Version:   "1.0",
	}
}

// PostPublishedEvent is emitted after a published post is stored.
type PostPublishedEvent struct {
	BaseEvent
	PostID      primitive.ObjectID   `json:"post_id"`
	Slug        string               `json:"slug"`
	Title       string               `json:"title"`
	CategoryIDs []primitive.ObjectID `json:"category_ids"`
	TagIDs      []primitive.ObjectID `json:"tag_ids"`
	PublishedAt *time.Time           `json:"published_at"`
}
