package eventbus

import (
	"context"
	"encoding/json"
	"errors"
)

// Event is the envelope written as the Kafka message value.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher publishes domain events. Implementations must be safe for
// concurrent use by request handlers.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// Topic names a base topic and its dead-letter companion.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ returns the dead-letter topic name (e.g. my_topic.dlq) reserved for consumers.
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

var ErrBusClosed = errors.New("event bus closed")
