package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"true-feelings/internal/logger"
)

// Handler processes one decoded event.
type Handler func(ctx context.Context, evt Event) error

// Dispatcher routes events to the handler registered for their type.
type Dispatcher struct {
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

func (d *Dispatcher) Handle(eventType string, h Handler) {
	d.handlers[eventType] = h
}

// Dispatch runs the handler for evt.Type. Types without a handler are skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) error {
	h, ok := d.handlers[evt.Type]
	if !ok {
		logger.Log.Debugf("no handler for event type %q", evt.Type)
		return nil
	}
	if err := h(ctx, evt); err != nil {
		return fmt.Errorf("handle %s %s: %w", evt.Type, evt.ID, err)
	}
	return nil
}

// KafkaConsumer reads a topic in a consumer group and dispatches each event.
// Events whose handler fails are forwarded to the topic's DLQ when a
// dead-letter publisher is set.
type KafkaConsumer struct {
	consumer   *kafka.Consumer
	dispatcher *Dispatcher
	deadLetter Publisher
}

func NewKafkaConsumer(brokers, groupID string, dispatcher *Dispatcher) (*KafkaConsumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  brokers,
		"group.id":           groupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": true,
		"session.timeout.ms": 6000,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	return &KafkaConsumer{consumer: c, dispatcher: dispatcher}, nil
}

func (c *KafkaConsumer) WithDeadLetter(p Publisher) *KafkaConsumer {
	c.deadLetter = p
	return c
}

// Run subscribes to topic.Base() and blocks until ctx is cancelled.
func (c *KafkaConsumer) Run(ctx context.Context, topic Topic) error {
	if err := c.consumer.SubscribeTopics([]string{topic.Base()}, nil); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic.Base(), err)
	}
	logger.Log.Infof("subscribed to %s", topic.Base())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.consumer.ReadMessage(100 * time.Millisecond)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				continue
			}
			logger.Log.Errorf("consumer error: %v", err)
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			logger.Log.Errorf("drop undecodable message at %v: %v", msg.TopicPartition, err)
			continue
		}
		if err := c.dispatcher.Dispatch(ctx, evt); err != nil {
			c.deadLetterEvent(ctx, topic, evt, err)
		}
	}
}

func (c *KafkaConsumer) deadLetterEvent(ctx context.Context, topic Topic, evt Event, cause error) {
	logger.ErrorWithFields("event handler failed", logger.Fields{
		"event_id":   evt.ID,
		"event_type": evt.Type,
		"topic":      topic.Base(),
		"error":      cause.Error(),
	})
	if c.deadLetter == nil {
		return
	}
	if err := c.deadLetter.Publish(ctx, topic.DLQ(), evt); err != nil {
		logger.Log.Errorf("publish %s to %s: %v", evt.ID, topic.DLQ(), err)
	}
}

func (c *KafkaConsumer) Close() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("close kafka consumer: %w", err)
	}
	logger.Log.Info("kafka consumer closed")
	return nil
}
