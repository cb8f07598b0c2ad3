package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"true-feelings/internal/logger"
)

// KafkaEventBus is a Publisher backed by a confluent-kafka-go producer.
type KafkaEventBus struct {
	producer *kafka.Producer
	brokers  string

	mu     sync.RWMutex
	closed bool
}

// NewKafkaEventBus creates the producer and starts draining its event channel.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// Deliveries that carry their own channel never reach Events(); this only sees
	// client-level errors.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("kafka delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{producer: p, brokers: brokers}, nil
}

func (k *KafkaEventBus) Brokers() string {
	return k.brokers
}

// Close flushes pending messages for up to five seconds and closes the producer.
func (k *KafkaEventBus) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed || k.producer == nil {
		return
	}
	k.closed = true

	if remaining := k.producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("%d kafka messages still queued after flush", remaining)
	}
	k.producer.Close()
	logger.Log.Info("kafka producer closed")
}

// Publish writes event to topic and waits for the delivery report or ctx.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return ErrBusClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce message: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %T", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver message: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
