// Command eventworker consumes post events and warms the Redis post cache.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"true-feelings/cache"
	"true-feelings/config"
	"true-feelings/db"
	"true-feelings/eventbus"
	"true-feelings/events"
	"true-feelings/internal/logger"
	"true-feelings/repositories"
	"true-feelings/services"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if cfg.Kafka.Brokers == "" {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS is required")
	}
	if cfg.Redis.Addr == "" {
		log.Fatal("REDIS_ADDR is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx, cfg.Mongo); err != nil {
		log.Fatalf("failed to initialize MongoDB: %v", err)
	}
	defer db.Disconnect(context.Background())

	rc := cache.New(cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.TTLSeconds)
	if err := rc.Ping(ctx); err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rc.Close()

	postSvc := services.NewPostService(
		repositories.NewPostRepository(db.Database()),
		repositories.NewCategoryRepository(db.Database()),
		repositories.NewTagRepository(db.Database()),
		cfg.Posts,
	).WithCache(rc)

	dlq, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}
	defer dlq.Close()

	dispatcher := eventbus.NewDispatcher()
	dispatcher.Handle(string(events.PostPublished), postSvc.WarmCacheHandler())

	consumer, err := eventbus.NewKafkaConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, dispatcher)
	if err != nil {
		log.Fatalf("kafka consumer: %v", err)
	}
	defer consumer.Close()
	consumer.WithDeadLetter(dlq)

	logger.Log.Infof("event worker started (group=%s)", cfg.Kafka.GroupID)
	if err := consumer.Run(ctx, eventbus.NewTopic(cfg.Kafka.Topic)); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Errorf("consumer stopped: %v", err)
	}
	logger.Log.Info("event worker stopped")
}
