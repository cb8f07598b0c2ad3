package services

import (
	"context"
	"fmt"

	"true-feelings/cache"
	"true-feelings/eventbus"
	"true-feelings/events"
	"true-feelings/internal/logger"
)

// WarmCacheHandler handles post.published by reloading the post into the read
// cache, so the first reader of a new post is served from Redis.
func (s *PostService) WarmCacheHandler() eventbus.Handler {
	return func(ctx context.Context, evt eventbus.Event) error {
		payload, err := eventbus.DecodeJSON[events.PostPublishedEvent](evt)
		if err != nil {
			return err
		}
		if payload.Slug == "" {
			return fmt.Errorf("event %s: missing slug", evt.ID)
		}
		if err := s.cache.Del(ctx, cache.PostSlugKey(payload.Slug)); err != nil {
			logger.Log.Warnf("post cache del failed slug=%s: %v", payload.Slug, err)
		}
		if _, err := s.GetBySlug(ctx, payload.Slug); err != nil {
			return fmt.Errorf("warm %s: %w", payload.Slug, err)
		}
		logger.InfoWithFields("post cache warmed", logger.Fields{"slug": payload.Slug, "event_id": evt.ID})
		return nil
	}
}
