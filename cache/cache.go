// Package cache is a small string key/value cache used to short-circuit hot reads.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, val string) error
	Del(ctx context.Context, key string) error
}

type RedisCache struct {
	Cli *redis.Client
	TTL time.Duration
}

func New(addr string, db int, ttlSeconds int) *RedisCache {
	return &RedisCache{
		Cli: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		TTL: time.Duration(ttlSeconds) * time.Second,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := r.Cli.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return v, err
}

func (r *RedisCache) Set(ctx context.Context, key string, val string) error {
	return r.Cli.Set(ctx, key, val, r.TTL).Err()
}

func (r *RedisCache) Del(ctx context.Context, key string) error {
	return r.Cli.Del(ctx, key).Err()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.Cli.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.Cli.Close()
}

// NopCache never stores anything; every Get misses.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, error) { return "", ErrMiss }
func (NopCache) Set(context.Context, string, string) error   { return nil }
func (NopCache) Del(context.Context, string) error           { return nil }

// PostSlugKey is the key under which a rendered post is cached.
func PostSlugKey(slug string) string {
	return "post:slug:" + slug
}
