// Package cache provides the read-through response cache that sits in front of
// the analytics backend. Redis is optional: without it every lookup misses.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every cached backend response.
const KeyPrefix = "ipl:v1:"

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ipl_dashboard_cache_hits_total",
		Help: "Backend responses served from the cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ipl_dashboard_cache_misses_total",
		Help: "Cache lookups that fell through to the backend",
	})

	cacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ipl_dashboard_cache_errors_total",
		Help: "Cache operations that failed",
	}, []string{"op"})
)

// Cache stores raw backend response bodies by request path.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

// RedisClient is the subset of the go-redis client the cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisCache implements Cache using Redis string keys with a fixed TTL.
type RedisCache struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisCache wraps a Redis client. A non-positive ttl defaults to five minutes.
func NewRedisCache(client RedisClient, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheMisses.Inc()
		return nil, false, nil
	}
	if err != nil {
		cacheErrors.WithLabelValues("get").Inc()
		cacheMisses.Inc()
		return nil, false, err
	}
	cacheHits.Inc()
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, KeyPrefix+key, value, c.ttl).Err(); err != nil {
		cacheErrors.WithLabelValues("set").Inc()
		return err
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Noop is the cache used when Redis is not configured.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cacheMisses.Inc()
	return nil, false, nil
}

func (Noop) Set(ctx context.Context, key string, value []byte) error { return nil }

func (Noop) Ping(ctx context.Context) error { return nil }
