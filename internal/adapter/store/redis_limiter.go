package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window chat request limiter keyed per client.
type RedisLimiter struct {
	client *redis.Client
	limit  int // max requests per window
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	key := "chat:" + clientID
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First request in the window starts the clock.
		r.client.Expire(ctx, key, r.window)
	}
	return count <= int64(r.limit), nil
}
