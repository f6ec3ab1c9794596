package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "eden:ratelimit:"

// Redis is a Limiter shared by every instance through INCR and PEXPIRE.
type Redis struct {
	client *redis.Client
	cfg    Config
	prefix string
}

// NewRedis creates a Redis-backed limiter. scope namespaces the keys.
func NewRedis(client *redis.Client, cfg Config, scope string) *Redis {
	return &Redis{
		client: client,
		cfg:    cfg,
		prefix: redisKeyPrefix + scope + ":",
	}
}

// NewRedisClient parses a redis:// URL and verifies the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Allow counts one attempt for key. The first hit sets the window expiry.
func (r *Redis) Allow(ctx context.Context, key string) (Result, error) {
	k := r.prefix + key

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count attempt: %w", err)
	}

	if count == 1 {
		if err := r.client.PExpire(ctx, k, r.cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to open window: %w", err)
		}
	}

	ttl, err := r.client.PTTL(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read window: %w", err)
	}
	if ttl < 0 {
		// Every counter key must carry an expiry.
		if err := r.client.PExpire(ctx, k, r.cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to open window: %w", err)
		}
		ttl = r.cfg.Window
	}

	return result(int(count), r.cfg.Max, ttl), nil
}

// Ensure both backends satisfy Limiter.
var (
	_ Limiter = (*Memory)(nil)
	_ Limiter = (*Redis)(nil)
)

