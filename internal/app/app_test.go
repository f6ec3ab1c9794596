package app

import (
	"context"
	"testing"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/config"
	"github.com/carlossangronio-sudo/eden-garden/internal/ratelimit"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginLimiter_Memory(t *testing.T) {
	limiter, closeFn, err := NewLoginLimiter(context.Background(), config.RateLimitConfig{
		Backend:     "memory",
		Window:      time.Minute,
		MaxAttempts: 1,
	}, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &ratelimit.Memory{}, limiter)

	first, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	second, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, second.Allowed)
}

func TestNewLoginLimiter_RedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, _, err := NewLoginLimiter(ctx, config.RateLimitConfig{
		Backend:     "redis",
		RedisURL:    "redis://127.0.0.1:1/0",
		Window:      time.Minute,
		MaxAttempts: 5,
	}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewSeedLoader_File(t *testing.T) {
	loader := NewSeedLoader(context.Background(), config.SeedConfig{Source: "file"}, zerolog.Nop())

	doc, err := loader.Load(context.Background(), "../../data/seed.example.json")
	require.NoError(t, err)
	require.NotNil(t, doc.Restaurant)
	assert.Equal(t, "Eden Garden", *doc.Restaurant.Name)
	assert.NotEmpty(t, doc.MenuItems)
}
