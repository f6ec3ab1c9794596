package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		_ = container.Terminate(ctx)
	})

	return client
}

func TestRedis_FixedWindow(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	limiter := NewRedis(client, Config{Window: 2 * time.Second, Max: 5}, "login")

	for i := 1; i <= 5; i++ {
		res, err := limiter.Allow(ctx, "198.51.100.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d", i)
	}

	res, err := limiter.Allow(ctx, "198.51.100.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, res.RetryAfter, 2*time.Second)

	other, err := limiter.Allow(ctx, "198.51.100.5")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	time.Sleep(2100 * time.Millisecond)

	res, err = limiter.Allow(ctx, "198.51.100.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
}

func TestRedis_KeyWithoutExpiryRepaired(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, redisKeyPrefix+"login:stuck", 3, 0).Err())

	limiter := NewRedis(client, Config{Window: time.Minute, Max: 5}, "login")
	res, err := limiter.Allow(ctx, "stuck")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	ttl, err := client.PTTL(ctx, redisKeyPrefix+"login:stuck").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse redis URL")
}
