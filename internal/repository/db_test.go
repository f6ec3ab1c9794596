package repository

import (
	"context"
	"testing"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/database"
	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL testcontainer with the application schema.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping repository test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	pool := setupTestDB(t)

	err := database.EnsureSchema(context.Background(), pool, zerolog.Nop())
	assert.NoError(t, err)
}

func TestPositionedTable(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	repo := NewGalleryRepository(pool, zerolog.Nop())

	maxPos, err := repo.MaxPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, maxPos)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var ids []int64
	for i := 1; i <= 3; i++ {
		image := &model.GalleryImage{ImageURL: "/img.jpg", Category: "general", IsVisible: true, Position: i * 10}
		require.NoError(t, repo.Create(ctx, image))
		ids = append(ids, image.ID)
	}

	maxPos, err = repo.MaxPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, maxPos)

	t.Run("Reorder assigns 1..n", func(t *testing.T) {
		reversed := []int64{ids[2], ids[1], ids[0]}
		require.NoError(t, repo.Reorder(ctx, reversed))

		images, err := repo.List(ctx, model.ListFilter{})
		require.NoError(t, err)
		require.Len(t, images, 3)
		for i, image := range images {
			assert.Equal(t, reversed[i], image.ID)
			assert.Equal(t, i+1, image.Position)
		}
	})

	t.Run("Reorder skips unknown ids", func(t *testing.T) {
		require.NoError(t, repo.Reorder(ctx, []int64{ids[0], 999999}))

		image, err := repo.GetByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, 1, image.Position)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, ids[1])
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, ids[1])
		require.NoError(t, err)
		assert.False(t, deleted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
