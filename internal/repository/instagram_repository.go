package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const instagramColumns = `id, post_url, caption, post_type, is_visible, position, created_at, updated_at`

// instagramRepository implements the InstagramRepository interface using PostgreSQL.
type instagramRepository struct {
	positionedTable
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInstagramRepository creates a new PostgreSQL-backed Instagram post repository.
func NewInstagramRepository(pool *pgxpool.Pool, logger zerolog.Logger) InstagramRepository {
	l := logger.With().Str("repository", "instagram").Logger()
	return &instagramRepository{
		positionedTable: positionedTable{pool: pool, logger: l, table: "instagram_posts"},
		pool:            pool,
		logger:          l,
	}
}

func scanInstagramPost(row pgx.Row) (*model.InstagramPost, error) {
	var p model.InstagramPost
	err := row.Scan(
		&p.ID,
		&p.PostURL,
		&p.Caption,
		&p.PostType,
		&p.IsVisible,
		&p.Position,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *instagramRepository) List(ctx context.Context, filter model.ListFilter) ([]*model.InstagramPost, error) {
	rows, err := r.pool.Query(ctx, r.selectQuery(instagramColumns, filter))
	if err != nil {
		r.logger.Error().Err(err).Bool("visible_only", filter.VisibleOnly).Msg("failed to query instagram posts")
		return nil, fmt.Errorf("failed to query instagram posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.InstagramPost{}
	for rows.Next() {
		post, err := scanInstagramPost(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan instagram post row")
			return nil, fmt.Errorf("failed to scan instagram post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating instagram post rows")
		return nil, fmt.Errorf("error iterating instagram posts: %w", err)
	}

	return posts, nil
}

func (r *instagramRepository) GetByID(ctx context.Context, id int64) (*model.InstagramPost, error) {
	query := `SELECT ` + instagramColumns + ` FROM instagram_posts WHERE id = $1`

	post, err := scanInstagramPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("instagram_post_id", id).Msg("failed to query instagram post")
		return nil, fmt.Errorf("failed to query instagram post: %w", err)
	}

	return post, nil
}

func (r *instagramRepository) Create(ctx context.Context, post *model.InstagramPost) error {
	query := `
		INSERT INTO instagram_posts (post_url, caption, post_type, is_visible, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		post.PostURL,
		post.Caption,
		post.PostType,
		post.IsVisible,
		post.Position,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create instagram post")
		return fmt.Errorf("failed to create instagram post: %w", err)
	}

	return nil
}

func (r *instagramRepository) Update(ctx context.Context, post *model.InstagramPost) error {
	query := `
		UPDATE instagram_posts SET
			post_url = $1,
			caption = $2,
			post_type = $3,
			is_visible = $4,
			position = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		post.PostURL,
		post.Caption,
		post.PostType,
		post.IsVisible,
		post.Position,
		post.ID,
	).Scan(&post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrInstagramNotFound
		}
		r.logger.Error().Err(err).Int64("instagram_post_id", post.ID).Msg("failed to update instagram post")
		return fmt.Errorf("failed to update instagram post: %w", err)
	}

	return nil
}

func (r *instagramRepository) ToggleVisibility(ctx context.Context, id int64) (*model.InstagramPost, error) {
	query := `
		UPDATE instagram_posts
		SET is_visible = NOT is_visible, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + instagramColumns

	post, err := scanInstagramPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("instagram_post_id", id).Msg("failed to toggle instagram post")
		return nil, fmt.Errorf("failed to toggle instagram post: %w", err)
	}

	return post, nil
}
