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

const galleryColumns = `id, title, image_url, category, is_visible, position, created_at, updated_at`

// galleryRepository implements the GalleryRepository interface using PostgreSQL.
type galleryRepository struct {
	positionedTable
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewGalleryRepository creates a new PostgreSQL-backed gallery repository.
func NewGalleryRepository(pool *pgxpool.Pool, logger zerolog.Logger) GalleryRepository {
	l := logger.With().Str("repository", "gallery").Logger()
	return &galleryRepository{
		positionedTable: positionedTable{pool: pool, logger: l, table: "gallery_images"},
		pool:            pool,
		logger:          l,
	}
}

func scanGalleryImage(row pgx.Row) (*model.GalleryImage, error) {
	var g model.GalleryImage
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.ImageURL,
		&g.Category,
		&g.IsVisible,
		&g.Position,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *galleryRepository) List(ctx context.Context, filter model.ListFilter) ([]*model.GalleryImage, error) {
	rows, err := r.pool.Query(ctx, r.selectQuery(galleryColumns, filter))
	if err != nil {
		r.logger.Error().Err(err).Bool("visible_only", filter.VisibleOnly).Msg("failed to query gallery images")
		return nil, fmt.Errorf("failed to query gallery images: %w", err)
	}
	defer rows.Close()

	images := []*model.GalleryImage{}
	for rows.Next() {
		image, err := scanGalleryImage(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan gallery image row")
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating gallery image rows")
		return nil, fmt.Errorf("error iterating gallery images: %w", err)
	}

	return images, nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id int64) (*model.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE id = $1`

	image, err := scanGalleryImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("gallery_image_id", id).Msg("gallery image not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("gallery_image_id", id).Msg("failed to query gallery image")
		return nil, fmt.Errorf("failed to query gallery image: %w", err)
	}

	return image, nil
}

func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (title, image_url, category, is_visible, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		image.Title,
		image.ImageURL,
		image.Category,
		image.IsVisible,
		image.Position,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create gallery image")
		return fmt.Errorf("failed to create gallery image: %w", err)
	}

	r.logger.Debug().Int64("gallery_image_id", image.ID).Int("position", image.Position).Msg("gallery image created")
	return nil
}

func (r *galleryRepository) Update(ctx context.Context, image *model.GalleryImage) error {
	query := `
		UPDATE gallery_images SET
			title = $1,
			image_url = $2,
			category = $3,
			is_visible = $4,
			position = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		image.Title,
		image.ImageURL,
		image.Category,
		image.IsVisible,
		image.Position,
		image.ID,
	).Scan(&image.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrGalleryImageNotFound
		}
		r.logger.Error().Err(err).Int64("gallery_image_id", image.ID).Msg("failed to update gallery image")
		return fmt.Errorf("failed to update gallery image: %w", err)
	}

	return nil
}

func (r *galleryRepository) ToggleVisibility(ctx context.Context, id int64) (*model.GalleryImage, error) {
	query := `
		UPDATE gallery_images
		SET is_visible = NOT is_visible, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + galleryColumns

	image, err := scanGalleryImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("gallery_image_id", id).Msg("failed to toggle gallery image")
		return nil, fmt.Errorf("failed to toggle gallery image: %w", err)
	}

	return image, nil
}
