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

const menuItemColumns = `id, title, description, price, image_url, category, is_visible, position, created_at, updated_at`

// menuItemRepository implements the MenuItemRepository interface using PostgreSQL.
type menuItemRepository struct {
	positionedTable
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	l := logger.With().Str("repository", "menu_item").Logger()
	return &menuItemRepository{
		positionedTable: positionedTable{pool: pool, logger: l, table: "menu_items"},
		pool:            pool,
		logger:          l,
	}
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.Price,
		&m.ImageURL,
		&m.Category,
		&m.IsVisible,
		&m.Position,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns menu items ordered by position.
func (r *menuItemRepository) List(ctx context.Context, filter model.ListFilter) ([]*model.MenuItem, error) {
	rows, err := r.pool.Query(ctx, r.selectQuery(menuItemColumns, filter))
	if err != nil {
		r.logger.Error().Err(err).Bool("visible_only", filter.VisibleOnly).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []*model.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("menu_item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("menu_item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return item, nil
}

// Create inserts the item and fills in its id and timestamps.
func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (title, description, price, image_url, category, is_visible, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		item.Title,
		item.Description,
		item.Price,
		item.ImageURL,
		item.Category,
		item.IsVisible,
		item.Position,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("title", item.Title).Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().Int64("menu_item_id", item.ID).Int("position", item.Position).Msg("menu item created")
	return nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *model.MenuItem) error {
	query := `
		UPDATE menu_items SET
			title = $1,
			description = $2,
			price = $3,
			image_url = $4,
			category = $5,
			is_visible = $6,
			position = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		item.Title,
		item.Description,
		item.Price,
		item.ImageURL,
		item.Category,
		item.IsVisible,
		item.Position,
		item.ID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrMenuItemNotFound
		}
		r.logger.Error().Err(err).Int64("menu_item_id", item.ID).Msg("failed to update menu item")
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	return nil
}
