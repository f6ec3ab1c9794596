package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema creates every table the application needs. Each statement is
// idempotent so it runs on every start.
const Schema = `
CREATE TABLE IF NOT EXISTS admin_users (
	id BIGSERIAL PRIMARY KEY,
	email VARCHAR(100) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_admin_users_email ON admin_users (LOWER(email));

CREATE TABLE IF NOT EXISTS sessions (
	id VARCHAR(64) PRIMARY KEY,
	admin_id BIGINT REFERENCES admin_users(id) ON DELETE CASCADE,
	admin_email VARCHAR(100) NOT NULL DEFAULT '',
	csrf_token VARCHAR(128) NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);

CREATE TABLE IF NOT EXISTS restaurant_info (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL DEFAULT 'Eden Garden',
	address VARCHAR(200) NOT NULL DEFAULT '',
	city VARCHAR(100) NOT NULL DEFAULT 'Nice',
	postal_code VARCHAR(10) NOT NULL DEFAULT '06300',
	phone VARCHAR(20) NOT NULL DEFAULT '',
	email VARCHAR(100) NOT NULL DEFAULT '',
	whatsapp_link TEXT NOT NULL DEFAULT '',
	opening_hours VARCHAR(200) NOT NULL DEFAULT '',
	hero_tagline VARCHAR(100) NOT NULL DEFAULT '',
	hero_description TEXT NOT NULL DEFAULT '',
	atmosphere_title VARCHAR(100) NOT NULL DEFAULT '',
	atmosphere_text TEXT NOT NULL DEFAULT '',
	reservation_text TEXT NOT NULL DEFAULT '',
	instagram_url TEXT NOT NULL DEFAULT '',
	facebook_url TEXT NOT NULL DEFAULT '',
	map_url TEXT NOT NULL DEFAULT '',
	menu_full_url TEXT NOT NULL DEFAULT '',
	reservation_external_url TEXT NOT NULL DEFAULT '',
	order_online_url TEXT NOT NULL DEFAULT '',
	whatsapp_number VARCHAR(20) NOT NULL DEFAULT '',
	uber_eats_url TEXT NOT NULL DEFAULT '',
	deliveroo_url TEXT NOT NULL DEFAULT '',
	events_title VARCHAR(150) NOT NULL DEFAULT '',
	events_description TEXT NOT NULL DEFAULT '',
	events_capacity VARCHAR(10) NOT NULL DEFAULT '50',
	map_embed_url TEXT NOT NULL DEFAULT '',
	hero_image_url TEXT NOT NULL DEFAULT '',
	atmosphere_image1_url TEXT NOT NULL DEFAULT '',
	atmosphere_image2_url TEXT NOT NULL DEFAULT '',
	events_image_url TEXT NOT NULL DEFAULT '',
	logo_url TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS menu_items (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price NUMERIC(10, 2) NOT NULL CHECK (price >= 0 AND price <= 9999.99),
	image_url TEXT NOT NULL DEFAULT '',
	category VARCHAR(50) NOT NULL DEFAULT 'Plat',
	is_visible BOOLEAN NOT NULL DEFAULT TRUE,
	position INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_menu_items_position ON menu_items (position, id);

CREATE TABLE IF NOT EXISTS gallery_images (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(100) NOT NULL DEFAULT '',
	image_url TEXT NOT NULL,
	category VARCHAR(50) NOT NULL DEFAULT 'general',
	is_visible BOOLEAN NOT NULL DEFAULT TRUE,
	position INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_gallery_images_position ON gallery_images (position, id);

CREATE TABLE IF NOT EXISTS instagram_posts (
	id BIGSERIAL PRIMARY KEY,
	post_url TEXT NOT NULL,
	caption VARCHAR(200) NOT NULL DEFAULT '',
	post_type VARCHAR(10) NOT NULL DEFAULT 'post' CHECK (post_type IN ('post', 'reel', 'video')),
	is_visible BOOLEAN NOT NULL DEFAULT TRUE,
	position INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_instagram_posts_position ON instagram_posts (position, id);
`

// EnsureSchema applies Schema against the pool.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Info().Msg("database schema ready")
	return nil
}
