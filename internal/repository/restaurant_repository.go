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

// restaurantFieldColumns lists the editable columns in the order used by
// restaurantArgs and scanRestaurant.
const restaurantFieldColumns = `
	name,
	address,
	city,
	postal_code,
	phone,
	email,
	whatsapp_link,
	opening_hours,
	hero_tagline,
	hero_description,
	atmosphere_title,
	atmosphere_text,
	reservation_text,
	instagram_url,
	facebook_url,
	map_url,
	menu_full_url,
	reservation_external_url,
	order_online_url,
	whatsapp_number,
	uber_eats_url,
	deliveroo_url,
	events_title,
	events_description,
	events_capacity,
	map_embed_url,
	hero_image_url,
	atmosphere_image1_url,
	atmosphere_image2_url,
	events_image_url,
	logo_url`

// restaurantRepository implements the RestaurantRepository interface using PostgreSQL.
type restaurantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantRepository creates a new PostgreSQL-backed restaurant repository.
func NewRestaurantRepository(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantRepository {
	return &restaurantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "restaurant").Logger(),
	}
}

func restaurantArgs(r *model.Restaurant) []any {
	return []any{
		r.Name,
		r.Address,
		r.City,
		r.PostalCode,
		r.Phone,
		r.Email,
		r.WhatsappLink,
		r.OpeningHours,
		r.HeroTagline,
		r.HeroDescription,
		r.AtmosphereTitle,
		r.AtmosphereText,
		r.ReservationText,
		r.InstagramURL,
		r.FacebookURL,
		r.MapURL,
		r.MenuFullURL,
		r.ReservationExternalURL,
		r.OrderOnlineURL,
		r.WhatsappNumber,
		r.UberEatsURL,
		r.DeliverooURL,
		r.EventsTitle,
		r.EventsDescription,
		r.EventsCapacity,
		r.MapEmbedURL,
		r.HeroImageURL,
		r.AtmosphereImage1URL,
		r.AtmosphereImage2URL,
		r.EventsImageURL,
		r.LogoURL,
	}
}

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.City,
		&r.PostalCode,
		&r.Phone,
		&r.Email,
		&r.WhatsappLink,
		&r.OpeningHours,
		&r.HeroTagline,
		&r.HeroDescription,
		&r.AtmosphereTitle,
		&r.AtmosphereText,
		&r.ReservationText,
		&r.InstagramURL,
		&r.FacebookURL,
		&r.MapURL,
		&r.MenuFullURL,
		&r.ReservationExternalURL,
		&r.OrderOnlineURL,
		&r.WhatsappNumber,
		&r.UberEatsURL,
		&r.DeliverooURL,
		&r.EventsTitle,
		&r.EventsDescription,
		&r.EventsCapacity,
		&r.MapEmbedURL,
		&r.HeroImageURL,
		&r.AtmosphereImage1URL,
		&r.AtmosphereImage2URL,
		&r.EventsImageURL,
		&r.LogoURL,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Get returns the first profile row, or nil when none exists yet.
func (r *restaurantRepository) Get(ctx context.Context) (*model.Restaurant, error) {
	query := `SELECT id,` + restaurantFieldColumns + `, updated_at FROM restaurant_info ORDER BY id ASC LIMIT 1`

	restaurant, err := scanRestaurant(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Msg("restaurant profile not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query restaurant profile")
		return nil, fmt.Errorf("failed to query restaurant profile: %w", err)
	}

	return restaurant, nil
}

// Create inserts the profile and fills in its id and timestamp.
func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	query := `INSERT INTO restaurant_info (` + restaurantFieldColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)
		RETURNING id, updated_at`

	err := r.pool.QueryRow(ctx, query, restaurantArgs(restaurant)...).Scan(&restaurant.ID, &restaurant.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create restaurant profile")
		return fmt.Errorf("failed to create restaurant profile: %w", err)
	}

	r.logger.Info().Int64("restaurant_id", restaurant.ID).Msg("restaurant profile created")
	return nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	query := `
		UPDATE restaurant_info SET
			name = $1,
			address = $2,
			city = $3,
			postal_code = $4,
			phone = $5,
			email = $6,
			whatsapp_link = $7,
			opening_hours = $8,
			hero_tagline = $9,
			hero_description = $10,
			atmosphere_title = $11,
			atmosphere_text = $12,
			reservation_text = $13,
			instagram_url = $14,
			facebook_url = $15,
			map_url = $16,
			menu_full_url = $17,
			reservation_external_url = $18,
			order_online_url = $19,
			whatsapp_number = $20,
			uber_eats_url = $21,
			deliveroo_url = $22,
			events_title = $23,
			events_description = $24,
			events_capacity = $25,
			map_embed_url = $26,
			hero_image_url = $27,
			atmosphere_image1_url = $28,
			atmosphere_image2_url = $29,
			events_image_url = $30,
			logo_url = $31,
			updated_at = NOW()
		WHERE id = $32
		RETURNING updated_at`

	args := append(restaurantArgs(restaurant), restaurant.ID)
	err := r.pool.QueryRow(ctx, query, args...).Scan(&restaurant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrRestaurantNotFound
		}
		r.logger.Error().Err(err).Int64("restaurant_id", restaurant.ID).Msg("failed to update restaurant profile")
		return fmt.Errorf("failed to update restaurant profile: %w", err)
	}

	r.logger.Info().Int64("restaurant_id", restaurant.ID).Msg("restaurant profile updated")
	return nil
}
