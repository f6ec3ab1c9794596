package service

import (
	"context"
	"fmt"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"
	"github.com/carlossangronio-sudo/eden-garden/internal/sanitize"

	"github.com/rs/zerolog"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldURL
	fieldPhone
	fieldEmail
)

// profileField binds one submitted value to the profile column it updates.
type profileField struct {
	in     *string
	out    *string
	kind   fieldKind
	maxLen int
}

func restaurantFields(in *model.RestaurantInput, r *model.Restaurant) []profileField {
	return []profileField{
		{in.Name, &r.Name, fieldText, 100},
		{in.Address, &r.Address, fieldText, 200},
		{in.City, &r.City, fieldText, 100},
		{in.PostalCode, &r.PostalCode, fieldText, 10},
		{in.Phone, &r.Phone, fieldText, 20},
		{in.Email, &r.Email, fieldEmail, 100},
		{in.WhatsappLink, &r.WhatsappLink, fieldURL, 0},
		{in.OpeningHours, &r.OpeningHours, fieldText, 200},
		{in.HeroTagline, &r.HeroTagline, fieldText, 100},
		{in.HeroDescription, &r.HeroDescription, fieldText, 500},
		{in.AtmosphereTitle, &r.AtmosphereTitle, fieldText, 100},
		{in.AtmosphereText, &r.AtmosphereText, fieldText, 1000},
		{in.ReservationText, &r.ReservationText, fieldText, 500},
		{in.InstagramURL, &r.InstagramURL, fieldURL, 0},
		{in.FacebookURL, &r.FacebookURL, fieldURL, 0},
		{in.MapURL, &r.MapURL, fieldURL, 0},
		{in.MenuFullURL, &r.MenuFullURL, fieldURL, 0},
		{in.ReservationExternalURL, &r.ReservationExternalURL, fieldURL, 0},
		{in.OrderOnlineURL, &r.OrderOnlineURL, fieldURL, 0},
		{in.WhatsappNumber, &r.WhatsappNumber, fieldPhone, 20},
		{in.UberEatsURL, &r.UberEatsURL, fieldURL, 0},
		{in.DeliverooURL, &r.DeliverooURL, fieldURL, 0},
		{in.EventsTitle, &r.EventsTitle, fieldText, 150},
		{in.EventsDescription, &r.EventsDescription, fieldText, 1000},
		{in.EventsCapacity, &r.EventsCapacity, fieldText, 10},
		{in.MapEmbedURL, &r.MapEmbedURL, fieldURL, 0},
		{in.HeroImageURL, &r.HeroImageURL, fieldURL, 0},
		{in.AtmosphereImage1URL, &r.AtmosphereImage1URL, fieldURL, 0},
		{in.AtmosphereImage2URL, &r.AtmosphereImage2URL, fieldURL, 0},
		{in.EventsImageURL, &r.EventsImageURL, fieldURL, 0},
		{in.LogoURL, &r.LogoURL, fieldURL, 0},
	}
}

// restaurantService implements RestaurantService.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	logger         zerolog.Logger
}

// NewRestaurantService creates a new restaurant profile service.
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, logger zerolog.Logger) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		logger:         logger.With().Str("service", "restaurant").Logger(),
	}
}

func (s *restaurantService) Get(ctx context.Context) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get restaurant profile")
		return nil, fmt.Errorf("failed to get restaurant profile: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) Save(ctx context.Context, input *model.RestaurantInput) (*model.Restaurant, model.UpsertResult, error) {
	existing, err := s.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	result := model.Updated
	restaurant := existing
	if restaurant == nil {
		result = model.Created
		restaurant = model.NewRestaurant()
	}

	// Work on a copy so a validation failure leaves the caller's view intact.
	updated := *restaurant
	if err := applyRestaurantInput(input, &updated); err != nil {
		return nil, "", err
	}

	if result == model.Created {
		err = s.restaurantRepo.Create(ctx, &updated)
	} else {
		err = s.restaurantRepo.Update(ctx, &updated)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("result", string(result)).Msg("failed to save restaurant profile")
		return nil, "", fmt.Errorf("failed to save restaurant profile: %w", err)
	}

	s.logger.Info().Int64("restaurant_id", updated.ID).Str("result", string(result)).Msg("restaurant profile saved")
	return &updated, result, nil
}

// applyRestaurantInput sanitises every submitted field into r.
func applyRestaurantInput(in *model.RestaurantInput, r *model.Restaurant) error {
	if in == nil {
		return nil
	}

	for _, f := range restaurantFields(in, r) {
		if f.in == nil {
			continue
		}
		switch f.kind {
		case fieldURL:
			*f.out = sanitize.URL(*f.in)
		case fieldPhone:
			*f.out = sanitize.Phone(*f.in, f.maxLen)
		case fieldEmail:
			email := sanitize.Email(*f.in, f.maxLen)
			if email != "" && !sanitize.ValidateEmail(email) {
				return model.ErrInvalidEmail
			}
			*f.out = email
		default:
			*f.out = sanitize.String(*f.in, f.maxLen)
		}
	}

	if r.Name == "" {
		return model.ErrRestaurantNameRequired
	}
	return nil
}
