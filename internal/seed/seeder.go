package seed

import (
	"context"
	"fmt"

	"github.com/carlossangronio-sudo/eden-garden/internal/service"

	"github.com/rs/zerolog"
)

// Report describes what a seeding run created.
type Report struct {
	AdminCreated      bool `json:"adminCreated"`
	RestaurantCreated bool `json:"restaurantCreated"`
	MenuItems         int  `json:"menuItems"`
	Gallery           int  `json:"gallery"`
	Instagram         int  `json:"instagram"`
}

// Empty reports whether the run created nothing.
func (r Report) Empty() bool {
	return !r.AdminCreated && !r.RestaurantCreated && r.MenuItems == 0 && r.Gallery == 0 && r.Instagram == 0
}

// Seeder fills an empty database with initial content. Running it again
// creates nothing: the admin is provisioned only when its email is unknown,
// the profile only when none exists, and each collection only while empty.
type Seeder struct {
	credentials service.CredentialService
	restaurant  service.RestaurantService
	menu        service.MenuService
	gallery     service.GalleryService
	instagram   service.InstagramService
	logger      zerolog.Logger
}

// NewSeeder creates a seeder on top of the domain services.
func NewSeeder(
	credentials service.CredentialService,
	restaurant service.RestaurantService,
	menu service.MenuService,
	gallery service.GalleryService,
	instagram service.InstagramService,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		credentials: credentials,
		restaurant:  restaurant,
		menu:        menu,
		gallery:     gallery,
		instagram:   instagram,
		logger:      logger.With().Str("component", "seeder").Logger(),
	}
}

// Apply seeds doc. Entries are validated by the services, so an invalid
// entry aborts the run with the validation error.
func (s *Seeder) Apply(ctx context.Context, doc *Document) (Report, error) {
	var report Report
	if doc == nil {
		return report, nil
	}

	if doc.Admin != nil && doc.Admin.Email != "" {
		created, err := s.credentials.Provision(ctx, doc.Admin.Email, doc.Admin.Password)
		if err != nil {
			return report, fmt.Errorf("failed to seed admin: %w", err)
		}
		report.AdminCreated = created
	}

	if doc.Restaurant != nil {
		existing, err := s.restaurant.Get(ctx)
		if err != nil {
			return report, fmt.Errorf("failed to seed restaurant: %w", err)
		}
		if existing == nil {
			if _, _, err := s.restaurant.Save(ctx, doc.Restaurant); err != nil {
				return report, fmt.Errorf("failed to seed restaurant: %w", err)
			}
			report.RestaurantCreated = true
		}
	}

	var err error
	if report.MenuItems, err = seedCollection(ctx, doc.MenuItems, s.menu.Count, s.menu.Create); err != nil {
		return report, fmt.Errorf("failed to seed menu items: %w", err)
	}
	if report.Gallery, err = seedCollection(ctx, doc.Gallery, s.gallery.Count, s.gallery.Create); err != nil {
		return report, fmt.Errorf("failed to seed gallery: %w", err)
	}
	if report.Instagram, err = seedCollection(ctx, doc.Instagram, s.instagram.Count, s.instagram.Create); err != nil {
		return report, fmt.Errorf("failed to seed instagram posts: %w", err)
	}

	s.logger.Info().
		Bool("admin_created", report.AdminCreated).
		Bool("restaurant_created", report.RestaurantCreated).
		Int("menu_items", report.MenuItems).
		Int("gallery", report.Gallery).
		Int("instagram", report.Instagram).
		Msg("seeding completed")

	return report, nil
}

// seedCollection creates inputs in order when the collection is empty.
func seedCollection[In, Out any](
	ctx context.Context,
	inputs []*In,
	count func(context.Context) (int, error),
	create func(context.Context, *In) (*Out, error),
) (int, error) {
	if len(inputs) == 0 {
		return 0, nil
	}

	n, err := count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	created := 0
	for _, in := range inputs {
		if in == nil {
			continue
		}
		if _, err := create(ctx, in); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
