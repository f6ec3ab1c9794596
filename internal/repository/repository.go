package repository

import (
	"context"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
)

// Repositories return (nil, nil) when a single row lookup finds nothing.

// AdminRepository defines data access for administrator accounts.
type AdminRepository interface {
	// GetByEmail matches the email case-insensitively.
	GetByEmail(ctx context.Context, email string) (*model.AdminAccount, error)
	GetByID(ctx context.Context, id int64) (*model.AdminAccount, error)
	Create(ctx context.Context, email, passwordHash string) (*model.AdminAccount, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// SessionRepository defines persistence for server-side sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// GetByID ignores expiry; callers compare ExpiresAt themselves.
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions that expired at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// RestaurantRepository defines access to the singleton restaurant profile.
type RestaurantRepository interface {
	Get(ctx context.Context) (*model.Restaurant, error)
	Create(ctx context.Context, restaurant *model.Restaurant) error
	Update(ctx context.Context, restaurant *model.Restaurant) error
}

// MenuItemRepository defines data access for menu items.
type MenuItemRepository interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	MaxPosition(ctx context.Context) (int, error)
	Create(ctx context.Context, item *model.MenuItem) error
	// Update returns model.ErrMenuItemNotFound when the row vanished.
	Update(ctx context.Context, item *model.MenuItem) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// Reorder assigns positions 1..n following ids, in one transaction.
	Reorder(ctx context.Context, ids []int64) error
	Count(ctx context.Context) (int, error)
}

// GalleryRepository defines data access for gallery images.
type GalleryRepository interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.GalleryImage, error)
	GetByID(ctx context.Context, id int64) (*model.GalleryImage, error)
	MaxPosition(ctx context.Context) (int, error)
	Create(ctx context.Context, image *model.GalleryImage) error
	Update(ctx context.Context, image *model.GalleryImage) error
	Delete(ctx context.Context, id int64) (bool, error)
	// ToggleVisibility flips is_visible and returns the updated row.
	ToggleVisibility(ctx context.Context, id int64) (*model.GalleryImage, error)
	Reorder(ctx context.Context, ids []int64) error
	Count(ctx context.Context) (int, error)
}

// InstagramRepository defines data access for Instagram feed posts.
type InstagramRepository interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.InstagramPost, error)
	GetByID(ctx context.Context, id int64) (*model.InstagramPost, error)
	MaxPosition(ctx context.Context) (int, error)
	Create(ctx context.Context, post *model.InstagramPost) error
	Update(ctx context.Context, post *model.InstagramPost) error
	Delete(ctx context.Context, id int64) (bool, error)
	ToggleVisibility(ctx context.Context, id int64) (*model.InstagramPost, error)
	Count(ctx context.Context) (int, error)
}
