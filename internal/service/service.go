package service

import (
	"context"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
)

// CredentialService authenticates the administrator and manages its password.
type CredentialService interface {
	// Authenticate returns the account matching email and password, or
	// model.ErrInvalidCredentials. Unknown emails cost as much as wrong passwords.
	Authenticate(ctx context.Context, email, password string) (*model.AdminAccount, error)

	FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error)
	FindByID(ctx context.Context, id int64) (*model.AdminAccount, error)

	// VerifyPassword compares plaintext with the account hash in constant time.
	VerifyPassword(account *model.AdminAccount, plaintext string) bool

	// UpdatePassword re-hashes and persists a new password.
	UpdatePassword(ctx context.Context, account *model.AdminAccount, plaintext string) error

	// ChangePassword validates the password change form for adminID and applies it.
	ChangePassword(ctx context.Context, adminID int64, req *model.PasswordChangeRequest) error

	// Provision creates the account when the email is unknown. It never
	// overwrites an existing password and reports whether it created one.
	Provision(ctx context.Context, email, password string) (bool, error)
}

// RestaurantService manages the singleton restaurant profile.
type RestaurantService interface {
	// Get returns nil when no profile exists yet.
	Get(ctx context.Context) (*model.Restaurant, error)

	// Save creates the profile on first use and updates it afterwards.
	Save(ctx context.Context, input *model.RestaurantInput) (*model.Restaurant, model.UpsertResult, error)
}

// MenuService manages menu items.
type MenuService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.MenuItem, error)
	Get(ctx context.Context, id int64) (*model.MenuItem, error)
	Create(ctx context.Context, input *model.MenuItemInput) (*model.MenuItem, error)
	Update(ctx context.Context, id int64, input *model.MenuItemInput) (*model.MenuItem, error)
	// Delete succeeds whether or not the item existed.
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, ids []int64) error
	Count(ctx context.Context) (int, error)
}

// GalleryService manages gallery images.
type GalleryService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.GalleryImage, error)
	Get(ctx context.Context, id int64) (*model.GalleryImage, error)
	Create(ctx context.Context, input *model.GalleryImageInput) (*model.GalleryImage, error)
	Update(ctx context.Context, id int64, input *model.GalleryImageInput) (*model.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64) (*model.GalleryImage, error)
	Reorder(ctx context.Context, ids []int64) error
	Count(ctx context.Context) (int, error)
}

// InstagramService manages the Instagram feed posts.
type InstagramService interface {
	List(ctx context.Context, filter model.ListFilter) ([]*model.InstagramPost, error)
	Get(ctx context.Context, id int64) (*model.InstagramPost, error)
	Create(ctx context.Context, input *model.InstagramPostInput) (*model.InstagramPost, error)
	Update(ctx context.Context, id int64, input *model.InstagramPostInput) (*model.InstagramPost, error)
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64) (*model.InstagramPost, error)
	Count(ctx context.Context) (int, error)
}
