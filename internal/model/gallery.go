package model

import "time"

// DefaultGalleryCategory is used when an image is saved without a category.
const DefaultGalleryCategory = "general"

// GalleryImage represents a photo of the gallery section.
type GalleryImage struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Category  string    `json:"category" db:"category"`
	IsVisible bool      `json:"isVisible" db:"is_visible"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// GalleryImageInput holds the submitted fields of a gallery form.
type GalleryImageInput struct {
	Title     *string `json:"title,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Category  *string `json:"category,omitempty"`
	IsVisible *bool   `json:"isVisible,omitempty"`
	Position  *int    `json:"position,omitempty"`
}
