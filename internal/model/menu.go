package model

import "time"

// DefaultMenuCategory is used when a menu item is created without a category.
const DefaultMenuCategory = "Plat"

// MenuItem represents a dish or drink shown on the menu.
type MenuItem struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Category    string    `json:"category" db:"category"`
	IsVisible   bool      `json:"isVisible" db:"is_visible"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// MenuItemInput holds the submitted fields of a menu item form.
// A nil field was not submitted.
type MenuItemInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
	Position    *int    `json:"position,omitempty"`
}
