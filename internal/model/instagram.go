package model

import "time"

// Instagram post types accepted by the feed.
const (
	PostTypePost  = "post"
	PostTypeReel  = "reel"
	PostTypeVideo = "video"
)

// InstagramPost is an embedded post of the Instagram feed section.
type InstagramPost struct {
	ID        int64     `json:"id" db:"id"`
	PostURL   string    `json:"postUrl" db:"post_url"`
	Caption   string    `json:"caption" db:"caption"`
	PostType  string    `json:"postType" db:"post_type"`
	IsVisible bool      `json:"isVisible" db:"is_visible"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// InstagramPostInput holds the submitted fields of an Instagram post form.
type InstagramPostInput struct {
	PostURL   *string `json:"postUrl,omitempty"`
	Caption   *string `json:"caption,omitempty"`
	PostType  *string `json:"postType,omitempty"`
	IsVisible *bool   `json:"isVisible,omitempty"`
	Position  *int    `json:"position,omitempty"`
}
