package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
)

// AdminSeed is the administrator account created on first seeding.
type AdminSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Document is the content applied by a Seeder.
type Document struct {
	Admin      *AdminSeed                  `json:"admin,omitempty"`
	Restaurant *model.RestaurantInput      `json:"restaurant,omitempty"`
	MenuItems  []*model.MenuItemInput      `json:"menuItems,omitempty"`
	Gallery    []*model.GalleryImageInput  `json:"gallery,omitempty"`
	Instagram  []*model.InstagramPostInput `json:"instagram,omitempty"`
}

// WithAdmin returns a copy of d whose admin account is replaced by
// email and password when email is set.
func (d *Document) WithAdmin(email, password string) *Document {
	if strings.TrimSpace(email) == "" {
		return d
	}
	out := *d
	out.Admin = &AdminSeed{Email: email, Password: password}
	return &out
}

// Decode parses a seed document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	return &doc, nil
}
