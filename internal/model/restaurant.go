package model

import "time"

// Defaults applied when the restaurant profile is first created.
const (
	DefaultRestaurantName = "Eden Garden"
	DefaultRestaurantCity = "Nice"
	DefaultPostalCode     = "06300"
	DefaultEventsCapacity = "50"
)

// Restaurant is the singleton profile shown across the public site.
type Restaurant struct {
	ID                     int64     `json:"id" db:"id"`
	Name                   string    `json:"name" db:"name"`
	Address                string    `json:"address" db:"address"`
	City                   string    `json:"city" db:"city"`
	PostalCode             string    `json:"postalCode" db:"postal_code"`
	Phone                  string    `json:"phone" db:"phone"`
	Email                  string    `json:"email" db:"email"`
	WhatsappLink           string    `json:"whatsappLink" db:"whatsapp_link"`
	OpeningHours           string    `json:"openingHours" db:"opening_hours"`
	HeroTagline            string    `json:"heroTagline" db:"hero_tagline"`
	HeroDescription        string    `json:"heroDescription" db:"hero_description"`
	AtmosphereTitle        string    `json:"atmosphereTitle" db:"atmosphere_title"`
	AtmosphereText         string    `json:"atmosphereText" db:"atmosphere_text"`
	ReservationText        string    `json:"reservationText" db:"reservation_text"`
	InstagramURL           string    `json:"instagramUrl" db:"instagram_url"`
	FacebookURL            string    `json:"facebookUrl" db:"facebook_url"`
	MapURL                 string    `json:"mapUrl" db:"map_url"`
	MenuFullURL            string    `json:"menuFullUrl" db:"menu_full_url"`
	ReservationExternalURL string    `json:"reservationExternalUrl" db:"reservation_external_url"`
	OrderOnlineURL         string    `json:"orderOnlineUrl" db:"order_online_url"`
	WhatsappNumber         string    `json:"whatsappNumber" db:"whatsapp_number"`
	UberEatsURL            string    `json:"uberEatsUrl" db:"uber_eats_url"`
	DeliverooURL           string    `json:"deliverooUrl" db:"deliveroo_url"`
	EventsTitle            string    `json:"eventsTitle" db:"events_title"`
	EventsDescription      string    `json:"eventsDescription" db:"events_description"`
	EventsCapacity         string    `json:"eventsCapacity" db:"events_capacity"`
	MapEmbedURL            string    `json:"mapEmbedUrl" db:"map_embed_url"`
	HeroImageURL           string    `json:"heroImageUrl" db:"hero_image_url"`
	AtmosphereImage1URL    string    `json:"atmosphereImage1Url" db:"atmosphere_image1_url"`
	AtmosphereImage2URL    string    `json:"atmosphereImage2Url" db:"atmosphere_image2_url"`
	EventsImageURL         string    `json:"eventsImageUrl" db:"events_image_url"`
	LogoURL                string    `json:"logoUrl" db:"logo_url"`
	UpdatedAt              time.Time `json:"updatedAt" db:"updated_at"`
}

// NewRestaurant returns a profile carrying the creation defaults.
func NewRestaurant() *Restaurant {
	return &Restaurant{
		Name:           DefaultRestaurantName,
		City:           DefaultRestaurantCity,
		PostalCode:     DefaultPostalCode,
		EventsCapacity: DefaultEventsCapacity,
	}
}

// RestaurantInput holds the submitted restaurant form. A nil field was not
// submitted and leaves the stored value untouched.
type RestaurantInput struct {
	Name                   *string `json:"name,omitempty"`
	Address                *string `json:"address,omitempty"`
	City                   *string `json:"city,omitempty"`
	PostalCode             *string `json:"postalCode,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	Email                  *string `json:"email,omitempty"`
	WhatsappLink           *string `json:"whatsappLink,omitempty"`
	OpeningHours           *string `json:"openingHours,omitempty"`
	HeroTagline            *string `json:"heroTagline,omitempty"`
	HeroDescription        *string `json:"heroDescription,omitempty"`
	AtmosphereTitle        *string `json:"atmosphereTitle,omitempty"`
	AtmosphereText         *string `json:"atmosphereText,omitempty"`
	ReservationText        *string `json:"reservationText,omitempty"`
	InstagramURL           *string `json:"instagramUrl,omitempty"`
	FacebookURL            *string `json:"facebookUrl,omitempty"`
	MapURL                 *string `json:"mapUrl,omitempty"`
	MenuFullURL            *string `json:"menuFullUrl,omitempty"`
	ReservationExternalURL *string `json:"reservationExternalUrl,omitempty"`
	OrderOnlineURL         *string `json:"orderOnlineUrl,omitempty"`
	WhatsappNumber         *string `json:"whatsappNumber,omitempty"`
	UberEatsURL            *string `json:"uberEatsUrl,omitempty"`
	DeliverooURL           *string `json:"deliverooUrl,omitempty"`
	EventsTitle            *string `json:"eventsTitle,omitempty"`
	EventsDescription      *string `json:"eventsDescription,omitempty"`
	EventsCapacity         *string `json:"eventsCapacity,omitempty"`
	MapEmbedURL            *string `json:"mapEmbedUrl,omitempty"`
	HeroImageURL           *string `json:"heroImageUrl,omitempty"`
	AtmosphereImage1URL    *string `json:"atmosphereImage1Url,omitempty"`
	AtmosphereImage2URL    *string `json:"atmosphereImage2Url,omitempty"`
	EventsImageURL         *string `json:"eventsImageUrl,omitempty"`
	LogoURL                *string `json:"logoUrl,omitempty"`
}

// HomePage aggregates everything the public home page renders.
type HomePage struct {
	Restaurant *Restaurant      `json:"restaurant"`
	MenuItems  []*MenuItem      `json:"menuItems"`
	Gallery    []*GalleryImage  `json:"gallery"`
	Instagram  []*InstagramPost `json:"instagram"`
}
