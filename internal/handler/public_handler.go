package handler

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"

	"github.com/rs/zerolog"
)

// PublicHandler serves the read-only data rendered by the public site.
type PublicHandler struct {
	restaurant service.RestaurantService
	menu       service.MenuService
	gallery    service.GalleryService
	instagram  service.InstagramService
	responder
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(
	restaurant service.RestaurantService,
	menu service.MenuService,
	gallery service.GalleryService,
	instagram service.InstagramService,
	logger zerolog.Logger,
	debug bool,
) *PublicHandler {
	return &PublicHandler{
		restaurant: restaurant,
		menu:       menu,
		gallery:    gallery,
		instagram:  instagram,
		responder:  newResponder(logger, "public", debug),
	}
}

// Health handles GET /health.
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Home handles GET /api/home. Only visible rows are returned.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, err := h.restaurant.Get(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	menuItems, err := h.menu.List(ctx, model.PublicFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	gallery, err := h.gallery.List(ctx, model.PublicFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	instagram, err := h.instagram.List(ctx, model.PublicFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.HomePage{
		Restaurant: restaurant,
		MenuItems:  nonNil(menuItems),
		Gallery:    nonNil(gallery),
		Instagram:  nonNil(instagram),
	})
}

// Restaurant handles GET /api/restaurant. The body is null before the
// profile is first saved.
func (h *PublicHandler) Restaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.restaurant.Get(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

// Menu handles GET /api/menu.
func (h *PublicHandler) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context(), model.PublicFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

// Gallery handles GET /api/gallery.
func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.gallery.List(r.Context(), model.PublicFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(images))
}

// Instagram handles GET /api/instagram.
func (h *PublicHandler) Instagram(w http.ResponseWriter, r *http.Request) {
	posts, err := h.instagram.List(r.Context(), model.PublicFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(posts))
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](rows []*T) []*T {
	if rows == nil {
		return []*T{}
	}
	return rows
}
