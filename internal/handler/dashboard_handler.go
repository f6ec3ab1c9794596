package handler

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/rs/zerolog"
)

// DashboardHandler serves the admin landing page data.
type DashboardHandler struct {
	menu       service.MenuService
	restaurant service.RestaurantService
	responder
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(menu service.MenuService, restaurant service.RestaurantService, logger zerolog.Logger, debug bool) *DashboardHandler {
	return &DashboardHandler{
		menu:       menu,
		restaurant: restaurant,
		responder:  newResponder(logger, "dashboard", debug),
	}
}

// Dashboard is the summary shown on the admin landing page.
type Dashboard struct {
	AdminEmail     string `json:"adminEmail"`
	MenuCount      int    `json:"menuCount"`
	RestaurantName string `json:"restaurantName"`
}

// Get handles GET /admin. Store failures degrade to default values.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard := Dashboard{
		AdminEmail:     session.FromContext(r.Context()).AdminEmail,
		RestaurantName: model.DefaultRestaurantName,
	}

	count, err := h.menu.Count(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to count menu items")
	} else {
		dashboard.MenuCount = count
	}

	restaurant, err := h.restaurant.Get(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load restaurant profile")
	} else if restaurant != nil && restaurant.Name != "" {
		dashboard.RestaurantName = restaurant.Name
	}

	writeJSON(w, http.StatusOK, dashboard)
}
