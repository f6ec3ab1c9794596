package handler

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"

	"github.com/rs/zerolog"
)

// RestaurantHandler edits the restaurant profile.
type RestaurantHandler struct {
	service service.RestaurantService
	responder
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(service service.RestaurantService, logger zerolog.Logger, debug bool) *RestaurantHandler {
	return &RestaurantHandler{
		service:   service,
		responder: newResponder(logger, "restaurant", debug),
	}
}

// RestaurantForm is returned by GET /admin/restaurant. Exists is false
// until the profile is saved once; Restaurant then holds the defaults.
type RestaurantForm struct {
	Restaurant *model.Restaurant `json:"restaurant"`
	Exists     bool              `json:"exists"`
}

// SaveResult is returned after a profile save.
type SaveResult struct {
	Restaurant *model.Restaurant  `json:"restaurant"`
	Result     model.UpsertResult `json:"result"`
}

// Get handles GET /admin/restaurant.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.service.Get(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if restaurant == nil {
		writeJSON(w, http.StatusOK, RestaurantForm{Restaurant: model.NewRestaurant()})
		return
	}
	writeJSON(w, http.StatusOK, RestaurantForm{Restaurant: restaurant, Exists: true})
}

// Save handles POST /admin/restaurant.
func (h *RestaurantHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input model.RestaurantInput
	if err := decodeInput(w, r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	restaurant, result, err := h.service.Save(r.Context(), &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if result == model.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, SaveResult{Restaurant: restaurant, Result: result})
}
