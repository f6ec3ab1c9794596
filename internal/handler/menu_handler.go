package handler

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu administration.
type MenuHandler struct {
	crud[model.MenuItem, model.MenuItemInput]
	menu service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu service.MenuService, logger zerolog.Logger, debug bool) *MenuHandler {
	return &MenuHandler{
		crud: crud[model.MenuItem, model.MenuItemInput]{
			items:     menu,
			responder: newResponder(logger, "menu", debug),
		},
		menu: menu,
	}
}

// Reorder handles POST /admin/menu/reorder.
func (h *MenuHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	reorder[model.MenuItem](h.responder, h.menu, w, r)
}
