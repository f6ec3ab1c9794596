package handler

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"

	"github.com/rs/zerolog"
)

// InstagramHandler handles the Instagram feed posts.
type InstagramHandler struct {
	crud[model.InstagramPost, model.InstagramPostInput]
	instagram service.InstagramService
}

// NewInstagramHandler creates a new Instagram handler.
func NewInstagramHandler(instagram service.InstagramService, logger zerolog.Logger, debug bool) *InstagramHandler {
	return &InstagramHandler{
		crud: crud[model.InstagramPost, model.InstagramPostInput]{
			items:     instagram,
			responder: newResponder(logger, "instagram", debug),
		},
		instagram: instagram,
	}
}

// ToggleVisibility handles POST /admin/instagram/{id}/toggle.
func (h *InstagramHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	toggle[model.InstagramPost](h.responder, h.instagram, w, r)
}
