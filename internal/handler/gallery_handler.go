package handler

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"

	"github.com/rs/zerolog"
)

// GalleryHandler handles the photo gallery.
type GalleryHandler struct {
	crud[model.GalleryImage, model.GalleryImageInput]
	gallery service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(gallery service.GalleryService, logger zerolog.Logger, debug bool) *GalleryHandler {
	return &GalleryHandler{
		crud: crud[model.GalleryImage, model.GalleryImageInput]{
			items:     gallery,
			responder: newResponder(logger, "gallery", debug),
		},
		gallery: gallery,
	}
}

// Reorder handles POST /admin/gallery/reorder.
func (h *GalleryHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	reorder[model.GalleryImage](h.responder, h.gallery, w, r)
}

// ToggleVisibility handles POST /admin/gallery/{id}/toggle.
func (h *GalleryHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	toggle[model.GalleryImage](h.responder, h.gallery, w, r)
}
