package handler

import (
	"context"
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/seed"

	"github.com/rs/zerolog"
)

// Seeder applies a seed document.
type Seeder interface {
	Apply(ctx context.Context, doc *seed.Document) (seed.Report, error)
}

// SeedHandler runs seeding over HTTP for hosts without shell access.
type SeedHandler struct {
	seeder Seeder
	loader seed.Loader
	source string
	admin  seed.AdminSeed
	responder
}

// NewSeedHandler creates a seed handler. Requests without a JSON body seed
// the document loader reads from source. A non-empty admin replaces the
// document's admin account.
func NewSeedHandler(seeder Seeder, loader seed.Loader, source string, admin seed.AdminSeed, logger zerolog.Logger, debug bool) *SeedHandler {
	return &SeedHandler{
		seeder:    seeder,
		loader:    loader,
		source:    source,
		admin:     admin,
		responder: newResponder(logger, "seed", debug),
	}
}

// Seed handles POST /api/seed.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var (
		doc *seed.Document
		err error
	)

	if isJSON(r) && r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		doc, err = seed.Decode(r.Body)
		if err != nil {
			h.writeError(w, r, errInvalidJSON)
			return
		}
	} else {
		doc, err = h.loader.Load(r.Context(), h.source)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	report, err := h.seeder.Apply(r.Context(), doc.WithAdmin(h.admin.Email, h.admin.Password))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info().Bool("created_anything", !report.Empty()).Msg("seed endpoint applied")
	writeJSON(w, http.StatusOK, report)
}
