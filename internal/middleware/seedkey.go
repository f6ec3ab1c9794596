package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/rs/zerolog"
)

// SeedKeyHeader carries the seed secret.
const SeedKeyHeader = "X-Seed-Key"

// SeedKeyAuth guards the seed endpoint with a shared secret. When secret is
// empty the endpoint does not exist.
func SeedKeyAuth(secret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "Ressource introuvable")
				return
			}

			providedKey := r.Header.Get(SeedKeyHeader)
			if providedKey == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing seed key")
				writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Clé de seed manquante")
				return
			}

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(secret)) != 1 {
				logger.Warn().Str("path", r.URL.Path).Msg("invalid seed key")
				writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Clé de seed invalide")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
