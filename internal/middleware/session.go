package middleware

import (
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/rs/zerolog"
)

// Sessions loads or starts the session of every request and stores it in
// the request context.
func Sessions(manager *session.Manager, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := manager.Load(w, r)
			if err != nil {
				logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to load session")
				writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "Erreur serveur")
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
		})
	}
}

// RequireAuth lets authenticated sessions through. Browsers are redirected
// to the login page, JSON clients get a 401.
func RequireAuth(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.FromContext(r.Context()).Authenticated() {
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug().Str("path", r.URL.Path).Msg("unauthenticated admin request")

			if wantsJSON(r) {
				writeDomainError(w, r, http.StatusUnauthorized, model.ErrUnauthorised)
				return
			}
			http.Redirect(w, r, LoginPath, http.StatusFound)
		})
	}
}
