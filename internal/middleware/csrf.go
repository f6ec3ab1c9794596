package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/rs/zerolog"
)

const (
	// LoginPath is the admin login route. Its POST is exempt from CSRF checks.
	LoginPath = "/admin/login"

	// CSRFHeader and CSRFField carry the submitted token.
	CSRFHeader = "X-CSRF-Token"
	CSRFField  = "_csrf"

	// MaxFormBytes caps form bodies parsed while looking for the token.
	MaxFormBytes = 1 << 20
)

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// CSRF rejects mutating requests whose token differs from the session token.
func CSRF(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) || (r.Method == http.MethodPost && r.URL.Path == LoginPath) {
				next.ServeHTTP(w, r)
				return
			}

			submitted := r.Header.Get(CSRFHeader)
			if submitted == "" {
				// Only form bodies are parsed here; JSON bodies stay unread.
				r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
				if err := r.ParseForm(); err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						writeError(w, r, http.StatusRequestEntityTooLarge, model.ErrCodeValidation, "Formulaire trop volumineux")
						return
					}
					writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "Formulaire invalide")
					return
				}
				submitted = r.PostForm.Get(CSRFField)
			}

			s := session.FromContext(r.Context())
			if s == nil || s.CSRFToken == "" || submitted == "" ||
				subtle.ConstantTimeCompare([]byte(submitted), []byte(s.CSRFToken)) != 1 {
				logger.Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bool("token_present", submitted != "").
					Msg("csrf token rejected")
				writeDomainError(w, r, http.StatusForbidden, model.ErrCSRFInvalid)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
