package handler

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps admin form and JSON bodies.
const maxBodyBytes = 1 << 20

var errInvalidJSON = model.NewDomainError(model.ErrCodeInvalidJSON, "Requête JSON invalide")

var errInvalidID = model.NewValidationError("Identifiant invalide")

// statusByCode maps domain error codes to HTTP status codes.
var statusByCode = map[string]int{
	model.ErrCodeInvalidJSON:        http.StatusBadRequest,
	model.ErrCodeValidation:         http.StatusBadRequest,
	model.ErrCodeNotFound:           http.StatusNotFound,
	model.ErrCodeInvalidCredentials: http.StatusUnauthorized,
	model.ErrCodeUnauthorised:       http.StatusUnauthorized,
	model.ErrCodeCSRF:               http.StatusForbidden,
	model.ErrCodeForbidden:          http.StatusForbidden,
	model.ErrCodeRateLimited:        http.StatusTooManyRequests,
	model.ErrCodeInternalError:      http.StatusInternalServerError,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// responder writes error responses for a handler.
type responder struct {
	logger zerolog.Logger
	debug  bool
}

func newResponder(logger zerolog.Logger, name string, debug bool) responder {
	return responder{
		logger: logger.With().Str("handler", name).Logger(),
		debug:  debug,
	}
}

// writeError maps err to a response. Domain errors keep their code and
// message; anything else is logged and reported as a server error, with
// the detail attached only in debug mode.
func (h responder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := chimw.GetReqID(r.Context())

	if de, ok := model.AsDomainError(err); ok {
		status, known := statusByCode[de.Code]
		if !known {
			status = http.StatusBadRequest
		}
		h.logger.Debug().
			Str("code", de.Code).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("request_id", requestID).
			Msg("request rejected")
		writeJSON(w, status, model.ErrorResponse{Error: de.Code, Message: de.Message, CorrelationID: requestID})
		return
	}

	h.logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", requestID).
		Msg("handler error")

	message := "Erreur serveur"
	if h.debug {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:         model.ErrCodeInternalError,
		Message:       message,
		CorrelationID: requestID,
	})
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeJSON decodes a JSON body into dst, rejecting unknown keys.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

// decodeInput fills dst from a JSON body or from a form submission.
// Omitted JSON keys stay nil; in forms an absent checkbox means false.
func decodeInput(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if isJSON(r) {
		return decodeJSON(w, r, dst)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return model.NewValidationError("Formulaire invalide")
	}
	return bindForm(r.PostForm, dst)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// deleted is the body returned by delete endpoints.
type deleted struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}
