package handler

import (
	"errors"
	"net/http"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/service"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/rs/zerolog"
)

// AuthHandler handles login, logout and password changes.
type AuthHandler struct {
	credentials service.CredentialService
	sessions    *session.Manager
	responder
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(credentials service.CredentialService, sessions *session.Manager, logger zerolog.Logger, debug bool) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		sessions:    sessions,
		responder:   newResponder(logger, "auth", debug),
	}
}

// LoginState is returned by GET /admin/login.
type LoginState struct {
	Authenticated bool   `json:"authenticated"`
	CSRFToken     string `json:"csrfToken"`
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Redirect  string `json:"redirect"`
	CSRFToken string `json:"csrfToken"`
}

// SessionInfo describes the authenticated session.
type SessionInfo struct {
	AdminEmail string `json:"adminEmail"`
	CSRFToken  string `json:"csrfToken"`
}

// Message carries a user-facing confirmation.
type Message struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// LoginPage handles GET /admin/login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	state := LoginState{Authenticated: s.Authenticated()}
	if s != nil {
		state.CSRFToken = s.CSRFToken
	}
	writeJSON(w, http.StatusOK, state)
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeInput(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.credentials.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	next, err := h.sessions.Regenerate(w, r, session.FromContext(r.Context()), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info().Int64("admin_id", account.ID).Msg("admin logged in")
	writeJSON(w, http.StatusOK, LoginResult{Redirect: "/admin", CSRFToken: next.CSRFToken})
}

// Logout handles POST /admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r, session.FromContext(r.Context())); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Message{Message: "Déconnecté", Redirect: "/admin/login"})
}

// Session handles GET /admin/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	writeJSON(w, http.StatusOK, SessionInfo{AdminEmail: s.AdminEmail, CSRFToken: s.CSRFToken})
}

// ChangePassword handles POST /admin/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordChangeRequest
	if err := decodeInput(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	s := session.FromContext(r.Context())
	err := h.credentials.ChangePassword(r.Context(), *s.AdminID, &req)
	if errors.Is(err, model.ErrAdminNotFound) {
		// The account behind this session is gone.
		if derr := h.sessions.Destroy(w, r, s); derr != nil {
			h.logger.Warn().Err(derr).Msg("failed to destroy orphaned session")
		}
		h.writeError(w, r, model.ErrUnauthorised)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Message{Message: "Mot de passe modifié avec succès"})
}
