// Package session manages server-side admin sessions: the signed cookie that
// names them, their persisted records and the CSRF token each one carries.
package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/repository"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog"
)

// csrfTokenBytes is the entropy of a CSRF token before hex encoding.
const csrfTokenBytes = 32

// Options configures a Manager.
type Options struct {
	Secret       string
	CookieName   string
	TTL          time.Duration
	CookieSecure bool
}

// Manager loads, creates, regenerates and destroys sessions.
type Manager struct {
	repo   repository.SessionRepository
	codec  *securecookie.SecureCookie
	opts   Options
	now    func() time.Time
	logger zerolog.Logger
}

// NewManager creates a session manager. Cookie keys are derived from opts.Secret.
func NewManager(repo repository.SessionRepository, opts Options, logger zerolog.Logger) *Manager {
	hashKey := sha256.Sum256([]byte("auth:" + opts.Secret))
	blockKey := sha256.Sum256([]byte("enc:" + opts.Secret))

	codec := securecookie.New(hashKey[:], blockKey[:])
	codec.MaxAge(int(opts.TTL / time.Second))

	return &Manager{
		repo:   repo,
		codec:  codec,
		opts:   opts,
		now:    time.Now,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.opts.CookieName
}

// shortID keeps session ids out of logs beyond a short prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// NewCSRFToken returns 32 random bytes, hex encoded.
func NewCSRFToken() (string, error) {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Load returns the session named by the request cookie. A missing, tampered,
// unknown or expired cookie yields a fresh anonymous session and a new cookie.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*model.Session, error) {
	ctx := r.Context()

	if id, ok := m.readCookie(r); ok {
		s, err := m.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if s != nil && !s.Expired(m.now()) {
			return s, nil
		}
		if s != nil {
			m.logger.Debug().Str("session", shortID(id)).Msg("session expired")
			if err := m.repo.Delete(ctx, id); err != nil {
				m.logger.Warn().Err(err).Msg("failed to delete expired session")
			}
		}
	}

	return m.create(w, r, nil)
}

// Regenerate replaces s with a new authenticated session for account. The
// old id stops resolving and a new CSRF token is issued.
func (m *Manager) Regenerate(w http.ResponseWriter, r *http.Request, s *model.Session, account *model.AdminAccount) (*model.Session, error) {
	if s != nil {
		if err := m.repo.Delete(r.Context(), s.ID); err != nil {
			return nil, fmt.Errorf("failed to regenerate session: %w", err)
		}
	}

	next, err := m.create(w, r, account)
	if err != nil {
		return nil, err
	}

	m.logger.Info().Int64("admin_id", account.ID).Msg("session regenerated after login")
	return next, nil
}

// Destroy deletes the session record and expires the cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request, s *model.Session) error {
	if s != nil {
		if err := m.repo.Delete(r.Context(), s.ID); err != nil {
			return fmt.Errorf("failed to destroy session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Prune deletes expired sessions.
func (m *Manager) Prune(ctx context.Context) (int64, error) {
	removed, err := m.repo.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	if removed > 0 {
		m.logger.Info().Int64("removed", removed).Msg("expired sessions pruned")
	}
	return removed, nil
}

// RunPruner calls Prune every interval until ctx is cancelled.
func (m *Manager) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug().Msg("session pruner stopped")
			return
		case <-ticker.C:
			if _, err := m.Prune(ctx); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Error().Err(err).Msg("session prune failed")
			}
		}
	}
}

func (m *Manager) create(w http.ResponseWriter, r *http.Request, account *model.AdminAccount) (*model.Session, error) {
	token, err := NewCSRFToken()
	if err != nil {
		return nil, err
	}

	s := &model.Session{
		ID:        uuid.NewString(),
		CSRFToken: token,
		ExpiresAt: m.now().Add(m.opts.TTL),
	}
	if account != nil {
		id := account.ID
		s.AdminID = &id
		s.AdminEmail = account.Email
	}

	if err := m.repo.Create(r.Context(), s); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := m.writeCookie(w, r, s); err != nil {
		return nil, err
	}

	m.logger.Debug().Str("session", shortID(s.ID)).Bool("authenticated", s.Authenticated()).Msg("session created")
	return s, nil
}

func (m *Manager) readCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.opts.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	var id string
	if err := m.codec.Decode(m.opts.CookieName, cookie.Value, &id); err != nil {
		m.logger.Debug().Err(err).Msg("rejected session cookie")
		return "", false
	}
	return id, true
}

func (m *Manager) writeCookie(w http.ResponseWriter, r *http.Request, s *model.Session) error {
	encoded, err := m.codec.Encode(m.opts.CookieName, s.ID)
	if err != nil {
		return fmt.Errorf("failed to encode session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    encoded,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// secure reports whether the cookie must carry the Secure attribute.
func (m *Manager) secure(r *http.Request) bool {
	if m.opts.CookieSecure || r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by NewContext, or nil.
func FromContext(ctx context.Context) *model.Session {
	s, _ := ctx.Value(contextKey{}).(*model.Session)
	return s
}
