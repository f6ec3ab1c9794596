package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionStore is an in-memory SessionRepository.
type sessionStore struct {
	mu        sync.Mutex
	sessions  map[string]model.Session
	createErr error
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]model.Session)}
}

func (s *sessionStore) Create(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *sessionStore) GetByID(_ context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *sessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *sessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func newTestManager(store *sessionStore) *session.Manager {
	return session.NewManager(store, session.Options{
		Secret:     "middleware-test-secret",
		CookieName: "eden.sid",
		TTL:        24 * time.Hour,
	}, zerolog.Nop())
}

func withSession(r *http.Request, s *model.Session) *http.Request {
	return r.WithContext(session.NewContext(r.Context(), s))
}

func TestSessions(t *testing.T) {
	store := newSessionStore()
	handler := Sessions(newTestManager(store), zerolog.Nop())

	var seen *model.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = session.FromContext(r.Context())
	})

	w := httptest.NewRecorder()
	handler(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	assert.False(t, seen.Authenticated())
	assert.NotEmpty(t, seen.CSRFToken)
	assert.Len(t, store.sessions, 1)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "eden.sid", cookies[0].Name)

	// The same cookie resolves to the same session.
	first := seen
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	handler(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, first.ID, seen.ID)
	assert.Len(t, store.sessions, 1)
}

func TestSessions_StoreError(t *testing.T) {
	store := newSessionStore()
	store.createErr = errors.New("database error")

	called := false
	w := httptest.NewRecorder()
	Sessions(newTestManager(store), zerolog.Nop())(okHandler(&called)).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth(t *testing.T) {
	adminID := int64(1)
	authenticated := &model.Session{ID: "a", AdminID: &adminID, AdminEmail: "admin@edengarden.fr"}
	anonymous := &model.Session{ID: "b"}

	tests := []struct {
		name             string
		session          *model.Session
		accept           string
		expectedStatus   int
		expectedLocation string
		expectHandler    bool
	}{
		{
			name:           "Authenticated session",
			session:        authenticated,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:             "Anonymous browser is redirected",
			session:          anonymous,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/admin/login",
		},
		{
			name:           "Anonymous JSON client gets 401",
			session:        anonymous,
			accept:         "application/json",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:             "No session in context",
			session:          nil,
			expectedStatus:   http.StatusFound,
			expectedLocation: "/admin/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireAuth(zerolog.Nop())(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.session != nil {
				req = withSession(req, tt.session)
			}
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, called)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, model.ErrCodeUnauthorised, decodeError(t, w).Error)
			}
		})
	}
}
