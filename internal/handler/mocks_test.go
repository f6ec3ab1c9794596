package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"
	"github.com/carlossangronio-sudo/eden-garden/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// MockCredentialService is a mock implementation of CredentialService.
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) Authenticate(ctx context.Context, email, password string) (*model.AdminAccount, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

func (m *MockCredentialService) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

func (m *MockCredentialService) FindByID(ctx context.Context, id int64) (*model.AdminAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

func (m *MockCredentialService) VerifyPassword(account *model.AdminAccount, plaintext string) bool {
	return m.Called(account, plaintext).Bool(0)
}

func (m *MockCredentialService) UpdatePassword(ctx context.Context, account *model.AdminAccount, plaintext string) error {
	return m.Called(ctx, account, plaintext).Error(0)
}

func (m *MockCredentialService) ChangePassword(ctx context.Context, adminID int64, req *model.PasswordChangeRequest) error {
	return m.Called(ctx, adminID, req).Error(0)
}

func (m *MockCredentialService) Provision(ctx context.Context, email, password string) (bool, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.Error(1)
}

// MockRestaurantService is a mock implementation of RestaurantService.
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) Get(ctx context.Context) (*model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Save(ctx context.Context, input *model.RestaurantInput) (*model.Restaurant, model.UpsertResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Restaurant), args.Get(1).(model.UpsertResult), args.Error(2)
}

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) List(ctx context.Context, filter model.ListFilter) ([]*model.MenuItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, input *model.MenuItemInput) (*model.MenuItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, id int64, input *model.MenuItemInput) (*model.MenuItem, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuService) Reorder(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockMenuService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockGalleryService is a mock implementation of GalleryService.
type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) List(ctx context.Context, filter model.ListFilter) ([]*model.GalleryImage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Get(ctx context.Context, id int64) (*model.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Create(ctx context.Context, input *model.GalleryImageInput) (*model.GalleryImage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Update(ctx context.Context, id int64, input *model.GalleryImageInput) (*model.GalleryImage, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGalleryService) ToggleVisibility(ctx context.Context, id int64) (*model.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Reorder(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockGalleryService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockInstagramService is a mock implementation of InstagramService.
type MockInstagramService struct {
	mock.Mock
}

func (m *MockInstagramService) List(ctx context.Context, filter model.ListFilter) ([]*model.InstagramPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InstagramPost), args.Error(1)
}

func (m *MockInstagramService) Get(ctx context.Context, id int64) (*model.InstagramPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InstagramPost), args.Error(1)
}

func (m *MockInstagramService) Create(ctx context.Context, input *model.InstagramPostInput) (*model.InstagramPost, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InstagramPost), args.Error(1)
}

func (m *MockInstagramService) Update(ctx context.Context, id int64, input *model.InstagramPostInput) (*model.InstagramPost, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InstagramPost), args.Error(1)
}

func (m *MockInstagramService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInstagramService) ToggleVisibility(ctx context.Context, id int64) (*model.InstagramPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InstagramPost), args.Error(1)
}

func (m *MockInstagramService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// sessionStore is an in-memory SessionRepository.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]model.Session)}
}

func (s *sessionStore) Create(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
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

func (s *sessionStore) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func newTestManager(store *sessionStore) *session.Manager {
	return session.NewManager(store, session.Options{
		Secret:     "handler-test-secret",
		CookieName: "eden.sid",
		TTL:        24 * time.Hour,
	}, zerolog.Nop())
}

// withSession attaches s to the request context.
func withSession(r *http.Request, s *model.Session) *http.Request {
	return r.WithContext(session.NewContext(r.Context(), s))
}

// withID sets the {id} route parameter.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func adminSession() *model.Session {
	id := int64(1)
	return &model.Session{
		ID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		AdminID:    &id,
		AdminEmail: "admin@edengarden.fr",
		CSRFToken:  "csrf-token",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int { return &i }
