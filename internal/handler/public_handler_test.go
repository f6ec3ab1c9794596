package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlossangronio-sudo/eden-garden/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publicMocks struct {
	restaurant *MockRestaurantService
	menu       *MockMenuService
	gallery    *MockGalleryService
	instagram  *MockInstagramService
}

func newPublicHandler() (*PublicHandler, publicMocks) {
	m := publicMocks{
		restaurant: new(MockRestaurantService),
		menu:       new(MockMenuService),
		gallery:    new(MockGalleryService),
		instagram:  new(MockInstagramService),
	}
	return NewPublicHandler(m.restaurant, m.menu, m.gallery, m.instagram, zerolog.Nop(), false), m
}

func TestPublicHandler_Health(t *testing.T) {
	h, _ := newPublicHandler()

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestPublicHandler_Home(t *testing.T) {
	h, m := newPublicHandler()

	restaurant := &model.Restaurant{ID: 1, Name: "Eden Garden", City: "Nice"}
	m.restaurant.On("Get", mock.Anything).Return(restaurant, nil)
	m.menu.On("List", mock.Anything, model.PublicFilter).Return([]*model.MenuItem{{ID: 1, Title: "Poulet Yassa", IsVisible: true}}, nil)
	m.gallery.On("List", mock.Anything, model.PublicFilter).Return(nil, nil)
	m.instagram.On("List", mock.Anything, model.PublicFilter).Return([]*model.InstagramPost{}, nil)

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.JSONEq(t, `[]`, string(raw["gallery"]), "empty lists are arrays")
	assert.Contains(t, string(raw["restaurant"]), `"name":"Eden Garden"`)
	assert.Contains(t, string(raw["menuItems"]), "Poulet Yassa")

	m.menu.AssertExpectations(t)
	m.gallery.AssertExpectations(t)
	m.instagram.AssertExpectations(t)
}

func TestPublicHandler_Home_StoreError(t *testing.T) {
	h, m := newPublicHandler()
	m.restaurant.On("Get", mock.Anything).Return(nil, errors.New("database error"))

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	m.menu.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPublicHandler_Lists(t *testing.T) {
	h, m := newPublicHandler()
	m.restaurant.On("Get", mock.Anything).Return(nil, nil)
	m.menu.On("List", mock.Anything, model.PublicFilter).Return(nil, nil)
	m.gallery.On("List", mock.Anything, model.PublicFilter).Return([]*model.GalleryImage{{ID: 4}}, nil)
	m.instagram.On("List", mock.Anything, model.PublicFilter).Return(nil, errors.New("timeout"))

	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{name: "restaurant before first save", handler: h.Restaurant, expectedStatus: http.StatusOK, expectedBody: "null"},
		{name: "empty menu", handler: h.Menu, expectedStatus: http.StatusOK, expectedBody: "[]"},
		{name: "gallery", handler: h.Gallery, expectedStatus: http.StatusOK},
		{name: "instagram failure", handler: h.Instagram, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest(http.MethodGet, "/api/x", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
