package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSeedKeyAuth(t *testing.T) {
	const secret = "seed-secret-123"

	tests := []struct {
		name           string
		secret         string
		key            string
		expectedStatus int
		expectHandler  bool
	}{
		{name: "Valid key", secret: secret, key: secret, expectedStatus: http.StatusOK, expectHandler: true},
		{name: "Invalid key", secret: secret, key: "wrong", expectedStatus: http.StatusUnauthorized},
		{name: "Missing key", secret: secret, expectedStatus: http.StatusUnauthorized},
		{name: "Disabled without secret", secret: "", key: "anything", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := SeedKeyAuth(tt.secret, zerolog.Nop())(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
			if tt.key != "" {
				req.Header.Set(SeedKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, called)
		})
	}
}
