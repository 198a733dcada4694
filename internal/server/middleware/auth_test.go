package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/internal/server/handlers"
	"github.com/iudanet/sisadmin/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key"),
		Issuer:         "sisadmin",
		AccessTokenTTL: 15 * time.Minute,
	}
}

// testHandler is a simple handler that checks context values
func testHandler(t *testing.T, expectedUserID int64, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	jwtConfig := testJWTConfig()
	token, _, err := handlers.GenerateAccessToken(jwtConfig, &models.StoredUser{ID: 7, Username: "testuser"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "bearer scheme", header: "Bearer " + token},
		{name: "lowercase scheme", header: "bearer " + token},
		{name: "raw token", header: token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := AuthMiddleware(setupTestLogger(), jwtConfig)(testHandler(t, 7, "testuser"))

			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "OK", w.Body.String())
		})
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	jwtConfig := testJWTConfig()

	expiredCfg := jwtConfig
	expiredCfg.AccessTokenTTL = -time.Minute
	expired, _, err := handlers.GenerateAccessToken(expiredCfg, &models.StoredUser{ID: 1, Username: "u"})
	require.NoError(t, err)

	foreignCfg := jwtConfig
	foreignCfg.Secret = []byte("wrong-secret")
	foreign, _, err := handlers.GenerateAccessToken(foreignCfg, &models.StoredUser{ID: 1, Username: "u"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{name: "missing header", header: "", wantMessage: MsgMissingToken},
		{name: "bearer without token", header: "Bearer ", wantMessage: MsgMissingToken},
		{name: "garbage token", header: "Bearer invalid.token.here", wantMessage: MsgInvalidToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantMessage: MsgInvalidToken},
		{name: "expired token", header: "Bearer " + expired, wantMessage: MsgInvalidToken},
		{name: "wrong secret", header: foreign, wantMessage: MsgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			wrapped := AuthMiddleware(setupTestLogger(), jwtConfig)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.False(t, called, "handler should not be called")
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
