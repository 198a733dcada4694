package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/internal/server/storage"
	"github.com/iudanet/sisadmin/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret"),
		Issuer:         "sisadmin-test",
		AccessTokenTTL: 15 * time.Minute,
	}
}

// newMemoryStorage возвращает мок хранилища, который держит пользователей в памяти
func newMemoryStorage() *storage.UserStorageMock {
	users := map[int64]*models.StoredUser{}
	var nextID int64

	byUsername := func(username string) *models.StoredUser {
		for _, u := range users {
			if u.Username == username {
				return u
			}
		}
		return nil
	}

	return &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.StoredUser) error {
			if byUsername(user.Username) != nil {
				return storage.ErrUserAlreadyExists
			}
			nextID++
			user.ID = nextID
			user.CreatedAt = time.Now()
			user.UpdatedAt = user.CreatedAt
			stored := *user
			users[user.ID] = &stored
			return nil
		},
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.StoredUser, error) {
			u := byUsername(username)
			if u == nil {
				return nil, storage.ErrUserNotFound
			}
			cp := *u
			return &cp, nil
		},
		GetUserByIDFunc: func(ctx context.Context, userID int64) (*models.StoredUser, error) {
			u, ok := users[userID]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			cp := *u
			return &cp, nil
		},
		ListUsersFunc: func(ctx context.Context) ([]models.StoredUser, error) {
			result := []models.StoredUser{}
			for id := int64(1); id <= nextID; id++ {
				if u, ok := users[id]; ok {
					result = append(result, *u)
				}
			}
			return result, nil
		},
		UpdateUserFunc: func(ctx context.Context, user *models.StoredUser) error {
			if _, ok := users[user.ID]; !ok {
				return storage.ErrUserNotFound
			}
			if other := byUsername(user.Username); other != nil && other.ID != user.ID {
				return storage.ErrUserAlreadyExists
			}
			stored := *user
			users[user.ID] = &stored
			return nil
		},
		DeleteUserFunc: func(ctx context.Context, userID int64) error {
			if _, ok := users[userID]; !ok {
				return storage.ErrUserNotFound
			}
			delete(users, userID)
			return nil
		},
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}
