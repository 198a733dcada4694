package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/internal/server/storage"
)

func newStoredUser(username string) *models.StoredUser {
	return &models.StoredUser{
		Username:     username,
		Fullname:     "Full " + username,
		PasswordHash: "hash-" + username,
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newStoredUser("testuser1")
	require.NoError(t, s.CreateUser(ctx, user))

	assert.Positive(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	// Verify user was created
	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, "testuser1", retrieved.Username)
	assert.Equal(t, "Full testuser1", retrieved.Fullname)
	assert.Equal(t, "hash-testuser1", retrieved.PasswordHash)

	second := newStoredUser("testuser2")
	require.NoError(t, s.CreateUser(ctx, second))
	assert.Greater(t, second.ID, user.ID)
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateUser(ctx, newStoredUser("duplicate")))

	err := s.CreateUser(ctx, newStoredUser("duplicate"))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newStoredUser("findme")
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantError error
		name      string
		username  string
	}{
		{
			name:     "get existing user",
			username: "findme",
		},
		{
			name:      "get non-existent user",
			username:  "notfound",
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, retrieved.ID)
			assert.Equal(t, user.Fullname, retrieved.Fullname)
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_ListUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	for _, name := range []string{"carol", "alice", "bob"} {
		require.NoError(t, s.CreateUser(ctx, newStoredUser(name)))
	}

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	// порядок по id, то есть по времени создания
	assert.Equal(t, "carol", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
	assert.Equal(t, "bob", users[2].Username)
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newStoredUser("original")
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateUser(ctx, newStoredUser("taken")))

	tests := []struct {
		wantError error
		user      *models.StoredUser
		name      string
	}{
		{
			name: "update existing user",
			user: &models.StoredUser{
				ID:           user.ID,
				Username:     "renamed",
				Fullname:     "New Name",
				PasswordHash: "new-hash",
			},
		},
		{
			name: "username clash",
			user: &models.StoredUser{
				ID:           user.ID,
				Username:     "taken",
				Fullname:     "X",
				PasswordHash: "h",
			},
			wantError: storage.ErrUserAlreadyExists,
		},
		{
			name:      "update non-existent user",
			user:      &models.StoredUser{ID: 9999, Username: "ghost", Fullname: "G", PasswordHash: "h"},
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, "renamed", retrieved.Username)
			assert.Equal(t, "New Name", retrieved.Fullname)
			assert.Equal(t, "new-hash", retrieved.PasswordHash)
		})
	}
}

func TestUserStorage_DeleteUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newStoredUser("todelete")
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	err = s.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
