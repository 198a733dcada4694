package storage

import (
	"context"

	"github.com/iudanet/sisadmin/internal/models"
)

//go:generate moq -out user_mock.go . UserStorage

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage and fills its ID and timestamps
	// Returns ErrUserAlreadyExists if username already exists
	CreateUser(ctx context.Context, user *models.StoredUser) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.StoredUser, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.StoredUser, error)

	// ListUsers returns all users ordered by ID
	ListUsers(ctx context.Context) ([]models.StoredUser, error)

	// UpdateUser updates username, fullname and password hash
	// Returns ErrUserNotFound if user doesn't exist, ErrUserAlreadyExists on username clash
	UpdateUser(ctx context.Context, user *models.StoredUser) error

	// DeleteUser deletes user by ID
	// Returns ErrUserNotFound if user doesn't exist
	DeleteUser(ctx context.Context, userID int64) error
}
