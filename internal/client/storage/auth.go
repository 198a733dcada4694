package storage

import (
	"context"
)

// TokenStorage defines interface for persisting the session token on client.
// The stored value is an opaque string: a bare token or one of the JSON envelopes
// `{"data":{"token":...}}` / `{"token":...}`. Interpretation is up to session.ResolveToken.
type TokenStorage interface {
	// SaveToken stores the raw token entry as-is
	SaveToken(ctx context.Context, raw string) error

	// GetToken retrieves the raw token entry as-is
	// Returns ErrTokenNotFound if nothing is stored
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored entry (logout)
	// Returns ErrTokenNotFound if nothing is stored
	DeleteToken(ctx context.Context) error
}
