package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sisadmin/internal/client/storage"
)

var tokenKey = []byte("token")

// Compile-time check that Storage implements TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// SaveToken stores the raw token entry
func (s *Storage) SaveToken(ctx context.Context, raw string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(tokenKey, []byte(raw)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the raw token entry
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	var raw string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		// data валиден только внутри транзакции, string() делает копию
		raw = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return raw, nil
}

// DeleteToken removes stored token entry (logout)
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(tokenKey) == nil {
			return storage.ErrTokenNotFound
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}
