package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/sisadmin/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с session bucket
func createTestTokenStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "token_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestStorage_SaveGetDeleteToken(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestTokenStorage(t)
	defer cleanup()

	// До сохранения токена нет
	_, err := store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	raw := `{"data":{"token":"abc"}}`
	require.NoError(t, store.SaveToken(ctx, raw))

	got, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	// Перезапись
	require.NoError(t, store.SaveToken(ctx, "plain-token"))
	got, err = store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain-token", got)

	require.NoError(t, store.DeleteToken(ctx))

	_, err = store.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Повторное удаление отсутствующего токена
	err = store.DeleteToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_TokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken(ctx, `{"token":"persisted"}`))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"token":"persisted"}`, got)
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestTokenStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	err = store.SaveToken(ctx, "x")
	assert.ErrorContains(t, err, "session bucket not found")

	_, err = store.GetToken(ctx)
	assert.ErrorContains(t, err, "session bucket not found")

	err = store.DeleteToken(ctx)
	assert.ErrorContains(t, err, "session bucket not found")
}
