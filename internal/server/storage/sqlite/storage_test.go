package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage создает хранилище в файле во временной директории
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	return s, func() {
		_ = s.Close()
	}
}

func TestNew_RunsMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "users", name)

	assert.NoError(t, s.Ping(context.Background()))
}

func TestNew_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	_, err = s.DB().ExecContext(ctx,
		`INSERT INTO users (username, fullname, password_hash, created_at, updated_at) VALUES ('a', 'A', 'h', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// повторный запуск миграций не ломает существующую схему
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	var count int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "test.db"))
	assert.Error(t, err)
}
