package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sisadmin/internal/client/storage"
)

// mockTokenStorage implements storage.TokenStorage for testing
type mockTokenStorage struct {
	getErr    error
	saveErr   error
	deleteErr error
	raw       *string
}

func (m *mockTokenStorage) SaveToken(ctx context.Context, raw string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.raw = &raw
	return nil
}

func (m *mockTokenStorage) GetToken(ctx context.Context) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	if m.raw == nil {
		return "", storage.ErrTokenNotFound
	}
	return *m.raw, nil
}

func (m *mockTokenStorage) DeleteToken(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.raw == nil {
		return storage.ErrTokenNotFound
	}
	m.raw = nil
	return nil
}

func stored(raw string) *string {
	return &raw
}

func TestSession_Token(t *testing.T) {
	tests := []struct {
		name    string
		store   *mockTokenStorage
		want    string
		wantErr error
	}{
		{
			name:  "nested envelope",
			store: &mockTokenStorage{raw: stored(`{"data":{"token":"abc"}}`)},
			want:  "abc",
		},
		{
			name:  "flat envelope",
			store: &mockTokenStorage{raw: stored(`{"token":"abc"}`)},
			want:  "abc",
		},
		{
			name:  "raw",
			store: &mockTokenStorage{raw: stored("abc")},
			want:  "abc",
		},
		{
			name:    "nothing stored",
			store:   &mockTokenStorage{},
			wantErr: ErrNoToken,
		},
		{
			name:    "empty entry",
			store:   &mockTokenStorage{raw: stored("")},
			wantErr: ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.store, nil)
			got, err := s.Token(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_Token_StorageError(t *testing.T) {
	s := NewSession(&mockTokenStorage{getErr: errors.New("disk failure")}, nil)

	_, err := s.Token(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoToken)
	assert.Contains(t, err.Error(), "disk failure")
}

func TestSession_SaveToken_StoresEnvelope(t *testing.T) {
	store := &mockTokenStorage{}
	s := NewSession(store, nil)

	require.NoError(t, s.SaveToken(context.Background(), "abc"))
	require.NotNil(t, store.raw)
	assert.JSONEq(t, `{"data":{"token":"abc"}}`, *store.raw)

	got, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestSession_SaveToken_Errors(t *testing.T) {
	s := NewSession(&mockTokenStorage{}, nil)
	assert.ErrorIs(t, s.SaveToken(context.Background(), ""), ErrNoToken)

	s = NewSession(&mockTokenStorage{saveErr: errors.New("read-only")}, nil)
	assert.ErrorContains(t, s.SaveToken(context.Background(), "abc"), "read-only")
}

func TestSession_Clear(t *testing.T) {
	store := &mockTokenStorage{raw: stored("abc")}
	s := NewSession(store, nil)
	s.SetIdentity(&Identity{Username: "alice"})

	require.NoError(t, s.Clear(context.Background()))
	assert.Nil(t, store.raw)

	_, ok := s.Identity()
	assert.False(t, ok)

	// Повторный logout без токена не ошибка
	require.NoError(t, s.Clear(context.Background()))

	s = NewSession(&mockTokenStorage{raw: stored("abc"), deleteErr: errors.New("locked")}, nil)
	assert.ErrorContains(t, s.Clear(context.Background()), "locked")
}

func TestSession_Identity(t *testing.T) {
	s := NewSession(&mockTokenStorage{}, nil)

	_, ok := s.Identity()
	assert.False(t, ok)

	s.SetIdentity(&Identity{Username: "alice"})
	id, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, "alice", id.Username)

	s.ClearIdentity()
	_, ok = s.Identity()
	assert.False(t, ok)
}
