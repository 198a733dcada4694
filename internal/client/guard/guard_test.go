package guard

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/storage"
	"github.com/iudanet/sisadmin/internal/client/ui"
)

// memoryTokenStorage хранит токен в памяти
type memoryTokenStorage struct {
	raw string
	set bool
}

func (m *memoryTokenStorage) SaveToken(ctx context.Context, raw string) error {
	m.raw, m.set = raw, true
	return nil
}

func (m *memoryTokenStorage) GetToken(ctx context.Context) (string, error) {
	if !m.set {
		return "", storage.ErrTokenNotFound
	}
	return m.raw, nil
}

func (m *memoryTokenStorage) DeleteToken(ctx context.Context) error {
	if !m.set {
		return storage.ErrTokenNotFound
	}
	m.raw, m.set = "", false
	return nil
}

var fixedNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newGuard(store *memoryTokenStorage, opts ...Option) (*Guard, *session.Session, *ui.NavigatorMock) {
	nav := &ui.NavigatorMock{NavigateFunc: func(route ui.Route) {}}
	sess := session.NewSession(store, nil)
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(sess, nav, nil, opts...), sess, nav
}

func TestGuard_Check_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id":  7,
		"username": "alice",
		"fullname": "Alice Liddell",
		"exp":      fixedNow.Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		stored string
	}{
		{name: "nested envelope", stored: `{"data":{"token":"` + token + `"}}`},
		{name: "flat envelope", stored: `{"token":"` + token + `"}`},
		{name: "raw", stored: token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, sess, nav := newGuard(&memoryTokenStorage{raw: tt.stored, set: true})

			identity, err := g.Check(context.Background())
			require.NoError(t, err)
			require.NotNil(t, identity)

			assert.Equal(t, "alice", identity.Username)
			assert.Equal(t, "Alice Liddell", identity.Fullname)
			assert.Equal(t, "7", identity.UserID)
			assert.Equal(t, fixedNow.Add(time.Hour).Unix(), identity.ExpiresAt.Unix())

			stored, ok := sess.Identity()
			require.True(t, ok)
			assert.Equal(t, identity, stored)

			assert.Empty(t, nav.NavigateCalls(), "no redirect expected")
		})
	}
}

func TestGuard_Check_TokenWithoutExpiry(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"username": "bob"})
	g, _, nav := newGuard(&memoryTokenStorage{raw: token, set: true})

	identity, err := g.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob", identity.Username)
	assert.True(t, identity.ExpiresAt.IsZero())
	assert.Empty(t, nav.NavigateCalls())
}

func TestGuard_Check_Failures(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"username": "alice",
		"exp":      fixedNow.Add(-time.Minute).Unix(),
	})

	tests := []struct {
		store *memoryTokenStorage
		name  string
	}{
		{name: "no token", store: &memoryTokenStorage{}},
		{name: "empty token", store: &memoryTokenStorage{raw: "", set: true}},
		{name: "not a jwt", store: &memoryTokenStorage{raw: "abc", set: true}},
		{name: "garbage envelope", store: &memoryTokenStorage{raw: `{"data":{"token":"x.y.z"}}`, set: true}},
		{name: "expired", store: &memoryTokenStorage{raw: expired, set: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, sess, nav := newGuard(tt.store)
			// identity от предыдущего экрана должна быть сброшена
			sess.SetIdentity(&session.Identity{Username: "stale"})

			identity, err := g.Check(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnauthenticated)
			assert.Nil(t, identity)

			_, ok := sess.Identity()
			assert.False(t, ok)

			calls := nav.NavigateCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, ui.RouteLogin, calls[0].Route)
		})
	}
}

func TestGuard_Check_ExpiryCheckDisabled(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"username": "alice",
		"exp":      fixedNow.Add(-time.Minute).Unix(),
	})
	g, _, nav := newGuard(&memoryTokenStorage{raw: expired, set: true}, WithExpiryCheck(false))

	identity, err := g.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Empty(t, nav.NavigateCalls())
}
