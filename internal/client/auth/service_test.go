package auth

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/sisadmin/internal/client/api"
	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/storage/boltdb"
	"github.com/iudanet/sisadmin/internal/client/ui"
	"github.com/iudanet/sisadmin/pkg/api"
)

func newTestService(t *testing.T, client LoginAPI) (*Service, *session.Session, *ui.NavigatorMock) {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	sess := session.NewSession(store, nil)
	nav := &ui.NavigatorMock{NavigateFunc: func(route ui.Route) {}}
	return NewService(client, sess, nav, nil), sess, nav
}

func TestService_Login(t *testing.T) {
	client := &LoginAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			assert.Equal(t, api.LoginRequest{Username: "alice", Password: "secret1"}, req)
			return &api.TokenResponse{Token: "jwt-token", ExpiresIn: 3600}, nil
		},
	}
	svc, sess, nav := newTestService(t, client)

	require.NoError(t, svc.Login(context.Background(), "alice", "secret1"))

	token, err := sess.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	calls := nav.NavigateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, ui.RouteDashboard, calls[0].Route)
}

func TestService_Login_EmptyCredentials(t *testing.T) {
	client := &LoginAPIMock{}
	svc, _, nav := newTestService(t, client)

	err := svc.Login(context.Background(), "alice", "")
	require.ErrorIs(t, err, ErrCredentialsRequired)
	assert.Empty(t, client.LoginCalls())
	assert.Empty(t, nav.NavigateCalls())
}

func TestService_Login_ServerError(t *testing.T) {
	client := &LoginAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return nil, &clientapi.ServerError{StatusCode: http.StatusUnauthorized, Message: "Invalid username or password"}
		},
	}
	svc, sess, nav := newTestService(t, client)

	err := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", clientapi.UserMessage(err, MsgLoginFailed))

	_, err = sess.Token(context.Background())
	assert.True(t, errors.Is(err, session.ErrNoToken))
	assert.Empty(t, nav.NavigateCalls())
}

func TestService_Logout(t *testing.T) {
	svc, sess, nav := newTestService(t, &LoginAPIMock{})
	ctx := context.Background()

	require.NoError(t, sess.SaveToken(ctx, "jwt-token"))
	sess.SetIdentity(&session.Identity{Username: "alice"})

	require.NoError(t, svc.Logout(ctx))

	_, err := sess.Token(ctx)
	assert.ErrorIs(t, err, session.ErrNoToken)
	_, ok := sess.Identity()
	assert.False(t, ok)

	calls := nav.NavigateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, ui.RouteLogin, calls[0].Route)

	// повторный выход без токена не ошибка
	require.NoError(t, svc.Logout(ctx))
}
