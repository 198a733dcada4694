// Package auth реализует вход и выход пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/ui"
	"github.com/iudanet/sisadmin/internal/validation"
	"github.com/iudanet/sisadmin/pkg/api"
)

// MsgLoginFailed показывается, если сервер не прислал своего сообщения
const MsgLoginFailed = "Failed to login. Please try again."

// ErrCredentialsRequired логин или пароль не заполнены
var ErrCredentialsRequired = errors.New("username and password are required")

// Service предоставляет функции авторизации
type Service struct {
	api     LoginAPI
	session *session.Session
	nav     ui.Navigator
	logger  *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(client LoginAPI, sess *session.Session, nav ui.Navigator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:     client,
		session: sess,
		nav:     nav,
		logger:  logger,
	}
}

// Login выполняет аутентификацию пользователя.
// Токен сохраняется в том же формате, что и после регистрации, затем выполняется переход на dashboard.
func (s *Service) Login(ctx context.Context, username, password string) error {
	err := validation.Required(
		validation.Field{Name: "username", Value: username},
		validation.Field{Name: "password", Value: password},
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCredentialsRequired, err)
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.logger.WarnContext(ctx, "login failed",
			slog.String("username", username),
			slog.Any("error", err))
		return fmt.Errorf("login failed: %w", err)
	}

	if err := s.session.SaveToken(ctx, resp.Token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	s.logger.InfoContext(ctx, "logged in", slog.String("username", username))
	s.nav.Navigate(ui.RouteDashboard)
	return nil
}

// Logout удаляет токен и переводит на экран входа
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.InfoContext(ctx, "logged out")
	s.nav.Navigate(ui.RouteLogin)
	return nil
}
