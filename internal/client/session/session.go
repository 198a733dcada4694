package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/sisadmin/internal/client/storage"
)

// Identity содержит декодированные claims текущего пользователя.
// Живет только в памяти на время работы экрана/команды.
type Identity struct {
	ExpiresAt time.Time
	Claims    map[string]any
	UserID    string
	Username  string
	Fullname  string
}

// Session хранит доступ к сохраненному токену и текущую identity.
// Передается явно во все компоненты, которым нужна авторизация.
// Не предназначен для конкурентного использования.
type Session struct {
	store    storage.TokenStorage
	logger   *slog.Logger
	identity *Identity
}

// NewSession создает новую сессию поверх хранилища токена
func NewSession(store storage.TokenStorage, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:  store,
		logger: logger,
	}
}

// Token возвращает текущий bearer token или ErrNoToken
func (s *Session) Token(ctx context.Context) (string, error) {
	raw, err := s.store.GetToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return ResolveToken(raw)
}

// SaveToken сохраняет токен в канонической форме конверта
func (s *Session) SaveToken(ctx context.Context, token string) error {
	raw, err := EncodeEnvelope(token)
	if err != nil {
		return err
	}
	if err := s.store.SaveToken(ctx, raw); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear удаляет сохраненный токен и identity (logout).
// Отсутствие токена ошибкой не считается.
func (s *Session) Clear(ctx context.Context) error {
	s.identity = nil

	if err := s.store.DeleteToken(ctx); err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			s.logger.DebugContext(ctx, "no token to delete")
			return nil
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Identity возвращает identity, если guard ее уже установил
func (s *Session) Identity() (*Identity, bool) {
	return s.identity, s.identity != nil
}

// SetIdentity сохраняет identity в памяти
func (s *Session) SetIdentity(identity *Identity) {
	s.identity = identity
}

// ClearIdentity удаляет identity из памяти
func (s *Session) ClearIdentity() {
	s.identity = nil
}
