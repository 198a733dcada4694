// Package guard проверяет сессию при входе на защищенный экран.
package guard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/ui"
)

// ErrUnauthenticated возвращается при отсутствии или невалидности токена
var ErrUnauthenticated = errors.New("unauthenticated")

// Guard однократно проверяет токен при открытии защищенного экрана.
// Любая ошибка (нет токена, токен не декодируется, токен истек) обрабатывается одинаково:
// identity сбрасывается и выполняется переход на экран входа.
type Guard struct {
	session     *session.Session
	nav         ui.Navigator
	logger      *slog.Logger
	now         func() time.Time
	parser      *jwt.Parser
	checkExpiry bool
}

// Option настраивает Guard
type Option func(*Guard)

// WithClock подменяет источник текущего времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		g.now = now
	}
}

// WithExpiryCheck включает или выключает проверку claim exp
func WithExpiryCheck(enabled bool) Option {
	return func(g *Guard) {
		g.checkExpiry = enabled
	}
}

// New создает новый Guard
func New(sess *session.Session, nav ui.Navigator, logger *slog.Logger, opts ...Option) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Guard{
		session:     sess,
		nav:         nav,
		logger:      logger,
		now:         time.Now,
		parser:      jwt.NewParser(jwt.WithJSONNumber()),
		checkExpiry: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check проверяет сессию. При успехе identity сохраняется в сессии и возвращается.
// Повторных попыток нет.
func (g *Guard) Check(ctx context.Context) (*session.Identity, error) {
	identity, err := g.verify(ctx)
	if err != nil {
		g.session.ClearIdentity()
		// Ошибку пользователю не показываем, только переход на вход
		g.logger.DebugContext(ctx, "session check failed", slog.Any("error", err))
		g.nav.Navigate(ui.RouteLogin)
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	g.session.SetIdentity(identity)
	g.logger.DebugContext(ctx, "session verified", slog.String("username", identity.Username))
	return identity, nil
}

func (g *Guard) verify(ctx context.Context) (*session.Identity, error) {
	token, err := g.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	return g.decode(token)
}

// decode читает claims без проверки подписи: ключа у клиента нет,
// подпись проверяет сервер при каждом запросе
func (g *Guard) decode(token string) (*session.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := g.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	identity := &session.Identity{
		Claims:   claims,
		UserID:   claimString(claims["user_id"]),
		Username: claimString(claims["username"]),
		Fullname: claimString(claims["fullname"]),
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil {
		identity.ExpiresAt = exp.Time
		if g.checkExpiry && !g.now().Before(exp.Time) {
			return nil, jwt.ErrTokenExpired
		}
	}

	return identity, nil
}

func claimString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
