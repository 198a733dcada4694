package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/sisadmin/internal/server/handlers"
)

// Сообщения при отказе в доступе
const (
	MsgMissingToken = "Unauthorized: missing token"
	MsgInvalidToken = "Unauthorized: invalid token"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Принимает как "Bearer <token>", так и токен без схемы: клиент справочника шлет его как есть.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString := extractToken(r.Header.Get("Authorization"))
			if tokenString == "" {
				logger.WarnContext(ctx, "Missing Authorization header", "path", r.URL.Path)
				writeError(w, MsgMissingToken, http.StatusUnauthorized)
				return
			}

			// Валидируем токен
			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(ctx, "Invalid access token", slog.Any("error", err))
				writeError(w, MsgInvalidToken, http.StatusUnauthorized)
				return
			}

			// Добавляем данные из токена в контекст
			ctx = handlers.WithUser(ctx, claims.UserID, claims.Username)

			logger.DebugContext(ctx, "User authenticated", "user_id", claims.UserID, "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken снимает схему Bearer, если она есть
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	if strings.EqualFold(header, "Bearer") {
		return ""
	}
	return header
}
