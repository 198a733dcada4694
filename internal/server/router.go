// Package server собирает HTTP обработчики и middleware в один http.Handler.
package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/sisadmin/internal/server/handlers"
	"github.com/iudanet/sisadmin/internal/server/middleware"
	"github.com/iudanet/sisadmin/internal/server/storage"
)

// Deps зависимости роутера
type Deps struct {
	Logger *slog.Logger
	Users  storage.UserStorage
	DB     handlers.Pinger
	// AuthLimiter ограничивает /auth маршруты; nil отключает ограничение
	AuthLimiter *middleware.RateLimiter
	JWT         handlers.JWTConfig
	Version     string
}

// NewRouter регистрирует маршруты.
// Цепочка: recovery -> request id -> logging -> (rate limit | auth) -> handler.
func NewRouter(d Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(d.Logger, d.Users, d.JWT)
	userHandler := handlers.NewUserHandler(d.Logger, d.Users)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.DB, d.Version)

	limited := func(h http.HandlerFunc) http.Handler {
		if d.AuthLimiter == nil {
			return h
		}
		return d.AuthLimiter.Middleware(h)
	}
	requireAuth := middleware.AuthMiddleware(d.Logger, d.JWT)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.Handle("POST /auth/register", limited(authHandler.Register))
	mux.Handle("POST /auth/login", limited(authHandler.Login))

	mux.Handle("GET /user", requireAuth(http.HandlerFunc(userHandler.List)))
	mux.Handle("POST /api/user/", requireAuth(http.HandlerFunc(userHandler.Create)))
	mux.Handle("PUT /user/{id}", requireAuth(http.HandlerFunc(userHandler.Update)))
	mux.Handle("DELETE /user/{id}", requireAuth(http.HandlerFunc(userHandler.Delete)))

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(d.Logger, []string{"/health"})(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.RecoveryMiddleware(d.Logger)(handler)
	return handler
}
