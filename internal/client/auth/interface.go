package auth

import (
	"context"

	"github.com/iudanet/sisadmin/pkg/api"
)

//go:generate moq -out interface_mock.go . LoginAPI

// LoginAPI описывает вызов аутентификации на сервере
type LoginAPI interface {
	// Login обменивает логин и пароль на токен доступа
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}
