package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/sisadmin/internal/models"
)

// ErrUnexpectedResponse возвращается, когда ответ сервера не соответствует ожидаемой схеме
var ErrUnexpectedResponse = errors.New("unexpected response from server")

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Fullname string `json:"fullname"` // полное имя
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде, хешируется сервером
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Token   string       `json:"token,omitempty"`   // access token; backend может его не вернуть
	Message string       `json:"message,omitempty"` // сообщение об успешной регистрации
	User    *models.User `json:"user,omitempty"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token     string `json:"token"`      // JWT access token
	ExpiresIn int64  `json:"expires_in"` // время жизни токена в секундах
}

// Validate проверяет, что сервер действительно выдал токен
func (r *TokenResponse) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("%w: token is missing", ErrUnexpectedResponse)
	}
	return nil
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}

// MessageResponse представляет ответ, содержащий только сообщение
type MessageResponse struct {
	Message string `json:"message"`
}
