// Package ui описывает взаимодействие клиентской логики с экраном:
// маршруты, переходы между экранами, уведомления и подтверждения.
package ui

import "context"

// Route идентифицирует экран клиента
type Route string

const (
	// RouteLogin экран входа, сюда guard перенаправляет неавторизованного пользователя
	RouteLogin Route = "login"
	// RouteRegister экран регистрации
	RouteRegister Route = "register"
	// RouteDashboard защищенный экран со справочником пользователей
	RouteDashboard Route = "dashboard"
)

//go:generate moq -out ui_mock.go . Navigator Notifier Confirmer

// Navigator выполняет переход на другой экран
type Navigator interface {
	Navigate(route Route)
}

// Notifier показывает пользователю результат действия
type Notifier interface {
	Success(text string)
	Error(text string)
}

// Prompt описывает запрос подтверждения
type Prompt struct {
	Title       string
	Text        string
	ConfirmText string
}

// Confirmer запрашивает у пользователя подтверждение действия
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}
