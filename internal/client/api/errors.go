package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/sisadmin/pkg/api"
)

// MsgUnexpectedError показывается пользователю, когда сервер не ответил
const MsgUnexpectedError = "An unexpected error occurred."

// ErrUnexpectedResponse реэкспорт из pkg/api для удобства вызывающего кода
var ErrUnexpectedResponse = api.ErrUnexpectedResponse

// ServerError сервер ответил статусом вне диапазона 2xx
type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// TransportError запрос не дошел до сервера или ответ не был получен
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage возвращает текст ошибки для показа пользователю.
// Сообщение сервера показывается как есть, при его отсутствии используется fallback.
// Если ответа не было совсем, возвращается MsgUnexpectedError.
func UserMessage(err error, fallback string) string {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return MsgUnexpectedError
	}
	return ServerMessage(err, fallback)
}

// ServerMessage возвращает сообщение из ответа сервера или fallback
func ServerMessage(err error, fallback string) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}
	return fallback
}

// StatusCode возвращает HTTP статус из ошибки сервера или 0
func StatusCode(err error) int {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.StatusCode
	}
	return 0
}
