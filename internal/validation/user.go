// Package validation содержит проверки полей учетной записи пользователя.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrRequired возвращается, когда обязательное поле не заполнено
var ErrRequired = errors.New("required field is empty")

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxFullnameLen максимальная длина полного имени в символах
	MaxFullnameLen = 128
)

// Field пара "имя поля - значение" для проверки обязательности
type Field struct {
	Name  string
	Value string
}

// Required проверяет, что все поля заполнены.
// Строка только из пробелов считается пустой.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequired, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateFullname проверяет полное имя пользователя
func ValidateFullname(fullname string) error {
	trimmed := strings.TrimSpace(fullname)
	if trimmed == "" {
		return fmt.Errorf("fullname cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > MaxFullnameLen {
		return fmt.Errorf("fullname must not exceed %d characters", MaxFullnameLen)
	}

	return nil
}
