package api

import (
	"fmt"

	"github.com/iudanet/sisadmin/internal/models"
)

// Имена полей multipart формы создания пользователя
const (
	FormFieldFullname = "fullname"
	FormFieldUsername = "username"
	FormFieldPassword = "password"
)

// CreateUserRequest представляет форму создания пользователя (multipart/form-data)
type CreateUserRequest struct {
	Fullname string
	Username string
	Password string
}

// CreateUserResponse представляет ответ на создание пользователя
type CreateUserResponse struct {
	NewUser *models.User `json:"newUser"`
	Message string       `json:"message"`
}

// Validate проверяет, что сервер вернул созданную запись
func (r *CreateUserResponse) Validate() error {
	if r.NewUser == nil {
		return fmt.Errorf("%w: newUser is missing", ErrUnexpectedResponse)
	}
	if r.NewUser.ID == "" {
		return fmt.Errorf("%w: newUser.user_id is missing", ErrUnexpectedResponse)
	}
	return nil
}

// UpdateUserRequest представляет запрос на обновление пользователя.
// Поле пароля называется passwordx: так его ожидает PUT /user/{id}.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Password string `json:"passwordx"`
}

// ValidateUsers проверяет список пользователей, полученный от GET /user
func ValidateUsers(users []models.User) error {
	for i, u := range users {
		if u.ID == "" {
			return fmt.Errorf("%w: user at index %d has no user_id", ErrUnexpectedResponse, i)
		}
	}
	return nil
}
