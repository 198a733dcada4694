package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// UserID идентификатор записи пользователя.
// Сервер может отдавать его как числом, так и строкой, поэтому на клиенте он хранится строкой.
type UserID string

// UnmarshalJSON принимает как `"42"`, так и `42`
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid user_id: %w", err)
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid user_id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

func (id UserID) String() string {
	return string(id)
}

// User представляет запись пользователя в справочнике.
// Пароль write-only: он передается только в запросах создания/обновления и никогда не возвращается.
type User struct {
	ID       UserID `json:"user_id"`  // уникален, гарантируется сервером
	Username string `json:"username"` // логин
	Fullname string `json:"fullname"` // полное имя
}

// StoredUser представляет пользователя в хранилище сервера
type StoredUser struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username"`
	Fullname     string    `json:"fullname"`
	PasswordHash string    `json:"-"` // bcrypt хеш пароля
	ID           int64     `json:"user_id"`
}

// Public возвращает представление пользователя без чувствительных полей
func (u *StoredUser) Public() User {
	return User{
		ID:       UserID(strconv.FormatInt(u.ID, 10)),
		Username: u.Username,
		Fullname: u.Fullname,
	}
}
