package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoToken означает, что в хранилище нет токена
var ErrNoToken = errors.New("no token")

// ResolveToken извлекает bearer token из сохраненной строки.
// Формат хранения менялся, поэтому поддерживаются все три варианта (в порядке проверки):
//  1. `{"data":{"token":"..."}}`
//  2. `{"token":"..."}`
//  3. сама строка как токен (в том числе невалидный JSON)
//
// Пустая строка означает отсутствие токена и дает ErrNoToken.
func ResolveToken(stored string) (string, error) {
	if stored == "" {
		return "", ErrNoToken
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stored), &envelope); err != nil {
		// Не JSON-объект: старый формат, токен хранится как есть
		return stored, nil
	}

	if data, ok := envelope["data"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(data, &nested); err == nil {
			if token := stringField(nested, "token"); token != "" {
				return token, nil
			}
		}
	}

	if token := stringField(envelope, "token"); token != "" {
		return token, nil
	}

	return stored, nil
}

// EncodeEnvelope возвращает каноническую форму хранения токена: `{"data":{"token":"..."}}`
func EncodeEnvelope(token string) (string, error) {
	if token == "" {
		return "", ErrNoToken
	}

	payload := struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}{}
	payload.Data.Token = token

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal token envelope: %w", err)
	}
	return string(encoded), nil
}

// stringField возвращает строковое значение поля или "" если поля нет или оно другого типа
func stringField(obj map[string]json.RawMessage, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
