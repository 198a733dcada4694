package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/pkg/api"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// authScheme способ передачи токена в заголовке Authorization
type authScheme int

const (
	// authRaw токен передается как есть (так ожидают эндпоинты /user)
	authRaw authScheme = iota
	// authBearer токен передается с префиксом Bearer
	authBearer
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут запросов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger задает логгер клиента
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register регистрирует нового пользователя.
// Возвращает HTTP статус ответа: успехом считаются только 200 и 201.
func (c *Client) Register(ctx context.Context, token string, req api.RegisterRequest) (*api.RegisterResponse, int, error) {
	var resp api.RegisterResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/auth/register", token, authBearer, req, &resp)
	if err != nil {
		return nil, status, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, status, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if _, err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", authBearer, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListUsers получает список всех пользователей
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if _, err := c.doJSON(ctx, http.MethodGet, "/user", token, authRaw, nil, &users); err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	if err := api.ValidateUsers(users); err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// CreateUser создает пользователя, данные отправляются как multipart/form-data
func (c *Client) CreateUser(ctx context.Context, token string, req api.CreateUserRequest) (*api.CreateUserResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := []struct{ name, value string }{
		{api.FormFieldFullname, req.Fullname},
		{api.FormFieldUsername, req.Username},
		{api.FormFieldPassword, req.Password},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", f.name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	var resp api.CreateUserResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/user/", token, authRaw, &buf, mw.FormDataContentType(), &resp); err != nil {
		return nil, fmt.Errorf("create user request failed: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("create user request failed: %w", err)
	}
	return &resp, nil
}

// UpdateUser обновляет пользователя. Возвращает HTTP статус ответа.
func (c *Client) UpdateUser(ctx context.Context, token string, id models.UserID, req api.UpdateUserRequest) (int, error) {
	path := "/user/" + url.PathEscape(id.String())
	status, err := c.doJSON(ctx, http.MethodPut, path, token, authRaw, req, nil)
	if err != nil {
		return status, fmt.Errorf("update user request failed: %w", err)
	}
	return status, nil
}

// DeleteUser удаляет пользователя
func (c *Client) DeleteUser(ctx context.Context, token string, id models.UserID) error {
	path := "/user/" + url.PathEscape(id.String())
	if _, err := c.doJSON(ctx, http.MethodDelete, path, token, authRaw, nil, nil); err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}
	return nil
}

// doJSON выполняет запрос с JSON телом
func (c *Client) doJSON(
	ctx context.Context,
	method, path, token string,
	scheme authScheme,
	body, result any,
) (int, error) {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, token, scheme, bodyReader, contentType, result)
}

// do выполняет HTTP запрос и возвращает статус ответа
func (c *Client) do(
	ctx context.Context,
	method, path, token string,
	scheme authScheme,
	body io.Reader,
	contentType string,
	result any,
) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		switch scheme {
		case authBearer:
			req.Header.Set("Authorization", "Bearer "+token)
		default:
			req.Header.Set("Authorization", token)
		}
	}

	logger := c.logger.With(
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.DebugContext(ctx, "request failed", slog.Any("error", err))
		return 0, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	logger.DebugContext(ctx, "response received", slog.Int("status", resp.StatusCode))

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, newServerError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %w", api.ErrUnexpectedResponse, err)
		}
	}

	return resp.StatusCode, nil
}

// newServerError извлекает message (или error) из тела ответа с ошибкой
func newServerError(status int, body []byte) *ServerError {
	serverErr := &ServerError{StatusCode: status}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		serverErr.Message = errResp.Message
		if serverErr.Message == "" {
			serverErr.Message = errResp.Error
		}
	}
	return serverErr
}
