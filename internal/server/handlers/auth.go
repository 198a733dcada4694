package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/internal/server/storage"
	"github.com/iudanet/sisadmin/internal/validation"
	"github.com/iudanet/sisadmin/pkg/api"
)

// Сообщения, которые клиент показывает пользователю без изменений
const (
	MsgRegistered         = "User registered successfully"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUsernameTaken      = "Username already exists"
	MsgInternalError      = "Internal server error"
	MsgInvalidBody        = "Invalid request body"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	jwtConfig   JWTConfig
	bcryptCost  int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
		bcryptCost:  bcrypt.DefaultCost,
	}
}

// Register обрабатывает POST /auth/register
// Регистрация нового пользователя, в ответе сразу выдается access token
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(w, h.logger, MsgInvalidBody, http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Fullname = strings.TrimSpace(req.Fullname)

	if err := validateAccount(req.Fullname, req.Username, req.Password); err != nil {
		h.logger.WarnContext(ctx, "invalid register request", slog.String("username", req.Username), slog.Any("error", err))
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := hashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	user := &models.StoredUser{
		Username:     req.Username,
		Fullname:     req.Fullname,
		PasswordHash: hash,
	}

	// Сохраняем в БД
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			sendError(w, h.logger, MsgUsernameTaken, http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	accessToken, _, err := GenerateAccessToken(h.jwtConfig, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	public := user.Public()
	resp := api.RegisterResponse{
		Token:   accessToken,
		Message: MsgRegistered,
		User:    &public,
	}

	sendJSON(w, h.logger, resp, http.StatusCreated)
}

// Login обрабатывает POST /auth/login
// Аутентификация пользователя по паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(w, h.logger, MsgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := validation.Required(
		validation.Field{Name: "Username", Value: req.Username},
		validation.Field{Name: "Password", Value: req.Password},
	); err != nil {
		sendError(w, h.logger, "Username and Password are required", http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			sendError(w, h.logger, MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: wrong password", slog.String("username", req.Username))
		sendError(w, h.logger, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	// Генерируем JWT access token
	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	resp := api.TokenResponse{
		Token:     accessToken,
		ExpiresIn: expiresIn,
	}

	sendJSON(w, h.logger, resp, http.StatusOK)
}

// validateAccount проверяет поля учетной записи при регистрации, создании и обновлении
func validateAccount(fullname, username, password string) error {
	if err := validation.Required(
		validation.Field{Name: "Fullname", Value: fullname},
		validation.Field{Name: "Username", Value: username},
		validation.Field{Name: "Password", Value: password},
	); err != nil {
		return err
	}
	if err := validation.ValidateFullname(fullname); err != nil {
		return err
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}
	return validation.ValidatePassword(password)
}

func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
