package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/internal/server/storage"
	"github.com/iudanet/sisadmin/pkg/api"
)

const (
	MsgUserCreated   = "User created successfully"
	MsgUserUpdated   = "User updated successfully"
	MsgUserDeleted   = "User deleted successfully"
	MsgUserNotFound  = "User not found"
	MsgInvalidUserID = "Invalid user id"

	// maxFormMemory лимит памяти для multipart формы создания
	maxFormMemory = 1 << 20
)

// updateUserRequest тело PUT /user/{id}.
// Клиент присылает пароль в поле passwordx, поле password принимается тоже.
type updateUserRequest struct {
	Username  string `json:"username"`
	Fullname  string `json:"fullname"`
	PasswordX string `json:"passwordx"`
	Password  string `json:"password"`
}

func (r updateUserRequest) password() string {
	if r.PasswordX != "" {
		return r.PasswordX
	}
	return r.Password
}

// UserHandler обрабатывает CRUD запросы справочника пользователей
type UserHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	bcryptCost  int
}

// NewUserHandler создает handler справочника пользователей
func NewUserHandler(logger *slog.Logger, userStorage storage.UserStorage) *UserHandler {
	return &UserHandler{
		logger:      logger,
		userStorage: userStorage,
		bcryptCost:  bcrypt.DefaultCost,
	}
}

// List обрабатывает GET /user
// Возвращает массив пользователей, пустой справочник отдается как []
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stored, err := h.userStorage.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	users := make([]models.User, 0, len(stored))
	for i := range stored {
		users = append(users, stored[i].Public())
	}

	sendJSON(w, h.logger, users, http.StatusOK)
}

// Create обрабатывает POST /api/user/ (multipart/form-data)
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.logger.WarnContext(ctx, "failed to parse multipart form", slog.Any("error", err))
		sendError(w, h.logger, MsgInvalidBody, http.StatusBadRequest)
		return
	}

	fullname := strings.TrimSpace(r.FormValue(api.FormFieldFullname))
	username := strings.TrimSpace(r.FormValue(api.FormFieldUsername))
	password := r.FormValue(api.FormFieldPassword)

	if err := validateAccount(fullname, username, password); err != nil {
		h.logger.WarnContext(ctx, "invalid create request", slog.String("username", username), slog.Any("error", err))
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := hashPassword(password, h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	user := &models.StoredUser{
		Username:     username,
		Fullname:     fullname,
		PasswordHash: hash,
	}
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", username))
			sendError(w, h.logger, MsgUsernameTaken, http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user created", slog.Int64("user_id", user.ID), slog.String("username", user.Username))

	public := user.Public()
	sendJSON(w, h.logger, api.CreateUserResponse{
		NewUser: &public,
		Message: MsgUserCreated,
	}, http.StatusCreated)
}

// Update обрабатывает PUT /user/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode update request", slog.Any("error", err))
		sendError(w, h.logger, MsgInvalidBody, http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Fullname = strings.TrimSpace(req.Fullname)

	if err := validateAccount(req.Fullname, req.Username, req.password()); err != nil {
		h.logger.WarnContext(ctx, "invalid update request", slog.Int64("user_id", id), slog.Any("error", err))
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, id)
	if err != nil {
		h.storageError(w, r, "failed to get user", err)
		return
	}

	hash, err := hashPassword(req.password(), h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
		return
	}

	user.Username = req.Username
	user.Fullname = req.Fullname
	user.PasswordHash = hash

	if err := h.userStorage.UpdateUser(ctx, user); err != nil {
		h.storageError(w, r, "failed to update user", err)
		return
	}

	h.logger.InfoContext(ctx, "user updated", slog.Int64("user_id", id))
	sendJSON(w, h.logger, api.MessageResponse{Message: MsgUserUpdated}, http.StatusOK)
}

// Delete обрабатывает DELETE /user/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.userStorage.DeleteUser(ctx, id); err != nil {
		h.storageError(w, r, "failed to delete user", err)
		return
	}

	h.logger.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	sendJSON(w, h.logger, api.MessageResponse{Message: MsgUserDeleted}, http.StatusOK)
}

// userID извлекает id из path parameter (Go 1.22+)
func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		sendError(w, h.logger, MsgInvalidUserID, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// storageError переводит ошибки хранилища в HTTP ответ
func (h *UserHandler) storageError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		h.logger.WarnContext(r.Context(), msg, slog.Any("error", err))
		sendError(w, h.logger, MsgUserNotFound, http.StatusNotFound)
	case errors.Is(err, storage.ErrUserAlreadyExists):
		h.logger.WarnContext(r.Context(), msg, slog.Any("error", err))
		sendError(w, h.logger, MsgUsernameTaken, http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
		sendError(w, h.logger, MsgInternalError, http.StatusInternalServerError)
	}
}
