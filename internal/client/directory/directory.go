// Package directory хранит состояние экрана списка пользователей и выполняет CRUD операции.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	clientapi "github.com/iudanet/sisadmin/internal/client/api"
	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/ui"
	"github.com/iudanet/sisadmin/internal/models"
	"github.com/iudanet/sisadmin/internal/validation"
	"github.com/iudanet/sisadmin/pkg/api"
)

//go:generate moq -out directory_mock.go . API

// Сообщения, которые видит пользователь
const (
	MsgNoUsers          = "No users found"
	MsgCreateFailed     = "Failed to create user. Please try again."
	MsgCreateRequired   = "Fullname, Username, and Password are required!"
	MsgDeleted          = "Successfully Deleted"
	MsgDeleteFailed     = "Failed to delete user. Please try again."
	MsgUpdateRequired   = "Username, Password, and Fullname are required!"
	MsgUpdated          = "User updated successfully!"
	MsgUpdateFailed     = "An error occurred while updating user data."
	DeleteConfirmTitle  = "Are you sure?"
	DeleteConfirmText   = "You won't be able to revert this!"
	DeleteConfirmButton = "Yes, delete it!"
)

// TableColumns число колонок таблицы пользователей
const TableColumns = 4

var (
	// ErrValidation форма заполнена не полностью, запрос не отправлялся
	ErrValidation = errors.New("validation failed")
	// ErrNotFound запись с таким id отсутствует в локальном списке
	ErrNotFound = errors.New("user not found in list")
)

// API описывает вызовы сервера, нужные экрану пользователей
type API interface {
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	CreateUser(ctx context.Context, token string, req api.CreateUserRequest) (*api.CreateUserResponse, error)
	UpdateUser(ctx context.Context, token string, id models.UserID, req api.UpdateUserRequest) (int, error)
	DeleteUser(ctx context.Context, token string, id models.UserID) error
}

// CreateDraft черновик формы создания пользователя
type CreateDraft struct {
	Fullname string
	Username string
	Password string
}

// UpdateDraft черновик формы редактирования пользователя.
// Пароль не приходит с сервера, поэтому при открытии формы он пустой.
type UpdateDraft struct {
	Username string
	Fullname string
	Password string
}

// Row строка таблицы пользователей
type Row struct {
	Text        string
	User        models.User
	Span        int
	Placeholder bool
}

// Directory состояние экрана пользователей
type Directory struct {
	api     API
	session *session.Session
	notify  ui.Notifier
	confirm ui.Confirmer
	logger  *slog.Logger

	editing  *models.User
	selected *models.User
	users    []models.User

	createDraft CreateDraft
	updateDraft UpdateDraft

	createOpen bool
	updateOpen bool
	readOpen   bool
}

// New создает экран пользователей
func New(client API, sess *session.Session, notify ui.Notifier, confirm ui.Confirmer, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{
		api:     client,
		session: sess,
		notify:  notify,
		confirm: confirm,
		logger:  logger,
		users:   []models.User{},
	}
}

// token возвращает токен для заголовка Authorization.
// Без токена запрос уходит без заголовка, сервер ответит 401.
func (d *Directory) token(ctx context.Context) string {
	token, err := d.session.Token(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			d.logger.WarnContext(ctx, "failed to read token", slog.Any("error", err))
		}
		return ""
	}
	return token
}

// Load загружает список пользователей и полностью заменяет локальный.
// При ошибке список не меняется, пользователю ничего не показывается.
func (d *Directory) Load(ctx context.Context) error {
	users, err := d.api.ListUsers(ctx, d.token(ctx))
	if err != nil {
		d.logger.ErrorContext(ctx, "error fetching users", slog.Any("error", err))
		return fmt.Errorf("failed to load users: %w", err)
	}
	d.users = users
	return nil
}

// Users возвращает копию текущего списка
func (d *Directory) Users() []models.User {
	return slices.Clone(d.users)
}

// Rows возвращает строки таблицы. Пустой список дает одну строку-заглушку на всю ширину.
func (d *Directory) Rows() []Row {
	if len(d.users) == 0 {
		return []Row{{Placeholder: true, Span: TableColumns, Text: MsgNoUsers}}
	}
	rows := make([]Row, 0, len(d.users))
	for _, u := range d.users {
		rows = append(rows, Row{User: u, Span: 1})
	}
	return rows
}

// Find ищет пользователя в локальном списке
func (d *Directory) Find(id models.UserID) (models.User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// OpenCreate открывает форму создания
func (d *Directory) OpenCreate() {
	d.createOpen = true
}

// CloseCreate закрывает форму создания, черновик сохраняется
func (d *Directory) CloseCreate() {
	d.createOpen = false
}

// CreateOpen сообщает, открыта ли форма создания
func (d *Directory) CreateOpen() bool {
	return d.createOpen
}

// CreateDraft возвращает текущий черновик формы создания
func (d *Directory) CreateDraft() CreateDraft {
	return d.createDraft
}

// Create создает пользователя.
// При успехе в список добавляется ровно та запись, которую вернул сервер,
// черновик очищается и форма закрывается. При ошибке черновик и форма остаются.
func (d *Directory) Create(ctx context.Context, draft CreateDraft) error {
	d.createDraft = draft

	err := validation.Required(
		validation.Field{Name: "fullname", Value: draft.Fullname},
		validation.Field{Name: "username", Value: draft.Username},
		validation.Field{Name: "password", Value: draft.Password},
	)
	if err != nil {
		d.notify.Error(MsgCreateRequired)
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	resp, err := d.api.CreateUser(ctx, d.token(ctx), api.CreateUserRequest(draft))
	if err != nil {
		d.logger.WarnContext(ctx, "failed to create user", slog.Any("error", err))
		d.notify.Error(clientapi.UserMessage(err, MsgCreateFailed))
		return fmt.Errorf("failed to create user: %w", err)
	}

	d.notify.Success(resp.Message)
	d.users = append(d.users, *resp.NewUser)
	d.createDraft = CreateDraft{}
	d.createOpen = false

	d.logger.InfoContext(ctx, "user created", slog.String("user_id", resp.NewUser.ID.String()))
	return nil
}

// Delete удаляет пользователя после подтверждения.
// Возвращает false без ошибки, если пользователь отказался.
func (d *Directory) Delete(ctx context.Context, id models.UserID) (bool, error) {
	ok, err := d.confirm.Confirm(ctx, ui.Prompt{
		Title:       DeleteConfirmTitle,
		Text:        DeleteConfirmText,
		ConfirmText: DeleteConfirmButton,
	})
	if err != nil {
		return false, fmt.Errorf("failed to confirm deletion: %w", err)
	}
	if !ok {
		return false, nil
	}

	if err := d.api.DeleteUser(ctx, d.token(ctx), id); err != nil {
		d.logger.WarnContext(ctx, "failed to delete user",
			slog.String("user_id", id.String()),
			slog.Any("error", err))
		d.notify.Error(clientapi.UserMessage(err, MsgDeleteFailed))
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	d.notify.Success(MsgDeleted)
	d.users = slices.DeleteFunc(d.users, func(u models.User) bool {
		return u.ID == id
	})
	if d.selected != nil && d.selected.ID == id {
		d.CloseRead()
	}

	return true, nil
}

// BeginEdit открывает форму редактирования с данными пользователя
func (d *Directory) BeginEdit(user models.User) {
	u := user
	d.editing = &u
	d.updateDraft = UpdateDraft{
		Username: user.Username,
		Fullname: user.Fullname,
	}
	d.updateOpen = true
}

// CancelEdit закрывает форму редактирования
func (d *Directory) CancelEdit() {
	d.updateOpen = false
}

// UpdateOpen сообщает, открыта ли форма редактирования
func (d *Directory) UpdateOpen() bool {
	return d.updateOpen
}

// UpdateDraft возвращает текущий черновик формы редактирования
func (d *Directory) UpdateDraft() UpdateDraft {
	return d.updateDraft
}

// Editing возвращает редактируемую запись
func (d *Directory) Editing() (models.User, bool) {
	if d.editing == nil {
		return models.User{}, false
	}
	return *d.editing, true
}

// Update сохраняет изменения редактируемого пользователя.
// Успехом считается только ответ 200, после него список перечитывается с сервера.
func (d *Directory) Update(ctx context.Context, draft UpdateDraft) error {
	d.updateDraft = draft

	if d.editing == nil {
		return fmt.Errorf("%w: no user is being edited", ErrValidation)
	}

	err := validation.Required(
		validation.Field{Name: "username", Value: draft.Username},
		validation.Field{Name: "password", Value: draft.Password},
		validation.Field{Name: "fullname", Value: draft.Fullname},
	)
	if err != nil {
		d.notify.Error(MsgUpdateRequired)
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	status, err := d.api.UpdateUser(ctx, d.token(ctx), d.editing.ID, api.UpdateUserRequest(draft))
	if err == nil && status != http.StatusOK {
		// прочие 2xx не считаются успехом
		err = fmt.Errorf("%w: status %d", api.ErrUnexpectedResponse, status)
	}
	if err != nil {
		d.logger.ErrorContext(ctx, "error updating user",
			slog.String("user_id", d.editing.ID.String()),
			slog.Any("error", err))
		d.notify.Error(clientapi.UserMessage(err, MsgUpdateFailed))
		return fmt.Errorf("failed to update user: %w", err)
	}

	d.notify.Success(MsgUpdated)
	d.updateOpen = false
	d.updateDraft = UpdateDraft{}
	d.editing = nil

	// ошибка перечитывания не отменяет успешное обновление
	_ = d.Load(ctx)
	return nil
}

// Select открывает карточку пользователя из локального списка
func (d *Directory) Select(id models.UserID) (models.User, error) {
	u, ok := d.Find(id)
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	d.selected = &u
	d.readOpen = true
	return u, nil
}

// CloseRead закрывает карточку пользователя
func (d *Directory) CloseRead() {
	d.selected = nil
	d.readOpen = false
}

// Selected возвращает открытую карточку пользователя
func (d *Directory) Selected() (models.User, bool) {
	if !d.readOpen || d.selected == nil {
		return models.User{}, false
	}
	return *d.selected, true
}
