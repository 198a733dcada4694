// Package register реализует форму регистрации нового пользователя.
package register

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	clientapi "github.com/iudanet/sisadmin/internal/client/api"
	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/ui"
	"github.com/iudanet/sisadmin/pkg/api"
)

//go:generate moq -out register_mock.go . API

// Сообщения формы
const (
	MsgPasswordMismatch   = "Passwords do not match"
	MsgRegistered         = "Registration successful! Redirecting to dashboard..."
	MsgUnexpectedResponse = "Unexpected response from server."
	MsgRegisterFailed     = "Failed to register. Please try again."
)

// DefaultRedirectDelay пауза перед переходом на dashboard после успешной регистрации
const DefaultRedirectDelay = 2 * time.Second

// ErrPasswordMismatch пароль и подтверждение не совпадают
var ErrPasswordMismatch = errors.New("passwords do not match")

// API описывает вызов регистрации на сервере
type API interface {
	Register(ctx context.Context, token string, req api.RegisterRequest) (*api.RegisterResponse, int, error)
}

// Draft черновик формы регистрации
type Draft struct {
	Fullname        string
	Username        string
	Password        string
	ConfirmPassword string
}

// Form состояние формы регистрации
type Form struct {
	api     API
	session *session.Session
	nav     ui.Navigator
	logger  *slog.Logger
	wait    func(ctx context.Context, d time.Duration) error

	draft   Draft
	errMsg  string
	success string

	delay   time.Duration
	loading bool
}

// Option настраивает Form
type Option func(*Form)

// WithRedirectDelay задает паузу перед переходом на dashboard
func WithRedirectDelay(d time.Duration) Option {
	return func(f *Form) {
		if d >= 0 {
			f.delay = d
		}
	}
}

// NewForm создает форму регистрации
func NewForm(client API, sess *session.Session, nav ui.Navigator, logger *slog.Logger, opts ...Option) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	f := &Form{
		api:     client,
		session: sess,
		nav:     nav,
		logger:  logger,
		delay:   DefaultRedirectDelay,
		wait:    sleep,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Loading сообщает, выполняется ли запрос
func (f *Form) Loading() bool {
	return f.loading
}

// Error возвращает текст ошибки формы
func (f *Form) Error() string {
	return f.errMsg
}

// Success возвращает текст об успешной регистрации
func (f *Form) Success() string {
	return f.success
}

// Draft возвращает текущий черновик
func (f *Form) Draft() Draft {
	return f.draft
}

// Submit отправляет форму.
// При успехе токен (если сервер его вернул) сохраняется в сессии,
// и после паузы выполняется переход на dashboard. Отмена ctx во время паузы отменяет переход.
func (f *Form) Submit(ctx context.Context, draft Draft) error {
	f.draft = draft

	if draft.Password != draft.ConfirmPassword {
		f.errMsg = MsgPasswordMismatch
		return ErrPasswordMismatch
	}

	f.loading = true
	f.errMsg = ""
	f.success = ""

	resp, err := f.send(ctx, draft)
	f.loading = false
	if err != nil {
		return err
	}

	f.success = MsgRegistered
	f.draft = Draft{}

	if resp.Token != "" {
		if err := f.session.SaveToken(ctx, resp.Token); err != nil {
			// регистрация уже прошла, ошибку хранилища только логируем
			f.logger.ErrorContext(ctx, "failed to persist token", slog.Any("error", err))
		}
	}

	if err := f.wait(ctx, f.delay); err != nil {
		return fmt.Errorf("redirect cancelled: %w", err)
	}
	f.nav.Navigate(ui.RouteDashboard)
	return nil
}

func (f *Form) send(ctx context.Context, draft Draft) (*api.RegisterResponse, error) {
	// заголовок Bearer добавляется, только если токен уже есть
	token, err := f.session.Token(ctx)
	if err != nil && !errors.Is(err, session.ErrNoToken) {
		f.logger.WarnContext(ctx, "failed to read token", slog.Any("error", err))
	}

	resp, status, err := f.api.Register(ctx, token, api.RegisterRequest{
		Fullname: draft.Fullname,
		Username: draft.Username,
		Password: draft.Password,
	})
	if err != nil {
		f.logger.ErrorContext(ctx, "registration error", slog.Any("error", err))
		f.errMsg = clientapi.ServerMessage(err, MsgRegisterFailed)
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	if status != http.StatusOK && status != http.StatusCreated {
		f.errMsg = MsgUnexpectedResponse
		return nil, fmt.Errorf("%w: status %d", api.ErrUnexpectedResponse, status)
	}

	f.logger.InfoContext(ctx, "user registered", slog.String("username", draft.Username))
	return resp, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
