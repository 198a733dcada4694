// Package cli реализует команды терминального клиента.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/sisadmin/internal/client/api"
	"github.com/iudanet/sisadmin/internal/client/auth"
	"github.com/iudanet/sisadmin/internal/client/directory"
	"github.com/iudanet/sisadmin/internal/client/guard"
	"github.com/iudanet/sisadmin/internal/client/iocli"
	"github.com/iudanet/sisadmin/internal/client/register"
	"github.com/iudanet/sisadmin/internal/client/session"
	"github.com/iudanet/sisadmin/internal/client/ui"
)

// maxRedirects ограничивает цепочку переходов между экранами
const maxRedirects = 4

var (
	// ErrUnknownCommand неизвестная команда
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage команда вызвана с неверными аргументами
	ErrUsage = errors.New("invalid usage")
	// ErrTooManyRedirects экраны перенаправляют друг на друга по кругу
	ErrTooManyRedirects = errors.New("too many redirects")
)

// Config параметры клиента, которые влияют на поведение команд
type Config struct {
	RedirectDelay time.Duration
}

// App терминальный клиент: команды и переходы между экранами
type App struct {
	io        iocli.IO
	session   *session.Session
	nav       *navigator
	guard     *guard.Guard
	directory *directory.Directory
	register  *register.Form
	auth      *auth.Service
	logger    *slog.Logger
}

// New собирает клиент поверх API клиента и сессии
func New(io iocli.IO, client *clientapi.Client, sess *session.Session, logger *slog.Logger, cfg Config) *App {
	if logger == nil {
		logger = slog.Default()
	}
	nav := &navigator{}
	notify := &notifier{io: io}

	return &App{
		io:        io,
		session:   sess,
		nav:       nav,
		logger:    logger,
		guard:     guard.New(sess, nav, logger),
		directory: directory.New(client, sess, notify, &confirmer{io: io}, logger),
		register:  register.NewForm(client, sess, nav, logger, register.WithRedirectDelay(cfg.RedirectDelay)),
		auth:      auth.NewService(client, sess, nav, logger),
	}
}

// Run выполняет команду и затем показывает экраны, на которые она перенаправила.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	err := a.dispatch(ctx, command, args)
	if ferr := a.follow(ctx); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func (a *App) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.runRegister(ctx)
	case "login":
		return a.runLogin(ctx)
	case "logout":
		return a.runLogout(ctx)
	case "status":
		return a.runStatus(ctx)
	case "list", "dashboard":
		return a.runList(ctx)
	case "create":
		return a.runCreate(ctx)
	case "read":
		return a.runRead(ctx, args)
	case "update":
		return a.runUpdate(ctx, args)
	case "delete":
		return a.runDelete(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// follow показывает экраны, запрошенные через navigator
func (a *App) follow(ctx context.Context) error {
	var screenErr error
	for range maxRedirects {
		route, ok := a.nav.take()
		if !ok {
			return screenErr
		}
		a.logger.DebugContext(ctx, "navigate", slog.String("route", string(route)))

		if err := a.show(ctx, route); err != nil && screenErr == nil {
			screenErr = err
		}
	}
	if _, ok := a.nav.take(); ok {
		return ErrTooManyRedirects
	}
	return screenErr
}

func (a *App) show(ctx context.Context, route ui.Route) error {
	switch route {
	case ui.RouteDashboard:
		return a.runList(ctx)
	case ui.RouteLogin:
		a.io.Println("Not logged in. Run 'sisadmin login' to authenticate.")
		return nil
	case ui.RouteRegister:
		a.io.Println("Run 'sisadmin register' to create an account.")
		return nil
	default:
		return fmt.Errorf("unknown route: %s", route)
	}
}

// requireSession проверяет токен перед командами экрана пользователей
func (a *App) requireSession(ctx context.Context) (*session.Identity, error) {
	identity, err := a.guard.Check(ctx)
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// PrintUsage выводит справку по командам
func PrintUsage(io iocli.IO) {
	io.Println("SIS Admin Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  sisadmin [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  -version          Show version information")
	io.Println("  -config PATH      Path to YAML config file (env: SISADMIN_CONFIG)")
	io.Println("  -server URL       Server URL (default: http://localhost:8080)")
	io.Println("  -db PATH          Path to local session database (default: sisadmin-client.db)")
	io.Println()
	io.Println("Commands:")
	io.Println("  register          Register new user")
	io.Println("  login             Login to server")
	io.Println("  logout            Logout and forget the stored token")
	io.Println("  status            Show the logged in user")
	io.Println("  list              List users (alias: dashboard)")
	io.Println("  create            Create a user")
	io.Println("  read <id>         Show user details")
	io.Println("  update <id>       Update a user")
	io.Println("  delete <id>       Delete a user")
	io.Println()
	io.Println("Examples:")
	io.Println("  sisadmin register")
	io.Println("  sisadmin -server https://sis.example.com login")
	io.Println("  sisadmin read 42")
}
