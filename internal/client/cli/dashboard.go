package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/sisadmin/internal/client/directory"
	"github.com/iudanet/sisadmin/internal/models"
)

func (a *App) runList(ctx context.Context) error {
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}

	// ошибка загрузки только логируется, таблица показывает то, что есть
	loadErr := a.directory.Load(ctx)
	a.printUsers()
	return loadErr
}

// printUsers выводит таблицу пользователей
func (a *App) printUsers() {
	a.io.Println("=== Users ===")
	a.io.Println()

	w := tabwriter.NewWriter(a.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tFULLNAME\tUSERNAME\tACTIONS")
	for _, row := range a.directory.Rows() {
		if row.Placeholder {
			// строка-заглушка занимает всю ширину таблицы
			_, _ = fmt.Fprintln(w, row.Text)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\tread | update | delete\n",
			row.User.ID, row.User.Fullname, row.User.Username)
	}
	_ = w.Flush()
}

func (a *App) runCreate(ctx context.Context) error {
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	_ = a.directory.Load(ctx)

	a.io.Println("=== Create User ===")
	a.io.Println()
	a.directory.OpenCreate()

	fullname, err := a.io.ReadInput("Fullname: ")
	if err != nil {
		return fmt.Errorf("failed to read fullname: %w", err)
	}
	username, err := a.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := a.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	err = a.directory.Create(ctx, directory.CreateDraft{
		Fullname: fullname,
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	a.io.Println()
	a.printUsers()
	return nil
}

func (a *App) runRead(ctx context.Context, args []string) error {
	id, err := userIDArg(args, "read")
	if err != nil {
		return err
	}
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	if err := a.directory.Load(ctx); err != nil {
		return err
	}

	user, err := a.directory.Select(id)
	if err != nil {
		return err
	}
	defer a.directory.CloseRead()

	a.io.Println("=== User Details ===")
	a.io.Println()
	a.io.Printf("ID:       %s\n", user.ID)
	a.io.Printf("Fullname: %s\n", user.Fullname)
	a.io.Printf("Username: %s\n", user.Username)
	return nil
}

func (a *App) runUpdate(ctx context.Context, args []string) error {
	id, err := userIDArg(args, "update")
	if err != nil {
		return err
	}
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	if err := a.directory.Load(ctx); err != nil {
		return err
	}

	user, ok := a.directory.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", directory.ErrNotFound, id)
	}
	a.directory.BeginEdit(user)
	draft := a.directory.UpdateDraft()

	a.io.Println("=== Update User ===")
	a.io.Println("Press Enter to keep the current value.")
	a.io.Println()

	username, err := a.io.ReadInput(fmt.Sprintf("Username [%s]: ", draft.Username))
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	fullname, err := a.io.ReadInput(fmt.Sprintf("Fullname [%s]: ", draft.Fullname))
	if err != nil {
		return fmt.Errorf("failed to read fullname: %w", err)
	}
	password, err := a.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if username != "" {
		draft.Username = username
	}
	if fullname != "" {
		draft.Fullname = fullname
	}
	draft.Password = password

	if err := a.directory.Update(ctx, draft); err != nil {
		return err
	}

	a.io.Println()
	a.printUsers()
	return nil
}

func (a *App) runDelete(ctx context.Context, args []string) error {
	id, err := userIDArg(args, "delete")
	if err != nil {
		return err
	}
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	_ = a.directory.Load(ctx)

	if user, ok := a.directory.Find(id); ok {
		a.io.Println("About to delete:")
		a.io.Printf("  ID:       %s\n", user.ID)
		a.io.Printf("  Fullname: %s\n", user.Fullname)
		a.io.Printf("  Username: %s\n", user.Username)
		a.io.Println()
	}

	deleted, err := a.directory.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		a.io.Println("Deletion cancelled.")
		return nil
	}

	a.io.Println()
	a.printUsers()
	return nil
}

func (a *App) runStatus(ctx context.Context) error {
	identity, err := a.requireSession(ctx)
	if err != nil {
		return err
	}

	a.io.Printf("User: %s\n", identity.Username)
	if identity.Fullname != "" {
		a.io.Printf("Fullname: %s\n", identity.Fullname)
	}
	if !identity.ExpiresAt.IsZero() {
		a.io.Printf("Token expires: %s\n", identity.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}

func userIDArg(args []string, command string) (models.UserID, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: missing user ID. Usage: sisadmin %s <id>", ErrUsage, command)
	}
	if len(args) > 1 {
		return "", errors.Join(ErrUsage, fmt.Errorf("unexpected arguments: %v", args[1:]))
	}
	return models.UserID(args[0]), nil
}
