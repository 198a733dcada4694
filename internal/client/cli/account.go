package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/iudanet/sisadmin/internal/client/api"
	"github.com/iudanet/sisadmin/internal/client/auth"
	"github.com/iudanet/sisadmin/internal/client/register"
)

func (a *App) runRegister(ctx context.Context) error {
	a.io.Println("=== Registration ===")
	a.io.Println()

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
	confirm, err := a.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	a.io.Println()
	a.io.Println("Registering...")

	err = a.register.Submit(ctx, register.Draft{
		Fullname:        fullname,
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if msg := a.register.Error(); msg != "" {
		a.io.Printf("Error: %s\n", msg)
	}
	if msg := a.register.Success(); msg != "" {
		a.io.Printf("✓ %s\n", msg)
	}
	return err
}

func (a *App) runLogin(ctx context.Context) error {
	a.io.Println("=== Login ===")
	a.io.Println()

	username, err := a.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := a.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		msg := clientapi.UserMessage(err, auth.MsgLoginFailed)
		if errors.Is(err, auth.ErrCredentialsRequired) {
			msg = "Username and Password are required!"
		}
		a.io.Printf("Error: %s\n", msg)
		return err
	}

	a.io.Println("✓ Login successful!")
	a.io.Println()
	return nil
}

func (a *App) runLogout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.io.Println("✓ Logged out.")
	return nil
}
