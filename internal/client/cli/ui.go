package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/sisadmin/internal/client/iocli"
	"github.com/iudanet/sisadmin/internal/client/ui"
)

// navigator запоминает запрошенный переход, экран показывает цикл App.follow
type navigator struct {
	next    ui.Route
	pending bool
}

func (n *navigator) Navigate(route ui.Route) {
	n.next = route
	n.pending = true
}

// take возвращает и сбрасывает запрошенный переход
func (n *navigator) take() (ui.Route, bool) {
	if !n.pending {
		return "", false
	}
	route := n.next
	n.next, n.pending = "", false
	return route, true
}

// notifier выводит уведомления в терминал
type notifier struct {
	io iocli.IO
}

func (n *notifier) Success(text string) {
	if text == "" {
		return
	}
	n.io.Printf("✓ %s\n", text)
}

func (n *notifier) Error(text string) {
	n.io.Printf("Error: %s\n", text)
}

// confirmer спрашивает подтверждение в терминале
type confirmer struct {
	io iocli.IO
}

func (c *confirmer) Confirm(ctx context.Context, prompt ui.Prompt) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.io.Println(prompt.Title)
	if prompt.Text != "" {
		c.io.Println(prompt.Text)
	}
	answer, err := c.io.ReadInput(fmt.Sprintf("%s (yes/no): ", prompt.ConfirmText))
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}
