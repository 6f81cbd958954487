package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/client/sync"
)

// statusView объединяет состояние авторизации и синхронизации для вывода
type statusView struct {
	ExpiresAt *time.Time   `yaml:"token_expires_at,omitempty"`
	Sync      *sync.Status `yaml:"sync"`
	Username  string       `yaml:"username,omitempty"`
	LoggedIn  bool         `yaml:"logged_in"`
}

func (c *Cli) runStatus(ctx context.Context, output string) error {
	if err := checkOutput(output); err != nil {
		return err
	}

	view := statusView{}
	authData, err := c.authService.Restore(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
	case err != nil:
		return fmt.Errorf("failed to get auth data: %w", err)
	default:
		view.Username = authData.Username
		if authData.ExpiresAt > 0 {
			expiresAt := time.Unix(authData.ExpiresAt, 0).UTC()
			view.ExpiresAt = &expiresAt
			view.LoggedIn = c.now().Before(expiresAt)
		} else {
			view.LoggedIn = true
		}
	}

	view.Sync, err = c.syncer.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	if output == outputYAML {
		return c.writeYAML(view)
	}

	c.io.Println("=== Status ===")
	c.io.Println()
	switch {
	case view.LoggedIn:
		c.io.Printf("Authenticated as %s\n", view.Username)
	case view.Username != "":
		c.io.Printf("⚠️  Token for %s has expired. Please login again.\n", view.Username)
	default:
		c.io.Println("Not authenticated. Run 'clinicsync login'.")
	}
	c.io.Println()
	if err := statusTmpl.Execute(c.io, view.Sync); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}
	return nil
}
