package cli

import (
	"context"
	"time"
)

func (c *Cli) runLogin(ctx context.Context, username string, passwords Passwords) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.readUsername(username)
	if err != nil {
		return err
	}

	password, err := c.getPassword(passwords, "Password: ")
	if err != nil {
		return err
	}

	result, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Username:      %s\n", result.Username)
	c.io.Printf("Token expires: %s\n", result.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out. Local records are kept.")
	return nil
}
