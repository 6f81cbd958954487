package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) runRegister(ctx context.Context, username string, passwords Passwords) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.readUsername(username)
	if err != nil {
		return err
	}

	password, err := c.getPassword(passwords, "Password (min 12 chars): ")
	if err != nil {
		return err
	}

	// Подтверждение нужно только при интерактивном вводе
	if os.Getenv(PasswordEnv) == "" && passwords.FromFile == "" {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	result, err := c.authService.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID:  %s\n", result.UserID)
	c.io.Printf("Username: %s\n", result.Username)
	c.io.Println()
	c.io.Println("Please run 'clinicsync login' to start syncing.")
	return nil
}

func (c *Cli) readUsername(username string) (string, error) {
	if username != "" {
		return username, nil
	}
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	return username, nil
}
