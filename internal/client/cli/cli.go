package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/clinicsync/internal/client/auth"
	"github.com/iudanet/clinicsync/internal/client/data"
	"github.com/iudanet/clinicsync/internal/client/iocli"
	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/client/sync"
)

// PasswordEnv переменная окружения с паролем для неинтерактивного запуска
const PasswordEnv = "CLINICSYNC_PASSWORD"

//go:generate moq -out syncer_mock.go . Syncer

// Syncer is the part of the sync coordinator used by commands
type Syncer interface {
	RunFullSync(ctx context.Context, trigger sync.Trigger) (*sync.Outcome, error)
	RunQuickSync(ctx context.Context, trigger sync.Trigger) (*sync.Outcome, error)
	Status(ctx context.Context) (*sync.Status, error)
}

// Cli связывает команды с сервисами клиента
type Cli struct {
	io            iocli.IO
	authService   auth.Service
	dataService   data.Service
	syncer        Syncer
	logger        *slog.Logger
	now           func() time.Time
	watchInterval time.Duration
}

// New creates command handlers over the client services
func New(
	io iocli.IO,
	authService auth.Service,
	dataService data.Service,
	syncer Syncer,
	watchInterval time.Duration,
	logger *slog.Logger,
) *Cli {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cli{
		io:            io,
		authService:   authService,
		dataService:   dataService,
		syncer:        syncer,
		logger:        logger,
		now:           time.Now,
		watchInterval: watchInterval,
	}
}

// Passwords описывает неинтерактивные источники пароля
type Passwords struct {
	FromFile string
}

// getPassword читает пароль с приоритетом:
// 1. переменная окружения CLINICSYNC_PASSWORD
// 2. файл из --password-file
// 3. интерактивный ввод
func (c *Cli) getPassword(passwords Passwords, prompt string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// requireAuth загружает сохраненный токен перед обращением к серверу
func (c *Cli) requireAuth(ctx context.Context) error {
	if _, err := c.authService.Restore(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return fmt.Errorf("not authenticated. Please run 'clinicsync login' first")
		}
		return err
	}
	return nil
}
