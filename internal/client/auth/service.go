package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/crypto"
	"github.com/iudanet/clinicsync/internal/validation"
	"github.com/iudanet/clinicsync/pkg/api"
)

type service struct {
	apiClient API
	authStore storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient API, authStore storage.AuthStorage, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID     string // UUID пользователя
	Username   string
	PublicSalt string // public salt (base64)
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	// 1. Генерируем публичную соль
	publicSalt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// 2. Хеш auth_key уходит на сервер, пароль остается на клиенте
	authKeyHash, err := authKeyHash(password, username, publicSalt)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:     resp.UserID,
		Username:   username,
		PublicSalt: publicSalt,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	ExpiresAt time.Time
	Username  string
	UserID    string
}

// Login выполняет аутентификацию пользователя и сохраняет токен
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	// 1. Получаем public_salt с сервера
	saltResp, err := s.apiClient.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	authKeyHash, err := authKeyHash(password, username, saltResp.PublicSalt)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	authData := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		PublicSalt:  saltResp.PublicSalt,
		ExpiresAt:   expiresAt.Unix(),
	}
	if err := s.authStore.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}
	s.apiClient.SetAccessToken(resp.AccessToken)

	s.logger.Info("user logged in", "username", username, "expires_at", expiresAt)

	return &LoginResult{
		ExpiresAt: expiresAt,
		Username:  username,
		UserID:    resp.UserID,
	}, nil
}

// Logout удаляет локальные данные авторизации
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	s.apiClient.SetAccessToken("")
	return nil
}

// Restore загружает сохраненный токен в gateway
func (s *service) Restore(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	if authData.ExpiresAt > 0 && !s.now().Before(time.Unix(authData.ExpiresAt, 0)) {
		// сервер ответит 401, sync сообщит о необходимости login
		s.logger.Warn("stored access token has expired", "username", authData.Username)
	}
	s.apiClient.SetAccessToken(authData.AccessToken)
	return authData, nil
}

// IsAuthenticated checks if a non-expired token is stored
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStore.IsAuthenticated(ctx)
}

func validateCredentials(username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return nil
}

func authKeyHash(password, username, publicSalt string) (string, error) {
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, username, publicSalt)
	if err != nil {
		return "", fmt.Errorf("failed to derive auth key: %w", err)
	}
	hash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return "", fmt.Errorf("failed to hash auth key: %w", err)
	}
	return hash, nil
}
