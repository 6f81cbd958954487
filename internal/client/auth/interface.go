package auth

import (
	"context"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out api_mock.go . API

// Service defines the main interface for authentication operations.
// After a successful Login the access token is kept in the local store
// and handed to the remote gateway.
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет токен локально
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout удаляет локальные данные авторизации
	Logout(ctx context.Context) error

	// Restore загружает сохраненный токен в gateway.
	// Возвращает storage.ErrAuthNotFound если вход не выполнялся.
	Restore(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated checks if a non-expired token is stored
	IsAuthenticated(ctx context.Context) (bool, error)
}

// API is the part of the remote gateway used for authentication
type API interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	GetSalt(ctx context.Context, username string) (*api.SaltResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	SetAccessToken(token string)
}
