package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing authentication data on client
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous login
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents authentication information in storage
type AuthData struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	PublicSalt  string `json:"public_salt"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}
