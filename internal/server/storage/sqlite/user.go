package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/internal/server/storage"
)

const userColumns = `id, username, auth_key_hash, public_salt, created_at, updated_at, last_login`

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.AuthKeyHash,
		user.PublicSalt,
		toUnix(user.CreatedAt),
		toUnix(user.UpdatedAt),
		nullTime(user.LastLogin),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
}

// UpdateLastLogin updates the last login timestamp
func (s *Storage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	query := `UPDATE users SET last_login = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, toUnix(lastLogin), toUnix(lastLogin), userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var (
		createdAt, updatedAt int64
		lastLogin            sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.AuthKeyHash,
		&user.PublicSalt,
		&createdAt,
		&updatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.CreatedAt = fromUnix(createdAt)
	user.UpdatedAt = fromUnix(updatedAt)
	user.LastLogin = timePtr(lastLogin)

	return user, nil
}
