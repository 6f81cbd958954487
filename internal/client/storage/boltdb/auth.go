package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clinicsync/internal/client/storage"
)

var authKey = []byte("current")

// SaveAuth stores authentication data
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketAuth).Put(authKey, data); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}
		return nil
	})
}

// GetAuth retrieves stored authentication data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var auth *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketAuth).Get(authKey)
		if data == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{}
		if err := json.Unmarshal(data, auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return auth, nil
}

// DeleteAuth removes stored authentication data (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)

		// Проверяем существование данных
		if bucket.Get(authKey) == nil {
			return storage.ErrAuthNotFound
		}

		if err := bucket.Delete(authKey); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}
		return nil
	})
}

// IsAuthenticated checks if valid authentication exists
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}

	// Проверяем, не истек ли токен
	if auth.ExpiresAt > 0 && time.Now().After(time.Unix(auth.ExpiresAt, 0)) {
		return false, nil
	}

	return true, nil
}
