package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/internal/server/storage"
)

func newUser(username string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:          uuid.New().String(),
		Username:    username,
		AuthKeyHash: "hash-" + username,
		PublicSalt:  "salt-" + username,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	lastLogin := time.Now().UTC()
	withLogin := newUser("testuser2")
	withLogin.LastLogin = &lastLogin

	tests := []struct {
		user *models.User
		name string
	}{
		{name: "create new user successfully", user: newUser("testuser1")},
		{name: "create user with last login", user: withLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.CreateUser(ctx, tt.user))

			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, retrieved.ID)
			assert.Equal(t, tt.user.Username, retrieved.Username)
			assert.Equal(t, tt.user.AuthKeyHash, retrieved.AuthKeyHash)
			assert.Equal(t, tt.user.PublicSalt, retrieved.PublicSalt)
			assert.True(t, tt.user.CreatedAt.Equal(retrieved.CreatedAt))
			if tt.user.LastLogin == nil {
				assert.Nil(t, retrieved.LastLogin)
			} else {
				require.NotNil(t, retrieved.LastLogin)
				assert.True(t, tt.user.LastLogin.Equal(*retrieved.LastLogin))
			}
		})
	}
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateUser(ctx, newUser("duplicate")))

	err := s.CreateUser(ctx, newUser("duplicate"))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newUser("alice")
	require.NoError(t, s.CreateUser(ctx, user))

	t.Run("existing user", func(t *testing.T) {
		got, err := s.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.GetUserByUsername(ctx, "bob")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newUser("carol")
	require.NoError(t, s.CreateUser(ctx, user))

	loginAt := user.CreatedAt.Add(time.Hour)
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginAt))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, loginAt.Equal(*got.LastLogin))
	assert.True(t, loginAt.Equal(got.UpdatedAt))

	err = s.UpdateLastLogin(ctx, uuid.New().String(), loginAt)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
