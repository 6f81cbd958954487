package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/client/storage/boltdb"
	"github.com/iudanet/clinicsync/pkg/api"
)

const (
	testUsername = "therapist1"
	testPassword = "correct-horse-battery"
)

func newBoltStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// fakeServer запоминает salt и хеш из Register и проверяет их при Login
func fakeServer() (*APIMock, *[]string) {
	var (
		salt, hash string
		tokens     []string
	)
	m := &APIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			salt, hash = req.PublicSalt, req.AuthKeyHash
			return &api.RegisterResponse{UserID: "user-1"}, nil
		},
		GetSaltFunc: func(ctx context.Context, username string) (*api.SaltResponse, error) {
			if salt == "" {
				return nil, errors.New("user not found")
			}
			return &api.SaltResponse{PublicSalt: salt}, nil
		},
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			if req.AuthKeyHash != hash {
				return nil, errors.New("invalid credentials")
			}
			return &api.TokenResponse{AccessToken: "token-1", UserID: "user-1", ExpiresIn: 900}, nil
		},
		SetAccessTokenFunc: func(token string) {
			tokens = append(tokens, token)
		},
	}
	return m, &tokens
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	apiMock, tokens := fakeServer()
	store := newBoltStore(t)

	svc := NewService(apiMock, store, nil).(*service)
	now := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return now }

	reg, err := svc.Register(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "user-1", reg.UserID)
	assert.NotEmpty(t, reg.PublicSalt)

	sent := apiMock.RegisterCalls()[0].Req
	assert.NotContains(t, sent.AuthKeyHash, testPassword)
	assert.Len(t, sent.AuthKeyHash, 64)

	res, err := svc.Login(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.Equal(t, now.Add(900*time.Second), res.ExpiresAt)
	assert.Equal(t, []string{"token-1"}, *tokens)

	stored, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", stored.AccessToken)
	assert.Equal(t, testUsername, stored.Username)
	assert.Equal(t, now.Add(900*time.Second).Unix(), stored.ExpiresAt)

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	apiMock, _ := fakeServer()
	store := newBoltStore(t)
	svc := NewService(apiMock, store, nil)

	_, err := svc.Register(ctx, testUsername, testPassword)
	require.NoError(t, err)

	_, err = svc.Login(ctx, testUsername, "wrong-password-123")
	assert.ErrorContains(t, err, "login failed")

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{name: "short username", username: "ab", password: testPassword, wantErr: "invalid username"},
		{name: "short password", username: testUsername, password: "short", wantErr: "invalid password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiMock := &APIMock{}
			svc := NewService(apiMock, &storage.AuthStorageMock{}, nil)

			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.ErrorContains(t, err, tt.wantErr)
			_, err = svc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Empty(t, apiMock.RegisterCalls())
			assert.Empty(t, apiMock.LoginCalls())
		})
	}
}

func TestLogin_SaveFailure(t *testing.T) {
	apiMock, tokens := fakeServer()
	svc := NewService(apiMock, &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			return errors.New("disk full")
		},
	}, nil)

	_, err := svc.Register(context.Background(), testUsername, testPassword)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), testUsername, testPassword)
	assert.ErrorContains(t, err, "failed to save auth data: disk full")
	assert.Empty(t, *tokens)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	apiMock, tokens := fakeServer()
	store := newBoltStore(t)
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Username: testUsername, AccessToken: "token-1"}))

	svc := NewService(apiMock, store, nil)
	require.NoError(t, svc.Logout(ctx))

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	assert.Equal(t, []string{""}, *tokens)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("not logged in", func(t *testing.T) {
		apiMock, tokens := fakeServer()
		svc := NewService(apiMock, newBoltStore(t), nil)

		_, err := svc.Restore(ctx)
		assert.ErrorIs(t, err, storage.ErrAuthNotFound)
		assert.Empty(t, *tokens)
	})

	t.Run("token loaded into gateway", func(t *testing.T) {
		apiMock, tokens := fakeServer()
		store := newBoltStore(t)
		require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{
			Username:    testUsername,
			AccessToken: "token-7",
			ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		}))
		svc := NewService(apiMock, store, nil)

		authData, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.Equal(t, testUsername, authData.Username)
		assert.Equal(t, []string{"token-7"}, *tokens)
	})
}
