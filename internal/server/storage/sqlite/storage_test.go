package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// повторное открытие не должно применять миграции заново
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	var count int
	err = s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'clients', 'sessions', 'progress_notes')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestPing(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))

	cleanup()
	assert.Error(t, s.Ping(context.Background()))
}

func TestTimeRoundTrip_KeepsNanoseconds(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 123456789, time.UTC)
	assert.True(t, ts.Equal(fromUnix(toUnix(ts))))
	assert.Equal(t, time.UTC, fromUnix(toUnix(ts)).Location())

	assert.Nil(t, timePtr(nullTime(nil)))
	got := timePtr(nullTime(&ts))
	require.NotNil(t, got)
	assert.True(t, ts.Equal(*got))
}
