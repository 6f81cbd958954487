package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/models"
)

// newTestStorage создает временное BoltDB хранилище
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		names := [][]byte{bucketAuth, bucketMetadata}
		for _, kind := range models.Kinds {
			names = append(names, recordBuckets[kind])
		}
		for _, b := range names {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	// Повторное закрытие не должно вызывать ошибку
	require.NoError(t, store.Close())

	_, err = store.List(context.Background(), models.KindClient)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Upsert(context.Background(), &models.Client{}), storage.ErrStorageClosed)
}

func TestReopen_KeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Upsert(ctx, &models.Client{SyncMeta: models.SyncMeta{ID: "c1"}, FirstName: "Jane"}))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	rec, err := store.FindByID(ctx, models.KindClient, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", rec.(*models.Client).FirstName)
}
