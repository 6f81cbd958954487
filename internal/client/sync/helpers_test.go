package sync

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/client/storage/boltdb"
	"github.com/iudanet/clinicsync/internal/conflict"
	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/pkg/api"
)

var (
	t0 = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t0.Add(2 * time.Hour)
	t3 = t0.Add(3 * time.Hour)
	t4 = t0.Add(4 * time.Hour)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T {
	return &v
}

// countingStore считает записи в хранилище
type countingStore struct {
	storage.RecordStorage
	writes atomic.Int32
}

func (s *countingStore) Upsert(ctx context.Context, rec models.Record) error {
	s.writes.Add(1)
	return s.RecordStorage.Upsert(ctx, rec)
}

func (s *countingStore) Replace(ctx context.Context, previousID string, rec models.Record) error {
	s.writes.Add(1)
	return s.RecordStorage.Replace(ctx, previousID, rec)
}

func newStore(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// emptyRemote returns a gateway with empty lists and no write support
func emptyRemote() *GatewayMock {
	return &GatewayMock{
		ListClientsFunc: func(ctx context.Context) ([]api.Client, error) {
			return nil, nil
		},
		ListSessionsFunc: func(ctx context.Context) ([]api.Session, error) {
			return nil, nil
		},
		ListProgressNotesFunc: func(ctx context.Context) ([]api.ProgressNote, error) {
			return nil, nil
		},
	}
}

func openGate() *GateMock {
	return &GateMock{ShouldAttemptSyncFunc: func(bool) bool { return true }}
}

func newTestCoordinator(gw Gateway, store storage.RecordStorage, meta storage.MetadataStorage, gate Gate, resolver conflict.Resolver) *Coordinator {
	deps := Deps{Store: store, Resolver: resolver, Logger: discardLogger()}
	return NewCoordinator(gate, store, meta, NewAdapters(gw, deps), discardLogger(),
		WithClock(func() time.Time { return t4 }))
}

func upsert(t *testing.T, store storage.RecordStorage, recs ...models.Record) {
	t.Helper()
	for _, rec := range recs {
		require.NoError(t, store.Upsert(context.Background(), rec))
	}
}

func find[R models.Record](t *testing.T, store storage.RecordStorage, kind models.Kind, id string) R {
	t.Helper()
	rec, err := store.FindByID(context.Background(), kind, id)
	require.NoError(t, err)
	typed, ok := rec.(R)
	require.True(t, ok)
	return typed
}
