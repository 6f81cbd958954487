package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/conflict"
	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/pkg/api"
)

func TestPush_NeverSyncedAlwaysCreates(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	// ID уже заполнен, но запись ни разу не синхронизировалась
	upsert(t, store, &models.Client{
		SyncMeta:  models.SyncMeta{ID: "c1", UpdatedAt: t0, Dirty: true},
		FirstName: "Jane",
	})

	gw := emptyRemote()
	gw.CreateClientFunc = func(ctx context.Context, req api.ClientCreateRequest) (*api.Client, error) {
		return &api.Client{ID: "c1", FirstName: req.FirstName, UpdatedAt: t1, Status: api.ClientStatusActive}, nil
	}
	gw.UpdateClientFunc = func(ctx context.Context, id string, req api.ClientUpdateRequest) (*api.Client, error) {
		t.Fatal("update must not be called for a never-synced record")
		return nil, nil
	}

	var tally Tally
	NewClientAdapter(gw, Deps{Store: store, Logger: discardLogger()}).Push(ctx, &tally)

	assert.Len(t, gw.CreateClientCalls(), 1)
	assert.Empty(t, gw.UpdateClientCalls())
	assert.Equal(t, 1, tally.Pushed)
	assert.Empty(t, tally.Errors)
}

func TestPush_SyncedRecordUpdates(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	upsert(t, store, &models.Session{
		SyncMeta:        models.SyncMeta{ID: "s1", UpdatedAt: t1, LastSyncedAt: ptr(t0), Dirty: true},
		ClientID:        "c1",
		DurationMinutes: 45,
		Type:            api.SessionTypeIndividual,
		Status:          api.SessionStatusCompleted,
	})

	gw := emptyRemote()
	gw.UpdateSessionFunc = func(ctx context.Context, id string, req api.SessionUpdateRequest) (*api.Session, error) {
		return &api.Session{
			ID:              id,
			ClientID:        req.ClientID,
			DurationMinutes: req.DurationMinutes,
			Type:            req.Type,
			Status:          req.Status,
			UpdatedAt:       t2,
		}, nil
	}

	var tally Tally
	NewSessionAdapter(gw, Deps{Store: store, Logger: discardLogger()}).Push(ctx, &tally)

	require.Len(t, gw.UpdateSessionCalls(), 1)
	call := gw.UpdateSessionCalls()[0]
	assert.Equal(t, "s1", call.ID)
	assert.Equal(t, 45, call.Req.DurationMinutes)
	assert.Equal(t, api.SessionStatusCompleted, call.Req.Status)

	got := find[*models.Session](t, store, models.KindSession, "s1")
	assert.False(t, got.Dirty)
	assert.Equal(t, t2, got.UpdatedAt)
	require.NotNil(t, got.LastSyncedAt)
	assert.Equal(t, t2, *got.LastSyncedAt)
}

func TestPush_FailureLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	original := &models.Client{
		SyncMeta:  models.SyncMeta{ID: "c1", CreatedAt: t0, UpdatedAt: t1, LastSyncedAt: ptr(t0), Dirty: true},
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     ptr("jane@example.com"),
		Status:    api.ClientStatusActive,
	}
	upsert(t, store, original)

	gw := emptyRemote()
	gw.UpdateClientFunc = func(ctx context.Context, id string, req api.ClientUpdateRequest) (*api.Client, error) {
		return nil, errors.New("connection reset by peer")
	}

	var tally Tally
	NewClientAdapter(gw, Deps{Store: store, Logger: discardLogger()}).Push(ctx, &tally)

	got := find[*models.Client](t, store, models.KindClient, "c1")
	assert.Equal(t, original, got)

	require.Len(t, tally.Errors, 1)
	var pushErr *PushError
	require.ErrorAs(t, tally.Errors[0], &pushErr)
	assert.Equal(t, models.KindClient, pushErr.Kind)
	assert.Equal(t, "c1", pushErr.ID)
	assert.Contains(t, pushErr.Error(), "connection reset by peer")
}

func TestPush_QueryFailure(t *testing.T) {
	store := &storage.RecordStorageMock{
		QueryDirtyFunc: func(ctx context.Context, kind models.Kind) ([]models.Record, error) {
			return nil, storage.ErrStorageClosed
		},
	}

	var tally Tally
	NewClientAdapter(emptyRemote(), Deps{Store: store}).Push(context.Background(), &tally)

	require.Len(t, tally.Errors, 1)
	assert.ErrorIs(t, tally.Errors[0], storage.ErrStorageClosed)
}

func TestPush_EditedDuringRequestStaysDirty(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	upsert(t, store, &models.Client{
		SyncMeta:  models.SyncMeta{ID: "local-1", UpdatedAt: t0, Dirty: true},
		FirstName: "Jane",
	})

	gw := emptyRemote()
	gw.CreateClientFunc = func(ctx context.Context, req api.ClientCreateRequest) (*api.Client, error) {
		// Пользователь правит запись, пока идет запрос
		edited := &models.Client{
			SyncMeta:  models.SyncMeta{ID: "local-1", UpdatedAt: t2, Dirty: true},
			FirstName: "Janet",
		}
		require.NoError(t, store.Upsert(ctx, edited))
		return &api.Client{ID: "c1", FirstName: req.FirstName, UpdatedAt: t1}, nil
	}

	var tally Tally
	NewClientAdapter(gw, Deps{Store: store, Logger: discardLogger()}).Push(ctx, &tally)

	got := find[*models.Client](t, store, models.KindClient, "c1")
	assert.Equal(t, "Janet", got.FirstName)
	assert.True(t, got.Dirty)
	require.NotNil(t, got.LastSyncedAt)
	assert.Equal(t, t1, *got.LastSyncedAt)

	_, err := store.FindByID(ctx, models.KindClient, "local-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestPull_InsertsAndOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	upsert(t, store, &models.Client{
		SyncMeta:  models.SyncMeta{ID: "c2", UpdatedAt: t0, LastSyncedAt: ptr(t0)},
		FirstName: "Old",
	})

	gw := emptyRemote()
	gw.ListClientsFunc = func(ctx context.Context) ([]api.Client, error) {
		return []api.Client{
			{ID: "c1", FirstName: "New", UpdatedAt: t1},
			{ID: "c2", FirstName: "Renamed", UpdatedAt: t2},
		}, nil
	}

	var tally Tally
	NewClientAdapter(gw, Deps{Store: store, Logger: discardLogger()}).Pull(ctx, &tally)

	assert.Equal(t, 2, tally.Pulled)
	assert.Equal(t, 1, tally.Inserted)
	assert.Equal(t, 1, tally.Updated)
	assert.Zero(t, tally.Conflicts)

	c1 := find[*models.Client](t, store, models.KindClient, "c1")
	assert.False(t, c1.Dirty)
	require.NotNil(t, c1.LastSyncedAt)
	assert.Equal(t, t1, *c1.LastSyncedAt)

	c2 := find[*models.Client](t, store, models.KindClient, "c2")
	assert.Equal(t, "Renamed", c2.FirstName)
	assert.Equal(t, t2, *c2.LastSyncedAt)
}

func TestPull_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{RecordStorage: newStore(t)}

	upsert(t, store, &models.ProgressNote{
		SyncMeta: models.SyncMeta{ID: "n-local", UpdatedAt: t3, Dirty: true},
		ClientID: "c1",
		Content:  "draft",
	})

	gw := emptyRemote()
	gw.ListProgressNotesFunc = func(ctx context.Context) ([]api.ProgressNote, error) {
		return []api.ProgressNote{
			{ID: "n1", ClientID: "c1", Content: "first", Tags: []string{"sleep"}, UpdatedAt: t1},
			{ID: "n2", ClientID: "c1", SessionID: ptr("s1"), Content: "second", UpdatedAt: t2},
		}, nil
	}
	adapter := NewProgressNoteAdapter(gw, Deps{Store: store, Logger: discardLogger()})

	var first Tally
	adapter.Pull(ctx, &first)
	require.Empty(t, first.Errors)
	snapshot, err := store.List(ctx, models.KindProgressNote)
	require.NoError(t, err)
	writes := store.writes.Load()

	var second Tally
	adapter.Pull(ctx, &second)
	require.Empty(t, second.Errors)
	again, err := store.List(ctx, models.KindProgressNote)
	require.NoError(t, err)

	assert.Equal(t, snapshot, again)
	assert.Equal(t, writes, store.writes.Load(), "second pull must not write")
	assert.Zero(t, second.Inserted)
	assert.Zero(t, second.Updated)
}

func TestPull_RemoteWinsConflict(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	upsert(t, store, &models.Session{
		SyncMeta:        models.SyncMeta{ID: "S", UpdatedAt: t1, LastSyncedAt: ptr(t0), Dirty: true},
		ClientID:        "c1",
		DurationMinutes: 45,
	})

	gw := emptyRemote()
	gw.ListSessionsFunc = func(ctx context.Context) ([]api.Session, error) {
		return []api.Session{{ID: "S", ClientID: "c1", DurationMinutes: 60, UpdatedAt: t2}}, nil
	}

	var tally Tally
	NewSessionAdapter(gw, Deps{Store: store, Resolver: conflict.MostRecentWins{}, Logger: discardLogger()}).Pull(ctx, &tally)

	got := find[*models.Session](t, store, models.KindSession, "S")
	assert.Equal(t, 60, got.DurationMinutes)
	assert.False(t, got.Dirty)
	assert.Equal(t, t2, *got.LastSyncedAt)
	assert.Equal(t, 1, tally.Conflicts)
	assert.Zero(t, tally.ConflictsLocalWon)
}

func TestPull_LocalWinsThenPushedNextCycle(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	upsert(t, store, &models.Session{
		SyncMeta:        models.SyncMeta{ID: "S", UpdatedAt: t3, LastSyncedAt: ptr(t0), Dirty: true},
		ClientID:        "c1",
		DurationMinutes: 45,
	})

	remote := api.Session{ID: "S", ClientID: "c1", DurationMinutes: 60, UpdatedAt: t2}
	gw := emptyRemote()
	gw.ListSessionsFunc = func(ctx context.Context) ([]api.Session, error) {
		return []api.Session{remote}, nil
	}
	gw.UpdateSessionFunc = func(ctx context.Context, id string, req api.SessionUpdateRequest) (*api.Session, error) {
		remote.DurationMinutes = req.DurationMinutes
		remote.UpdatedAt = t4
		r := remote
		return &r, nil
	}

	adapter := NewSessionAdapter(gw, Deps{Store: store, Resolver: conflict.MostRecentWins{}, Logger: discardLogger()})

	var tally Tally
	adapter.Pull(ctx, &tally)

	got := find[*models.Session](t, store, models.KindSession, "S")
	assert.Equal(t, 45, got.DurationMinutes)
	assert.True(t, got.Dirty)
	assert.Equal(t, 1, tally.ConflictsLocalWon)
	assert.Empty(t, gw.UpdateSessionCalls())

	// Следующий цикл отправляет локальную версию как update
	coord := NewCoordinator(openGate(), store, store, []Adapter{adapter}, discardLogger())
	out, err := coord.RunFullSync(ctx, TriggerManual)
	require.NoError(t, err)
	assert.Empty(t, out.Errors)

	require.Len(t, gw.UpdateSessionCalls(), 1)
	assert.Equal(t, "S", gw.UpdateSessionCalls()[0].ID)
	assert.Equal(t, 45, gw.UpdateSessionCalls()[0].Req.DurationMinutes)

	got = find[*models.Session](t, store, models.KindSession, "S")
	assert.False(t, got.Dirty)
	assert.Equal(t, 45, got.DurationMinutes)
	assert.Equal(t, t4, got.UpdatedAt)
	assert.Equal(t, 0, out.PendingChanges)
}

func TestPull_ResolverPolicies(t *testing.T) {
	tests := []struct {
		resolver  conflict.Resolver
		name      string
		wantDirty bool
		wantName  string
	}{
		{name: "server wins", resolver: conflict.ServerWins{}, wantDirty: false, wantName: "Remote"},
		{name: "client wins", resolver: conflict.ClientWins{}, wantDirty: true, wantName: "Local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			// Локальная версия новее, но политика может выбрать сервер
			upsert(t, store, &models.Client{
				SyncMeta:  models.SyncMeta{ID: "c1", UpdatedAt: t3, LastSyncedAt: ptr(t0), Dirty: true},
				FirstName: "Local",
			})

			gw := emptyRemote()
			gw.ListClientsFunc = func(ctx context.Context) ([]api.Client, error) {
				return []api.Client{{ID: "c1", FirstName: "Remote", UpdatedAt: t1}}, nil
			}

			var tally Tally
			NewClientAdapter(gw, Deps{Store: store, Resolver: tt.resolver}).Pull(ctx, &tally)

			got := find[*models.Client](t, store, models.KindClient, "c1")
			assert.Equal(t, tt.wantName, got.FirstName)
			assert.Equal(t, tt.wantDirty, got.Dirty)
		})
	}
}

func TestPull_IndeterminateResolution(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	original := &models.Client{
		SyncMeta:  models.SyncMeta{ID: "c1", UpdatedAt: t1, LastSyncedAt: ptr(t0), Dirty: true},
		FirstName: "Local",
	}
	upsert(t, store, original)

	gw := emptyRemote()
	gw.ListClientsFunc = func(ctx context.Context) ([]api.Client, error) {
		return []api.Client{{ID: "c1", FirstName: "Remote", UpdatedAt: t2}, {ID: "c2", UpdatedAt: t2}}, nil
	}
	resolver := &conflict.ResolverMock{
		ResolveFunc: func(local, remote models.Record) (conflict.Winner, error) {
			return conflict.WinnerLocal, conflict.ErrIndeterminate
		},
	}

	var tally Tally
	NewClientAdapter(gw, Deps{Store: store, Resolver: resolver}).Pull(ctx, &tally)

	assert.Equal(t, original, find[*models.Client](t, store, models.KindClient, "c1"))
	find[*models.Client](t, store, models.KindClient, "c2")

	require.Len(t, tally.Errors, 1)
	var pullErr *PullError
	require.ErrorAs(t, tally.Errors[0], &pullErr)
	assert.Equal(t, "c1", pullErr.ID)
	assert.ErrorIs(t, tally.Errors[0], conflict.ErrIndeterminate)
	require.Len(t, resolver.ResolveCalls(), 1)
	assert.Equal(t, "Remote", resolver.ResolveCalls()[0].Remote.(*models.Client).FirstName)
}

func TestPull_ListFailure(t *testing.T) {
	gw := emptyRemote()
	gw.ListSessionsFunc = func(ctx context.Context) ([]api.Session, error) {
		return nil, errors.New("server error (503)")
	}

	var tally Tally
	NewSessionAdapter(gw, Deps{Store: newStore(t)}).Pull(context.Background(), &tally)

	require.Len(t, tally.Errors, 1)
	var pullErr *PullError
	require.ErrorAs(t, tally.Errors[0], &pullErr)
	assert.Equal(t, models.KindSession, pullErr.Kind)
	assert.Empty(t, pullErr.ID)
	assert.Equal(t, "failed to pull session: server error (503)", pullErr.Error())
}
