package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/pkg/api"
)

var t0 = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

func meta(id string, offset time.Duration, dirty bool) models.SyncMeta {
	return models.SyncMeta{ID: id, CreatedAt: t0, UpdatedAt: t0.Add(offset), Dirty: dirty}
}

func TestRecords_UpsertFind(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	synced := t0.Add(time.Hour)
	loc := "Room 4"
	sess := &models.Session{
		SyncMeta:        models.SyncMeta{ID: "s1", UpdatedAt: t0, LastSyncedAt: &synced},
		ClientID:        "c1",
		ScheduledAt:     t0.Add(24 * time.Hour),
		DurationMinutes: 50,
		Type:            api.SessionTypeIndividual,
		Status:          api.SessionStatusScheduled,
		Location:        &loc,
	}
	require.NoError(t, store.Upsert(ctx, sess))

	got, err := store.FindByID(ctx, models.KindSession, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	// Тот же ID в другом bucket'е не находится
	_, err = store.FindByID(ctx, models.KindClient, "s1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	_, err = store.FindByID(ctx, "invoice", "s1")
	assert.Error(t, err)
}

func TestRecords_QueryDirtyOrdering(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, c := range []*models.Client{
		{SyncMeta: meta("b", time.Minute, true)},
		{SyncMeta: meta("a", time.Minute, true)},
		{SyncMeta: meta("z", 0, true)},
		{SyncMeta: meta("clean", -time.Minute, false)},
	} {
		require.NoError(t, store.Upsert(ctx, c))
	}

	dirty, err := store.QueryDirty(ctx, models.KindClient)
	require.NoError(t, err)
	require.Len(t, dirty, 3)
	assert.Equal(t, "z", dirty[0].Meta().ID)
	assert.Equal(t, "a", dirty[1].Meta().ID)
	assert.Equal(t, "b", dirty[2].Meta().ID)

	all, err := store.List(ctx, models.KindClient)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "clean", all[0].Meta().ID)

	empty, err := store.QueryDirty(ctx, models.KindProgressNote)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecords_CountDirty(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	n, err := store.CountDirty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.Upsert(ctx, &models.Client{SyncMeta: meta("c1", 0, true)}))
	require.NoError(t, store.Upsert(ctx, &models.Session{SyncMeta: meta("s1", 0, true)}))
	require.NoError(t, store.Upsert(ctx, &models.ProgressNote{SyncMeta: meta("n1", 0, false)}))

	n, err = store.CountDirty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecords_ReplaceRewritesReferences(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	localClient := "local-c"
	localSession := "local-s"
	otherSession := "s-other"

	require.NoError(t, store.Upsert(ctx, &models.Client{SyncMeta: meta(localClient, 0, true), FirstName: "Jane"}))
	require.NoError(t, store.Upsert(ctx, &models.Session{SyncMeta: meta(localSession, 0, true), ClientID: localClient}))
	require.NoError(t, store.Upsert(ctx, &models.Session{SyncMeta: meta("s2", 0, true), ClientID: "c9"}))
	require.NoError(t, store.Upsert(ctx, &models.ProgressNote{SyncMeta: meta("n1", 0, true), ClientID: localClient, SessionID: &localSession}))
	require.NoError(t, store.Upsert(ctx, &models.ProgressNote{SyncMeta: meta("n2", 0, true), ClientID: "c9", SessionID: &otherSession}))

	synced := t0.Add(time.Hour)
	server := &models.Client{
		SyncMeta:  models.SyncMeta{ID: "c1", UpdatedAt: synced, LastSyncedAt: &synced},
		FirstName: "Jane",
	}
	require.NoError(t, store.Replace(ctx, localClient, server))

	_, err := store.FindByID(ctx, models.KindClient, localClient)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	got, err := store.FindByID(ctx, models.KindClient, "c1")
	require.NoError(t, err)
	assert.False(t, got.Meta().Dirty)

	s, err := store.FindByID(ctx, models.KindSession, localSession)
	require.NoError(t, err)
	assert.Equal(t, "c1", s.(*models.Session).ClientID)
	assert.True(t, s.Meta().Dirty)

	s2, err := store.FindByID(ctx, models.KindSession, "s2")
	require.NoError(t, err)
	assert.Equal(t, "c9", s2.(*models.Session).ClientID)

	n, err := store.FindByID(ctx, models.KindProgressNote, "n1")
	require.NoError(t, err)
	assert.Equal(t, "c1", n.(*models.ProgressNote).ClientID)

	// Теперь сессия получает серверный ID
	require.NoError(t, store.Replace(ctx, localSession, &models.Session{SyncMeta: models.SyncMeta{ID: "s1"}, ClientID: "c1"}))

	n, err = store.FindByID(ctx, models.KindProgressNote, "n1")
	require.NoError(t, err)
	require.NotNil(t, n.(*models.ProgressNote).SessionID)
	assert.Equal(t, "s1", *n.(*models.ProgressNote).SessionID)

	n2, err := store.FindByID(ctx, models.KindProgressNote, "n2")
	require.NoError(t, err)
	assert.Equal(t, otherSession, *n2.(*models.ProgressNote).SessionID)
}

func TestRecords_ReplaceSameID(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Upsert(ctx, &models.Client{SyncMeta: meta("c1", 0, true)}))
	require.NoError(t, store.Replace(ctx, "c1", &models.Client{SyncMeta: meta("c1", time.Second, false), FirstName: "Jane"}))

	all, err := store.List(ctx, models.KindClient)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jane", all[0].(*models.Client).FirstName)
	assert.False(t, all[0].Meta().Dirty)
}
