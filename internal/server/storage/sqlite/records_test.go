package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/server/storage"
	"github.com/iudanet/clinicsync/pkg/api"
)

func setupRecords(t *testing.T) (*Storage, string, string) {
	t.Helper()
	s, cleanup := setupTestStorage(t)
	t.Cleanup(cleanup)

	owner := newUser("owner")
	other := newUser("other")
	require.NoError(t, s.CreateUser(context.Background(), owner))
	require.NoError(t, s.CreateUser(context.Background(), other))

	return s, owner.ID, other.ID
}

func testClient(now time.Time) *api.Client {
	email := "jane@example.com"
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	return &api.Client{
		ID:          uuid.New().String(),
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       &email,
		DateOfBirth: &dob,
		Status:      api.ClientStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestClients_CRUD(t *testing.T) {
	ctx := context.Background()
	s, owner, other := setupRecords(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)

	c := testClient(now)
	require.NoError(t, s.InsertClient(ctx, owner, c))

	got, err := s.GetClient(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	// чужой пользователь запись не видит
	_, err = s.GetClient(ctx, other, c.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	c.LastName = "Smith"
	c.Email = nil
	c.Status = api.ClientStatusInactive
	c.UpdatedAt = now.Add(time.Nanosecond)
	require.NoError(t, s.UpdateClient(ctx, owner, c))

	got, err = s.GetClient(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smith", got.LastName)
	assert.Nil(t, got.Email)
	assert.Equal(t, api.ClientStatusInactive, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	assert.ErrorIs(t, s.UpdateClient(ctx, other, c), storage.ErrRecordNotFound)

	list, err := s.ListClients(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = s.ListClients(ctx, other)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSessions_CRUD(t *testing.T) {
	ctx := context.Background()
	s, owner, _ := setupRecords(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	c := testClient(now)
	require.NoError(t, s.InsertClient(ctx, owner, c))

	location := "Room 3"
	sess := &api.Session{
		ID:              uuid.New().String(),
		ClientID:        c.ID,
		ScheduledAt:     now.Add(24 * time.Hour),
		DurationMinutes: 50,
		Type:            api.SessionTypeIndividual,
		Status:          api.SessionStatusScheduled,
		Location:        &location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, s.InsertSession(ctx, owner, sess))

	got, err := s.GetSession(ctx, owner, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	sess.Status = api.SessionStatusCompleted
	sess.Location = nil
	sess.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, s.UpdateSession(ctx, owner, sess))

	list, err := s.ListSessions(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, api.SessionStatusCompleted, list[0].Status)
	assert.Nil(t, list[0].Location)

	_, err = s.GetSession(ctx, owner, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestProgressNotes_CRUD(t *testing.T) {
	ctx := context.Background()
	s, owner, _ := setupRecords(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	c := testClient(now)
	require.NoError(t, s.InsertClient(ctx, owner, c))

	note := &api.ProgressNote{
		ID:        uuid.New().String(),
		ClientID:  c.ID,
		Content:   "Initial assessment",
		RiskLevel: api.RiskLevelLow,
		Status:    api.NoteStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.InsertProgressNote(ctx, owner, note))

	got, err := s.GetProgressNote(ctx, owner, note.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SessionID)
	assert.Equal(t, []string{}, got.Tags)

	note.Tags = []string{"anxiety", "cbt"}
	note.Status = api.NoteStatusSigned
	note.UpdatedAt = now.Add(time.Second)
	require.NoError(t, s.UpdateProgressNote(ctx, owner, note))

	list, err := s.ListProgressNotes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"anxiety", "cbt"}, list[0].Tags)
	assert.Equal(t, api.NoteStatusSigned, list[0].Status)

	note.ID = uuid.New().String()
	assert.ErrorIs(t, s.UpdateProgressNote(ctx, owner, note), storage.ErrRecordNotFound)
}

func TestListClients_OrderedByUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s, owner, _ := setupRecords(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	late := testClient(base.Add(time.Hour))
	early := testClient(base)
	require.NoError(t, s.InsertClient(ctx, owner, late))
	require.NoError(t, s.InsertClient(ctx, owner, early))

	list, err := s.ListClients(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)
}
