package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/internal/server/storage/sqlite"
	"github.com/iudanet/clinicsync/pkg/api"
)

type recordsFixture struct {
	mux *http.ServeMux
	now *time.Time
}

func newRecordsFixture(t *testing.T) *recordsFixture {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, id := range []string{"alice", "bob"} {
		require.NoError(t, db.CreateUser(ctx, &models.User{ID: id, Username: id, AuthKeyHash: "h", PublicSalt: "s"}))
	}

	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	h := NewRecordHandler(setupTestLogger(), db)
	h.now = func() time.Time { return now }

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/clients", h.CreateClient)
	mux.HandleFunc("GET /api/v1/clients", h.ListClients)
	mux.HandleFunc("PUT /api/v1/clients/{id}", h.UpdateClient)
	mux.HandleFunc("POST /api/v1/sessions", h.CreateSession)
	mux.HandleFunc("GET /api/v1/sessions", h.ListSessions)
	mux.HandleFunc("PUT /api/v1/sessions/{id}", h.UpdateSession)
	mux.HandleFunc("POST /api/v1/notes", h.CreateProgressNote)
	mux.HandleFunc("GET /api/v1/notes", h.ListProgressNotes)
	mux.HandleFunc("PUT /api/v1/notes/{id}", h.UpdateProgressNote)

	return &recordsFixture{mux: mux, now: &now}
}

// do выполняет запрос от имени user; пустой user означает анонимный запрос
func (f *recordsFixture) do(t *testing.T, user, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if user != "" {
		req = req.WithContext(WithUser(req.Context(), user, user))
	}
	w := httptest.NewRecorder()
	f.mux.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	}
	return w.Code
}

func (f *recordsFixture) createClient(t *testing.T, user string) api.Client {
	t.Helper()
	var c api.Client
	code := f.do(t, user, http.MethodPost, "/api/v1/clients", api.ClientCreateRequest{FirstName: "Jane", LastName: "Doe"}, &c)
	require.Equal(t, http.StatusCreated, code)
	return c
}

func TestRecordHandler_Clients(t *testing.T) {
	f := newRecordsFixture(t)

	c := f.createClient(t, "alice")
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, api.ClientStatusActive, c.Status)
	assert.True(t, c.UpdatedAt.Equal(*f.now))

	email := "jane@example.com"
	var updated api.Client
	code := f.do(t, "alice", http.MethodPut, "/api/v1/clients/"+c.ID, api.ClientUpdateRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     &email,
		Status:    api.ClientStatusInactive,
	}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, api.ClientStatusInactive, updated.Status)
	// часы не сдвинулись, но updated_at обязан вырасти
	assert.True(t, updated.UpdatedAt.After(c.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(c.CreatedAt))

	var list api.ClientList
	require.Equal(t, http.StatusOK, f.do(t, "alice", http.MethodGet, "/api/v1/clients", nil, &list))
	require.Len(t, list.Clients, 1)
	assert.Equal(t, "Smith", list.Clients[0].LastName)

	var other api.ClientList
	require.Equal(t, http.StatusOK, f.do(t, "bob", http.MethodGet, "/api/v1/clients", nil, &other))
	assert.Empty(t, other.Clients)
}

func TestRecordHandler_UpdateKeepsStatusWhenOmitted(t *testing.T) {
	f := newRecordsFixture(t)
	c := f.createClient(t, "alice")

	var updated api.Client
	code := f.do(t, "alice", http.MethodPut, "/api/v1/clients/"+c.ID,
		api.ClientUpdateRequest{FirstName: "Jane", LastName: "Roe"}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.ClientStatusActive, updated.Status)
}

func TestRecordHandler_ClientErrors(t *testing.T) {
	f := newRecordsFixture(t)
	c := f.createClient(t, "alice")

	tests := []struct {
		body   any
		name   string
		user   string
		method string
		path   string
		want   int
	}{
		{name: "anonymous", method: http.MethodGet, path: "/api/v1/clients", want: http.StatusUnauthorized},
		{
			name: "empty last name", user: "alice", method: http.MethodPost, path: "/api/v1/clients",
			body: api.ClientCreateRequest{FirstName: "Jane"}, want: http.StatusBadRequest,
		},
		{
			name: "unknown id", user: "alice", method: http.MethodPut, path: "/api/v1/clients/missing",
			body: api.ClientUpdateRequest{FirstName: "A", LastName: "B"}, want: http.StatusNotFound,
		},
		{
			name: "other user's client", user: "bob", method: http.MethodPut, path: "/api/v1/clients/" + c.ID,
			body: api.ClientUpdateRequest{FirstName: "A", LastName: "B"}, want: http.StatusNotFound,
		},
		{
			name: "invalid status", user: "alice", method: http.MethodPut, path: "/api/v1/clients/" + c.ID,
			body: api.ClientUpdateRequest{FirstName: "A", LastName: "B", Status: "archived"}, want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.do(t, tt.user, tt.method, tt.path, tt.body, nil))
		})
	}
}

func TestRecordHandler_Sessions(t *testing.T) {
	f := newRecordsFixture(t)
	c := f.createClient(t, "alice")

	at := time.Date(2026, 4, 2, 15, 0, 0, 0, time.FixedZone("CET", 3600))
	var sess api.Session
	code := f.do(t, "alice", http.MethodPost, "/api/v1/sessions", api.SessionCreateRequest{
		ClientID:        c.ID,
		ScheduledAt:     at,
		DurationMinutes: 50,
		Type:            api.SessionTypeIndividual,
	}, &sess)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, api.SessionStatusScheduled, sess.Status)
	assert.True(t, sess.ScheduledAt.Equal(at))

	*f.now = f.now.Add(time.Hour)
	var updated api.Session
	code = f.do(t, "alice", http.MethodPut, "/api/v1/sessions/"+sess.ID, api.SessionUpdateRequest{
		ClientID:        c.ID,
		ScheduledAt:     at,
		DurationMinutes: 60,
		Type:            api.SessionTypeIndividual,
		Status:          api.SessionStatusCompleted,
	}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SessionStatusCompleted, updated.Status)
	assert.True(t, updated.UpdatedAt.Equal(*f.now))

	var list api.SessionList
	require.Equal(t, http.StatusOK, f.do(t, "alice", http.MethodGet, "/api/v1/sessions", nil, &list))
	assert.Len(t, list.Sessions, 1)

	// ссылка на несуществующего клиента
	code = f.do(t, "alice", http.MethodPost, "/api/v1/sessions", api.SessionCreateRequest{
		ClientID: "missing", DurationMinutes: 50, Type: api.SessionTypeIndividual,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// клиент другого пользователя не виден
	code = f.do(t, "bob", http.MethodPost, "/api/v1/sessions", api.SessionCreateRequest{
		ClientID: c.ID, DurationMinutes: 50, Type: api.SessionTypeIndividual,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = f.do(t, "alice", http.MethodPost, "/api/v1/sessions", api.SessionCreateRequest{
		ClientID: c.ID, DurationMinutes: 0, Type: api.SessionTypeIndividual,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRecordHandler_ProgressNotes(t *testing.T) {
	f := newRecordsFixture(t)
	c := f.createClient(t, "alice")

	var note api.ProgressNote
	code := f.do(t, "alice", http.MethodPost, "/api/v1/notes", api.ProgressNoteCreateRequest{
		ClientID:  c.ID,
		Content:   "Intake completed",
		RiskLevel: api.RiskLevelLow,
	}, &note)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, api.NoteStatusDraft, note.Status)
	assert.Equal(t, []string{}, note.Tags)

	var updated api.ProgressNote
	code = f.do(t, "alice", http.MethodPut, "/api/v1/notes/"+note.ID, api.ProgressNoteUpdateRequest{
		ClientID:  c.ID,
		Content:   "Intake completed, plan agreed",
		RiskLevel: api.RiskLevelLow,
		Status:    api.NoteStatusSigned,
		Tags:      []string{"intake"},
	}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.NoteStatusSigned, updated.Status)
	assert.Equal(t, []string{"intake"}, updated.Tags)

	var list api.ProgressNoteList
	require.Equal(t, http.StatusOK, f.do(t, "alice", http.MethodGet, "/api/v1/notes", nil, &list))
	require.Len(t, list.Notes, 1)
	assert.Equal(t, "Intake completed, plan agreed", list.Notes[0].Content)

	missing := "missing-session"
	code = f.do(t, "alice", http.MethodPost, "/api/v1/notes", api.ProgressNoteCreateRequest{
		ClientID:  c.ID,
		SessionID: &missing,
		Content:   "x",
		RiskLevel: api.RiskLevelNone,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = f.do(t, "alice", http.MethodPost, "/api/v1/notes", api.ProgressNoteCreateRequest{
		ClientID:  c.ID,
		Content:   "x",
		RiskLevel: "extreme",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = f.do(t, "alice", http.MethodPut, "/api/v1/notes/unknown", api.ProgressNoteUpdateRequest{
		ClientID: c.ID, Content: "x", RiskLevel: api.RiskLevelNone,
	}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRecordHandler_Advance(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := &RecordHandler{now: func() time.Time { return now }}

	assert.Equal(t, now, h.advance(now.Add(-time.Second)))
	assert.Equal(t, now.Add(time.Nanosecond), h.advance(now))
	assert.Equal(t, now.Add(time.Minute+time.Nanosecond), h.advance(now.Add(time.Minute)))
}
