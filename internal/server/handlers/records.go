package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/clinicsync/internal/server/storage"
	"github.com/iudanet/clinicsync/internal/validation"
	"github.com/iudanet/clinicsync/pkg/api"
)

// RecordHandler serves CRUD endpoints for clients, sessions and progress
// notes. All routes require an authenticated user in the request context.
type RecordHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
	now     func() time.Time
}

// NewRecordHandler создает handler для записей пользователя
func NewRecordHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *RecordHandler {
	return &RecordHandler{
		logger:  logger,
		storage: recordStorage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateClient обрабатывает POST /api/v1/clients
func (h *RecordHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.ClientCreateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateClient(req.FirstName, req.LastName, req.Email, ""); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := h.now()
	c := &api.Client{
		ID:          uuid.New().String(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Status:      api.ClientStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.storage.InsertClient(r.Context(), userID, c); err != nil {
		h.internalError(w, r, "failed to insert client", err)
		return
	}

	h.logger.InfoContext(r.Context(), "client created", slog.String("user_id", userID), slog.String("id", c.ID))
	sendJSON(h.logger, w, c, http.StatusCreated)
}

// UpdateClient обрабатывает PUT /api/v1/clients/{id}
func (h *RecordHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.ClientUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateClient(req.FirstName, req.LastName, req.Email, req.Status); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.storage.GetClient(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.lookupError(w, r, "client", err)
		return
	}

	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.Email = req.Email
	c.Phone = req.Phone
	c.DateOfBirth = req.DateOfBirth
	if req.Status != "" {
		c.Status = req.Status
	}
	c.UpdatedAt = h.advance(c.UpdatedAt)

	if err := h.storage.UpdateClient(r.Context(), userID, c); err != nil {
		h.lookupError(w, r, "client", err)
		return
	}

	sendJSON(h.logger, w, c, http.StatusOK)
}

// ListClients обрабатывает GET /api/v1/clients
func (h *RecordHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	clients, err := h.storage.ListClients(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list clients", err)
		return
	}

	sendJSON(h.logger, w, api.ClientList{Clients: clients}, http.StatusOK)
}

// CreateSession обрабатывает POST /api/v1/sessions
func (h *RecordHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.SessionCreateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateSession(req.ClientID, req.DurationMinutes, req.Type, ""); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.clientExists(w, r, userID, req.ClientID) {
		return
	}

	now := h.now()
	sess := &api.Session{
		ID:              uuid.New().String(),
		ClientID:        req.ClientID,
		ScheduledAt:     req.ScheduledAt.UTC(),
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Status:          api.SessionStatusScheduled,
		Location:        req.Location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.storage.InsertSession(r.Context(), userID, sess); err != nil {
		h.internalError(w, r, "failed to insert session", err)
		return
	}

	h.logger.InfoContext(r.Context(), "session created", slog.String("user_id", userID), slog.String("id", sess.ID))
	sendJSON(h.logger, w, sess, http.StatusCreated)
}

// UpdateSession обрабатывает PUT /api/v1/sessions/{id}
func (h *RecordHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.SessionUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateSession(req.ClientID, req.DurationMinutes, req.Type, req.Status); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := h.storage.GetSession(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.lookupError(w, r, "session", err)
		return
	}
	if !h.clientExists(w, r, userID, req.ClientID) {
		return
	}

	sess.ClientID = req.ClientID
	sess.ScheduledAt = req.ScheduledAt.UTC()
	sess.DurationMinutes = req.DurationMinutes
	sess.Type = req.Type
	sess.Location = req.Location
	if req.Status != "" {
		sess.Status = req.Status
	}
	sess.UpdatedAt = h.advance(sess.UpdatedAt)

	if err := h.storage.UpdateSession(r.Context(), userID, sess); err != nil {
		h.lookupError(w, r, "session", err)
		return
	}

	sendJSON(h.logger, w, sess, http.StatusOK)
}

// ListSessions обрабатывает GET /api/v1/sessions
func (h *RecordHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	sessions, err := h.storage.ListSessions(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list sessions", err)
		return
	}

	sendJSON(h.logger, w, api.SessionList{Sessions: sessions}, http.StatusOK)
}

// CreateProgressNote обрабатывает POST /api/v1/notes
func (h *RecordHandler) CreateProgressNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.ProgressNoteCreateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateProgressNote(req.ClientID, req.Content, req.RiskLevel, ""); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.noteRefsExist(w, r, userID, req.ClientID, req.SessionID) {
		return
	}

	now := h.now()
	n := &api.ProgressNote{
		ID:        uuid.New().String(),
		ClientID:  req.ClientID,
		SessionID: req.SessionID,
		Content:   req.Content,
		RiskLevel: req.RiskLevel,
		Status:    api.NoteStatusDraft,
		Tags:      tagsOrEmpty(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.storage.InsertProgressNote(r.Context(), userID, n); err != nil {
		h.internalError(w, r, "failed to insert progress note", err)
		return
	}

	h.logger.InfoContext(r.Context(), "progress note created", slog.String("user_id", userID), slog.String("id", n.ID))
	sendJSON(h.logger, w, n, http.StatusCreated)
}

// UpdateProgressNote обрабатывает PUT /api/v1/notes/{id}
func (h *RecordHandler) UpdateProgressNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.ProgressNoteUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateProgressNote(req.ClientID, req.Content, req.RiskLevel, req.Status); err != nil {
		SendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.storage.GetProgressNote(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.lookupError(w, r, "progress note", err)
		return
	}
	if !h.noteRefsExist(w, r, userID, req.ClientID, req.SessionID) {
		return
	}

	n.ClientID = req.ClientID
	n.SessionID = req.SessionID
	n.Content = req.Content
	n.RiskLevel = req.RiskLevel
	n.Tags = tagsOrEmpty(req.Tags)
	if req.Status != "" {
		n.Status = req.Status
	}
	n.UpdatedAt = h.advance(n.UpdatedAt)

	if err := h.storage.UpdateProgressNote(r.Context(), userID, n); err != nil {
		h.lookupError(w, r, "progress note", err)
		return
	}

	sendJSON(h.logger, w, n, http.StatusOK)
}

// ListProgressNotes обрабатывает GET /api/v1/notes
func (h *RecordHandler) ListProgressNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	notes, err := h.storage.ListProgressNotes(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list progress notes", err)
		return
	}

	sendJSON(h.logger, w, api.ProgressNoteList{Notes: notes}, http.StatusOK)
}

// advance возвращает updated_at строго больше предыдущего
func (h *RecordHandler) advance(prev time.Time) time.Time {
	now := h.now()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

func (h *RecordHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user id not found in context")
		SendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}

func (h *RecordHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request", slog.String("path", r.URL.Path), slog.Any("error", err))
		SendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *RecordHandler) clientExists(w http.ResponseWriter, r *http.Request, userID, clientID string) bool {
	if _, err := h.storage.GetClient(r.Context(), userID, clientID); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			SendError(h.logger, w, fmt.Sprintf("client %s does not exist", clientID), http.StatusBadRequest)
			return false
		}
		h.internalError(w, r, "failed to get client", err)
		return false
	}
	return true
}

func (h *RecordHandler) noteRefsExist(w http.ResponseWriter, r *http.Request, userID, clientID string, sessionID *string) bool {
	if !h.clientExists(w, r, userID, clientID) {
		return false
	}
	if sessionID == nil || *sessionID == "" {
		return true
	}
	if _, err := h.storage.GetSession(r.Context(), userID, *sessionID); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			SendError(h.logger, w, fmt.Sprintf("session %s does not exist", *sessionID), http.StatusBadRequest)
			return false
		}
		h.internalError(w, r, "failed to get session", err)
		return false
	}
	return true
}

func (h *RecordHandler) lookupError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	if errors.Is(err, storage.ErrRecordNotFound) {
		SendError(h.logger, w, kind+" not found", http.StatusNotFound)
		return
	}
	h.internalError(w, r, "failed to load "+kind, err)
}

func (h *RecordHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	SendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
