package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/internal/validation"
	"github.com/iudanet/clinicsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для локальных изменений данных.
// Все изменения помечают запись dirty; на сервер их отправляет sync.
type Service interface {
	AddClient(ctx context.Context, c *models.Client) error
	EditClient(ctx context.Context, c *models.Client) error
	GetClient(ctx context.Context, id string) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)

	AddSession(ctx context.Context, s *models.Session) error
	EditSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]*models.Session, error)

	AddProgressNote(ctx context.Context, n *models.ProgressNote) error
	EditProgressNote(ctx context.Context, n *models.ProgressNote) error
	GetProgressNote(ctx context.Context, id string) (*models.ProgressNote, error)
	ListProgressNotes(ctx context.Context) ([]*models.ProgressNote, error)
}

type service struct {
	store storage.RecordStorage
	now   func() time.Time
}

// NewService creates a new data service
func NewService(store storage.RecordStorage) Service {
	return &service{
		store: store,
		now:   time.Now,
	}
}

// AddClient adds a new client to local storage
func (s *service) AddClient(ctx context.Context, c *models.Client) error {
	if c.Status == "" {
		c.Status = api.ClientStatusActive
	}
	if err := validation.ValidateClient(c.FirstName, c.LastName, c.Email, c.Status); err != nil {
		return err
	}
	return s.add(ctx, c)
}

// EditClient saves local changes to an existing client
func (s *service) EditClient(ctx context.Context, c *models.Client) error {
	if err := validation.ValidateClient(c.FirstName, c.LastName, c.Email, c.Status); err != nil {
		return err
	}
	return s.edit(ctx, c)
}

// GetClient returns a client by ID
func (s *service) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return get[*models.Client](ctx, s.store, models.KindClient, id)
}

// ListClients returns all local clients
func (s *service) ListClients(ctx context.Context) ([]*models.Client, error) {
	return list[*models.Client](ctx, s.store, models.KindClient)
}

// AddSession adds a new session to local storage
func (s *service) AddSession(ctx context.Context, sess *models.Session) error {
	if sess.Status == "" {
		sess.Status = api.SessionStatusScheduled
	}
	if err := validation.ValidateSession(sess.ClientID, sess.DurationMinutes, sess.Type, sess.Status); err != nil {
		return err
	}
	if err := s.requireExists(ctx, models.KindClient, sess.ClientID); err != nil {
		return err
	}
	return s.add(ctx, sess)
}

// EditSession saves local changes to an existing session
func (s *service) EditSession(ctx context.Context, sess *models.Session) error {
	if err := validation.ValidateSession(sess.ClientID, sess.DurationMinutes, sess.Type, sess.Status); err != nil {
		return err
	}
	if err := s.requireExists(ctx, models.KindClient, sess.ClientID); err != nil {
		return err
	}
	return s.edit(ctx, sess)
}

// GetSession returns a session by ID
func (s *service) GetSession(ctx context.Context, id string) (*models.Session, error) {
	return get[*models.Session](ctx, s.store, models.KindSession, id)
}

// ListSessions returns all local sessions
func (s *service) ListSessions(ctx context.Context) ([]*models.Session, error) {
	return list[*models.Session](ctx, s.store, models.KindSession)
}

// AddProgressNote adds a new progress note to local storage
func (s *service) AddProgressNote(ctx context.Context, n *models.ProgressNote) error {
	if n.Status == "" {
		n.Status = api.NoteStatusDraft
	}
	if n.RiskLevel == "" {
		n.RiskLevel = api.RiskLevelNone
	}
	if err := s.checkNote(ctx, n); err != nil {
		return err
	}
	return s.add(ctx, n)
}

// EditProgressNote saves local changes to an existing progress note
func (s *service) EditProgressNote(ctx context.Context, n *models.ProgressNote) error {
	if err := s.checkNote(ctx, n); err != nil {
		return err
	}
	return s.edit(ctx, n)
}

// GetProgressNote returns a progress note by ID
func (s *service) GetProgressNote(ctx context.Context, id string) (*models.ProgressNote, error) {
	return get[*models.ProgressNote](ctx, s.store, models.KindProgressNote, id)
}

// ListProgressNotes returns all local progress notes
func (s *service) ListProgressNotes(ctx context.Context) ([]*models.ProgressNote, error) {
	return list[*models.ProgressNote](ctx, s.store, models.KindProgressNote)
}

func (s *service) checkNote(ctx context.Context, n *models.ProgressNote) error {
	if err := validation.ValidateProgressNote(n.ClientID, n.Content, n.RiskLevel, n.Status); err != nil {
		return err
	}
	if err := s.requireExists(ctx, models.KindClient, n.ClientID); err != nil {
		return err
	}
	if n.SessionID != nil {
		return s.requireExists(ctx, models.KindSession, *n.SessionID)
	}
	return nil
}

// add сохраняет новую запись: ни разу не синхронизирована, dirty
func (s *service) add(ctx context.Context, rec models.Record) error {
	meta := rec.Meta()
	if meta.ID == "" {
		meta.ID = uuid.New().String()
	}
	now := s.now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	meta.LastSyncedAt = nil
	meta.Dirty = true

	if err := s.store.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("failed to save %s: %w", rec.Kind(), err)
	}
	return nil
}

// edit сохраняет изменения, сохраняя служебные поля из хранилища
func (s *service) edit(ctx context.Context, rec models.Record) error {
	meta := rec.Meta()
	existing, err := s.store.FindByID(ctx, rec.Kind(), meta.ID)
	if err != nil {
		return fmt.Errorf("failed to find %s %s: %w", rec.Kind(), meta.ID, err)
	}

	prev := existing.Meta()
	meta.CreatedAt = prev.CreatedAt
	meta.LastSyncedAt = prev.LastSyncedAt
	meta.UpdatedAt = prev.UpdatedAt
	meta.Touch(s.now().UTC())

	if err := s.store.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("failed to save %s: %w", rec.Kind(), err)
	}
	return nil
}

func (s *service) requireExists(ctx context.Context, kind models.Kind, id string) error {
	_, err := s.store.FindByID(ctx, kind, id)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("%s %s does not exist", kind, id)
	}
	return err
}

func get[R models.Record](ctx context.Context, store storage.RecordStorage, kind models.Kind, id string) (R, error) {
	var zero R
	rec, err := store.FindByID(ctx, kind, id)
	if err != nil {
		return zero, fmt.Errorf("failed to get %s %s: %w", kind, id, err)
	}
	typed, ok := rec.(R)
	if !ok {
		return zero, fmt.Errorf("unexpected record type %T", rec)
	}
	return typed, nil
}

func list[R models.Record](ctx context.Context, store storage.RecordStorage, kind models.Kind) ([]R, error) {
	recs, err := store.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	out := make([]R, 0, len(recs))
	for _, rec := range recs {
		if typed, ok := rec.(R); ok {
			out = append(out, typed)
		}
	}
	return out, nil
}
