package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/conflict"
	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/pkg/api"
)

// Tally collects counters and per-record errors of one cycle
type Tally struct {
	Errors            []error `yaml:"-"`
	Pushed            int     `yaml:"pushed"`              // записи, принятые сервером
	Pulled            int     `yaml:"pulled"`              // записи, полученные с сервера
	Inserted          int     `yaml:"inserted"`            // новые локальные записи из pull
	Updated           int     `yaml:"updated"`             // перезаписанные локальные записи из pull
	Conflicts         int     `yaml:"conflicts"`           // dirty записи, изменённые и на сервере
	ConflictsLocalWon int     `yaml:"conflicts_local_won"` // конфликты, где осталась локальная версия
}

func (t *Tally) fail(err error) {
	t.Errors = append(t.Errors, err)
}

//go:generate moq -out adapter_mock.go . Adapter

// Adapter synchronizes one entity kind. Push and Pull never return errors;
// failures are appended to the tally and processing continues.
type Adapter interface {
	Kind() models.Kind
	Push(ctx context.Context, tally *Tally)
	Pull(ctx context.Context, tally *Tally)
}

// Deps are the collaborators shared by all adapters
type Deps struct {
	Store    storage.RecordStorage
	Resolver conflict.Resolver
	Logger   *slog.Logger
}

// NewAdapters returns adapters for every kind in sync order
func NewAdapters(gw Gateway, deps Deps) []Adapter {
	return []Adapter{
		NewClientAdapter(gw, deps),
		NewSessionAdapter(gw, deps),
		NewProgressNoteAdapter(gw, deps),
	}
}

// NewClientAdapter returns the adapter for clients
func NewClientAdapter(gw ClientGateway, deps Deps) Adapter {
	return newEntityAdapter(models.KindClient, deps, entityOps[*models.Client, api.Client]{
		create: func(ctx context.Context, c *models.Client) (*api.Client, error) {
			return gw.CreateClient(ctx, clientCreateRequest(c))
		},
		update: func(ctx context.Context, c *models.Client) (*api.Client, error) {
			return gw.UpdateClient(ctx, c.ID, clientUpdateRequest(c))
		},
		list:       gw.ListClients,
		fromRemote: clientFromRemote,
	})
}

// NewSessionAdapter returns the adapter for sessions
func NewSessionAdapter(gw SessionGateway, deps Deps) Adapter {
	return newEntityAdapter(models.KindSession, deps, entityOps[*models.Session, api.Session]{
		create: func(ctx context.Context, s *models.Session) (*api.Session, error) {
			return gw.CreateSession(ctx, sessionCreateRequest(s))
		},
		update: func(ctx context.Context, s *models.Session) (*api.Session, error) {
			return gw.UpdateSession(ctx, s.ID, sessionUpdateRequest(s))
		},
		list:       gw.ListSessions,
		fromRemote: sessionFromRemote,
	})
}

// NewProgressNoteAdapter returns the adapter for progress notes
func NewProgressNoteAdapter(gw ProgressNoteGateway, deps Deps) Adapter {
	return newEntityAdapter(models.KindProgressNote, deps, entityOps[*models.ProgressNote, api.ProgressNote]{
		create: func(ctx context.Context, n *models.ProgressNote) (*api.ProgressNote, error) {
			return gw.CreateProgressNote(ctx, noteCreateRequest(n))
		},
		update: func(ctx context.Context, n *models.ProgressNote) (*api.ProgressNote, error) {
			return gw.UpdateProgressNote(ctx, n.ID, noteUpdateRequest(n))
		},
		list:       gw.ListProgressNotes,
		fromRemote: noteFromRemote,
	})
}

// entityOps binds a local record type R to its wire type W
type entityOps[R models.Record, W any] struct {
	create     func(ctx context.Context, rec R) (*W, error)
	update     func(ctx context.Context, rec R) (*W, error)
	list       func(ctx context.Context) ([]W, error)
	fromRemote func(remote *W) R
}

type entityAdapter[R models.Record, W any] struct {
	store    storage.RecordStorage
	resolver conflict.Resolver
	logger   *slog.Logger
	ops      entityOps[R, W]
	kind     models.Kind
}

func newEntityAdapter[R models.Record, W any](kind models.Kind, deps Deps, ops entityOps[R, W]) *entityAdapter[R, W] {
	resolver := deps.Resolver
	if resolver == nil {
		resolver = conflict.MostRecentWins{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &entityAdapter[R, W]{
		store:    deps.Store,
		resolver: resolver,
		logger:   logger.With("kind", kind.String()),
		ops:      ops,
		kind:     kind,
	}
}

// Kind implements Adapter
func (a *entityAdapter[R, W]) Kind() models.Kind {
	return a.kind
}

// Push uploads every dirty record of the adapter's kind
func (a *entityAdapter[R, W]) Push(ctx context.Context, tally *Tally) {
	dirty, err := a.store.QueryDirty(ctx, a.kind)
	if err != nil {
		a.logger.Warn("Failed to query dirty records", "error", err)
		tally.fail(&PushError{Kind: a.kind, Cause: fmt.Errorf("failed to query dirty records: %w", err)})
		return
	}

	a.logger.Debug("Pushing local changes", "count", len(dirty))

	for _, rec := range dirty {
		if err := a.pushOne(ctx, rec); err != nil {
			a.logger.Warn("Failed to push record", "id", rec.Meta().ID, "error", err)
			tally.fail(&PushError{Kind: a.kind, ID: rec.Meta().ID, Cause: err})
			continue
		}
		tally.Pushed++
	}
}

func (a *entityAdapter[R, W]) pushOne(ctx context.Context, rec models.Record) error {
	typed, ok := rec.(R)
	if !ok {
		return fmt.Errorf("unexpected record type %T", rec)
	}

	meta := rec.Meta()
	localID := meta.ID

	// Запись без LastSyncedAt всегда создается, даже если ID уже есть
	var (
		remote *W
		err    error
	)
	if meta.NeverSynced() {
		remote, err = a.ops.create(ctx, typed)
	} else {
		remote, err = a.ops.update(ctx, typed)
	}
	if err != nil {
		return err
	}

	var merged models.Record = a.ops.fromRemote(remote)
	mm := merged.Meta()
	mm.MarkSynced(mm.UpdatedAt)

	// Запись могли изменить локально, пока шел запрос
	current, err := a.store.FindByID(ctx, a.kind, localID)
	if err == nil && !current.Meta().UpdatedAt.Equal(meta.UpdatedAt) {
		syncedAt := *mm.LastSyncedAt
		merged = current
		merged.Meta().ID = mm.ID
		merged.Meta().LastSyncedAt = &syncedAt
		a.logger.Debug("Record changed during push, keeping it dirty", "id", localID)
	}

	if mm.ID != localID {
		err = a.store.Replace(ctx, localID, merged)
	} else {
		err = a.store.Upsert(ctx, merged)
	}
	if err != nil {
		return fmt.Errorf("failed to save pushed record: %w", err)
	}
	return nil
}

// Pull merges the remote snapshot of the adapter's kind into the local store
func (a *entityAdapter[R, W]) Pull(ctx context.Context, tally *Tally) {
	remotes, err := a.ops.list(ctx)
	if err != nil {
		a.logger.Warn("Failed to list remote records", "error", err)
		tally.fail(&PullError{Kind: a.kind, Cause: err})
		return
	}

	a.logger.Debug("Merging remote records", "count", len(remotes))

	for i := range remotes {
		incoming := a.ops.fromRemote(&remotes[i])
		tally.Pulled++
		if err := a.mergeOne(ctx, incoming, tally); err != nil {
			a.logger.Warn("Failed to merge record", "id", incoming.Meta().ID, "error", err)
			tally.fail(&PullError{Kind: a.kind, ID: incoming.Meta().ID, Cause: err})
		}
	}
}

func (a *entityAdapter[R, W]) mergeOne(ctx context.Context, incoming models.Record, tally *Tally) error {
	im := incoming.Meta()
	im.MarkSynced(im.UpdatedAt)

	local, err := a.store.FindByID(ctx, a.kind, im.ID)
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		if err := a.store.Upsert(ctx, incoming); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
		tally.Inserted++
		return nil
	case err != nil:
		return fmt.Errorf("failed to find local record: %w", err)
	}

	lm := local.Meta()
	if lm.Dirty {
		tally.Conflicts++
		winner, err := a.resolver.Resolve(local, incoming)
		if err != nil {
			return err
		}
		a.logger.Debug("Resolved conflict",
			"id", im.ID,
			"winner", winner.String(),
			"local_updated_at", lm.UpdatedAt,
			"remote_updated_at", im.UpdatedAt)
		if winner == conflict.WinnerLocal {
			// Запись остается dirty и уйдет на сервер в следующем push
			tally.ConflictsLocalWon++
			return nil
		}
	} else if lm.UpdatedAt.Equal(im.UpdatedAt) && !lm.NeverSynced() {
		// Сервер не менял запись с прошлой синхронизации
		return nil
	}

	if err := a.store.Upsert(ctx, incoming); err != nil {
		return fmt.Errorf("failed to overwrite record: %w", err)
	}
	tally.Updated++
	return nil
}
