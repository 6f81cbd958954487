package storage

import (
	"context"

	"github.com/iudanet/clinicsync/pkg/api"
)

// RecordStorage defines persistence of clients, sessions and progress notes.
// Every method is scoped to the owning user; records of other users are
// reported as ErrRecordNotFound.
type RecordStorage interface {
	// InsertClient stores a new client
	InsertClient(ctx context.Context, userID string, c *api.Client) error
	// UpdateClient overwrites an existing client
	UpdateClient(ctx context.Context, userID string, c *api.Client) error
	// GetClient returns ErrRecordNotFound if the client doesn't exist
	GetClient(ctx context.Context, userID, id string) (*api.Client, error)
	// ListClients returns all clients ordered by updated_at
	ListClients(ctx context.Context, userID string) ([]api.Client, error)

	InsertSession(ctx context.Context, userID string, s *api.Session) error
	UpdateSession(ctx context.Context, userID string, s *api.Session) error
	GetSession(ctx context.Context, userID, id string) (*api.Session, error)
	ListSessions(ctx context.Context, userID string) ([]api.Session, error)

	InsertProgressNote(ctx context.Context, userID string, n *api.ProgressNote) error
	UpdateProgressNote(ctx context.Context, userID string, n *api.ProgressNote) error
	GetProgressNote(ctx context.Context, userID, id string) (*api.ProgressNote, error)
	ListProgressNotes(ctx context.Context, userID string) ([]api.ProgressNote, error)
}
