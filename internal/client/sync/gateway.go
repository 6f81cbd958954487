package sync

import (
	"context"

	"github.com/iudanet/clinicsync/pkg/api"
)

// ClientGateway is the remote boundary for clients
type ClientGateway interface {
	CreateClient(ctx context.Context, req api.ClientCreateRequest) (*api.Client, error)
	UpdateClient(ctx context.Context, id string, req api.ClientUpdateRequest) (*api.Client, error)
	ListClients(ctx context.Context) ([]api.Client, error)
}

// SessionGateway is the remote boundary for sessions
type SessionGateway interface {
	CreateSession(ctx context.Context, req api.SessionCreateRequest) (*api.Session, error)
	UpdateSession(ctx context.Context, id string, req api.SessionUpdateRequest) (*api.Session, error)
	ListSessions(ctx context.Context) ([]api.Session, error)
}

// ProgressNoteGateway is the remote boundary for progress notes
type ProgressNoteGateway interface {
	CreateProgressNote(ctx context.Context, req api.ProgressNoteCreateRequest) (*api.ProgressNote, error)
	UpdateProgressNote(ctx context.Context, id string, req api.ProgressNoteUpdateRequest) (*api.ProgressNote, error)
	ListProgressNotes(ctx context.Context) ([]api.ProgressNote, error)
}

//go:generate moq -out gateway_mock.go . Gateway

// Gateway combines the remote boundaries of every kind. The HTTP client in
// internal/client/api implements it.
type Gateway interface {
	ClientGateway
	SessionGateway
	ProgressNoteGateway
}

//go:generate moq -out gate_mock.go . Gate

// Gate decides whether a cycle may start
type Gate interface {
	ShouldAttemptSync(forAutoTrigger bool) bool
}
