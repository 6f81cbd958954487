// Package conflict decides which version of a record survives when the
// same record was changed both locally and on the server.
package conflict

import (
	"errors"
	"fmt"

	"github.com/iudanet/clinicsync/internal/models"
)

// ErrIndeterminate is returned by a policy that refuses to pick a winner.
// MostRecentWins, ServerWins and ClientWins never return it.
var ErrIndeterminate = errors.New("conflict resolution indeterminate")

// Winner names the side whose version is kept
type Winner int

const (
	// WinnerRemote keeps the server version and overwrites the local record
	WinnerRemote Winner = iota
	// WinnerLocal keeps the local record dirty so the next push uploads it
	WinnerLocal
)

// String returns "remote" or "local"
func (w Winner) String() string {
	switch w {
	case WinnerRemote:
		return "remote"
	case WinnerLocal:
		return "local"
	default:
		return fmt.Sprintf("Winner(%d)", int(w))
	}
}

//go:generate moq -out resolver_mock.go . Resolver

// Resolver is a pure decision function over two versions of one record.
// Implementations must not modify either argument.
type Resolver interface {
	Resolve(local, remote models.Record) (Winner, error)
}

// ResolverFunc adapts a plain function to Resolver
type ResolverFunc func(local, remote models.Record) (Winner, error)

// Resolve calls f(local, remote)
func (f ResolverFunc) Resolve(local, remote models.Record) (Winner, error) {
	return f(local, remote)
}

// Policy names accepted by ByName
const (
	PolicyMostRecentWins = "most-recent-wins"
	PolicyServerWins     = "server-wins"
	PolicyClientWins     = "client-wins"
)

// MostRecentWins keeps the version with the later UpdatedAt.
// On an exact tie the server version wins.
type MostRecentWins struct{}

// Resolve implements Resolver
func (MostRecentWins) Resolve(local, remote models.Record) (Winner, error) {
	// remote >= local -> remote
	if local.Meta().UpdatedAt.After(remote.Meta().UpdatedAt) {
		return WinnerLocal, nil
	}
	return WinnerRemote, nil
}

// ServerWins always keeps the server version
type ServerWins struct{}

// Resolve implements Resolver
func (ServerWins) Resolve(models.Record, models.Record) (Winner, error) {
	return WinnerRemote, nil
}

// ClientWins always keeps the local version
type ClientWins struct{}

// Resolve implements Resolver
func (ClientWins) Resolve(models.Record, models.Record) (Winner, error) {
	return WinnerLocal, nil
}

// ByName returns the resolver registered under name. An empty name
// selects MostRecentWins.
func ByName(name string) (Resolver, error) {
	switch name {
	case "", PolicyMostRecentWins:
		return MostRecentWins{}, nil
	case PolicyServerWins:
		return ServerWins{}, nil
	case PolicyClientWins:
		return ClientWins{}, nil
	default:
		return nil, fmt.Errorf("unknown conflict policy %q", name)
	}
}
