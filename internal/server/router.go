// Package server assembles the HTTP API of the reference clinicsync
// server from handlers and middleware.
package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/clinicsync/internal/server/handlers"
	"github.com/iudanet/clinicsync/internal/server/middleware"
	"github.com/iudanet/clinicsync/internal/server/storage"
)

// Store is the persistence the API needs
type Store interface {
	storage.UserStorage
	storage.RecordStorage
	handlers.Pinger
}

// Router describes the dependencies of the HTTP API
type Router struct {
	Logger  *slog.Logger
	Store   Store
	Limiter *middleware.RateLimiter
	Version string
	JWT     handlers.JWTConfig
}

const healthPath = "/api/v1/health"

// Handler строит mux со всеми маршрутами.
// Цепочка: Recovery -> Logging -> RateLimit -> Auth (только записи).
func (rt Router) Handler() http.Handler {
	auth := handlers.NewAuthHandler(rt.Logger, rt.Store, rt.JWT)
	health := handlers.NewHealthHandler(rt.Logger, rt.Store, rt.Version)
	records := handlers.NewRecordHandler(rt.Logger, rt.Store)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(rt.Logger, rt.JWT)(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", auth.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", auth.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", auth.Login)
	mux.HandleFunc("GET "+healthPath, health.Health)

	mux.Handle("POST /api/v1/clients", protected(records.CreateClient))
	mux.Handle("GET /api/v1/clients", protected(records.ListClients))
	mux.Handle("PUT /api/v1/clients/{id}", protected(records.UpdateClient))

	mux.Handle("POST /api/v1/sessions", protected(records.CreateSession))
	mux.Handle("GET /api/v1/sessions", protected(records.ListSessions))
	mux.Handle("PUT /api/v1/sessions/{id}", protected(records.UpdateSession))

	mux.Handle("POST /api/v1/notes", protected(records.CreateProgressNote))
	mux.Handle("GET /api/v1/notes", protected(records.ListProgressNotes))
	mux.Handle("PUT /api/v1/notes/{id}", protected(records.UpdateProgressNote))

	chain := []func(http.Handler) http.Handler{
		middleware.RecoveryMiddleware(rt.Logger),
		middleware.LoggingMiddleware(rt.Logger, healthPath),
	}
	if rt.Limiter != nil {
		chain = append(chain, rt.Limiter.Middleware)
	}

	return middleware.Chain(mux, chain...)
}
