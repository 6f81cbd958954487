package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/clinicsync/pkg/api"
)

// CreateClient создает клиента на сервере
func (c *Client) CreateClient(ctx context.Context, req api.ClientCreateRequest) (*api.Client, error) {
	var resp api.Client
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/clients", req, &resp); err != nil {
		return nil, fmt.Errorf("create client request failed: %w", err)
	}
	return &resp, nil
}

// UpdateClient обновляет клиента на сервере
func (c *Client) UpdateClient(ctx context.Context, id string, req api.ClientUpdateRequest) (*api.Client, error) {
	var resp api.Client
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/clients/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, fmt.Errorf("update client request failed: %w", err)
	}
	return &resp, nil
}

// ListClients возвращает всех клиентов пользователя
func (c *Client) ListClients(ctx context.Context) ([]api.Client, error) {
	var resp api.ClientList
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/clients", nil, &resp); err != nil {
		return nil, fmt.Errorf("list clients request failed: %w", err)
	}
	return resp.Clients, nil
}

// CreateSession создает сессию на сервере
func (c *Client) CreateSession(ctx context.Context, req api.SessionCreateRequest) (*api.Session, error) {
	var resp api.Session
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sessions", req, &resp); err != nil {
		return nil, fmt.Errorf("create session request failed: %w", err)
	}
	return &resp, nil
}

// UpdateSession обновляет сессию на сервере
func (c *Client) UpdateSession(ctx context.Context, id string, req api.SessionUpdateRequest) (*api.Session, error) {
	var resp api.Session
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/sessions/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, fmt.Errorf("update session request failed: %w", err)
	}
	return &resp, nil
}

// ListSessions возвращает все сессии пользователя
func (c *Client) ListSessions(ctx context.Context) ([]api.Session, error) {
	var resp api.SessionList
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sessions", nil, &resp); err != nil {
		return nil, fmt.Errorf("list sessions request failed: %w", err)
	}
	return resp.Sessions, nil
}

// CreateProgressNote создает заметку на сервере
func (c *Client) CreateProgressNote(ctx context.Context, req api.ProgressNoteCreateRequest) (*api.ProgressNote, error) {
	var resp api.ProgressNote
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/notes", req, &resp); err != nil {
		return nil, fmt.Errorf("create progress note request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProgressNote обновляет заметку на сервере
func (c *Client) UpdateProgressNote(ctx context.Context, id string, req api.ProgressNoteUpdateRequest) (*api.ProgressNote, error) {
	var resp api.ProgressNote
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/notes/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, fmt.Errorf("update progress note request failed: %w", err)
	}
	return &resp, nil
}

// ListProgressNotes возвращает все заметки пользователя
func (c *Client) ListProgressNotes(ctx context.Context) ([]api.ProgressNote, error) {
	var resp api.ProgressNoteList
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/notes", nil, &resp); err != nil {
		return nil, fmt.Errorf("list progress notes request failed: %w", err)
	}
	return resp.Notes, nil
}
