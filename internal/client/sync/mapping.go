package sync

import (
	"slices"

	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/pkg/api"
)

func clientCreateRequest(c *models.Client) api.ClientCreateRequest {
	return api.ClientCreateRequest{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth,
	}
}

func clientUpdateRequest(c *models.Client) api.ClientUpdateRequest {
	return api.ClientUpdateRequest{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth,
		Status:      c.Status,
	}
}

func clientFromRemote(r *api.Client) *models.Client {
	return &models.Client{
		SyncMeta: models.SyncMeta{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		Status:      r.Status,
	}
}

func sessionCreateRequest(s *models.Session) api.SessionCreateRequest {
	return api.SessionCreateRequest{
		ClientID:        s.ClientID,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Type:            s.Type,
		Location:        s.Location,
	}
}

func sessionUpdateRequest(s *models.Session) api.SessionUpdateRequest {
	return api.SessionUpdateRequest{
		ClientID:        s.ClientID,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Type:            s.Type,
		Status:          s.Status,
		Location:        s.Location,
	}
}

func sessionFromRemote(r *api.Session) *models.Session {
	return &models.Session{
		SyncMeta: models.SyncMeta{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		ClientID:        r.ClientID,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		Type:            r.Type,
		Status:          r.Status,
		Location:        r.Location,
	}
}

func noteCreateRequest(n *models.ProgressNote) api.ProgressNoteCreateRequest {
	return api.ProgressNoteCreateRequest{
		ClientID:  n.ClientID,
		SessionID: n.SessionID,
		Content:   n.Content,
		RiskLevel: n.RiskLevel,
		Tags:      slices.Clone(n.Tags),
	}
}

func noteUpdateRequest(n *models.ProgressNote) api.ProgressNoteUpdateRequest {
	return api.ProgressNoteUpdateRequest{
		ClientID:  n.ClientID,
		SessionID: n.SessionID,
		Content:   n.Content,
		RiskLevel: n.RiskLevel,
		Status:    n.Status,
		Tags:      slices.Clone(n.Tags),
	}
}

func noteFromRemote(r *api.ProgressNote) *models.ProgressNote {
	return &models.ProgressNote{
		SyncMeta: models.SyncMeta{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		ClientID:  r.ClientID,
		SessionID: r.SessionID,
		Content:   r.Content,
		RiskLevel: r.RiskLevel,
		Status:    r.Status,
		Tags:      slices.Clone(r.Tags),
	}
}
