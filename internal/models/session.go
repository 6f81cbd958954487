package models

import (
	"time"

	"github.com/iudanet/clinicsync/pkg/api"
)

// Session представляет запланированную встречу с клиентом
type Session struct {
	ScheduledAt     time.Time         `json:"scheduled_at"`
	Location        *string           `json:"location,omitempty"`
	ClientID        string            `json:"client_id"` // ссылка на Client
	Type            api.SessionType   `json:"type"`
	Status          api.SessionStatus `json:"status"`
	DurationMinutes int               `json:"duration_minutes"`
	SyncMeta
}

// Kind implements Record
func (s *Session) Kind() Kind { return KindSession }

// Meta implements Record
func (s *Session) Meta() *SyncMeta { return &s.SyncMeta }

// Clone implements Record
func (s *Session) Clone() Record {
	cp := *s
	cp.Location = cloneString(s.Location)
	cp.LastSyncedAt = cloneTime(s.LastSyncedAt)
	return &cp
}

// RemapReference implements Record
func (s *Session) RemapReference(kind Kind, oldID, newID string) bool {
	if kind == KindClient && s.ClientID == oldID {
		s.ClientID = newID
		return true
	}
	return false
}
