package models

import (
	"slices"

	"github.com/iudanet/clinicsync/pkg/api"
)

// ProgressNote представляет клиническую заметку по клиенту
type ProgressNote struct {
	SessionID *string        `json:"session_id,omitempty"` // необязательная ссылка на Session
	ClientID  string         `json:"client_id"`            // ссылка на Client
	Content   string         `json:"content"`
	RiskLevel api.RiskLevel  `json:"risk_level"`
	Status    api.NoteStatus `json:"status"`
	Tags      []string       `json:"tags"`
	SyncMeta
}

// Kind implements Record
func (n *ProgressNote) Kind() Kind { return KindProgressNote }

// Meta implements Record
func (n *ProgressNote) Meta() *SyncMeta { return &n.SyncMeta }

// Clone implements Record
func (n *ProgressNote) Clone() Record {
	cp := *n
	cp.SessionID = cloneString(n.SessionID)
	cp.LastSyncedAt = cloneTime(n.LastSyncedAt)
	cp.Tags = slices.Clone(n.Tags)
	return &cp
}

// RemapReference implements Record
func (n *ProgressNote) RemapReference(kind Kind, oldID, newID string) bool {
	switch kind {
	case KindClient:
		if n.ClientID == oldID {
			n.ClientID = newID
			return true
		}
	case KindSession:
		if n.SessionID != nil && *n.SessionID == oldID {
			id := newID
			n.SessionID = &id
			return true
		}
	}
	return false
}
