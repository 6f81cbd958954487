package api

import "time"

// RiskLevel is the clinician's risk assessment recorded on a progress note
type RiskLevel string

const (
	RiskLevelNone     RiskLevel = "none"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Valid reports whether l is a known risk level.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLevelNone, RiskLevelLow, RiskLevelModerate, RiskLevelHigh, RiskLevelCritical:
		return true
	}
	return false
}

// NoteStatus is the lifecycle state of a progress note
type NoteStatus string

const (
	NoteStatusDraft  NoteStatus = "draft"
	NoteStatusSigned NoteStatus = "signed"
)

// Valid reports whether s is a known note status.
func (s NoteStatus) Valid() bool {
	return s == NoteStatusDraft || s == NoteStatusSigned
}

// ProgressNoteCreateRequest is the body of POST /api/v1/notes
type ProgressNoteCreateRequest struct {
	SessionID *string   `json:"session_id,omitempty"`
	ClientID  string    `json:"client_id"`
	Content   string    `json:"content"`
	RiskLevel RiskLevel `json:"risk_level"`
	Tags      []string  `json:"tags"`
}

// ProgressNoteUpdateRequest is the body of PUT /api/v1/notes/{id}
type ProgressNoteUpdateRequest struct {
	SessionID *string    `json:"session_id,omitempty"`
	ClientID  string     `json:"client_id"`
	Content   string     `json:"content"`
	RiskLevel RiskLevel  `json:"risk_level"`
	Status    NoteStatus `json:"status"`
	Tags      []string   `json:"tags"`
}

// ProgressNote is the server representation of a progress note
type ProgressNote struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	SessionID *string    `json:"session_id,omitempty"`
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	Content   string     `json:"content"`
	RiskLevel RiskLevel  `json:"risk_level"`
	Status    NoteStatus `json:"status"`
	Tags      []string   `json:"tags"`
}

// ProgressNoteList is the body of GET /api/v1/notes
type ProgressNoteList struct {
	Notes []ProgressNote `json:"notes"`
}
