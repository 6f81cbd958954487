package api

import "time"

// SessionType classifies a scheduled session
type SessionType string

const (
	SessionTypeIndividual SessionType = "individual"
	SessionTypeCouples    SessionType = "couples"
	SessionTypeFamily     SessionType = "family"
	SessionTypeGroup      SessionType = "group"
	SessionTypeIntake     SessionType = "intake"
)

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeIndividual, SessionTypeCouples, SessionTypeFamily, SessionTypeGroup, SessionTypeIntake:
		return true
	}
	return false
}

// SessionStatus is the lifecycle state of a session. New sessions are
// always SessionStatusScheduled.
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusNoShow    SessionStatus = "no_show"
)

// Valid reports whether s is a known session status.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusCompleted, SessionStatusCancelled, SessionStatusNoShow:
		return true
	}
	return false
}

// SessionCreateRequest is the body of POST /api/v1/sessions
type SessionCreateRequest struct {
	ScheduledAt     time.Time   `json:"scheduled_at"`
	Location        *string     `json:"location,omitempty"`
	ClientID        string      `json:"client_id"`
	Type            SessionType `json:"type"`
	DurationMinutes int         `json:"duration_minutes"`
}

// SessionUpdateRequest is the body of PUT /api/v1/sessions/{id}
type SessionUpdateRequest struct {
	ScheduledAt     time.Time     `json:"scheduled_at"`
	Location        *string       `json:"location,omitempty"`
	ClientID        string        `json:"client_id"`
	Type            SessionType   `json:"type"`
	Status          SessionStatus `json:"status"`
	DurationMinutes int           `json:"duration_minutes"`
}

// Session is the server representation of a scheduled session
type Session struct {
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	Location        *string       `json:"location,omitempty"`
	ID              string        `json:"id"`
	ClientID        string        `json:"client_id"`
	Type            SessionType   `json:"type"`
	Status          SessionStatus `json:"status"`
	DurationMinutes int           `json:"duration_minutes"`
}

// SessionList is the body of GET /api/v1/sessions
type SessionList struct {
	Sessions []Session `json:"sessions"`
}
