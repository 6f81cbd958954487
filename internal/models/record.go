package models

import "time"

// SyncMeta holds the bookkeeping fields every synchronized record carries
type SyncMeta struct {
	CreatedAt    time.Time  `json:"created_at"`               // время создания
	UpdatedAt    time.Time  `json:"updated_at"`               // время последнего изменения
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"` // nil - запись ни разу не была на сервере
	ID           string     `json:"id"`                       // локальный или серверный ID
	Dirty        bool       `json:"dirty"`                    // есть непротолкнутые изменения
}

// NeverSynced reports whether the record has not been accepted by the
// server yet. Such records are pushed with a create call.
func (m *SyncMeta) NeverSynced() bool {
	return m.LastSyncedAt == nil
}

// MarkSynced clears the dirty flag and records when the server accepted the record
func (m *SyncMeta) MarkSynced(at time.Time) {
	t := at
	m.LastSyncedAt = &t
	m.Dirty = false
}

// Touch marks the record as locally modified. UpdatedAt never moves
// backwards, even if the wall clock does.
func (m *SyncMeta) Touch(now time.Time) {
	if !now.After(m.UpdatedAt) {
		now = m.UpdatedAt.Add(time.Nanosecond)
	}
	m.UpdatedAt = now
	m.Dirty = true
}

// Record is a locally stored entity that takes part in synchronization
type Record interface {
	// Kind returns the entity kind of the record
	Kind() Kind
	// Meta returns a pointer to the record's sync bookkeeping
	Meta() *SyncMeta
	// Clone returns a deep copy of the record
	Clone() Record
	// RemapReference replaces a reference to a record of the given kind
	// from oldID to newID and reports whether anything changed
	RemapReference(kind Kind, oldID, newID string) bool
}
