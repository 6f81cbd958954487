package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveSyncReport saves the summary of the last completed sync cycle
	SaveSyncReport(ctx context.Context, report *SyncReport) error

	// GetSyncReport retrieves the summary of the last completed sync cycle
	// Returns nil without error if no sync has been performed yet
	GetSyncReport(ctx context.Context) (*SyncReport, error)
}

// SyncReport is the persisted summary of one sync cycle
type SyncReport struct {
	CompletedAt    time.Time         `json:"completed_at"`
	Phase          string            `json:"phase"`
	Trigger        string            `json:"trigger"`
	Errors         []SyncErrorRecord `json:"errors,omitempty"`
	PendingChanges int               `json:"pending_changes"`
}

// SyncErrorRecord is a flattened sync error
type SyncErrorRecord struct {
	Op       string `json:"op" yaml:"op"` // push или pull
	Kind     string `json:"kind" yaml:"kind"`
	RecordID string `json:"record_id,omitempty" yaml:"record_id,omitempty"`
	Message  string `json:"message" yaml:"message"`
}
