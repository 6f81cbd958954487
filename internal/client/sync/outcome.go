package sync

import (
	"time"

	"github.com/iudanet/clinicsync/internal/client/storage"
)

// Phase is the kind of cycle that produced an outcome
type Phase string

const (
	// PhaseFull pushes then pulls every kind
	PhaseFull Phase = "full"
	// PhaseQuick only pushes
	PhaseQuick Phase = "quick"
)

// Trigger tells the gate who asked for a cycle
type Trigger string

const (
	// TriggerManual is a user-initiated cycle; it only needs connectivity
	TriggerManual Trigger = "manual"
	// TriggerAuto is a background cycle; it also needs a suitable connection
	TriggerAuto Trigger = "auto"
)

// Outcome is the result of one cycle
type Outcome struct {
	StartedAt      time.Time     `yaml:"started_at"`
	CompletedAt    time.Time     `yaml:"completed_at"`
	Phase          Phase         `yaml:"phase"`
	Trigger        Trigger       `yaml:"trigger"`
	Tally          `yaml:",inline"`
	Duration       time.Duration `yaml:"duration"`
	PendingChanges int           `yaml:"pending_changes"` // dirty записи после цикла
	Skipped        bool          `yaml:"skipped,omitempty"`
}

// ErrorRecords returns the cycle errors in display form
func (o *Outcome) ErrorRecords() []storage.SyncErrorRecord {
	return errorRecords(o.Errors)
}

func (o *Outcome) report() *storage.SyncReport {
	return &storage.SyncReport{
		CompletedAt:    o.CompletedAt,
		Phase:          string(o.Phase),
		Trigger:        string(o.Trigger),
		Errors:         o.ErrorRecords(),
		PendingChanges: o.PendingChanges,
	}
}

// Status is a point-in-time view of the engine
type Status struct {
	LastSyncAt     *time.Time                `yaml:"last_sync_at,omitempty"`
	LastPhase      string                    `yaml:"last_phase,omitempty"`
	Errors         []storage.SyncErrorRecord `yaml:"errors,omitempty"`
	PendingChanges int                       `yaml:"pending_changes"`
	Running        bool                      `yaml:"running"`
}
