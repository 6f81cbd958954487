// Package sync reconciles the local record store with the remote service.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/iudanet/clinicsync/internal/client/storage"
)

// Coordinator runs sync cycles. At most one cycle runs at a time; a call
// made while another cycle is running returns a skipped outcome at once.
type Coordinator struct {
	gate     Gate
	records  storage.RecordStorage
	metadata storage.MetadataStorage
	logger   *slog.Logger
	now      func() time.Time
	last     atomic.Pointer[Outcome]
	adapters []Adapter
	inFlight atomic.Bool
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithClock overrides the clock used for outcome timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator creates a coordinator. Adapters run in the given order in
// both phases.
func NewCoordinator(
	gate Gate,
	records storage.RecordStorage,
	metadata storage.MetadataStorage,
	adapters []Adapter,
	logger *slog.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		gate:     gate,
		records:  records,
		metadata: metadata,
		adapters: adapters,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunFullSync pushes every dirty record, then merges the remote snapshot
func (c *Coordinator) RunFullSync(ctx context.Context, trigger Trigger) (*Outcome, error) {
	return c.run(ctx, PhaseFull, trigger)
}

// RunQuickSync only pushes dirty records
func (c *Coordinator) RunQuickSync(ctx context.Context, trigger Trigger) (*Outcome, error) {
	return c.run(ctx, PhaseQuick, trigger)
}

// Running reports whether a cycle is in progress
func (c *Coordinator) Running() bool {
	return c.inFlight.Load()
}

func (c *Coordinator) run(ctx context.Context, phase Phase, trigger Trigger) (*Outcome, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Debug("Sync already in progress, skipping", "phase", phase, "trigger", trigger)
		return &Outcome{Phase: phase, Trigger: trigger, Skipped: true}, nil
	}
	defer c.inFlight.Store(false)

	if !c.gate.ShouldAttemptSync(trigger == TriggerAuto) {
		c.logger.Info("Network unavailable, sync not started", "phase", phase, "trigger", trigger)
		return nil, ErrNetworkUnavailable
	}

	out := &Outcome{
		StartedAt: c.now(),
		Phase:     phase,
		Trigger:   trigger,
	}

	c.logger.Info("Starting synchronization", "phase", phase, "trigger", trigger)

	for _, a := range c.adapters {
		a.Push(ctx, &out.Tally)
	}

	// pull видит результаты push этого же цикла
	if phase == PhaseFull {
		for _, a := range c.adapters {
			a.Pull(ctx, &out.Tally)
		}
	}

	pending, err := c.records.CountDirty(ctx)
	if err != nil {
		c.logger.Warn("Failed to count pending changes", "error", err)
	}
	out.PendingChanges = pending
	out.CompletedAt = c.now()
	out.Duration = out.CompletedAt.Sub(out.StartedAt)

	c.last.Store(out)
	if err := c.metadata.SaveSyncReport(ctx, out.report()); err != nil {
		c.logger.Warn("Failed to save sync report", "error", err)
	}

	c.logger.Info("Synchronization completed",
		"phase", phase,
		"pushed", out.Pushed,
		"pulled", out.Pulled,
		"inserted", out.Inserted,
		"updated", out.Updated,
		"conflicts", out.Conflicts,
		"errors", len(out.Errors),
		"pending", out.PendingChanges,
		"duration", out.Duration)

	return out, nil
}

// Status returns the engine state. PendingChanges is always read from the
// store; the rest comes from the last completed cycle of this process, or
// from the persisted report of an earlier one.
func (c *Coordinator) Status(ctx context.Context) (*Status, error) {
	st := &Status{Running: c.inFlight.Load()}

	pending, err := c.records.CountDirty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending changes: %w", err)
	}
	st.PendingChanges = pending

	if last := c.last.Load(); last != nil {
		at := last.CompletedAt
		st.LastSyncAt = &at
		st.LastPhase = string(last.Phase)
		st.Errors = last.ErrorRecords()
		return st, nil
	}

	report, err := c.metadata.GetSyncReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last sync report: %w", err)
	}
	if report != nil {
		at := report.CompletedAt
		st.LastSyncAt = &at
		st.LastPhase = report.Phase
		st.Errors = report.Errors
	}

	return st, nil
}
