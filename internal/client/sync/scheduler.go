package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

//go:generate moq -out runner_mock.go . Runner

// Runner starts a full cycle
type Runner interface {
	RunFullSync(ctx context.Context, trigger Trigger) (*Outcome, error)
}

// Scheduler triggers automatic full cycles at a fixed interval
type Scheduler struct {
	runner   Runner
	logger   *slog.Logger
	interval time.Duration
}

// NewScheduler creates a scheduler
func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

// Run runs one cycle immediately and then one per interval until ctx is
// cancelled. It returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return errors.New("sync interval must be positive")
	}

	s.logger.Info("Auto sync started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Auto sync stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	out, err := s.runner.RunFullSync(ctx, TriggerAuto)
	switch {
	case errors.Is(err, ErrNetworkUnavailable):
		s.logger.Debug("Auto sync skipped: network not suitable")
	case err != nil:
		s.logger.Warn("Auto sync failed", "error", err)
	case out.Skipped:
		s.logger.Debug("Auto sync skipped: cycle already running")
	case len(out.Errors) > 0:
		s.logger.Warn("Auto sync finished with errors", "errors", len(out.Errors), "pending", out.PendingChanges)
	}
}
