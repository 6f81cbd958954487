package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	var runner *RunnerMock
	runner = &RunnerMock{
		RunFullSyncFunc: func(ctx context.Context, trigger Trigger) (*Outcome, error) {
			// каждый второй запуск отклоняется gate
			if len(runner.RunFullSyncCalls())%2 == 0 {
				return nil, ErrNetworkUnavailable
			}
			return &Outcome{Trigger: trigger}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(runner, 5*time.Millisecond, discardLogger()).Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return len(runner.RunFullSyncCalls()) >= 3
	}, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}

	for _, call := range runner.RunFullSyncCalls() {
		assert.Equal(t, TriggerAuto, call.Trigger)
	}
}

func TestScheduler_InvalidInterval(t *testing.T) {
	err := NewScheduler(&RunnerMock{}, 0, discardLogger()).Run(context.Background())
	assert.Error(t, err)
}
