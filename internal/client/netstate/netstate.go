// Package netstate answers whether a sync cycle should start given the
// current connectivity.
package netstate

import (
	"context"
	"log/slog"
	"time"
)

// State is a snapshot of connectivity
type State struct {
	Connected                 bool // сервер доступен
	SuitableForBackgroundSync bool // соединение подходит для фоновой работы (не лимитное)
}

//go:generate moq -out monitor_mock.go . Monitor

// Monitor reports the current connectivity
type Monitor interface {
	State() State
}

// Gate combines connectivity flags into a go/no-go decision
type Gate struct {
	monitor Monitor
	logger  *slog.Logger
}

// NewGate creates a gate over m
func NewGate(m Monitor, logger *slog.Logger) *Gate {
	return &Gate{monitor: m, logger: logger}
}

// ShouldAttemptSync reports whether a cycle may start. Manual cycles need
// only connectivity; automatic ones also need a suitable connection.
func (g *Gate) ShouldAttemptSync(forAutoTrigger bool) bool {
	st := g.monitor.State()
	if !st.Connected {
		g.logger.Debug("Sync gate closed: not connected")
		return false
	}
	if forAutoTrigger && !st.SuitableForBackgroundSync {
		g.logger.Debug("Sync gate closed: connection not suitable for background sync")
		return false
	}
	return true
}

// Static is a Monitor that always reports the same state
type Static State

// State implements Monitor
func (s Static) State() State {
	return State(s)
}

// Prober checks that the server is reachable
type Prober interface {
	Health(ctx context.Context) error
}

// ProbeMonitor treats a successful health check as connectivity. A metered
// connection is never suitable for background sync.
type ProbeMonitor struct {
	prober  Prober
	logger  *slog.Logger
	timeout time.Duration
	metered bool
}

// DefaultProbeTimeout bounds one health check
const DefaultProbeTimeout = 5 * time.Second

// NewProbeMonitor creates a monitor backed by p
func NewProbeMonitor(p Prober, metered bool, timeout time.Duration, logger *slog.Logger) *ProbeMonitor {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &ProbeMonitor{
		prober:  p,
		logger:  logger,
		timeout: timeout,
		metered: metered,
	}
}

// State implements Monitor
func (m *ProbeMonitor) State() State {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if err := m.prober.Health(ctx); err != nil {
		m.logger.Debug("Server unreachable", "error", err)
		return State{}
	}
	return State{Connected: true, SuitableForBackgroundSync: !m.metered}
}
