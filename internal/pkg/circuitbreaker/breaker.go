// Package circuitbreaker stops calling a provider tier after a run of
// failures and lets a single trial call through once it has cooled down.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/commutemap/internal/pkg/logger"
)

var (
	ErrCircuitBreakerOpen = errors.New("provider circuit is open")
	ErrTooManyRequests    = errors.New("provider trial call already in flight")
)

// State of a provider circuit
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{"closed", "open", "half-open"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config for one provider circuit
type Config struct {
	Name string
	// FailureThreshold consecutive failures open the circuit.
	FailureThreshold uint32
	// Timeout is the cooldown before the trial call.
	Timeout time.Duration
	// Window forgets a closed circuit's failure streak; zero keeps it.
	Window    time.Duration
	IsFailure func(err error) bool
}

func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Timeout:          time.Minute,
		Window:           30 * time.Second,
		IsFailure:        IsProviderFailure,
	}
}

// IsProviderFailure reports whether err counts against a provider.
// A cancelled caller says nothing about the provider.
func IsProviderFailure(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// Stats is a snapshot of one circuit, served on the health endpoint
type Stats struct {
	State               string `json:"state"`
	Calls               uint32 `json:"calls"`
	Failures            uint32 `json:"failures"`
	ConsecutiveFailures uint32 `json:"consecutive_failures"`
}

type CircuitBreaker struct {
	cfg Config
	log *logger.ZapLogger

	mu       sync.Mutex
	state    State
	calls    uint32
	failures uint32
	streak   uint32
	trial    bool
	// deadline ends the cooldown while open and the window while closed
	deadline time.Time
}

func New(cfg Config, l *logger.ZapLogger) *CircuitBreaker {
	if cfg.IsFailure == nil {
		cfg.IsFailure = IsProviderFailure
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 1
	}
	return &CircuitBreaker{
		cfg:      cfg,
		log:      l,
		deadline: time.Now().Add(cfg.Window),
	}
}

// Execute runs fn unless the circuit refuses the call. fn's own error is
// returned unchanged.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.admit(time.Now()); err != nil {
		return err
	}
	err := fn(ctx)
	cb.record(cb.cfg.IsFailure(err), time.Now())
	return err
}

func (cb *CircuitBreaker) admit(now time.Time) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if now.Before(cb.deadline) {
			return ErrCircuitBreakerOpen
		}
		cb.moveTo(StateHalfOpen)
		cb.trial = true
	case StateHalfOpen:
		if cb.trial {
			return ErrTooManyRequests
		}
		cb.trial = true
	default:
		if cb.cfg.Window > 0 && !now.Before(cb.deadline) {
			cb.streak = 0
			cb.deadline = now.Add(cb.cfg.Window)
		}
	}
	cb.calls++
	return nil
}

func (cb *CircuitBreaker) record(failed bool, now time.Time) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateHalfOpen {
		cb.trial = false
	}
	if !failed {
		cb.streak = 0
		if cb.state == StateHalfOpen {
			cb.moveTo(StateClosed)
			cb.deadline = now.Add(cb.cfg.Window)
		}
		return
	}

	cb.failures++
	cb.streak++
	if cb.state == StateHalfOpen || (cb.state == StateClosed && cb.streak >= cb.cfg.FailureThreshold) {
		cb.moveTo(StateOpen)
		cb.deadline = now.Add(cb.cfg.Timeout)
	}
}

// moveTo must be called with mu held
func (cb *CircuitBreaker) moveTo(next State) {
	if cb.state == next {
		return
	}
	cb.log.Info("Provider circuit changed",
		logger.String("provider", cb.cfg.Name),
		logger.String("from", cb.state.String()),
		logger.String("to", next.String()),
		logger.Uint32("consecutive_failures", cb.streak))
	cb.state = next
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Stats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return Stats{
		State:               cb.state.String(),
		Calls:               cb.calls,
		Failures:            cb.failures,
		ConsecutiveFailures: cb.streak,
	}
}

// Manager owns one circuit per provider name
type Manager struct {
	mu       sync.Mutex
	log      *logger.ZapLogger
	circuits map[string]*CircuitBreaker
}

func NewManager(l *logger.ZapLogger) *Manager {
	return &Manager{log: l, circuits: make(map[string]*CircuitBreaker)}
}

// GetOrCreate returns the circuit registered under name, creating it from
// cfg on first use. cfg is ignored for an existing circuit.
func (m *Manager) GetOrCreate(name string, cfg Config) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cb, ok := m.circuits[name]; ok {
		return cb
	}
	cfg.Name = name
	cb := New(cfg, m.log)
	m.circuits[name] = cb
	m.log.Debug("Provider circuit registered",
		logger.String("provider", name),
		logger.Uint32("failure_threshold", cb.cfg.FailureThreshold),
		logger.Duration("cooldown", cfg.Timeout))
	return cb
}

// Stats snapshots every registered circuit by provider name
func (m *Manager) Stats() map[string]Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]Stats, len(m.circuits))
	for name, cb := range m.circuits {
		out[name] = cb.Stats()
	}
	return out
}
