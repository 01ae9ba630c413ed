package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/codermehran/Mo/internal/pkg/logger"
)

// ErrCircuitBreakerOpen is returned without calling the provider while the breaker is open
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets every call through
	StateClosed State = iota
	// StateOpen fails every call immediately
	StateOpen
	// StateHalfOpen lets a single probe through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	CoolDown         time.Duration // time spent open before a probe is allowed
	OnStateChange    func(name string, from State, to State)
	IsFailure        func(err error) bool
}

// DefaultConfig returns the configuration used for SMS and payment providers
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		CoolDown:         30 * time.Second,
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
	}
}

// CircuitBreaker fails fast once a provider keeps erroring, then probes it after a cool-down
type CircuitBreaker struct {
	cfg    Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
	probing  bool
}

// New creates a closed circuit breaker
func New(cfg Config, l *logger.ZapLogger) *CircuitBreaker {
	if cfg.IsFailure == nil {
		cfg.IsFailure = DefaultConfig(cfg.Name).IsFailure
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 1
	}
	return &CircuitBreaker{
		cfg:    cfg,
		logger: l,
		now:    time.Now,
	}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.acquire(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.release(err)
	return err
}

func (cb *CircuitBreaker) acquire() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.cfg.CoolDown {
			return ErrCircuitBreakerOpen
		}
		cb.setState(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrCircuitBreakerOpen
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) release(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if !cb.cfg.IsFailure(err) {
		cb.failures = 0
		if cb.state == StateHalfOpen {
			cb.setState(StateClosed)
		}
		return
	}

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
		cb.openedAt = cb.now()
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) setState(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	if to == StateClosed {
		cb.failures = 0
	}

	if cb.logger != nil {
		cb.logger.Warn("Circuit breaker state changed",
			logger.String("name", cb.cfg.Name),
			logger.String("from", from.String()),
			logger.String("to", to.String()),
			logger.Uint32("consecutive_failures", cb.failures))
	}
	if cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.cfg.Name, from, to)
	}
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Name returns the breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.cfg.Name
}
