package resilience

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/shared/apperrors"
	"github.com/shopyard/fulfillment/shared/telemetry"
)

// State is the externally visible breaker state.
type State string

const (
	StateClosed   State = "CLOSED"
	StateOpen     State = "OPEN"
	StateHalfOpen State = "HALF_OPEN"
)

// Settings configures a single breaker.
type Settings struct {
	// FailureRateThreshold is the failure ratio (0, 1] that trips the breaker.
	FailureRateThreshold float64
	// MinimumRequests is how many calls the window must hold before the rate is evaluated.
	MinimumRequests uint32
	// Window is the rolling period after which closed-state counts are cleared.
	Window time.Duration
	// OpenWait is how long the breaker stays open before allowing trial calls.
	OpenWait time.Duration
	// HalfOpenMaxCalls is the number of trial calls admitted while half-open.
	HalfOpenMaxCalls uint32
}

// DefaultSettings mirrors the order-service dependency defaults.
func DefaultSettings() Settings {
	return Settings{
		FailureRateThreshold: 0.5,
		MinimumRequests:      10,
		Window:               60 * time.Second,
		OpenWait:             30 * time.Second,
		HalfOpenMaxCalls:     1,
	}
}

func (s Settings) validate() error {
	if s.FailureRateThreshold <= 0 || s.FailureRateThreshold > 1 {
		return errors.Errorf("failure rate threshold must be in (0, 1], got %v", s.FailureRateThreshold)
	}
	if s.MinimumRequests == 0 {
		return errors.New("minimum requests must be positive")
	}
	if s.OpenWait <= 0 {
		return errors.New("open wait must be positive")
	}
	if s.HalfOpenMaxCalls == 0 {
		return errors.New("half-open max calls must be positive")
	}
	return nil
}

// Breaker guards calls to one downstream dependency. It can be forced open
// and reset, which test harnesses use to simulate an outage.
type Breaker struct {
	name     string
	settings Settings
	logger   *zap.Logger

	mux    sync.RWMutex
	cb     *gobreaker.CircuitBreaker
	forced atomic.Bool
}

func newBreaker(name string, settings Settings, logger *zap.Logger) *Breaker {
	b := &Breaker{
		name:     name,
		settings: settings,
		logger:   logger,
	}
	b.cb = gobreaker.NewCircuitBreaker(b.gobreakerSettings())
	return b
}

func (b *Breaker) gobreakerSettings() gobreaker.Settings {
	settings := b.settings
	return gobreaker.Settings{
		Name:        b.name,
		MaxRequests: settings.HalfOpenMaxCalls,
		Interval:    settings.Window,
		Timeout:     settings.OpenWait,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinimumRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.FailureRateThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Warn("circuit breaker state changed",
				zap.String("dependency", name),
				zap.String("from", toState(from).String()),
				zap.String("to", toState(to).String()),
			)
			telemetry.RecordCounter(context.Background(), "circuit_breaker_transitions_total",
				"Circuit breaker state transitions", 1,
				attribute.String("dependency", name),
				attribute.String("to", toState(to).String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// Caller-side errors are answers, not dependency failures.
			return err == nil ||
				errors.Is(err, apperrors.ErrNotFound) ||
				errors.Is(err, apperrors.ErrInvalidArgument) ||
				errors.Is(err, apperrors.ErrForbidden)
		},
	}
}

// Name returns the dependency name.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current state. A forced breaker always reports OPEN.
func (b *Breaker) State() State {
	if b.forced.Load() {
		return StateOpen
	}

	b.mux.RLock()
	defer b.mux.RUnlock()
	return toState(b.cb.State())
}

// ForceOpen makes every call fail with CircuitOpen until Reset.
func (b *Breaker) ForceOpen() {
	if !b.forced.Swap(true) {
		b.logger.Warn("circuit breaker forced open", zap.String("dependency", b.name))
	}
}

// Reset returns the breaker to CLOSED with empty counts. It waits for calls
// in flight so their outcomes and state changes land before the swap.
func (b *Breaker) Reset() {
	b.mux.Lock()
	defer b.mux.Unlock()

	b.cb = gobreaker.NewCircuitBreaker(b.gobreakerSettings())
	b.forced.Store(false)
}

// Execute runs fn under the breaker. When the breaker rejects the call fn is
// not invoked and the error is CircuitOpen. fn must not call back into b.
func (b *Breaker) Execute(fn func() error) error {
	if b.forced.Load() {
		return apperrors.CircuitOpen("circuit breaker for %s is open", b.name)
	}

	b.mux.RLock()
	defer b.mux.RUnlock()

	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return apperrors.CircuitOpen("circuit breaker for %s is %s", b.name, toState(b.cb.State()))
	}

	return err
}

func toState(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

func (s State) String() string {
	return string(s)
}

// Registry holds one breaker per dependency name.
type Registry struct {
	mux      sync.Mutex
	breakers map[string]*Breaker
	defaults Settings
	logger   *zap.Logger
}

func NewRegistry(defaults Settings, logger *zap.Logger) (*Registry, error) {
	if err := defaults.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid circuit breaker settings")
	}

	return &Registry{
		breakers: make(map[string]*Breaker),
		defaults: defaults,
		logger:   logger,
	}, nil
}

// Breaker returns the breaker for name, creating it with the registry
// defaults on first use.
func (r *Registry) Breaker(name string) *Breaker {
	r.mux.Lock()
	defer r.mux.Unlock()

	if b, ok := r.breakers[name]; ok {
		return b
	}

	b := newBreaker(name, r.defaults, r.logger)
	r.breakers[name] = b
	return b
}

// Configure registers name with its own settings. It fails if the breaker
// already exists.
func (r *Registry) Configure(name string, settings Settings) (*Breaker, error) {
	if err := settings.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid circuit breaker settings for %s", name)
	}

	r.mux.Lock()
	defer r.mux.Unlock()

	if _, ok := r.breakers[name]; ok {
		return nil, errors.Errorf("circuit breaker %s already configured", name)
	}

	b := newBreaker(name, settings, r.logger)
	r.breakers[name] = b
	return b, nil
}

// States snapshots every breaker's state.
func (r *Registry) States() map[string]State {
	r.mux.Lock()
	defer r.mux.Unlock()

	states := make(map[string]State, len(r.breakers))
	for name, b := range r.breakers {
		states[name] = b.State()
	}
	return states
}
