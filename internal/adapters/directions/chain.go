package directions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/haulpath/tripplan/internal/domain/routing"
	"github.com/haulpath/tripplan/internal/domain/shared"
)

const (
	defaultRequestsPerSecond = 2
	defaultBurst             = 2

	// A provider trips its breaker after this many consecutive failures and
	// is skipped until the cooldown elapses.
	breakerFailureThreshold = 3
	breakerCooldown         = 60 * time.Second
)

// AttemptRecorder receives the outcome of every provider attempt. Outcomes
// are "success", "error", and "open" (breaker short-circuit).
type AttemptRecorder interface {
	RecordDirectionsAttempt(provider, outcome string, seconds float64)
}

// Chain walks an ordered provider preference list and falls back to the
// terminal provider, which never fails. A shared rate limiter gates every
// outbound call; each remote provider sits behind its own circuit breaker.
type Chain struct {
	guarded  []*guardedProvider
	fallback routing.Provider
	limiter  *rate.Limiter
	recorder AttemptRecorder
}

type guardedProvider struct {
	provider routing.Provider
	breaker  *gobreaker.CircuitBreaker[*routing.Route]
}

// NewChain creates a fallback chain. Providers are tried in order; fallback
// terminates the chain. recorder may be nil. Rate limit defaults to 2
// requests per second with burst of 2 when given non-positive values.
func NewChain(providers []routing.Provider, fallback routing.Provider, requestsPerSecond float64, burst int, recorder AttemptRecorder) *Chain {
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}

	guarded := make([]*guardedProvider, 0, len(providers))
	for _, p := range providers {
		guarded = append(guarded, &guardedProvider{
			provider: p,
			breaker: gobreaker.NewCircuitBreaker[*routing.Route](gobreaker.Settings{
				Name:    p.Name(),
				Timeout: breakerCooldown,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					return counts.ConsecutiveFailures >= breakerFailureThreshold
				},
			}),
		})
	}

	return &Chain{
		guarded:  guarded,
		fallback: fallback,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		recorder: recorder,
	}
}

func (c *Chain) Name() string {
	return "chain"
}

// GetRoute tries each provider in preference order and settles on the
// fallback. Provider failures are swallowed; the only error paths are
// context cancellation and the fallback itself rejecting the input.
func (c *Chain) GetRoute(ctx context.Context, current, pickup, dropoff shared.Coordinate) (*routing.Route, error) {
	for _, g := range c.guarded {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		started := time.Now()
		route, err := g.breaker.Execute(func() (*routing.Route, error) {
			return g.provider.GetRoute(ctx, current, pickup, dropoff)
		})
		if err != nil {
			log.Printf("Route provider %s failed: %v", g.provider.Name(), err)
			c.record(g.provider.Name(), outcomeOf(err), started)
			if ctx.Err() != nil {
				return nil, fmt.Errorf("route lookup cancelled: %w", ctx.Err())
			}
			continue
		}

		c.record(g.provider.Name(), "success", started)
		return route, nil
	}

	started := time.Now()
	route, err := c.fallback.GetRoute(ctx, current, pickup, dropoff)
	if err != nil {
		c.record(c.fallback.Name(), "error", started)
		return nil, err
	}
	c.record(c.fallback.Name(), "success", started)
	return route, nil
}

func (c *Chain) record(provider, outcome string, started time.Time) {
	if c.recorder != nil {
		c.recorder.RecordDirectionsAttempt(provider, outcome, time.Since(started).Seconds())
	}
}

func outcomeOf(err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "open"
	}
	return "error"
}
