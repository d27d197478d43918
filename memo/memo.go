package memo

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

// TargetFunc is the function signature a Memoizer wraps.
type TargetFunc[V any] func(ctx context.Context, args ...any) (V, error)

// Option configures a Memoizer.
type Option func(*config)

type config struct {
	name         string
	keyer        Keyer
	singleFlight bool
	meter        metric.Meter
}

// WithName sets the memoizer name used in metric attributes.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithKeyer replaces the default keyer.
func WithKeyer(k Keyer) Option {
	return func(c *config) { c.keyer = k }
}

// WithSingleFlight enables at-most-one in-flight evaluation per key.
// Concurrent callers for the same key share one target invocation. Every
// caller that joins a flight still counts a miss in Stats and in the
// memo.misses counter, so N concurrent callers report N misses for one
// evaluation.
func WithSingleFlight() Option {
	return func(c *config) { c.singleFlight = true }
}

// WithMeter installs an OpenTelemetry meter for hit/miss/evaluation
// counters. Without it, metrics are a noop.
func WithMeter(m metric.Meter) Option {
	return func(c *config) { c.meter = m }
}

// Memoizer wraps a target function with a result cache keyed by a derived
// identity of the arguments.
//
// Contract:
// - A hit returns the cached result without invoking the target, so no
//   target side effects occur on a hit.
// - A miss invokes the target once, stores the result on success, and
//   returns it. Target errors are not cached.
// - A keyer failure fails the call with that error; the target is not
//   invoked and the store is not written.
// - Without single-flight, two concurrent calls for the same key may both
//   invoke the target and one result overwrites the other in the store.
//   This is documented behavior, not a defect.
type Memoizer[V any] struct {
	name    string
	fn      TargetFunc[V]
	keyer   Keyer
	store   *Store[V]
	group   *singleflight.Group
	metrics *metrics
}

// New creates a Memoizer around fn.
func New[V any](fn TargetFunc[V], opts ...Option) (*Memoizer[V], error) {
	if fn == nil {
		return nil, ErrNilTarget
	}

	cfg := config{
		name:  "default",
		keyer: NewDefaultKeyer(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.keyer == nil {
		return nil, ErrNilKeyer
	}

	mx, err := newMetrics(cfg.meter)
	if err != nil {
		return nil, fmt.Errorf("memo: failed to create metrics: %w", err)
	}

	m := &Memoizer[V]{
		name:    cfg.name,
		fn:      fn,
		keyer:   cfg.keyer,
		store:   NewStore[V](),
		metrics: mx,
	}
	if cfg.singleFlight {
		m.group = &singleflight.Group{}
	}
	return m, nil
}

// Do calls the wrapped function, answering from the store when a result
// for the derived key exists.
func (m *Memoizer[V]) Do(ctx context.Context, args ...any) (V, error) {
	var zero V

	key, err := m.keyer.Key(args...)
	if err != nil {
		return zero, err
	}

	if v, ok := m.store.Get(key); ok {
		m.metrics.recordHit(ctx, m.name)
		return v, nil
	}
	m.metrics.recordMiss(ctx, m.name)

	if m.group != nil {
		v, err, _ := m.group.Do(key, func() (any, error) {
			// Re-check: a concurrent caller may have stored while this
			// caller waited on the flight.
			if v, ok := m.store.peek(key); ok {
				return v, nil
			}
			return m.evaluate(ctx, key, args)
		})
		if err != nil {
			return zero, err
		}
		// Comma-ok: when V is an interface type a nil result boxes to a
		// nil any, and a plain assertion would panic.
		val, _ := v.(V)
		return val, nil
	}

	return m.evaluate(ctx, key, args)
}

// Cache exposes the underlying store for inspection and invalidation.
func (m *Memoizer[V]) Cache() *Store[V] {
	return m.store
}

func (m *Memoizer[V]) evaluate(ctx context.Context, key string, args []any) (V, error) {
	v, err := m.fn(ctx, args...)
	if err != nil {
		var zero V
		return zero, err
	}

	m.store.Set(key, v)
	m.store.noteEvaluation()
	m.metrics.recordEvaluation(ctx, m.name)
	return v, nil
}
