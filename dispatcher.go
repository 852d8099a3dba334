// Package pathai dispatches generation requests across rate-limited backend
// models. It tracks consumption against per-model sliding-window limits,
// selects models under a fixed priority policy, falls back across backend
// variants on failure, and retries the whole sequence with exponential
// backoff. State is process-local and resets on restart.
package pathai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	defaultMaxAttempts  = 3
	defaultMaxWait      = 60 * time.Second
	defaultBackoffStart = 2 * time.Second
	defaultBackoffCap   = 10 * time.Second

	// DefaultEstimatedTokens is the conservative per-call cost assumed when
	// a caller has no better estimate.
	DefaultEstimatedTokens = 4000
)

// Dispatcher runs the full select → invoke → validate sequence with
// capacity waiting, variant fallback and exponential-backoff retries.
// A Dispatcher is safe for concurrent use; the registry's ledgers are the
// only shared mutable state.
type Dispatcher struct {
	registry *Registry
	selector *Selector
	waiter   *Waiter
	invoker  *Invoker
	meter    Meter
	clock    Clock

	maxAttempts  int
	maxWait      time.Duration
	backoffStart time.Duration
	backoffCap   time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMeter sets the meter.
func WithMeter(m Meter) Option {
	return func(d *Dispatcher) { d.meter = m }
}

// WithClock sets the time source used by ledgers, waiting and backoff.
func WithClock(c Clock) Option {
	return func(d *Dispatcher) { d.clock = c }
}

// WithMaxAttempts sets the retry bound (default 3).
func WithMaxAttempts(n int) Option {
	return func(d *Dispatcher) { d.maxAttempts = n }
}

// WithMaxWait caps how long a single attempt waits for quota to free up
// (default 60s).
func WithMaxWait(w time.Duration) Option {
	return func(d *Dispatcher) { d.maxWait = w }
}

// WithBackoff sets the starting and maximum delay between attempts
// (defaults 2s and 10s; the delay doubles each attempt).
func WithBackoff(start, max time.Duration) Option {
	return func(d *Dispatcher) {
		d.backoffStart = start
		d.backoffCap = max
	}
}

// NewDispatcher creates a Dispatcher from the given config and backend.
// Defaults (system clock, no-op meter, 3 attempts) are used unless
// overridden via options.
func NewDispatcher(cfg Config, backend Backend, opts ...Option) (*Dispatcher, error) {
	if backend == nil {
		return nil, errors.New("pathai: a backend is required")
	}

	d := &Dispatcher{
		meter:        noopMeter{},
		clock:        SystemClock(),
		maxAttempts:  defaultMaxAttempts,
		maxWait:      defaultMaxWait,
		backoffStart: defaultBackoffStart,
		backoffCap:   defaultBackoffCap,
	}
	for _, opt := range opts {
		opt(d)
	}

	registry, err := NewRegistry(cfg, d.clock)
	if err != nil {
		return nil, err
	}
	d.registry = registry
	d.selector = NewSelector(registry)
	d.waiter = NewWaiter(d.selector, d.clock)
	d.invoker = NewInvoker(backend, cfg.Variants)

	return d, nil
}

// Registry exposes the quota registry for status reporting.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Generate runs one generation request to completion. Each attempt selects
// a model with capacity (waiting up to the configured bound when none is
// free), invokes the backend across its variant list, then validates the
// response. No capacity, invoke failure and validation failure are all
// uniformly retryable; after the attempt bound the last cause is returned
// wrapped in a *RetryError. Cancelling ctx stops further attempts.
func (d *Dispatcher) Generate(ctx context.Context, req GenerateRequest, validate ValidateFunc) (Result, error) {
	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := d.sleep(ctx, d.backoffDelay(attempt)); err != nil {
				return Result{}, err
			}
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		res, err := d.attempt(ctx, attempt, req, validate)
		if err == nil {
			res.Attempts = attempt
			return res, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		lastErr = err
	}

	return Result{}, &RetryError{Err: lastErr, Attempts: d.maxAttempts}
}

func (d *Dispatcher) attempt(ctx context.Context, attempt int, req GenerateRequest, validate ValidateFunc) (Result, error) {
	model, ok := d.selector.Select(req.EstimatedTokens)
	if !ok {
		waited, ok, err := d.waiter.WaitForCapacity(ctx, d.maxWait)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{}, ErrQuotaExhausted
		}
		model = waited
	}

	attemptID := uuid.New().String()
	d.meter.OnDispatch(DispatchEvent{
		AttemptID:       attemptID,
		Model:           model,
		Attempt:         attempt,
		EstimatedTokens: req.EstimatedTokens,
		Structured:      req.Structured,
	})

	start := d.clock.Now()
	resp, variant, err := d.invoker.Invoke(ctx, BackendRequest{
		Prompt:      req.Prompt,
		Structured:  req.Structured,
		Temperature: req.Temperature,
	})
	duration := d.clock.Now().Sub(start)

	if err != nil {
		d.meter.OnResult(ResultEvent{
			AttemptID: attemptID,
			Model:     model,
			Attempt:   attempt,
			Duration:  duration,
			Error:     err,
		})
		return Result{}, err
	}

	// The call reached the backend, so it counts against the selected
	// model's quota even if validation rejects the shape below.
	tokens := resp.Usage.TotalTokens
	if tokens == 0 {
		tokens = req.EstimatedTokens
	}
	_ = d.registry.Record(model, tokens)

	if validate != nil {
		if verr := validate(resp); verr != nil {
			verr = fmt.Errorf("%w: %v", ErrValidationFailed, verr)
			d.meter.OnResult(ResultEvent{
				AttemptID: attemptID,
				Model:     model,
				Variant:   variant,
				Attempt:   attempt,
				Duration:  duration,
				Usage:     resp.Usage,
				Error:     verr,
			})
			return Result{}, verr
		}
	}

	d.meter.OnResult(ResultEvent{
		AttemptID: attemptID,
		Model:     model,
		Variant:   variant,
		Attempt:   attempt,
		Success:   true,
		Duration:  duration,
		Usage:     resp.Usage,
	})

	return Result{
		Text:    resp.Text,
		Model:   model,
		Variant: variant,
		Usage:   resp.Usage,
	}, nil
}

// backoffDelay returns the delay to apply before the given attempt (>= 2):
// backoffStart doubled per extra attempt, capped at backoffCap.
func (d *Dispatcher) backoffDelay(attempt int) time.Duration {
	delay := d.backoffStart
	for i := 2; i < attempt; i++ {
		delay *= 2
		if delay >= d.backoffCap {
			return d.backoffCap
		}
	}
	if delay > d.backoffCap {
		delay = d.backoffCap
	}
	return delay
}

func (d *Dispatcher) sleep(ctx context.Context, delay time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.clock.After(delay):
		return nil
	}
}
