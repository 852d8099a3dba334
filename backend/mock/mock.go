// Package mock provides a scriptable pathai.Backend for testing.
package mock

import (
	"context"
	"sync"

	pathai "github.com/prince-kumar-singh/PathAI"
)

// Call records one Generate invocation.
type Call struct {
	Variant string
	Req     pathai.BackendRequest
}

// Backend is a mock backend whose per-variant behavior is scripted through
// options. Resolution order per call: GenerateFunc, per-variant error,
// per-variant response, static error, default response.
type Backend struct {
	mu           sync.Mutex
	responses    map[string]pathai.BackendResponse
	errors       map[string]error
	staticErr    error
	defaultResp  pathai.BackendResponse
	generateFunc func(variant string, req pathai.BackendRequest) (pathai.BackendResponse, error)
	calls        []Call
}

var _ pathai.Backend = (*Backend)(nil)

// Option configures a mock Backend.
type Option func(*Backend)

// New creates a mock backend with the given options.
func New(opts ...Option) *Backend {
	b := &Backend{
		responses: make(map[string]pathai.BackendResponse),
		errors:    make(map[string]error),
		defaultResp: pathai.BackendResponse{
			Text:  "Hello from mock backend",
			Model: "mock-model",
			Usage: pathai.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithResponse sets the response returned for a specific variant.
func WithResponse(variant string, resp pathai.BackendResponse) Option {
	return func(b *Backend) { b.responses[variant] = resp }
}

// WithError makes a specific variant always fail with err.
func WithError(variant string, err error) Option {
	return func(b *Backend) { b.errors[variant] = err }
}

// WithStaticError makes every variant fail with err.
func WithStaticError(err error) Option {
	return func(b *Backend) { b.staticErr = err }
}

// WithDefaultResponse sets the response returned for unscripted variants.
func WithDefaultResponse(resp pathai.BackendResponse) Option {
	return func(b *Backend) { b.defaultResp = resp }
}

// WithGenerateFunc overrides all other behavior with a custom function.
func WithGenerateFunc(fn func(variant string, req pathai.BackendRequest) (pathai.BackendResponse, error)) Option {
	return func(b *Backend) { b.generateFunc = fn }
}

func (b *Backend) Generate(_ context.Context, variant string, req pathai.BackendRequest) (pathai.BackendResponse, error) {
	b.mu.Lock()
	b.calls = append(b.calls, Call{Variant: variant, Req: req})
	b.mu.Unlock()

	if b.generateFunc != nil {
		return b.generateFunc(variant, req)
	}
	if err, ok := b.errors[variant]; ok {
		return pathai.BackendResponse{}, err
	}
	if resp, ok := b.responses[variant]; ok {
		return resp, nil
	}
	if b.staticErr != nil {
		return pathai.BackendResponse{}, b.staticErr
	}
	return b.defaultResp, nil
}

// Calls returns a copy of all recorded invocations.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallCount returns the number of Generate invocations so far.
func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}
