package pathai

import (
	"context"
	"errors"
	"fmt"
)

// Invoker tries each configured backend variant in order until one
// succeeds. Any error moves on to the next variant, not just quota errors:
// a different variant may still serve after a non-quota failure, so
// availability wins over fast-fail here. The variant list is independent of
// the quota-tracked model the registry reasons about.
type Invoker struct {
	backend  Backend
	variants []string
}

// NewInvoker creates an invoker over the given backend and variant list.
func NewInvoker(backend Backend, variants []string) *Invoker {
	return &Invoker{backend: backend, variants: variants}
}

// Invoke calls the backend with each variant in turn and returns the first
// successful response along with the variant that served it. When every
// variant fails, the returned error wraps both ErrBackendUnavailable and
// the last underlying cause. Context cancellation stops the trial early.
func (inv *Invoker) Invoke(ctx context.Context, req BackendRequest) (BackendResponse, string, error) {
	var lastErr error
	for _, variant := range inv.variants {
		if err := ctx.Err(); err != nil {
			return BackendResponse{}, "", err
		}

		resp, err := inv.backend.Generate(ctx, variant, req)
		if err != nil {
			lastErr = err
			continue
		}
		return resp, variant, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no backend variants configured")
	}
	return BackendResponse{}, "", fmt.Errorf("%w: %w", ErrBackendUnavailable, lastErr)
}
