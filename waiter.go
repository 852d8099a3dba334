package pathai

import (
	"context"
	"time"
)

const waitTick = time.Second

// Waiter blocks a single caller until some model frees up or a bound
// elapses. It polls instead of subscribing, and holds no ledger lock while
// sleeping, so concurrent checks and records proceed unaffected.
type Waiter struct {
	selector *Selector
	clock    Clock
}

// NewWaiter creates a waiter over the given selector.
// If clock is nil, the system clock is used.
func NewWaiter(selector *Selector, clock Clock) *Waiter {
	if clock == nil {
		clock = SystemClock()
	}
	return &Waiter{selector: selector, clock: clock}
}

// WaitForCapacity re-checks the selector once per second for up to maxWait
// and returns the first model that becomes eligible. ok is false when the
// bound elapsed with nothing free, which is a timeout rather than an error;
// the caller decides how to treat it. err is non-nil only when ctx is done.
func (w *Waiter) WaitForCapacity(ctx context.Context, maxWait time.Duration) (model string, ok bool, err error) {
	ticks := int(maxWait / waitTick)
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-w.clock.After(waitTick):
		}

		if model, ok := w.selector.Select(0); ok {
			return model, true, nil
		}
	}
	return "", false, nil
}
