package pathai

import "time"

// Clock abstracts time for ledger pruning, capacity waiting and retry
// backoff so tests can simulate window expiry without real sleeping.
type Clock interface {
	Now() time.Time

	// After returns a channel that delivers the current time once d has
	// elapsed, like time.After.
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
