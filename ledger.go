package pathai

import (
	"sync"
	"time"
)

const (
	minuteWindow = 60 * time.Second
	dayWindow    = 24 * time.Hour
)

type tokenEntry struct {
	at     time.Time
	tokens int64
}

// Ledger tracks one model's consumption against sliding-window limits.
// Series are append-only and chronologically ordered; pruning removes
// expired entries from the front before every read or write, so the ledger
// never reports usage from outside its window.
type Ledger struct {
	model  string
	limits Limits
	clock  Clock

	mu             sync.Mutex
	minuteRequests []time.Time
	minuteTokens   []tokenEntry
	dayRequests    []time.Time
}

// NewLedger creates a ledger for model with the given limits.
// If clock is nil, the system clock is used.
func NewLedger(model string, limits Limits, clock Clock) *Ledger {
	if clock == nil {
		clock = SystemClock()
	}
	return &Ledger{model: model, limits: limits, clock: clock}
}

// CanServe reports whether a request with the given estimated token cost
// fits within every window right now. CanServe and a later Record are not
// one atomic unit: two callers may both pass before either records, so
// limits can overshoot by at most the number of in-flight calls.
func (l *Ledger) CanServe(estimatedTokens int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune()

	return len(l.minuteRequests) < l.limits.RPM &&
		l.minuteTokenSum()+estimatedTokens <= l.limits.TPM &&
		len(l.dayRequests) < l.limits.RPD
}

// Record charges one request and tokensUsed tokens to the ledger.
// Zero-token calls still consume an RPM and RPD slot but contribute
// nothing to TPM accounting.
func (l *Ledger) Record(tokensUsed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune()

	now := l.clock.Now()
	l.minuteRequests = append(l.minuteRequests, now)
	l.dayRequests = append(l.dayRequests, now)
	if tokensUsed > 0 {
		l.minuteTokens = append(l.minuteTokens, tokenEntry{at: now, tokens: tokensUsed})
	}
}

// Status returns a snapshot of current usage versus limits.
func (l *Ledger) Status() ModelStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune()

	return ModelStatus{
		Model:         l.model,
		RequestsUsed:  len(l.minuteRequests),
		RequestsLimit: l.limits.RPM,
		TokensUsed:    l.minuteTokenSum(),
		TokensLimit:   l.limits.TPM,
		DayUsed:       len(l.dayRequests),
		DayLimit:      l.limits.RPD,
		Available: len(l.minuteRequests) < l.limits.RPM &&
			l.minuteTokenSum() <= l.limits.TPM &&
			len(l.dayRequests) < l.limits.RPD,
	}
}

// prune drops entries older than their window. Caller must hold mu.
func (l *Ledger) prune() {
	now := l.clock.Now()
	minuteCutoff := now.Add(-minuteWindow)
	dayCutoff := now.Add(-dayWindow)

	l.minuteRequests = pruneTimes(l.minuteRequests, minuteCutoff)
	l.dayRequests = pruneTimes(l.dayRequests, dayCutoff)

	i := 0
	for i < len(l.minuteTokens) && !l.minuteTokens[i].at.After(minuteCutoff) {
		i++
	}
	l.minuteTokens = l.minuteTokens[i:]
}

func (l *Ledger) minuteTokenSum() int64 {
	var total int64
	for _, e := range l.minuteTokens {
		total += e.tokens
	}
	return total
}

func pruneTimes(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}
