package pathai

import "time"

// Meter observes dispatch events for monitoring/logging.
type Meter interface {
	// OnDispatch is called when an attempt has a model and is about to
	// invoke the backend.
	OnDispatch(event DispatchEvent)

	// OnResult is called when an attempt finishes, successfully or not.
	OnResult(event ResultEvent)
}

// DispatchEvent describes one dispatch attempt about to hit the backend.
type DispatchEvent struct {
	AttemptID       string
	Model           string
	Attempt         int
	EstimatedTokens int64
	Structured      bool
}

// ResultEvent describes the outcome of one dispatch attempt.
type ResultEvent struct {
	AttemptID string
	Model     string
	Variant   string
	Attempt   int
	Success   bool
	Duration  time.Duration
	Usage     Usage
	Error     error
}

// noopMeter is a meter that does nothing.
type noopMeter struct{}

func (noopMeter) OnDispatch(DispatchEvent) {}
func (noopMeter) OnResult(ResultEvent)     {}
