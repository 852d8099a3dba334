// Package meter provides Meter implementations for observing dispatch
// events.
package meter

import (
	"log/slog"

	pathai "github.com/prince-kumar-singh/PathAI"
)

// LogMeter logs dispatch events using slog.
type LogMeter struct {
	Logger *slog.Logger
}

var _ pathai.Meter = (*LogMeter)(nil)

// NewLogMeter creates a LogMeter with the given logger.
// If logger is nil, slog.Default() is used.
func NewLogMeter(logger *slog.Logger) *LogMeter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMeter{Logger: logger}
}

func (m *LogMeter) OnDispatch(e pathai.DispatchEvent) {
	m.Logger.Info("dispatch",
		"attempt_id", e.AttemptID,
		"model", e.Model,
		"attempt", e.Attempt,
		"estimated_tokens", e.EstimatedTokens,
		"structured", e.Structured,
	)
}

func (m *LogMeter) OnResult(e pathai.ResultEvent) {
	if e.Success {
		m.Logger.Info("result",
			"attempt_id", e.AttemptID,
			"model", e.Model,
			"variant", e.Variant,
			"attempt", e.Attempt,
			"duration_ms", e.Duration.Milliseconds(),
			"prompt_tokens", e.Usage.PromptTokens,
			"completion_tokens", e.Usage.CompletionTokens,
		)
	} else {
		m.Logger.Warn("result_error",
			"attempt_id", e.AttemptID,
			"model", e.Model,
			"variant", e.Variant,
			"attempt", e.Attempt,
			"duration_ms", e.Duration.Milliseconds(),
			"error", e.Error,
		)
	}
}
