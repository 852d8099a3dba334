package pathai

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrQuotaExhausted     = errors.New("pathai: all models at quota limit")
	ErrBackendUnavailable = errors.New("pathai: all backend variants failed")
	ErrValidationFailed   = errors.New("pathai: response validation failed")
	ErrResourceExhausted  = errors.New("pathai: backend resource exhausted")
	ErrUnknownModel       = errors.New("pathai: unknown model")
)

// RetryError is returned when the dispatcher exhausts its attempt bound.
// It carries the error from the final attempt, not the first.
type RetryError struct {
	Err      error
	Attempts int
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("pathai: retries exhausted after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error {
	return e.Err
}
