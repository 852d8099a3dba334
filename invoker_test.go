package pathai_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathai "github.com/prince-kumar-singh/PathAI"
	"github.com/prince-kumar-singh/PathAI/backend/mock"
)

func TestInvoker_FallsBackToWorkingVariant(t *testing.T) {
	exhausted := fmt.Errorf("simulated 429: %w", pathai.ErrResourceExhausted)
	b := mock.New(
		mock.WithError("v1", exhausted),
		mock.WithError("v2", exhausted),
		mock.WithResponse("v3", pathai.BackendResponse{Text: "served by v3", Model: "v3"}),
	)

	inv := pathai.NewInvoker(b, []string{"v1", "v2", "v3"})
	resp, variant, err := inv.Invoke(context.Background(), pathai.BackendRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "v3", variant)
	assert.Equal(t, "served by v3", resp.Text)
	assert.Equal(t, 3, b.CallCount())
}

func TestInvoker_ContinuesPastNonQuotaErrors(t *testing.T) {
	b := mock.New(
		mock.WithError("v1", errors.New("500 internal")),
		mock.WithResponse("v2", pathai.BackendResponse{Text: "ok"}),
	)

	inv := pathai.NewInvoker(b, []string{"v1", "v2"})
	resp, variant, err := inv.Invoke(context.Background(), pathai.BackendRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "v2", variant)
	assert.Equal(t, "ok", resp.Text)
}

func TestInvoker_AllVariantsFail(t *testing.T) {
	firstErr := errors.New("v1 down")
	lastErr := errors.New("v3 down")
	b := mock.New(
		mock.WithError("v1", firstErr),
		mock.WithError("v2", errors.New("v2 down")),
		mock.WithError("v3", lastErr),
	)

	inv := pathai.NewInvoker(b, []string{"v1", "v2", "v3"})
	_, _, err := inv.Invoke(context.Background(), pathai.BackendRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, pathai.ErrBackendUnavailable)
	// Carries the last cause, not the first.
	assert.ErrorIs(t, err, lastErr)
	assert.NotErrorIs(t, err, firstErr)
}

func TestInvoker_CancelledContext(t *testing.T) {
	b := mock.New()
	inv := pathai.NewInvoker(b, []string{"v1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := inv.Invoke(ctx, pathai.BackendRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, b.CallCount())
}
