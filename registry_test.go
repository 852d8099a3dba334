package pathai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathai "github.com/prince-kumar-singh/PathAI"
)

func testConfig() pathai.Config {
	return pathai.Config{
		Models: []pathai.ModelConfig{
			{Name: "model-a", RPM: 15, TPM: 1_000_000, RPD: 1500},
			{Name: "model-b", RPM: 2, TPM: 32_000, RPD: 50},
			{Name: "model-c", RPM: 15, TPM: 1_000_000, RPD: 1500},
		},
		Priority: []string{"model-a", "model-b", "model-c"},
		Variants: []string{"v1", "v2", "v3"},
	}
}

func TestRegistry_RecordUnknownModel(t *testing.T) {
	r, err := pathai.NewRegistry(testConfig(), newFakeClock())
	require.NoError(t, err)

	err = r.Record("nope", 100)
	assert.ErrorIs(t, err, pathai.ErrUnknownModel)

	_, err = r.Status("nope")
	assert.ErrorIs(t, err, pathai.ErrUnknownModel)
}

func TestRegistry_StatusAllFollowsPriorityOrder(t *testing.T) {
	r, err := pathai.NewRegistry(testConfig(), newFakeClock())
	require.NoError(t, err)

	statuses := r.StatusAll()
	require.Len(t, statuses, 3)
	assert.Equal(t, "model-a", statuses[0].Model)
	assert.Equal(t, "model-b", statuses[1].Model)
	assert.Equal(t, "model-c", statuses[2].Model)
}

func TestRegistry_PriorityDefaultsToModelOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Priority = nil

	r, err := pathai.NewRegistry(cfg, newFakeClock())
	require.NoError(t, err)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, r.Priority())
}

func TestSelector_HonorsPriority(t *testing.T) {
	r, err := pathai.NewRegistry(testConfig(), newFakeClock())
	require.NoError(t, err)
	s := pathai.NewSelector(r)

	// Both A and B have capacity: A wins by priority.
	model, ok := s.Select(100)
	require.True(t, ok)
	assert.Equal(t, "model-a", model)
}

func TestSelector_FallsThroughExhaustedModels(t *testing.T) {
	r, err := pathai.NewRegistry(testConfig(), newFakeClock())
	require.NoError(t, err)
	s := pathai.NewSelector(r)

	for i := 0; i < 15; i++ {
		require.NoError(t, r.Record("model-a", 10))
	}

	model, ok := s.Select(100)
	require.True(t, ok)
	assert.Equal(t, "model-b", model)
}

func TestSelector_NoneAvailable(t *testing.T) {
	r, err := pathai.NewRegistry(testConfig(), newFakeClock())
	require.NoError(t, err)
	s := pathai.NewSelector(r)

	for i := 0; i < 15; i++ {
		require.NoError(t, r.Record("model-a", 10))
		require.NoError(t, r.Record("model-c", 10))
	}
	require.NoError(t, r.Record("model-b", 10))
	require.NoError(t, r.Record("model-b", 10))

	_, ok := s.Select(0)
	assert.False(t, ok)
}
