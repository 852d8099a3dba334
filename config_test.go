package pathai_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathai "github.com/prince-kumar-singh/PathAI"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("empty models", func(t *testing.T) {
		err := pathai.Config{Variants: []string{"v1"}}.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one model")
	})

	t.Run("missing name", func(t *testing.T) {
		cfg := pathai.Config{
			Models:   []pathai.ModelConfig{{RPM: 1, TPM: 1, RPD: 1}},
			Variants: []string{"v1"},
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("duplicate model", func(t *testing.T) {
		cfg := pathai.Config{
			Models: []pathai.ModelConfig{
				{Name: "m", RPM: 1, TPM: 1, RPD: 1},
				{Name: "m", RPM: 1, TPM: 1, RPD: 1},
			},
			Variants: []string{"v1"},
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("non-positive limits", func(t *testing.T) {
		cfg := pathai.Config{
			Models:   []pathai.ModelConfig{{Name: "m", RPM: 0, TPM: 1, RPD: 1}},
			Variants: []string{"v1"},
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("unknown priority entry", func(t *testing.T) {
		cfg := pathai.Config{
			Models:   []pathai.ModelConfig{{Name: "m", RPM: 1, TPM: 1, RPD: 1}},
			Priority: []string{"other"},
			Variants: []string{"v1"},
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown model")
	})

	t.Run("no variants", func(t *testing.T) {
		cfg := pathai.Config{
			Models: []pathai.ModelConfig{{Name: "m", RPM: 1, TPM: 1, RPD: 1}},
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "variant")
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testConfig().Validate())
		assert.NoError(t, pathai.DefaultConfig().Validate())
	})
}

func TestLoadConfig(t *testing.T) {
	yaml := `
models:
  - name: gemini-2.5-flash
    rpm: 15
    tpm: 1000000
    rpd: 1500
  - name: gemini-2.5-pro
    rpm: 2
    tpm: 32000
    rpd: 50
priority:
  - gemini-2.5-flash
  - gemini-2.5-pro
variants:
  - ${VARIANT_NAME}
  - gemini-2.5-flash
`
	t.Setenv("VARIANT_NAME", "gemini-2.5-flash-lite")

	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := pathai.LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Models, 2)
	assert.Equal(t, int64(32_000), cfg.Models[1].TPM)
	assert.Equal(t, []string{"gemini-2.5-flash-lite", "gemini-2.5-flash"}, cfg.Variants)
}

func TestEstimateTokens(t *testing.T) {
	assert.Greater(t, pathai.EstimateTokens("Hello, how are you?"), int64(0))
	assert.Greater(t, pathai.EstimateTokens("a long prompt about learning Go"), pathai.EstimateTokens("hi"))
}
