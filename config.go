package pathai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the static dispatcher configuration: the quota-tracked models
// with their limits and priority order, and the ordered backend variant
// list used for fallback invocation.
type Config struct {
	Models []ModelConfig `yaml:"models"`

	// Priority is the fixed selection order. Defaults to the order of
	// Models when empty.
	Priority []string `yaml:"priority"`

	// Variants is the ordered backend variant list tried by the invoker.
	Variants []string `yaml:"variants"`
}

// ModelConfig holds the capacity limits for one quota-tracked model.
type ModelConfig struct {
	Name string `yaml:"name"`
	RPM  int    `yaml:"rpm"`
	TPM  int64  `yaml:"tpm"`
	RPD  int    `yaml:"rpd"`
}

// DefaultConfig returns the Gemini free-tier table the service ships with.
func DefaultConfig() Config {
	return Config{
		Models: []ModelConfig{
			{Name: "gemini-2.5-flash", RPM: 15, TPM: 1_000_000, RPD: 1500},
			{Name: "gemini-2.5-flash-lite", RPM: 15, TPM: 1_000_000, RPD: 1500},
			{Name: "gemini-2.5-pro", RPM: 2, TPM: 32_000, RPD: 50},
		},
		// Flash has the best price-performance, flash-lite the best speed,
		// pro the best quality but the tightest limits.
		Priority: []string{"gemini-2.5-flash", "gemini-2.5-flash-lite", "gemini-2.5-pro"},
		Variants: []string{"gemini-2.5-flash-lite", "gemini-2.5-flash", "gemini-3-flash"},
	}
}

// LoadConfig reads and parses a YAML config file. Environment variables in
// the format ${VAR} are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pathai: read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("pathai: parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the config for required fields and consistency.
func (c Config) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("pathai: config: at least one model is required")
	}

	names := make(map[string]bool, len(c.Models))
	for i, m := range c.Models {
		if m.Name == "" {
			return fmt.Errorf("pathai: config: models[%d]: name is required", i)
		}
		if names[m.Name] {
			return fmt.Errorf("pathai: config: duplicate model %q", m.Name)
		}
		names[m.Name] = true

		if m.RPM <= 0 || m.TPM <= 0 || m.RPD <= 0 {
			return fmt.Errorf("pathai: config: model %q: rpm, tpm and rpd must be positive", m.Name)
		}
	}

	for _, p := range c.Priority {
		if !names[p] {
			return fmt.Errorf("pathai: config: priority references unknown model %q", p)
		}
	}

	if len(c.Variants) == 0 {
		return fmt.Errorf("pathai: config: at least one backend variant is required")
	}

	return nil
}
