package pathai

// EstimateTokens provides a rough token count estimate for a prompt.
// Uses the approximation: ~4 chars per token + a small request overhead.
func EstimateTokens(prompt string) int64 {
	return int64(len(prompt))/4 + 3
}
