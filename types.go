package pathai

// GenerateRequest describes one logical generation call.
type GenerateRequest struct {
	Prompt      string
	Structured  bool // request JSON output instead of plain text
	Temperature *float64

	// EstimatedTokens is a conservative cost estimate supplied before the
	// real usage is known. Zero is allowed and trivially passes the TPM
	// check; callers with no better number should use
	// DefaultEstimatedTokens or EstimateTokens.
	EstimatedTokens int64
}

// BackendRequest is the request passed to a Backend for one variant attempt.
type BackendRequest struct {
	Prompt      string
	Structured  bool
	Temperature *float64
}

// BackendResponse is a raw response from a backend variant.
type BackendResponse struct {
	Text  string
	Model string
	Usage Usage
}

// Usage reports token consumption for a single backend call.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Result is a validated generation outcome.
type Result struct {
	Text     string
	Model    string // quota-tracked model the usage was recorded against
	Variant  string // backend variant that actually served the call
	Usage    Usage
	Attempts int
}

// ValidateFunc checks the shape of a successful backend response.
// A nil ValidateFunc accepts every response.
type ValidateFunc func(BackendResponse) error

// Limits holds the static capacity ceilings for one model.
type Limits struct {
	RPM int   // requests per minute
	TPM int64 // tokens per minute
	RPD int   // requests per day
}

// ModelStatus is a point-in-time snapshot of one model's quota usage.
type ModelStatus struct {
	Model         string
	RequestsUsed  int
	RequestsLimit int
	TokensUsed    int64
	TokensLimit   int64
	DayUsed       int
	DayLimit      int
	Available     bool
}

// Float64Ptr returns a pointer to the given float64.
func Float64Ptr(v float64) *float64 { return &v }
