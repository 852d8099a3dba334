// Package gemini implements the pathai.Backend interface against the
// Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	pathai "github.com/prince-kumar-singh/PathAI"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Backend is the Gemini API adapter.
type Backend struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ pathai.Backend = (*Backend)(nil)

// Option configures the backend.
type Option func(*Backend)

// WithBaseURL sets a custom base URL.
func WithBaseURL(url string) Option {
	return func(b *Backend) { b.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) { b.httpClient = c }
}

// New creates a new Gemini backend using the given API key.
func New(apiKey string, opts ...Option) *Backend {
	b := &Backend{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Gemini API types.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int64 `json:"promptTokenCount"`
		CandidatesTokenCount int64 `json:"candidatesTokenCount"`
		TotalTokenCount      int64 `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	ModelVersion string `json:"modelVersion"`
}

// Generate calls variant's generateContent endpoint. Structured requests
// ask for application/json output so the model returns parseable JSON.
func (b *Backend) Generate(ctx context.Context, variant string, req pathai.BackendRequest) (pathai.BackendResponse, error) {
	body := buildRequest(req)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", b.baseURL, variant, b.apiKey)

	httpResp, err := b.doRequest(ctx, url, body)
	if err != nil {
		return pathai.BackendResponse{}, err
	}
	defer httpResp.Body.Close()

	if err := mapHTTPError(variant, httpResp); err != nil {
		return pathai.BackendResponse{}, err
	}

	var resp generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return pathai.BackendResponse{}, fmt.Errorf("gemini: decode response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return pathai.BackendResponse{}, fmt.Errorf("gemini: empty candidates in response from %s", variant)
	}

	text := ""
	if len(resp.Candidates[0].Content.Parts) > 0 {
		text = resp.Candidates[0].Content.Parts[0].Text
	}

	model := resp.ModelVersion
	if model == "" {
		model = variant
	}

	return pathai.BackendResponse{
		Text:  text,
		Model: model,
		Usage: pathai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

func buildRequest(req pathai.BackendRequest) generateRequest {
	gr := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: req.Prompt}}},
		},
	}

	cfg := &generationConfig{Temperature: req.Temperature}
	if req.Structured {
		cfg.ResponseMIMEType = "application/json"
	} else {
		cfg.ResponseMIMEType = "text/plain"
	}
	gr.GenerationConfig = cfg

	return gr
}

func (b *Backend) doRequest(ctx context.Context, url string, body generateRequest) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}

	return resp, nil
}

func mapHTTPError(variant string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	resp.Body.Close()

	message := gjson.GetBytes(body, "error.message").String()
	status := gjson.GetBytes(body, "error.status").String()

	if resp.StatusCode == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED" {
		return fmt.Errorf("gemini: %s: %w: %s", variant, pathai.ErrResourceExhausted, message)
	}

	if message == "" {
		message = string(body)
	}
	return fmt.Errorf("gemini: %s: HTTP %d: %s", variant, resp.StatusCode, message)
}
