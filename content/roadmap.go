// Package content generates structured learning content (roadmaps and
// quizzes) through the quota-aware dispatcher.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	pathai "github.com/prince-kumar-singh/PathAI"
)

const (
	roadmapDays            = 10
	roadmapEstimatedTokens = 5000
	roadmapTemperature     = 0.7
)

// Generator produces learning content through a dispatcher. It is the
// reference consumer of the dispatch contract: it supplies the token
// estimate up front and a shape validator that triggers retries on
// malformed output.
type Generator struct {
	dispatcher *pathai.Dispatcher
}

// NewGenerator creates a content generator over the given dispatcher.
func NewGenerator(d *pathai.Dispatcher) *Generator {
	return &Generator{dispatcher: d}
}

// RoadmapParams describes the roadmap to generate.
type RoadmapParams struct {
	CareerDomain  string
	SkillLevel    string
	LearningStyle string
	Pace          string
}

// GenerateRoadmap generates a complete 10-day learning roadmap.
func (g *Generator) GenerateRoadmap(ctx context.Context, p RoadmapParams) (*Roadmap, error) {
	if p.Pace == "" {
		p.Pace = "standard"
	}

	res, err := g.dispatcher.Generate(ctx, pathai.GenerateRequest{
		Prompt:          roadmapPrompt(p),
		Structured:      true,
		Temperature:     pathai.Float64Ptr(roadmapTemperature),
		EstimatedTokens: roadmapEstimatedTokens,
	}, validateRoadmap)
	if err != nil {
		return nil, err
	}

	var rm Roadmap
	if err := json.Unmarshal([]byte(cleanJSON(res.Text)), &rm); err != nil {
		return nil, fmt.Errorf("content: decode roadmap: %w", err)
	}
	if rm.Status == "" {
		rm.Status = "generated"
	}
	return &rm, nil
}

// validateRoadmap checks the raw response shape before the dispatcher
// treats the attempt as successful: valid JSON with exactly 10 days.
func validateRoadmap(resp pathai.BackendResponse) error {
	body := cleanJSON(resp.Text)
	if !gjson.Valid(body) {
		return errors.New("response is not valid JSON")
	}
	days := gjson.Get(body, "days.#").Int()
	if days != roadmapDays {
		return fmt.Errorf("expected %d days, got %d", roadmapDays, days)
	}
	return nil
}

// cleanJSON strips markdown code fences some models wrap around JSON.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
