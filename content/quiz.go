package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	pathai "github.com/prince-kumar-singh/PathAI"
)

const (
	quizQuestions       = 5
	quizOptions         = 4
	quizEstimatedTokens = 1500
	quizTemperature     = 0.7
)

// QuizParams describes the quiz to generate for one roadmap day.
type QuizParams struct {
	CareerDomain string
	DayNumber    int
	DayTitle     string
	Topics       []string
	Objectives   []string
}

// GenerateQuiz generates exactly 5 MCQ questions for a roadmap day.
func (g *Generator) GenerateQuiz(ctx context.Context, p QuizParams) (*Quiz, error) {
	if p.DayTitle == "" {
		p.DayTitle = fmt.Sprintf("Day %d", p.DayNumber)
	}
	if len(p.Topics) == 0 {
		p.Topics = []string{"General concepts"}
	}
	if len(p.Objectives) == 0 {
		p.Objectives = []string{"Understand core concepts"}
	}

	res, err := g.dispatcher.Generate(ctx, pathai.GenerateRequest{
		Prompt:          quizPrompt(p),
		Structured:      true,
		Temperature:     pathai.Float64Ptr(quizTemperature),
		EstimatedTokens: quizEstimatedTokens,
	}, validateQuiz)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(res.Text)), &parsed); err != nil {
		return nil, fmt.Errorf("content: decode quiz: %w", err)
	}

	// Models occasionally over-produce; keep the first 5.
	questions := parsed.Questions[:quizQuestions]

	return &Quiz{
		CareerDomain:   p.CareerDomain,
		DayNumber:      p.DayNumber,
		Questions:      questions,
		TotalQuestions: len(questions),
	}, nil
}

// validateQuiz checks the raw response shape: valid JSON with at least 5
// questions, each with exactly 4 options and an answer index in range.
func validateQuiz(resp pathai.BackendResponse) error {
	body := cleanJSON(resp.Text)
	if !gjson.Valid(body) {
		return errors.New("response is not valid JSON")
	}

	questions := gjson.Get(body, "questions").Array()
	if len(questions) < quizQuestions {
		return fmt.Errorf("expected %d questions, got %d", quizQuestions, len(questions))
	}

	for i, q := range questions[:quizQuestions] {
		if len(q.Get("options").Array()) != quizOptions {
			return fmt.Errorf("question %d must have exactly %d options", i+1, quizOptions)
		}
		answer := q.Get("correctAnswer")
		if !answer.Exists() || answer.Int() < 0 || answer.Int() >= quizOptions {
			return fmt.Errorf("question %d has an out-of-range correctAnswer", i+1)
		}
	}
	return nil
}
