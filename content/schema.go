package content

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Resource is a single learning resource inside a task.
type Resource struct {
	Title           string `json:"title" jsonschema_description:"Title of the resource"`
	Platform        string `json:"platform" jsonschema_description:"Platform name (YouTube, Medium, etc.)"`
	URLHint         string `json:"url_hint" jsonschema_description:"Search hint or specific URL"`
	DurationMinutes int    `json:"duration_minutes" jsonschema_description:"Estimated duration in minutes"`
}

// Task is a single learning task.
type Task struct {
	TaskID               string     `json:"task_id" jsonschema_description:"Unique ID for the task"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 string     `json:"type" jsonschema:"enum=video,enum=article,enum=exercise,enum=project"`
	EstimatedTimeMinutes int        `json:"estimated_time_minutes"`
	Resources            []Resource `json:"resources"`
}

// Day is a single day in a roadmap.
type Day struct {
	DayNumber            int      `json:"day_number"`
	Title                string   `json:"title"`
	LearningObjectives   []string `json:"learning_objectives"`
	KeyTopics            []string `json:"key_topics"`
	Tasks                []Task   `json:"tasks"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
}

// Roadmap is a complete multi-day learning roadmap.
type Roadmap struct {
	CareerDomain string `json:"career_domain"`
	SkillLevel   string `json:"skill_level"`
	TotalDays    int    `json:"total_days"`
	Days         []Day  `json:"days"`
	Status       string `json:"status"`
}

// Question is a single multiple-choice quiz question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options" jsonschema_description:"Exactly 4 answer options"`
	CorrectAnswer int      `json:"correctAnswer" jsonschema_description:"Index of correct answer (0-3)"`
	Topic         string   `json:"topic"`
}

// Quiz is a generated assessment for one roadmap day.
type Quiz struct {
	CareerDomain   string     `json:"career_domain"`
	DayNumber      int        `json:"day_number"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// Schemas are embedded in structured prompts so the backend enforces the
// exact output shape. Reflected once at init; inlined (no $ref) to keep
// them readable inside a prompt.
var (
	roadmapSchema = mustSchema(&Roadmap{})
	quizSchema    = mustSchema(&Quiz{})
)

func mustSchema(v any) string {
	r := jsonschema.Reflector{DoNotReference: true}
	b, err := json.Marshal(r.Reflect(v))
	if err != nil {
		panic(err)
	}
	return string(b)
}
