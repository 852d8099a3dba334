package content

import (
	"fmt"
	"strings"
)

func roadmapPrompt(p RoadmapParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert curriculum designer creating personalized learning roadmaps.

Create a comprehensive %d-day learning roadmap for:
- Career Domain: %s
- Skill Level: %s
- Learning Style: %s
- Pace Preference: %s

CRITICAL REQUIREMENTS:
1. Create EXACTLY %d days of progressive learning content
2. Each day MUST have:
   - Clear theme/title
   - 3-5 specific, measurable learning objectives
   - 3-4 hands-on tasks
   - 60-90 minutes total time
   - Progressive difficulty building on previous days

3. Task types MUST be ONLY ONE OF: "video", "article", "exercise", or "project"

4. Each resource MUST include a specific title, a platform name
   (YouTube, freeCodeCamp, MDN, etc.), a search hint and a realistic
   duration estimate.

5. Design for %s learners.

6. Logical progression: fundamentals and setup first, core concepts and
   practice in the middle, advanced topics next, integration and a
   capstone project at the end.
`, roadmapDays, p.CareerDomain, p.SkillLevel, p.LearningStyle, p.Pace, roadmapDays, p.LearningStyle)

	fmt.Fprintf(&b, "\nReturn ONLY valid JSON matching this schema, with no markdown fences:\n%s\n", roadmapSchema)
	fmt.Fprintf(&b, "\nGenerate the complete %d-day roadmap now in the required JSON format.", roadmapDays)

	return b.String()
}

func quizPrompt(p QuizParams) string {
	var b strings.Builder

	objectives := make([]string, len(p.Objectives))
	for i, o := range p.Objectives {
		objectives[i] = "- " + o
	}

	fmt.Fprintf(&b, `You are an expert educator creating assessment questions for a learning roadmap.

**Context:**
- Career Domain: %s
- Day Number: %d of %d
- Day Title: %s
- Key Topics: %s
- Learning Objectives:
%s

**Task:**
Generate exactly %d multiple-choice questions (MCQs) that assess the learner's understanding of the day's content.

**Requirements:**
1. Each question must directly relate to one of the key topics or learning objectives
2. Questions should be at beginner-to-intermediate difficulty
3. Each question must have exactly %d options
4. Only ONE option should be correct
5. Distractors (wrong answers) should be plausible but clearly incorrect
6. Questions should progress from easier to harder

**CRITICAL JSON FORMATTING RULES:**
1. Return ONLY valid JSON, no markdown or explanations
2. "questions" MUST be an array of exactly %d question objects
3. "options" MUST be an array of exactly %d strings
4. "correctAnswer" MUST be an integer 0-%d (index of correct option)
5. Ensure proper JSON syntax with no trailing commas
`, p.CareerDomain, p.DayNumber, roadmapDays, p.DayTitle,
		strings.Join(p.Topics, ", "), strings.Join(objectives, "\n"),
		quizQuestions, quizOptions, quizQuestions, quizOptions, quizOptions-1)

	fmt.Fprintf(&b, "\nThe output must match this schema:\n%s\n", quizSchema)
	fmt.Fprintf(&b, "\nGenerate the %d quiz questions now:", quizQuestions)

	return b.String()
}
