package attempt

import (
	"github.com/google/uuid"

	"quizdesk/internal/quiz"
)

type QuestionResult struct {
	QuestionID uuid.UUID
	Selected   *quiz.Option
	IsCorrect  bool
	Marks      int
}

type ScoreResult struct {
	Total       int
	PerQuestion []QuestionResult
}

// Score grades a submission against a quiz's questions. It is a pure
// function: every question yields exactly one QuestionResult, in the order
// the questions were given. An absent or empty selection is unanswered, not
// a wrong guess. A question is correct iff the selection exactly matches the
// correct option label; the only scoring rule is summing the marks of
// correct answers.
func Score(questions []quiz.Question, selections map[uuid.UUID]quiz.Option) ScoreResult {
	result := ScoreResult{
		PerQuestion: make([]QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		qr := QuestionResult{QuestionID: q.ID}

		if selected, ok := selections[q.ID]; ok && selected != "" {
			s := selected
			qr.Selected = &s
			if selected == q.CorrectAnswer {
				qr.IsCorrect = true
				qr.Marks = q.Marks
				result.Total += q.Marks
			}
		}

		result.PerQuestion = append(result.PerQuestion, qr)
	}

	return result
}
