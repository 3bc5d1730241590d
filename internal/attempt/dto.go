package attempt

import (
	"time"

	"github.com/google/uuid"

	"quizdesk/internal/quiz"
)

// StudentQuestion is the question as served to a student: everything the
// catalog holds except the correct option.
type StudentQuestion struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	OptionA      string    `json:"option_a"`
	OptionB      string    `json:"option_b"`
	OptionC      string    `json:"option_c"`
	OptionD      string    `json:"option_d"`
	Marks        int       `json:"marks"`
	OrderIndex   int       `json:"order_index"`
}

type AttemptResponse struct {
	ID          uuid.UUID  `json:"id"`
	QuizID      uuid.UUID  `json:"quiz_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Score       int        `json:"score"`
	TotalMarks  int        `json:"total_marks"`
	Completed   bool       `json:"completed"`
}

type StartAttemptResponse struct {
	Attempt   AttemptResponse   `json:"attempt"`
	QuizTitle string            `json:"quiz_title"`
	TimeLimit int               `json:"time_limit"`
	Questions []StudentQuestion `json:"questions"`
}

type SubmitDTO struct {
	// Answers maps question id to the selected option label. Absent or
	// empty entries are unanswered.
	Answers map[string]string `json:"answers"`
}

type AnswerReview struct {
	QuestionID     uuid.UUID    `json:"question_id"`
	QuestionText   string       `json:"question_text"`
	OptionA        string       `json:"option_a"`
	OptionB        string       `json:"option_b"`
	OptionC        string       `json:"option_c"`
	OptionD        string       `json:"option_d"`
	CorrectAnswer  quiz.Option  `json:"correct_answer"`
	SelectedAnswer *quiz.Option `json:"selected_answer"`
	IsCorrect      bool         `json:"is_correct"`
	Marks          int          `json:"marks"`
}

type ResultSummary struct {
	AttemptID       uuid.UUID      `json:"attempt_id"`
	QuizID          uuid.UUID      `json:"quiz_id"`
	Score           int            `json:"score"`
	TotalMarks      int            `json:"total_marks"`
	CorrectCount    int            `json:"correct_count"`
	WrongCount      int            `json:"wrong_count"`
	UnansweredCount int            `json:"unanswered_count"`
	TotalQuestions  int            `json:"total_questions"`
	Percentage      float64        `json:"percentage"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	Answers         []AnswerReview `json:"answers"`
}

type AttemptedQuizItem struct {
	AttemptID   uuid.UUID  `json:"attempt_id"`
	QuizID      uuid.UUID  `json:"quiz_id"`
	QuizTitle   string     `json:"quiz_title"`
	Score       int        `json:"score"`
	TotalMarks  int        `json:"total_marks"`
	Percentage  float64    `json:"percentage"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toAttemptResponse(a *Attempt) AttemptResponse {
	return AttemptResponse{
		ID:          a.ID,
		QuizID:      a.QuizID,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
		Score:       a.Score,
		TotalMarks:  a.TotalMarks,
		Completed:   a.Completed,
	}
}

func toStudentQuestions(questions []quiz.Question) []StudentQuestion {
	out := make([]StudentQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, StudentQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			Marks:        q.Marks,
			OrderIndex:   q.OrderIndex,
		})
	}
	return out
}
