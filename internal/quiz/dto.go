package quiz

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeLimit   int    `json:"time_limit"`
	IsActive    *bool  `json:"is_active"`
}

type QuestionDTO struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer Option `json:"correct_answer"`
	Marks         int    `json:"marks"`
	OrderIndex    int    `json:"order_index"`
}

type QuizListItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TimeLimit    int       `json:"time_limit"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	AttemptCount int64     `json:"attempt_count"`
}
