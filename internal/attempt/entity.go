package attempt

import (
	"time"

	"github.com/google/uuid"

	"quizdesk/internal/quiz"
	"quizdesk/internal/user"
)

// Attempt is one student's single, exclusive trial of one quiz. The
// (student_id, quiz_id) unique index is the retake guard: concurrent starts
// race on it instead of on application-level checks.
type Attempt struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attempts_student_quiz" json:"student_id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attempts_student_quiz" json:"quiz_id"`

	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Score int `gorm:"not null;default:0" json:"score"`
	// TotalMarks is frozen at attempt creation. Later edits to question
	// marks must not retroactively change a graded attempt.
	TotalMarks int  `gorm:"not null;default:0" json:"total_marks"`
	Completed  bool `gorm:"not null;default:false" json:"completed"`

	Student user.User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Quiz    quiz.Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Answers []Answer  `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// Answer records one response (or non-response) within an attempt. A null
// SelectedAnswer means unanswered; it is distinct from a wrong selection.
type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answers_attempt_question" json:"attempt_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answers_attempt_question" json:"question_id"`

	SelectedAnswer *quiz.Option `gorm:"type:text" json:"selected_answer"`
	IsCorrect      bool         `gorm:"not null;default:false" json:"is_correct"`

	Question quiz.Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}
