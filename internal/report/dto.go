package report

import "time"

type ResultOrder string

const (
	// OrderByScore ranks the leaderboard-style exports.
	OrderByScore ResultOrder = "score"
	// OrderByRollNumber matches the on-screen results table.
	OrderByRollNumber ResultOrder = "roll_number"
)

type ResultRow struct {
	StudentName string     `json:"student_name"`
	RollNumber  *string    `json:"roll_number"`
	Score       int        `json:"score"`
	TotalMarks  int        `json:"total_marks"`
	Percentage  float64    `json:"percentage" gorm:"-"`
	CompletedAt *time.Time `json:"completed_at"`
}

type QuizResults struct {
	QuizID    string      `json:"quiz_id"`
	QuizTitle string      `json:"quiz_title"`
	Rows      []ResultRow `json:"rows"`
}
