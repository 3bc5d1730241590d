package report

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	ListCompletedByQuiz(quizID uuid.UUID, order ResultOrder) ([]ResultRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ListCompletedByQuiz(quizID uuid.UUID, order ResultOrder) ([]ResultRow, error) {
	orderExpr := "users.roll_number ASC"
	if order == OrderByScore {
		orderExpr = "attempts.score DESC"
	}

	var rows []ResultRow
	err := r.db.Table("attempts").
		Select("users.username AS student_name, users.roll_number, attempts.score, attempts.total_marks, attempts.completed_at").
		Joins("JOIN users ON users.id = attempts.student_id").
		Where("attempts.quiz_id = ? AND attempts.completed = ?", quizID, true).
		Order(orderExpr).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
