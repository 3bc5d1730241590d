package attempt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository interface {
	// CreateIfAbsent inserts the attempt unless one already exists for its
	// (student, quiz) pair. It reports whether the row was inserted; the
	// caller resolves a lost race by re-reading.
	CreateIfAbsent(a *Attempt) (bool, error)
	FindByID(id uuid.UUID) (*Attempt, error)
	FindByStudentAndQuiz(studentID, quizID uuid.UUID) (*Attempt, error)
	// Finalize flips the completed flag and writes the answers in one
	// transaction. The guarded update makes finalization single-shot:
	// losing a submit race yields ErrAlreadySubmitted, never a second
	// score.
	Finalize(attemptID uuid.UUID, score int, completedAt time.Time, answers []Answer) error
	ListAnswers(attemptID uuid.UUID) ([]Answer, error)
	ListCompletedByStudent(studentID uuid.UUID) ([]Attempt, error)
	CompletedQuizIDs(studentID uuid.UUID) ([]uuid.UUID, error)
	CountByQuiz() (map[uuid.UUID]int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CreateIfAbsent(a *Attempt) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "quiz_id"}},
		DoNothing: true,
	}).Create(a)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *attemptRepository) FindByID(id uuid.UUID) (*Attempt, error) {
	var a Attempt
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) FindByStudentAndQuiz(studentID, quizID uuid.UUID) (*Attempt, error) {
	var a Attempt
	err := r.db.First(&a, "student_id = ? AND quiz_id = ?", studentID, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) Finalize(attemptID uuid.UUID, score int, completedAt time.Time, answers []Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Attempt{}).
			Where("id = ? AND completed = ?", attemptID, false).
			Updates(map[string]interface{}{
				"score":        score,
				"completed":    true,
				"completed_at": completedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadySubmitted
		}

		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *attemptRepository) ListAnswers(attemptID uuid.UUID) ([]Answer, error) {
	var answers []Answer
	err := r.db.
		Where("attempt_id = ?", attemptID).
		Preload("Question").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *attemptRepository) ListCompletedByStudent(studentID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	err := r.db.
		Where("student_id = ? AND completed = ?", studentID, true).
		Preload("Quiz").
		Order("started_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) CompletedQuizIDs(studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&Attempt{}).
		Where("student_id = ? AND completed = ?", studentID, true).
		Pluck("quiz_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *attemptRepository) CountByQuiz() (map[uuid.UUID]int64, error) {
	var rows []struct {
		QuizID uuid.UUID
		Count  int64
	}
	err := r.db.Model(&Attempt{}).
		Select("quiz_id, COUNT(*) as count").
		Group("quiz_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.QuizID] = row.Count
	}
	return counts, nil
}
