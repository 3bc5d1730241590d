package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	FindByID(id uuid.UUID) (*Quiz, error)
	ListAll() ([]Quiz, error)
	ListActive() ([]Quiz, error)
	Update(q *Quiz) error
	Delete(id uuid.UUID) error

	AddQuestion(question *Question) error
	UpdateQuestion(question *Question) error
	DeleteQuestion(id uuid.UUID) error
	FindQuestionByID(id uuid.UUID) (*Question, error)
	ListQuestions(quizID uuid.UUID) ([]Question, error)
	SumMarks(quizID uuid.UUID) (int, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) FindByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC, id ASC")
		}).
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) ListAll() ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListActive() ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Update(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}

func (r *quizRepository) AddQuestion(question *Question) error {
	return r.db.Create(question).Error
}

func (r *quizRepository) UpdateQuestion(question *Question) error {
	return r.db.Save(question).Error
}

func (r *quizRepository) DeleteQuestion(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *quizRepository) FindQuestionByID(id uuid.UUID) (*Question, error) {
	var question Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// ListQuestions returns a quiz's questions in presentation order. UUID keys
// are not creation-ordered, so created_at carries the tie-break before the
// final deterministic id comparison.
func (r *quizRepository) ListQuestions(quizID uuid.UUID) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) SumMarks(quizID uuid.UUID) (int, error) {
	var total int64
	err := r.db.Model(&Question{}).
		Where("quiz_id = ?", quizID).
		Select("COALESCE(SUM(marks), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
