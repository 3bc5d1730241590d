package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"quizdesk/internal/config"
)

var (
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrInvalidCorrectAnswer = errors.New("correct answer must be one of A, B, C or D")
	ErrInvalidMarks         = errors.New("marks must be at least 1")
)

// AttemptCounter is implemented by the attempt store; the catalog only needs
// per-quiz totals for the admin listing.
type AttemptCounter interface {
	CountByQuiz() (map[uuid.UUID]int64, error)
}

type QuizService interface {
	CreateQuiz(ctx context.Context, ownerID uuid.UUID, dto CreateQuizDTO) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]QuizListItem, error)
	GetQuizWithQuestions(ctx context.Context, id uuid.UUID) (*Quiz, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id uuid.UUID) error

	AddQuestion(ctx context.Context, quizID uuid.UUID, dto QuestionDTO) (*Question, error)
	UpdateQuestion(ctx context.Context, questionID uuid.UUID, dto QuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
}

type quizService struct {
	repo     QuizRepository
	attempts AttemptCounter
}

func NewService(repo QuizRepository, attempts AttemptCounter) QuizService {
	return &quizService{
		repo:     repo,
		attempts: attempts,
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, ownerID uuid.UUID, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	q := &Quiz{
		ID:          uuid.New(),
		Title:       dto.Title,
		Description: dto.Description,
		CreatedByID: ownerID,
		TimeLimit:   dto.TimeLimit,
		IsActive:    true,
	}
	if dto.TimeLimit <= 0 {
		q.TimeLimit = 30
	}
	if dto.IsActive != nil {
		q.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID.String()).Info("Quiz created")
	return q, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]QuizListItem, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.ListAll()
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		return nil, err
	}

	counts, err := s.attempts.CountByQuiz()
	if err != nil {
		log.WithError(err).Error("Failed to count attempts")
		return nil, err
	}

	items := make([]QuizListItem, 0, len(quizzes))
	for _, q := range quizzes {
		items = append(items, QuizListItem{
			ID:           q.ID,
			Title:        q.Title,
			Description:  q.Description,
			TimeLimit:    q.TimeLimit,
			IsActive:     q.IsActive,
			CreatedAt:    q.CreatedAt,
			AttemptCount: counts[q.ID],
		})
	}
	return items, nil
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	q, err := s.repo.FindByID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

func (s *quizService) ToggleStatus(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	q.IsActive = !q.IsActive
	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to toggle quiz status")
		return nil, err
	}

	log.WithField("quiz_id", q.ID.String()).WithField("is_active", q.IsActive).Info("Quiz status toggled")
	return q, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return err
	}
	if q == nil {
		return ErrQuizNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", id.String()).Info("Quiz deleted")
	return nil
}

func (s *quizService) AddQuestion(ctx context.Context, quizID uuid.UUID, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	question := &Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		QuestionText:  dto.QuestionText,
		OptionA:       dto.OptionA,
		OptionB:       dto.OptionB,
		OptionC:       dto.OptionC,
		OptionD:       dto.OptionD,
		CorrectAnswer: dto.CorrectAnswer,
		Marks:         dto.Marks,
		OrderIndex:    dto.OrderIndex,
		CreatedAt:     time.Now(),
	}
	if question.Marks == 0 {
		question.Marks = 1
	}

	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	if err := s.repo.AddQuestion(question); err != nil {
		log.WithError(err).Error("Failed to add question")
		return nil, err
	}

	log.WithField("question_id", question.ID.String()).Info("Question added")
	return question, nil
}

func (s *quizService) UpdateQuestion(ctx context.Context, questionID uuid.UUID, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	question, err := s.repo.FindQuestionByID(questionID)
	if err != nil {
		log.WithError(err).Error("Failed to load question")
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	question.QuestionText = dto.QuestionText
	question.OptionA = dto.OptionA
	question.OptionB = dto.OptionB
	question.OptionC = dto.OptionC
	question.OptionD = dto.OptionD
	question.CorrectAnswer = dto.CorrectAnswer
	question.Marks = dto.Marks
	question.OrderIndex = dto.OrderIndex

	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuestion(question); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}

	return question, nil
}

func (s *quizService) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	log := config.WithContext(ctx)

	question, err := s.repo.FindQuestionByID(questionID)
	if err != nil {
		log.WithError(err).Error("Failed to load question")
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	if err := s.repo.DeleteQuestion(questionID); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	log.WithField("question_id", questionID.String()).Info("Question deleted")
	return nil
}

func validateQuestion(q *Question) error {
	if !q.CorrectAnswer.IsValid() {
		return ErrInvalidCorrectAnswer
	}
	if q.Marks < 1 {
		return ErrInvalidMarks
	}
	return nil
}
