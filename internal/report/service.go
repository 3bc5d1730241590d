package report

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"quizdesk/internal/attempt"
	"quizdesk/internal/config"
	"quizdesk/internal/quiz"
)

var (
	ErrQuizNotFound  = errors.New("quiz not found")
	ErrUnknownFormat = errors.New("unknown export format")
)

// QuizFinder is the slice of the catalog the exporter needs.
type QuizFinder interface {
	FindByID(id uuid.UUID) (*quiz.Quiz, error)
}

type ReportService interface {
	QuizResults(ctx context.Context, quizID uuid.UUID, order ResultOrder) (*QuizResults, error)
	Export(ctx context.Context, w io.Writer, quizID uuid.UUID, format string) (filename string, err error)
}

type reportService struct {
	repo    ReportRepository
	catalog QuizFinder
}

func NewService(repo ReportRepository, catalog QuizFinder) ReportService {
	return &reportService{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *reportService) QuizResults(ctx context.Context, quizID uuid.UUID, order ResultOrder) (*QuizResults, error) {
	log := config.WithContext(ctx)

	q, err := s.catalog.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	rows, err := s.repo.ListCompletedByQuiz(quizID, order)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz results")
		return nil, err
	}

	for i := range rows {
		rows[i].Percentage = attempt.Percentage(rows[i].Score, rows[i].TotalMarks)
	}

	return &QuizResults{
		QuizID:    q.ID.String(),
		QuizTitle: q.Title,
		Rows:      rows,
	}, nil
}

// Export streams the quiz's completed results ordered by score, best first.
func (s *reportService) Export(ctx context.Context, w io.Writer, quizID uuid.UUID, format string) (string, error) {
	results, err := s.QuizResults(ctx, quizID, OrderByScore)
	if err != nil {
		return "", err
	}

	switch format {
	case "xlsx":
		return results.QuizTitle + "_results.xlsx", WriteExcel(w, results.QuizTitle, results.Rows)
	case "pdf":
		return results.QuizTitle + "_results.pdf", WritePDF(w, results.QuizTitle, results.Rows)
	default:
		return "", ErrUnknownFormat
	}
}
