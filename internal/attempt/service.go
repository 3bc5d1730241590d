package attempt

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"quizdesk/internal/config"
	"quizdesk/internal/quiz"
)

// Catalog is the slice of the quiz store the attempt engine consumes. It is
// satisfied by quiz.QuizRepository.
type Catalog interface {
	FindByID(id uuid.UUID) (*quiz.Quiz, error)
	ListQuestions(quizID uuid.UUID) ([]quiz.Question, error)
	SumMarks(quizID uuid.UUID) (int, error)
	ListActive() ([]quiz.Quiz, error)
}

type AttemptService interface {
	StartAttempt(ctx context.Context, studentID, quizID uuid.UUID) (*StartAttemptResponse, error)
	FinalizeAttempt(ctx context.Context, attemptID, studentID uuid.UUID, selections map[uuid.UUID]quiz.Option) (*Attempt, error)
	Summarize(ctx context.Context, attemptID, studentID uuid.UUID) (*ResultSummary, error)
	ListAvailableQuizzes(ctx context.Context, studentID uuid.UUID) ([]quiz.Quiz, error)
	ListAttempted(ctx context.Context, studentID uuid.UUID) ([]AttemptedQuizItem, error)
}

type attemptService struct {
	repo    AttemptRepository
	catalog Catalog
}

func NewService(repo AttemptRepository, catalog Catalog) AttemptService {
	return &attemptService{
		repo:    repo,
		catalog: catalog,
	}
}

// StartAttempt creates the student's attempt for a quiz, or resumes the
// in-progress one. The insert races on the (student, quiz) unique index;
// the loser observes the winner's row instead of erroring.
func (s *attemptService) StartAttempt(ctx context.Context, studentID, quizID uuid.UUID) (*StartAttemptResponse, error) {
	log := config.WithContext(ctx)

	q, err := s.catalog.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, ErrStorage
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	if !q.IsActive {
		return nil, ErrQuizInactive
	}

	existing, err := s.repo.FindByStudentAndQuiz(studentID, quizID)
	if err != nil {
		log.WithError(err).Error("Failed to look up existing attempt")
		return nil, ErrStorage
	}
	if existing != nil {
		return s.resumeOrReject(ctx, existing)
	}

	totalMarks, err := s.catalog.SumMarks(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to sum quiz marks")
		return nil, ErrStorage
	}

	a := &Attempt{
		ID:         uuid.New(),
		StudentID:  studentID,
		QuizID:     quizID,
		StartedAt:  time.Now(),
		TotalMarks: totalMarks,
	}

	created, err := s.repo.CreateIfAbsent(a)
	if err != nil {
		// A storage hiccup may still hide a concurrent winner; re-read
		// once before giving up.
		log.WithError(err).Warn("Conditional attempt insert failed, re-reading")
		created = false
	}
	if !created {
		winner, rerr := s.repo.FindByStudentAndQuiz(studentID, quizID)
		if rerr != nil || winner == nil {
			log.WithError(rerr).Error("Failed to resolve attempt start race")
			return nil, ErrStorage
		}
		return s.resumeOrReject(ctx, winner)
	}

	log.WithField("attempt_id", a.ID.String()).WithField("quiz_id", quizID.String()).Info("Attempt started")
	return s.startResponse(ctx, a, q)
}

func (s *attemptService) resumeOrReject(ctx context.Context, a *Attempt) (*StartAttemptResponse, error) {
	if a.Completed {
		return nil, ErrAlreadyAttempted
	}
	q, err := s.catalog.FindByID(a.QuizID)
	if err != nil || q == nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz for resumed attempt")
		return nil, ErrStorage
	}
	return s.startResponse(ctx, a, q)
}

func (s *attemptService) startResponse(ctx context.Context, a *Attempt, q *quiz.Quiz) (*StartAttemptResponse, error) {
	questions, err := s.catalog.ListQuestions(a.QuizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quiz questions")
		return nil, ErrStorage
	}

	return &StartAttemptResponse{
		Attempt:   toAttemptResponse(a),
		QuizTitle: q.Title,
		TimeLimit: q.TimeLimit,
		Questions: toStudentQuestions(questions),
	}, nil
}

// FinalizeAttempt scores the submission and completes the attempt exactly
// once. Ownership is checked before any state check. Every question of the
// quiz gets an Answer row, null selection for unanswered ones, written
// atomically with the score.
func (s *attemptService) FinalizeAttempt(ctx context.Context, attemptID, studentID uuid.UUID, selections map[uuid.UUID]quiz.Option) (*Attempt, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByID(attemptID)
	if err != nil {
		log.WithError(err).Error("Failed to load attempt")
		return nil, ErrStorage
	}
	if a == nil {
		return nil, ErrAttemptNotFound
	}
	if a.StudentID != studentID {
		return nil, ErrForbidden
	}
	if a.Completed {
		return nil, ErrAlreadySubmitted
	}

	questions, err := s.catalog.ListQuestions(a.QuizID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz questions")
		return nil, ErrStorage
	}

	scored := Score(questions, selections)

	answers := make([]Answer, 0, len(scored.PerQuestion))
	for _, qr := range scored.PerQuestion {
		answers = append(answers, Answer{
			ID:             uuid.New(),
			AttemptID:      a.ID,
			QuestionID:     qr.QuestionID,
			SelectedAnswer: qr.Selected,
			IsCorrect:      qr.IsCorrect,
		})
	}

	completedAt := time.Now()
	if err := s.repo.Finalize(a.ID, scored.Total, completedAt, answers); err != nil {
		if errors.Is(err, ErrAlreadySubmitted) {
			return nil, ErrAlreadySubmitted
		}
		// The transaction may have lost to a concurrent submit in a way
		// that surfaced as a constraint violation; re-read to tell the
		// two apart.
		log.WithError(err).Warn("Finalize transaction failed, re-reading")
		current, rerr := s.repo.FindByID(a.ID)
		if rerr == nil && current != nil && current.Completed {
			return nil, ErrAlreadySubmitted
		}
		return nil, ErrStorage
	}

	a.Score = scored.Total
	a.Completed = true
	a.CompletedAt = &completedAt
	a.Answers = answers

	log.WithField("attempt_id", a.ID.String()).
		WithField("score", a.Score).
		WithField("total_marks", a.TotalMarks).
		Info("Attempt finalized")
	return a, nil
}

// Summarize derives the result view from persisted state alone; it can be
// called any number of times with the same outcome.
func (s *attemptService) Summarize(ctx context.Context, attemptID, studentID uuid.UUID) (*ResultSummary, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByID(attemptID)
	if err != nil {
		log.WithError(err).Error("Failed to load attempt")
		return nil, ErrStorage
	}
	if a == nil {
		return nil, ErrAttemptNotFound
	}
	if a.StudentID != studentID {
		return nil, ErrForbidden
	}
	if !a.Completed {
		return nil, ErrNotCompleted
	}

	answers, err := s.repo.ListAnswers(a.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load answers")
		return nil, ErrStorage
	}

	sort.Slice(answers, func(i, j int) bool {
		qi, qj := answers[i].Question, answers[j].Question
		if qi.OrderIndex != qj.OrderIndex {
			return qi.OrderIndex < qj.OrderIndex
		}
		if !qi.CreatedAt.Equal(qj.CreatedAt) {
			return qi.CreatedAt.Before(qj.CreatedAt)
		}
		return qi.ID.String() < qj.ID.String()
	})

	summary := &ResultSummary{
		AttemptID:      a.ID,
		QuizID:         a.QuizID,
		Score:          a.Score,
		TotalMarks:     a.TotalMarks,
		TotalQuestions: len(answers),
		Percentage:     Percentage(a.Score, a.TotalMarks),
		CompletedAt:    a.CompletedAt,
		Answers:        make([]AnswerReview, 0, len(answers)),
	}

	for _, ans := range answers {
		switch {
		case ans.IsCorrect:
			summary.CorrectCount++
		case ans.SelectedAnswer != nil:
			summary.WrongCount++
		default:
			summary.UnansweredCount++
		}

		summary.Answers = append(summary.Answers, AnswerReview{
			QuestionID:     ans.QuestionID,
			QuestionText:   ans.Question.QuestionText,
			OptionA:        ans.Question.OptionA,
			OptionB:        ans.Question.OptionB,
			OptionC:        ans.Question.OptionC,
			OptionD:        ans.Question.OptionD,
			CorrectAnswer:  ans.Question.CorrectAnswer,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
			Marks:          ans.Question.Marks,
		})
	}

	return summary, nil
}

func (s *attemptService) ListAvailableQuizzes(ctx context.Context, studentID uuid.UUID) ([]quiz.Quiz, error) {
	log := config.WithContext(ctx)

	active, err := s.catalog.ListActive()
	if err != nil {
		log.WithError(err).Error("Failed to list active quizzes")
		return nil, err
	}

	completedIDs, err := s.repo.CompletedQuizIDs(studentID)
	if err != nil {
		log.WithError(err).Error("Failed to list completed quiz ids")
		return nil, err
	}

	completed := make(map[uuid.UUID]struct{}, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = struct{}{}
	}

	available := make([]quiz.Quiz, 0, len(active))
	for _, q := range active {
		if _, done := completed[q.ID]; !done {
			available = append(available, q)
		}
	}
	return available, nil
}

func (s *attemptService) ListAttempted(ctx context.Context, studentID uuid.UUID) ([]AttemptedQuizItem, error) {
	log := config.WithContext(ctx)

	attempts, err := s.repo.ListCompletedByStudent(studentID)
	if err != nil {
		log.WithError(err).Error("Failed to list completed attempts")
		return nil, err
	}

	items := make([]AttemptedQuizItem, 0, len(attempts))
	for _, a := range attempts {
		items = append(items, AttemptedQuizItem{
			AttemptID:   a.ID,
			QuizID:      a.QuizID,
			QuizTitle:   a.Quiz.Title,
			Score:       a.Score,
			TotalMarks:  a.TotalMarks,
			Percentage:  Percentage(a.Score, a.TotalMarks),
			CompletedAt: a.CompletedAt,
		})
	}
	return items, nil
}

// Percentage is score/totalMarks as a percentage rounded half-up to two
// decimal places, or 0 when the quiz had no marks at all.
func Percentage(score, totalMarks int) float64 {
	if totalMarks <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(score)).
		Div(decimal.NewFromInt(int64(totalMarks))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := pct.Float64()
	return f
}
