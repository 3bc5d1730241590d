package quiz_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quizdesk/internal/quiz"
	"quizdesk/internal/user"
)

type staticCounts map[uuid.UUID]int64

func (c staticCounts) CountByQuiz() (map[uuid.UUID]int64, error) { return c, nil }

type catalogFixture struct {
	db     *gorm.DB
	repo   quiz.QuizRepository
	svc    quiz.QuizService
	admin  user.User
	counts staticCounts
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &quiz.Quiz{}, &quiz.Question{}))

	admin := user.User{ID: uuid.New(), Username: "admin", Role: user.RoleAdmin, PasswordHash: "x"}
	require.NoError(t, db.Create(&admin).Error)

	counts := staticCounts{}
	repo := quiz.NewRepository(db)
	return &catalogFixture{
		db:     db,
		repo:   repo,
		svc:    quiz.NewService(repo, counts),
		admin:  admin,
		counts: counts,
	}
}

func questionDTO(correct quiz.Option, marks, order int) quiz.QuestionDTO {
	return quiz.QuestionDTO{
		QuestionText:  "What is 2 + 2?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "6",
		CorrectAnswer: correct,
		Marks:         marks,
		OrderIndex:    order,
	}
}

func TestCreateQuiz(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	t.Run("DefaultsApplied", func(t *testing.T) {
		q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
		require.NoError(t, err)

		assert.Equal(t, 30, q.TimeLimit)
		assert.True(t, q.IsActive)
	})

	t.Run("ExplicitInactive", func(t *testing.T) {
		inactive := false
		q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{
			Title:     "Draft",
			TimeLimit: 15,
			IsActive:  &inactive,
		})
		require.NoError(t, err)

		assert.Equal(t, 15, q.TimeLimit)
		assert.False(t, q.IsActive)
	})
}

func TestListQuizzes(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q1, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "First"})
	require.NoError(t, err)
	_, err = f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Second"})
	require.NoError(t, err)

	f.counts[q1.ID] = 7

	items, err := f.svc.ListQuizzes(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byTitle := map[string]quiz.QuizListItem{}
	for _, item := range items {
		byTitle[item.Title] = item
	}
	assert.Equal(t, int64(7), byTitle["First"].AttemptCount)
	assert.Equal(t, int64(0), byTitle["Second"].AttemptCount)
}

func TestToggleStatus(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)

	toggled, err := f.svc.ToggleStatus(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = f.svc.ToggleStatus(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = f.svc.ToggleStatus(ctx, uuid.New())
	require.ErrorIs(t, err, quiz.ErrQuizNotFound)
}

func TestQuestionValidation(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)

	t.Run("InvalidCorrectAnswer", func(t *testing.T) {
		_, err := f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.Option("E"), 1, 0))
		require.ErrorIs(t, err, quiz.ErrInvalidCorrectAnswer)
	})

	t.Run("NegativeMarks", func(t *testing.T) {
		_, err := f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.OptionB, -1, 0))
		require.ErrorIs(t, err, quiz.ErrInvalidMarks)
	})

	t.Run("ZeroMarksDefaultsToOne", func(t *testing.T) {
		question, err := f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.OptionB, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, 1, question.Marks)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		_, err := f.svc.AddQuestion(ctx, uuid.New(), questionDTO(quiz.OptionB, 1, 0))
		require.ErrorIs(t, err, quiz.ErrQuizNotFound)
	})
}

func TestQuestionOrdering(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)

	// Insert out of order; listing must follow order_index, not insert order.
	for _, order := range []int{2, 0, 1} {
		_, err := f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.OptionA, 1, order))
		require.NoError(t, err)
	}

	questions, err := f.repo.ListQuestions(q.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, question := range questions {
		assert.Equal(t, i, question.OrderIndex)
	}
}

func TestUpdateAndDeleteQuestion(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)
	question, err := f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.OptionA, 1, 0))
	require.NoError(t, err)

	dto := questionDTO(quiz.OptionC, 5, 3)
	dto.QuestionText = "Updated text"
	updated, err := f.svc.UpdateQuestion(ctx, question.ID, dto)
	require.NoError(t, err)
	assert.Equal(t, "Updated text", updated.QuestionText)
	assert.Equal(t, quiz.OptionC, updated.CorrectAnswer)
	assert.Equal(t, 5, updated.Marks)

	require.NoError(t, f.svc.DeleteQuestion(ctx, question.ID))
	require.ErrorIs(t, f.svc.DeleteQuestion(ctx, question.ID), quiz.ErrQuestionNotFound)
}

func TestSumMarks(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)

	total, err := f.repo.SumMarks(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	for _, marks := range []int{1, 2, 3} {
		_, err := f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.OptionA, marks, 0))
		require.NoError(t, err)
	}

	total, err = f.repo.SumMarks(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestDeleteQuizCascades(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)
	_, err = f.svc.AddQuestion(ctx, q.ID, questionDTO(quiz.OptionA, 1, 0))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteQuiz(ctx, q.ID))

	var count int64
	require.NoError(t, f.db.Model(&quiz.Question{}).Where("quiz_id = ?", q.ID).Count(&count).Error)
	assert.Zero(t, count)

	require.ErrorIs(t, f.svc.DeleteQuiz(ctx, q.ID), quiz.ErrQuizNotFound)
}

// CreatedAt carries the tie-break when order_index collides.
func TestQuestionOrderTieBreak(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	q, err := f.svc.CreateQuiz(ctx, f.admin.ID, quiz.CreateQuizDTO{Title: "Basics"})
	require.NoError(t, err)

	base := time.Now()
	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		question := quiz.Question{
			ID:            uuid.New(),
			QuizID:        q.ID,
			QuestionText:  text,
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: quiz.OptionA,
			Marks:         1,
			OrderIndex:    0,
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, f.db.Create(&question).Error)
	}

	questions, err := f.repo.ListQuestions(q.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, question := range questions {
		assert.Equal(t, texts[i], question.QuestionText)
	}
}
