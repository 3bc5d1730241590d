package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"quizdesk/internal/attempt"
	"quizdesk/internal/quiz"
	"quizdesk/internal/report"
	"quizdesk/internal/user"
)

type seed struct {
	db   *gorm.DB
	svc  report.ReportService
	quiz quiz.Quiz
}

func roll(s string) *string { return &s }

func newSeed(t *testing.T) *seed {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Attempt{},
		&attempt.Answer{},
	))

	admin := user.User{ID: uuid.New(), Username: "admin", Role: user.RoleAdmin, PasswordHash: "x"}
	require.NoError(t, db.Create(&admin).Error)

	q := quiz.Quiz{ID: uuid.New(), Title: "Databases", CreatedByID: admin.ID, IsActive: true}
	require.NoError(t, db.Create(&q).Error)

	students := []user.User{
		{ID: uuid.New(), Username: "carol", Role: user.RoleStudent, PasswordHash: "x", RollNumber: roll("R-03")},
		{ID: uuid.New(), Username: "alice", Role: user.RoleStudent, PasswordHash: "x", RollNumber: roll("R-01")},
		{ID: uuid.New(), Username: "bob", Role: user.RoleStudent, PasswordHash: "x", RollNumber: roll("R-02")},
	}
	scores := []int{4, 10, 7}
	now := time.Now()
	for i, s := range students {
		require.NoError(t, db.Create(&s).Error)
		completedAt := now
		a := attempt.Attempt{
			ID:          uuid.New(),
			StudentID:   s.ID,
			QuizID:      q.ID,
			StartedAt:   now,
			CompletedAt: &completedAt,
			Score:       scores[i],
			TotalMarks:  10,
			Completed:   true,
		}
		require.NoError(t, db.Create(&a).Error)
	}

	// An in-progress attempt must never show up in reports.
	straggler := user.User{ID: uuid.New(), Username: "dave", Role: user.RoleStudent, PasswordHash: "x"}
	require.NoError(t, db.Create(&straggler).Error)
	require.NoError(t, db.Create(&attempt.Attempt{
		ID: uuid.New(), StudentID: straggler.ID, QuizID: q.ID, StartedAt: now, TotalMarks: 10,
	}).Error)

	return &seed{
		db:   db,
		svc:  report.NewService(report.NewRepository(db), quiz.NewRepository(db)),
		quiz: q,
	}
}

func TestQuizResults(t *testing.T) {
	s := newSeed(t)
	ctx := context.Background()

	t.Run("OrderedByRollNumber", func(t *testing.T) {
		results, err := s.svc.QuizResults(ctx, s.quiz.ID, report.OrderByRollNumber)
		require.NoError(t, err)

		require.Len(t, results.Rows, 3)
		assert.Equal(t, "alice", results.Rows[0].StudentName)
		assert.Equal(t, "bob", results.Rows[1].StudentName)
		assert.Equal(t, "carol", results.Rows[2].StudentName)
	})

	t.Run("OrderedByScore", func(t *testing.T) {
		results, err := s.svc.QuizResults(ctx, s.quiz.ID, report.OrderByScore)
		require.NoError(t, err)

		require.Len(t, results.Rows, 3)
		assert.Equal(t, 10, results.Rows[0].Score)
		assert.Equal(t, 7, results.Rows[1].Score)
		assert.Equal(t, 4, results.Rows[2].Score)
		assert.InDelta(t, 100, results.Rows[0].Percentage, 0.0001)
		assert.InDelta(t, 70, results.Rows[1].Percentage, 0.0001)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		_, err := s.svc.QuizResults(ctx, uuid.New(), report.OrderByScore)
		require.ErrorIs(t, err, report.ErrQuizNotFound)
	})
}

func TestExport(t *testing.T) {
	s := newSeed(t)
	ctx := context.Background()

	t.Run("Excel", func(t *testing.T) {
		var buf bytes.Buffer
		filename, err := s.svc.Export(ctx, &buf, s.quiz.ID, "xlsx")
		require.NoError(t, err)
		assert.Equal(t, "Databases_results.xlsx", filename)

		f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		title, err := f.GetCellValue("Quiz Results", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Quiz Results: Databases", title)

		// Best score first.
		topName, err := f.GetCellValue("Quiz Results", "B4")
		require.NoError(t, err)
		assert.Equal(t, "alice", topName)
	})

	t.Run("PDF", func(t *testing.T) {
		var buf bytes.Buffer
		filename, err := s.svc.Export(ctx, &buf, s.quiz.ID, "pdf")
		require.NoError(t, err)
		assert.Equal(t, "Databases_results.pdf", filename)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := s.svc.Export(ctx, &buf, s.quiz.ID, "csv")
		require.ErrorIs(t, err, report.ErrUnknownFormat)
	})
}
