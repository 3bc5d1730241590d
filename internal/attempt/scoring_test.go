package attempt_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdesk/internal/attempt"
	"quizdesk/internal/quiz"
)

func question(correct quiz.Option, marks int) quiz.Question {
	return quiz.Question{
		ID:            uuid.New(),
		CorrectAnswer: correct,
		Marks:         marks,
	}
}

func TestScore(t *testing.T) {
	q1 := question(quiz.OptionA, 1)
	q2 := question(quiz.OptionC, 2)
	questions := []quiz.Question{q1, q2}

	t.Run("OneCorrectOneWrong", func(t *testing.T) {
		result := attempt.Score(questions, map[uuid.UUID]quiz.Option{
			q1.ID: quiz.OptionA,
			q2.ID: quiz.OptionB,
		})

		assert.Equal(t, 1, result.Total)
		require.Len(t, result.PerQuestion, 2)
		assert.True(t, result.PerQuestion[0].IsCorrect)
		assert.False(t, result.PerQuestion[1].IsCorrect)
		require.NotNil(t, result.PerQuestion[1].Selected)
		assert.Equal(t, quiz.OptionB, *result.PerQuestion[1].Selected)
	})

	t.Run("UnansweredIsNotWrong", func(t *testing.T) {
		result := attempt.Score(questions, map[uuid.UUID]quiz.Option{
			q2.ID: quiz.OptionC,
		})

		assert.Equal(t, 2, result.Total)
		require.Len(t, result.PerQuestion, 2)
		assert.Nil(t, result.PerQuestion[0].Selected)
		assert.False(t, result.PerQuestion[0].IsCorrect)
		assert.True(t, result.PerQuestion[1].IsCorrect)
	})

	t.Run("EmptySelectionIsUnanswered", func(t *testing.T) {
		result := attempt.Score(questions, map[uuid.UUID]quiz.Option{
			q1.ID: "",
		})

		assert.Equal(t, 0, result.Total)
		assert.Nil(t, result.PerQuestion[0].Selected)
	})

	t.Run("EveryQuestionGetsAResult", func(t *testing.T) {
		result := attempt.Score(questions, nil)

		require.Len(t, result.PerQuestion, len(questions))
		assert.Equal(t, 0, result.Total)
	})

	t.Run("UnknownQuestionIDsAreIgnored", func(t *testing.T) {
		result := attempt.Score(questions, map[uuid.UUID]quiz.Option{
			uuid.New(): quiz.OptionA,
		})

		assert.Equal(t, 0, result.Total)
		assert.Len(t, result.PerQuestion, 2)
	})

	t.Run("MatchIsExact", func(t *testing.T) {
		// A lowercase label never matches, even for the right letter.
		result := attempt.Score(questions, map[uuid.UUID]quiz.Option{
			q1.ID: quiz.Option("a"),
		})

		assert.Equal(t, 0, result.Total)
		assert.False(t, result.PerQuestion[0].IsCorrect)
	})

	t.Run("NoPartialCredit", func(t *testing.T) {
		result := attempt.Score(questions, map[uuid.UUID]quiz.Option{
			q1.ID: quiz.OptionA,
			q2.ID: quiz.OptionC,
		})

		assert.Equal(t, 3, result.Total)
	})
}

func TestScoreIsOrderIndependent(t *testing.T) {
	q1 := question(quiz.OptionA, 1)
	q2 := question(quiz.OptionB, 2)
	q3 := question(quiz.OptionD, 4)
	selections := map[uuid.UUID]quiz.Option{
		q1.ID: quiz.OptionA,
		q2.ID: quiz.OptionC,
		q3.ID: quiz.OptionD,
	}

	forward := attempt.Score([]quiz.Question{q1, q2, q3}, selections)
	backward := attempt.Score([]quiz.Question{q3, q2, q1}, selections)

	assert.Equal(t, forward.Total, backward.Total)
	assert.Equal(t, 5, forward.Total)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		totalMarks int
		want       float64
	}{
		{"OneThird", 1, 3, 33.33},
		{"TwoThirds", 2, 3, 66.67},
		{"Full", 5, 5, 100},
		{"Zero", 0, 7, 0},
		{"NoMarksAtAll", 0, 0, 0},
		{"HalfUpRounding", 1, 8, 12.5},
		{"RepeatingDown", 1, 6, 16.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, attempt.Percentage(tt.score, tt.totalMarks), 0.0001)
		})
	}
}
