package player

import (
	"testing"

	"trivia-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestions() []dto.QuestionResponse {
	return []dto.QuestionResponse{
		{ID: "q1", QuestionText: "first", Choices: []string{"a", "b", "c", "d"}},
		{ID: "q2", QuestionText: "second", Choices: []string{"a", "b", "c", "d"}},
		{ID: "q3", QuestionText: "third", Choices: []string{"a", "b", "c", "d"}},
	}
}

func TestSessionStartsAtFirstQuestion(t *testing.T) {
	s := NewSession(threeQuestions())

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Cursor())
	assert.True(t, s.AtStart())
	assert.False(t, s.AtEnd())

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
	assert.False(t, s.CurrentAnswered())
}

func TestSessionNextRequiresAnswer(t *testing.T) {
	s := NewSession(threeQuestions())

	assert.False(t, s.Next(), "advancing an unanswered question must be refused")
	assert.Equal(t, 0, s.Cursor())

	s.Answer("a")
	assert.True(t, s.CurrentAnswered())
	assert.True(t, s.Next())
	assert.Equal(t, 1, s.Cursor())
}

func TestSessionNextStopsAtEnd(t *testing.T) {
	s := NewSession(threeQuestions())
	s.Answer("a")
	s.Next()
	s.Answer("b")
	s.Next()
	require.True(t, s.AtEnd())

	s.Answer("c")
	assert.False(t, s.Next())
	assert.Equal(t, 2, s.Cursor())
}

func TestSessionBackStopsAtStart(t *testing.T) {
	s := NewSession(threeQuestions())

	assert.False(t, s.Back())
	assert.Equal(t, 0, s.Cursor())

	s.Answer("a")
	s.Next()
	assert.True(t, s.Back())
	assert.True(t, s.AtStart())
}

func TestSessionBackDoesNotRequireAnswer(t *testing.T) {
	s := NewSession(threeQuestions())
	s.Answer("a")
	s.Next()

	// The second question is unanswered; going back is still allowed.
	assert.False(t, s.CurrentAnswered())
	assert.True(t, s.Back())
}

func TestSessionAnswerCanBeChanged(t *testing.T) {
	s := NewSession(threeQuestions())
	s.Answer("a")
	s.Answer("d")

	answer, ok := s.CurrentAnswer()
	require.True(t, ok)
	assert.Equal(t, "d", answer)

	// Revisiting keeps the recorded answer.
	s.Next()
	s.Back()
	answer, _ = s.CurrentAnswer()
	assert.Equal(t, "d", answer)
}

func TestSessionSubmissionsInQuestionOrder(t *testing.T) {
	s := NewSession(threeQuestions())
	s.Answer("a")
	s.Next()
	s.Answer("b")
	s.Next()
	s.Answer("c")
	// Change an earlier answer out of order.
	s.Back()
	s.Back()
	s.Answer("d")

	subs := s.Submissions()
	assert.Equal(t, []dto.AnswerSubmission{
		{QuestionID: "q1", Answer: "d"},
		{QuestionID: "q2", Answer: "b"},
		{QuestionID: "q3", Answer: "c"},
	}, subs)
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession(nil)

	assert.Equal(t, 0, s.Len())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.Next())
	assert.False(t, s.Back())
	assert.Empty(t, s.Submissions())
}
