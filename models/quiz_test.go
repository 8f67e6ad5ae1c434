package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tenQuestionQuiz() Quiz {
	q := Quiz{Topic: "Go"}
	for i := range QuizQuestionCount {
		q.Questions = append(q.Questions, Question{
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % QuestionOptionCount,
			Difficulty:    Medium,
		})
	}
	return q
}

func correctAnswers(q Quiz) []int {
	answers := make([]int, len(q.Questions))
	for i, question := range q.Questions {
		answers[i] = question.CorrectAnswer
	}
	return answers
}

func TestQuiz_Score_AllCorrect(t *testing.T) {
	q := tenQuestionQuiz()

	assert.Equal(t, 100.0, q.Score(correctAnswers(q)))
	assert.Equal(t, QuizQuestionCount, q.CorrectCount(correctAnswers(q)))
}

func TestQuiz_Score_NoneCorrect(t *testing.T) {
	q := tenQuestionQuiz()
	answers := correctAnswers(q)
	for i := range answers {
		answers[i] = (answers[i] + 1) % QuestionOptionCount
	}

	assert.Equal(t, 0.0, q.Score(answers))
	assert.Zero(t, q.CorrectCount(answers))
}

func TestQuiz_Score_Deterministic(t *testing.T) {
	q := tenQuestionQuiz()
	answers := []int{0, 1, 2, 0, 0, 0, 0, 0, 0, 0}

	first := q.Score(answers)
	second := q.Score(answers)

	assert.Equal(t, first, second)
	assert.InDelta(t, 50.0, first, 1e-9)
	assert.Equal(t, 5, q.CorrectCount(answers))
}

func TestQuiz_Score_ShortAndLongAnswerVectors(t *testing.T) {
	q := tenQuestionQuiz()

	assert.InDelta(t, 20.0, q.Score([]int{0, 1}), 1e-9)
	assert.Equal(t, 0.0, q.Score(nil))

	long := append(correctAnswers(q), 0, 0, 0)
	assert.Equal(t, 100.0, q.Score(long))
}

func TestQuiz_Score_EmptyQuiz(t *testing.T) {
	assert.Equal(t, 0.0, Quiz{}.Score([]int{1, 2, 3}))
}

func TestNewQuizAttempt(t *testing.T) {
	q := tenQuestionQuiz()
	answers := correctAnswers(q)
	answers[0] = 3

	attempt := NewQuizAttempt(q, answers, "good job")

	assert.Equal(t, 9, attempt.CorrectCount)
	assert.Equal(t, 10, attempt.Total)
	assert.InDelta(t, 90.0, attempt.Percentage, 1e-9)
	assert.Equal(t, "good job", attempt.Feedback)
	assert.Nil(t, attempt.Document)
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, Note.IsValid())
	assert.True(t, Doc.IsValid())
	assert.True(t, QuizRecord.IsValid())
	assert.False(t, DocumentType("flashcard").IsValid())
	assert.False(t, DocumentType("").IsValid())
}

func TestDifficulty_IsValid(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		assert.True(t, d.IsValid(), d)
	}
	assert.False(t, Difficulty("extreme").IsValid())
}
