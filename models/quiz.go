// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Difficulty is the requested difficulty level of a generated quiz.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// IsValid reports whether d is one of easy, medium or hard.
func (d Difficulty) IsValid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

const (
	// QuizQuestionCount is the exact number of questions in a valid quiz.
	QuizQuestionCount = 10
	// QuestionOptionCount is the exact number of options of a valid question.
	QuestionOptionCount = 4
)

// Question is a single multiple-choice question.
type Question struct {
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Difficulty    Difficulty `json:"difficulty"`
	Explanation   string     `json:"explanation"`
}

// Quiz is a generated set of questions on a topic.
type Quiz struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// CorrectCount returns the number of answers matching the correct option of
// the question at the same index. Missing answers count as wrong, answers
// beyond the last question are ignored.
func (q Quiz) CorrectCount(answers []int) int {
	correct := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	return correct
}

// Score returns the percentage of correctly answered questions in [0, 100].
// A quiz without questions scores 0.
func (q Quiz) Score(answers []int) float64 {
	if len(q.Questions) == 0 {
		return 0
	}

	return float64(q.CorrectCount(answers)) / float64(len(q.Questions)) * 100
}

// QuizAttempt is the outcome of evaluating a user's answers.
type QuizAttempt struct {
	Quiz         Quiz    `json:"quiz"`
	Answers      []int   `json:"answers"`
	CorrectCount int     `json:"correctCount"`
	Total        int     `json:"total"`
	Percentage   float64 `json:"percentage"`
	Feedback     string  `json:"feedback"`

	// Document is the saved library record, set only when the attempt was
	// persisted.
	Document *Document `json:"document,omitempty"`
}

// NewQuizAttempt scores answers against quiz.
func NewQuizAttempt(quiz Quiz, answers []int, feedback string) QuizAttempt {
	return QuizAttempt{
		Quiz:         quiz,
		Answers:      answers,
		CorrectCount: quiz.CorrectCount(answers),
		Total:        len(quiz.Questions),
		Percentage:   quiz.Score(answers),
		Feedback:     feedback,
	}
}
