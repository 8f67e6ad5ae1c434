package validators

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/MKhiriev/levelup/models"
)

// QuizReason names the first schema rule a generated quiz broke.
type QuizReason string

const (
	QuizReasonNone            QuizReason = ""
	QuizReasonUnparseable     QuizReason = "unparseable"
	QuizReasonNotObject       QuizReason = "not_object"
	QuizReasonMissingTopic    QuizReason = "missing_topic"
	QuizReasonQuestionCount   QuizReason = "question_count"
	QuizReasonInvalidQuestion QuizReason = "invalid_question"
)

// QuizResult is the outcome of [ParseQuiz]. Quiz is only meaningful when
// Valid is true.
type QuizResult struct {
	Quiz   models.Quiz
	Valid  bool
	Reason QuizReason
}

func invalid(reason QuizReason) QuizResult {
	return QuizResult{Reason: reason}
}

// rawObject holds a decoded JSON object. Keys are matched exactly, unlike
// struct decoding which ignores case.
type rawObject map[string]json.RawMessage

// field decodes the value under name into v. A missing key leaves v as is.
func (o rawObject) field(name string, v any) error {
	raw, ok := o[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// rawQuestion holds pointer fields so that absent and null values can be
// told apart from zero values.
type rawQuestion struct {
	Question      *string
	Options       []*string
	CorrectAnswer *float64
	Difficulty    *string
	Explanation   *string
}

// StripCodeFence trims raw and removes one leading ```json or ``` fence and
// one trailing ``` fence.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimPrefix(s, "\n")

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSuffix(s, "\n")
	}

	return strings.TrimSpace(s)
}

// ParseQuiz decodes model output into a quiz. Keys are case-sensitive. The
// output must be a JSON object with a non-empty topic and exactly [models.QuizQuestionCount]
// questions, each with string question, difficulty and explanation, exactly
// [models.QuestionOptionCount] string options and an integer correctAnswer
// indexing one of them. A surrounding markdown code fence is ignored.
//
// ParseQuiz never fails; a violation is reported through QuizResult.Reason.
func ParseQuiz(raw string) QuizResult {
	var obj rawObject
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &obj); err != nil {
		return invalid(QuizReasonUnparseable)
	}
	if obj == nil {
		return invalid(QuizReasonNotObject)
	}

	var topic *string
	if err := obj.field("topic", &topic); err != nil {
		return invalid(QuizReasonUnparseable)
	}
	if topic == nil || *topic == "" {
		return invalid(QuizReasonMissingTopic)
	}

	var questions []json.RawMessage
	if err := obj.field("questions", &questions); err != nil {
		return invalid(QuizReasonUnparseable)
	}
	if len(questions) != models.QuizQuestionCount {
		return invalid(QuizReasonQuestionCount)
	}

	quiz := models.Quiz{
		Topic:     *topic,
		Questions: make([]models.Question, 0, len(questions)),
	}
	for _, rawQ := range questions {
		q, reason := parseQuestion(rawQ)
		if reason != QuizReasonNone {
			return invalid(reason)
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	return QuizResult{Quiz: quiz, Valid: true}
}

func parseQuestion(raw json.RawMessage) (models.Question, QuizReason) {
	var obj rawObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.Question{}, QuizReasonUnparseable
	}
	if obj == nil {
		return models.Question{}, QuizReasonInvalidQuestion
	}

	var rq rawQuestion
	fields := []struct {
		name string
		dst  any
	}{
		{"question", &rq.Question},
		{"options", &rq.Options},
		{"correctAnswer", &rq.CorrectAnswer},
		{"difficulty", &rq.Difficulty},
		{"explanation", &rq.Explanation},
	}
	for _, f := range fields {
		if err := obj.field(f.name, f.dst); err != nil {
			return models.Question{}, QuizReasonUnparseable
		}
	}

	q, ok := rq.toQuestion()
	if !ok {
		return models.Question{}, QuizReasonInvalidQuestion
	}
	return q, QuizReasonNone
}

func (rq rawQuestion) toQuestion() (models.Question, bool) {
	if rq.Question == nil || rq.Difficulty == nil || rq.Explanation == nil || rq.CorrectAnswer == nil {
		return models.Question{}, false
	}

	if len(rq.Options) != models.QuestionOptionCount {
		return models.Question{}, false
	}
	options := make([]string, 0, len(rq.Options))
	for _, opt := range rq.Options {
		if opt == nil {
			return models.Question{}, false
		}
		options = append(options, *opt)
	}

	answer := *rq.CorrectAnswer
	if answer != math.Trunc(answer) || answer < 0 || answer >= models.QuestionOptionCount {
		return models.Question{}, false
	}

	return models.Question{
		Question:      *rq.Question,
		Options:       options,
		CorrectAnswer: int(answer),
		Difficulty:    models.Difficulty(*rq.Difficulty),
		Explanation:   *rq.Explanation,
	}, true
}

// ValidateQuiz reports whether an already decoded quiz satisfies the schema
// enforced by [ParseQuiz].
func ValidateQuiz(quiz models.Quiz) bool {
	if quiz.Topic == "" || len(quiz.Questions) != models.QuizQuestionCount {
		return false
	}

	for _, q := range quiz.Questions {
		if len(q.Options) != models.QuestionOptionCount {
			return false
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= models.QuestionOptionCount {
			return false
		}
	}

	return true
}
