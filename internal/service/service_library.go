package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/validators"
	"github.com/MKhiriev/levelup/models"
)

const (
	studyPlanTag     = "study-plan"
	ocrTag           = "ocr"
	textExtractTag   = "text-extraction"
	defaultImageName = "image"

	// isoMillis matches the ISO 8601 form used for dates inside documents.
	isoMillis = "2006-01-02T15:04:05.000Z"
)

// quizRecord is the content of a saved quiz attempt.
type quizRecord struct {
	Quiz        models.Quiz `json:"quiz"`
	UserAnswers []int       `json:"userAnswers"`
	Score       float64     `json:"score"`
	Feedback    string      `json:"feedback"`
	Date        string      `json:"date"`
}

// libraryService saves the results of AI operations as documents.
type libraryService struct {
	ai        AIService
	documents DocumentService
	now       func() time.Time

	logger *logger.Logger
}

func NewLibraryService(ai AIService, documents DocumentService, logger *logger.Logger) LibraryService {
	return &libraryService{
		ai:        ai,
		documents: documents,
		now:       time.Now,
		logger:    logger,
	}
}

// RecordQuizAttempt evaluates answers and saves a quiz document titled
// "Quiz: {topic}". The stored score is the one of the returned attempt.
// A quiz breaking the generated-quiz schema is rejected before evaluation.
func (s *libraryService) RecordQuizAttempt(ctx context.Context, quiz models.Quiz, answers []int, difficulty models.Difficulty, tags ...string) (models.QuizAttempt, error) {
	if !validators.ValidateQuiz(quiz) {
		logger.FromContext(ctx).Warn().
			Str("func", "*libraryService.RecordQuizAttempt").
			Str("topic", quiz.Topic).
			Int("questions", len(quiz.Questions)).
			Msg("refusing to record malformed quiz")
		return models.QuizAttempt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidQuiz)
	}

	feedback := s.ai.EvaluateQuizAnswers(ctx, &quiz, answers)
	attempt := models.NewQuizAttempt(quiz, answers, feedback)

	if difficulty == "" && len(quiz.Questions) > 0 {
		difficulty = quiz.Questions[0].Difficulty
	}

	content, err := json.Marshal(quizRecord{
		Quiz:        quiz,
		UserAnswers: answers,
		Score:       attempt.Percentage,
		Feedback:    feedback,
		Date:        s.now().UTC().Format(isoMillis),
	})
	if err != nil {
		return attempt, fmt.Errorf("error encoding quiz attempt: %w", err)
	}

	recordTags := append([]string{
		quiz.Topic,
		string(difficulty),
		"score-" + strconv.FormatFloat(attempt.Percentage, 'f', -1, 64),
	}, tags...)

	doc, err := s.documents.Save(ctx, "Quiz: "+quiz.Topic, string(content), models.QuizRecord, recordTags...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*libraryService.RecordQuizAttempt").Msg("error saving quiz attempt")
		return attempt, fmt.Errorf("error saving quiz attempt: %w", err)
	}

	attempt.Document = &doc
	return attempt, nil
}

func (s *libraryService) SaveStudyPlan(ctx context.Context, topic, plan string, tags ...string) (models.Document, error) {
	planTags := append([]string{studyPlanTag, topic}, tags...)

	doc, err := s.documents.Save(ctx, "Study Plan: "+topic, plan, models.Doc, planTags...)
	if err != nil {
		return models.Document{}, fmt.Errorf("error saving study plan: %w", err)
	}
	return doc, nil
}

func (s *libraryService) SaveOCRResult(ctx context.Context, fileName, text string, tags ...string) (models.Document, error) {
	if strings.TrimSpace(fileName) == "" {
		fileName = defaultImageName
	}
	ocrTags := append([]string{ocrTag, textExtractTag}, tags...)

	doc, err := s.documents.Save(ctx, "OCR Result: "+fileName, text, models.Doc, ocrTags...)
	if err != nil {
		return models.Document{}, fmt.Errorf("error saving OCR result: %w", err)
	}
	return doc, nil
}
