package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/levelup/internal/adapter"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/metrics"
	"github.com/MKhiriev/levelup/internal/validators"
	"github.com/MKhiriev/levelup/models"
)

// aiService is the concrete implementation of AIService. It holds no mutable
// state and is safe for concurrent use.
type aiService struct {
	generator adapter.TextGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewAIService(generator adapter.TextGenerator, logger *logger.Logger) AIService {
	return &aiService{
		generator: generator,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *aiService) GetAIResponse(ctx context.Context, prompt string) string {
	return s.generator.GetAIResponse(ctx, prompt)
}

// GenerateQuiz asks the model for a ten question quiz and validates the
// answer. A blank topic or an unknown difficulty skips the model call. Any
// input, generation or validation failure yields [FallbackQuiz], so the
// returned quiz is always well-formed.
func (s *aiService) GenerateQuiz(ctx context.Context, topic string, difficulty models.Difficulty) models.Quiz {
	log := logger.FromContext(ctx)

	req := models.GenerateQuizRequest{Topic: topic, Difficulty: difficulty}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("func", "*aiService.GenerateQuiz").Msg("invalid quiz request, using fallback quiz")
		metrics.QuizFallbacks.Inc()
		return FallbackQuiz(topic, difficulty)
	}

	generation := s.generator.Generate(ctx, quizPrompt(topic, difficulty))

	result := validators.ParseQuiz(generation.Text)
	if !result.Valid {
		log.Warn().
			Str("func", "*aiService.GenerateQuiz").
			Str("reason", string(result.Reason)).
			Str("generation_reason", string(generation.Reason)).
			Msg("generated quiz is invalid, using fallback quiz")
		metrics.QuizFallbacks.Inc()
		return FallbackQuiz(topic, difficulty)
	}

	return result.Quiz
}

// EvaluateQuizAnswers asks the model for feedback on answers. A missing quiz
// or answer vector yields [adapter.FallbackGeneral]; a failed generation
// yields a template embedding the score.
func (s *aiService) EvaluateQuizAnswers(ctx context.Context, quiz *models.Quiz, answers []int) string {
	if quiz == nil || len(quiz.Questions) == 0 || answers == nil {
		logger.FromContext(ctx).Error().Str("func", "*aiService.EvaluateQuizAnswers").Msg("invalid quiz data provided")
		return adapter.FallbackGeneral
	}

	generation := s.generator.Generate(ctx, evaluationPrompt(*quiz, answers))
	if generation.Fallback {
		return evaluationTemplate(*quiz, answers)
	}

	return generation.Text
}

func (s *aiService) GenerateStudyPlan(ctx context.Context, topic, deadline string) string {
	if strings.TrimSpace(topic) == "" || strings.TrimSpace(deadline) == "" {
		logger.FromContext(ctx).Error().Str("func", "*aiService.GenerateStudyPlan").Msg("topic and deadline are required")
		return FallbackStudyPlan
	}

	generation := s.generator.Generate(ctx, studyPlanPrompt(topic, deadline))
	if generation.Fallback {
		return strings.Replace(FallbackStudyPlan, "the topic", topic, 1)
	}

	return generation.Text
}

func (s *aiService) SummarizeText(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		logger.FromContext(ctx).Error().Str("func", "*aiService.SummarizeText").Msg("no text provided for summarization")
		return adapter.FallbackSummary
	}

	generation := s.generator.Generate(ctx, summaryPrompt(text))
	if generation.Fallback {
		return adapter.FallbackSummary
	}

	return generation.Text
}

// PerformOCR is a stub: it echoes a prefix of imageData and never calls the
// model.
func (s *aiService) PerformOCR(ctx context.Context, imageData string) string {
	if strings.TrimSpace(imageData) == "" {
		logger.FromContext(ctx).Error().Str("func", "*aiService.PerformOCR").Msg("no image data provided")
		return NoImageProvided
	}

	return ocrPreview(imageData)
}
