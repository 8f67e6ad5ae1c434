// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/levelup/models"
)

// AIService builds task prompts, calls the text generator and interprets the
// result. None of its methods fail: bad input and generation failures are
// answered with deterministic fallbacks. Nothing is persisted.
type AIService interface {
	GetAIResponse(ctx context.Context, prompt string) string
	GenerateQuiz(ctx context.Context, topic string, difficulty models.Difficulty) models.Quiz
	EvaluateQuizAnswers(ctx context.Context, quiz *models.Quiz, answers []int) string
	GenerateStudyPlan(ctx context.Context, topic, deadline string) string
	SummarizeText(ctx context.Context, text string) string
	PerformOCR(ctx context.Context, imageData string) string
}

// DocumentService is the document store. Every mutation rewrites the whole
// collection.
type DocumentService interface {
	Save(ctx context.Context, title, content string, docType models.DocumentType, tags ...string) (models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	Update(ctx context.Context, id string, update models.DocumentUpdate) (models.Document, error)
	Delete(ctx context.Context, id string) error
}

// LibraryService saves generation results into the document store.
type LibraryService interface {
	// RecordQuizAttempt evaluates answers and saves the attempt as a quiz
	// document. The attempt is returned even when saving fails.
	RecordQuizAttempt(ctx context.Context, quiz models.Quiz, answers []int, difficulty models.Difficulty, tags ...string) (models.QuizAttempt, error)
	SaveStudyPlan(ctx context.Context, topic, plan string, tags ...string) (models.Document, error)
	SaveOCRResult(ctx context.Context, fileName, text string, tags ...string) (models.Document, error)
}

// UserService is the stub user store. Passwords are kept and compared
// verbatim.
type UserService interface {
	AddUser(ctx context.Context, creds models.Credentials) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	SignIn(ctx context.Context, creds models.Credentials) (models.User, error)
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
