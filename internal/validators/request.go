package validators

import (
	"context"

	"github.com/MKhiriev/levelup/models"
)

// RequestValidator checks request bodies that carry no stored entity:
// credentials and quiz generation requests.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return validateCredentials(value)
	case *models.Credentials:
		return validateCredentials(*value)

	case models.GenerateQuizRequest:
		return validateGenerateQuiz(value)
	case *models.GenerateQuizRequest:
		return validateGenerateQuiz(*value)

	default:
		return ErrUnsupportedType
	}
}

func validateCredentials(creds models.Credentials) error {
	if isBlank(creds.Email) {
		return ErrEmptyEmail
	}
	if creds.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

func validateGenerateQuiz(req models.GenerateQuizRequest) error {
	if isBlank(req.Topic) {
		return ErrEmptyTopic
	}
	if !req.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}

	return nil
}
