package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID             = errors.New("document id is required")
	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyContent        = errors.New("content is required")
	ErrInvalidDocumentType = errors.New("invalid document type")

	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyTopic        = errors.New("topic is required")
	ErrInvalidDifficulty = errors.New("difficulty must be one of easy, medium, hard")
	ErrInvalidQuiz       = errors.New("quiz needs a topic and 10 questions with 4 options and a valid answer")
)
