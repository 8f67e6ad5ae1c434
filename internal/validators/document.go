package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/levelup/models"
)

// Field names accepted by [DocumentValidator.Validate].
const (
	FieldID      = "id"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldType    = "type"
)

type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate accepts models.Document and models.DocumentUpdate (or pointers to
// them). Without fields a Document is checked for title, content and type; an
// update is checked only for the fields it sets.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.DocumentUpdate:
		return v.validateUpdate(ctx, value)
	case *models.DocumentUpdate:
		return v.validateUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateDocument(_ context.Context, doc models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(doc.ID) {
				return ErrEmptyID
			}
		case FieldTitle:
			if isBlank(doc.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(doc.Content) {
				return ErrEmptyContent
			}
		case FieldType:
			if !doc.Type.IsValid() {
				return ErrInvalidDocumentType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateUpdate(_ context.Context, update models.DocumentUpdate) error {
	if update.Title != nil && isBlank(*update.Title) {
		return ErrEmptyTitle
	}
	if update.Content != nil && isBlank(*update.Content) {
		return ErrEmptyContent
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
