package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/levelup/internal/validators"
	"github.com/MKhiriev/levelup/models"
)

// DocumentValidationService rejects invalid input before it reaches the
// wrapped DocumentService. Every rejection matches [ErrInvalidDataProvided]
// and the specific validation error.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) Save(ctx context.Context, title, content string, docType models.DocumentType, tags ...string) (models.Document, error) {
	candidate := models.Document{Title: title, Content: content, Type: docType}
	if err := v.validator.Validate(ctx, candidate); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Save(ctx, title, content, docType, tags...)
}

func (v *DocumentValidationService) List(ctx context.Context) ([]models.Document, error) {
	return v.inner.List(ctx)
}

func (v *DocumentValidationService) Update(ctx context.Context, id string, update models.DocumentUpdate) (models.Document, error) {
	if strings.TrimSpace(id) == "" {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyID)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *DocumentValidationService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyID)
	}

	return v.inner.Delete(ctx, id)
}

func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.inner = inner
	return v
}
