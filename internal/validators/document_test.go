// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/levelup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func validDocument() models.Document {
	return models.Document{
		ID:      "doc-1",
		Title:   "Cell biology",
		Content: "Mitochondria are the powerhouse of the cell.",
		Type:    models.Note,
	}
}

// ---------------------------------------------------------------------------
// DocumentValidator
// ---------------------------------------------------------------------------

func TestDocumentValidator_Dispatch(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("document value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validDocument()))
	})

	t.Run("document pointer", func(t *testing.T) {
		d := validDocument()
		require.NoError(t, v.Validate(ctx, &d))
	})

	t.Run("update value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.DocumentUpdate{Title: ptr("New")}))
	})

	t.Run("update pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.DocumentUpdate{Content: ptr("New")}))
	})
}

func TestDocumentValidator_Document(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(d *models.Document)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(d *models.Document) {}},
		{name: "blank title", mutate: func(d *models.Document) { d.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "empty content", mutate: func(d *models.Document) { d.Content = "" }, wantErr: ErrEmptyContent},
		{name: "whitespace content", mutate: func(d *models.Document) { d.Content = "\n\t" }, wantErr: ErrEmptyContent},
		{name: "unknown type", mutate: func(d *models.Document) { d.Type = "spreadsheet" }, wantErr: ErrInvalidDocumentType},
		{name: "empty type", mutate: func(d *models.Document) { d.Type = "" }, wantErr: ErrInvalidDocumentType},
		{name: "id not checked by default", mutate: func(d *models.Document) { d.ID = "" }},
		{name: "id checked when asked", mutate: func(d *models.Document) { d.ID = " " }, fields: []string{FieldID}, wantErr: ErrEmptyID},
		{name: "scoped to title", mutate: func(d *models.Document) { d.Content = "" }, fields: []string{FieldTitle}},
		{name: "unknown field", mutate: func(d *models.Document) {}, fields: []string{"owner"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDocument()
			tt.mutate(&d)

			err := v.Validate(ctx, d, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentValidator_Update(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.DocumentUpdate
		wantErr error
	}{
		{name: "empty update is allowed", update: models.DocumentUpdate{}},
		{name: "tags only", update: models.DocumentUpdate{Tags: []string{"exam"}}},
		{name: "blank title", update: models.DocumentUpdate{Title: ptr(" ")}, wantErr: ErrEmptyTitle},
		{name: "blank content", update: models.DocumentUpdate{Content: ptr("")}, wantErr: ErrEmptyContent},
		{name: "both set", update: models.DocumentUpdate{Title: ptr("T"), Content: ptr("C")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// RequestValidator
// ---------------------------------------------------------------------------

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "credentials", obj: models.Credentials{Email: "a@b.c", Password: "pw"}},
		{name: "credentials pointer", obj: &models.Credentials{Email: "a@b.c", Password: "pw"}},
		{name: "blank email", obj: models.Credentials{Email: " ", Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "empty password", obj: models.Credentials{Email: "a@b.c"}, wantErr: ErrEmptyPassword},
		{name: "quiz request", obj: models.GenerateQuizRequest{Topic: "Biology", Difficulty: models.Hard}},
		{name: "quiz request pointer", obj: &models.GenerateQuizRequest{Topic: "Biology", Difficulty: models.Easy}},
		{name: "blank topic", obj: models.GenerateQuizRequest{Topic: "", Difficulty: models.Easy}, wantErr: ErrEmptyTopic},
		{name: "bad difficulty", obj: models.GenerateQuizRequest{Topic: "Biology", Difficulty: "extreme"}, wantErr: ErrInvalidDifficulty},
		{name: "unsupported", obj: "x", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
